package engine_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-recommendation/recommendation/internal/engine"
)

var now = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func defaultParams() engine.Params {
	return engine.Params{
		Clusters:      3,
		MaxIterations: 50,
		Mining: engine.MiningParams{
			MinSupport:     0.2,
			MinConfidence:  0.5,
			MaxItemsetSize: 3,
		},
	}
}

func TestCanonicalKey(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		ids  []int
		want string
	}{
		{name: "single", ids: []int{7}, want: "7"},
		{name: "sorted", ids: []int{3, 9}, want: "3,9"},
		{name: "reversed", ids: []int{9, 3}, want: "3,9"},
		{name: "duplicates", ids: []int{9, 3, 3}, want: "3,9"},
		{name: "numeric not lexical", ids: []int{10, 2}, want: "2,10"},
		{name: "empty", ids: nil, want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, engine.CanonicalKey(tt.ids))
		})
	}
}

func TestCanonicalKey_Permutations(t *testing.T) {
	t.Parallel()
	perms := [][]int{{1, 5, 12}, {1, 12, 5}, {5, 1, 12}, {5, 12, 1}, {12, 1, 5}, {12, 5, 1}}
	for _, p := range perms {
		require.Equal(t, "1,5,12", engine.CanonicalKey(p))
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()
	ids, err := engine.ParseKey("2,10")
	require.NoError(t, err)
	require.Equal(t, []int{2, 10}, ids)

	for _, bad := range []string{"", "10,2", "2, 10", "2,,10", "a", "3,3"} {
		_, err := engine.ParseKey(bad)
		require.Error(t, err, bad)
	}
}

func TestBuildFeatures(t *testing.T) {
	t.Parallel()
	snap := engine.Snapshot{
		StudentIDs: []int{2, 1, 3},
		Entries: []engine.LedgerEntry{
			{StudentID: 1, BookID: 10, BorrowDate: now},
			{StudentID: 1, BookID: 10, BorrowDate: now.AddDate(0, 0, -30)},
			{StudentID: 1, BookID: 20, BorrowDate: now.AddDate(0, 0, -60)},
			{StudentID: 2, BookID: 20, BorrowDate: now.AddDate(0, 0, -30)},
			// inactive student
			{StudentID: 99, BookID: 30, BorrowDate: now},
		},
	}

	f := engine.BuildFeatures(snap, now)
	require.Equal(t, []int{10, 20}, f.Vocabulary)
	require.Len(t, f.Vectors, 3)
	require.Equal(t, []int{1, 2, 3}, []int{f.Vectors[0].StudentID, f.Vectors[1].StudentID, f.Vectors[2].StudentID})

	v1 := f.Vectors[0].Values
	require.Len(t, v1, 5)
	require.InDelta(t, 2/math.Sqrt(5), v1[0], 1e-9)
	require.InDelta(t, 1/math.Sqrt(5), v1[1], 1e-9)
	require.InDelta(t, 1.0, v1[2], 1e-9)   // frequency: 3 of max 3
	require.InDelta(t, 1.0, v1[3], 1e-9)   // borrowed today
	require.InDelta(t, 2.0/3, v1[4], 1e-9) // diversity

	v2 := f.Vectors[1].Values
	require.InDelta(t, 0.0, v2[0], 1e-9)
	require.InDelta(t, 1.0, v2[1], 1e-9)
	require.InDelta(t, 1.0/3, v2[2], 1e-9)
	require.InDelta(t, 0.5, v2[3], 1e-9)
	require.InDelta(t, 1.0, v2[4], 1e-9)

	require.Equal(t, []float64{0, 0, 0, 0, 0}, f.Vectors[2].Values)

	require.Equal(t, []int{10, 20}, f.Transactions[1])
	require.Equal(t, []int{20}, f.Transactions[2])
	require.Empty(t, f.Transactions[3])
	_, ok := f.Transactions[99]
	require.False(t, ok)
}

func vec(id int, values ...float64) engine.FeatureVector {
	return engine.FeatureVector{StudentID: id, Values: values}
}

func TestKMeans(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		vectors []engine.FeatureVector
		k       int
		wantK   int
		want    map[int]int
	}{
		{
			name: "two groups",
			vectors: []engine.FeatureVector{
				vec(1, 1, 0), vec(2, 0.9, 0.1), vec(3, 0, 1), vec(4, 0.1, 0.9),
			},
			k:     2,
			wantK: 2,
			want:  map[int]int{1: 0, 2: 0, 3: 1, 4: 1},
		},
		{
			name: "fewer distinct students than k",
			vectors: []engine.FeatureVector{
				vec(1, 0.5, 0.5), vec(2, 0.5, 0.5), vec(3, 0.5, 0.5),
			},
			k:     3,
			wantK: 1,
			want:  map[int]int{1: 0, 2: 0, 3: 0},
		},
		{
			name:    "all zero vectors",
			vectors: []engine.FeatureVector{vec(1, 0, 0), vec(2, 0, 0)},
			k:       3,
			wantK:   1,
			want:    map[int]int{1: 0, 2: 0},
		},
		{
			name:    "fewer students than k",
			vectors: []engine.FeatureVector{vec(5, 1, 0), vec(6, 0, 1)},
			k:       3,
			wantK:   2,
			want:    map[int]int{5: 0, 6: 1},
		},
		{
			name:    "no students",
			vectors: nil,
			k:       3,
			wantK:   0,
			want:    map[int]int{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := engine.KMeans(tt.vectors, tt.k, 50)
			require.Equal(t, tt.wantK, c.K)
			require.Equal(t, tt.want, c.Assignments)
			require.Len(t, c.Centroids, tt.wantK)
		})
	}
}

func TestMineRules(t *testing.T) {
	t.Parallel()
	txs := [][]int{{1, 2}, {1, 2}, {1, 2, 3}, {2, 3}, nil}
	rules := engine.MineRules(4, txs, engine.MiningParams{MinSupport: 0.5, MinConfidence: 0.5, MaxItemsetSize: 3})

	require.Equal(t, []engine.Rule{
		{ClusterID: 4, Antecedent: []int{1}, Consequent: []int{2}, Support: 0.75, Confidence: 1},
		{ClusterID: 4, Antecedent: []int{2}, Consequent: []int{1, 3}, Support: 0.75, Confidence: 0.75},
		{ClusterID: 4, Antecedent: []int{3}, Consequent: []int{2}, Support: 0.5, Confidence: 1},
	}, rules)
}

func TestMineRules_PairAntecedent(t *testing.T) {
	t.Parallel()
	txs := [][]int{{1, 2, 3}, {1, 2, 3}, {1, 2}, {4}}
	rules := engine.MineRules(0, txs, engine.MiningParams{MinSupport: 0.5, MinConfidence: 0.6, MaxItemsetSize: 3})

	var pair *engine.Rule
	for i := range rules {
		if rules[i].Key() == "1,2" {
			pair = &rules[i]
		}
	}
	require.NotNil(t, pair)
	require.Equal(t, []int{3}, pair.Consequent)
	require.InDelta(t, 2.0/3, pair.Confidence, 1e-9)
	require.InDelta(t, 0.5, pair.Support, 1e-9)
}

func TestMineRules_NotEnoughTransactions(t *testing.T) {
	t.Parallel()
	p := engine.MiningParams{MinSupport: 0.2, MinConfidence: 0.5, MaxItemsetSize: 3}
	require.Empty(t, engine.MineRules(0, nil, p))
	require.Empty(t, engine.MineRules(0, [][]int{{1}}, p))
	require.Empty(t, engine.MineRules(0, [][]int{{1}, {2}}, engine.MiningParams{MinSupport: 0.6, MinConfidence: 0.5, MaxItemsetSize: 3}))
}

func snapshot() engine.Snapshot {
	// Two reading groups: 1-4 read books 10..12, 5-8 read books 20..22.
	// Student 9 has never borrowed.
	var entries []engine.LedgerEntry
	add := func(student int, books ...int) {
		for i, b := range books {
			entries = append(entries, engine.LedgerEntry{
				StudentID:  student,
				BookID:     b,
				BorrowDate: now.AddDate(0, 0, -(len(books)-i)*7),
			})
		}
	}
	add(1, 10, 11, 12)
	add(2, 10, 11)
	add(3, 10, 11, 12)
	add(4, 11, 12)
	add(5, 20, 21, 22)
	add(6, 20, 21)
	add(7, 20, 22)
	add(8, 20, 21, 22)
	return engine.Snapshot{StudentIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, Entries: entries}
}

func TestGenerate_Coverage(t *testing.T) {
	t.Parallel()
	snap := snapshot()
	res, err := engine.Generate(context.Background(), snap, defaultParams(), now)
	require.NoError(t, err)
	require.NoError(t, res.Validate())

	require.Equal(t, 9, res.StudentCount)
	require.Equal(t, 8, res.TransactionCount)
	require.Len(t, res.Assignments, len(snap.StudentIDs))
	covered := make(map[int]bool)
	for _, a := range res.Assignments {
		covered[a.StudentID] = true
		require.GreaterOrEqual(t, a.ClusterID, 0)
		require.Less(t, a.ClusterID, res.ClusterCount)
	}
	for _, id := range snap.StudentIDs {
		require.True(t, covered[id], "student %d has no cluster", id)
	}

	require.NotEmpty(t, res.Rules)
	for _, r := range res.Rules {
		require.GreaterOrEqual(t, r.Support, defaultParams().Mining.MinSupport)
		require.LessOrEqual(t, r.Support, 1.0)
		require.GreaterOrEqual(t, r.Confidence, defaultParams().Mining.MinConfidence)
		require.LessOrEqual(t, r.Confidence, 1.0)
		require.True(t, engine.IsCanonical(r.Antecedent))
		require.NotEmpty(t, r.Consequent)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()
	a, err := engine.Generate(context.Background(), snapshot(), defaultParams(), now)
	require.NoError(t, err)
	b, err := engine.Generate(context.Background(), snapshot(), defaultParams(), now)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerate_EmptyLedger(t *testing.T) {
	t.Parallel()
	res, err := engine.Generate(context.Background(), engine.Snapshot{StudentIDs: []int{1, 2}}, defaultParams(), now)
	require.NoError(t, err)
	require.Equal(t, 1, res.ClusterCount)
	require.Equal(t, []engine.Assignment{{StudentID: 1, ClusterID: 0}, {StudentID: 2, ClusterID: 0}}, res.Assignments)
	require.Empty(t, res.Rules)

	res, err = engine.Generate(context.Background(), engine.Snapshot{}, defaultParams(), now)
	require.NoError(t, err)
	require.Zero(t, res.ClusterCount)
	require.Empty(t, res.Assignments)
	require.Empty(t, res.Rules)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()
	p := defaultParams()
	p.Mining.MinSupport = 0
	_, err := engine.Generate(context.Background(), snapshot(), p, now)
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Generate(ctx, snapshot(), defaultParams(), now)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResult_Validate(t *testing.T) {
	t.Parallel()
	valid := func() engine.Result {
		return engine.Result{
			ClusterCount: 1,
			StudentCount: 1,
			Assignments:  []engine.Assignment{{StudentID: 1, ClusterID: 0}},
			Rules: []engine.Rule{
				{ClusterID: 0, Antecedent: []int{1, 2}, Consequent: []int{3}, Support: 0.5, Confidence: 0.8},
			},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(r *engine.Result)
	}{
		{"unknown cluster", func(r *engine.Result) { r.Assignments[0].ClusterID = 1 }},
		{"missing assignment", func(r *engine.Result) { r.StudentCount = 2 }},
		{"non canonical antecedent", func(r *engine.Result) { r.Rules[0].Antecedent = []int{2, 1} }},
		{"antecedent too large", func(r *engine.Result) { r.Rules[0].Antecedent = []int{1, 2, 4} }},
		{"empty consequent", func(r *engine.Result) { r.Rules[0].Consequent = nil }},
		{"self recommendation", func(r *engine.Result) { r.Rules[0].Consequent = []int{2} }},
		{"support above one", func(r *engine.Result) { r.Rules[0].Support = 1.5 }},
		{"negative confidence", func(r *engine.Result) { r.Rules[0].Confidence = -0.1 }},
		{"duplicate antecedent", func(r *engine.Result) { r.Rules = append(r.Rules, r.Rules[0]) }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := valid()
			tt.mutate(&r)
			require.Error(t, r.Validate())
		})
	}
}
