package repository_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/pkg/postgres"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/engine"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/repository"
	"github.com/Astemirdum/library-recommendation/recommendation/migrations"
)

const (
	pgImage    = "postgres:16-alpine"
	pgPort     = "5432/tcp"
	pgUser     = "postgres"
	pgPassword = "postgres"
	pgDB       = "library"
)

var (
	pool    *pgxpool.Pool
	skipMsg string
)

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	if !dockerAvailable() {
		skipMsg = "docker is not available"
		return m.Run()
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{pgPort},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDB,
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort(pgPort),
			).WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres: %v\n", err)
		return 1
	}
	defer container.Terminate(ctx) //nolint:errcheck

	host, err := container.Host(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres host: %v\n", err)
		return 1
	}
	port, err := container.MappedPort(ctx, pgPort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres port: %v\n", err)
		return 1
	}

	pool, err = postgres.NewPostgresDB(ctx, &postgres.DB{
		Host:     host,
		Port:     port.Port(),
		Username: pgUser,
		Password: pgPassword,
		NameDB:   pgDB,
		SSLMode:  "disable",
		MaxConns: 4,
	}, migrations.MigrationFiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect postgres: %v\n", err)
		return 1
	}
	defer pool.Close()

	return m.Run()
}

func dockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, "docker", "info").Run() == nil
}

// newRepo empties every table and returns a repository over the shared pool.
func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	if skipMsg != "" {
		t.Skip(skipMsg)
	}
	_, err := pool.Exec(context.Background(), `
truncate borrows, students, books, association_rules, cluster_assignments, recommendation_batches
restart identity cascade`)
	require.NoError(t, err)
	_, err = pool.Exec(context.Background(), `update recommendation_active set batch_id = null`)
	require.NoError(t, err)

	repo, err := repository.NewRepository(pool, zap.NewNop())
	require.NoError(t, err)
	return repo
}

func count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func seedStudent(t *testing.T, nisn string, active bool) int {
	t.Helper()
	var id int
	require.NoError(t, pool.QueryRow(context.Background(),
		`insert into students (nisn, name, class, active) values ($1, $2, '10A', $3) returning id`,
		nisn, "student "+nisn, active).Scan(&id))
	return id
}

func seedBook(t *testing.T, title string, stock int) int {
	t.Helper()
	var id int
	require.NoError(t, pool.QueryRow(context.Background(),
		`insert into books (title, author, stock) values ($1, 'author', $2) returning id`,
		title, stock).Scan(&id))
	return id
}

func batchResult(rules ...engine.Rule) engine.Result {
	return engine.Result{
		GeneratedAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Params:           engine.Params{Clusters: 2, MaxIterations: 10, Mining: engine.MiningParams{MinSupport: 0.1, MinConfidence: 0.5}},
		ClusterCount:     2,
		StudentCount:     3,
		TransactionCount: 3,
		Converged:        true,
		Assignments: []engine.Assignment{
			{StudentID: 1, ClusterID: 0},
			{StudentID: 2, ClusterID: 0},
			{StudentID: 3, ClusterID: 1},
		},
		Rules: rules,
	}
}

func rule(cluster int, antecedent []int, consequent int, conf float64) engine.Rule {
	return engine.Rule{
		ClusterID:  cluster,
		Antecedent: antecedent,
		Consequent: []int{consequent},
		Support:    0.5,
		Confidence: conf,
	}
}

func TestRepository_SingleActiveBatch(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	activeRows := `select count(*) from recommendation_active where batch_id is not null`

	var ids []int
	for i := 0; i < 3; i++ {
		b, err := repo.CreateBatch(ctx, batchResult(rule(0, []int{1}, 2, 0.8)), true)
		require.NoError(t, err)
		require.True(t, b.IsActive)
		ids = append(ids, b.ID)
		require.Equal(t, 1, count(t, activeRows))
	}

	inactive, err := repo.CreateBatch(ctx, batchResult(), false)
	require.NoError(t, err)
	require.False(t, inactive.IsActive)

	active, err := repo.GetActiveBatch(ctx)
	require.NoError(t, err)
	require.Equal(t, ids[2], active.ID)

	for _, id := range []int{ids[0], inactive.ID, ids[1], ids[1]} {
		require.NoError(t, repo.SetActive(ctx, id))
		require.Equal(t, 1, count(t, activeRows))

		active, err = repo.GetActiveBatch(ctx)
		require.NoError(t, err)
		require.Equal(t, id, active.ID)
		require.True(t, active.IsActive)
	}

	batches, err := repo.ListBatches(ctx)
	require.NoError(t, err)
	require.Len(t, batches, 4)
	activeCount := 0
	for _, b := range batches {
		if b.IsActive {
			activeCount++
			require.Equal(t, ids[1], b.ID)
		}
	}
	require.Equal(t, 1, activeCount)
}

func TestRepository_DeleteActiveBatch(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	b, err := repo.CreateBatch(ctx, batchResult(rule(0, []int{1}, 2, 0.8), rule(1, []int{3}, 4, 0.6)), true)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteBatch(ctx, b.ID))

	_, err = repo.GetActiveBatch(ctx)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = repo.GetBatch(ctx, b.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Zero(t, count(t, `select count(*) from association_rules where batch_id = $1`, b.ID))
	require.Zero(t, count(t, `select count(*) from cluster_assignments where batch_id = $1`, b.ID))

	require.ErrorIs(t, repo.SetActive(ctx, b.ID), errs.ErrNotFound)
	require.ErrorIs(t, repo.DeleteBatch(ctx, b.ID), errs.ErrNotFound)
	require.Zero(t, count(t, `select count(*) from recommendation_active where batch_id is not null`))
}

func TestRepository_CreateBatchAtomic(t *testing.T) {
	tests := []struct {
		name string
		res  engine.Result
	}{
		{
			name: "confidence out of range",
			res:  batchResult(rule(0, []int{1}, 2, 0.8), rule(0, []int{2}, 1, 1.5)),
		},
		{
			name: "duplicate antecedent",
			res:  batchResult(rule(0, []int{1, 2}, 3, 0.8), rule(0, []int{2, 1}, 4, 0.7)),
		},
		{
			name: "negative cluster",
			res: func() engine.Result {
				res := batchResult(rule(0, []int{1}, 2, 0.8))
				res.Assignments = append(res.Assignments, engine.Assignment{StudentID: 4, ClusterID: -1})
				return res
			}(),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			prev, err := repo.CreateBatch(ctx, batchResult(rule(0, []int{5}, 6, 0.9)), true)
			require.NoError(t, err)

			_, err = repo.CreateBatch(ctx, tt.res, true)
			require.Error(t, err)

			require.Equal(t, 1, count(t, `select count(*) from recommendation_batches`))
			require.Equal(t, 3, count(t, `select count(*) from cluster_assignments`))
			require.Equal(t, 1, count(t, `select count(*) from association_rules`))

			active, err := repo.GetActiveBatch(ctx)
			require.NoError(t, err)
			require.Equal(t, prev.ID, active.ID)
		})
	}
}

func TestRepository_CreateBorrow(t *testing.T) {
	borrowDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	due := borrowDate.AddDate(0, 0, 14)

	// identities restart on every newRepo, so the seeded rows get fixed ids
	const (
		student  = 1
		archived = 2
		book     = 1
		empty    = 2
	)
	tests := []struct {
		name        string
		req         model.CreateBorrowRequest
		borrowFirst bool
		wantErr     error
		wantStock   int
	}{
		{
			name:      "ok",
			req:       model.CreateBorrowRequest{StudentID: student, BookID: book, DueDate: due},
			wantStock: 1,
		},
		{
			name:      "out of stock",
			req:       model.CreateBorrowRequest{StudentID: student, BookID: empty, DueDate: due},
			wantErr:   errs.ErrNoStock,
			wantStock: 2,
		},
		{
			name:        "already borrowed",
			req:         model.CreateBorrowRequest{StudentID: student, BookID: book, DueDate: due},
			borrowFirst: true,
			wantErr:     errs.ErrAlreadyBorrowed,
			wantStock:   1,
		},
		{
			name:      "archived student",
			req:       model.CreateBorrowRequest{StudentID: archived, BookID: book, DueDate: due},
			wantErr:   errs.ErrStudentInactive,
			wantStock: 2,
		},
		{
			name:      "unknown student",
			req:       model.CreateBorrowRequest{StudentID: 999, BookID: book, DueDate: due},
			wantErr:   errs.ErrNotFound,
			wantStock: 2,
		},
		{
			name:      "unknown book",
			req:       model.CreateBorrowRequest{StudentID: student, BookID: 999, DueDate: due},
			wantErr:   errs.ErrNotFound,
			wantStock: 2,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()
			require.Equal(t, student, seedStudent(t, "001", true))
			require.Equal(t, archived, seedStudent(t, "002", false))
			require.Equal(t, book, seedBook(t, "Dune", 2))
			require.Equal(t, empty, seedBook(t, "Emma", 0))

			if tt.borrowFirst {
				_, err := repo.CreateBorrow(ctx, tt.req, borrowDate)
				require.NoError(t, err)
			}

			borrow, err := repo.CreateBorrow(ctx, tt.req, borrowDate)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, student, borrow.StudentID)
				require.Equal(t, book, borrow.BookID)
				require.True(t, borrow.Outstanding())
			}
			require.Equal(t, tt.wantStock, count(t, `select stock from books where id = $1`, book))
			require.Zero(t, count(t, `select stock from books where id = $1`, empty))
		})
	}
}

func TestRepository_ReturnBorrow(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	borrowDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	student := seedStudent(t, "001", true)
	book := seedBook(t, "Dune", 1)
	borrow, err := repo.CreateBorrow(ctx,
		model.CreateBorrowRequest{StudentID: student, BookID: book, DueDate: borrowDate.AddDate(0, 0, 7)}, borrowDate)
	require.NoError(t, err)
	require.Zero(t, count(t, `select stock from books where id = $1`, book))

	returned, err := repo.ReturnBorrow(ctx, borrow.ID, borrowDate.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.False(t, returned.Outstanding())
	require.Equal(t, 1, count(t, `select stock from books where id = $1`, book))

	_, err = repo.ReturnBorrow(ctx, borrow.ID, borrowDate.AddDate(0, 0, 4))
	require.ErrorIs(t, err, errs.ErrAlreadyReturned)
	require.Equal(t, 1, count(t, `select stock from books where id = $1`, book))

	_, err = repo.ReturnBorrow(ctx, 999, borrowDate)
	require.ErrorIs(t, err, errs.ErrNotFound)

	again, err := repo.CreateBorrow(ctx,
		model.CreateBorrowRequest{StudentID: student, BookID: book, DueDate: borrowDate.AddDate(0, 0, 7)}, borrowDate)
	require.NoError(t, err)
	require.NotEqual(t, borrow.ID, again.ID)

	history, err := repo.BorrowHistory(ctx, student)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, again.ID, history[0].ID)
}

func TestRepository_BatchLookups(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	s1 := seedStudent(t, "001", true)
	s2 := seedStudent(t, "002", true)
	s3 := seedStudent(t, "003", false)
	b1 := seedBook(t, "Dune", 5)
	b2 := seedBook(t, "Emma", 5)
	b3 := seedBook(t, "Ulysses", 5)
	for _, br := range []struct{ student, book int }{{s1, b1}, {s2, b1}, {s2, b2}} {
		_, err := repo.CreateBorrow(ctx, model.CreateBorrowRequest{StudentID: br.student, BookID: br.book, DueDate: day.AddDate(0, 0, 7)}, day)
		require.NoError(t, err)
	}
	_, err := pool.Exec(ctx, `insert into borrows (student_id, book_id, borrow_date, due_date) values ($1, $2, $3, $3)`, s3, b3, day)
	require.NoError(t, err)

	snap, err := repo.LedgerSnapshot(ctx, time.Time{})
	require.NoError(t, err)
	require.Equal(t, []int{s1, s2}, snap.StudentIDs)
	require.Len(t, snap.Entries, 3)

	snap, err = repo.LedgerSnapshot(ctx, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Empty(t, snap.Entries)

	popular, err := repo.PopularBooks(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []model.PopularBook{{BookID: b1, Borrows: 2}, {BookID: b2, Borrows: 1}}, popular)

	res := batchResult(rule(0, []int{b1}, b2, 0.5), rule(0, []int{b1, b2}, b3, 1), rule(1, []int{b3}, b1, 0.7))
	res.Assignments = []engine.Assignment{{StudentID: s1, ClusterID: 0}, {StudentID: s2, ClusterID: 0}, {StudentID: s3, ClusterID: 1}}
	batch, err := repo.CreateBatch(ctx, res, true)
	require.NoError(t, err)
	require.Equal(t, 3, batch.RuleCount)

	cluster, err := repo.GetClusterID(ctx, batch.ID, s2)
	require.NoError(t, err)
	require.Zero(t, cluster)
	_, err = repo.GetClusterID(ctx, batch.ID, 999)
	require.ErrorIs(t, err, errs.ErrNotFound)

	rules, err := repo.FindRules(ctx, batch.ID, 0, []string{engine.CanonicalKey([]int{b1, b2}), engine.CanonicalKey([]int{b3})})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Equal(t, []int{b1, b2}, rules[0].Antecedent)
	require.Equal(t, []int{b3}, rules[0].Consequent)

	rules, err = repo.FindRules(ctx, batch.ID, 0, nil)
	require.NoError(t, err)
	require.Empty(t, rules)

	rules, err = repo.GetBatchRules(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, rules, 3)
	require.Equal(t, 1, rules[2].ClusterID)

	sizes, err := repo.ClusterSizes(ctx, batch.ID)
	require.NoError(t, err)
	require.Equal(t, []model.ClusterSize{{ClusterID: 0, Students: 2}, {ClusterID: 1, Students: 1}}, sizes)

	impacted, err := repo.ImpactedStudents(ctx, batch.ID)
	require.NoError(t, err)
	require.Equal(t, []int{s1, s2, s3}, impacted)
}
