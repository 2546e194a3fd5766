package engine

import (
	"sort"
)

// MiningParams are the Apriori thresholds.
type MiningParams struct {
	MinSupport    float64 `json:"minSupport"`
	MinConfidence float64 `json:"minConfidence"`
	// MaxItemsetSize bounds frequent itemsets; 3 allows pair antecedents
	// with a single consequent and single antecedents with pair consequents.
	MaxItemsetSize int `json:"maxItemsetSize"`
}

const MaxAntecedentSize = 2

// Rule says: a student of ClusterID who borrowed every Antecedent book is
// likely to borrow the Consequent books.
type Rule struct {
	ClusterID  int     `json:"clusterId"`
	Antecedent []int   `json:"antecedent"`
	Consequent []int   `json:"consequent"`
	Support    float64 `json:"support"`
	Confidence float64 `json:"confidence"`
}

func (r Rule) Key() string {
	return CanonicalKey(r.Antecedent)
}

type itemset struct {
	items []int
	count int
}

// MineRules mines association rules from the transactions of one cluster.
// A transaction is the set of books one student borrowed; empty transactions
// are ignored. Rules sharing an antecedent are merged into one rule whose
// consequent is the union, ordered by the confidence of each book, and whose
// confidence and support are the best of the merged rules.
func MineRules(clusterID int, transactions [][]int, p MiningParams) []Rule {
	txs := make([]map[int]struct{}, 0, len(transactions))
	for _, t := range transactions {
		if len(t) == 0 {
			continue
		}
		set := make(map[int]struct{}, len(t))
		for _, id := range t {
			set[id] = struct{}{}
		}
		txs = append(txs, set)
	}
	if len(txs) == 0 {
		return nil
	}
	maxSize := p.MaxItemsetSize
	if maxSize < 2 {
		maxSize = 2
	}

	frequent := frequentItemsets(txs, p.MinSupport, maxSize)
	counts := make(map[string]int, len(frequent))
	for _, fs := range frequent {
		counts[CanonicalKey(fs.items)] = fs.count
	}

	total := float64(len(txs))
	merged := make(map[string]*mergedRule)
	for _, fs := range frequent {
		if len(fs.items) < 2 {
			continue
		}
		for _, ante := range antecedentsOf(fs.items) {
			anteCount := counts[CanonicalKey(ante)]
			if anteCount == 0 {
				continue
			}
			conf := float64(fs.count) / float64(anteCount)
			if conf < p.MinConfidence {
				continue
			}
			key := CanonicalKey(ante)
			m, ok := merged[key]
			if !ok {
				m = &mergedRule{antecedent: ante, books: make(map[int]float64)}
				merged[key] = m
			}
			m.add(difference(fs.items, ante), float64(fs.count)/total, conf)
		}
	}

	rules := make([]Rule, 0, len(merged))
	for _, m := range merged {
		rules = append(rules, m.rule(clusterID))
	}
	sort.Slice(rules, func(i, j int) bool {
		return lessIDs(rules[i].Antecedent, rules[j].Antecedent)
	})
	return rules
}

type mergedRule struct {
	antecedent []int
	books      map[int]float64
	support    float64
	confidence float64
}

func (m *mergedRule) add(consequent []int, support, confidence float64) {
	for _, id := range consequent {
		if confidence > m.books[id] {
			m.books[id] = confidence
		}
	}
	if confidence > m.confidence {
		m.confidence = confidence
	}
	if support > m.support {
		m.support = support
	}
}

func (m *mergedRule) rule(clusterID int) Rule {
	consequent := make([]int, 0, len(m.books))
	for id := range m.books {
		consequent = append(consequent, id)
	}
	sort.Slice(consequent, func(i, j int) bool {
		ci, cj := m.books[consequent[i]], m.books[consequent[j]]
		if ci != cj {
			return ci > cj
		}
		return consequent[i] < consequent[j]
	})
	return Rule{
		ClusterID:  clusterID,
		Antecedent: m.antecedent,
		Consequent: consequent,
		Support:    m.support,
		Confidence: m.confidence,
	}
}

// frequentItemsets runs level-wise Apriori up to maxSize.
func frequentItemsets(txs []map[int]struct{}, minSupport float64, maxSize int) []itemset {
	total := float64(len(txs))
	isFrequent := func(count int) bool {
		return count > 0 && float64(count)/total >= minSupport
	}

	singles := make(map[int]int)
	for _, tx := range txs {
		for id := range tx {
			singles[id]++
		}
	}
	level := make([]itemset, 0, len(singles))
	for id, c := range singles {
		if isFrequent(c) {
			level = append(level, itemset{items: []int{id}, count: c})
		}
	}
	sortItemsets(level)

	var all []itemset
	for size := 1; len(level) > 0; size++ {
		all = append(all, level...)
		if size == maxSize {
			break
		}
		candidates := joinLevel(level)
		next := make([]itemset, 0, len(candidates))
		for _, cand := range candidates {
			c := 0
			for _, tx := range txs {
				if containsAll(tx, cand) {
					c++
				}
			}
			if isFrequent(c) {
				next = append(next, itemset{items: cand, count: c})
			}
		}
		level = next
	}
	return all
}

// joinLevel builds size k+1 candidates from sorted frequent k-itemsets that
// share their first k-1 items, pruning candidates with an infrequent subset.
func joinLevel(level []itemset) [][]int {
	known := make(map[string]struct{}, len(level))
	for _, fs := range level {
		known[CanonicalKey(fs.items)] = struct{}{}
	}
	var out [][]int
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			a, b := level[i].items, level[j].items
			if !samePrefix(a, b) {
				continue
			}
			cand := make([]int, len(a)+1)
			copy(cand, a)
			cand[len(a)] = b[len(b)-1]
			if cand[len(a)-1] > cand[len(a)] {
				cand[len(a)-1], cand[len(a)] = cand[len(a)], cand[len(a)-1]
			}
			if allSubsetsKnown(cand, known) {
				out = append(out, cand)
			}
		}
	}
	return out
}

func samePrefix(a, b []int) bool {
	for i := 0; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func allSubsetsKnown(cand []int, known map[string]struct{}) bool {
	sub := make([]int, 0, len(cand)-1)
	for skip := range cand {
		sub = sub[:0]
		for i, id := range cand {
			if i != skip {
				sub = append(sub, id)
			}
		}
		if _, ok := known[CanonicalKey(sub)]; !ok {
			return false
		}
	}
	return true
}

// antecedentsOf lists the non-empty proper subsets of items that are small
// enough to be antecedents. items must be canonical.
func antecedentsOf(items []int) [][]int {
	var out [][]int
	n := len(items)
	for mask := 1; mask < (1<<n)-1; mask++ {
		var sub []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sub = append(sub, items[i])
			}
		}
		if len(sub) <= MaxAntecedentSize {
			out = append(out, sub)
		}
	}
	return out
}

func difference(items, remove []int) []int {
	out := make([]int, 0, len(items)-len(remove))
	for _, id := range items {
		if !containsInt(remove, id) {
			out = append(out, id)
		}
	}
	return out
}

func containsAll(tx map[int]struct{}, items []int) bool {
	for _, id := range items {
		if _, ok := tx[id]; !ok {
			return false
		}
	}
	return true
}

func containsInt(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func sortItemsets(sets []itemset) {
	sort.Slice(sets, func(i, j int) bool {
		return lessIDs(sets[i].items, sets[j].items)
	})
}

// lessIDs orders by length, then element-wise.
func lessIDs(a, b []int) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
