package engine

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Params configure one generation run.
type Params struct {
	Clusters      int          `json:"clusters"`
	MaxIterations int          `json:"maxIterations"`
	Mining        MiningParams `json:"mining"`
}

func (p Params) Validate() error {
	switch {
	case p.Clusters < 1:
		return errors.Errorf("clusters must be positive, got %d", p.Clusters)
	case p.MaxIterations < 1:
		return errors.Errorf("max iterations must be positive, got %d", p.MaxIterations)
	case p.Mining.MinSupport <= 0 || p.Mining.MinSupport > 1:
		return errors.Errorf("min support must be in (0, 1], got %v", p.Mining.MinSupport)
	case p.Mining.MinConfidence <= 0 || p.Mining.MinConfidence > 1:
		return errors.Errorf("min confidence must be in (0, 1], got %v", p.Mining.MinConfidence)
	case p.Mining.MaxItemsetSize < 2:
		return errors.Errorf("max itemset size must be at least 2, got %d", p.Mining.MaxItemsetSize)
	}
	return nil
}

type Assignment struct {
	StudentID int `json:"studentId"`
	ClusterID int `json:"clusterId"`
}

// Result is everything one generation run produces. It is also the JSON
// document the generator process writes to stdout.
type Result struct {
	GeneratedAt      time.Time    `json:"generatedAt"`
	Params           Params       `json:"params"`
	ClusterCount     int          `json:"clusterCount"`
	StudentCount     int          `json:"studentCount"`
	TransactionCount int          `json:"transactionCount"`
	Iterations       int          `json:"iterations"`
	Converged        bool         `json:"converged"`
	Assignments      []Assignment `json:"assignments"`
	Rules            []Rule       `json:"rules"`
}

// Generate runs the whole pipeline: features, clustering and per-cluster
// rule mining. It either returns a complete result or an error.
func Generate(ctx context.Context, snap Snapshot, p Params, now time.Time) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, errors.Wrap(err, "params")
	}

	features := BuildFeatures(snap, now)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	clustering := KMeans(features.Vectors, p.Clusters, p.MaxIterations)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{
		GeneratedAt:  now.UTC(),
		Params:       p,
		ClusterCount: clustering.K,
		StudentCount: len(features.Vectors),
		Iterations:   clustering.Iterations,
		Converged:    clustering.Converged,
		Assignments:  make([]Assignment, 0, len(features.Vectors)),
		Rules:        []Rule{},
	}

	byCluster := make([][][]int, clustering.K)
	for _, v := range features.Vectors {
		cid := clustering.Assignments[v.StudentID]
		res.Assignments = append(res.Assignments, Assignment{StudentID: v.StudentID, ClusterID: cid})
		if tx := features.Transactions[v.StudentID]; len(tx) > 0 {
			byCluster[cid] = append(byCluster[cid], tx)
			res.TransactionCount++
		}
	}

	for cid, txs := range byCluster {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res.Rules = append(res.Rules, MineRules(cid, txs, p.Mining)...)
	}

	if err := res.Validate(); err != nil {
		return Result{}, errors.Wrap(err, "generated result")
	}
	return res, nil
}

// Validate checks the structural guarantees a result must satisfy before it
// may be stored: every assignment points at an existing cluster, every rule
// has bounded metrics, a canonical antecedent of size 1 or 2 and a non-empty
// consequent disjoint from it, and antecedents are unique per cluster.
func (r Result) Validate() error {
	if r.ClusterCount < 0 {
		return errors.Errorf("negative cluster count %d", r.ClusterCount)
	}
	if len(r.Assignments) != r.StudentCount {
		return errors.Errorf("%d assignments for %d students", len(r.Assignments), r.StudentCount)
	}
	seen := make(map[int]struct{}, len(r.Assignments))
	for _, a := range r.Assignments {
		if a.ClusterID < 0 || a.ClusterID >= r.ClusterCount {
			return errors.Errorf("student %d assigned to unknown cluster %d", a.StudentID, a.ClusterID)
		}
		if _, ok := seen[a.StudentID]; ok {
			return errors.Errorf("student %d assigned twice", a.StudentID)
		}
		seen[a.StudentID] = struct{}{}
	}

	keys := make(map[int]map[string]struct{})
	for _, rule := range r.Rules {
		if rule.ClusterID < 0 || rule.ClusterID >= r.ClusterCount {
			return errors.Errorf("rule for unknown cluster %d", rule.ClusterID)
		}
		if err := ValidateRule(rule); err != nil {
			return err
		}
		if keys[rule.ClusterID] == nil {
			keys[rule.ClusterID] = make(map[string]struct{})
		}
		key := rule.Key()
		if _, ok := keys[rule.ClusterID][key]; ok {
			return errors.Errorf("duplicate antecedent %q in cluster %d", key, rule.ClusterID)
		}
		keys[rule.ClusterID][key] = struct{}{}
	}
	return nil
}

// ValidateRule checks a single rule, stored or freshly mined.
func ValidateRule(rule Rule) error {
	if n := len(rule.Antecedent); n < 1 || n > MaxAntecedentSize {
		return errors.Errorf("antecedent size %d out of range", n)
	}
	if !IsCanonical(rule.Antecedent) {
		return errors.Errorf("antecedent %v is not canonical", rule.Antecedent)
	}
	if len(rule.Consequent) == 0 {
		return errors.Errorf("rule %q has an empty consequent", rule.Key())
	}
	for _, id := range rule.Consequent {
		if containsInt(rule.Antecedent, id) {
			return errors.Errorf("rule %q recommends its own antecedent %d", rule.Key(), id)
		}
	}
	if rule.Support < 0 || rule.Support > 1 {
		return errors.Errorf("rule %q support %v out of [0, 1]", rule.Key(), rule.Support)
	}
	if rule.Confidence < 0 || rule.Confidence > 1 {
		return errors.Errorf("rule %q confidence %v out of [0, 1]", rule.Key(), rule.Confidence)
	}
	return nil
}
