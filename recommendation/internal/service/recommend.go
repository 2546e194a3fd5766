package service

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-recommendation/recommendation/internal/engine"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
)

// MaxRecommendations caps the count a caller may ask for.
const MaxRecommendations = 50

// Recommend returns up to n books for the student: rule matches from the
// active batch ranked by confidence, then all-time popular books. Books the
// student ever borrowed are never recommended. A missing batch, cluster or
// rule only narrows the result to the popularity fallback.
func (s *Service) Recommend(ctx context.Context, studentID, n int) (model.Recommendations, error) {
	if studentID <= 0 {
		return model.Recommendations{}, errors.Wrap(errs.ErrInvalidInput, "student id must be positive")
	}
	if n <= 0 {
		n = s.opts.TargetCount
	}
	if n > MaxRecommendations {
		return model.Recommendations{}, errors.Wrapf(errs.ErrInvalidInput, "at most %d recommendations", MaxRecommendations)
	}

	var (
		student model.Student
		history []model.Borrow
		batch   *model.Batch
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		student, err = s.repo.GetStudent(gCtx, studentID)
		return err
	})
	g.Go(func() (err error) {
		history, err = s.repo.BorrowHistory(gCtx, studentID)
		return err
	})
	g.Go(func() error {
		active, err := s.repo.GetActiveBatch(gCtx)
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		batch = &active
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.Recommendations{}, err
	}

	out := model.Recommendations{Student: student}
	borrowed := make(map[int]struct{}, len(history))
	for _, b := range history {
		borrowed[b.BookID] = struct{}{}
	}
	picked := newPicks(n, borrowed)

	if batch != nil {
		out.BatchID = &batch.ID
		clusterID, err := s.repo.GetClusterID(ctx, batch.ID, studentID)
		switch {
		case errors.Is(err, errs.ErrNotFound):
			s.log.Debug("student has no cluster", zap.Int("student", studentID), zap.Int("batch", batch.ID))
		case err != nil:
			return model.Recommendations{}, err
		default:
			out.ClusterID = &clusterID
			if err = s.matchRules(ctx, batch.ID, clusterID, history, picked); err != nil {
				return model.Recommendations{}, err
			}
		}
	}

	if !picked.full() {
		// enough ranked books to fill up even if every excluded one ranks first
		limit := n + len(borrowed) + len(picked.ids)
		popular, err := s.popular.Top(ctx, limit)
		if err != nil {
			return model.Recommendations{}, errors.Wrap(err, "popular books")
		}
		for _, p := range popular {
			picked.add(p.BookID, model.SourcePopularity, float64(p.Borrows))
		}
	}

	recs, err := s.resolve(ctx, picked)
	if err != nil {
		return model.Recommendations{}, err
	}
	out.Recommendations = recs
	return out, nil
}

// RecentKeys builds the antecedent keys looked up for a student: every book
// of the latest borrows on its own and the two most recent books as a pair.
// history must be ordered newest first.
func RecentKeys(history []model.Borrow, recent int) []string {
	var books []int
	for i := 0; i < len(history) && i < recent; i++ {
		if !containsInt(books, history[i].BookID) {
			books = append(books, history[i].BookID)
		}
	}
	keys := make([]string, 0, len(books)+1)
	for _, id := range books {
		keys = append(keys, engine.CanonicalKey([]int{id}))
	}
	if len(books) >= 2 {
		keys = append(keys, engine.CanonicalKey(books[:2]))
	}
	return keys
}

func (s *Service) matchRules(ctx context.Context, batchID, clusterID int, history []model.Borrow, picked *picks) error {
	keys := RecentKeys(history, s.opts.RecentBorrows)
	if len(keys) == 0 {
		return nil
	}
	rules, err := s.repo.FindRules(ctx, batchID, clusterID, keys)
	if err != nil {
		return errors.Wrap(err, "find rules")
	}
	for _, r := range rules {
		if err = checkStoredRule(r); err != nil {
			s.log.Error("corrupt rule", zap.Int("batch", batchID), zap.Int("cluster", clusterID), zap.Error(err))
			return errors.Wrapf(errs.ErrCorruptBatch, "batch %d: %v", batchID, err)
		}
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Confidence != rules[j].Confidence {
			return rules[i].Confidence > rules[j].Confidence
		}
		if rules[i].Support != rules[j].Support {
			return rules[i].Support > rules[j].Support
		}
		return rules[i].AntecedentKey < rules[j].AntecedentKey
	})
	for _, r := range rules {
		for _, id := range r.Consequent {
			picked.add(id, model.SourceRule, r.Confidence)
		}
	}
	return nil
}

// checkStoredRule rejects persisted rules that could not have been produced
// by the miner.
func checkStoredRule(r model.AssociationRule) error {
	ids, err := engine.ParseKey(r.AntecedentKey)
	if err != nil {
		return err
	}
	if engine.CanonicalKey(r.Antecedent) != r.AntecedentKey || len(ids) != len(r.Antecedent) {
		return errors.Errorf("antecedent %v does not match key %q", r.Antecedent, r.AntecedentKey)
	}
	return engine.ValidateRule(engine.Rule{
		ClusterID:  r.ClusterID,
		Antecedent: r.Antecedent,
		Consequent: r.Consequent,
		Support:    r.Support,
		Confidence: r.Confidence,
	})
}

func (s *Service) resolve(ctx context.Context, picked *picks) ([]model.RecommendedBook, error) {
	if len(picked.ids) == 0 {
		return []model.RecommendedBook{}, nil
	}
	books, err := s.repo.BooksByIDs(ctx, picked.ids)
	if err != nil {
		return nil, errors.Wrap(err, "books")
	}
	byID := make(map[int]model.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	out := make([]model.RecommendedBook, 0, len(picked.ids))
	for i, id := range picked.ids {
		book, ok := byID[id]
		if !ok {
			s.log.Warn("recommended book is not in the catalog", zap.Int("book", id))
			continue
		}
		out = append(out, model.RecommendedBook{
			Book:   book,
			Source: picked.sources[i],
			Score:  picked.scores[i],
		})
	}
	return out, nil
}

// picks collects up to n distinct books in ranking order.
type picks struct {
	n        int
	excluded map[int]struct{}
	seen     map[int]struct{}
	ids      []int
	sources  []model.RecommendationSource
	scores   []float64
}

func newPicks(n int, excluded map[int]struct{}) *picks {
	return &picks{
		n:        n,
		excluded: excluded,
		seen:     make(map[int]struct{}, n),
	}
}

func (p *picks) full() bool {
	return len(p.ids) >= p.n
}

func (p *picks) add(id int, source model.RecommendationSource, score float64) {
	if p.full() {
		return
	}
	if _, ok := p.excluded[id]; ok {
		return
	}
	if _, ok := p.seen[id]; ok {
		return
	}
	p.seen[id] = struct{}{}
	p.ids = append(p.ids, id)
	p.sources = append(p.sources, source)
	p.scores = append(p.scores, score)
}

func containsInt(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
