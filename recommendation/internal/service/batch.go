package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-recommendation/pkg/kafka"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
)

func (s *Service) TriggerGeneration(ctx context.Context) (model.GenerationRun, error) {
	return s.runner.Trigger(ctx)
}

func (s *Service) GenerationRun(_ context.Context, runID string) (model.GenerationRun, error) {
	return s.runner.Run(runID)
}

func (s *Service) GenerationRuns(_ context.Context) ([]model.GenerationRun, error) {
	return s.runner.Runs(), nil
}

func (s *Service) ListBatches(ctx context.Context) ([]model.Batch, error) {
	return s.repo.ListBatches(ctx)
}

func (s *Service) ActiveBatch(ctx context.Context) (model.Batch, error) {
	return s.repo.GetActiveBatch(ctx)
}

func (s *Service) GetBatchDetail(ctx context.Context, batchID int) (model.BatchDetail, error) {
	batch, err := s.repo.GetBatch(ctx, batchID)
	if err != nil {
		return model.BatchDetail{}, err
	}

	detail := model.BatchDetail{Batch: batch}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		detail.Clusters, err = s.repo.ClusterSizes(gCtx, batchID)
		return err
	})
	g.Go(func() (err error) {
		detail.Rules, err = s.repo.GetBatchRules(gCtx, batchID)
		return err
	})
	if err = g.Wait(); err != nil {
		return model.BatchDetail{}, err
	}
	return detail, nil
}

func (s *Service) SetActive(ctx context.Context, batchID int) error {
	if err := s.repo.SetActive(ctx, batchID); err != nil {
		return err
	}
	s.log.Info("batch activated", zap.Int("batch", batchID))
	s.publish(kafka.BatchActivated, batchID)
	return nil
}

func (s *Service) DeleteBatch(ctx context.Context, batchID int) error {
	if err := s.repo.DeleteBatch(ctx, batchID); err != nil {
		return err
	}
	s.log.Info("batch deleted", zap.Int("batch", batchID))
	s.publish(kafka.BatchDeleted, batchID)
	return nil
}

// LatestSummary describes the most recently generated batch, active or not.
func (s *Service) LatestSummary(ctx context.Context) (model.BatchSummary, error) {
	batch, err := s.repo.LatestBatch(ctx)
	if errors.Is(err, errs.ErrNotFound) {
		return model.BatchSummary{Status: model.SummaryNoData}, nil
	}
	if err != nil {
		return model.BatchSummary{}, err
	}

	var (
		rules    []model.AssociationRule
		students []int
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rules, err = s.repo.GetBatchRules(gCtx, batch.ID)
		return err
	})
	g.Go(func() (err error) {
		students, err = s.repo.ImpactedStudents(gCtx, batch.ID)
		return err
	})
	if err = g.Wait(); err != nil {
		return model.BatchSummary{}, err
	}

	recommended := 0
	for _, r := range rules {
		recommended += len(r.Consequent)
	}
	return model.BatchSummary{
		BatchID:              &batch.ID,
		RuleCount:            len(rules),
		RecommendationsCount: recommended,
		StudentsCount:        len(students),
		Status:               model.SummarySuccess,
		GeneratedAt:          &batch.GeneratedAt,
	}, nil
}

// ImpactedStudents lists the students who borrowed an antecedent book of the
// batch, ordered by name.
func (s *Service) ImpactedStudents(ctx context.Context, batchID int) ([]model.Student, error) {
	if _, err := s.repo.GetBatch(ctx, batchID); err != nil {
		return nil, err
	}
	ids, err := s.repo.ImpactedStudents(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.Student{}, nil
	}
	students, err := s.repo.StudentsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(students, func(i, j int) bool {
		if students[i].Name != students[j].Name {
			return students[i].Name < students[j].Name
		}
		return students[i].ID < students[j].ID
	})
	return students, nil
}

func (s *Service) BooksByIDs(ctx context.Context, ids []int) ([]model.Book, error) {
	return s.repo.BooksByIDs(ctx, ids)
}

func (s *Service) StudentsByIDs(ctx context.Context, ids []int) ([]model.Student, error) {
	return s.repo.StudentsByIDs(ctx, ids)
}

func (s *Service) publish(typ kafka.BatchEventType, batchID int) {
	event := kafka.BatchEvent{
		Type:      typ,
		BatchID:   batchID,
		Timestamp: s.now().UTC(),
	}
	if err := s.publisher.Publish(kafka.BatchTopic, strconv.Itoa(batchID), event); err != nil {
		s.log.Warn("publish batch event", zap.String("type", string(typ)), zap.Error(err))
	}
}
