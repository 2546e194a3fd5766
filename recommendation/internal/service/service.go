package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/pkg/kafka"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/repository"
)

type PopularityRanker interface {
	Top(ctx context.Context, limit int) ([]model.PopularBook, error)
	Invalidate(ctx context.Context)
}

type GenerationRunner interface {
	Trigger(ctx context.Context) (model.GenerationRun, error)
	Run(runID string) (model.GenerationRun, error)
	Runs() []model.GenerationRun
}

type Options struct {
	// TargetCount is the number of recommendations returned when the caller
	// does not ask for a specific count.
	TargetCount int
	// RecentBorrows is how many of the latest borrows feed rule lookup.
	RecentBorrows int
}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	popular   PopularityRanker
	runner    GenerationRunner
	publisher kafka.Publisher
	opts      Options
	now       func() time.Time
}

func NewService(
	repo repository.Repository,
	popular PopularityRanker,
	runner GenerationRunner,
	publisher kafka.Publisher,
	opts Options,
	log *zap.Logger,
) *Service {
	if opts.TargetCount <= 0 {
		opts.TargetCount = 5
	}
	if opts.RecentBorrows <= 0 {
		opts.RecentBorrows = 3
	}
	return &Service{
		log:       log.Named("service"),
		repo:      repo,
		popular:   popular,
		runner:    runner,
		publisher: publisher,
		opts:      opts,
		now:       time.Now,
	}
}
