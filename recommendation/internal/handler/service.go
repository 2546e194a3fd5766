package handler

import (
	"context"

	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RecommendationService interface {
	Recommend(ctx context.Context, studentID, n int) (model.Recommendations, error)
	StudentHistory(ctx context.Context, studentID int) ([]model.Borrow, error)
	Borrow(ctx context.Context, req model.CreateBorrowRequest) (model.Borrow, error)
	Return(ctx context.Context, borrowID int) (model.Borrow, error)
	TriggerGeneration(ctx context.Context) (model.GenerationRun, error)
	GenerationRun(ctx context.Context, runID string) (model.GenerationRun, error)
	GenerationRuns(ctx context.Context) ([]model.GenerationRun, error)
	ListBatches(ctx context.Context) ([]model.Batch, error)
	ActiveBatch(ctx context.Context) (model.Batch, error)
	GetBatchDetail(ctx context.Context, batchID int) (model.BatchDetail, error)
	SetActive(ctx context.Context, batchID int) error
	DeleteBatch(ctx context.Context, batchID int) error
	LatestSummary(ctx context.Context) (model.BatchSummary, error)
	ImpactedStudents(ctx context.Context, batchID int) ([]model.Student, error)
	BooksByIDs(ctx context.Context, ids []int) ([]model.Book, error)
	StudentsByIDs(ctx context.Context, ids []int) ([]model.Student, error)
}

var _ RecommendationService = (*service.Service)(nil)
