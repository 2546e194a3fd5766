package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/pkg/kafka"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/service"

	repo_mocks "github.com/Astemirdum/library-recommendation/recommendation/internal/repository/mocks"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.BatchEvent
}

func (p *recordingPublisher) Publish(topic, _ string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if topic == kafka.BatchTopic {
		p.events = append(p.events, v.(kafka.BatchEvent))
	}
	return nil
}

type fakeRunner struct {
	run model.GenerationRun
	err error
}

func (r *fakeRunner) Trigger(context.Context) (model.GenerationRun, error) { return r.run, r.err }

func (r *fakeRunner) Run(runID string) (model.GenerationRun, error) {
	if runID != r.run.RunID {
		return model.GenerationRun{}, errs.ErrNotFound
	}
	return r.run, nil
}

func (r *fakeRunner) Runs() []model.GenerationRun { return []model.GenerationRun{r.run} }

func newBatchService(repo *repo_mocks.MockRepository, pub kafka.Publisher, runner service.GenerationRunner) *service.Service {
	return service.NewService(repo, &fakePopular{}, runner, pub, service.Options{}, zap.NewNop())
}

func TestService_SetActive(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	pub := &recordingPublisher{}
	svc := newBatchService(repo, pub, nil)

	repo.EXPECT().SetActive(gomock.Any(), 2).Return(nil)
	repo.EXPECT().SetActive(gomock.Any(), 9).Return(errs.ErrNotFound)

	require.NoError(t, svc.SetActive(context.Background(), 2))
	require.ErrorIs(t, svc.SetActive(context.Background(), 9), errs.ErrNotFound)

	require.Len(t, pub.events, 1)
	require.Equal(t, kafka.BatchActivated, pub.events[0].Type)
	require.Equal(t, 2, pub.events[0].BatchID)
}

func TestService_DeleteBatch(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	pub := &recordingPublisher{}
	svc := newBatchService(repo, pub, nil)

	repo.EXPECT().DeleteBatch(gomock.Any(), 4).Return(nil)
	repo.EXPECT().DeleteBatch(gomock.Any(), 5).Return(errs.ErrNotFound)

	require.NoError(t, svc.DeleteBatch(context.Background(), 4))
	require.ErrorIs(t, svc.DeleteBatch(context.Background(), 5), errs.ErrNotFound)
	require.Len(t, pub.events, 1)
	require.Equal(t, kafka.BatchDeleted, pub.events[0].Type)
}

func TestService_GetBatchDetail(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := newBatchService(repo, kafka.NopPublisher(), nil)

	batch := model.Batch{ID: 3, ClusterCount: 2, RuleCount: 1}
	rules := []model.AssociationRule{{ClusterID: 1, Antecedent: []int{7}, AntecedentKey: "7", Consequent: []int{3, 9}, Support: 0.5, Confidence: 0.8}}
	sizes := []model.ClusterSize{{ClusterID: 0, Students: 4}, {ClusterID: 1, Students: 2}}
	repo.EXPECT().GetBatch(gomock.Any(), 3).Return(batch, nil)
	repo.EXPECT().ClusterSizes(gomock.Any(), 3).Return(sizes, nil)
	repo.EXPECT().GetBatchRules(gomock.Any(), 3).Return(rules, nil)
	repo.EXPECT().GetBatch(gomock.Any(), 8).Return(model.Batch{}, errs.ErrNotFound)

	detail, err := svc.GetBatchDetail(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, model.BatchDetail{Batch: batch, Clusters: sizes, Rules: rules}, detail)

	_, err = svc.GetBatchDetail(context.Background(), 8)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_LatestSummary(t *testing.T) {
	t.Parallel()
	generated := time.Date(2024, 5, 1, 2, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		mock func(r *repo_mocks.MockRepository)
		want model.BatchSummary
	}{
		{
			name: "no batches",
			mock: func(r *repo_mocks.MockRepository) {
				r.EXPECT().LatestBatch(gomock.Any()).Return(model.Batch{}, errs.ErrNotFound)
			},
			want: model.BatchSummary{Status: model.SummaryNoData},
		},
		{
			name: "latest batch",
			mock: func(r *repo_mocks.MockRepository) {
				r.EXPECT().LatestBatch(gomock.Any()).Return(model.Batch{ID: 6, GeneratedAt: generated}, nil)
				r.EXPECT().GetBatchRules(gomock.Any(), 6).Return([]model.AssociationRule{
					{Antecedent: []int{1}, AntecedentKey: "1", Consequent: []int{2, 3}},
					{Antecedent: []int{1, 2}, AntecedentKey: "1,2", Consequent: []int{4}},
				}, nil)
				r.EXPECT().ImpactedStudents(gomock.Any(), 6).Return([]int{3, 5, 8, 13}, nil)
			},
			want: model.BatchSummary{
				BatchID:              intPtr(6),
				RuleCount:            2,
				RecommendationsCount: 3,
				StudentsCount:        4,
				Status:               model.SummarySuccess,
				GeneratedAt:          &generated,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mock(repo)

			got, err := newBatchService(repo, kafka.NopPublisher(), nil).LatestSummary(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ImpactedStudents(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := newBatchService(repo, kafka.NopPublisher(), nil)

	repo.EXPECT().GetBatch(gomock.Any(), 2).Return(model.Batch{ID: 2}, nil)
	repo.EXPECT().ImpactedStudents(gomock.Any(), 2).Return([]int{1, 2, 3}, nil)
	repo.EXPECT().StudentsByIDs(gomock.Any(), []int{1, 2, 3}).Return([]model.Student{
		{ID: 1, Name: "Rina"}, {ID: 2, Name: "Agus"}, {ID: 3, Name: "Dewi"},
	}, nil)

	students, err := svc.ImpactedStudents(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, []model.Student{{ID: 2, Name: "Agus"}, {ID: 3, Name: "Dewi"}, {ID: 1, Name: "Rina"}}, students)

	repo.EXPECT().GetBatch(gomock.Any(), 4).Return(model.Batch{ID: 4}, nil)
	repo.EXPECT().ImpactedStudents(gomock.Any(), 4).Return(nil, nil)
	students, err = svc.ImpactedStudents(context.Background(), 4)
	require.NoError(t, err)
	require.Empty(t, students)
}

func TestService_Generation(t *testing.T) {
	t.Parallel()
	accepted := time.Date(2024, 5, 1, 2, 0, 0, 0, time.UTC)
	runner := &fakeRunner{run: model.GenerationRun{RunID: "run-1", State: model.RunRunning, AcceptedAt: accepted}}
	svc := newBatchService(nil, kafka.NopPublisher(), runner)

	run, err := svc.TriggerGeneration(context.Background())
	require.NoError(t, err)
	require.Equal(t, runner.run, run)

	got, err := svc.GenerationRun(context.Background(), "run-1")
	require.NoError(t, err)
	require.Equal(t, runner.run, got)

	_, err = svc.GenerationRun(context.Background(), "run-2")
	require.ErrorIs(t, err, errs.ErrNotFound)

	runs, err := svc.GenerationRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)

	runner.err = errs.ErrGenerationRunning
	_, err = svc.TriggerGeneration(context.Background())
	require.ErrorIs(t, err, errs.ErrGenerationRunning)
}
