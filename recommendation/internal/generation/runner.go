package generation

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-recommendation/pkg/kafka"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/engine"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
)

type BatchWriter interface {
	CreateBatch(ctx context.Context, res engine.Result, activate bool) (model.Batch, error)
}

// historySize is how many finished runs are kept for polling.
const historySize = 50

// Runner executes at most one generation run at a time in the background.
// A run either commits one complete batch or nothing.
type Runner struct {
	source       Source
	store        BatchWriter
	publisher    kafka.Publisher
	cb           circuit_breaker.CircuitBreaker
	autoActivate bool
	log          *zap.Logger
	now          func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	running string
	runs    map[string]*model.GenerationRun
}

func NewRunner(
	source Source,
	store BatchWriter,
	publisher kafka.Publisher,
	cb circuit_breaker.CircuitBreaker,
	autoActivate bool,
	log *zap.Logger,
) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		source:       source,
		store:        store,
		publisher:    publisher,
		cb:           cb,
		autoActivate: autoActivate,
		log:          log.Named("runner"),
		now:          time.Now,
		ctx:          ctx,
		cancel:       cancel,
		runs:         make(map[string]*model.GenerationRun),
	}
}

// Trigger starts a run and returns immediately.
func (r *Runner) Trigger(_ context.Context) (model.GenerationRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ctx.Err() != nil {
		return model.GenerationRun{}, errs.ErrGenerationUnavailable
	}
	if r.running != "" {
		return model.GenerationRun{}, errs.ErrGenerationRunning
	}
	if r.cb.State() == circuit_breaker.Open {
		return model.GenerationRun{}, errs.ErrGenerationUnavailable
	}

	run := &model.GenerationRun{
		RunID:      uuid.NewString(),
		State:      model.RunRunning,
		AcceptedAt: r.now().UTC(),
	}
	r.running = run.RunID
	r.runs[run.RunID] = run
	r.evict()

	r.wg.Add(1)
	go r.execute(run.RunID)

	r.log.Info("generation accepted", zap.String("run", run.RunID))
	return *run, nil
}

func (r *Runner) execute(runID string) {
	defer r.wg.Done()

	var batch model.Batch
	err := r.cb.Call(func() (err error) {
		// panics in source or store fail the run like any other error
		defer func() {
			if p := recover(); p != nil {
				err = errors.Errorf("generation panicked: %v", p)
			}
		}()
		res, err := r.source.Generate(r.ctx)
		if err != nil {
			return err
		}
		batch, err = r.store.CreateBatch(r.ctx, res, r.autoActivate)
		return errors.Wrap(err, "store batch")
	})
	if errors.Is(err, circuit_breaker.ErrOpenCB) {
		err = errs.ErrGenerationUnavailable
	}
	r.finish(runID, batch, err)
	if err != nil {
		r.log.Error("generation failed", zap.String("run", runID), zap.Error(err))
		return
	}

	r.log.Info("generation finished",
		zap.String("run", runID),
		zap.Int("batch", batch.ID),
		zap.Int("rules", batch.RuleCount),
		zap.Int("clusters", batch.ClusterCount),
	)
	r.publish(kafka.BatchGenerated, batch.ID, runID)
	if batch.IsActive {
		r.publish(kafka.BatchActivated, batch.ID, runID)
	}
}

func (r *Runner) finish(runID string, batch model.Batch, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	finished := r.now().UTC()
	if run, ok := r.runs[runID]; ok {
		run.FinishedAt = &finished
		if err != nil {
			run.State = model.RunFailed
			run.Error = err.Error()
		} else {
			id := batch.ID
			run.State = model.RunSucceeded
			run.BatchID = &id
			run.RuleCount = batch.RuleCount
		}
	}
	r.running = ""
}

func (r *Runner) publish(typ kafka.BatchEventType, batchID int, runID string) {
	event := kafka.BatchEvent{
		Type:      typ,
		BatchID:   batchID,
		RunID:     runID,
		Timestamp: r.now().UTC(),
	}
	if err := r.publisher.Publish(kafka.BatchTopic, strconv.Itoa(batchID), event); err != nil {
		r.log.Warn("publish batch event", zap.String("type", string(typ)), zap.Error(err))
	}
}

// evict drops the oldest finished runs beyond historySize.
func (r *Runner) evict() {
	if len(r.runs) <= historySize {
		return
	}
	runs := r.sorted()
	for _, run := range runs[historySize:] {
		if run.RunID != r.running {
			delete(r.runs, run.RunID)
		}
	}
}

func (r *Runner) sorted() []model.GenerationRun {
	runs := make([]model.GenerationRun, 0, len(r.runs))
	for _, run := range r.runs {
		runs = append(runs, *run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].AcceptedAt.Equal(runs[j].AcceptedAt) {
			return runs[i].AcceptedAt.After(runs[j].AcceptedAt)
		}
		return runs[i].RunID < runs[j].RunID
	})
	return runs
}

func (r *Runner) Run(runID string) (model.GenerationRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[runID]
	if !ok {
		return model.GenerationRun{}, errs.ErrNotFound
	}
	return *run, nil
}

// Runs lists the known runs, newest first.
func (r *Runner) Runs() []model.GenerationRun {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted()
}

// Wait blocks until the current run, if any, is finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Close cancels a run in progress and waits for it. No run is accepted after.
func (r *Runner) Close() {
	r.mu.Lock()
	r.cancel()
	r.mu.Unlock()
	r.wg.Wait()
}
