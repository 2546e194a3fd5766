package app

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/pkg/logger"
	"github.com/Astemirdum/library-recommendation/pkg/postgres"
	"github.com/Astemirdum/library-recommendation/recommendation/config"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/engine"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/repository"
)

// RunGenerator reads the ledger, runs the pipeline and writes the result as
// one JSON document to stdout. It never writes to recommendation tables.
func RunGenerator(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "generator")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, nil)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}

	now := time.Now()
	snap, err := repo.LedgerSnapshot(ctx, cfg.Engine.LedgerSince(now))
	if err != nil {
		return errors.Wrap(err, "ledger snapshot")
	}
	res, err := engine.Generate(ctx, snap, cfg.Engine.Params(), now)
	if err != nil {
		return errors.Wrap(err, "generate")
	}
	log.Info("generated",
		zap.Int("students", res.StudentCount),
		zap.Int("clusters", res.ClusterCount),
		zap.Int("rules", len(res.Rules)),
		zap.Int("iterations", res.Iterations),
		zap.Bool("converged", res.Converged))

	return json.NewEncoder(os.Stdout).Encode(res)
}
