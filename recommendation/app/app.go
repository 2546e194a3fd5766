package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-recommendation/pkg/kafka"
	"github.com/Astemirdum/library-recommendation/pkg/logger"
	"github.com/Astemirdum/library-recommendation/pkg/postgres"
	"github.com/Astemirdum/library-recommendation/recommendation/config"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/cache"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/generation"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/handler"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/repository"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/server"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/service"
	"github.com/Astemirdum/library-recommendation/recommendation/migrations"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "recommendation")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}

	store, closeStore, err := cache.NewRedisStore(ctx, cfg.Redis)
	if err != nil {
		return errors.Wrap(err, "redis")
	}
	defer closeStore() //nolint:errcheck
	popular := cache.NewPopularity(store, repo.PopularBooks, cfg.Redis.TTL, log)

	publisher := kafka.NopPublisher()
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka.NewProducer")
		}
		defer producer.Close() //nolint:errcheck
		publisher = kafka.NewPublisher(producer)
	}

	source, err := newSource(cfg, repo, log)
	if err != nil {
		return err
	}
	cb := circuit_breaker.New(
		cfg.Generator.BreakerRecords,
		cfg.Generator.BreakerTimeout,
		cfg.Generator.BreakerFailures,
		cfg.Generator.BreakerRecovery,
	)
	runner := generation.NewRunner(source, repo, publisher, cb, cfg.Generator.AutoActivate, log)
	defer runner.Close()

	svc := service.NewService(repo, popular, runner, publisher, service.Options{
		TargetCount:   cfg.Engine.TargetCount,
		RecentBorrows: cfg.Engine.RecentBorrows,
	}, log)

	if cfg.Kafka.Enabled() {
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.RecommendationConsumerGroup)
		if err != nil {
			return errors.Wrap(err, "kafka.NewConsumer")
		}
		defer consumer.Close() //nolint:errcheck
		go kafka.Consume(ctx, consumer, handler.NewConsumer(svc.TriggerGeneration, log), log, kafka.GenerateTopic)
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.Run()
	}()

	select {
	case err = <-srvErr:
		if err != nil {
			return errors.Wrap(err, "server run")
		}
	case <-ctx.Done():
		log.Debug("Graceful shutdown")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}

func newSource(cfg *config.Config, repo generation.LedgerReader, log *zap.Logger) (generation.Source, error) {
	switch cfg.Generator.Mode {
	case config.GeneratorModeInProcess:
		return generation.NewInProcessSource(repo, cfg.Engine.Params(), cfg.Engine.LedgerSince), nil
	case config.GeneratorModeExec:
		argv := strings.Fields(cfg.Generator.Command)
		if len(argv) == 0 {
			return nil, errors.New("empty generator command")
		}
		return generation.NewExecSource(argv[0], argv[1:], cfg.Generator.Timeout, log), nil
	}
	return nil, errors.Errorf("unknown generator mode %q", cfg.Generator.Mode)
}
