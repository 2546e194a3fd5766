package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/pkg/kafka"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
)

type trigger func(ctx context.Context) (model.GenerationRun, error)

// Consumer starts a generation run for every request on kafka.GenerateTopic.
// Requests arriving while a run is in progress are folded into that run.
type Consumer struct {
	triggerHandler trigger
	log            *zap.Logger
}

func NewConsumer(trigger trigger, log *zap.Logger) *Consumer {
	return &Consumer{
		triggerHandler: trigger,
		log:            log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			consumer.handle(session.Context(), message)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) {
	var req kafka.GenerateRequest
	if err := json.Unmarshal(message.Value, &req); err != nil {
		consumer.log.Error("bad generate request", zap.Error(err), zap.ByteString("value", message.Value))
		return
	}

	run, err := consumer.triggerHandler(ctx)
	switch {
	case errors.Is(err, errs.ErrGenerationRunning):
		consumer.log.Info("generation already running", zap.String("requestedBy", req.RequestedBy))
	case err != nil:
		consumer.log.Error("consumer.triggerHandler", zap.Error(err), zap.String("requestedBy", req.RequestedBy))
	default:
		consumer.log.Debug("generation triggered",
			zap.String("run", run.RunID),
			zap.String("requestedBy", req.RequestedBy),
			zap.Time("timestamp", message.Timestamp))
	}
}
