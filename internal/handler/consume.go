package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
)

type ingestActivity func(ctx context.Context, event kafka.EventActivity) error

// Consumer ingests activity events produced by other instances into the
// local audit store.
type Consumer struct {
	ingestHandler ingestActivity
	log           *zap.Logger
}

func NewConsumer(ingest ingestActivity, log *zap.Logger) *Consumer {
	return &Consumer{
		ingestHandler: ingest,
		log:           log.Named("consumer"),
	}
}

// Setup runs at the start of every session; the group re-enters a new session
// after each rebalance, so it must stay safe to call repeatedly.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
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
			var event kafka.EventActivity
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.ingestHandler(context.Background(), event); err != nil {
				consumer.log.Error("consumer.ingestHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
