package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/model"
)

type incrementViews func(ctx context.Context, listingUid string) error

// Consumer applies marketplace events: view events increment the listing
// counter; everything else is acked for downstream consumers.
type Consumer struct {
	incrementViewsHandler incrementViews
	log                   *zap.Logger
	ready                 chan bool
}

func NewConsumer(incrementViews incrementViews, log *zap.Logger) *Consumer {
	return &Consumer{
		incrementViewsHandler: incrementViews,
		log:                   log.Named("consumer"),
		ready:                 make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.ready)
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
			var event model.Event
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if event.Kind == model.EventListingViewed {
				if err := consumer.incrementViewsHandler(context.Background(), event.ListingUid); err != nil {
					consumer.log.Error("consumer.incrementViewsHandler", zap.Error(err))
					continue
				}
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
