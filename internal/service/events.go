package service

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/model"
	"github.com/videgrenier/marketplace-service/pkg/kafka"
)

// EventPublisher emits domain events. Publishing is best-effort: failures
// are logged and never fail the request that produced the event.
type EventPublisher interface {
	Publish(event model.Event)
}

type NopPublisher struct{}

func (NopPublisher) Publish(model.Event) {}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

func NewKafkaPublisher(producer sarama.SyncProducer, log *zap.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		log:      log.Named("events"),
	}
}

func (p *kafkaPublisher) Publish(event model.Event) {
	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: kafka.EventsTopic,
		Value: sarama.ByteEncoder(value),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		p.log.Error("publish event", zap.String("kind", string(event.Kind)), zap.Error(err))
	}
}
