package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"buntudelice/internal/domain"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, _ := json.Marshal(event)
	key := event.OrderID.String()
	if event.Type == "payment_settled" || event.Type == "payment_initiated" {
		key = event.PaymentID.String()
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}
