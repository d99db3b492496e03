// Package kafka implements the order change feed over Kafka using sarama.
//
// The feed carries one message per successful lifecycle write. Consumers use
// messages as recompute ticks only: the reconciliation engine re-reads the
// order collection instead of trusting event payloads, so losing a message
// costs nothing more than waiting for the next periodic sweep.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"linenflow/internal/core/ports"
	"linenflow/internal/pkg/errs"

	"github.com/IBM/sarama"
)

// orderChangedMessage is the wire shape of one change-feed record.
type orderChangedMessage struct {
	OrderID    string    `json:"order_id"`
	PropertyID string    `json:"property_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderChangedProducer publishes order-changed events to a Kafka topic.
// Implements ports.OrderEventPublisher.
type OrderChangedProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewOrderChangedProducer connects a synchronous producer to the brokers.
// The caller owns the returned producer and must Close it on shutdown.
func NewOrderChangedProducer(brokers []string, topic string) (*OrderChangedProducer, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &OrderChangedProducer{producer: producer, topic: topic}, nil
}

// PublishOrderChanged sends one change-feed record. The order ID doubles as
// the partition key so every order's events stay in sequence.
func (p *OrderChangedProducer) PublishOrderChanged(_ context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(orderChangedMessage{
		OrderID:    event.OrderID.String(),
		PropertyID: event.PropertyID.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return err
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID.String()),
		Value: sarama.ByteEncoder(payload),
	}

	_, _, err = p.producer.SendMessage(message)
	return err
}

// Close releases the underlying sarama producer.
func (p *OrderChangedProducer) Close() error {
	return p.producer.Close()
}
