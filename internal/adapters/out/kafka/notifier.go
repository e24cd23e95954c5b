package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/metrics"

	"github.com/IBM/sarama"
)

// Notifier implements ports.OrderNotifier on top of a Kafka topic.
// Command handlers call it strictly after their transaction commits, so every
// published event describes durable state.
type Notifier struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
	metrics  *metrics.OrderMetrics
}

// NewNotifier connects a synchronous producer to the given brokers.
// The producer is idempotent and waits for all in-sync replicas: losing a
// confirmation event silently is worse than a slower publish.
func NewNotifier(
	brokers []string,
	topic string,
	logger *slog.Logger,
	orderMetrics *metrics.OrderMetrics,
) (*Notifier, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return NewNotifierWithProducer(producer, topic, logger, orderMetrics), nil
}

// NewNotifierWithProducer wraps an existing producer. Used by tests with a
// mock producer and by callers that manage the producer lifecycle themselves.
func NewNotifierWithProducer(
	producer sarama.SyncProducer,
	topic string,
	logger *slog.Logger,
	orderMetrics *metrics.OrderMetrics,
) *Notifier {
	return &Notifier{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_notifier"),
		metrics:  orderMetrics,
	}
}

// PublishOrderConfirmed announces that a delivery partner confirmed the order.
func (n *Notifier) PublishOrderConfirmed(ctx context.Context, aggregate *order.Order) error {
	return n.publish(ctx, newOrderEvent(EventTypeOrderConfirmed, aggregate))
}

// PublishTrackingUpdate announces a live status/location update for the order.
func (n *Notifier) PublishTrackingUpdate(ctx context.Context, aggregate *order.Order) error {
	return n.publish(ctx, newOrderEvent(EventTypeTrackingUpdated, aggregate))
}

// Close shuts down the underlying producer.
func (n *Notifier) Close() error {
	if err := n.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

func (n *Notifier) publish(ctx context.Context, event OrderEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     n.topic,
		Key:       sarama.StringEncoder(event.OrderID),
		Value:     sarama.ByteEncoder(eventData),
		Timestamp: time.Now(),
	}

	partition, offset, err := n.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	n.metrics.EventPublished(event.EventType)
	n.logger.DebugContext(ctx, "published order event",
		"event_type", event.EventType,
		"order_id", event.OrderID,
		"partition", partition,
		"offset", offset,
	)

	return nil
}
