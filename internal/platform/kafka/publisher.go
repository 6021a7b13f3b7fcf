// Package kafka publishes order events to a Kafka topic using
// segmentio/kafka-go. The Publisher is registered on the in-memory event
// emitter as one more handler.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/events"
	kafkago "github.com/segmentio/kafka-go"
)

// Header keys set on every published message.
const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)

// messageWriter is the subset of *kafkago.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher implements events.EventHandler by writing each event as a JSON
// message keyed by order id, so that events of one order stay ordered on a
// single partition.
type Publisher struct {
	w      messageWriter
	topic  string
	logger *slog.Logger
}

var _ events.EventHandler = (*Publisher)(nil)

// NewPublisher creates a Publisher with an async writer. Delivery failures
// surface in the writer's completion callback and are logged there.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	logger = logger.With("component", "kafka_publisher", "topic", topic)

	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		Async:        true,
		Completion: func(messages []kafkago.Message, err error) {
			if err != nil {
				logger.Error("failed to deliver order events",
					"error", err,
					"message_count", len(messages))
			}
		},
	}

	return newPublisher(w, topic, logger)
}

func newPublisher(w messageWriter, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{w: w, topic: topic, logger: logger}
}

// HandleEvent implements events.EventHandler.
func (p *Publisher) HandleEvent(ctx context.Context, event *events.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}

	msg := kafkago.Message{
		Key:   event.Key(),
		Value: value,
		Time:  event.CreatedAt,
		Headers: []kafkago.Header{
			{Key: HeaderEventType, Value: []byte(event.Type)},
			{Key: HeaderEventID, Value: []byte(event.ID.String())},
		},
	}

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event to %s: %w", event.Type, p.topic, err)
	}

	p.logger.Debug("order event queued",
		"event_id", event.ID,
		"event_type", event.Type,
		"order_id", event.OrderID)
	return nil
}

// Close flushes pending messages and releases the writer's connections.
func (p *Publisher) Close() error {
	return p.w.Close()
}
