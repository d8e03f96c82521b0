// Package kafka publishes order lifecycle events to a Kafka topic.
// Publishing is best effort: commands call Publish after a successful commit
// and do not fail the business operation when the broker is unavailable, so
// failures are logged rather than returned up the stack.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"onlineshop/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the slice of kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// orderEventPayload is the wire format of a lifecycle event.
type orderEventPayload struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"orderId"`
	ActingUserID string    `json:"actingUserId"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// OrderEventPublisher writes order lifecycle events to a Kafka topic as JSON
// messages keyed by order id, so all events of one order land in one partition
// in order.
type OrderEventPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewOrderEventPublisher creates a publisher for the given brokers and topic.
// Brokers is a comma-separated list of host:port pairs.
func NewOrderEventPublisher(brokers string, topic string, logger *slog.Logger) *OrderEventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(splitBrokers(brokers)...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return &OrderEventPublisher{
		writer: writer,
		logger: logger,
	}
}

// Publish sends the event to the topic. Failures are logged and returned;
// callers decide whether to ignore them.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	payload := orderEventPayload{
		Type:         string(event.Type),
		OrderID:      event.OrderID.String(),
		ActingUserID: event.ActingUserID.String(),
		OccurredAt:   time.Now().UTC(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "marshal order event",
			"type", payload.Type, "orderId", payload.OrderID, "error", err)
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.OrderID),
		Value: data,
		Time:  payload.OccurredAt,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "publish order event",
			"type", payload.Type, "orderId", payload.OrderID, "error", err)
		return err
	}

	p.logger.DebugContext(ctx, "published order event",
		"type", payload.Type, "orderId", payload.OrderID)
	return nil
}

// splitBrokers parses a comma-separated broker list, dropping empty entries.
func splitBrokers(brokers string) []string {
	parsed := make([]string, 0)
	for _, broker := range strings.Split(brokers, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			parsed = append(parsed, broker)
		}
	}
	return parsed
}

// LogOnlyPublisher records lifecycle events in the application log without a
// broker. Used when no Kafka brokers are configured.
type LogOnlyPublisher struct {
	logger *slog.Logger
}

// NewLogOnlyPublisher creates a publisher that only logs events.
func NewLogOnlyPublisher(logger *slog.Logger) *LogOnlyPublisher {
	return &LogOnlyPublisher{logger: logger}
}

// Publish logs the event and always succeeds.
func (p *LogOnlyPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	p.logger.InfoContext(ctx, "order event",
		"type", string(event.Type),
		"orderId", event.OrderID.String(),
		"actingUserId", event.ActingUserID.String())
	return nil
}
