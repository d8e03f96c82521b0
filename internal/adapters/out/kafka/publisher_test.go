package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestOrderEventPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &OrderEventPublisher{writer: writer, logger: discardLogger()}

	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()

	err := publisher.Publish(t.Context(), ports.OrderEvent{
		Type:         ports.OrderDeliveredEvent,
		OrderID:      orderID,
		ActingUserID: userID,
	})

	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, orderID.String(), string(msg.Key), "Messages are keyed by order id")

	var payload orderEventPayload
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, "order.delivered", payload.Type)
	assert.Equal(t, orderID.String(), payload.OrderID)
	assert.Equal(t, userID.String(), payload.ActingUserID)
	assert.False(t, payload.OccurredAt.IsZero())
}

func TestOrderEventPublisher_Publish_WriterError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	publisher := &OrderEventPublisher{writer: writer, logger: discardLogger()}

	err := publisher.Publish(t.Context(), ports.OrderEvent{
		Type:         ports.OrderCreatedEvent,
		OrderID:      kernel.NewUUID(),
		ActingUserID: kernel.NewUUID(),
	})

	require.Error(t, err)
}

func TestLogOnlyPublisher_Publish(t *testing.T) {
	publisher := NewLogOnlyPublisher(discardLogger())

	err := publisher.Publish(t.Context(), ports.OrderEvent{
		Type:         ports.OrderReturnedEvent,
		OrderID:      kernel.NewUUID(),
		ActingUserID: kernel.NewUUID(),
	})

	require.NoError(t, err)
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"localhost:9092"}, splitBrokers("localhost:9092"))
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitBrokers(" a:9092 , b:9092 "))
	assert.Empty(t, splitBrokers(""))
	assert.Empty(t, splitBrokers(" , "))
}
