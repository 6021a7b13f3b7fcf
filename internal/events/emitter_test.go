package events

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// recordingHandler implements EventHandler for testing
type recordingHandler struct {
	LastEvent    *OrderEvent
	HandlerError error
	HandledCount int
}

func (h *recordingHandler) HandleEvent(ctx context.Context, event *OrderEvent) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func testEvent() *OrderEvent {
	return &OrderEvent{ID: uuid.New(), Type: OrderPlaced, OrderID: 1, UserID: 1}
}

func TestInMemoryEventEmitter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		assert.NoError(t, emitter.EmitEvent(context.Background(), testEvent()))
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		handler1 := &recordingHandler{}
		handler2 := &recordingHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event := testEvent()
		assert.NoError(t, emitter.EmitEvent(context.Background(), event))

		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Same(t, event, handler1.LastEvent)
		assert.Same(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		failingHandler := &recordingHandler{HandlerError: errors.New("handler error")}
		successHandler := &recordingHandler{}
		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(successHandler)

		err := emitter.EmitEvent(context.Background(), testEvent())
		assert.EqualError(t, err, "handler error")

		// Handlers after the failing one still run.
		assert.Equal(t, 1, failingHandler.HandledCount)
		assert.Equal(t, 1, successHandler.HandledCount)
	})
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := NewLogHandler(logger).HandleEvent(context.Background(), testEvent())
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"event_type":"order.placed"`)
	assert.Contains(t, buf.String(), `"order_id":1`)
}
