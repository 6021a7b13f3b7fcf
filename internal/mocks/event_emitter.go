package mocks

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockEventEmitter is a testify mock of events.EventEmitter.
type MockEventEmitter struct {
	mock.Mock
}

var _ events.EventEmitter = (*MockEventEmitter)(nil)

// EmitEvent is a mock implementation of events.EventEmitter.EmitEvent
func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// EventOfType matches an *events.OrderEvent argument by its Type.
func EventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e *events.OrderEvent) bool {
		return e != nil && e.Type == eventType
	})
}
