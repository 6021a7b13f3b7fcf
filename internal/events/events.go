package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
)

// Order event types.
const (
	OrderPlaced    = "order.placed"
	OrderPaid      = "order.paid"
	OrderCancelled = "order.cancelled"
)

// OrderEvent records a change to an order.
type OrderEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Order* constants
	Type string `json:"type"`

	OrderID int64 `json:"order_id"`
	UserID  int64 `json:"user_id"`

	// Payload is the order as it was right after the change
	Payload json.RawMessage `json:"payload"`

	CreatedAt time.Time `json:"created_at"`
}

// NewOrderEvent snapshots order into a new event of the given type.
func NewOrderEvent(eventType string, order *domain.Order) (*OrderEvent, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	return &OrderEvent{
		ID:        uuid.New(),
		Type:      eventType,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Key groups events of the same order, e.g. onto one Kafka partition.
func (e *OrderEvent) Key() []byte {
	return []byte(strconv.FormatInt(e.OrderID, 10))
}

// UnmarshalPayload decodes the order snapshot into v.
func (e *OrderEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// EventHandler processes emitted events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *OrderEvent) error
}

// HandlerFunc adapts a function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *OrderEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *OrderEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *OrderEvent) error
}
