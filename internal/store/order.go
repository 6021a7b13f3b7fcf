package store

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// OrderStore defines the interface for order persistence.
type OrderStore interface {
	// Create saves a new order and assigns its ID.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by ID.
	// Returns ErrOrderNotFound if the order does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// ListByUser returns the orders owned by userID in creation order.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error)

	// Update applies fn to the stored order under the store's lock and
	// persists the result only when fn returns nil.
	// Returns ErrOrderNotFound, or whatever fn returns.
	Update(ctx context.Context, id int64, fn func(order *domain.Order) error) (*domain.Order, error)
}
