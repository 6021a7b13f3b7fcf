package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// OrderStore is an in-memory store.OrderStore.
type OrderStore struct {
	mu     sync.RWMutex
	nextID int64
	orders map[int64]*domain.Order
	order  []int64
}

var _ store.OrderStore = (*OrderStore)(nil)

// NewOrderStore creates an empty OrderStore. IDs start at 1.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[int64]*domain.Order)}
}

// Create implements store.OrderStore.
func (s *OrderStore) Create(ctx context.Context, order *domain.Order) error {
	if !order.Status.IsValid() {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	order.ID = s.nextID
	s.orders[order.ID] = order.Clone()
	s.order = append(s.order, order.ID)
	return nil
}

// GetByID implements store.OrderStore.
func (s *OrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, store.ErrOrderNotFound
	}
	return o.Clone(), nil
}

// ListByUser implements store.OrderStore.
func (s *OrderStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Order, 0)
	for _, id := range s.order {
		if o := s.orders[id]; o.UserID == userID {
			result = append(result, o.Clone())
		}
	}
	return result, nil
}

// Update implements store.OrderStore.
func (s *OrderStore) Update(
	ctx context.Context,
	id int64,
	fn func(order *domain.Order) error,
) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, store.ErrOrderNotFound
	}

	working := o.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	s.orders[id] = working
	return working.Clone(), nil
}
