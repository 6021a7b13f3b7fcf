package memory

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// ProductStore is an in-memory store.ProductStore.
// ReserveStock holds the write lock for the whole check-then-commit pass,
// so concurrent orders never interleave their reductions.
type ProductStore struct {
	mu       sync.RWMutex
	nextID   int64
	products map[int64]*domain.Product
	order    []int64
}

var _ store.ProductStore = (*ProductStore)(nil)

// NewProductStore creates an empty ProductStore. IDs start at 1.
func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[int64]*domain.Product)}
}

// Create implements store.ProductStore.
func (s *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	product.ID = s.nextID

	stored := *product
	s.products[stored.ID] = &stored
	s.order = append(s.order, stored.ID)
	return nil
}

// GetByID implements store.ProductStore.
func (s *ProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, store.ErrProductNotFound
	}
	c := *p
	return &c, nil
}

// List implements store.ProductStore.
func (s *ProductStore) List(ctx context.Context, category string) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Product, 0, len(s.order))
	for _, id := range s.order {
		p := s.products[id]
		if category != "" && p.Category != category {
			continue
		}
		c := *p
		result = append(result, &c)
	}
	return result, nil
}

// Update implements store.ProductStore.
func (s *ProductStore) Update(ctx context.Context, product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[product.ID]
	if !ok {
		return store.ErrProductNotFound
	}

	stored := *product
	stored.CreatedAt = existing.CreatedAt
	stored.IsAvailable = stored.Stock > 0
	s.products[stored.ID] = &stored
	return nil
}

// ReserveStock implements store.ProductStore.
func (s *ProductStore) ReserveStock(ctx context.Context, lines []domain.CartLine) ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Phase one: every line must be satisfiable, counting repeated products together.
	requested := make(map[int64]int, len(lines))
	for i, line := range lines {
		p, ok := s.products[line.ProductID]
		if !ok {
			return nil, store.NewStoreError(
				"product",
				"reserve",
				fmt.Sprintf("line %d references product %d", i+1, line.ProductID),
				store.ErrProductNotFound,
			)
		}
		if line.Quantity <= 0 {
			return nil, domain.NewValidationError("quantity", "must be positive", domain.ErrInvalidQuantity)
		}
		// Checked against the remaining stock so the running total cannot overflow.
		already := requested[line.ProductID]
		if line.Quantity > p.Stock-already {
			total := already + line.Quantity
			if total < already {
				total = math.MaxInt
			}
			return nil, &domain.StockError{
				ProductID: p.ID,
				Requested: total,
				Available: p.Stock,
			}
		}
		requested[line.ProductID] = already + line.Quantity
	}

	// Phase two: commit. Cannot fail after the checks above.
	reserved := make([]*domain.Product, 0, len(lines))
	for _, line := range lines {
		p := s.products[line.ProductID]
		if err := p.ReduceStock(line.Quantity); err != nil {
			return nil, fmt.Errorf("reserve stock for product %d: %w", p.ID, err)
		}
	}
	for _, line := range lines {
		c := *s.products[line.ProductID]
		reserved = append(reserved, &c)
	}

	return reserved, nil
}
