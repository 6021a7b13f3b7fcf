package store

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// ProductStore defines the interface for catalog persistence.
type ProductStore interface {
	// Create saves a new product and assigns its ID.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// List returns products in insertion order. A non-empty category
	// restricts the result to products whose category matches exactly.
	List(ctx context.Context, category string) ([]*domain.Product, error)

	// Update replaces a stored product. Returns ErrProductNotFound if it does
	// not exist. CreatedAt is never changed.
	Update(ctx context.Context, product *domain.Product) error

	// ReserveStock reduces stock for every cart line as a single unit.
	// All lines are checked first, in order; if any product is missing or
	// short, nothing is reduced and ErrProductNotFound or a
	// *domain.StockError is returned. On success it returns the products
	// as they were at reservation time, one per line, so callers can
	// snapshot prices consistently with the reduction.
	ReserveStock(ctx context.Context, lines []domain.CartLine) ([]*domain.Product, error)
}
