package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product validation errors
var (
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNegativeStock    = errors.New("stock cannot be negative")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
)

// Product is an item in the catalog.
// IsAvailable is derived from Stock and is recomputed whenever stock changes.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewProduct creates a Product and derives its availability from stock.
func NewProduct(name, description string, price decimal.Decimal, stock int, category string) (*Product, error) {
	p := &Product{
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		Stock:       stock,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}
	p.refreshAvailability()

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the product's invariants.
func (p *Product) Validate() error {
	if p.Name == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyProductName)
	}
	if p.Price.IsNegative() {
		return NewValidationError("price", "cannot be negative", ErrNegativePrice)
	}
	if p.Stock < 0 {
		return NewValidationError("stock", "cannot be negative", ErrNegativeStock)
	}
	return nil
}

// CanReduceStock reports whether quantity units can be taken from stock.
// It returns a *StockError when stock would go negative.
func (p *Product) CanReduceStock(quantity int) error {
	if quantity <= 0 {
		return NewValidationError("quantity", "must be positive", ErrInvalidQuantity)
	}
	if quantity > p.Stock {
		return &StockError{ProductID: p.ID, Requested: quantity, Available: p.Stock}
	}
	return nil
}

// ReduceStock removes quantity units and recomputes availability.
// Stock is left untouched on error.
func (p *Product) ReduceStock(quantity int) error {
	if err := p.CanReduceStock(quantity); err != nil {
		return err
	}
	p.Stock -= quantity
	p.refreshAvailability()
	return nil
}

// Revise replaces the editable fields, keeping ID and CreatedAt.
// The product is left untouched if the new values are invalid.
func (p *Product) Revise(name, description string, price decimal.Decimal, stock int, category string) error {
	next := *p
	next.Name = strings.TrimSpace(name)
	next.Description = description
	next.Price = price
	next.Stock = stock
	next.Category = category
	if err := next.Validate(); err != nil {
		return err
	}
	next.refreshAvailability()
	*p = next
	return nil
}

func (p *Product) refreshAvailability() {
	p.IsAvailable = p.Stock > 0
}
