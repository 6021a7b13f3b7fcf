package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents where an order is in its lifecycle.
type OrderStatus string

// Valid order statuses
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusShipped is set only by the fulfillment side, never by order placement.
	OrderStatusShipped OrderStatus = "shipped"
)

// Order validation errors
var (
	ErrEmptyCart       = errors.New("cart cannot be empty")
	ErrInvalidUserID   = errors.New("user ID must be positive")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidLineItem = errors.New("invalid order line item")
)

// IsValid reports whether s is one of the known statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCancelled, OrderStatusShipped:
		return true
	default:
		return false
	}
}

// CartLine is a (product, quantity) pair supplied when placing an order.
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// ValidateCart checks that a cart has at least one line and that every
// line references a product with a positive quantity.
func ValidateCart(lines []CartLine) error {
	if len(lines) == 0 {
		return NewValidationError("items", "cannot be empty", ErrEmptyCart)
	}
	for _, line := range lines {
		if line.ProductID <= 0 {
			return NewValidationError("product_id", "must be positive", ErrInvalidLineItem)
		}
		if line.Quantity <= 0 {
			return NewValidationError("quantity", "must be positive", ErrInvalidQuantity)
		}
	}
	return nil
}

// OrderItem is a purchased line with the unit price captured at order time.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// Subtotal returns quantity × unit price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a user's purchase of one or more products.
// Total is computed once in NewOrder and never recalculated.
type Order struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Items     []OrderItem     `json:"items"`
	Status    OrderStatus     `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewOrder creates a pending order and freezes its total.
func NewOrder(userID int64, items []OrderItem) (*Order, error) {
	if userID <= 0 {
		return nil, NewValidationError("user_id", "must be positive", ErrInvalidUserID)
	}
	if len(items) == 0 {
		return nil, NewValidationError("items", "cannot be empty", ErrEmptyCart)
	}

	total := decimal.Zero
	copied := make([]OrderItem, len(items))
	for i, item := range items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, NewValidationError("items", "contain an invalid line", ErrInvalidLineItem)
		}
		copied[i] = item
		total = total.Add(item.Subtotal())
	}

	now := time.Now().UTC()
	return &Order{
		UserID:    userID,
		Items:     copied,
		Status:    OrderStatusPending,
		Total:     total,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MarkPaid moves a pending order to paid.
func (o *Order) MarkPaid() error {
	if o.Status != OrderStatusPending {
		return &TransitionError{From: o.Status, Action: "mark as paid"}
	}
	o.setStatus(OrderStatusPaid)
	return nil
}

// Cancel moves the order to cancelled. Only shipped orders are rejected;
// paid and already-cancelled orders are (re)set to cancelled.
func (o *Order) Cancel() error {
	if o.Status == OrderStatusShipped {
		return &TransitionError{From: o.Status, Action: "cancel"}
	}
	o.setStatus(OrderStatusCancelled)
	return nil
}

// Ship moves a paid order to shipped. It exists for the fulfillment
// collaborator; order services never call it.
func (o *Order) Ship() error {
	if o.Status != OrderStatusPaid {
		return &TransitionError{From: o.Status, Action: "ship"}
	}
	o.setStatus(OrderStatusShipped)
	return nil
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	c.Items = make([]OrderItem, len(o.Items))
	copy(c.Items, o.Items)
	return &c
}

func (o *Order) setStatus(status OrderStatus) {
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
}
