package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/store"
)

// OrderService provides order placement and lifecycle operations.
type OrderService interface {
	// PlaceOrder reserves stock for every line and records a pending order.
	// Either every line is reserved or none is: a missing product yields
	// store.ErrProductNotFound and a short one domain.ErrInsufficientStock,
	// with no stock changed in both cases.
	PlaceOrder(ctx context.Context, userID int64, lines []domain.CartLine) (*domain.Order, error)

	// GetOrder returns an order or store.ErrOrderNotFound.
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)

	// GetOrderForUser is GetOrder restricted to orders owned by userID.
	// Returns ErrNotOwned for someone else's order.
	GetOrderForUser(ctx context.Context, userID, id int64) (*domain.Order, error)

	// ListOrders returns the orders of one user, oldest first.
	ListOrders(ctx context.Context, userID int64) ([]*domain.Order, error)

	// CancelOrder moves an order to cancelled. Shipped orders yield
	// domain.ErrInvalidStateTransition. Reserved stock is not returned.
	CancelOrder(ctx context.Context, id int64) (*domain.Order, error)

	// MarkOrderPaid moves a pending order to paid.
	MarkOrderPaid(ctx context.Context, id int64) (*domain.Order, error)
}

type orderServiceImpl struct {
	products store.ProductStore
	orders   store.OrderStore
	emitter  events.EventEmitter
	logger   *slog.Logger
}

// NewOrderService creates a new OrderService.
// The emitter may be nil, in which case no events are published.
func NewOrderService(
	products store.ProductStore,
	orders store.OrderStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (OrderService, error) {
	if products == nil {
		return nil, domain.NewValidationError("products", "cannot be nil", domain.ErrValidation)
	}
	if orders == nil {
		return nil, domain.NewValidationError("orders", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &orderServiceImpl{
		products: products,
		orders:   orders,
		emitter:  emitter,
		logger:   logger.With(slog.String("component", "order_service")),
	}, nil
}

// isExpectedPlacementError reports whether err is a client-caused failure.
func isExpectedPlacementError(err error) bool {
	return errors.Is(err, store.ErrProductNotFound) ||
		errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrValidation)
}

// PlaceOrder implements OrderService.
func (s *orderServiceImpl) PlaceOrder(
	ctx context.Context,
	userID int64,
	lines []domain.CartLine,
) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("user_id", userID))

	if userID <= 0 {
		return nil, fmt.Errorf(
			"failed to place order: %w",
			domain.NewValidationError("user_id", "must be positive", domain.ErrInvalidUserID),
		)
	}
	if err := domain.ValidateCart(lines); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	reserved, err := s.products.ReserveStock(ctx, lines)
	if err != nil {
		if isExpectedPlacementError(err) {
			log.Debug("order rejected", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to place order: %w", err)
		}
		log.Error("failed to reserve stock", slog.String("error", err.Error()))
		return nil, NewServiceError("order", "place_order", err)
	}

	items := make([]domain.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = domain.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: reserved[i].Price,
		}
	}

	order, err := domain.NewOrder(userID, items)
	if err != nil {
		log.Error("stock reserved for an order that could not be built", slog.String("error", err.Error()))
		return nil, NewServiceError("order", "place_order", err)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		log.Error("stock reserved for an order that could not be saved", slog.String("error", err.Error()))
		return nil, NewServiceError("order", "place_order", err)
	}

	log.Info("order placed",
		slog.Int64("order_id", order.ID),
		slog.Int("line_count", len(order.Items)),
		slog.String("total", order.Total.StringFixed(2)))

	s.emit(ctx, events.OrderPlaced, order)
	return order, nil
}

// GetOrder implements OrderService.
func (s *orderServiceImpl) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("order %d: %w", id, err)
		}
		return nil, NewServiceError("order", "get_order", err)
	}
	return order, nil
}

// GetOrderForUser implements OrderService.
func (s *orderServiceImpl) GetOrderForUser(ctx context.Context, userID, id int64) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		logger.FromContextOrDefault(ctx, s.logger).Warn("order access denied",
			slog.Int64("order_id", id),
			slog.Int64("user_id", userID))
		return nil, fmt.Errorf("order %d: %w", id, ErrNotOwned)
	}
	return order, nil
}

// ListOrders implements OrderService.
func (s *orderServiceImpl) ListOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("order", "list_orders", err)
	}
	return orders, nil
}

// CancelOrder implements OrderService.
func (s *orderServiceImpl) CancelOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.transition(ctx, id, "cancel_order", events.OrderCancelled, (*domain.Order).Cancel)
}

// MarkOrderPaid implements OrderService.
func (s *orderServiceImpl) MarkOrderPaid(ctx context.Context, id int64) (*domain.Order, error) {
	return s.transition(ctx, id, "mark_order_paid", events.OrderPaid, (*domain.Order).MarkPaid)
}

// transition applies change under the order store's lock and emits
// eventType if the status actually moved.
func (s *orderServiceImpl) transition(
	ctx context.Context,
	id int64,
	op string,
	eventType string,
	change func(*domain.Order) error,
) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("order_id", id))

	var from domain.OrderStatus
	order, err := s.orders.Update(ctx, id, func(o *domain.Order) error {
		from = o.Status
		return change(o)
	})
	if err != nil {
		if store.IsNotFoundError(err) || errors.Is(err, domain.ErrInvalidStateTransition) {
			log.Debug("order transition rejected",
				slog.String("op", op),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("order %d: %w", id, err)
		}
		log.Error("failed to update order", slog.String("op", op), slog.String("error", err.Error()))
		return nil, NewServiceError("order", op, err)
	}

	if order.Status != from {
		log.Info("order status changed",
			slog.String("from", string(from)),
			slog.String("to", string(order.Status)))
		s.emit(ctx, eventType, order)
	}
	return order, nil
}

// emit publishes an order event. The state change is already committed, so
// failures are logged and swallowed.
func (s *orderServiceImpl) emit(ctx context.Context, eventType string, order *domain.Order) {
	if s.emitter == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewOrderEvent(eventType, order)
	if err != nil {
		log.Error("failed to build order event",
			slog.String("event_type", eventType),
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("order event not delivered",
			slog.String("event_type", eventType),
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()))
	}
}
