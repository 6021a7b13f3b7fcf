package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/service"
)

// OrderHandler handles order placement and the order lifecycle for the
// authenticated user.
type OrderHandler struct {
	orders service.OrderService
	logger *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders service.OrderService, logger *slog.Logger) *OrderHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for OrderHandler")
	}

	return &OrderHandler{
		orders: orders,
		logger: logger.With(slog.String("component", "order_handler")),
	}
}

// PlaceOrder handles POST /orders.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req PlaceOrderRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	order, err := h.orders.PlaceOrder(r.Context(), user.ID, req.toCartLines())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to place order")
		return
	}

	log.Debug("order placed",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, orderToResponse(order))
}

// ListOrders handles GET /orders.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list orders")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ordersToResponse(orders))
}

// GetOrder handles GET /orders/{id}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, id, ok := handleUserAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	order, err := h.orders.GetOrderForUser(r.Context(), user.ID, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get order")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, orderToResponse(order))
}

// CancelOrder handles POST /orders/{id}/cancel.
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Failed to cancel order", h.orders.CancelOrder)
}

// PayOrder handles POST /orders/{id}/pay.
func (h *OrderHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Failed to mark order as paid", h.orders.MarkOrderPaid)
}

// transition checks that the caller owns the order before applying op.
func (h *OrderHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	failMsg string,
	op func(ctx context.Context, id int64) (*domain.Order, error),
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, id, ok := handleUserAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	if _, err := h.orders.GetOrderForUser(r.Context(), user.ID, id); err != nil {
		HandleAPIError(w, r, err, failMsg)
		return
	}

	order, err := op(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, failMsg)
		return
	}

	log.Debug("order status changed",
		slog.Int64("order_id", order.ID),
		slog.String("status", string(order.Status)))
	shared.RespondWithJSON(w, r, http.StatusOK, orderToResponse(order))
}
