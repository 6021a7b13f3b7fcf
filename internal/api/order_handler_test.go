package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) placeOrder(token, body string) *OrderResponse {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/orders", token, body)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var order OrderResponse
	decodeBody(s.t, rec, &order)
	return &order
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	token := srv.signup("john", "john@example.com")
	srv.createProduct("Mug", "2.50", 5)
	srv.createProduct("Lamp", "10.00", 1)

	order := srv.placeOrder(token, `{"items":[{"product_id":1,"quantity":2},{"product_id":2,"quantity":1}]}`)
	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, "pending", order.Status)
	assert.True(t, decimal.RequireFromString("15").Equal(order.Total), "got %s", order.Total)
	require.Len(t, order.Items, 2)
	assert.True(t, decimal.RequireFromString("2.50").Equal(order.Items[0].Price))

	mug, err := srv.products.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, mug.Stock)

	t.Run("insufficient stock changes nothing", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/orders", token,
			`{"items":[{"product_id":1,"quantity":1},{"product_id":2,"quantity":1}]}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Insufficient stock for product 2", errorMessage(t, rec))

		mug, err := srv.products.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 3, mug.Stock)
	})

	t.Run("overflowing repeated lines change nothing", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/orders", token,
			`{"items":[{"product_id":1,"quantity":1},{"product_id":1,"quantity":9223372036854775807}]}`)
		assert.Equal(t, http.StatusConflict, rec.Code)

		mug, err := srv.products.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 3, mug.Stock)
	})

	t.Run("unknown product", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/orders", token, `{"items":[{"product_id":99,"quantity":1}]}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product not found", errorMessage(t, rec))
	})

	t.Run("invalid carts", func(t *testing.T) {
		for _, body := range []string{
			`{"items":[]}`,
			`{}`,
			`{"items":[{"product_id":1,"quantity":0}]}`,
			`{"items":[{"product_id":0,"quantity":1}]}`,
		} {
			rec := srv.do(http.MethodPost, "/api/orders", token, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
	})

	t.Run("requires a session", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/orders", "", `{"items":[{"product_id":1,"quantity":1}]}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOrderHandler_PriceIsFrozenAtPlacement(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	token := srv.signup("john", "john@example.com")
	srv.createProduct("Mug", "4.00", 10)
	order := srv.placeOrder(token, `{"items":[{"product_id":1,"quantity":2}]}`)

	rec := srv.do(http.MethodPut, "/api/products/1", "", `{"name":"Mug","price":"99.00","stock":8}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(http.MethodGet, fmt.Sprintf("/api/orders/%d", order.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got OrderResponse
	decodeBody(t, rec, &got)
	assert.True(t, decimal.RequireFromString("8").Equal(got.Total))
	assert.True(t, decimal.RequireFromString("4").Equal(got.Items[0].Price))
}

func TestOrderHandler_Ownership(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	john := srv.signup("john", "john@example.com")
	jane := srv.signup("jane", "jane@example.com")
	srv.createProduct("Mug", "1.00", 10)

	order := srv.placeOrder(john, `{"items":[{"product_id":1,"quantity":1}]}`)
	path := fmt.Sprintf("/api/orders/%d", order.ID)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, path},
		{http.MethodPost, path + "/cancel"},
		{http.MethodPost, path + "/pay"},
	} {
		rec := srv.do(tc.method, tc.path, jane, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, tc.path)
		assert.Equal(t, "You do not own this order", errorMessage(t, rec))
	}

	got, err := srv.orders.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", string(got.Status), "a rejected caller must not change the order")

	rec := srv.do(http.MethodGet, "/api/orders", jane, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = srv.do(http.MethodGet, "/api/orders", john, nil)
	var mine []OrderResponse
	decodeBody(t, rec, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, order.ID, mine[0].ID)

	rec = srv.do(http.MethodGet, "/api/orders/999", john, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", errorMessage(t, rec))

	rec = srv.do(http.MethodGet, "/api/orders/zero", john, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_Lifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	token := srv.signup("john", "john@example.com")
	srv.createProduct("Mug", "1.00", 10)

	t.Run("pay then cancel", func(t *testing.T) {
		order := srv.placeOrder(token, `{"items":[{"product_id":1,"quantity":1}]}`)
		path := fmt.Sprintf("/api/orders/%d", order.ID)

		rec := srv.do(http.MethodPost, path+"/pay", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var paid OrderResponse
		decodeBody(t, rec, &paid)
		assert.Equal(t, "paid", paid.Status)

		rec = srv.do(http.MethodPost, path+"/pay", token, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Cannot mark as paid order with status paid", errorMessage(t, rec))

		rec = srv.do(http.MethodPost, path+"/cancel", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var cancelled OrderResponse
		decodeBody(t, rec, &cancelled)
		assert.Equal(t, "cancelled", cancelled.Status)
	})

	t.Run("cancel does not restock", func(t *testing.T) {
		order := srv.placeOrder(token, `{"items":[{"product_id":1,"quantity":3}]}`)
		before, err := srv.products.GetByID(context.Background(), 1)
		require.NoError(t, err)

		rec := srv.do(http.MethodPost, fmt.Sprintf("/api/orders/%d/cancel", order.ID), token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		after, err := srv.products.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, before.Stock, after.Stock)

		rec = srv.do(http.MethodPost, fmt.Sprintf("/api/orders/%d/pay", order.ID), token, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
