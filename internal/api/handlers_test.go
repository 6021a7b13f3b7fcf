package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/storefront-api/internal/api/middleware"
	"github.com/phrazzld/storefront-api/internal/platform/memory"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/phrazzld/storefront-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

// testServer wires the handlers to in-memory stores the same way the server
// binary does, minus the outer chi middleware.
type testServer struct {
	t        *testing.T
	router   http.Handler
	products *memory.ProductStore
	orders   service.OrderService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	products := memory.NewProductStore()
	hasher := auth.NewArgon2Hasher(auth.Argon2Params{MemoryKB: 1024, Iterations: 1, Parallelism: 1})
	authService := auth.NewService(memory.NewUserStore(), memory.NewSessionStore(), hasher, logger)

	catalog, err := service.NewCatalogService(products, logger)
	require.NoError(t, err)
	orders, err := service.NewOrderService(products, memory.NewOrderStore(), nil, logger)
	require.NoError(t, err)

	authHandler := NewAuthHandler(authService, logger)
	userHandler := NewUserHandler(authService, logger)
	productHandler := NewProductHandler(catalog, logger)
	orderHandler := NewOrderHandler(orders, logger)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(logger))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{id}", productHandler.GetProduct)
		r.Post("/products", productHandler.CreateProduct)
		r.Put("/products/{id}", productHandler.UpdateProduct)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/me", userHandler.GetMe)
			r.Put("/users/me", userHandler.UpdateMe)

			r.Post("/orders", orderHandler.PlaceOrder)
			r.Get("/orders", orderHandler.ListOrders)
			r.Get("/orders/{id}", orderHandler.GetOrder)
			r.Post("/orders/{id}/cancel", orderHandler.CancelOrder)
			r.Post("/orders/{id}/pay", orderHandler.PayOrder)
		})
	})

	return &testServer{t: t, router: r, products: products, orders: orders}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// signup registers a user and returns a session token for them.
func (s *testServer) signup(username, email string) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Username: username, Email: email, Password: "pw123",
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/login", "", LoginRequest{Email: email, Password: "pw123"})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var tok TokenResponse
	decodeBody(s.t, rec, &tok)
	return tok.Token
}

func (s *testServer) createProduct(name, price string, stock int) ProductResponse {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/products", "",
		fmt.Sprintf(`{"name":%q,"price":%q,"stock":%d,"category":"kitchen"}`, name, price, stock))
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var p ProductResponse
	decodeBody(s.t, rec, &p)
	return p
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &body)
	return body.Error
}
