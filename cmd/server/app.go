package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/config"
	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/phrazzld/storefront-api/internal/platform/kafka"
	"github.com/phrazzld/storefront-api/internal/platform/memory"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/phrazzld/storefront-api/internal/service/auth"
	"github.com/phrazzld/storefront-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Stores
	userStore    store.UserStore
	sessionStore store.SessionStore
	productStore store.ProductStore
	orderStore   store.OrderStore

	// Services
	authService    auth.Service
	catalogService service.CatalogService
	orderService   service.OrderService

	// Event system
	eventEmitter *events.InMemoryEventEmitter
	publisher    *kafka.Publisher
}

// newApplication creates an application with every dependency wired. Stores
// live in process memory; order events are always logged and, when brokers
// are configured, also published to Kafka.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:       cfg,
		logger:       logger,
		userStore:    memory.NewUserStore(),
		sessionStore: memory.NewSessionStore(),
		productStore: memory.NewProductStore(),
		orderStore:   memory.NewOrderStore(),
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewLogHandler(logger))

	if cfg.Events.KafkaEnabled() {
		app.publisher = kafka.NewPublisher(cfg.Events.KafkaBrokers, cfg.Events.KafkaTopic, logger)
		app.eventEmitter.RegisterHandler(app.publisher)
		logger.Info("Kafka event publisher initialized",
			"topic", cfg.Events.KafkaTopic,
			"broker_count", len(cfg.Events.KafkaBrokers))
	}

	hasher := auth.NewArgon2Hasher(auth.Argon2Params{
		MemoryKB:    cfg.Auth.Argon2MemoryKB,
		Iterations:  cfg.Auth.Argon2Iterations,
		Parallelism: cfg.Auth.Argon2Parallelism,
	})
	app.authService = auth.NewService(app.userStore, app.sessionStore, hasher, logger)

	var err error
	app.catalogService, err = service.NewCatalogService(app.productStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	app.orderService, err = service.NewOrderService(app.productStore, app.orderStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.publisher != nil {
		if err := app.publisher.Close(); err != nil {
			app.logger.Error("Error closing Kafka publisher", "error", err)
		}
	}
}
