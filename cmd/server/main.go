// Package main implements the entry point for the storefront API server,
// which serves user accounts, the product catalog, and orders over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
)

// main loads configuration, sets up logging, wires the application, and
// serves until SIGINT or SIGTERM.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}

func run() error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}
