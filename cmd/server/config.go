package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Events.KafkaEnabled() {
		slog.Debug("Events configuration",
			"kafka_brokers", len(cfg.Events.KafkaBrokers),
			"kafka_topic", cfg.Events.KafkaTopic)
	}

	return cfg, nil
}
