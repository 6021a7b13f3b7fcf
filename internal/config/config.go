package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth" validate:"required"`
	Events EventsConfig `mapstructure:"events"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// AuthConfig holds the Argon2id cost parameters used for new credentials.
// Existing credentials keep the parameters they were created with.
type AuthConfig struct {
	Argon2MemoryKB    uint32 `mapstructure:"argon2_memory_kb" validate:"gte=1024"`
	Argon2Iterations  uint32 `mapstructure:"argon2_iterations" validate:"gte=1,lte=10"`
	Argon2Parallelism uint8  `mapstructure:"argon2_parallelism" validate:"gte=1,lte=16"`
}

// EventsConfig controls where order events are published.
// With no brokers configured, events are only logged.
type EventsConfig struct {
	KafkaBrokers []string `mapstructure:"kafka_brokers" validate:"omitempty,dive,hostname_port"`
	KafkaTopic   string   `mapstructure:"kafka_topic" validate:"required_with=KafkaBrokers"`
}

// KafkaEnabled reports whether a Kafka publisher should be started.
func (c EventsConfig) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
