package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds application configuration.
type Config struct {
	StoreBaseURL string `env:"STORE_BASE_URL" envDefault:"https://chiikawamarket.jp"`
	UserAgent    string `env:"USER_AGENT" envDefault:"cartlinker/0.1.0"`
	// HTTPTimeout limits every shop request, zero means no timeout.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"0s"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`

	HTTP     HTTP
	RabbitMQ RabbitMQ
}

// HTTP holds HTTP API configuration.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// RabbitMQ holds RabbitMQ configuration. Worker is disabled when URL is empty.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"cartlinker-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"cartlinker.commands"`
}

// Load loads optional .env file and parses configuration from environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("can't parse env variables: %w", err)
	}

	return &cfg, nil
}

// Level returns configured log level, info when LogLevel is not valid.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
