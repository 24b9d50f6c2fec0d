package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/avc-dev/url-alias/internal/model"
	"github.com/caarlos0/env/v11"
)

// RetryConfig ограничивает число попыток генерации кода
type RetryConfig struct {
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// Config хранит конфигурацию приложения
type Config struct {
	ServerAddress   NetworkAddress  `env:"SERVER_ADDRESS"`
	GRPCAddress     NetworkAddress  `env:"GRPC_ADDRESS"`
	FileStoragePath string          `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string          `env:"DATABASE_DSN"`
	MatchMode       model.MatchMode `env:"MATCH_MODE"`
	CodeLength      int             `env:"CODE_LENGTH"`
	ShutdownTimeout time.Duration   `env:"SHUTDOWN_TIMEOUT"`
	Retry           RetryConfig     `envPrefix:"RETRY_"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		MatchMode:       model.MatchSubstring,
		CodeLength:      8,
		ShutdownTimeout: 10 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 100,
		},
	}
}

// Load читает конфигурацию из аргументов командной строки и окружения
func Load() (*Config, error) {
	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs читает конфигурацию из переданных аргументов и окружения.
// Приоритет: переменные окружения, затем флаги, затем значения по умолчанию
func LoadFromArgs(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("url-alias", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.GRPCAddress, "g", "address to run gRPC server (disabled if empty)")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to JSON file storage")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.Var(&cfg.MatchMode, "m", "lookup mode: substring or exact")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Retry.MaxAttempts <= 0 {
		return errors.New("retry max attempts must be positive")
	}
	if c.CodeLength <= 0 {
		return errors.New("code length must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}

// GRPCEnabled сообщает, нужно ли поднимать gRPC сервер
func (c *Config) GRPCEnabled() bool {
	return !c.GRPCAddress.IsZero()
}
