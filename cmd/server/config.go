package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

// Storage backends
const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config is the server configuration read from the environment
type Config struct {
	Port            int           `env:"SPELLWIZARD_PORT" envDefault:"50051"`
	ShutdownTimeout time.Duration `env:"SPELLWIZARD_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	LogLevel  string `env:"SPELLWIZARD_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SPELLWIZARD_LOG_FORMAT" envDefault:"json"`

	Storage        string   `env:"SPELLWIZARD_STORAGE" envDefault:"redis"`
	RedisEndpoints []string `env:"SPELLWIZARD_REDIS_ENDPOINTS" envDefault:"localhost:6379" envSeparator:","`
	RedisPoolSize  int      `env:"SPELLWIZARD_REDIS_POOL_SIZE" envDefault:"10"`
	SQLitePath     string   `env:"SPELLWIZARD_SQLITE_PATH" envDefault:"spellwizard.db"`

	SRDBaseURL  string        `env:"SPELLWIZARD_SRD_BASE_URL"`
	SRDTimeout  time.Duration `env:"SPELLWIZARD_SRD_TIMEOUT" envDefault:"30s"`
	SRDCacheTTL time.Duration `env:"SPELLWIZARD_SRD_CACHE_TTL" envDefault:"24h"`

	OTelEndpoint string `env:"SPELLWIZARD_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"SPELLWIZARD_OTEL_ENABLED" envDefault:"true"`
}

// LoadConfig parses and validates the configuration from the environment
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port <= 0 || c.Port > 65535 {
		vb.Fieldf("port", "must be between 1 and 65535, got %d", c.Port)
	}
	errors.ValidateEnum("storage", c.Storage, []string{StorageRedis, StorageSQLite}, vb)
	errors.ValidateEnum("logLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("logFormat", c.LogFormat, []string{"json", "text"}, vb)

	switch c.Storage {
	case StorageRedis:
		if len(c.RedisEndpoints) == 0 {
			vb.RequiredField("redisEndpoints")
		}
	case StorageSQLite:
		errors.ValidateRequired("sqlitePath", c.SQLitePath, vb)
	}

	return vb.Build()
}

// newLogger builds the process logger
func newLogger(c *Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
