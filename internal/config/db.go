package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// .env in the working directory is loaded before env vars are read
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "RESTAURANT_"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env      string        `koanf:"env" validate:"required,oneof=local development production"`
	Database DBConfig      `koanf:"database" validate:"required"`
	Logging  LoggingConfig `koanf:"logging" validate:"required"`
}

type DBConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=sqlite postgres"`
	// Path of the SQLite file; created on first open.
	Path string `koanf:"path" validate:"required_if=Driver sqlite"`
	// DSN for Postgres, e.g. "host=... user=... dbname=...".
	DSN string `koanf:"dsn" validate:"required_if=Driver postgres"`

	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifeTime int           `koanf:"conn_max_lifetime_min" validate:"gte=0"` // minutes
	PingTimeout     time.Duration `koanf:"ping_timeout" validate:"gte=0"`
}

type LoggingConfig struct {
	Level              string        `koanf:"level" validate:"required,oneof=debug info warn error"`
	Format             string        `koanf:"format" validate:"required,oneof=console json"`
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold" validate:"gte=0"`
}

// Default returns the configuration used when no env overrides are set.
func Default() *Config {
	return &Config{
		Env: "local",
		Database: DBConfig{
			Driver:       DriverSQLite,
			Path:         "restaurant.db",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			PingTimeout:  5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "console",
			SlowQueryThreshold: 200 * time.Millisecond,
		},
	}
}

// Load reads RESTAURANT_* env vars over the defaults and validates the result.
// RESTAURANT_DATABASE_MAX_OPEN_CONNS maps to database.max_open_conns.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKey turns RESTAURANT_DATABASE_PATH into database.path: the first
// segment after the prefix is the section, the rest is the field.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
