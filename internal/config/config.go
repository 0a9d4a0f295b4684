// Package config loads the API configuration from the environment.
//
// Variables use the QTRAVEL_ prefix and a double underscore for nesting:
//
//	QTRAVEL_DATABASE__DRIVER=sqlite -> database.driver
//	QTRAVEL_SERVER__PORT=8000       -> server.port
//
// A `.env` file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"qtravel/internal/infra"
)

const envPrefix = "QTRAVEL_"

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
}

type Primary struct {
	Env      string `koanf:"env" validate:"required,oneof=local development staging production test"`
	LogLevel string `koanf:"log_level"`
}

type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"gte=0"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
	// RateLimit is requests per second per client; zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
	RateBurst int     `koanf:"rate_burst" validate:"gte=0"`
}

// DatabaseConfig selects the storage engine. Driver "sqlite" swaps the
// geography and text[] columns for plain text equivalents.
type DatabaseConfig struct {
	Driver          string `koanf:"driver" validate:"required,oneof=postgres sqlite"`
	DSN             string `koanf:"dsn" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"gte=0"`
	AutoMigrate     bool   `koanf:"auto_migrate"`
	LogLevel        string `koanf:"log_level" validate:"omitempty,oneof=silent error warn info"`
}

// Defaults returns the configuration used when nothing is set in the
// environment: a local sqlite file, port 8000, CORS open to every origin.
func Defaults() *Config {
	return &Config{
		Primary: Primary{Env: "local", LogLevel: "info"},
		Server: ServerConfig{
			Port:               "8000",
			ReadTimeout:        15,
			WriteTimeout:       15,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Driver:          infra.DriverSQLite,
			DSN:             "file:qtravel.db?_foreign_keys=1",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
			LogLevel:        "warn",
		},
	}
}

// LoadConfig reads QTRAVEL_* variables over Defaults and validates the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Server.CORSAllowedOrigins = splitList(cfg.Server.CORSAllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Storage is the explicit parameter handed to infra.OpenDatabase.
func (c *Config) Storage() infra.StorageConfig {
	return infra.StorageConfig{
		Driver:          c.Database.Driver,
		DSN:             c.Database.DSN,
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		AutoMigrate:     c.Database.AutoMigrate,
		LogLevel:        c.Database.LogLevel,
	}
}

// splitList expands comma separated entries, as env values arrive as one string.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local" || c.Primary.Env == "test"
}
