package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	// StoreLatency is waited out by every repository call to mimic a remote store.
	StoreLatency time.Duration `env:"STORE_LATENCY" envDefault:"0s"`
	// SeedFile replaces the embedded sample data when set.
	SeedFile string `env:"SEED_FILE"`
	// ReportTimeout bounds a whole engagement report run.
	ReportTimeout time.Duration `env:"REPORT_TIMEOUT" envDefault:"10s"`
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StoreLatency < 0 {
		return nil, fmt.Errorf("STORE_LATENCY must not be negative, got %s", cfg.StoreLatency)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
