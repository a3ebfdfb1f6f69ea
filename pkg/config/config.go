// Package config reads environment-driven settings, optionally via .env.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting for the dashboard backend.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"./web"`
	CatalogPath string `env:"CATALOG_PATH"` // empty: embedded sample dataset

	Storage Storage
	HTTP    HTTP
}

// Storage selects the portfolio persistence backend.
type Storage struct {
	Backend       string `env:"STORAGE_BACKEND" envDefault:"file"` // file | sqlite
	PortfolioPath string `env:"PORTFOLIO_PATH" envDefault:"./data/portfolio.json"`
	DBPath        string `env:"DB_PATH" envDefault:"./data/finboard.db"`
}

// HTTP holds transport-level limits.
type HTTP struct {
	MaxBodyBytes    int64   `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	RateLimitPerSec float64 `env:"RATE_LIMIT_PER_SEC" envDefault:"20"`
	RateLimitBurst  int     `env:"RATE_LIMIT_BURST" envDefault:"50"`
}

// Load reads environment variables into Config. A missing .env file is not
// an error; the environment alone is enough.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
