package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Port     string `env:"PORT" envDefault:"8088"`

	// Storage backend selection; the repository contract is identical
	// for every backend.
	DBType     string `env:"STORAGE_BACKEND" envDefault:"file"`
	DBDSN      string `env:"POSTGRES_DSN"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/events.db"`
	EventsFile string `env:"EVENTS_FILE" envDefault:"data/events.json"`

	// Identity resolution.
	AuthServiceURL string           `env:"AUTH_SERVICE_URL"`
	LocalTokens    map[string]int64 `env:"LOCAL_TOKENS" envDefault:"MOCK-TOKEN:1"`

	// Display/time behavior. TimeOffset shifts the recording clock by a
	// fixed amount; there is no hard-coded timezone adjustment anywhere.
	TimeOffset      time.Duration `env:"TIME_OFFSET" envDefault:"0s"`
	ChartWindowDays int           `env:"CHART_WINDOW_DAYS" envDefault:"7"`
	ChartFillEmpty  bool          `env:"CHART_FILL_EMPTY_DAYS" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBType {
	case "postgres":
		if c.DBDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when STORAGE_BACKEND=sqlite")
		}
	case "file":
		if c.EventsFile == "" {
			return errors.New("EVENTS_FILE is required when STORAGE_BACKEND=file")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: file, sqlite, postgres")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.AuthServiceURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development")
	}
	if c.ChartWindowDays < 1 {
		return errors.New("CHART_WINDOW_DAYS must be at least 1")
	}
	return nil
}
