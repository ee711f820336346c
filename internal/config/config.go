package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"mailcamp/internal/config/configs"
)

// Config is the whole service configuration, read from the environment.
// Each section parses its own variables under the envPrefix shown on the
// field; defaults live on the section types in the configs package.
type Config struct {
	// Env names the deployment (prod, dev, ...) and is attached to every
	// log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP   configs.HTTP     `envPrefix:"HTTP_"`
	Log    configs.Logger   `envPrefix:"LOG_"`
	Psql   configs.Postgres `envPrefix:"PSQL_"`
	Redis  configs.Redis    `envPrefix:"REDIS_"`
	Ingest configs.Ingest   `envPrefix:"INGEST_"`
	Seed   configs.Seed     `envPrefix:"SEED_"`
}

// Load parses the environment and rejects values the service cannot run
// with.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.HTTP.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("HTTP_MAX_UPLOAD_BYTES must be positive, got %d", c.HTTP.MaxUploadBytes))
	}
	if c.Psql.Addr.Scheme == "" || c.Psql.Addr.Host == "" {
		errs = append(errs, errors.New("PSQL_ADDRESS must be a postgres:// URL with a host"))
	}
	if c.Psql.ConnectTimeout <= 0 {
		errs = append(errs, fmt.Errorf("PSQL_CONNECT_TIMEOUT must be positive, got %s", c.Psql.ConnectTimeout))
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("REDIS_ADDRESS is required when REDIS_ENABLED is set"))
	}
	if c.Redis.TTL < 0 {
		errs = append(errs, fmt.Errorf("REDIS_TTL must not be negative, got %s", c.Redis.TTL))
	}
	if c.Ingest.Workers < 1 {
		errs = append(errs, fmt.Errorf("INGEST_WORKERS must be at least 1, got %d", c.Ingest.Workers))
	}
	if c.Seed.Campaigns < 0 {
		errs = append(errs, fmt.Errorf("SEED_CAMPAIGNS must not be negative, got %d", c.Seed.Campaigns))
	}
	return errors.Join(errs...)
}
