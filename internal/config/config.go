package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"adzone/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP   configs.HTTP     `envPrefix:"HTTP_"`
	Log    configs.Logger   `envPrefix:"LOG_"`
	Psql   configs.Postgres `envPrefix:"PSQL_"`
	Redis  configs.Redis    `envPrefix:"REDIS_"`
	Engine configs.Engine   `envPrefix:"ENGINE_"`
}

// Load reads configuration from environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Engine.Storage {
	case configs.StoragePostgres, configs.StorageMemory:
	default:
		return fmt.Errorf("ENGINE_STORAGE must be %q or %q, got %q", configs.StoragePostgres, configs.StorageMemory, c.Engine.Storage)
	}
	if c.Engine.SelectionTTL <= 0 {
		return fmt.Errorf("ENGINE_SELECTION_TTL must be positive, got %s", c.Engine.SelectionTTL)
	}
	if c.Engine.ZoneRefresh <= 0 {
		return fmt.Errorf("ENGINE_ZONE_REFRESH must be positive, got %s", c.Engine.ZoneRefresh)
	}
	return nil
}
