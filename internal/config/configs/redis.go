package configs

import "time"

// Redis configures the shared dedup guard and selection cache. When neither
// URL nor Address is set the engine keeps both stores in process memory.
type Redis struct {
	URL          string        `env:"URL"`
	Address      string        `env:"ADDRESS"`
	Password     string        `env:"PASSWORD"`
	DB           int           `env:"DB" envDefault:"0"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"0"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"2s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"500ms"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"500ms"`
}

// Enabled reports whether a Redis endpoint is configured.
func (c Redis) Enabled() bool {
	return c.URL != "" || c.Address != ""
}
