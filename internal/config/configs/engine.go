package configs

import "time"

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Engine tunes ad selection. The dedup window is a constant.
type Engine struct {
	// Storage selects the repository backend: "postgres" or "memory".
	Storage      string        `env:"STORAGE" envDefault:"postgres"`
	SelectionTTL time.Duration `env:"SELECTION_TTL" envDefault:"5m"`
	ZoneRefresh  time.Duration `env:"ZONE_REFRESH" envDefault:"1m"`
}
