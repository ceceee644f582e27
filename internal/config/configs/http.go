package configs

import "time"

// HTTP defines configuration for the public HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on.
	Port            uint16        `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
