package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"hermes-ido/internal/config/configs"
)

// Config is the process configuration, read from the environment by Load.
// Each section lives in the configs package under its own variable prefix.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). Seeding of
	// demo campaigns only happens in dev.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects the campaign registry backend (STORE_DRIVER).
	Store configs.Store `envPrefix:"STORE_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Badger configures the embedded store (BADGER_ prefix).
	Badger configs.Badger `envPrefix:"BADGER_"`

	// AMQP configures the RabbitMQ event publisher (AMQP_ prefix).
	AMQP configs.AMQP `envPrefix:"AMQP_"`

	// Resolver configures automatic approval of ended campaigns.
	Resolver configs.Resolver `envPrefix:"RESOLVER_"`

	// Ledger configures the in-process token ledger.
	Ledger configs.Ledger `envPrefix:"LEDGER_"`
}

// Load parses the environment, applying envDefault for unset variables, and
// rejects unknown store drivers.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	switch cfg.Store.Driver {
	case "badger", "postgres":
	default:
		return cfg, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	return cfg, nil
}
