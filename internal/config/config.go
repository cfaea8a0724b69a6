package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"campaign-wizard/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// forwarded to Sentry as the event environment.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection used by the postgres store
	// driver and the migrate command.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Store selects the key-value backend holding wizard drafts.
	Store configs.Store `envPrefix:"STORE_"`

	// Wizard holds the cadence and latency knobs of the simulated flows.
	Wizard configs.Wizard `envPrefix:"WIZARD_"`

	Auth   configs.Auth   `envPrefix:"AUTH_"`
	AMQP   configs.AMQP   `envPrefix:"AMQP_"`
	Sentry configs.Sentry `envPrefix:"SENTRY_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is applied first when present; real
// environment variables always take precedence over it. All fields are
// loaded with their specified defaults when no variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
