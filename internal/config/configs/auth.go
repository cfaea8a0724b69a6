package configs

import (
	"errors"
	"time"
)

// Auth configures the HS256 identity tokens. The simulated sign-in
// endpoint issues them and every wizard route requires one. Secret has no
// default: commands that sign or verify tokens call Validate first.
type Auth struct {
	Secret   string        `env:"SECRET"`
	Issuer   string        `env:"ISSUER" envDefault:"campaign-wizard"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// ErrNoAuthSecret is returned by Validate when AUTH_SECRET is unset.
var ErrNoAuthSecret = errors.New("AUTH_SECRET must be set")

func (c Auth) Validate() error {
	if c.Secret == "" {
		return ErrNoAuthSecret
	}
	if c.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive")
	}
	return nil
}
