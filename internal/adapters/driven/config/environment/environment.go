// Package environment reads setting overrides from TS_APP_* variables.
package environment

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Itterum/ts-app/internal/core/domain"
)

// Overrides holds settings taken from the environment. Zero values mean
// the variable was not set.
type Overrides struct {
	Backend    string `env:"TS_APP_BACKEND"`
	IDLength   int    `env:"TS_APP_ID_LENGTH"`
	BcryptCost int    `env:"TS_APP_BCRYPT_COST"`
	Verbose    bool   `env:"TS_APP_VERBOSE"`
}

// Load parses the TS_APP_* variables.
func Load() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return Overrides{}, fmt.Errorf("parse env: %w", err)
	}
	if o.Backend != "" {
		if _, err := domain.ParseStorageBackend(o.Backend); err != nil {
			return Overrides{}, fmt.Errorf("parse env: TS_APP_BACKEND: %w", err)
		}
	}
	return o, nil
}

// Apply returns settings with the set overrides laid over it.
func (o Overrides) Apply(settings domain.Settings) domain.Settings {
	if o.Backend != "" {
		settings.Backend = domain.StorageBackend(o.Backend)
	}
	if o.IDLength > 0 {
		settings.IDLength = o.IDLength
	}
	if o.BcryptCost > 0 {
		settings.BcryptCost = o.BcryptCost
	}
	if o.Verbose {
		settings.Verbose = true
	}
	return settings
}
