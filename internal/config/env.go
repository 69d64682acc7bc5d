package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces the variables of zsync and apiserver. A prefixed
// variable overrides its bare form, so ZSYNC_STORAGE_DB_DSN beats
// STORAGE_DB_DSN.
const envPrefix = "ZSYNC_"

// parseEnv fills cfg from the bare variables first and then from the
// prefixed ones. Unset variables leave fields untouched.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error getting %s env configs: %w", envPrefix, err)
	}
	return nil
}
