package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ServerConfig is the reference API server view of [StructuredConfig].
type ServerConfig struct {
	HTTPAddress  string
	KeySignKey   string
	KeyTTL       time.Duration
	FixturesPath string
}

// GetServerConfig builds and validates the server configuration.
func GetServerConfig(flags *pflag.FlagSet) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:  cfg.Server.HTTPAddress,
		KeySignKey:   cfg.Server.KeySignKey,
		KeyTTL:       cfg.Server.KeyTTL,
		FixturesPath: cfg.Server.FixturesPath,
	}

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.KeySignKey == "" || cfg.KeyTTL <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
