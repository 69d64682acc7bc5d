package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

// configBuilder collects config layers in priority order. The first layer
// that sets a field wins.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 4)}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.configs {
		// mergo only fills zero-valued fields of merged
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}

// add appends the layer produced by load. A failing source is remembered and
// reported by build, the remaining sources still run.
func (b *configBuilder) add(source string, load func() (*StructuredConfig, error)) *configBuilder {
	layer, err := load()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	if layer != nil {
		b.configs = append(b.configs, layer)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add("env", func() (*StructuredConfig, error) {
		cfg := new(StructuredConfig)
		return cfg, parseEnv(cfg)
	})
}

func (b *configBuilder) withFlags(flags *pflag.FlagSet) *configBuilder {
	if flags == nil {
		return b
	}
	return b.add("flags", func() (*StructuredConfig, error) {
		return parseFlags(flags)
	})
}

// withJSON loads the file named by the first layer that sets JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, layer := range b.configs {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
			break
		}
	}
	if path == "" {
		return b
	}
	return b.add("json "+path, func() (*StructuredConfig, error) {
		return parseJSON(path)
	})
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", func() (*StructuredConfig, error) {
		return Defaults(), nil
	})
}
