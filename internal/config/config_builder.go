package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder layers config sources and merges them on build. Sources
// appended earlier take precedence, so flags go in before env before JSON.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected sources into one StructuredConfig and validates
// it. mergo only fills zero fields, which gives earlier sources precedence.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, src := range b.configs {
		if err := mergo.Merge(merged, src); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

// withJSON loads the JSON config file when an earlier source named one.
// The last non-empty path wins.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, src := range b.configs {
		if src.JSONFilePath != "" {
			jsonPath = src.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}
