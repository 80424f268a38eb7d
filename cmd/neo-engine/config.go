package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/neo-engine/pkg/types"
)

// setDefaults registers built-in values for every config key. Config file,
// NEO_ENGINE_* environment variables and flags override them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", "data/neo_data.csv")
	v.SetDefault("catalog.timeout", "30s")
	v.SetDefault("catalog.retries", 3)
	v.SetDefault("query.number", 10)
	v.SetDefault("query.return_object", "NEO")
	v.SetDefault("output.format", "display")
	v.SetDefault("output.path", "data/neo_search_results.csv")
	v.SetDefault("log.verbose", false)
}

// loadConfig resolves the configuration from the global viper instance.
func loadConfig() (types.Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (types.Config, error) {
	setDefaults(v)

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Query.Number < 0 {
		return types.Config{}, fmt.Errorf("query.number must not be negative, got %d", cfg.Query.Number)
	}
	if cfg.Catalog.Retries < 0 {
		return types.Config{}, fmt.Errorf("catalog.retries must not be negative, got %d", cfg.Catalog.Retries)
	}
	return cfg, nil
}
