// Package config loads run settings for the maneuvergen CLI from a YAML or
// JSON file with MG_ environment overrides (MG_LOGGING__LEVEL=debug sets
// logging.level).
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/maneuvergen/benchmark"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MG_"

// Config is the root of a settings file.
type Config struct {
	Logging   LoggingConfig   `json:"logging"`
	Metrics   MetricsConfig   `json:"metrics"`
	Benchmark benchmark.Group `json:"benchmark"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is the .prom file written after a run; empty disables export.
	Textfile string `json:"textfile"`
}

// Load reads path (".yaml", ".yml" or ".json") and applies environment
// overrides. An empty path loads only the environment. Keys absent from both
// sources take the defaults of benchmark.DefaultGroup and LoggingConfig.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Empty prefix and zero rate are valid, so they default on absence only.
	d := benchmark.DefaultGroup()
	if !k.Exists("benchmark.prefix") {
		cfg.Benchmark.Prefix = d.Prefix
	}
	if !k.Exists("benchmark.remote_rate") {
		cfg.Benchmark.RemoteRate = d.RemoteRate
	}
	cfg.Benchmark.SetDefaults()
	cfg.Logging.SetDefaults()

	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if _, err := cfg.Benchmark.Jobs(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps MG_BENCHMARK__REMOTE_RATE to benchmark.remote_rate.
func envKey(s string) string {
	s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}
