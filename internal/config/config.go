// Package config loads settings for the lvdecl binaries.
//
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Default configuration values.
const (
	DefaultFile       = "lvdecl.yaml"
	DefaultAddr       = ":8080"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "json"
	DefaultCacheSize  = 1024
	DefaultBatchLimit = 8
	DefaultMaxBatch   = 256
	EnvPrefix         = "LVDECL_"
	formatJSON        = "json"
	formatConsole     = "console"
)

// Config holds every setting of the server and the CLI.
type Config struct {
	Addr        string   `koanf:"addr"`
	LogLevel    string   `koanf:"log_level"`
	LogFormat   string   `koanf:"log_format"`
	CORSOrigins []string `koanf:"cors_origins"`
	// CacheSize is the number of paradigms kept by the server; 0 disables
	// the cache.
	CacheSize int `koanf:"cache_size"`
	// BatchLimit bounds the goroutines declining one batch request.
	BatchLimit int `koanf:"batch_limit"`
	// MaxBatch bounds the number of words in one batch request.
	MaxBatch      int  `koanf:"max_batch"`
	AllowRegister bool `koanf:"allow_register"`
	// SpecialCases are YAML files loaded, in order, on top of the built-in
	// special cases.
	SpecialCases []string `koanf:"special_cases"`
	// Watch reloads the special-case files when they change on disk.
	Watch bool `koanf:"watch"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"addr":           DefaultAddr,
		"log_level":      DefaultLogLevel,
		"log_format":     DefaultLogFormat,
		"cors_origins":   []string{"*"},
		"cache_size":     DefaultCacheSize,
		"batch_limit":    DefaultBatchLimit,
		"max_batch":      DefaultMaxBatch,
		"allow_register": true,
		"special_cases":  []string{},
		"watch":          false,
	}
}

// Load reads the configuration. cfgFile may be empty, in which case
// lvdecl.yaml is read from the working directory when it exists. Only
// flags explicitly set on flags override other sources; dashes in flag
// names map to underscores in keys.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			used = DefaultFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// LVDECL_CACHE_SIZE -> cache_size. List values are comma separated.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case formatJSON, formatConsole:
	default:
		return fmt.Errorf("log_format must be %q or %q, got %q", formatJSON, formatConsole, c.LogFormat)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	if c.BatchLimit < 1 {
		return fmt.Errorf("batch_limit must be at least 1, got %d", c.BatchLimit)
	}
	if c.MaxBatch < 1 {
		return fmt.Errorf("max_batch must be at least 1, got %d", c.MaxBatch)
	}
	return nil
}
