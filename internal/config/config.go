// Package config loads process configuration by layering built-in
// defaults, an optional YAML file and IFRSHUB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/abhisek/ifrshub/internal/style"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "IFRSHUB_"

// EnvConfigFile names the variable that points at a config file when no
// path is given explicitly.
const EnvConfigFile = EnvPrefix + "CONFIG"

// ErrInvalidConfig marks configuration that loaded but does not make sense.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile receives logs. Empty means stderr for the server and no
	// logging at all for the terminal UI.
	LogFile string `koanf:"log_file"`

	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogPath points at a YAML catalog file. Empty means the store, or
	// the built-in sample content if the store has nothing.
	CatalogPath string `koanf:"catalog_path"`

	// DBPath overrides the catalog database location.
	DBPath string `koanf:"db_path"`

	// StandardStyles adds or overrides standard code to style token
	// mappings, e.g. {"IFRS 17": "deep"}.
	StandardStyles map[string]string `koanf:"standard_styles"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":8080",
	}
}

// Load builds a Config. Order of precedence (low -> high):
//  1. defaults (New())
//  2. YAML file at path, or at $IFRSHUB_CONFIG when path is empty
//  3. env (prefix IFRSHUB_)
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// IFRSHUB_LOG_LEVEL -> log_level
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that have a fixed vocabulary.
func (c *Config) Validate() error {
	var errs []error
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel))
	}
	if c.Addr == "" {
		errs = append(errs, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig))
	}
	for code, name := range c.StandardStyles {
		if _, err := style.ParseToken(name); err != nil {
			errs = append(errs, fmt.Errorf("%w: standard_styles[%q]: %w", ErrInvalidConfig, code, err))
		}
	}
	return errors.Join(errs...)
}

// Styles builds the presentation resolver with any configured standard
// overrides applied.
func (c *Config) Styles() *style.Resolver {
	if len(c.StandardStyles) == 0 {
		return style.Default()
	}
	m := make(map[string]style.Token, len(c.StandardStyles))
	for code, name := range c.StandardStyles {
		t, err := style.ParseToken(name)
		if err != nil {
			continue
		}
		m[code] = t
	}
	return style.New(style.WithStandards(m))
}
