package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/distant-reading/internal/view"
)

// EnvPrefix prefixes environment overrides. A double underscore selects a
// nested key: DISTREAD_COMPARISON__LEFT -> comparison.left.
const EnvPrefix = "DISTREAD_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DISTREAD_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data_path is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if len(c.Texts) == 0 {
		return fmt.Errorf("texts must list at least one text id")
	}
	if slices.Contains(c.Texts, view.ComparisonID) {
		return fmt.Errorf("%q is reserved and cannot be a text id", view.ComparisonID)
	}
	if len(c.Themes) == 0 {
		return fmt.Errorf("themes must list at least one theme id")
	}
	if !slices.Contains(c.Texts, c.DefaultText) {
		return fmt.Errorf("default_text %q is not one of texts", c.DefaultText)
	}
	if !slices.Contains(c.Themes, c.DefaultTheme) {
		return fmt.Errorf("default_theme %q is not one of themes", c.DefaultTheme)
	}

	if c.Comparison.Left == "" || c.Comparison.Right == "" {
		return fmt.Errorf("comparison.left and comparison.right are required")
	}
	if c.Comparison.Left == c.Comparison.Right {
		return fmt.Errorf("comparison must name two different texts")
	}
	for _, id := range []string{c.Comparison.Left, c.Comparison.Right} {
		if !slices.Contains(c.Texts, id) {
			return fmt.Errorf("comparison text %q is not one of texts", id)
		}
	}

	if c.Log.Level != "" && !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	return nil
}
