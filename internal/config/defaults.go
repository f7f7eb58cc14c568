package config

import (
	"github.com/ziadkadry99/distant-reading/internal/analysis"
	"github.com/ziadkadry99/distant-reading/internal/render"
	"github.com/ziadkadry99/distant-reading/internal/view"
)

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = ".distread.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	opts := view.DefaultOptions()
	return &Config{
		Title:        "Distant Reading",
		DataPath:     analysis.DefaultPath,
		OutputDir:    "site",
		Port:         8080,
		DefaultText:  opts.DefaultText,
		DefaultTheme: opts.DefaultTheme,
		Texts:        opts.Texts,
		Themes:       opts.Themes,
		Comparison:   render.DefaultPair,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ViewOptions returns the controls described by the configuration.
func (c *Config) ViewOptions() view.Options {
	return view.Options{
		Texts:        c.Texts,
		Themes:       c.Themes,
		Pair:         c.Comparison,
		DefaultText:  c.DefaultText,
		DefaultTheme: c.DefaultTheme,
	}
}
