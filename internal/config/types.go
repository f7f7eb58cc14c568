package config

import "github.com/ziadkadry99/distant-reading/internal/render"

// Config is the top-level distread configuration, corresponding to .distread.yml.
type Config struct {
	Title           string      `yaml:"title" koanf:"title"`
	DataPath        string      `yaml:"data_path" koanf:"data_path"`
	OutputDir       string      `yaml:"output_dir" koanf:"output_dir"`
	Port            int         `yaml:"port" koanf:"port"`
	AllowAllOrigins bool        `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	DefaultText     string      `yaml:"default_text" koanf:"default_text"`
	DefaultTheme    string      `yaml:"default_theme" koanf:"default_theme"`
	Texts           []string    `yaml:"texts" koanf:"texts"`
	Themes          []string    `yaml:"themes" koanf:"themes"`
	Comparison      render.Pair `yaml:"comparison" koanf:"comparison"`
	Log             LogConfig   `yaml:"log" koanf:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
	// Development switches to zap's human-readable console encoder.
	Development bool `yaml:"development" koanf:"development"`
}
