package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/distant-reading/internal/render"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DataPath != "analysis_results.json" {
		t.Errorf("expected default data_path %q, got %q", "analysis_results.json", cfg.DataPath)
	}
	if cfg.DefaultText != "wells" {
		t.Errorf("expected default text %q, got %q", "wells", cfg.DefaultText)
	}
	if cfg.DefaultTheme != "socialism" {
		t.Errorf("expected default theme %q, got %q", "socialism", cfg.DefaultTheme)
	}
	if cfg.Comparison != render.DefaultPair {
		t.Errorf("expected default comparison %+v, got %+v", render.DefaultPair, cfg.Comparison)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.distread.yml")

	original := DefaultConfig()
	original.Title = "Utopias"
	original.DataPath = "data/results.json"
	original.Texts = []string{"more", "wells"}
	original.DefaultText = "more"
	original.Comparison = render.Pair{Left: "more", Right: "wells"}
	original.Port = 9090

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
	if loaded.DataPath != original.DataPath {
		t.Errorf("data_path: got %q, want %q", loaded.DataPath, original.DataPath)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Comparison != original.Comparison {
		t.Errorf("comparison: got %+v, want %+v", loaded.Comparison, original.Comparison)
	}
	if len(loaded.Texts) != len(original.Texts) {
		t.Fatalf("texts length: got %d, want %d", len(loaded.Texts), len(original.Texts))
	}
	for i, v := range loaded.Texts {
		if v != original.Texts[i] {
			t.Errorf("texts[%d]: got %q, want %q", i, v, original.Texts[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.DataPath != "analysis_results.json" {
		t.Errorf("expected default data_path, got %q", cfg.DataPath)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("DISTREAD_DATA_PATH", "https://example.com/analysis_results.json")
	t.Setenv("DISTREAD_COMPARISON__RIGHT", "more")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DataPath != "https://example.com/analysis_results.json" {
		t.Errorf("env override failed: got %q", loaded.DataPath)
	}
	if loaded.Comparison.Right != "more" {
		t.Errorf("nested env override failed: got %q", loaded.Comparison.Right)
	}
	if loaded.Comparison.Left != "wells" {
		t.Errorf("comparison.left should keep its value, got %q", loaded.Comparison.Left)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty data path", func(c *Config) { c.DataPath = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"negative port", func(c *Config) { c.Port = -1 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"no texts", func(c *Config) { c.Texts = nil }},
		{"reserved text id", func(c *Config) { c.Texts = append(c.Texts, "comparison") }},
		{"no themes", func(c *Config) { c.Themes = nil }},
		{"default text not listed", func(c *Config) { c.DefaultText = "tolstoy" }},
		{"default theme not listed", func(c *Config) { c.DefaultTheme = "anarchy" }},
		{"missing comparison side", func(c *Config) { c.Comparison.Right = "" }},
		{"same comparison sides", func(c *Config) { c.Comparison.Right = c.Comparison.Left }},
		{"comparison text not listed", func(c *Config) { c.Comparison.Right = "tolstoy" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestViewOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.ViewOptions()
	if opts.DefaultText != cfg.DefaultText || opts.DefaultTheme != cfg.DefaultTheme {
		t.Errorf("defaults not carried over: %+v", opts)
	}
	if opts.Pair != cfg.Comparison {
		t.Errorf("pair: got %+v, want %+v", opts.Pair, cfg.Comparison)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"wells", []string{"wells"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

func TestSaveWritesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, key := range []string{"data_path:", "comparison:", "left: wells", "default_theme: socialism"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("saved config missing %q:\n%s", key, data)
		}
	}
}
