package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultRoadConfig() {
		t.Errorf("embedded defaults differ from DefaultRoadConfig():\n got %+v\nwant %+v", cfg, DefaultRoadConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("road:\n  width: 160\ntiming:\n  tick_rate: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Road.Width != 160 {
		t.Errorf("Road.Width = %v, expected 160", cfg.Road.Width)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Timing.TickRate)
	}
	// Untouched keys keep their defaults
	if cfg.Road.Y != 10 || cfg.Bands.Height != 30 {
		t.Errorf("defaults not kept: road.y=%v bands.height=%v", cfg.Road.Y, cfg.Bands.Height)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultRoadConfig() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadPrefersLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "road.yaml"), []byte("field:\n  height: 480\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Field.Height != 480 {
		t.Errorf("Field.Height = %v, expected 480 from ./configs", cfg.Field.Height)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RoadConfig)
	}{
		{"empty surface", func(c *RoadConfig) { c.Surface = "" }},
		{"zero tick rate", func(c *RoadConfig) { c.Timing.TickRate = 0 }},
		{"negative release window", func(c *RoadConfig) { c.Timing.ReleaseAfterMS = -1 }},
		{"zero band height", func(c *RoadConfig) { c.Bands.Height = 0 }},
		{"tiny band height", func(c *RoadConfig) { c.Bands.Height = 1e-6 }},
		{"NaN band height", func(c *RoadConfig) { c.Bands.Height = math.NaN() }},
		{"bad color", func(c *RoadConfig) { c.Colors.Car = "blue" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRoadConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	// Negative geometry is accepted
	cfg := DefaultRoadConfig()
	cfg.Road.Width = -20
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should not check geometry, got %v", err)
	}

	// The smallest band height allowed
	cfg = DefaultRoadConfig()
	cfg.Bands.Height = minBandHeight
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with bands.height %d = %v, expected nil", minBandHeight, err)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte("bands:\n  height: -5\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("Parse() = %v, expected ErrInvalid", err)
	}
	// An empty surface id is caught here, before any driver runs
	if _, err := Parse([]byte("surface: \"\"\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("Parse(empty surface) = %v, expected ErrInvalid", err)
	}
	if _, err := Parse([]byte("field: [1, 2")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}
