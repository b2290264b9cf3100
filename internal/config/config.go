// Package config provides YAML-based configuration loading for the road
// simulation. All values are startup constants; nothing is reconfigured
// while a session runs.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-road/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// minBandHeight keeps the number of bands drawn per frame bounded by the
// field height.
const minBandHeight = 1

// RoadConfig contains all configuration for a road session.
type RoadConfig struct {
	Surface string       `yaml:"surface"` // Identifier of the drawing surface to acquire
	Timing  TimingConfig `yaml:"timing"`
	Field   SizeConfig   `yaml:"field"`
	Car     CarConfig    `yaml:"car"`
	Road    RoadBed      `yaml:"road"`
	Bands   SizeConfig   `yaml:"bands"`
	Colors  ColorsConfig `yaml:"colors"`
}

// TimingConfig defines frame scheduling parameters.
type TimingConfig struct {
	TickRate       int     `yaml:"tick_rate"`
	TimeScale      float64 `yaml:"time_scale"` // Simulation units per wall-clock second
	ReleaseAfterMS int     `yaml:"release_after_ms"`
}

// SizeConfig is a width/height pair in field pixels.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// VectorConfig is an x/y pair in field pixels or pixels per time unit.
type VectorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CarConfig defines the initial car.
type CarConfig struct {
	Size     SizeConfig   `yaml:"size"`
	Pos      VectorConfig `yaml:"pos"`
	Speed    VectorConfig `yaml:"speed"`
	MaxSpeed VectorConfig `yaml:"max_speed"`
}

// RoadBed defines the initial road.
type RoadBed struct {
	Width float64 `yaml:"width"`
	Y     float64 `yaml:"y"`
}

// ColorsConfig holds hex fill colors.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Road       string `yaml:"road"`
	BandDark   string `yaml:"band_dark"`
	BandLight  string `yaml:"band_light"`
	Car        string `yaml:"car"`
}

// Size converts to a core.Size.
func (s SizeConfig) Size() core.Size {
	return core.Size{Width: s.Width, Height: s.Height}
}

// Vector converts to a core.Vector.
func (v VectorConfig) Vector() core.Vector {
	return core.Vector{X: v.X, Y: v.Y}
}

// ReleaseAfter returns the key hold window as a duration.
func (t TimingConfig) ReleaseAfter() time.Duration {
	return time.Duration(t.ReleaseAfterMS) * time.Millisecond
}

// Validate checks the values the simulation cannot run without.
// Geometry is not checked.
func (c RoadConfig) Validate() error {
	if c.Surface == "" {
		return fmt.Errorf("%w: surface identifier is empty", ErrInvalid)
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.Timing.TickRate)
	}
	if c.Timing.ReleaseAfterMS < 0 {
		return fmt.Errorf("%w: release_after_ms must not be negative, got %d", ErrInvalid, c.Timing.ReleaseAfterMS)
	}
	if !(c.Bands.Height >= minBandHeight) {
		return fmt.Errorf("%w: bands.height must be at least %d, got %v", ErrInvalid, minBandHeight, c.Bands.Height)
	}

	colors := []struct{ name, value string }{
		{"background", c.Colors.Background},
		{"road", c.Colors.Road},
		{"band_dark", c.Colors.BandDark},
		{"band_light", c.Colors.BandLight},
		{"car", c.Colors.Car},
	}
	for _, col := range colors {
		if _, err := core.ParseColor(col.value); err != nil {
			return fmt.Errorf("%w: colors.%s: %v", ErrInvalid, col.name, err)
		}
	}
	return nil
}
