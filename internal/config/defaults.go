package config

import (
	_ "embed"
)

//go:embed defaults/road.yaml
var defaultRoadYAML []byte

// DefaultRoadConfig returns the reference road configuration.
func DefaultRoadConfig() RoadConfig {
	return RoadConfig{
		Surface: "canvas",
		Timing: TimingConfig{
			TickRate:       60,
			TimeScale:      10, // Elapsed seconds scaled to simulation units
			ReleaseAfterMS: 120,
		},
		Field: SizeConfig{Width: 600, Height: 400},
		Car: CarConfig{
			Size:     SizeConfig{Width: 40, Height: 50},
			Pos:      VectorConfig{X: 300, Y: 350},
			Speed:    VectorConfig{X: 0, Y: 10},
			MaxSpeed: VectorConfig{X: 15, Y: 0},
		},
		Road:  RoadBed{Width: 100, Y: 10},
		Bands: SizeConfig{Width: 5, Height: 30},
		Colors: ColorsConfig{
			Background: "#EEE",
			Road:       "#CCC",
			BandDark:   "#444",
			BandLight:  "#FFF",
			Car:        "#36A",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRoadYAML
}
