// Package road implements the scrolling-road simulation: a car steering
// left and right on a road that scrolls under it.
//
// The package is pure. Update maps a Game and an Action to the next Game,
// and Renderer draws a Game onto a core.Surface; neither keeps state.
package road

import (
	"github.com/vovakirdan/tui-road/internal/config"
	"github.com/vovakirdan/tui-road/internal/core"
)

// Field is the visible play area. It is fixed for a session.
type Field struct {
	Size core.Size
}

// Car is the player's car. Pos is its center; Speed.X is lateral and
// Speed.Y is the rate the road scrolls at.
type Car struct {
	Size     core.Size
	Pos      core.Vector
	Speed    core.Vector
	MaxSpeed core.Vector
}

// Road is the road bed. Y is an unbounded scroll accumulator.
type Road struct {
	Width float64
	Y     float64
}

// Game is the full simulation snapshot passed to Update and Render.
// It is a comparable value; two snapshots are equal iff every field is.
type Game struct {
	Field Field
	Car   Car
	Road  Road
}

// NewGame builds the initial snapshot from configuration.
func NewGame(cfg config.RoadConfig) Game {
	return Game{
		Field: Field{Size: cfg.Field.Size()},
		Car: Car{
			Size:     cfg.Car.Size.Size(),
			Pos:      cfg.Car.Pos.Vector(),
			Speed:    cfg.Car.Speed.Vector(),
			MaxSpeed: cfg.Car.MaxSpeed.Vector(),
		},
		Road: Road{
			Width: cfg.Road.Width,
			Y:     cfg.Road.Y,
		},
	}
}

// RoadX returns the x-coordinate of the road's left edge.
func (g Game) RoadX() float64 {
	return (g.Field.Size.Width - g.Road.Width) / 2
}
