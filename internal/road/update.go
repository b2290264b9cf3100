package road

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-road/internal/core"
)

// ErrUnsupportedAction is returned by Update for an action it does not know.
// This is a programming error, not a runtime condition.
var ErrUnsupportedAction = errors.New("road: unsupported action")

// Update returns the snapshot that follows g after action a.
// It never modifies g.
func Update(g Game, a Action) (Game, error) {
	switch a := a.(type) {
	case TimeDelta:
		next := g
		next.Road = scrollRoad(g.Road, g.Car, a.Elapsed)
		next.Car = moveCar(g.Car, a.Elapsed)
		return next, nil

	case KeyChange:
		next := g
		next.Car.Speed.X = steering(a.Keys) * g.Car.MaxSpeed.X
		return next, nil
	}

	return g, fmt.Errorf("%w: %T", ErrUnsupportedAction, a)
}

// scrollRoad moves the road opposite to the car's forward speed.
func scrollRoad(r Road, car Car, elapsed float64) Road {
	r.Y -= car.Speed.Y * elapsed
	return r
}

// moveCar advances the lateral position only; the car stays put vertically.
func moveCar(car Car, elapsed float64) Car {
	car.Pos = core.Add(car.Pos, core.Vector{X: car.Speed.X * elapsed})
	return car
}

// steering returns -1, 0 or +1. Left and right together cancel.
func steering(keys core.KeyMap) float64 {
	var dir float64
	if keys.Pressed(core.KeyArrowLeft) {
		dir--
	}
	if keys.Pressed(core.KeyArrowRight) {
		dir++
	}
	return dir
}
