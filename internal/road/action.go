package road

import (
	"fmt"

	"github.com/vovakirdan/tui-road/internal/core"
)

// Action is a stimulus the simulation reacts to.
// The set is closed: TimeDelta and KeyChange are the only implementations.
type Action interface {
	fmt.Stringer
	action()
}

// TimeDelta advances the simulation by Elapsed time units.
type TimeDelta struct {
	Elapsed float64
}

// KeyChange reports the current state of all keys.
type KeyChange struct {
	Keys core.KeyMap
}

func (TimeDelta) action() {}
func (KeyChange) action() {}

// String returns a short description of the action.
func (a TimeDelta) String() string {
	return fmt.Sprintf("TimeDelta(%g)", a.Elapsed)
}

// String returns a short description of the action.
func (a KeyChange) String() string {
	return fmt.Sprintf("KeyChange(left=%t right=%t)",
		a.Keys.Pressed(core.KeyArrowLeft), a.Keys.Pressed(core.KeyArrowRight))
}
