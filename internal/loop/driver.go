// Package loop drives a road simulation from host events.
//
// A Driver owns the mutable session cells (current game, key map and
// previous frame timestamp) and turns frame ticks and key events into
// road actions. It is not safe for concurrent use: the host must deliver
// events from a single goroutine, one at a time.
package loop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-road/internal/core"
	"github.com/vovakirdan/tui-road/internal/road"
)

// ErrSurfaceUnavailable is reported when no drawing surface can be acquired.
var ErrSurfaceUnavailable = errors.New("loop: no drawing surface available")

// SurfaceProvider acquires a drawing surface by identifier.
type SurfaceProvider interface {
	Surface(id string) (core.Surface, bool)
}

// Scheduler requests one more frame tick from the host.
type Scheduler interface {
	RequestFrame()
}

// Alerter shows a fatal condition to the user.
type Alerter interface {
	Alert(err error)
}

// Renderer draws a game snapshot.
type Renderer interface {
	Render(dst core.Surface, g road.Game)
}

// State is the driver lifecycle state.
type State int

const (
	StateInit    State = iota // Constructed, Start not called yet
	StateRunning              // Frames are being scheduled
	StateStopped              // Stop was called
	StateFailed               // Start or an update failed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Options configures a Driver. Surfaces and Scheduler are required.
type Options struct {
	SurfaceID string
	Surfaces  SurfaceProvider
	Scheduler Scheduler
	Alerter   Alerter     // Optional
	Renderer  Renderer    // Defaults to road.DefaultRenderer()
	TimeScale float64     // Simulation units per wall-clock second
	Logger    *log.Logger // Optional
}

// Driver is the per-session loop state machine.
type Driver struct {
	opts    Options
	logger  *log.Logger
	surface core.Surface
	state   State

	game     road.Game
	keys     core.KeyMap
	previous time.Time

	ticks  int
	frames int
}

// New creates a driver for the given initial snapshot.
func New(initial road.Game, opts Options) *Driver {
	if opts.Renderer == nil {
		opts.Renderer = road.DefaultRenderer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		opts:   opts,
		logger: logger,
		game:   initial,
		keys:   core.NewKeyMap(),
	}
}

// Start acquires the surface, draws the first frame and requests the
// first tick. If no surface is available it alerts ErrSurfaceUnavailable,
// returns it and never enters Running.
func (d *Driver) Start(now time.Time) error {
	if d.state != StateInit {
		return fmt.Errorf("loop: start in state %s", d.state)
	}

	surface, ok := d.acquire()
	if !ok {
		d.state = StateFailed
		err := fmt.Errorf("%w: %q", ErrSurfaceUnavailable, d.opts.SurfaceID)
		d.logger.Error("cannot start loop", "surface", d.opts.SurfaceID, "error", err)
		if d.opts.Alerter != nil {
			d.opts.Alerter.Alert(err)
		}
		return err
	}
	d.surface = surface
	d.previous = now
	d.state = StateRunning
	d.logger.Debug("loop started", "surface", d.opts.SurfaceID)

	next, err := road.Update(d.game, road.TimeDelta{Elapsed: 0})
	if err != nil {
		return d.fail(err)
	}
	// The first frame is drawn even though a zero step never changes state.
	d.game = next
	d.draw()
	d.opts.Scheduler.RequestFrame()
	return nil
}

func (d *Driver) acquire() (core.Surface, bool) {
	if d.opts.Surfaces == nil {
		return nil, false
	}
	surface, ok := d.opts.Surfaces.Surface(d.opts.SurfaceID)
	if !ok || surface == nil {
		return nil, false
	}
	return surface, true
}

// Tick handles one frame callback at wall-clock time now. The state is
// rendered only if the step changed it; the next frame is always requested.
func (d *Driver) Tick(now time.Time) error {
	if d.state != StateRunning {
		return nil
	}
	d.ticks++

	elapsed := d.opts.TimeScale * now.Sub(d.previous).Seconds()
	next, err := road.Update(d.game, road.TimeDelta{Elapsed: elapsed})
	if err != nil {
		return d.fail(err)
	}
	if next != d.game {
		d.game = next
		d.draw()
	}
	d.previous = now

	d.opts.Scheduler.RequestFrame()
	return nil
}

// KeyDown records a pressed key and applies the new key state.
func (d *Driver) KeyDown(k core.Key) error {
	return d.key(k, true)
}

// KeyUp records a released key and applies the new key state.
func (d *Driver) KeyUp(k core.Key) error {
	return d.key(k, false)
}

// key never renders; the change shows on the next tick.
func (d *Driver) key(k core.Key, down bool) error {
	if d.state != StateRunning {
		return nil
	}
	d.keys.Set(k, down)

	next, err := road.Update(d.game, road.KeyChange{Keys: d.keys.Clone()})
	if err != nil {
		return d.fail(err)
	}
	d.game = next
	return nil
}

// Stop ends the session. No further frames are requested and later
// events are ignored.
func (d *Driver) Stop() {
	if d.state == StateRunning {
		d.logger.Debug("loop stopped", "ticks", d.ticks, "frames", d.frames)
		d.state = StateStopped
	}
}

// Repaint redraws the current state without advancing it, for hosts whose
// surface lost its content. Ignored unless Running.
func (d *Driver) Repaint() {
	if d.state == StateRunning {
		d.draw()
	}
}

func (d *Driver) draw() {
	d.opts.Renderer.Render(d.surface, d.game)
	d.frames++
}

func (d *Driver) fail(err error) error {
	d.state = StateFailed
	d.logger.Error("update failed", "error", err)
	return fmt.Errorf("loop: %w", err)
}

// Game returns the current snapshot.
func (d *Driver) Game() road.Game {
	return d.game
}

// Pressed reports whether a key is currently recorded as down.
func (d *Driver) Pressed(k core.Key) bool {
	return d.keys.Pressed(k)
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Ticks returns the number of frame callbacks handled.
func (d *Driver) Ticks() int {
	return d.ticks
}

// Frames returns the number of frames rendered, including the first.
func (d *Driver) Frames() int {
	return d.frames
}
