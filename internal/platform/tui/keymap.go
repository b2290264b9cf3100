package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-road/internal/core"
)

// PlayKeyMap defines the key bindings shown while driving.
type PlayKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Help, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "steer right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to physical key names.
type KeyMapper struct {
	keys PlayKeyMap
}

// NewKeyMapper creates a new key mapper for the given bindings.
func NewKeyMapper(keys PlayKeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey returns the key name the driver should see for msg.
// Steering bindings map to the arrow keys; everything else keeps its
// Bubble Tea name.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, km.keys.Left):
		return core.KeyArrowLeft
	case key.Matches(msg, km.keys.Right):
		return core.KeyArrowRight
	}

	switch msg.Type {
	case tea.KeyUp:
		return "ArrowUp"
	case tea.KeyDown:
		return "ArrowDown"
	}
	return core.Key(msg.String())
}

// opposite returns the other steering key, or "" for non-steering keys.
func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyArrowLeft:
		return core.KeyArrowRight
	case core.KeyArrowRight:
		return core.KeyArrowLeft
	}
	return ""
}

// repeatDelay covers the pause terminals make before auto-repeat starts.
const repeatDelay = 500 * time.Millisecond

// holdTracker synthesizes key releases. Terminals only report presses and
// auto-repeats, so a key counts as held until no repeat arrived in time:
// repeatDelay after the first press, the release window after a repeat.
type holdTracker struct {
	window time.Duration
	held   map[core.Key]heldKey
}

type heldKey struct {
	last      time.Time
	repeating bool
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{
		window: window,
		held:   make(map[core.Key]heldKey),
	}
}

// Press records a press or repeat of k at now. It reports whether this is
// a new press, and returns the opposite steering key if it was held and
// must be released first.
func (h *holdTracker) Press(k core.Key, now time.Time) (isNew bool, release core.Key) {
	if o := opposite(k); o != "" {
		if h.Held(o) {
			delete(h.held, o)
			release = o
		}
	}
	held := h.Held(k)
	h.held[k] = heldKey{last: now, repeating: held}
	return !held, release
}

// Expired removes and returns the keys that stopped repeating, in name order.
func (h *holdTracker) Expired(now time.Time) []core.Key {
	var expired []core.Key
	for k, hk := range h.held {
		limit := max(h.window, repeatDelay)
		if hk.repeating {
			limit = h.window
		}
		if now.Sub(hk.last) >= limit {
			expired = append(expired, k)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	for _, k := range expired {
		delete(h.held, k)
	}
	return expired
}

// Held reports whether k is currently considered pressed.
func (h *holdTracker) Held(k core.Key) bool {
	_, ok := h.held[k]
	return ok
}
