package core

// Key names a physical key as reported by the host platform.
type Key string

// Keys the simulation gives meaning to. Any other key is still tracked
// in a KeyMap but never affects steering.
const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// String returns the key name.
func (k Key) String() string {
	return string(k)
}

// KeyMap reflects the current pressed state of physical keys.
// The zero value is an empty map where every key reads as released.
type KeyMap struct {
	pressed map[Key]bool
}

// NewKeyMap creates an empty key map.
func NewKeyMap() KeyMap {
	return KeyMap{pressed: make(map[Key]bool)}
}

// KeyMapOf creates a key map with the given keys pressed.
func KeyMapOf(keys ...Key) KeyMap {
	m := NewKeyMap()
	for _, k := range keys {
		m.pressed[k] = true
	}
	return m
}

// Pressed reports whether a key is down. Absent keys are not pressed.
func (m KeyMap) Pressed(k Key) bool {
	return m.pressed[k]
}

// Set records the pressed state of a key.
func (m *KeyMap) Set(k Key, down bool) {
	if m.pressed == nil {
		m.pressed = make(map[Key]bool)
	}
	m.pressed[k] = down
}

// Clone creates an independent copy of this key map.
func (m KeyMap) Clone() KeyMap {
	clone := KeyMap{pressed: make(map[Key]bool, len(m.pressed))}
	for k, v := range m.pressed {
		clone.pressed[k] = v
	}
	return clone
}
