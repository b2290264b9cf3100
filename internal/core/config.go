package core

import "time"

// RuntimeConfig contains the host parameters a session is started with.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickRate     int           // Frame requests per second (default 60)
	ReleaseAfter time.Duration // Hold window before a terminal key counts as released
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     60,
		ReleaseAfter: 120 * time.Millisecond,
	}
}
