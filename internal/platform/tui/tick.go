// Package tui provides the Bubble Tea host for the road simulation.
// It supplies the loop driver with a drawing surface, frame scheduling and
// key events, and prints the rasterized surface to the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent when a requested frame is due.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that delivers one FrameMsg after
// one frame interval at the given rate.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// frameScheduler collects frame requests made by the driver during one
// Update call and turns them into at most one command.
type frameScheduler struct {
	tickRate int
	pending  bool
}

// RequestFrame implements loop.Scheduler.
func (s *frameScheduler) RequestFrame() {
	s.pending = true
}

// take returns the frame command for a pending request, or nil.
func (s *frameScheduler) take() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	return frameCmd(s.tickRate)
}
