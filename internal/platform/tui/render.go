package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-road/internal/core"
)

// halfBlock shows two vertically stacked pixels in one terminal cell:
// foreground is the upper pixel, background the lower.
const halfBlock = "▀"

type cellColors struct {
	top, bottom core.Color
}

// RenderScreen converts a Screen to a styled string for display.
// Each terminal row covers two screen rows. Adjacent cells with the same
// colors are grouped to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	rows := (s.Height() + 1) / 2
	styles := make(map[cellColors]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*rows*8 + rows)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := pairAt(s, x, row)

			// Collect consecutive cells with the same colors
			n := 0
			for x < s.Width() && pairAt(s, x, row) == start {
				n++
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(start.top.Hex())).
					Background(lipgloss.Color(start.bottom.Hex()))
				styles[start] = style
			}
			sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func pairAt(s *core.Screen, x, row int) cellColors {
	return cellColors{top: s.Get(x, 2*row), bottom: s.Get(x, 2*row+1)}
}

// fitField returns the largest screen size, in pixels, that shows the
// field undistorted inside a terminal area of cols x rows cells.
func fitField(field core.Size, cols, rows int) (w, h int) {
	if cols <= 0 || rows <= 0 || !(field.Width > 0) || !(field.Height > 0) {
		return 0, 0
	}
	pxW, pxH := float64(cols), float64(rows*2)
	scale := min(pxW/field.Width, pxH/field.Height)
	const eps = 1e-9 // Keep exact fits whole after float rounding
	w = int(field.Width*scale + eps)
	h = int(field.Height*scale + eps)
	h -= h % 2 // Whole terminal rows
	return w, h
}
