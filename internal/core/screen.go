package core

import (
	"math"
	"strings"
)

// lumaRamp maps brightness to characters for plain-text output, dark to light.
const lumaRamp = "@%#*+=-:. "

// Screen is a 2D color raster for rendering the simulation.
// It decouples drawing from the terminal: the renderer fills rectangles
// while the platform decides how cells are displayed.
type Screen struct {
	width  int
	height int
	fill   Color
	cells  [][]Color
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Color, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Color, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the next
// render repaints the whole surface.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
}

// Set colors a single cell. Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the color at the given position, or the zero color out of bounds.
func (s *Screen) Get(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Color{}
	}
	return s.cells[y][x]
}

// SetFill sets the color used by FillRect.
func (s *Screen) SetFill(c Color) {
	s.fill = c
}

// FillRect colors every cell the rectangle overlaps, clipped to the screen.
// Rectangles with non-positive width or height draw nothing.
func (s *Screen) FillRect(x, y, w, h float64) {
	if !(w > 0) || !(h > 0) {
		return
	}
	x0 := Clamp(int(math.Floor(x)), 0, s.width)
	x1 := Clamp(int(math.Ceil(x+w)), 0, s.width)
	y0 := Clamp(int(math.Floor(y)), 0, s.height)
	y1 := Clamp(int(math.Ceil(y+h)), 0, s.height)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.cells[cy][cx] = s.fill
		}
	}
}

// Glyph returns the plain-text character for a color.
func Glyph(c Color) byte {
	i := int(math.Round(c.Luma() * float64(len(lumaRamp)-1)))
	return lumaRamp[Clamp(i, 0, len(lumaRamp)-1)]
}

// String converts the screen to plain text, one character per cell.
// Rows are joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	row := make([]byte, s.width)
	for x, c := range s.cells[y] {
		row[x] = Glyph(c)
	}
	return string(row)
}
