package core

// Surface is the 2D raster drawing capability the renderer draws on.
// Coordinates are in the surface's own units; FillRect uses the last color
// passed to SetFill.
type Surface interface {
	SetFill(c Color)
	FillRect(x, y, w, h float64)
}

// FillCommand is one recorded FillRect call with the fill active at the time.
type FillCommand struct {
	Color Color
	Rect  Rect
}

// Recorder is a Surface that records fill commands instead of drawing.
type Recorder struct {
	fill     Color
	Commands []FillCommand
}

// SetFill sets the current fill color.
func (r *Recorder) SetFill(c Color) {
	r.fill = c
}

// FillRect records a rectangle fill.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Commands = append(r.Commands, FillCommand{Color: r.fill, Rect: NewRect(x, y, w, h)})
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Viewport scales drawing from field pixels onto a smaller destination,
// e.g. a 600x400 field onto an 80x48 cell screen.
type Viewport struct {
	dst    Surface
	field  Size
	sx, sy float64
}

// NewViewport maps a field of the given size onto a destination of dstW x dstH units.
func NewViewport(dst Surface, field Size, dstW, dstH float64) *Viewport {
	v := &Viewport{dst: dst, field: field}
	v.Resize(dstW, dstH)
	return v
}

// Resize changes the destination size while keeping the field.
func (v *Viewport) Resize(dstW, dstH float64) {
	v.sx, v.sy = 1, 1
	if v.field.Width > 0 {
		v.sx = dstW / v.field.Width
	}
	if v.field.Height > 0 {
		v.sy = dstH / v.field.Height
	}
}

// SetFill forwards the fill color.
func (v *Viewport) SetFill(c Color) {
	v.dst.SetFill(c)
}

// FillRect scales the rectangle and forwards it.
func (v *Viewport) FillRect(x, y, w, h float64) {
	v.dst.FillRect(x*v.sx, y*v.sy, w*v.sx, h*v.sy)
}
