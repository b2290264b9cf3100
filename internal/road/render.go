package road

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-road/internal/config"
	"github.com/vovakirdan/tui-road/internal/core"
)

// Palette holds the fill colors used by the renderer.
type Palette struct {
	Background core.Color
	Road       core.Color
	BandDark   core.Color // Even bands
	BandLight  core.Color // Odd bands
	Car        core.Color
}

// Renderer draws a Game. Band is the size of one lane-divider stripe.
type Renderer struct {
	Band    core.Size
	Palette Palette
}

// DefaultRenderer returns a renderer with the reference band size and colors.
func DefaultRenderer() Renderer {
	return Renderer{
		Band: core.Size{Width: 5, Height: 30},
		Palette: Palette{
			Background: core.MustColor("#EEE"),
			Road:       core.MustColor("#CCC"),
			BandDark:   core.MustColor("#444"),
			BandLight:  core.MustColor("#FFF"),
			Car:        core.MustColor("#36A"),
		},
	}
}

// NewRenderer builds a renderer from configuration. The configuration must
// pass Validate, which also bounds the band count per frame.
func NewRenderer(cfg config.RoadConfig) (Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return Renderer{}, fmt.Errorf("road: renderer: %w", err)
	}

	r := Renderer{Band: cfg.Bands.Size()}
	colors := []struct {
		src string
		dst *core.Color
	}{
		{cfg.Colors.Background, &r.Palette.Background},
		{cfg.Colors.Road, &r.Palette.Road},
		{cfg.Colors.BandDark, &r.Palette.BandDark},
		{cfg.Colors.BandLight, &r.Palette.BandLight},
		{cfg.Colors.Car, &r.Palette.Car},
	}

	for _, c := range colors {
		parsed, err := core.ParseColor(c.src)
		if err != nil {
			return Renderer{}, fmt.Errorf("road: renderer palette: %w", err)
		}
		*c.dst = parsed
	}
	return r, nil
}

// Render draws g onto dst: background, road bed, scrolling bands, car.
// The car is drawn last so it is always on top.
func (r Renderer) Render(dst core.Surface, g Game) {
	field := g.Field.Size

	// Background
	dst.SetFill(r.Palette.Background)
	dst.FillRect(0, 0, field.Width, field.Height)

	// Road bed
	roadX := g.RoadX()
	dst.SetFill(r.Palette.Road)
	dst.FillRect(roadX, 0, g.Road.Width, field.Height)

	// Bands, one past the visible height so the wrap never shows a gap
	offsetY := core.Wrap(g.Road.Y, 2*r.Band.Height)
	count := int(math.Ceil(field.Height / r.Band.Height))
	for index := 0; index <= count; index++ {
		posY := float64(index)*r.Band.Height - offsetY
		if index%2 == 0 {
			dst.SetFill(r.Palette.BandDark)
		} else {
			dst.SetFill(r.Palette.BandLight)
		}
		dst.FillRect(roadX, posY, r.Band.Width, r.Band.Height)
		dst.FillRect(roadX+g.Road.Width, posY, r.Band.Width, r.Band.Height)
	}

	// Car
	car := core.Centered(g.Car.Pos, g.Car.Size)
	dst.SetFill(r.Palette.Car)
	dst.FillRect(car.X, car.Y, car.W, car.H)
}

// Render draws g with the default renderer.
func Render(dst core.Surface, g Game) {
	DefaultRenderer().Render(dst, g)
}
