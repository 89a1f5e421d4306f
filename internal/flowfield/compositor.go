package flowfield

import (
	"image"
	"image/color"

	"github.com/san-kum/animgen/internal/palette"
	"github.com/san-kum/animgen/internal/raster"
)

// Compositor owns the persistent trail canvas.
type Compositor struct {
	canvas *raster.Canvas
	bg     color.RGBA
	decay  float64
}

func NewCompositor(width, height int, bg color.RGBA, decay float64) *Compositor {
	return &Compositor{
		canvas: raster.New(width, height, bg),
		bg:     bg,
		decay:  decay,
	}
}

// Clear restores the initial background.
func (c *Compositor) Clear() {
	c.canvas.Fill(c.bg)
}

// Fade multiplies the trail canvas by the decay factor.
func (c *Compositor) Fade() {
	raster.Decay(c.canvas.Pixmap(), c.decay)
}

// Draw strokes each visible particle's segment from its previous position,
// with alpha equal to its opacity. It returns the number of segments drawn.
func (c *Compositor) Draw(particles []Particle) int {
	drawn := 0
	for _, p := range particles {
		a := Opacity(p)
		if a <= 0 {
			continue
		}
		c.canvas.Line(p.PrevX, p.PrevY, p.X, p.Y, palette.WithAlpha(p.Color, a), 1)
		drawn++
	}
	return drawn
}

// Snapshot copies the current canvas. The live buffer is never handed out.
func (c *Compositor) Snapshot() *image.RGBA {
	return c.canvas.Image()
}

func (c *Compositor) Err() error { return c.canvas.Err() }
