package motion

import (
	"github.com/san-kum/animgen/internal/palette"
	"github.com/san-kum/animgen/internal/raster"
)

const (
	FrameHeight = 8.0
	FrameWidth  = FrameHeight * 16 / 9
)

// Camera maps scene units to canvas pixels.
type Camera struct {
	Width, Height int
}

func (c Camera) PixelsPerUnit() float64 { return float64(c.Height) / FrameHeight }

func (c Camera) ToPixel(v Vec) raster.Point {
	ppu := c.PixelsPerUnit()
	return raster.Pt(float64(c.Width)/2+v.X*ppu, float64(c.Height)/2-v.Y*ppu)
}

// Draw renders the display list in order.
func Draw(c *raster.Canvas, cam Camera, objects []*Mobject) {
	for _, o := range objects {
		for _, l := range o.Leaves() {
			if l.IsText() {
				drawText(c, cam, l)
				continue
			}
			drawShape(c, cam, l)
		}
	}
}

func drawShape(c *raster.Canvas, cam Camera, m *Mobject) {
	if m.Opacity <= 0 {
		return
	}
	outline := partial(m.Points, m.Closed, m.Progress)
	if len(outline) < 2 {
		return
	}
	px := make([]raster.Point, len(outline))
	for i, p := range outline {
		px[i] = cam.ToPixel(p)
	}

	if fo := m.FillOpacity * m.Opacity; fo > 0 && len(px) >= 3 {
		c.Polygon(px, palette.WithAlpha(m.Fill, fo))
	}
	if m.StrokeWidth > 0 {
		c.Polyline(px, palette.WithAlpha(m.Stroke, m.Opacity), m.StrokeWidth)
	}
}

// partial returns the first fraction p of the outline by length. A closed
// outline drawn completely ends back at its first point.
func partial(pts []Vec, closed bool, p float64) []Vec {
	if len(pts) == 0 || p <= 0 {
		return nil
	}
	path := pts
	if closed {
		path = append(append([]Vec(nil), pts...), pts[0])
	}
	if p >= 1 {
		return path
	}

	total := 0.0
	for i := 1; i < len(path); i++ {
		total += path[i].Sub(path[i-1]).Len()
	}
	target := total * p
	out := []Vec{path[0]}
	walked := 0.0
	for i := 1; i < len(path); i++ {
		seg := path[i].Sub(path[i-1]).Len()
		if walked+seg >= target {
			if seg > 0 {
				out = append(out, path[i-1].Lerp(path[i], (target-walked)/seg))
			}
			break
		}
		walked += seg
		out = append(out, path[i])
	}
	return out
}
