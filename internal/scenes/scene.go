// Package scenes holds the stateless frame renderers: pixel-art animals,
// the cartoon character, fantasy vignettes and the lo-fi landscape.
//
// Every frame starts from a fresh canvas and is a pure function of the frame
// index; randomness comes from streams reseeded inside the frame.
package scenes

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/raster"
)

// DrawFunc draws frame f onto a canvas already filled with the background.
type DrawFunc func(c *raster.Canvas, f int)

// Scene adapts a DrawFunc to anim.Generator.
type Scene struct {
	spec    anim.Spec
	bg      color.RGBA
	draw    DrawFunc
	aliased bool
}

func New(spec anim.Spec, bg color.RGBA, draw DrawFunc) *Scene {
	return &Scene{spec: spec, bg: bg, draw: draw}
}

// NewPixelArt is New with hard-edged shapes: frames contain only the
// colors the scene draws with.
func NewPixelArt(spec anim.Spec, bg color.RGBA, draw DrawFunc) *Scene {
	return &Scene{spec: spec, bg: bg, draw: draw, aliased: true}
}

func (s *Scene) Spec() anim.Spec { return s.spec }

func (s *Scene) Render(i int) (image.Image, error) {
	if i < 0 || i >= s.spec.Frames {
		return nil, fmt.Errorf("scenes: %s has %d frames, got index %d", s.spec.Name, s.spec.Frames, i)
	}
	newCanvas := raster.New
	if s.aliased {
		newCanvas = raster.NewAliased
	}
	c := newCanvas(s.spec.Width, s.spec.Height, s.bg)
	s.draw(c, i)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// phase is the fraction of a full cycle at frame f, in radians.
func phase(f, frames int) float64 {
	return float64(f) / float64(frames) * 2 * math.Pi
}

func pts(xy ...float64) []raster.Point {
	out := make([]raster.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, raster.Pt(xy[i], xy[i+1]))
	}
	return out
}
