package metrics

import (
	"image"

	"github.com/san-kum/animgen/internal/raster"
)

// ColorBudget is the share of frames that fit in limit colors. GIF frames
// inside the budget are stored without dithering.
type ColorBudget struct {
	name       string
	limit      int
	violations int
	samples    int
}

func NewColorBudget(limit int) *ColorBudget {
	return &ColorBudget{
		name:  "color_budget",
		limit: limit,
	}
}

func (c *ColorBudget) Name() string {
	return c.name
}

func (c *ColorBudget) Observe(i int, frame image.Image) {
	c.samples++
	if raster.CountColors(frame, c.limit) > c.limit {
		c.violations++
	}
}

func (c *ColorBudget) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *ColorBudget) Reset() {
	c.violations = 0
	c.samples = 0
}
