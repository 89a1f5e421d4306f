package raster

import (
	"image/color"
	"math"
	"slices"
)

// NewAliased returns a canvas whose shape operations cover whole pixels
// only, so a frame holds nothing but the colors it was drawn with.
func NewAliased(w, h int, bg color.Color) *Canvas {
	c := New(w, h, bg)
	c.aliased = true
	return c
}

// Aliased reports whether shapes are drawn without edge blending.
func (c *Canvas) Aliased() bool { return c.aliased }

func (c *Canvas) hardRect(x0, y0, x1, y1 float64, col color.Color) {
	ix0, ix1 := pix(x0), pix(x1)
	for y := pix(y0); y <= pix(y1); y++ {
		c.span(y, ix0, ix1, col)
	}
}

// hardEllipse fills pixels whose centers fall inside the ellipse inscribed
// in the box, shrunk by inset. A positive ring width leaves the inner part
// of the ellipse untouched.
func (c *Canvas) hardEllipse(x0, y0, x1, y1, inset, ring float64, col color.Color) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	cx, cy := (x0+x1+1)/2, (y0+y1+1)/2
	rx := math.Max((x1-x0+1)/2-inset, 0.5)
	ry := math.Max((y1-y0+1)/2-inset, 0.5)
	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		xs, xe, ok := ellipseSpan(cx, cy, rx, ry, y)
		if !ok {
			continue
		}
		if ring <= 0 {
			c.span(y, xs, xe, col)
			continue
		}
		is, ie, hole := ellipseSpan(cx, cy, rx-ring, ry-ring, y)
		if !hole {
			c.span(y, xs, xe, col)
			continue
		}
		c.span(y, xs, is-1, col)
		c.span(y, ie+1, xe, col)
	}
}

// ellipseSpan is the run of pixels on row y whose centers lie inside the
// ellipse.
func ellipseSpan(cx, cy, rx, ry float64, y int) (int, int, bool) {
	if rx <= 0 || ry <= 0 {
		return 0, 0, false
	}
	dy := (float64(y) + 0.5 - cy) / ry
	if dy*dy > 1 {
		return 0, 0, false
	}
	half := rx * math.Sqrt(1-dy*dy)
	xs := int(math.Ceil(cx - half - 0.5))
	xe := int(math.Floor(cx + half - 0.5))
	return xs, xe, xs <= xe
}

// hardPolygon fills the polygon with an even-odd scanline at pixel centers.
// Vertices are in continuous coordinates. Spans are half-open so adjacent
// polygons do not overlap.
func (c *Canvas) hardPolygon(poly []Point, col color.Color) {
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	var xs []float64
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		py := float64(y) + 0.5
		xs = xs[:0]
		for i, a := range poly {
			b := poly[(i+1)%len(poly)]
			if (a.Y <= py && b.Y > py) || (b.Y <= py && a.Y > py) {
				xs = append(xs, a.X+(py-a.Y)/(b.Y-a.Y)*(b.X-a.X))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			c.span(y, int(math.Ceil(xs[i]-0.5)), int(math.Ceil(xs[i+1]-0.5))-1, col)
		}
	}
}

// hardPolyline draws connected segments between pixel centers. Thick
// segments are filled as butt-ended quads around the center line.
func (c *Canvas) hardPolyline(pts []Point, col color.Color, width float64) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if width > 1 {
			dx, dy := b.X-a.X, b.Y-a.Y
			if l := math.Hypot(dx, dy); l > 0 {
				nx, ny := -dy/l*width/2, dx/l*width/2
				c.hardPolygon([]Point{
					{a.X + 0.5 + nx, a.Y + 0.5 + ny},
					{b.X + 0.5 + nx, b.Y + 0.5 + ny},
					{b.X + 0.5 - nx, b.Y + 0.5 - ny},
					{a.X + 0.5 - nx, a.Y + 0.5 - ny},
				}, col)
			}
		}
		c.bresenham(pix(a.X), pix(a.Y), pix(b.X), pix(b.Y), col)
	}
}

func (c *Canvas) bresenham(x0, y0, x1, y1 int, col color.Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}
	e := dx + dy
	for {
		c.span(y0, x0, x0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		if e2 := 2 * e; e2 >= dy {
			e += dy
			x0 += sx
		} else {
			e += dx
			y0 += sy
		}
	}
}

// span fills [x0, x1] on row y, compositing translucent colors over the
// existing pixels.
func (c *Canvas) span(y, x0, x1 int, col color.Color) {
	r, g, b, a := rgba8(col)
	if a == 0xff {
		c.Row(y, x0, x1, col)
		return
	}
	if y < 0 || y >= c.Height() || a == 0 {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, c.Width()-1)
	k := uint32(0xff - a)
	data := c.pm.Data()
	for x := x0; x <= x1; x++ {
		i := (y*c.Width() + x) * 4
		data[i] = r + uint8(uint32(data[i])*k/0xff)
		data[i+1] = g + uint8(uint32(data[i+1])*k/0xff)
		data[i+2] = b + uint8(uint32(data[i+2])*k/0xff)
		data[i+3] = a + uint8(uint32(data[i+3])*k/0xff)
	}
}

// pix is the pixel holding coordinate v.
func pix(v float64) int { return int(math.Floor(v + 0.5)) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
