package motion

import (
	"image/color"
	"math"

	"github.com/san-kum/animgen/internal/palette"
)

// Scene palette.
var (
	Blue      = palette.MustParse("#58C4DD")
	Red       = palette.MustParse("#FC6255")
	Green     = palette.MustParse("#83C167")
	Yellow    = palette.MustParse("#FFFF00")
	Pink      = palette.MustParse("#D147BD")
	LightPink = palette.MustParse("#DC75CD")
	White     = palette.White
	Black     = palette.Black
)

const (
	circleSamples  = 64
	defaultStroke  = 2
	defaultDotSize = 0.08
)

func leaf(points []Vec, closed bool, c color.RGBA) *Mobject {
	return &Mobject{
		Points:      points,
		Closed:      closed,
		Stroke:      c,
		StrokeWidth: defaultStroke,
		Fill:        c,
		Opacity:     1,
		Progress:    1,
	}
}

func Circle(radius float64, c color.RGBA) *Mobject {
	return leaf(arcPoints(V(0, 0), radius, 0, 2*math.Pi, circleSamples, false), true, c)
}

// Dot is a small filled circle centered at p.
func Dot(p Vec, radius float64, c color.RGBA) *Mobject {
	if radius <= 0 {
		radius = defaultDotSize
	}
	m := Circle(radius, c).Shift(p)
	m.FillOpacity = 1
	m.StrokeWidth = 0
	return m
}

// Arc is an open arc from start sweeping angle radians counter-clockwise.
func Arc(radius, start, angle float64, c color.RGBA) *Mobject {
	n := max(8, int(math.Ceil(math.Abs(angle)/(2*math.Pi)*circleSamples)))
	return leaf(arcPoints(V(0, 0), radius, start, angle, n, true), false, c)
}

func Square(side float64, c color.RGBA) *Mobject {
	h := side / 2
	return Polygon(c, V(h, h), V(-h, h), V(-h, -h), V(h, -h))
}

// Triangle is equilateral, inscribed in the unit circle and pointing up.
func Triangle(c color.RGBA) *Mobject {
	vs := make([]Vec, 3)
	for i := range vs {
		vs[i] = V(0, 1).Rotate(float64(i) * 2 * math.Pi / 3)
	}
	return Polygon(c, vs...)
}

// Polygon samples each side evenly so that morphs between polygons and
// curves stay smooth. The corners are kept as anchors.
func Polygon(c color.RGBA, corners ...Vec) *Mobject {
	perSide := max(2, circleSamples/len(corners))
	var pts []Vec
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		for k := 0; k < perSide; k++ {
			pts = append(pts, a.Lerp(b, float64(k)/float64(perSide)))
		}
	}
	m := leaf(pts, true, c)
	m.Anchors = append([]Vec(nil), corners...)
	return m
}

// Vertices returns the polygon corners in their current position.
func (m *Mobject) Vertices() []Vec {
	return append([]Vec(nil), m.Anchors...)
}

// Text is a single line centered at the origin, size units tall.
func Text(s string, size float64, c color.RGBA) *Mobject {
	return &Mobject{
		Text:     s,
		Size:     size,
		Anchors:  []Vec{{}},
		Stroke:   c,
		Fill:     c,
		Opacity:  1,
		Progress: 1,
	}
}

func Group(children ...*Mobject) *Mobject {
	return &Mobject{Children: children, Opacity: 1, Progress: 1}
}

// ToEdge moves m so that it sits buff units inside the frame edge in
// direction dir.
func (m *Mobject) ToEdge(dir Vec, buff float64) *Mobject {
	lo, hi := m.Bounds()
	var d Vec
	switch {
	case dir.Y > 0:
		d.Y = FrameHeight/2 - buff - hi.Y
	case dir.Y < 0:
		d.Y = -FrameHeight/2 + buff - lo.Y
	case dir.X > 0:
		d.X = FrameWidth/2 - buff - hi.X
	case dir.X < 0:
		d.X = -FrameWidth/2 + buff - lo.X
	}
	return m.Shift(d)
}

func arcPoints(center Vec, r, start, sweep float64, n int, inclusive bool) []Vec {
	div := float64(n)
	if inclusive {
		div = float64(n - 1)
	}
	out := make([]Vec, n)
	for i := range out {
		a := start + sweep*float64(i)/div
		out[i] = center.Add(V(math.Cos(a)*r, math.Sin(a)*r))
	}
	return out
}

// Resample returns n points spaced evenly by arc length along pts. Closed
// outlines include the segment back to the first point.
func Resample(pts []Vec, closed bool, n int) []Vec {
	out := make([]Vec, n)
	if len(pts) == 0 {
		return out
	}
	if len(pts) == 1 {
		for i := range out {
			out[i] = pts[0]
		}
		return out
	}

	path := pts
	if closed {
		path = append(append([]Vec(nil), pts...), pts[0])
	}
	cum := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		cum[i] = cum[i-1] + path[i].Sub(path[i-1]).Len()
	}
	total := cum[len(cum)-1]
	if total == 0 {
		for i := range out {
			out[i] = pts[0]
		}
		return out
	}

	div := float64(n)
	if !closed {
		div = float64(max(n-1, 1))
	}
	seg := 1
	for i := range out {
		d := total * float64(i) / div
		for seg < len(path)-1 && cum[seg] < d {
			seg++
		}
		span := cum[seg] - cum[seg-1]
		t := 0.0
		if span > 0 {
			t = (d - cum[seg-1]) / span
		}
		out[i] = path[seg-1].Lerp(path[seg], math.Min(1, math.Max(0, t)))
	}
	return out
}
