package motion

import (
	"image/color"
	"math"

	"github.com/san-kum/animgen/internal/palette"
)

// Vec is a point or offset in scene units.
type Vec struct{ X, Y float64 }

func V(x, y float64) Vec { return Vec{x, y} }

var (
	Up    = V(0, 1)
	Down  = V(0, -1)
	Left  = V(-1, 0)
	Right = V(1, 0)
)

func (v Vec) Add(o Vec) Vec     { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec     { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Mul(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64      { return math.Hypot(v.X, v.Y) }
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Rotate turns v counter-clockwise by angle radians about the origin.
func (v Vec) Rotate(angle float64) Vec {
	s, c := math.Sincos(angle)
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Mobject is anything drawable in a scene. A leaf carries an outline or a
// text string; a group only carries children. Transformations apply to the
// whole family.
type Mobject struct {
	Points []Vec
	Closed bool
	// Anchors move with the points: polygon corners, or the center of a text.
	Anchors []Vec

	Stroke      color.RGBA
	StrokeWidth float64
	Fill        color.RGBA
	FillOpacity float64
	Opacity     float64
	// Progress is the drawn fraction of the outline (or of the text).
	Progress float64

	Text string
	// Size is the text height in scene units.
	Size float64

	Children []*Mobject
}

func (m *Mobject) IsText() bool { return m.Text != "" }

// Family returns m and all its descendants, depth first.
func (m *Mobject) Family() []*Mobject {
	out := []*Mobject{m}
	for _, c := range m.Children {
		out = append(out, c.Family()...)
	}
	return out
}

// Leaves returns the drawable members of the family.
func (m *Mobject) Leaves() []*Mobject {
	var out []*Mobject
	for _, f := range m.Family() {
		if len(f.Points) > 0 || f.IsText() {
			out = append(out, f)
		}
	}
	return out
}

func (m *Mobject) Copy() *Mobject {
	c := *m
	c.Points = append([]Vec(nil), m.Points...)
	c.Anchors = append([]Vec(nil), m.Anchors...)
	c.Children = make([]*Mobject, len(m.Children))
	for i, ch := range m.Children {
		c.Children[i] = ch.Copy()
	}
	return &c
}

// Become replaces m's contents with a copy of o, keeping m's identity.
func (m *Mobject) Become(o *Mobject) {
	*m = *o.Copy()
}

func (m *Mobject) apply(fn func(Vec) Vec) *Mobject {
	for _, f := range m.Family() {
		for i := range f.Points {
			f.Points[i] = fn(f.Points[i])
		}
		for i := range f.Anchors {
			f.Anchors[i] = fn(f.Anchors[i])
		}
	}
	return m
}

func (m *Mobject) Shift(d Vec) *Mobject {
	return m.apply(func(p Vec) Vec { return p.Add(d) })
}

// ScaleAbout scales the family by k about pivot. Text sizes scale too.
func (m *Mobject) ScaleAbout(k float64, pivot Vec) *Mobject {
	for _, f := range m.Family() {
		f.Size *= k
	}
	return m.apply(func(p Vec) Vec { return pivot.Add(p.Sub(pivot).Mul(k)) })
}

func (m *Mobject) Scale(k float64) *Mobject { return m.ScaleAbout(k, m.Center()) }

// RotateAbout turns the family counter-clockwise about pivot.
func (m *Mobject) RotateAbout(angle float64, pivot Vec) *Mobject {
	return m.apply(func(p Vec) Vec { return pivot.Add(p.Sub(pivot).Rotate(angle)) })
}

func (m *Mobject) Rotate(angle float64) *Mobject { return m.RotateAbout(angle, m.Center()) }

func (m *Mobject) MoveTo(p Vec) *Mobject { return m.Shift(p.Sub(m.Center())) }

// SetColor sets stroke and fill of the whole family.
func (m *Mobject) SetColor(c color.RGBA) *Mobject {
	for _, f := range m.Family() {
		f.Stroke, f.Fill = c, c
	}
	return m
}

func (m *Mobject) SetOpacity(o float64) *Mobject {
	for _, f := range m.Family() {
		f.Opacity = o
	}
	return m
}

func (m *Mobject) SetProgress(p float64) *Mobject {
	for _, f := range m.Family() {
		f.Progress = p
	}
	return m
}

// Bounds is the axis-aligned box around every point of the family. Texts
// count with their estimated extent.
func (m *Mobject) Bounds() (lo, hi Vec) {
	lo = V(math.Inf(1), math.Inf(1))
	hi = V(math.Inf(-1), math.Inf(-1))
	grow := func(p Vec) {
		lo = V(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
		hi = V(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
	}
	for _, f := range m.Family() {
		for _, p := range f.Points {
			grow(p)
		}
		if f.IsText() && len(f.Anchors) > 0 {
			half := V(textWidth(f)/2, f.Size/2)
			grow(f.Anchors[0].Sub(half))
			grow(f.Anchors[0].Add(half))
		}
	}
	if math.IsInf(lo.X, 1) {
		return Vec{}, Vec{}
	}
	return lo, hi
}

func (m *Mobject) Center() Vec {
	lo, hi := m.Bounds()
	return lo.Lerp(hi, 0.5)
}

// Bottom is the lowest point of the bounding box, centered horizontally.
func (m *Mobject) Bottom() Vec {
	lo, hi := m.Bounds()
	return V((lo.X+hi.X)/2, lo.Y)
}

// interpolate writes the blend of a and b at t into m. The three families
// must have the same shape.
func interpolate(m, a, b *Mobject, t float64) {
	for i := range m.Points {
		if i < len(a.Points) && i < len(b.Points) {
			m.Points[i] = a.Points[i].Lerp(b.Points[i], t)
		}
	}
	for i := range m.Anchors {
		if i < len(a.Anchors) && i < len(b.Anchors) {
			m.Anchors[i] = a.Anchors[i].Lerp(b.Anchors[i], t)
		}
	}
	m.Stroke = palette.Lerp(a.Stroke, b.Stroke, t)
	m.Fill = palette.Lerp(a.Fill, b.Fill, t)
	m.StrokeWidth = lerp(a.StrokeWidth, b.StrokeWidth, t)
	m.FillOpacity = lerp(a.FillOpacity, b.FillOpacity, t)
	m.Opacity = lerp(a.Opacity, b.Opacity, t)
	m.Progress = lerp(a.Progress, b.Progress, t)
	m.Size = lerp(a.Size, b.Size, t)
	for i := range m.Children {
		if i < len(a.Children) && i < len(b.Children) {
			interpolate(m.Children[i], a.Children[i], b.Children[i], t)
		}
	}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
