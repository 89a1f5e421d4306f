package motion

import (
	"image/color"
	"unicode/utf8"
)

// Animation changes mobjects over a run time. Begin captures the starting
// state when the animation becomes current, Interpolate receives progress
// already passed through Rate, and Finish applies structural changes such
// as removing a faded object from the scene.
type Animation interface {
	Begin(s *Scene)
	Interpolate(alpha float64)
	Finish(s *Scene)
	RunTime() float64
	Rate() RateFunc
}

type timing struct {
	runTime float64
	rate    RateFunc
}

func (t timing) RunTime() float64 { return t.runTime }

func (t timing) Rate() RateFunc {
	if t.rate == nil {
		return Smooth
	}
	return t.rate
}

type timed struct {
	Animation
	timing
}

func (t timed) RunTime() float64 { return t.timing.RunTime() }
func (t timed) Rate() RateFunc {
	if t.rate == nil {
		return t.Animation.Rate()
	}
	return t.rate
}

// Timed overrides the run time of a, and its rate function unless rate is
// nil.
func Timed(a Animation, runTime float64, rate RateFunc) Animation {
	return timed{Animation: a, timing: timing{runTime, rate}}
}

type wait struct{ timing }

func (wait) Begin(*Scene)        {}
func (wait) Interpolate(float64) {}
func (wait) Finish(*Scene)       {}

// Wait holds the current state for the given number of seconds.
func Wait(seconds float64) Animation {
	return wait{timing{seconds, Linear}}
}

type parallel struct {
	anims []Animation
}

// Parallel runs animations together. Each keeps its own run time and rate;
// the group lasts as long as the longest.
func Parallel(anims ...Animation) Animation {
	return &parallel{anims: anims}
}

func (p *parallel) RunTime() float64 {
	longest := 0.0
	for _, a := range p.anims {
		longest = max(longest, a.RunTime())
	}
	return longest
}

func (p *parallel) Rate() RateFunc { return Linear }

func (p *parallel) Begin(s *Scene) {
	for _, a := range p.anims {
		a.Begin(s)
	}
}

func (p *parallel) Interpolate(alpha float64) {
	total := p.RunTime()
	for _, a := range p.anims {
		local := 1.0
		if rt := a.RunTime(); rt > 0 {
			local = clamp01(alpha * total / rt)
		}
		a.Interpolate(a.Rate()(local))
	}
}

func (p *parallel) Finish(s *Scene) {
	for _, a := range p.anims {
		a.Finish(s)
	}
}

type reveal struct {
	timing
	m *Mobject
}

func (r *reveal) Begin(s *Scene) {
	s.Add(r.m)
	r.m.SetProgress(0)
}

func (r *reveal) Interpolate(alpha float64) { r.m.SetProgress(clamp01(alpha)) }
func (r *reveal) Finish(*Scene)             { r.m.SetProgress(1) }

// Create draws the outline of m progressively.
func Create(m *Mobject) Animation {
	return &reveal{timing{1, Smooth}, m}
}

// Write reveals m like Create; long texts take two seconds.
func Write(m *Mobject) Animation {
	rt := 1.0
	for _, f := range m.Family() {
		if utf8.RuneCountInString(f.Text) >= 15 {
			rt = 2
		}
	}
	return &reveal{timing{rt, Linear}, m}
}

type fade struct {
	timing
	m     *Mobject
	out   bool
	saved []float64
}

func (f *fade) Begin(s *Scene) {
	s.Add(f.m)
	fam := f.m.Family()
	f.saved = make([]float64, len(fam))
	for i, o := range fam {
		f.saved[i] = o.Opacity
	}
}

func (f *fade) Interpolate(alpha float64) {
	k := alpha
	if f.out {
		k = 1 - alpha
	}
	for i, o := range f.m.Family() {
		if i < len(f.saved) {
			o.Opacity = f.saved[i] * k
		}
	}
}

func (f *fade) Finish(s *Scene) {
	if !f.out {
		return
	}
	s.Remove(f.m)
	for i, o := range f.m.Family() {
		if i < len(f.saved) {
			o.Opacity = f.saved[i]
		}
	}
}

func FadeIn(m *Mobject) Animation  { return &fade{timing: timing{1, Smooth}, m: m} }
func FadeOut(m *Mobject) Animation { return &fade{timing: timing{1, Smooth}, m: m, out: true} }

type morph struct {
	timing
	m          *Mobject
	change     func(*Mobject)
	start, end *Mobject
}

func (a *morph) Begin(s *Scene) {
	s.Add(a.m)
	a.start = a.m.Copy()
	a.end = a.m.Copy()
	a.change(a.end)
}

func (a *morph) Interpolate(alpha float64) { interpolate(a.m, a.start, a.end, alpha) }
func (a *morph) Finish(*Scene)             {}

// Animate moves m from its current state to the state produced by change.
// change must not add or remove points or children.
func Animate(m *Mobject, change func(*Mobject)) Animation {
	return &morph{timing: timing{1, Smooth}, m: m, change: change}
}

func Shift(m *Mobject, d Vec) Animation {
	return Animate(m, func(e *Mobject) { e.Shift(d) })
}

// ScaleTo scales m by k about its center.
func ScaleTo(m *Mobject, k float64) Animation {
	return Animate(m, func(e *Mobject) { e.Scale(k) })
}

// Recolor changes stroke and fill of the whole family to c.
func Recolor(m *Mobject, c color.RGBA) Animation {
	return Animate(m, func(e *Mobject) { e.SetColor(c) })
}

// RotateAnimation is a rotation with optional pivot and simultaneous scaling.
type RotateAnimation struct {
	timing
	m      *Mobject
	angle  float64
	scale  float64
	about  func(*Mobject) Vec
	start  *Mobject
	pivot  Vec
	center Vec
}

// Rotate turns m by angle radians about its center, following the arc
// rather than interpolating end points.
func Rotate(m *Mobject, angle float64) *RotateAnimation {
	return &RotateAnimation{timing: timing{1, Smooth}, m: m, angle: angle, scale: 1}
}

// About picks the pivot when the animation begins.
func (r *RotateAnimation) About(pivot func(*Mobject) Vec) *RotateAnimation {
	r.about = pivot
	return r
}

// Scaling also scales m by k about its starting center.
func (r *RotateAnimation) Scaling(k float64) *RotateAnimation {
	r.scale = k
	return r
}

func (r *RotateAnimation) Begin(s *Scene) {
	s.Add(r.m)
	r.start = r.m.Copy()
	r.center = r.start.Center()
	r.pivot = r.center
	if r.about != nil {
		r.pivot = r.about(r.m)
	}
}

func (r *RotateAnimation) Interpolate(alpha float64) {
	tmp := r.start.Copy()
	tmp.ScaleAbout(lerp(1, r.scale, alpha), r.center)
	tmp.RotateAbout(r.angle*alpha, r.pivot)
	interpolate(r.m, tmp, tmp, 0)
}

func (r *RotateAnimation) Finish(*Scene) {}

// Bottom and Center are pivots for RotateAnimation.About.
func Bottom(m *Mobject) Vec { return m.Bottom() }
func Center(m *Mobject) Vec { return m.Center() }

type transform struct {
	timing
	src, dst *Mobject
	replace  bool
	shown    *Mobject
	from, to *Mobject
}

// Transform morphs src into the shape and style of dst. src stays in the
// scene and takes dst's contents.
func Transform(src, dst *Mobject) Animation {
	return &transform{timing: timing{1, Smooth}, src: src, dst: dst}
}

// ReplacementTransform morphs src into dst and leaves dst in the scene in
// place of src.
func ReplacementTransform(src, dst *Mobject) Animation {
	return &transform{timing: timing{1, Smooth}, src: src, dst: dst, replace: true}
}

func (t *transform) Begin(s *Scene) {
	t.from, t.to = align(t.src, t.dst)
	t.shown = t.from.Copy()
	if !s.Replace(t.src, t.shown) {
		s.Add(t.shown)
	}
}

func (t *transform) Interpolate(alpha float64) {
	interpolate(t.shown, t.from, t.to, alpha)
}

func (t *transform) Finish(s *Scene) {
	if t.replace {
		s.Replace(t.shown, t.dst)
		return
	}
	t.src.Become(t.dst)
	s.Replace(t.shown, t.src)
}

// align flattens both families to the same number of leaves and every leaf
// pair to the same number of points, so the morph can interpolate pointwise.
func align(a, b *Mobject) (*Mobject, *Mobject) {
	al, bl := a.Leaves(), b.Leaves()
	n := max(len(al), len(bl), 1)
	from := Group()
	to := Group()
	for i := 0; i < n; i++ {
		x := pick(al, i, a)
		y := pick(bl, i, b)
		k := max(len(x.Points), len(y.Points), circleSamples)
		x.Points = resampleLeaf(x, k)
		y.Points = resampleLeaf(y, k)
		from.Children = append(from.Children, x)
		to.Children = append(to.Children, y)
	}
	return from, to
}

func pick(leaves []*Mobject, i int, whole *Mobject) *Mobject {
	if len(leaves) == 0 {
		c := whole.Copy()
		c.Children = nil
		return c
	}
	c := leaves[i%len(leaves)].Copy()
	c.Children = nil
	return c
}

func resampleLeaf(m *Mobject, k int) []Vec {
	if len(m.Points) == 0 {
		return Resample([]Vec{m.Center()}, false, k)
	}
	return Resample(m.Points, m.Closed, k)
}
