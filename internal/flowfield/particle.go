package flowfield

import (
	"image/color"
	"math"

	"github.com/san-kum/animgen/internal/palette"
	"github.com/san-kum/animgen/internal/rng"
)

type Particle struct {
	X, Y         float64
	PrevX, PrevY float64
	VX, VY       float64
	Color        color.RGBA
	Age          int
	MaxAge       float64
}

// Opacity fades a particle in and out over its life: sin(age/maxAge * pi).
// It is 0 at birth and at age == maxAge and positive in between.
func Opacity(p Particle) float64 {
	if p.MaxAge <= 0 {
		return 0
	}
	v := math.Sin(float64(p.Age) / p.MaxAge * math.Pi)
	if v < 1e-9 {
		return 0
	}
	return v
}

type Params struct {
	Width, Height int
	Count         int
	Accel         float64
	Friction      float64
	MinLife       float64
	MaxLife       float64
	// Inner is the color at the canvas center, Outer at half the width away
	// and beyond.
	Inner, Outer color.RGBA
}

func DefaultParams() Params {
	return Params{
		Width:    480,
		Height:   270,
		Count:    4000,
		Accel:    0.5,
		Friction: 0.8,
		MinLife:  20,
		MaxLife:  60,
		Inner:    palette.RGB(0, 255, 255),
		Outer:    palette.RGB(150, 0, 200),
	}
}

// StepStats counts what happened to the population in one tick.
type StepStats struct {
	// Steered particles were inside the grid and accelerated.
	Steered   int
	Respawned int
	// Drifting particles were outside the grid and only damped.
	Drifting int
}

type Simulator struct {
	params    Params
	field     *Field
	stream    *rng.Stream
	particles []Particle
}

// NewSimulator spawns params.Count particles from stream.
func NewSimulator(params Params, field *Field, stream *rng.Stream) *Simulator {
	s := &Simulator{
		params:    params,
		field:     field,
		stream:    stream,
		particles: make([]Particle, params.Count),
	}
	for i := range s.particles {
		s.respawn(&s.particles[i])
	}
	return s
}

func (s *Simulator) Particles() []Particle { return s.particles }
func (s *Simulator) Field() *Field         { return s.field }

// Step recomputes the field for time t and advances every particle by one
// tick.
func (s *Simulator) Step(t float64) StepStats {
	s.field.Update(t)

	var stats StepStats
	p := &s.params
	for i := range s.particles {
		pt := &s.particles[i]
		pt.PrevX, pt.PrevY = pt.X, pt.Y

		if angle, ok := s.field.At(pt.X, pt.Y); ok {
			pt.VX += math.Cos(angle) * p.Accel
			pt.VY += math.Sin(angle) * p.Accel
			stats.Steered++
		} else {
			stats.Drifting++
		}

		pt.VX *= p.Friction
		pt.VY *= p.Friction
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Age++

		if !s.InBounds(pt.X, pt.Y) || float64(pt.Age) > pt.MaxAge {
			s.respawn(pt)
			stats.Respawned++
		}
	}
	return stats
}

// InBounds reports whether (x, y) lies in [0, W] x [0, H].
func (s *Simulator) InBounds(x, y float64) bool {
	return x >= 0 && x <= float64(s.params.Width) && y >= 0 && y <= float64(s.params.Height)
}

// ColorAt is the spawn color for a position, by distance from the center.
func (s *Simulator) ColorAt(x, y float64) color.RGBA {
	w, h := float64(s.params.Width), float64(s.params.Height)
	dist := math.Hypot(x-w/2, y-h/2)
	return palette.Lerp(s.params.Inner, s.params.Outer, math.Min(dist/(w/2), 1))
}

// respawn keeps PrevX/PrevY so the caller can still see where the particle
// came from; its opacity is 0 so no segment is drawn for the jump.
func (s *Simulator) respawn(pt *Particle) {
	pt.X = s.stream.Uniform(0, float64(s.params.Width))
	pt.Y = s.stream.Uniform(0, float64(s.params.Height))
	pt.VX, pt.VY = 0, 0
	pt.Color = s.ColorAt(pt.X, pt.Y)
	pt.Age = 0
	pt.MaxAge = s.stream.Uniform(s.params.MinLife, s.params.MaxLife)
}
