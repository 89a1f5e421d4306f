package flowfield

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/palette"
	"github.com/san-kum/animgen/internal/rng"
)

var ErrOutOfOrder = errors.New("flowfield: frames must be rendered in order")

const (
	SourceWaves = "waves"
	SourceNoise = "noise"
)

type Config struct {
	Width     int
	Height    int
	Frames    int
	Particles int
	CellSize  int
	Decay     float64
	Delay     time.Duration
	Source    string
	Seed      uint64
}

func DefaultConfig() Config {
	return Config{
		Width:     480,
		Height:    270,
		Frames:    60,
		Particles: 4000,
		CellSize:  10,
		Decay:     0.9,
		Delay:     60 * time.Millisecond,
		Source:    SourceWaves,
		Seed:      1,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: flow size %dx%d", anim.ErrInvalidSpec, c.Width, c.Height)
	case c.Particles <= 0:
		return fmt.Errorf("%w: flow particles must be positive, got %d", anim.ErrInvalidSpec, c.Particles)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: flow cell size must be positive, got %d", anim.ErrInvalidSpec, c.CellSize)
	case c.Decay < 0 || c.Decay > 1:
		return fmt.Errorf("%w: flow decay must be in [0, 1], got %g", anim.ErrInvalidSpec, c.Decay)
	}
	if _, err := c.source(); err != nil {
		return err
	}
	return nil
}

func (c Config) source() (Source, error) {
	switch strings.ToLower(c.Source) {
	case SourceWaves, "":
		return Waves{}, nil
	case SourceNoise, "perlin":
		return NewNoise(int64(c.Seed)), nil
	}
	return nil, fmt.Errorf("%w: unknown flow source %q", anim.ErrInvalidSpec, c.Source)
}

var background = palette.RGB(5, 5, 10)

// Generator is the nebula animation.
type Generator struct {
	cfg     Config
	stream  *rng.Stream
	sim     *Simulator
	comp    *Compositor
	next    int
	history []StepStats
}

func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, stream: rng.New(cfg.Seed)}
	g.Reset()
	return g, nil
}

func (g *Generator) Spec() anim.Spec {
	return anim.Spec{
		Name:   "nebula_flow",
		Width:  g.cfg.Width,
		Height: g.cfg.Height,
		Frames: g.cfg.Frames,
		Scale:  1,
		Delay:  g.cfg.Delay,
		Dir:    "artistic_gen",
		File:   "nebula_flow.gif",
	}
}

// Reset reseeds the stream and rebuilds the population and canvas, so a
// fresh run reproduces the same frames.
func (g *Generator) Reset() {
	g.stream.Seed(g.cfg.Seed)
	src, _ := g.cfg.source()

	params := DefaultParams()
	params.Width, params.Height = g.cfg.Width, g.cfg.Height
	params.Count = g.cfg.Particles

	field := NewField(g.cfg.Width, g.cfg.Height, g.cfg.CellSize, src)
	g.sim = NewSimulator(params, field, g.stream)
	g.comp = NewCompositor(g.cfg.Width, g.cfg.Height, background, g.cfg.Decay)
	g.next = 0
	g.history = g.history[:0]
}

func (g *Generator) Render(i int) (image.Image, error) {
	if i != g.next {
		return nil, fmt.Errorf("%w: want frame %d, got %d", ErrOutOfOrder, g.next, i)
	}
	g.comp.Fade()
	stats := g.sim.Step(float64(i) * 0.1)
	g.comp.Draw(g.sim.Particles())
	if err := g.comp.Err(); err != nil {
		return nil, err
	}
	g.history = append(g.history, stats)
	g.next++
	return g.comp.Snapshot(), nil
}

// Simulator exposes the live particle state.
func (g *Generator) Simulator() *Simulator { return g.sim }

// History returns the step statistics of every frame rendered since Reset.
func (g *Generator) History() []StepStats { return g.history }

// Respawns is the number of respawns during frame i, for metrics.
func (g *Generator) Respawns(i int) int {
	if i < 0 || i >= len(g.history) {
		return 0
	}
	return g.history[i].Respawned
}
