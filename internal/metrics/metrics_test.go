package metrics

import (
	"context"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/flowfield"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestBrightness(t *testing.T) {
	m := NewBrightness()
	m.Observe(0, solid(4, 4, color.RGBA{30, 60, 90, 255}))
	m.Observe(1, solid(4, 4, color.RGBA{0, 0, 0, 255}))

	if math.Abs(m.Value()-30) > 1e-9 {
		t.Errorf("expected mean brightness 30, got %f", m.Value())
	}
	if len(m.Series()) != 2 || m.Series()[0] != 60 {
		t.Errorf("unexpected series %v", m.Series())
	}

	m.Reset()
	if m.Value() != 0 || len(m.Series()) != 0 {
		t.Error("expected empty metric after reset")
	}
}

func TestBrightnessDrift(t *testing.T) {
	d := NewBrightnessDrift()
	d.Observe(0, solid(2, 2, color.RGBA{100, 100, 100, 255}))
	d.Observe(1, solid(2, 2, color.RGBA{150, 150, 150, 255}))
	d.Observe(2, solid(2, 2, color.RGBA{90, 90, 90, 255}))

	if math.Abs(d.Value()-0.5) > 1e-9 {
		t.Errorf("expected drift 0.5, got %f", d.Value())
	}
}

func TestMotion(t *testing.T) {
	m := NewMotion()
	a := solid(2, 2, color.RGBA{0, 0, 0, 255})
	b := solid(2, 2, color.RGBA{0, 0, 0, 255})
	b.Set(0, 0, color.RGBA{255, 0, 0, 255})

	m.Observe(0, a)
	if m.Value() != 0 {
		t.Error("a single frame has no motion")
	}
	m.Observe(1, b)
	m.Observe(2, b)

	if math.Abs(m.Value()-0.125) > 1e-9 {
		t.Errorf("expected motion 0.125, got %f", m.Value())
	}
}

func TestColorBudget(t *testing.T) {
	c := NewColorBudget(2)
	c.Observe(0, solid(2, 2, color.RGBA{1, 2, 3, 255}))

	busy := solid(2, 2, color.RGBA{0, 0, 0, 255})
	busy.Set(0, 0, color.RGBA{255, 0, 0, 255})
	busy.Set(1, 0, color.RGBA{0, 255, 0, 255})
	c.Observe(1, busy)

	if c.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", c.Value())
	}
	c.Reset()
	if c.Value() != 1 {
		t.Error("expected 1 with no samples")
	}
}

func TestRespawnsWithFlowField(t *testing.T) {
	cfg := flowfield.DefaultConfig()
	cfg.Width, cfg.Height = 64, 36
	cfg.Particles = 200
	cfg.Frames = 30

	g, err := flowfield.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRespawns(g)

	runner := anim.NewRunner(nil)
	runner.AddMetric(r)
	res, err := runner.Run(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}

	want := 0
	for _, s := range g.History() {
		want += s.Respawned
	}
	if want == 0 {
		t.Fatal("expected some particles to expire within 30 frames")
	}
	if got := res.Metrics["respawns"]; math.Abs(got-float64(want)/30) > 1e-9 {
		t.Errorf("respawns = %f, want %f", got, float64(want)/30)
	}
	if len(r.Series()) != 30 {
		t.Errorf("series length %d, want 30", len(r.Series()))
	}
}

func TestDefaultNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Default() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric %s", m.Name())
		}
		seen[m.Name()] = true
	}
}
