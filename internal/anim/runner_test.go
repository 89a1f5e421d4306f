package anim

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
	"testing"
	"time"
)

type testGenerator struct {
	spec    Spec
	resets  int
	renders []int
	failAt  int
}

func (g *testGenerator) Spec() Spec { return g.spec }
func (g *testGenerator) Reset()     { g.resets++ }

func (g *testGenerator) Render(i int) (image.Image, error) {
	if g.failAt >= 0 && i == g.failAt {
		return nil, errors.New("boom")
	}
	g.renders = append(g.renders, i)
	img := image.NewRGBA(image.Rect(0, 0, g.spec.Width, g.spec.Height))
	img.Set(0, 0, color.RGBA{uint8(i), 0, 0, 255})
	return img, nil
}

func newTestGenerator(frames int) *testGenerator {
	return &testGenerator{
		spec: Spec{
			Name:   "test",
			Width:  4,
			Height: 3,
			Frames: frames,
			Scale:  1,
			Delay:  100 * time.Millisecond,
			File:   "test.gif",
		},
		failAt: -1,
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunnerRun(t *testing.T) {
	gen := newTestGenerator(5)
	r := NewRunner(quietLogger())

	result, err := r.Run(context.Background(), gen)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Frames) != 5 {
		t.Errorf("expected 5 frames, got %d", len(result.Frames))
	}
	if gen.resets != 1 {
		t.Errorf("expected 1 reset, got %d", gen.resets)
	}
	for i, got := range gen.renders {
		if got != i {
			t.Errorf("render %d called with frame %d", i, got)
		}
	}
}

func TestRunnerInvalidSpec(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"zero width", func(s *Spec) { s.Width = 0 }},
		{"negative height", func(s *Spec) { s.Height = -1 }},
		{"zero frames", func(s *Spec) { s.Frames = 0 }},
		{"zero scale", func(s *Spec) { s.Scale = 0 }},
		{"zero delay", func(s *Spec) { s.Delay = 0 }},
		{"no file", func(s *Spec) { s.File = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newTestGenerator(3)
			tt.mutate(&gen.spec)
			_, err := NewRunner(quietLogger()).Run(context.Background(), gen)
			if !errors.Is(err, ErrInvalidSpec) {
				t.Errorf("expected ErrInvalidSpec, got %v", err)
			}
		})
	}
}

func TestRunnerFrameError(t *testing.T) {
	gen := newTestGenerator(5)
	gen.failAt = 2

	result, err := NewRunner(quietLogger()).Run(context.Background(), gen)
	var fe *FrameError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FrameError, got %v", err)
	}
	if fe.Frame != 2 {
		t.Errorf("expected failure at frame 2, got %d", fe.Frame)
	}
	if len(result.Frames) != 2 {
		t.Errorf("expected 2 frames before failure, got %d", len(result.Frames))
	}
}

type wrongSize struct{ *testGenerator }

func (w wrongSize) Render(i int) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func TestRunnerSizeMismatch(t *testing.T) {
	gen := wrongSize{newTestGenerator(2)}
	_, err := NewRunner(quietLogger()).Run(context.Background(), gen)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewRunner(quietLogger()).Run(ctx, newTestGenerator(3))
	if !errors.Is(err, ErrCanceled) {
		t.Errorf("expected ErrCanceled, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
	if len(result.Frames) != 0 {
		t.Errorf("expected no frames, got %d", len(result.Frames))
	}
}

type countMetric struct {
	count int
}

func (c *countMetric) Name() string                     { return "count" }
func (c *countMetric) Observe(i int, frame image.Image) { c.count++ }
func (c *countMetric) Value() float64                   { return float64(c.count) }
func (c *countMetric) Reset()                           { c.count = 0 }

func TestRunnerMetricsAndObservers(t *testing.T) {
	r := NewRunner(quietLogger())
	metric := &countMetric{count: 99}
	r.AddMetric(metric)

	var seen []int
	r.AddObserver(ObserverFunc(func(i int, frame image.Image) { seen = append(seen, i) }))

	result, err := r.Run(context.Background(), newTestGenerator(4))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Metrics["count"] != 4 {
		t.Errorf("expected count 4 after reset, got %f", result.Metrics["count"])
	}
	if len(seen) != 4 {
		t.Errorf("expected observer to see 4 frames, got %d", len(seen))
	}
}

func TestSpecOutput(t *testing.T) {
	s := Spec{Width: 64, Height: 32, Scale: 8, Dir: "animal_pixels", File: "pixel_cat.gif"}
	w, h := s.OutputSize()
	if w != 512 || h != 256 {
		t.Errorf("OutputSize() = %dx%d, want 512x256", w, h)
	}
	if got := s.Path("out"); got != "out/animal_pixels/pixel_cat.gif" {
		t.Errorf("Path() = %q", got)
	}
}

func TestFrameError(t *testing.T) {
	err := &FrameError{Generator: "pixel_cat", Frame: 3, Wrapped: ErrSizeMismatch}
	expected := "pixel_cat frame 3: anim: frame size does not match spec"
	if err.Error() != expected {
		t.Errorf("FrameError.Error() = %q, want %q", err.Error(), expected)
	}
}
