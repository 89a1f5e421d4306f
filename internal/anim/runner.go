package anim

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"
)

type Runner struct {
	logger    *slog.Logger
	metrics   []Metric
	observers []Observer
}

func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		logger:    logger,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run renders every frame of gen in order. On cancellation the frames rendered
// so far are returned together with an error wrapping ErrCanceled.
func (r *Runner) Run(ctx context.Context, gen Generator) (*Result, error) {
	spec := gen.Spec()
	if err := ValidateSpec(spec); err != nil {
		return nil, err
	}

	result := &Result{
		Spec:    spec,
		Frames:  make([]image.Image, 0, spec.Frames),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}
	if rs, ok := gen.(Resetter); ok {
		rs.Reset()
	}

	log := r.logger.With("generator", spec.Name)
	log.Debug("render started", "frames", spec.Frames, "width", spec.Width, "height", spec.Height)
	start := time.Now()

	for i := 0; i < spec.Frames; i++ {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			return result, fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
		default:
		}

		frame, err := gen.Render(i)
		if err != nil {
			return result, &FrameError{Generator: spec.Name, Frame: i, Wrapped: err}
		}
		b := frame.Bounds()
		if b.Dx() != spec.Width || b.Dy() != spec.Height {
			return result, &FrameError{
				Generator: spec.Name,
				Frame:     i,
				Wrapped:   fmt.Errorf("%w: got %dx%d, want %dx%d", ErrSizeMismatch, b.Dx(), b.Dy(), spec.Width, spec.Height),
			}
		}

		for _, m := range r.metrics {
			m.Observe(i, frame)
		}
		for _, obs := range r.observers {
			obs.OnFrame(i, frame)
		}

		result.Frames = append(result.Frames, frame)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Elapsed = time.Since(start)

	log.Info("render finished", "frames", len(result.Frames), "elapsed", result.Elapsed)
	return result, nil
}

func ValidateSpec(spec Spec) error {
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("%w: %s size must be positive, got %dx%d", ErrInvalidSpec, spec.Name, spec.Width, spec.Height)
	}
	if spec.Frames <= 0 {
		return fmt.Errorf("%w: %s frame count must be positive, got %d", ErrInvalidSpec, spec.Name, spec.Frames)
	}
	if spec.Scale < 1 {
		return fmt.Errorf("%w: %s scale must be at least 1, got %d", ErrInvalidSpec, spec.Name, spec.Scale)
	}
	if spec.Delay <= 0 {
		return fmt.Errorf("%w: %s delay must be positive, got %v", ErrInvalidSpec, spec.Name, spec.Delay)
	}
	if spec.File == "" {
		return fmt.Errorf("%w: %s has no output file name", ErrInvalidSpec, spec.Name)
	}
	return nil
}
