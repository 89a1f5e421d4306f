package anim

import (
	"image"
	"path/filepath"
	"time"
)

// Spec describes the fixed shape of a generator's output.
type Spec struct {
	Name   string
	Width  int
	Height int
	Frames int
	// Scale is the nearest-neighbor upscale factor applied at export.
	Scale int
	Delay time.Duration
	// Dir is relative to the output root; empty means the root itself.
	Dir  string
	File string
}

// Path returns the output location relative to root.
func (s Spec) Path(root string) string {
	return filepath.Join(root, s.Dir, s.File)
}

// OutputSize is the exported frame size after upscaling.
func (s Spec) OutputSize() (int, int) {
	scale := s.Scale
	if scale < 1 {
		scale = 1
	}
	return s.Width * scale, s.Height * scale
}

type Generator interface {
	Spec() Spec
	Render(i int) (image.Image, error)
}

// Resetter is implemented by generators whose frames depend on earlier frames.
// Runner calls Reset before rendering frame 0.
type Resetter interface {
	Reset()
}

type Metric interface {
	Name() string
	Observe(i int, frame image.Image)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(i int, frame image.Image)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(i int, frame image.Image)

func (f ObserverFunc) OnFrame(i int, frame image.Image) { f(i, frame) }

type Result struct {
	Spec    Spec
	Frames  []image.Image
	Metrics map[string]float64
	Elapsed time.Duration
}
