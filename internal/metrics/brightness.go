package metrics

import (
	"image"
	"math"

	"github.com/san-kum/animgen/internal/raster"
)

// Brightness averages the mean pixel brightness over all frames and keeps
// the per-frame series for plotting.
type Brightness struct {
	name   string
	series []float64
	total  float64
}

func NewBrightness() *Brightness {
	return &Brightness{name: "brightness"}
}

func (b *Brightness) Name() string { return b.name }

func (b *Brightness) Observe(i int, frame image.Image) {
	v := raster.Brightness(frame)
	b.series = append(b.series, v)
	b.total += v
}

func (b *Brightness) Value() float64 {
	if len(b.series) == 0 {
		return 0
	}
	return b.total / float64(len(b.series))
}

func (b *Brightness) Series() []float64 { return b.series }

func (b *Brightness) Reset() {
	b.series = b.series[:0]
	b.total = 0
}

// BrightnessDrift is the largest relative change of frame brightness from
// the first frame. A looping animation with a steady light level stays low.
type BrightnessDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewBrightnessDrift() *BrightnessDrift {
	return &BrightnessDrift{name: "brightness_drift"}
}

func (d *BrightnessDrift) Name() string { return d.name }

func (d *BrightnessDrift) Observe(i int, frame image.Image) {
	v := raster.Brightness(frame)
	if d.samples == 0 {
		d.initial = v
	}
	d.samples++

	if d.initial != 0 {
		drift := math.Abs(v-d.initial) / d.initial
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
}

func (d *BrightnessDrift) Value() float64 { return d.maxDrift }

func (d *BrightnessDrift) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}
