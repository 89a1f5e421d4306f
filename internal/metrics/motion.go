package metrics

import (
	"image"

	"github.com/san-kum/animgen/internal/raster"
)

// Motion is the mean fraction of pixels that change between consecutive
// frames.
type Motion struct {
	name    string
	prev    image.Image
	series  []float64
	sum     float64
	samples int
}

func NewMotion() *Motion {
	return &Motion{name: "motion"}
}

func (m *Motion) Name() string { return m.name }

func (m *Motion) Observe(i int, frame image.Image) {
	if m.prev != nil {
		b := frame.Bounds()
		frac := float64(raster.ChangedPixels(m.prev, frame)) / float64(b.Dx()*b.Dy())
		m.series = append(m.series, frac)
		m.sum += frac
		m.samples++
	}
	m.prev = frame
}

func (m *Motion) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

// Series holds one value per frame after the first.
func (m *Motion) Series() []float64 { return m.series }

func (m *Motion) Reset() {
	m.prev = nil
	m.series = m.series[:0]
	m.sum = 0
	m.samples = 0
}
