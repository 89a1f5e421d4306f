package metrics

import "image"

// RespawnSource reports how many particles respawned while frame i was
// rendered.
type RespawnSource interface {
	Respawns(i int) int
}

// Respawns is the mean number of particle respawns per frame.
type Respawns struct {
	name    string
	src     RespawnSource
	series  []float64
	total   int
	samples int
}

func NewRespawns(src RespawnSource) *Respawns {
	return &Respawns{name: "respawns", src: src}
}

func (r *Respawns) Name() string { return r.name }

func (r *Respawns) Observe(i int, _ image.Image) {
	n := r.src.Respawns(i)
	r.series = append(r.series, float64(n))
	r.total += n
	r.samples++
}

func (r *Respawns) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return float64(r.total) / float64(r.samples)
}

func (r *Respawns) Series() []float64 { return r.series }

func (r *Respawns) Reset() {
	r.series = r.series[:0]
	r.total = 0
	r.samples = 0
}
