package flowfield

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Source maps a grid cell and time to a steering angle in radians.
// Implementations are pure: the same arguments always give the same angle.
type Source interface {
	Angle(row, col int, t float64) float64
}

// Waves is three interfering sine layers.
type Waves struct{}

func (Waves) Angle(row, col int, t float64) float64 {
	r, c := float64(row), float64(col)
	v := math.Sin(c*0.1+t) * math.Cos(r*0.1+t/2)
	v += math.Sin(c*0.3-t) * 0.5
	v += math.Cos(r*0.2+c*0.2) * 0.3
	return v * 2 * math.Pi
}

// Noise samples 3D Perlin noise over (col, row, t).
type Noise struct {
	noise *perlin.Perlin
	// Frequency scales grid coordinates before sampling.
	Frequency float64
}

func NewNoise(seed int64) *Noise {
	return &Noise{
		noise:     perlin.NewPerlin(2, 2, 3, seed),
		Frequency: 0.08,
	}
}

func (n *Noise) Angle(row, col int, t float64) float64 {
	v := n.noise.Noise3D(float64(col)*n.Frequency, float64(row)*n.Frequency, t*0.5)
	return v * 4 * math.Pi
}

// Field is a grid of angles, one per cell of Cell x Cell pixels.
type Field struct {
	Cols, Rows int
	Cell       int
	src        Source
	angles     []float64
}

// NewField covers a width x height canvas with ceil(width/cell) columns and
// ceil(height/cell) rows.
func NewField(width, height, cell int, src Source) *Field {
	if src == nil {
		src = Waves{}
	}
	cols := (width + cell - 1) / cell
	rows := (height + cell - 1) / cell
	return &Field{
		Cols:   cols,
		Rows:   rows,
		Cell:   cell,
		src:    src,
		angles: make([]float64, cols*rows),
	}
}

func (f *Field) Update(t float64) {
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			f.angles[r*f.Cols+c] = f.src.Angle(r, c, t)
		}
	}
}

// At returns the angle of the cell containing (x, y). ok is false when the
// position falls outside the grid.
func (f *Field) At(x, y float64) (angle float64, ok bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	c := int(x) / f.Cell
	r := int(y) / f.Cell
	if c >= f.Cols || r >= f.Rows {
		return 0, false
	}
	return f.angles[r*f.Cols+c], true
}

// Angle returns the stored angle at a grid position.
func (f *Field) Angle(row, col int) float64 {
	return f.angles[row*f.Cols+col]
}
