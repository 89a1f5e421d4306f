package scenes

import (
	"math"
	"time"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/palette"
	"github.com/san-kum/animgen/internal/raster"
	"github.com/san-kum/animgen/internal/rng"
)

const (
	lofiWidth    = 320
	lofiHeight   = 180
	lofiFrames   = 30
	starSeed     = 42
	starCount    = 50
	mountainSeed = 1
	waterHeight  = 40
	glimmerTries = 100
	sunRadius    = 30
)

var (
	sunset = palette.Gradient{
		palette.RGB(20, 10, 40),
		palette.RGB(60, 20, 60),
		palette.RGB(200, 80, 80),
		palette.RGB(250, 150, 50),
	}
	starColor    = palette.RGB(255, 255, 200)
	sunColor     = palette.RGB(255, 200, 50)
	silhouette   = palette.RGB(10, 5, 20)
	water        = palette.RGB(20, 10, 40)
	glimmerColor = palette.RGB(100, 80, 150)
)

// LofiLandscape is a retro sunset over a mountain lake.
func LofiLandscape() *Scene {
	spec := anim.Spec{
		Name:   "lofi_landscape",
		Width:  lofiWidth,
		Height: lofiHeight,
		Frames: lofiFrames,
		Scale:  2,
		Delay:  100 * time.Millisecond,
		File:   "lofi_pixel_art.gif",
	}
	skyline := Skyline(lofiWidth, lofiHeight, mountainSeed)

	return NewPixelArt(spec, sunset[0], func(c *raster.Canvas, f int) {
		t := phase(f, lofiFrames)

		drawSunsetSky(c, t)
		drawStars(c)
		drawSun(c, t)

		mountains := make([]raster.Point, 0, len(skyline)+2)
		mountains = append(mountains, raster.Pt(0, lofiHeight))
		for x, y := range skyline {
			mountains = append(mountains, raster.Pt(float64(x), float64(y)))
		}
		mountains = append(mountains, raster.Pt(lofiWidth, lofiHeight))
		c.Polygon(mountains, silhouette)

		c.Rect(0, lofiHeight-waterHeight, lofiWidth, lofiHeight, water)

		s := rng.New(uint64(f))
		for i := 0; i < glimmerTries; i++ {
			x := s.IntRange(0, lofiWidth-1)
			y := s.IntRange(lofiHeight-waterHeight, lofiHeight-1)
			if s.Float64() > 0.8 {
				c.Point(float64(x), float64(y), glimmerColor)
			}
		}
	})
}

// drawSunsetSky shifts each row's gradient position by a slow sine to give a
// heat-haze shimmer.
func drawSunsetSky(c *raster.Canvas, t float64) {
	h := float64(c.Height())
	for y := 0; y < c.Height(); y++ {
		norm := float64(y) / h
		shift := math.Sin(norm*5+t) * 0.05
		c.Row(y, 0, c.Width()-1, sunset.At(norm+shift))
	}
}

func drawStars(c *raster.Canvas) {
	s := rng.New(starSeed)
	for i := 0; i < starCount; i++ {
		x := s.IntRange(0, c.Width()-1)
		y := s.IntRange(0, c.Height()/2)
		if s.Float64() > 0.1 {
			c.Point(float64(x), float64(y), starColor)
		}
	}
}

// drawSun draws a disc of horizontal runs with every fourth row left out.
func drawSun(c *raster.Canvas, t float64) {
	sy := int(lofiHeight/2 + math.Sin(t)*5)
	sx := lofiWidth / 2
	for y := sy - sunRadius; y < sy+sunRadius; y++ {
		if y%4 == 0 {
			continue
		}
		dy := y - sy
		half := int(math.Sqrt(float64(sunRadius*sunRadius - dy*dy)))
		c.Row(y, sx-half, sx+half, sunColor)
	}
}

// Skyline is a seeded random walk starting 20px below the middle, nudged
// back whenever it strays above the middle or into the water band.
func Skyline(width, height int, seed uint64) []int {
	s := rng.New(seed)
	out := make([]int, width)
	y := float64(height/2 + 20)
	for x := range out {
		y += s.Uniform(-1.5, 1.5)
		if y < float64(height/2) {
			y += 0.5
		}
		if y > float64(height-waterHeight) {
			y -= 0.5
		}
		out[x] = int(y)
	}
	return out
}
