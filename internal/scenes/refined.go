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
	fineWidth  = 160
	fineHeight = 120
	grassSeed  = 42
)

var (
	ground     = palette.RGB(100, 180, 100)
	grassBlade = palette.RGB(80, 160, 80)
	mouthBrown = palette.RGB(50, 30, 0)
)

func fineSpec(name string, frames int) anim.Spec {
	return anim.Spec{
		Name:   name,
		Width:  fineWidth,
		Height: fineHeight,
		Frames: frames,
		Scale:  4,
		Delay:  120 * time.Millisecond,
		Dir:    "animal_pixels_refined",
		File:   name + ".gif",
	}
}

// drawGrass lays the ground strip and a blade every 4px. The blade heights
// come from a fixed seed so the lawn is identical on every frame.
func drawGrass(c *raster.Canvas) {
	top := float64(fineHeight - 20)
	c.Rect(0, top, fineWidth, fineHeight, ground)
	s := rng.New(grassSeed)
	for x := 0; x < fineWidth; x += 4 {
		h := float64(s.IntRange(2, 6))
		c.Line(float64(x), top, float64(x), top-h, grassBlade, 1)
	}
}

// FineCat is a sitting tabby that breathes, blinks and swishes its tail.
func FineCat() *Scene {
	const frames = 12
	orange := palette.RGB(230, 140, 50)
	stripe := palette.RGB(180, 100, 30)
	eyeGreen := palette.RGB(100, 200, 100)
	whisker := palette.RGB(200, 200, 200)
	cx, cy := float64(fineWidth/2), float64(fineHeight-30)

	return NewPixelArt(fineSpec("fine_cat", frames), softSky, func(c *raster.Canvas, f int) {
		drawGrass(c)

		wave := math.Sin(phase(f, frames))
		bodyH := 35 + wave
		tail := wave * 5
		c.Line(cx+10, cy-5, cx+25, cy-10+tail, orange, 4)

		c.Ellipse(cx-15, cy-bodyH, cx+15, cy, orange)
		c.Ellipse(cx-8, cy-bodyH+5, cx+8, cy-10, palette.White)

		hy := cy - bodyH - 15
		c.Ellipse(cx-12, hy, cx+12, hy+22, orange)
		c.Line(cx-5, hy+2, cx+5, hy+2, stripe, 1)
		c.Line(cx-4, hy+4, cx+4, hy+4, stripe, 1)

		c.Polygon(pts(cx-10, hy+5, cx-14, hy-5, cx-4, hy+5), orange)
		c.Polygon(pts(cx+10, hy+5, cx+14, hy-5, cx+4, hy+5), orange)

		if f == 5 || f == 6 {
			c.Line(cx-8, hy+12, cx-4, hy+12, mouthBrown, 1)
			c.Line(cx+4, hy+12, cx+8, hy+12, mouthBrown, 1)
		} else {
			c.Rect(cx-8, hy+10, cx-4, hy+13, eyeGreen)
			c.Rect(cx+4, hy+10, cx+8, hy+13, eyeGreen)
			c.Point(cx-6, hy+11, palette.Black)
			c.Point(cx+6, hy+11, palette.Black)
		}

		c.Point(cx, hy+16, pink)
		c.Line(cx, hy+16, cx-2, hy+18, mouthBrown, 1)
		c.Line(cx, hy+16, cx+2, hy+18, mouthBrown, 1)

		c.Line(cx-15, hy+16, cx-8, hy+17, whisker, 1)
		c.Line(cx+15, hy+16, cx+8, hy+17, whisker, 1)
	})
}

// FineRabbit is a grey rabbit chewing a carrot.
func FineRabbit() *Scene {
	const frames = 8
	fur := palette.RGB(200, 200, 210)
	inner := palette.RGB(255, 180, 190)
	carrot := palette.MustParse("orange")
	leaf := palette.MustParse("green")
	cx, cy := float64(fineWidth/2), float64(fineHeight-30)

	return NewPixelArt(fineSpec("fine_rabbit", frames), softSky, func(c *raster.Canvas, f int) {
		drawGrass(c)

		bob := 0.0
		if f%2 == 0 {
			bob = 1
		}

		c.Ellipse(cx-12, cy-20, cx+12, cy, fur)
		c.Ellipse(cx+10, cy-10, cx+18, cy-2, palette.White)

		hy := cy - 25 + bob
		c.Ellipse(cx-10, hy, cx+8, hy+16, fur)
		c.Ellipse(cx-8, hy-15, cx-4, hy+5, fur)
		c.Ellipse(cx-2, hy-15, cx+2, hy+5, fur)
		c.Ellipse(cx-1, hy-12, cx+1, hy, inner)

		c.Rect(cx-6, hy+8, cx-4, hy+10, palette.Black)
		c.Point(cx+2, hy+10+bob, inner)

		c.Polygon(pts(cx+5, hy+12+bob, cx+15, hy+10+bob, cx+6, hy+14+bob), carrot)
		c.Line(cx+15, hy+10+bob, cx+18, hy+8+bob, leaf, 1)
	})
}

// FineDog is a shiba that tilts its head, pants and curls its tail.
func FineDog() *Scene {
	const frames = 16
	tan := palette.RGB(210, 160, 100)
	cream := palette.RGB(245, 235, 220)
	cx, cy := float64(fineWidth/2), float64(fineHeight-30)

	return NewPixelArt(fineSpec("fine_dog", frames), softSky, func(c *raster.Canvas, f int) {
		drawGrass(c)

		c.Ellipse(cx-15, cy-25, cx+15, cy, tan)
		c.Ellipse(cx-8, cy-25, cx+8, cy-10, cream)

		hy := cy - 35
		tilt := math.Sin(phase(f, frames)) * 2

		c.Ellipse(cx-14+tilt, hy, cx+14+tilt, hy+24, tan)
		c.Ellipse(cx-8+tilt, hy+12, cx+8+tilt, hy+24, cream)

		c.Polygon(pts(cx-10+tilt, hy+5, cx-14+tilt, hy-4, cx-6+tilt, hy+5), tan)
		c.Polygon(pts(cx+10+tilt, hy+5, cx+14+tilt, hy-4, cx+6+tilt, hy+5), tan)

		c.Rect(cx-6+tilt, hy+10, cx-3+tilt, hy+13, palette.Black)
		c.Rect(cx+3+tilt, hy+10, cx+6+tilt, hy+13, palette.Black)
		c.Rect(cx-2+tilt, hy+16, cx+2+tilt, hy+19, palette.Black)

		if f%4 < 2 {
			c.Ellipse(cx-2+tilt, hy+20, cx+2+tilt, hy+26, pink)
		}

		c.Arc(cx+10, cy-20, cx+25, cy-5, 180, 360, tan, 4)
	})
}
