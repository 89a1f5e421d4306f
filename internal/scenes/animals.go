package scenes

import (
	"math"
	"time"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/palette"
	"github.com/san-kum/animgen/internal/raster"
)

var (
	sky     = palette.RGB(200, 220, 255)
	softSky = palette.RGB(220, 235, 255)
	pink    = palette.MustParse("pink")
)

func pixelSpec(name string, frames int) anim.Spec {
	return anim.Spec{
		Name:   name,
		Width:  64,
		Height: 64,
		Frames: frames,
		Scale:  8,
		Delay:  150 * time.Millisecond,
		Dir:    "animal_pixels",
		File:   name + ".gif",
	}
}

// PixelCat is an orange tabby that blinks and wags its tail.
func PixelCat() *Scene {
	const frames = 10
	orange := palette.RGB(255, 165, 0)
	darkOrange := palette.RGB(200, 100, 0)

	return NewPixelArt(pixelSpec("pixel_cat", frames), sky, func(c *raster.Canvas, f int) {
		c.Rect(20, 30, 44, 50, orange)
		c.Rect(22, 18, 42, 32, orange)
		c.Polygon(pts(22, 18, 25, 10, 28, 18), orange)
		c.Polygon(pts(36, 18, 39, 10, 42, 18), orange)

		if f == 4 || f == 5 {
			c.Line(25, 24, 28, 24, palette.Black, 1)
			c.Line(36, 24, 39, 24, palette.Black, 1)
		} else {
			c.Rect(25, 23, 27, 25, palette.Black)
			c.Rect(36, 23, 38, 25, palette.Black)
		}

		c.Rect(31, 27, 33, 28, pink)

		offset := math.Sin(phase(f, frames)) * 3
		tip := 44 + float64(int(offset))
		c.Line(44, 45, tip, 40, darkOrange, 3)
	})
}

// PixelRabbit twitches its left ear and wiggles its nose.
func PixelRabbit() *Scene {
	const frames = 8
	fur := palette.RGB(250, 250, 250)
	inner := palette.RGB(255, 192, 203)

	return NewPixelArt(pixelSpec("pixel_rabbit", frames), sky, func(c *raster.Canvas, f int) {
		c.Ellipse(20, 30, 44, 50, fur)
		c.Ellipse(22, 15, 42, 35, fur)

		ear := 0.0
		if f == 2 || f == 3 {
			ear = 2
		}
		c.Ellipse(22, 5+ear, 28, 20+ear, fur)
		c.Ellipse(24, 8+ear, 26, 18+ear, inner)
		c.Ellipse(36, 5, 42, 20, fur)
		c.Ellipse(38, 8, 40, 18, inner)

		c.Rect(26, 22, 28, 24, palette.Black)
		c.Rect(36, 22, 38, 24, palette.Black)

		noseY := 28.0
		if f%2 == 0 {
			noseY--
		}
		c.Rect(31, noseY, 33, noseY+1, inner)
	})
}

// PixelDog is a beagle with bouncing ears, a panting tongue and a fast wag.
func PixelDog() *Scene {
	const frames = 8
	brown := palette.RGB(139, 69, 19)
	red := palette.MustParse("red")

	return NewPixelArt(pixelSpec("pixel_dog", frames), sky, func(c *raster.Canvas, f int) {
		even := f%2 == 0

		c.Rect(20, 35, 44, 50, palette.White)
		c.Rect(20, 35, 30, 50, brown)
		c.Rect(22, 20, 42, 35, brown)
		c.Rect(28, 20, 36, 35, palette.White)

		bounce := 0.0
		if even {
			bounce = 1
		}
		c.Rect(18, 22+bounce, 22, 32+bounce, brown)
		c.Rect(42, 22+bounce, 46, 32+bounce, brown)

		c.Rect(26, 25, 28, 27, palette.Black)
		c.Rect(36, 25, 38, 27, palette.Black)

		if even {
			c.Rect(30, 32, 34, 36, red)
		}

		tailX := 20.0
		if even {
			tailX -= 2
		}
		c.Line(20, 40, tailX, 30, palette.White, 2)
	})
}
