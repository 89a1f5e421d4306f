package scenes

import (
	"image/color"
	"math"
	"time"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/palette"
	"github.com/san-kum/animgen/internal/raster"
	"github.com/san-kum/animgen/internal/rng"
)

const (
	fantasyWidth  = 320
	fantasyHeight = 180
)

func fantasySpec(name string, frames int, delay time.Duration) anim.Spec {
	return anim.Spec{
		Name:   name,
		Width:  fantasyWidth,
		Height: fantasyHeight,
		Frames: frames,
		Scale:  2,
		Delay:  delay,
		Dir:    "fantasy_art",
		File:   name + ".gif",
	}
}

// VerticalGradient fills each row with top..bottom interpolated by y/height.
func VerticalGradient(c *raster.Canvas, g palette.Gradient) {
	h := c.Height()
	for y := 0; y < h; y++ {
		c.Row(y, 0, c.Width()-1, g.At(float64(y)/float64(h)))
	}
}

// SkyIsland is a bobbing island with a glowing tree, falling petals and
// drifting clouds.
func SkyIsland() *Scene {
	const frames = 30
	skyGrad := palette.Gradient{palette.RGB(135, 206, 235), palette.RGB(255, 182, 193)}
	grass := palette.RGB(100, 200, 100)
	earth := palette.RGB(100, 70, 50)
	trunk := palette.RGB(80, 50, 30)
	leafA, leafB := palette.RGB(255, 100, 200), palette.RGB(200, 100, 255)
	petal := palette.RGB(255, 200, 220)

	return NewPixelArt(fantasySpec("sky_island", frames, 100*time.Millisecond), skyGrad[0], func(c *raster.Canvas, f int) {
		VerticalGradient(c, skyGrad)

		bob := math.Sin(phase(f, frames)) * 5
		ix := float64(fantasyWidth / 2)
		iy := float64(fantasyHeight/2 + int(bob))

		c.Ellipse(ix-40, iy-20, ix+40, iy+20, grass)
		c.Polygon(pts(ix-30, iy+10, ix+30, iy+10, ix, iy+50), earth)

		tx, ty := ix, iy-10
		c.Rect(tx-3, ty-30, tx+3, ty, trunk)
		glow := (math.Sin(float64(f)/5) + 1) / 2
		c.Ellipse(tx-20, ty-50, tx+20, ty-20, palette.Lerp(leafA, leafB, glow))

		for p := 0; p < 10; p++ {
			px := ix + math.Sin(float64(p*13)+float64(f)*0.1)*30
			py := iy - 30 + float64((f*2+p*10)%80)
			c.Point(px, py, petal)
		}

		for i := 0; i < 3; i++ {
			cx := float64((i*100+f)%(fantasyWidth+100) - 50)
			cy := float64(40 + i*30)
			c.Ellipse(cx, cy, cx+60, cy+30, palette.White)
		}
	})
}

type crystal struct {
	x, y, h float64
	color   color.RGBA
}

// CrystalCave shows three crystals under a jagged ceiling with sparkles
// that flash in turn. Sparkle offsets and stalactite depths are drawn from a
// stream seeded with seed and the frame index.
func CrystalCave(seed uint64) *Scene {
	const frames = 20
	rock := palette.RGB(10, 5, 15)
	crystals := []crystal{
		{50, 140, 20, palette.RGB(0, 255, 255)},
		{160, 130, 30, palette.RGB(255, 0, 255)},
		{270, 150, 25, palette.RGB(100, 255, 100)},
	}

	return NewPixelArt(fantasySpec("crystal_cave", frames, 150*time.Millisecond), palette.RGB(20, 10, 30), func(c *raster.Canvas, f int) {
		s := rng.New(seed*1000 + uint64(f))

		for i, cr := range crystals {
			x, y, h := cr.x, cr.y, cr.h
			c.Polygon(pts(x, y-h, x+10, y-h+10, x+10, y, x-10, y, x-10, y-h+10), cr.color)

			if f%10 == i*3%10 {
				sx := x + float64(s.IntRange(-15, 15))
				sy := y - h/2 + float64(s.IntRange(-15, 15))
				c.Line(sx-2, sy, sx+2, sy, palette.White, 1)
				c.Line(sx, sy-2, sx, sy+2, palette.White, 1)
			}
		}

		c.Rect(0, 0, fantasyWidth, 30, rock)
		for x := 0; x < fantasyWidth; x += 20 {
			tip := float64(s.IntRange(20, 50))
			fx := float64(x)
			c.Polygon(pts(fx, 0, fx+20, 0, fx+10, tip), rock)
		}
	})
}
