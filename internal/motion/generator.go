package motion

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/palette"
	"github.com/san-kum/animgen/internal/raster"
)

const (
	sceneWidth  = 480
	sceneHeight = 270
)

var ErrOutOfOrder = errors.New("motion: frames must be rendered in order")

// Generator renders a Script at a fixed frame rate.
type Generator struct {
	name   string
	script Script
	fps    int
	frames int
	camera Camera

	scene *Scene
	next  int
}

func NewGenerator(name string, script Script, fps int) (*Generator, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("%w: %s fps must be positive, got %d", anim.ErrInvalidSpec, name, fps)
	}
	g := &Generator{
		name:   name,
		script: script,
		fps:    fps,
		camera: Camera{Width: sceneWidth, Height: sceneHeight},
	}
	g.Reset()
	g.frames = g.scene.FrameCount(fps)
	return g, nil
}

func Study(fps int) (*Generator, error) { return NewGenerator("study_animation", StudyScript, fps) }
func Slime(fps int) (*Generator, error) { return NewGenerator("cartoon_slime", SlimeScript, fps) }

func (g *Generator) Spec() anim.Spec {
	return anim.Spec{
		Name:   g.name,
		Width:  g.camera.Width,
		Height: g.camera.Height,
		Frames: g.frames,
		Scale:  1,
		Delay:  time.Second / time.Duration(g.fps),
		Dir:    "scenes",
		File:   g.name + ".gif",
	}
}

// Reset rebuilds the scene from the script.
func (g *Generator) Reset() {
	g.scene = NewScene()
	g.script(g.scene)
	g.next = 0
}

func (g *Generator) Render(i int) (image.Image, error) {
	if i != g.next {
		return nil, fmt.Errorf("%w: want frame %d, got %d", ErrOutOfOrder, g.next, i)
	}
	if err := g.scene.Seek(float64(i) / float64(g.fps)); err != nil {
		return nil, err
	}
	c := raster.New(g.camera.Width, g.camera.Height, palette.Black)
	Draw(c, g.camera, g.scene.Mobjects())
	if err := c.Err(); err != nil {
		return nil, err
	}
	g.next++
	return c.Image(), nil
}

// Scene exposes the live scene, mainly for inspection in tests.
func (g *Generator) Scene() *Scene { return g.scene }
