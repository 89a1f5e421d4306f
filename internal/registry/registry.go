package registry

import (
	"fmt"
	"slices"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/flowfield"
	"github.com/san-kum/animgen/internal/motion"
	"github.com/san-kum/animgen/internal/scenes"
)

// Options are the tunables a constructor may read.
type Options struct {
	Seed     uint64
	SceneFPS int
	Flow     flowfield.Config
}

func DefaultOptions() Options {
	return Options{
		Seed:     1,
		SceneFPS: 15,
		Flow:     flowfield.DefaultConfig(),
	}
}

type Factory func(Options) (anim.Generator, error)

type Entry struct {
	Name  string
	Group string
	New   Factory
}

type Registry struct {
	entries map[string]Entry
	order   []string
	groups  []string
}

func New() *Registry {
	r := &Registry{entries: make(map[string]Entry)}

	r.add("animal_pixels", "pixel_cat", scene(scenes.PixelCat))
	r.add("animal_pixels", "pixel_rabbit", scene(scenes.PixelRabbit))
	r.add("animal_pixels", "pixel_dog", scene(scenes.PixelDog))

	r.add("animal_pixels_refined", "fine_cat", scene(scenes.FineCat))
	r.add("animal_pixels_refined", "fine_rabbit", scene(scenes.FineRabbit))
	r.add("animal_pixels_refined", "fine_dog", scene(scenes.FineDog))

	r.add("fantasy_art", "sky_island", scene(scenes.SkyIsland))
	r.add("fantasy_art", "crystal_cave", func(o Options) (anim.Generator, error) {
		return scenes.CrystalCave(o.Seed), nil
	})

	r.add("cartoon_style", "blobby_cartoon", func(o Options) (anim.Generator, error) {
		return scenes.BlobbyCartoon(o.Seed), nil
	})

	r.add("lofi", "lofi_landscape", scene(scenes.LofiLandscape))

	r.add("artistic_gen", "nebula_flow", func(o Options) (anim.Generator, error) {
		g, err := flowfield.New(o.Flow)
		if err != nil {
			return nil, err
		}
		return g, nil
	})

	r.add("scenes", "study_animation", func(o Options) (anim.Generator, error) {
		return sceneScript(motion.Study(o.SceneFPS))
	})
	r.add("scenes", "cartoon_slime", func(o Options) (anim.Generator, error) {
		return sceneScript(motion.Slime(o.SceneFPS))
	})

	return r
}

func scene(fn func() *scenes.Scene) Factory {
	return func(Options) (anim.Generator, error) { return fn(), nil }
}

func sceneScript(g *motion.Generator, err error) (anim.Generator, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *Registry) add(group, name string, fn Factory) {
	r.entries[name] = Entry{Name: name, Group: group, New: fn}
	r.order = append(r.order, name)
	if !slices.Contains(r.groups, group) {
		r.groups = append(r.groups, group)
	}
}

func (r *Registry) Get(name string, opts Options) (anim.Generator, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", anim.ErrUnknownGenerator, name)
	}
	return e.New(opts)
}

// Names lists every generator in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

func (r *Registry) Groups() []string {
	return slices.Clone(r.groups)
}

func (r *Registry) Group(group string) []string {
	var names []string
	for _, n := range r.order {
		if r.entries[n].Group == group {
			names = append(names, n)
		}
	}
	return names
}

// Resolve expands generator and group names into generator names, keeping
// registration order and dropping duplicates. No targets means all.
func (r *Registry) Resolve(targets []string) ([]string, error) {
	if len(targets) == 0 {
		return r.Names(), nil
	}
	want := make(map[string]bool)
	for _, t := range targets {
		if _, ok := r.entries[t]; ok {
			want[t] = true
			continue
		}
		members := r.Group(t)
		if len(members) == 0 {
			return nil, fmt.Errorf("%w: %s", anim.ErrUnknownGenerator, t)
		}
		for _, m := range members {
			want[m] = true
		}
	}
	var out []string
	for _, n := range r.order {
		if want[n] {
			out = append(out, n)
		}
	}
	return out, nil
}
