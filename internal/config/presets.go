package config

import "slices"

var Presets = map[string]map[string]*Config{
	"nebula_flow": {
		"nebula": {
			Flow: FlowConfig{Particles: 4000, Frames: 60, CellSize: 10, Decay: Decay(0.9), Source: "waves"},
		},
		"dense": {
			Flow: FlowConfig{Particles: 12000, Frames: 90, CellSize: 8, Decay: Decay(0.95), Source: "waves"},
		},
		"perlin": {
			Flow: FlowConfig{Particles: 5000, Frames: 80, CellSize: 12, Decay: Decay(0.92), Source: "noise"},
		},
		"sparse": {
			Flow: FlowConfig{Particles: 800, Frames: 60, CellSize: 16, Decay: Decay(0.8), Source: "waves"},
		},
	},
	"study_animation": {
		"draft":  {SceneFPS: 10},
		"smooth": {SceneFPS: 30},
	},
	"cartoon_slime": {
		"draft":  {SceneFPS: 10},
		"smooth": {SceneFPS: 30},
	},
}

func GetPreset(name, preset string) *Config {
	group, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg, ok := group[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names for a generator, sorted.
func ListPresets(name string) []string {
	group, ok := Presets[name]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for p := range group {
		names = append(names, p)
	}
	slices.Sort(names)
	return names
}

// Apply copies the fields a preset sets onto c.
func (c *Config) Apply(p *Config) {
	if p.SceneFPS != 0 {
		c.SceneFPS = p.SceneFPS
	}
	if p.Seed != 0 {
		c.Seed = p.Seed
	}
	c.ApplyFlow(p.Flow)
}
