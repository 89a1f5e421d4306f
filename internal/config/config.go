package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/animgen/internal/encode"
	"github.com/san-kum/animgen/internal/flowfield"
	"github.com/san-kum/animgen/internal/registry"
)

const (
	DefaultOutputDir = "."
	DefaultFormat    = "gif"
	DefaultSeed      = 1
	DefaultSceneFPS  = 15
)

type Config struct {
	OutputDir string     `yaml:"output_dir"`
	Format    string     `yaml:"format"`
	Seed      uint64     `yaml:"seed"`
	SceneFPS  int        `yaml:"scene_fps"`
	Flow      FlowConfig `yaml:"flow"`
}

// FlowConfig tunes the nebula flow generator. Zero values keep the
// generator defaults; a zero seed falls back to the top-level seed.
// A nil Decay keeps the default; 0 clears the trail canvas every frame.
type FlowConfig struct {
	Particles int      `yaml:"particles,omitempty"`
	Frames    int      `yaml:"frames,omitempty"`
	CellSize  int      `yaml:"cell_size,omitempty"`
	Decay     *float64 `yaml:"decay,omitempty"`
	DelayMS   int      `yaml:"delay_ms,omitempty"`
	Source    string   `yaml:"source,omitempty"`
	Seed      uint64   `yaml:"seed,omitempty"`
}

// Decay returns a FlowConfig decay setting.
func Decay(v float64) *float64 { return &v }

func DefaultConfig() *Config {
	flow := flowfield.DefaultConfig()
	return &Config{
		OutputDir: DefaultOutputDir,
		Format:    DefaultFormat,
		Seed:      DefaultSeed,
		SceneFPS:  DefaultSceneFPS,
		Flow: FlowConfig{
			Particles: flow.Particles,
			Frames:    flow.Frames,
			CellSize:  flow.CellSize,
			Decay:     Decay(flow.Decay),
			DelayMS:   int(flow.Delay / time.Millisecond),
			Source:    flow.Source,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := encode.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.SceneFPS <= 0 {
		return fmt.Errorf("scene_fps must be positive, got %d", c.SceneFPS)
	}
	return c.FlowfieldConfig().Validate()
}

// FlowfieldConfig merges the flow block over the generator defaults.
func (c *Config) FlowfieldConfig() flowfield.Config {
	out := flowfield.DefaultConfig()
	f := c.Flow
	if f.Particles != 0 {
		out.Particles = f.Particles
	}
	if f.Frames != 0 {
		out.Frames = f.Frames
	}
	if f.CellSize != 0 {
		out.CellSize = f.CellSize
	}
	if f.Decay != nil {
		out.Decay = *f.Decay
	}
	if f.DelayMS != 0 {
		out.Delay = time.Duration(f.DelayMS) * time.Millisecond
	}
	if f.Source != "" {
		out.Source = f.Source
	}
	out.Seed = c.Seed
	if f.Seed != 0 {
		out.Seed = f.Seed
	}
	return out
}

// Options converts the config into generator construction options.
func (c *Config) Options() registry.Options {
	return registry.Options{
		Seed:     c.Seed,
		SceneFPS: c.SceneFPS,
		Flow:     c.FlowfieldConfig(),
	}
}

// ApplyFlow copies the non-zero fields of a preset's flow block onto c.
func (c *Config) ApplyFlow(p FlowConfig) {
	if p.Particles != 0 {
		c.Flow.Particles = p.Particles
	}
	if p.Frames != 0 {
		c.Flow.Frames = p.Frames
	}
	if p.CellSize != 0 {
		c.Flow.CellSize = p.CellSize
	}
	if p.Decay != nil {
		c.Flow.Decay = Decay(*p.Decay)
	}
	if p.DelayMS != 0 {
		c.Flow.DelayMS = p.DelayMS
	}
	if p.Source != "" {
		c.Flow.Source = p.Source
	}
	if p.Seed != 0 {
		c.Flow.Seed = p.Seed
	}
}
