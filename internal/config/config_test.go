package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/animgen/internal/flowfield"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format != "gif" {
		t.Errorf("expected format gif, got %s", cfg.Format)
	}
	if cfg.SceneFPS != 15 {
		t.Errorf("expected scene fps 15, got %d", cfg.SceneFPS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	flow := cfg.FlowfieldConfig()
	if flow != flowfield.DefaultConfig() {
		t.Errorf("default flow config = %+v, want generator defaults", flow)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animgen.yaml")
	data := []byte(`output_dir: out
format: apng
seed: 9
flow:
  particles: 100
  source: noise
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "out" || cfg.Format != "apng" || cfg.Seed != 9 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.SceneFPS != DefaultSceneFPS {
		t.Errorf("scene_fps should keep its default, got %d", cfg.SceneFPS)
	}

	flow := cfg.FlowfieldConfig()
	if flow.Particles != 100 || flow.Source != "noise" {
		t.Errorf("flow = %+v", flow)
	}
	if flow.Seed != 9 {
		t.Errorf("flow seed should follow top-level seed, got %d", flow.Seed)
	}
	if flow.Delay != 60*time.Millisecond || flow.CellSize != 10 {
		t.Errorf("unset flow fields should keep defaults: %+v", flow)
	}
}

func TestLoadZeroDecay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animgen.yaml")
	if err := os.WriteFile(path, []byte("flow:\n  decay: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.FlowfieldConfig().Decay; got != 0 {
		t.Errorf("decay = %g, want 0", got)
	}

	cfg.ApplyFlow(FlowConfig{Particles: 50})
	if got := cfg.FlowfieldConfig().Decay; got != 0 {
		t.Errorf("preset without decay changed it to %g", got)
	}
	cfg.ApplyFlow(FlowConfig{Decay: Decay(0.5)})
	if got := cfg.FlowfieldConfig().Decay; got != 0.5 {
		t.Errorf("decay = %g, want 0.5", got)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"format", "format: bmp\n"},
		{"fps", "scene_fps: -1\n"},
		{"source", "flow:\n  source: vortex\n"},
		{"decay", "flow:\n  decay: 2\n"},
		{"syntax", "format: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 3
	cfg.Flow.Seed = 11
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.FlowfieldConfig() != cfg.FlowfieldConfig() || got.OutputDir != cfg.OutputDir ||
		got.Format != cfg.Format || got.SceneFPS != cfg.SceneFPS || got.Seed != cfg.Seed {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
	if got.FlowfieldConfig().Seed != 11 {
		t.Error("flow seed should override top-level seed")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("nebula_flow", "perlin")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Flow.Source != "noise" {
		t.Errorf("expected noise source, got %s", cfg.Flow.Source)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nebula_flow", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "dense") != nil {
		t.Error("expected nil for nonexistent generator")
	}
}

func TestListPresets(t *testing.T) {
	got := ListPresets("nebula_flow")
	want := []string{"dense", "nebula", "perlin", "sparse"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent generator")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for name, group := range Presets {
		for preset, p := range group {
			cfg := DefaultConfig()
			cfg.Apply(p)
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", name, preset, err)
			}
		}
	}
}

func TestApplyKeepsUnsetFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.Apply(GetPreset("cartoon_slime", "smooth"))
	if cfg.SceneFPS != 30 || cfg.Seed != 5 {
		t.Errorf("after preset: fps %d seed %d", cfg.SceneFPS, cfg.Seed)
	}

	opts := cfg.Options()
	if opts.SceneFPS != 30 || opts.Flow.Seed != 5 {
		t.Errorf("options = %+v", opts)
	}
}
