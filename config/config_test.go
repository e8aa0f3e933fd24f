package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Resolution.Width != 1280 || cfg.Resolution.Height != 720 {
		t.Errorf("resolution = %dx%d, want 1280x720", cfg.Resolution.Width, cfg.Resolution.Height)
	}
	if cfg.Field.Policy != "continuous" {
		t.Errorf("policy = %q, want continuous", cfg.Field.Policy)
	}
	if cfg.Field.Depth != 8 || cfg.Field.Growth != 3.0 {
		t.Errorf("depth/growth = %d/%v, want 8/3", cfg.Field.Depth, cfg.Field.Growth)
	}
	if cfg.Falloff.MaxDist != 70.0 || cfg.Falloff.DistPower != 1.5 {
		t.Errorf("falloff = %v/%v, want 70/1.5", cfg.Falloff.MaxDist, cfg.Falloff.DistPower)
	}
	if cfg.Derived.Samples != 1280*720 {
		t.Errorf("derived samples = %d, want %d", cfg.Derived.Samples, 1280*720)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	override := `
seed: 42
field:
  depth: 4
`
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
	if cfg.Field.Depth != 4 {
		t.Errorf("depth = %d, want 4", cfg.Field.Depth)
	}
	// Untouched fields keep their defaults
	if cfg.Field.Growth != 3.0 {
		t.Errorf("growth = %v, want default 3.0", cfg.Field.Growth)
	}
	if cfg.Resolution.Width != 1280 {
		t.Errorf("width = %d, want default 1280", cfg.Resolution.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing config file")
	}
}

func TestBoundedExtentDefaultsToCellCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	override := `
field:
  boundary: clamp
`
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Field.Extent != cfg.Field.CellCount {
		t.Errorf("extent = %+v, want cell count %+v", cfg.Field.Extent, cfg.Field.CellCount)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Seed = 99

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Seed != 99 {
		t.Errorf("seed after roundtrip = %d, want 99", back.Seed)
	}
	if back.Field.Depth != cfg.Field.Depth {
		t.Errorf("depth after roundtrip = %d, want %d", back.Field.Depth, cfg.Field.Depth)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	old := global
	global = nil
	defer func() {
		global = old
		if recover() == nil {
			t.Errorf("expected panic from Cfg() before Init()")
		}
	}()
	Cfg()
}
