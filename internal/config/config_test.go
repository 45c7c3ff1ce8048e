package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GRIDBOARD_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Grid.Preset != "12x12" {
		t.Errorf("preset = %q, want 12x12", c.Grid.Preset)
	}
	if c.Grid.Gap != 1.0 || c.Grid.Padding != 1.0 {
		t.Errorf("gap/padding = %v/%v, want 1/1", c.Grid.Gap, c.Grid.Padding)
	}
	if c.UI.Layout != "default" || !c.UI.Autosave {
		t.Errorf("ui = %+v, want default layout with autosave", c.UI)
	}
	if c.Database.Path == "" {
		t.Errorf("database path should default to a non-empty path")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[grid]
preset = "6x8"
gap = 2.0

[ui]
autosave = false
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GRIDBOARD_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Grid.Preset != "6x8" {
		t.Errorf("preset = %q, want 6x8", c.Grid.Preset)
	}
	if c.Grid.Gap != 2.0 {
		t.Errorf("gap = %v, want 2", c.Grid.Gap)
	}
	if c.Grid.Padding != 1.0 {
		t.Errorf("padding = %v, want default 1", c.Grid.Padding)
	}
	if c.UI.Autosave {
		t.Errorf("autosave should be false")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("GRIDBOARD_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("GRIDBOARD_GRID_PRESET", "16x20")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Grid.Preset != "16x20" {
		t.Errorf("preset = %q, want env override 16x20", c.Grid.Preset)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("GRIDBOARD_CONFIG", path)

	in := Config{
		Database: DatabaseConfig{Path: "/tmp/gb.db"},
		Grid:     GridConfig{Preset: "16x10", Gap: 1.5, Padding: 3},
		UI:       UIConfig{Layout: "work", Autosave: true},
	}
	if err := Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out != in {
		t.Fatalf("round trip:\n got %+v\nwant %+v", out, in)
	}
}
