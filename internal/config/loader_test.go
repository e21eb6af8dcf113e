package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "worm.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg WormConfig
	if err := yaml.Unmarshal(defaultWormYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	def := DefaultWormConfig()
	if cfg.Simulation != def.Simulation || cfg.Input != def.Input || cfg.Render != def.Render {
		t.Errorf("embedded = %+v, expected %+v", cfg, def)
	}
	if !slices.Equal(cfg.Keys.Pause, def.Keys.Pause) || !slices.Equal(cfg.Keys.Quit, def.Keys.Quit) {
		t.Errorf("embedded keys = %+v, expected %+v", cfg.Keys, def.Keys)
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := DefaultWormConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.TickInterval() != 20*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 20ms", cfg.TickInterval())
	}
	if cfg.PollInterval() != 10*time.Millisecond {
		t.Errorf("PollInterval() = %v, expected 10ms", cfg.PollInterval())
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, `
simulation:
  tick_ms: 50
  start: origin
render:
  head: "#"
`)

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Simulation.TickMS != 50 || cfg.Simulation.Start != "origin" {
		t.Errorf("simulation = %+v, expected tick 50 origin", cfg.Simulation)
	}
	if cfg.Render.Head != "#" || cfg.Render.Body != "o" {
		t.Errorf("render = %+v, expected custom head and default body", cfg.Render)
	}
	if cfg.Input.PollMS != 10 {
		t.Errorf("poll_ms = %d, expected default 10", cfg.Input.PollMS)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"bad yaml", "simulation: [", false},
		{"zero tick", "simulation:\n  tick_ms: 0\n", true},
		{"unknown start", "simulation:\n  start: middle\n", true},
		{"unknown frontend", "render:\n  frontend: web\n", true},
		{"long glyph", "render:\n  head: \"@@\"\n", true},
		{"unknown color", "render:\n  food_color: plaid\n", true},
		{"empty keys", "keys:\n  quit: []\n", true},
		{"negative poll", "input:\n  poll_ms: -1\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Load(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalid); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Render.Frontend != FrontendTUI {
		t.Errorf("frontend = %q, expected tui", cfg.Render.Frontend)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, LocalPath), []byte("simulation:\n  tick_ms: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != LocalPath || cfg.Simulation.TickMS != 30 {
		t.Errorf("got %q tick %d, expected local config with tick 30", source, cfg.Simulation.TickMS)
	}

	// User config wins over the local one
	userPath := filepath.Join(home, ".worm", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(userPath, []byte("simulation:\n  tick_ms: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != userPath || cfg.Simulation.TickMS != 40 {
		t.Errorf("got %q tick %d, expected user config with tick 40", source, cfg.Simulation.TickMS)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg, err := Apply(DefaultWormConfig(), Overrides{TickMS: 100, Start: "origin", Frontend: FrontendTerm})
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if cfg.TickInterval() != 100*time.Millisecond || cfg.Render.Frontend != FrontendTerm {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Start() != "origin" {
		t.Errorf("Start() = %q, expected origin", cfg.Start())
	}

	// Zero overrides change nothing
	same, err := Apply(DefaultWormConfig(), Overrides{})
	if err != nil || same.Simulation != DefaultWormConfig().Simulation {
		t.Errorf("empty overrides changed config: %+v, %v", same, err)
	}

	if _, err := Apply(DefaultWormConfig(), Overrides{Frontend: "gtk"}); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for bad frontend, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultWormConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var cfg WormConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("marshalled YAML does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("marshalled config invalid: %v", err)
	}
}

func TestGlyph(t *testing.T) {
	if Glyph("é") != 'é' {
		t.Error("Glyph should decode multi-byte runes")
	}
}
