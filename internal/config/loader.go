package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name configs that did not come from a file.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LocalPath is the project-local config file, relative to the working directory.
var LocalPath = filepath.Join("configs", "worm.yaml")

// Load loads the worm configuration and reports where it came from.
// Search order: customPath -> ~/.worm/config.yaml -> ./configs/worm.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (WormConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultWormConfig()
		if err := loadFile(customPath, &cfg); err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), LocalPath} {
		if path == "" {
			continue
		}
		cfg := DefaultWormConfig()
		if err := loadFile(path, &cfg); err == nil {
			return cfg, path, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg := DefaultWormConfig()
	if err := yaml.Unmarshal(defaultWormYAML, &cfg); err != nil {
		return DefaultWormConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

func loadFile(path string, cfg *WormConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".worm", filename)
}

// Overrides carries command-line values that replace loaded ones.
// Zero values leave the loaded config untouched.
type Overrides struct {
	TickMS   int
	Start    string
	Frontend string
}

// Apply returns cfg with the overrides applied and validates the result.
func Apply(cfg WormConfig, o Overrides) (WormConfig, error) {
	if o.TickMS != 0 {
		cfg.Simulation.TickMS = o.TickMS
	}
	if o.Start != "" {
		cfg.Simulation.Start = o.Start
	}
	if o.Frontend != "" {
		cfg.Render.Frontend = o.Frontend
	}
	return cfg, cfg.Validate()
}

// Marshal renders cfg as YAML.
func Marshal(cfg WormConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
