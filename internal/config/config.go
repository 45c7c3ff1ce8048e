package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Grid     GridConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// GridConfig holds grid surface settings.
type GridConfig struct {
	Preset  string
	Gap     float64
	Padding float64
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Layout   string
	Autosave bool
}

// Load reads configuration from file and env. Env var overrides use prefix GRIDBOARD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "gridboard", "gridboard.db"))
	v.SetDefault("grid.preset", "12x12")
	v.SetDefault("grid.gap", 1.0)
	v.SetDefault("grid.padding", 1.0)
	v.SetDefault("ui.layout", "default")
	v.SetDefault("ui.autosave", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GRIDBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gridboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GRIDBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed. Used when the user changes preset or layout slot in-app so
// the next launch starts where they left off.
func Save(cfg Config) error {
	path := os.Getenv("GRIDBOARD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "gridboard", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("grid.preset", cfg.Grid.Preset)
	v.Set("grid.gap", cfg.Grid.Gap)
	v.Set("grid.padding", cfg.Grid.Padding)
	v.Set("ui.layout", cfg.UI.Layout)
	v.Set("ui.autosave", cfg.UI.Autosave)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
