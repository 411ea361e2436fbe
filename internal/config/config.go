// Package config loads rotview settings from YAML on top of embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all rotview settings.
type Config struct {
	Viewer ViewerConfig `yaml:"viewer"`
	Rotate RotateConfig `yaml:"rotate"`
	Log    LogConfig    `yaml:"log"`
}

// ViewerConfig holds interactive viewer settings.
type ViewerConfig struct {
	Width    int     `yaml:"width"`     // Window width (dp)
	Height   int     `yaml:"height"`    // Window height (dp)
	MinScale float64 `yaml:"min_scale"` // Smallest zoom level
	MaxScale float64 `yaml:"max_scale"` // Largest zoom level
	ZoomStep float64 `yaml:"zoom_step"` // Zoom change per scroll unit
}

// RotateConfig holds rotation settings.
type RotateConfig struct {
	SnapStep int     `yaml:"snap_step"` // Constrain grid for drags (degrees)
	KeyStep  float64 `yaml:"key_step"`  // Keyboard rotation step (degrees)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return fmt.Errorf("config: viewer size must be positive, got %dx%d", c.Viewer.Width, c.Viewer.Height)
	}
	if c.Viewer.MinScale <= 0 || c.Viewer.MaxScale < c.Viewer.MinScale {
		return fmt.Errorf("config: invalid zoom limits [%v, %v]", c.Viewer.MinScale, c.Viewer.MaxScale)
	}
	if c.Viewer.ZoomStep <= 0 {
		return fmt.Errorf("config: zoom_step must be positive, got %v", c.Viewer.ZoomStep)
	}
	if c.Rotate.SnapStep <= 0 || c.Rotate.SnapStep > 360 {
		return fmt.Errorf("config: snap_step must be in (0, 360], got %d", c.Rotate.SnapStep)
	}
	if c.Rotate.KeyStep <= 0 {
		return fmt.Errorf("config: key_step must be positive, got %v", c.Rotate.KeyStep)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
