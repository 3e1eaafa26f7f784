package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/archer/common"
)

// EnvPath names the environment variable consulted when Load gets no path.
const EnvPath = "ARCHER_CONFIG"

// Config is the game configuration file.
type Config struct {
	Window      WindowConfig        `yaml:"window"`
	TPS         int                 `yaml:"tps"`
	Level       string              `yaml:"level"`
	OutOfBounds string              `yaml:"out_of_bounds"`
	Camera      CameraConfig        `yaml:"camera"`
	Keys        map[string][]string `yaml:"keys"`
	Debug       bool                `yaml:"debug"`
	Mute        bool                `yaml:"mute"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig is the dead zone as fractions of the view.
type CameraConfig struct {
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

// Default returns the built-in configuration. Level is empty, meaning the
// embedded map.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  common.BaseWidth,
			Height: common.BaseHeight,
			Title:  "Archer",
		},
		TPS:         60,
		OutOfBounds: "empty",
		Camera:      CameraConfig{Near: 1.0 / 3, Far: 2.0 / 3},
	}
}

// Load reads the YAML file at path on top of Default. An empty path falls back
// to $ARCHER_CONFIG; a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	if c.Camera.Near < 0 || c.Camera.Far > 1 || c.Camera.Near > c.Camera.Far {
		return fmt.Errorf("camera dead zone %v..%v must satisfy 0 <= near <= far <= 1", c.Camera.Near, c.Camera.Far)
	}
	return nil
}
