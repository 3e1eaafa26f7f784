package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 450, cfg.Window.Height)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, "empty", cfg.OutOfBounds)
	assert.Empty(t, cfg.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := writeConfig(t, "tps: 30\n")
	t.Setenv(EnvPath, path)
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TPS)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1280
  title: Test
level: levels/custom.bin
out_of_bounds: solid
camera:
  near: 0.25
keys:
  fire: [Space]
  jump: [Z, Enter]
debug: true
mute: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 450, cfg.Window.Height, "unset fields keep defaults")
	assert.Equal(t, "Test", cfg.Window.Title)
	assert.Equal(t, "levels/custom.bin", cfg.Level)
	assert.Equal(t, "solid", cfg.OutOfBounds)
	assert.Equal(t, 0.25, cfg.Camera.Near)
	assert.Equal(t, 2.0/3, cfg.Camera.Far)
	assert.Equal(t, []string{"Z", "Enter"}, cfg.Keys["jump"])
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Mute)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "window: [\n"},
		{"zero tps", "tps: 0\n"},
		{"negative width", "window: {width: -1}\n"},
		{"inverted dead zone", "camera: {near: 0.8, far: 0.2}\n"},
		{"far past view", "camera: {far: 1.5}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			require.Error(t, err)
		})
	}
}
