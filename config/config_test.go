package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instal/doctor"
	"instal/window"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Instal", cfg.Window.Title)
	assert.Equal(t, window.Point{X: 10, Y: 10}, cfg.Origin())
	assert.Equal(t, window.Size{Width: 1280, Height: 720}, cfg.Size())
	assert.Equal(t, "data", cfg.Engine.DataDir)
	assert.Equal(t, "", cfg.Log.Path)
	assert.Equal(t, doctor.DefaultOptions(), cfg.ProbeOptions())
	assert.Equal(t, window.DefaultPalette(), cfg.Palette())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
window:
  title: Instal Beta
  width: 800
probe:
  load_library: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "launcher.yaml"), []byte(yaml), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Instal Beta", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.False(t, cfg.ProbeOptions().LoadLibrary)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "launcher.yaml"), []byte("log:\n  path: from-file\n"), 0644))
	t.Setenv("INSTAL_LOG_PATH", "/var/tmp/instal")
	t.Setenv("INSTAL_WINDOW_HEIGHT", "600")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/instal", cfg.Log.Path)
	assert.Equal(t, 600, cfg.Window.Height)
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "launcher.yaml"), []byte("window: [unclosed"), 0644))

	cfg, err := Load(dir)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPalette(t *testing.T) {
	dir := t.TempDir()
	yaml := "window:\n  background: \"#ffffff\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "launcher.yaml"), []byte(yaml), 0644))
	t.Setenv("INSTAL_WINDOW_FOREGROUND", "#202020")

	cfg, err := Load(dir)
	require.NoError(t, err)
	p := cfg.Palette()
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, p.Background)
	assert.Equal(t, color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}, p.Foreground)
	assert.False(t, p.Dark())
}

func TestLoadBadPaletteFallsBack(t *testing.T) {
	t.Setenv("INSTAL_WINDOW_BACKGROUND", "charcoal")

	cfg, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window background")
	assert.Equal(t, Default(), cfg)
}

func TestPaletteInvalidUsesDefaults(t *testing.T) {
	cfg := Default()
	cfg.Window.Foreground = "#zzzzzz"
	assert.Equal(t, window.DefaultPalette(), cfg.Palette())
}
