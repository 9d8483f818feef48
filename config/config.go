// Package config loads launcher settings: built-in defaults, overridden by
// an optional launcher.yaml beside the executable, overridden by INSTAL_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"instal/doctor"
	"instal/window"
)

const (
	FileName  = "launcher"
	EnvPrefix = "INSTAL"
)

type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Engine EngineConfig `mapstructure:"engine"`
	Redist RedistConfig `mapstructure:"redist"`
	Probe  ProbeConfig  `mapstructure:"probe"`
	Log    LogConfig    `mapstructure:"log"`
}

type WindowConfig struct {
	Title  string `mapstructure:"title"`
	X      int    `mapstructure:"x"`
	Y      int    `mapstructure:"y"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	// Background and Foreground are "#rrggbb" splash colours.
	Background string `mapstructure:"background"`
	Foreground string `mapstructure:"foreground"`
}

type EngineConfig struct {
	Library   string `mapstructure:"library"`
	DataDir   string `mapstructure:"data_dir"`
	ICUData   string `mapstructure:"icu_data"`
	AssetsDir string `mapstructure:"assets_dir"`
}

type RedistConfig struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

type ProbeConfig struct {
	LoadLibrary bool   `mapstructure:"load_library"`
	SearchPath  string `mapstructure:"search_path"`
}

type LogConfig struct {
	// Path is a directory; empty means the user temp directory.
	Path string `mapstructure:"path"`
}

func setDefaults(v *viper.Viper) {
	probe := doctor.DefaultOptions()

	v.SetDefault("window.title", "Instal")
	v.SetDefault("window.x", 10)
	v.SetDefault("window.y", 10)
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.background", "#121212")
	v.SetDefault("window.foreground", "#c8c8c8")

	v.SetDefault("engine.library", probe.EngineLibrary)
	v.SetDefault("engine.data_dir", "data")
	v.SetDefault("engine.icu_data", probe.ICUData)
	v.SetDefault("engine.assets_dir", probe.AssetsDir)

	v.SetDefault("redist.key", probe.RedistKey)
	v.SetDefault("redist.value", probe.RedistValue)

	v.SetDefault("probe.load_library", probe.LoadLibrary)
	v.SetDefault("probe.search_path", probe.SearchPathVar)

	v.SetDefault("log.path", "")
}

// Default returns the built-in settings.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Load reads settings, looking for launcher.yaml in dirs. A missing file
// is not an error. On any error the defaults are returned with it.
func Load(dirs ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	for _, d := range dirs {
		if d != "" {
			v.AddConfigPath(d)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(dirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Default(), fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}
	if _, err := cfg.parsePalette(); err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ProbeOptions maps the settings onto the startup probe options.
func (c Config) ProbeOptions() doctor.Options {
	return doctor.Options{
		EngineLibrary: c.Engine.Library,
		ICUData:       c.Engine.ICUData,
		AssetsDir:     c.Engine.AssetsDir,
		RedistKey:     c.Redist.Key,
		RedistValue:   c.Redist.Value,
		SearchPathVar: c.Probe.SearchPath,
		LoadLibrary:   c.Probe.LoadLibrary,
	}
}

func (c Config) Origin() window.Point {
	return window.Point{X: c.Window.X, Y: c.Window.Y}
}

func (c Config) Size() window.Size {
	return window.Size{Width: c.Window.Width, Height: c.Window.Height}
}

// Palette returns the splash colours, or the defaults when they do not
// parse.
func (c Config) Palette() window.Palette {
	p, _ := c.parsePalette()
	return p
}

func (c Config) parsePalette() (window.Palette, error) {
	return window.ParsePalette(c.Window.Background, c.Window.Foreground)
}
