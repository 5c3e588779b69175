package config

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/willbeason/newton-fractal/pkg/palette"
	"github.com/willbeason/newton-fractal/pkg/render"
	"github.com/willbeason/newton-fractal/pkg/roots"
)

// EnvPrefix is the prefix for environment overrides, e.g. NEWTON_RENDER_WIDTH.
const EnvPrefix = "NEWTON"

// Config represents the complete renderer configuration
type Config struct {
	Render  RenderConfig  `mapstructure:"render"`
	Newton  NewtonConfig  `mapstructure:"newton"`
	Roots   RootsConfig   `mapstructure:"roots"`
	Palette PaletteConfig `mapstructure:"palette"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RenderConfig controls the image and the window of the complex plane it covers
type RenderConfig struct {
	// Width and Height in pixels. Zero means "ask on the terminal".
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`

	XMin float64 `mapstructure:"x_min"`
	XMax float64 `mapstructure:"x_max"`
	YMin float64 `mapstructure:"y_min"`
	YMax float64 `mapstructure:"y_max"`

	// Output is the image path; its extension picks the encoder (default: "newton.png")
	Output string `mapstructure:"output"`
}

// NewtonConfig controls the iteration
type NewtonConfig struct {
	// MaxRetries caps overshooting steps per pixel (default: 0, unbounded)
	MaxRetries int `mapstructure:"max_retries"`
}

// RootsConfig controls root identification
type RootsConfig struct {
	// LegacyIDs numbers matched roots from 0 while new roots start at 1 (default: false)
	LegacyIDs bool `mapstructure:"legacy_ids"`
}

// PaletteConfig controls pixel colors
type PaletteConfig struct {
	// Colors are "#rrggbb" base colors cycled by root id (default: magenta, aqua, lime)
	Colors []string `mapstructure:"colors"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Format is "text" or "json" (default: "text")
	Format string `mapstructure:"format"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	colors := make([]string, len(palette.DefaultHex))
	copy(colors, palette.DefaultHex)

	return &Config{
		Render: RenderConfig{
			Width:  0,
			Height: 0,
			XMin:   -1.5,
			XMax:   1.5,
			YMin:   -1.5,
			YMax:   1.5,
			Output: "newton.png",
		},
		Newton: NewtonConfig{
			MaxRetries: 0,
		},
		Roots: RootsConfig{
			LegacyIDs: false,
		},
		Palette: PaletteConfig{
			Colors: colors,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers default values with v and enables environment overrides
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("render.width", defaults.Render.Width)
	v.SetDefault("render.height", defaults.Render.Height)
	v.SetDefault("render.x_min", defaults.Render.XMin)
	v.SetDefault("render.x_max", defaults.Render.XMax)
	v.SetDefault("render.y_min", defaults.Render.YMin)
	v.SetDefault("render.y_max", defaults.Render.YMax)
	v.SetDefault("render.output", defaults.Render.Output)

	v.SetDefault("newton.max_retries", defaults.Newton.MaxRetries)

	v.SetDefault("roots.legacy_ids", defaults.Roots.LegacyIDs)

	v.SetDefault("palette.colors", defaults.Palette.Colors)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile merges the YAML (or any viper-supported) file at path into v.
// An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	return v.ReadInConfig()
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// RenderOptions converts the validated configuration into render options
func (c *Config) RenderOptions() (render.Options, error) {
	p, err := palette.Parse(c.Palette.Colors)
	if err != nil {
		return render.Options{}, err
	}

	mode := roots.StableIDs
	if c.Roots.LegacyIDs {
		mode = roots.LegacyIDs
	}

	return render.Options{
		Window: render.Window{
			XMin: c.Render.XMin,
			XMax: c.Render.XMax,
			YMin: c.Render.YMin,
			YMax: c.Render.YMax,
		},
		Palette:    p,
		IDMode:     mode,
		MaxRetries: c.Newton.MaxRetries,
	}, nil
}
