package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/willbeason/newton-fractal/pkg/palette"
	"github.com/willbeason/newton-fractal/pkg/render"
	"github.com/willbeason/newton-fractal/pkg/roots"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Render.Width != 0 || cfg.Render.Height != 0 {
		t.Errorf("Render size = %dx%d, want 0x0", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.XMin != -1.5 || cfg.Render.XMax != 1.5 || cfg.Render.YMin != -1.5 || cfg.Render.YMax != 1.5 {
		t.Errorf("Render window = %+v, want [-1.5,1.5]^2", cfg.Render)
	}
	if cfg.Render.Output != "newton.png" {
		t.Errorf("Render.Output = %q, want %q", cfg.Render.Output, "newton.png")
	}
	if cfg.Newton.MaxRetries != 0 {
		t.Errorf("Newton.MaxRetries = %d, want 0", cfg.Newton.MaxRetries)
	}
	if cfg.Roots.LegacyIDs {
		t.Error("Roots.LegacyIDs should be false by default")
	}
	if len(cfg.Palette.Colors) != 3 {
		t.Errorf("Palette.Colors = %v, want 3 colors", cfg.Palette.Colors)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default() does not validate: %v", ValidationErrors(errs))
	}
}

func TestDefault_PaletteIsACopy(t *testing.T) {
	cfg := Default()
	cfg.Palette.Colors[0] = "#000000"

	if palette.DefaultHex[0] != "#ff00ff" {
		t.Errorf("DefaultHex modified through config: %v", palette.DefaultHex)
	}
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Render.Output != "newton.png" {
		t.Errorf("Render.Output = %q", cfg.Render.Output)
	}
	if cfg.Render.XMax != 1.5 {
		t.Errorf("Render.XMax = %v", cfg.Render.XMax)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newton.yaml")
	content := `render:
  width: 640
  height: 480
  output: out/fractal.bmp
newton:
  max_retries: 100
roots:
  legacy_ids: true
palette:
  colors: ["#ff0000", "#0000ff"]
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	SetDefaults(v)
	if err := ReadFile(v, path); err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Render.Width != 640 || cfg.Render.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.Output != "out/fractal.bmp" {
		t.Errorf("Render.Output = %q", cfg.Render.Output)
	}
	// Unset keys keep their defaults.
	if cfg.Render.YMin != -1.5 {
		t.Errorf("Render.YMin = %v, want -1.5", cfg.Render.YMin)
	}
	if cfg.Newton.MaxRetries != 100 {
		t.Errorf("Newton.MaxRetries = %d", cfg.Newton.MaxRetries)
	}
	if !cfg.Roots.LegacyIDs {
		t.Error("Roots.LegacyIDs = false")
	}
	if len(cfg.Palette.Colors) != 2 || cfg.Palette.Colors[1] != "#0000ff" {
		t.Errorf("Palette.Colors = %v", cfg.Palette.Colors)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestReadFile_Empty(t *testing.T) {
	if err := ReadFile(viper.New(), ""); err != nil {
		t.Errorf("ReadFile(\"\") error: %v", err)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if err := ReadFile(viper.New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("ReadFile() of a missing file returned nil")
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("NEWTON_RENDER_WIDTH", "32")
	t.Setenv("NEWTON_NEWTON_MAX_RETRIES", "7")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Width != 32 {
		t.Errorf("Render.Width = %d, want 32", cfg.Render.Width)
	}
	if cfg.Newton.MaxRetries != 7 {
		t.Errorf("Newton.MaxRetries = %d, want 7", cfg.Newton.MaxRetries)
	}
}

func TestLoad_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("render.width", -1)
	v.Set("logging.level", "loud")

	_, err := Load(v)
	if err == nil {
		t.Fatal("Load() with invalid values returned nil error")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Errorf("got %d validation errors, want 2: %v", len(verrs), err)
	}
	if !strings.Contains(err.Error(), "2 validation errors") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{name: "negative height", modify: func(c *Config) { c.Render.Height = -5 }, wantField: "render.height"},
		{name: "empty x range", modify: func(c *Config) { c.Render.XMin = 2 }, wantField: "render.x_min"},
		{name: "inverted y range", modify: func(c *Config) { c.Render.YMin, c.Render.YMax = 1, -1 }, wantField: "render.y_min"},
		{name: "empty output", modify: func(c *Config) { c.Render.Output = "" }, wantField: "render.output"},
		{name: "unknown extension", modify: func(c *Config) { c.Render.Output = "out.svg" }, wantField: "render.output"},
		{name: "negative retries", modify: func(c *Config) { c.Newton.MaxRetries = -1 }, wantField: "newton.max_retries"},
		{name: "bad color", modify: func(c *Config) { c.Palette.Colors = []string{"red"} }, wantField: "palette.colors"},
		{name: "no colors", modify: func(c *Config) { c.Palette.Colors = nil }, wantField: "palette.colors"},
		{name: "bad level", modify: func(c *Config) { c.Logging.Level = "trace" }, wantField: "logging.level"},
		{name: "bad format", modify: func(c *Config) { c.Logging.Format = "xml" }, wantField: "logging.format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), ValidationErrors(errs))
			}
			if errs[0].Field != tc.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tc.wantField)
			}
		})
	}
}

func TestValidate_UppercaseExtension(t *testing.T) {
	cfg := Default()
	cfg.Render.Output = "OUT.PNG"
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("uppercase extension rejected: %v", ValidationErrors(errs))
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := Default()
	cfg.Render.XMin = -2
	cfg.Roots.LegacyIDs = true
	cfg.Newton.MaxRetries = 9
	cfg.Palette.Colors = []string{"#010203"}

	opts, err := cfg.RenderOptions()
	if err != nil {
		t.Fatalf("RenderOptions() error: %v", err)
	}

	wantWindow := render.Window{XMin: -2, XMax: 1.5, YMin: -1.5, YMax: 1.5}
	if opts.Window != wantWindow {
		t.Errorf("Window = %+v, want %+v", opts.Window, wantWindow)
	}
	if opts.IDMode != roots.LegacyIDs {
		t.Errorf("IDMode = %v, want LegacyIDs", opts.IDMode)
	}
	if opts.MaxRetries != 9 {
		t.Errorf("MaxRetries = %d, want 9", opts.MaxRetries)
	}
	if len(opts.Palette) != 1 || opts.Palette[0].B != 3 {
		t.Errorf("Palette = %v", opts.Palette)
	}
}

func TestValidationError_Single(t *testing.T) {
	err := ValidationErrors{{Field: "render.width", Value: -1, Message: "must not be negative"}}
	want := "render.width: must not be negative (got: -1)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should have an empty message")
	}
}
