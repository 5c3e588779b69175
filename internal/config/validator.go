package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/willbeason/newton-fractal/internal/logging"
	"github.com/willbeason/newton-fractal/pkg/palette"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "render.width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidImageExtensions returns the output extensions the encoder understands
func ValidImageExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".bmp"}
}

// ValidFormats returns the list of valid log formats
func ValidFormats() []string {
	return []string{"text", "json"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateRender()...)
	errors = append(errors, c.validateNewton()...)
	errors = append(errors, c.validatePalette()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateRender() []ValidationError {
	var errors []ValidationError
	r := c.Render

	// Zero is allowed here: the CLI asks for the size interactively.
	if r.Width < 0 {
		errors = append(errors, ValidationError{
			Field:   "render.width",
			Value:   r.Width,
			Message: "must not be negative",
		})
	}
	if r.Height < 0 {
		errors = append(errors, ValidationError{
			Field:   "render.height",
			Value:   r.Height,
			Message: "must not be negative",
		})
	}

	if r.XMin >= r.XMax {
		errors = append(errors, ValidationError{
			Field:   "render.x_min",
			Value:   r.XMin,
			Message: fmt.Sprintf("must be less than render.x_max (%v)", r.XMax),
		})
	}
	if r.YMin >= r.YMax {
		errors = append(errors, ValidationError{
			Field:   "render.y_min",
			Value:   r.YMin,
			Message: fmt.Sprintf("must be less than render.y_max (%v)", r.YMax),
		})
	}

	if r.Output == "" {
		errors = append(errors, ValidationError{
			Field:   "render.output",
			Value:   r.Output,
			Message: "must not be empty",
		})
	} else if ext := strings.ToLower(filepath.Ext(r.Output)); !slices.Contains(ValidImageExtensions(), ext) {
		errors = append(errors, ValidationError{
			Field:   "render.output",
			Value:   r.Output,
			Message: fmt.Sprintf("must end in one of %v", ValidImageExtensions()),
		})
	}

	return errors
}

func (c *Config) validateNewton() []ValidationError {
	if c.Newton.MaxRetries < 0 {
		return []ValidationError{{
			Field:   "newton.max_retries",
			Value:   c.Newton.MaxRetries,
			Message: "must not be negative (0 means unbounded)",
		}}
	}
	return nil
}

func (c *Config) validatePalette() []ValidationError {
	if _, err := palette.Parse(c.Palette.Colors); err != nil {
		return []ValidationError{{
			Field:   "palette.colors",
			Value:   c.Palette.Colors,
			Message: err.Error(),
		}}
	}
	return nil
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !logging.IsValidLevel(c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: "must be one of debug, info, warn, error",
		})
	}
	if !slices.Contains(ValidFormats(), strings.ToLower(c.Logging.Format)) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of %v", ValidFormats()),
		})
	}

	return errors
}
