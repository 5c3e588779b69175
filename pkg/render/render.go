// Package render drives the per-pixel Newton solve over a window of the
// complex plane and streams the resulting colors to a PixelSink.
package render

import (
	"context"
	"image/color"

	"github.com/willbeason/newton-fractal/pkg/algebra"
	"github.com/willbeason/newton-fractal/pkg/newton"
	"github.com/willbeason/newton-fractal/pkg/palette"
	"github.com/willbeason/newton-fractal/pkg/roots"
)

// A PixelSink receives every pixel of a render exactly once.
type PixelSink interface {
	SetPixel(x, y int, c color.RGBA)
}

// Window is the rectangle of the complex plane mapped onto the image.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultWindow is [-1.5, 1.5] on both axes.
var DefaultWindow = Window{XMin: -1.5, XMax: 1.5, YMin: -1.5, YMax: 1.5}

// Context is the state of a single render. The Registry fills up as the scan
// proceeds, so a Context must not be reused for a second image.
type Context struct {
	Width, Height int
	Window        Window

	Polynomial algebra.Polynomial
	Derivative algebra.Polynomial

	Solver    *newton.Solver
	Registry  *roots.Registry
	Colorizer palette.Colorizer
}

// Options configure NewContext. Zero values select the defaults.
type Options struct {
	Window     Window
	Palette    palette.Palette
	IDMode     roots.IDMode
	MaxRetries int
}

// NewContext prepares a render of f at width x height.
func NewContext(width, height int, f algebra.Polynomial, opts Options) *Context {
	p := opts.Palette
	if len(p) == 0 {
		p = palette.Default()
	}
	w := opts.Window
	if w == (Window{}) {
		w = DefaultWindow
	}

	solver := newton.NewSolver(f)
	solver.MaxRetries = opts.MaxRetries

	return &Context{
		Width:      width,
		Height:     height,
		Window:     w,
		Polynomial: f,
		Derivative: f.Derivative(),
		Solver:     solver,
		Registry:   roots.NewRegistry(opts.IDMode),
		Colorizer:  palette.NewColorizer(p),
	}
}

// Point returns the complex coordinate of pixel (x, y).
func (c *Context) Point(x, y int) algebra.Complex {
	xStep := (c.Window.XMax - c.Window.XMin) / float64(c.Width)
	yStep := (c.Window.YMax - c.Window.YMin) / float64(c.Height)

	return algebra.Complex{
		Re: c.Window.XMin + float64(x)*xStep,
		Im: c.Window.YMin + float64(y)*yStep,
	}
}

// Pixel computes the color of pixel (x, y), registering its root if new.
func (c *Context) Pixel(x, y int) color.RGBA {
	start := newton.Perturb(c.Point(x, y))
	result := c.Solver.Solve(start)
	id := c.Registry.Identify(result.Z)

	return c.Colorizer.ColorFor(id, result.Iterations())
}

// Render visits every pixel row by row and writes its color to sink.
// Cancellation is checked between rows.
func (c *Context) Render(ctx context.Context, sink PixelSink) error {
	for y := 0; y < c.Height; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		for x := 0; x < c.Width; x++ {
			sink.SetPixel(x, y, c.Pixel(x, y))
		}
	}

	return nil
}
