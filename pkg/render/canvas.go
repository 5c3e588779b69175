package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// A Canvas is a PixelSink that can be persisted once the render is done.
type Canvas interface {
	PixelSink
	Save() error
}

// ImageCanvas is an in-memory image written to Path on Save. The encoder is
// chosen from the file extension.
type ImageCanvas struct {
	Path string

	img *image.NRGBA
}

// NewImageCanvas allocates a black width x height image.
func NewImageCanvas(width, height int, path string) *ImageCanvas {
	return &ImageCanvas{
		Path: path,
		img:  imaging.New(width, height, color.Black),
	}
}

func (c *ImageCanvas) SetPixel(x, y int, col color.RGBA) {
	c.img.SetNRGBA(x, y, color.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A})
}

// Image exposes the underlying pixels.
func (c *ImageCanvas) Image() *image.NRGBA {
	return c.img
}

func (c *ImageCanvas) Save() error {
	if dir := filepath.Dir(c.Path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}

	if err := imaging.Save(c.img, c.Path); err != nil {
		return errors.Wrapf(err, "saving %s", c.Path)
	}

	return nil
}

var _ Canvas = (*ImageCanvas)(nil)
