package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// DarkenPerIteration is how much each channel loses per Newton iteration.
const DarkenPerIteration = 3

// DefaultHex is magenta, aqua and lime.
var DefaultHex = []string{"#ff00ff", "#00ffff", "#00ff00"}

// A Palette is the ordered set of base colors, one per root identifier
// modulo its length.
type Palette []color.RGBA

// Default returns a fresh copy of the default palette.
func Default() Palette {
	return Palette{
		{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
		{R: 0x00, G: 0xff, B: 0xff, A: 0xff},
		{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	}
}

// Parse reads "#rrggbb" (or "#rgb") strings into a Palette.
func Parse(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, errors.New("palette must have at least one color")
	}

	p := make(Palette, 0, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, errors.Wrapf(err, "palette color %d", i)
		}

		r, g, b := c.RGB255()
		p = append(p, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}

	return p, nil
}

// Colorizer maps a root identifier and iteration count to a pixel color.
type Colorizer struct {
	Palette Palette
}

// NewColorizer returns a Colorizer over p.
func NewColorizer(p Palette) Colorizer {
	return Colorizer{Palette: p}
}

// ColorFor picks the base color for rootID and darkens every channel by
// DarkenPerIteration per iteration, clamping at black.
func (c Colorizer) ColorFor(rootID, iterations int) color.RGBA {
	n := len(c.Palette)
	idx := rootID % n
	if idx < 0 {
		idx += n
	}
	base := c.Palette[idx]

	dark := iterations * DarkenPerIteration
	return color.RGBA{
		R: darken(base.R, dark),
		G: darken(base.G, dark),
		B: darken(base.B, dark),
		A: 0xff,
	}
}

func darken(channel uint8, by int) uint8 {
	v := int(channel) - by
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	}
	return uint8(v)
}
