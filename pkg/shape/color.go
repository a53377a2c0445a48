package shape

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is an opaque RGB fill color.
type Color struct {
	R, G, B uint8
}

// DefaultColor is the fill used when no color is given.
var DefaultColor = Color{R: 0, G: 0, B: 255}

// RGB returns the color (r, g, b).
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses a "#rrggbb" or "#rgb" hex string.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, errors.Wrapf(err, "parse color %q", hex)
	}
	return fromColorful(c), nil
}

// RGBA implements color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xffff
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.toColorful().Hex()
}

// Floats returns the channels scaled to [0, 1].
func (c Color) Floats() (r, g, b float64) {
	cf := c.toColorful()
	return cf.R, cf.G, cf.B
}

// Shade blends c toward black. f=1 keeps c, f=0 gives black.
func (c Color) Shade(f float64) Color {
	black := colorful.Color{}
	return fromColorful(black.BlendRgb(c.toColorful(), f).Clamped())
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}
