package gfx

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/gfx/internal/color"
)

// ErrInvalidColor is returned by ParseColor for unrecognized input.
var ErrInvalidColor = errors.New("gfx: invalid color")

// Color is a straight-alpha sRGB color with components in [0, 1].
// It is what users specify; vertices store the LinearColor equivalent.
type Color struct {
	R, G, B, A float32
}

// LinearColor is a color with linear RGB components, as stored in vertices.
type LinearColor struct {
	R, G, B, A float32
}

// Common colors.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Magenta     = Color{1, 0, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Transparent = Color{0, 0, 0, 0}
)

// NewColor creates a color from sRGB components.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromNRGBA converts an 8-bit color.
func FromNRGBA(c stdcolor.NRGBA) Color {
	f := color.FromNRGBA(c)
	return Color{R: f.R, G: f.G, B: f.B, A: f.A}
}

// ColorFromName looks up an SVG 1.1 color keyword such as "cornflowerblue".
func ColorFromName(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return FromNRGBA(stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}), true
}

// ParseColor accepts an SVG color keyword or a hex string in one of the
// forms #RGB, #RGBA, #RRGGBB or #RRGGBBAA (the # is optional).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := ColorFromName(s); ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var r, g, b, a uint64
	switch len(hex) {
	case 3:
		r, g, b, a = (v>>8&0xf)*17, (v>>4&0xf)*17, (v&0xf)*17, 255
	case 4:
		r, g, b, a = (v>>12&0xf)*17, (v>>8&0xf)*17, (v>>4&0xf)*17, (v&0xf)*17
	case 6:
		r, g, b, a = v>>16&0xff, v>>8&0xff, v&0xff, 255
	case 8:
		r, g, b, a = v>>24&0xff, v>>16&0xff, v>>8&0xff, v&0xff
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return FromNRGBA(stdcolor.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}), nil
}

// Linear converts to linear RGB. Alpha is unchanged.
func (c Color) Linear() LinearColor {
	l := color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.ToLinear()
	return LinearColor{R: l.R, G: l.G, B: l.B, A: l.A}
}

// NRGBA converts to an 8-bit color, clamping components to [0, 1].
func (c Color) NRGBA() stdcolor.NRGBA {
	return color.NRGBAFromLinear(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.ToLinear())
}

// SRGB converts back to sRGB encoding.
func (c LinearColor) SRGB() Color {
	s := color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.ToSRGB()
	return Color{R: s.R, G: s.G, B: s.B, A: s.A}
}

// Array returns the components in R, G, B, A order.
func (c LinearColor) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
