package color

import (
	stdcolor "image/color"

	"github.com/chewxy/math32"
)

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1.0/2.4) - 0.055
}

// FromNRGBA converts an 8-bit straight-alpha sRGB color to float components,
// still sRGB encoded.
func FromNRGBA(c stdcolor.NRGBA) RGBA {
	return RGBA{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// LinearFromNRGBA converts an 8-bit sRGB color straight to linear floats
// through the lookup table.
func LinearFromNRGBA(c stdcolor.NRGBA) RGBA {
	return RGBA{
		R: sRGBToLinearLUT[c.R],
		G: sRGBToLinearLUT[c.G],
		B: sRGBToLinearLUT[c.B],
		A: float32(c.A) / 255,
	}
}

// NRGBAFromLinear converts linear floats to an 8-bit sRGB color through the
// lookup table. Components are clamped to [0,1].
func NRGBAFromLinear(c RGBA) stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: linearToSRGBByte(c.R),
		G: linearToSRGBByte(c.G),
		B: linearToSRGBByte(c.B),
		A: unitToByte(c.A),
	}
}

// unitToByte clamps v to [0,1] and scales it to [0,255] with rounding.
func unitToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
