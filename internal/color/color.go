// Package color converts between straight sRGB and linear color components.
//
// Vertex colors are stored linear so that the rasterizer interpolates them
// in the space blending happens in. Both directions are offered as exact
// float32 transfer functions and as 8-bit lookup tables for the hot paths
// that start from image/color values.
package color

// RGBA is a color with float32 components, nominally in [0,1].
// Whether RGB is sRGB encoded or linear depends on context.
// Alpha is always linear.
type RGBA struct {
	R, G, B, A float32
}

// ToLinear converts sRGB encoded RGB to linear. Alpha is unchanged.
func (c RGBA) ToLinear() RGBA {
	return RGBA{R: SRGBToLinear(c.R), G: SRGBToLinear(c.G), B: SRGBToLinear(c.B), A: c.A}
}

// ToSRGB converts linear RGB to sRGB encoding. Alpha is unchanged.
func (c RGBA) ToSRGB() RGBA {
	return RGBA{R: LinearToSRGB(c.R), G: LinearToSRGB(c.G), B: LinearToSRGB(c.B), A: c.A}
}

// Array returns the components in R, G, B, A order.
func (c RGBA) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
