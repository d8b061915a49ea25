package color

import "github.com/chewxy/math32"

// sRGBToLinearLUT maps an sRGB byte to its linear value.
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT maps linear values quantized to 12 bits to sRGB bytes.
// 4096 entries keep every 8-bit output reachable.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range sRGBToLinearLUT {
		sRGBToLinearLUT[i] = SRGBToLinear(float32(i) / 255)
	}
	for i := range linearToSRGBLUT {
		linearToSRGBLUT[i] = unitToByte(LinearToSRGB(float32(i) / 4095))
	}
}

func linearToSRGBByte(l float32) uint8 {
	if l <= 0 {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return linearToSRGBLUT[int(math32.Round(l*4095))]
}
