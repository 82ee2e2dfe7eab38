package scene

import (
	"math"

	"github.com/alucas2/raytracing-potato/types"
)

// A linear RGB color with unbounded components.
type Color = types.Vec3

// Define a color from its components.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

func clampAndCast(x float64) uint8 {
	return uint8(255.0 * math.Min(math.Max(x, 0.0), 1.0))
}

// Convert a linear color to 8-bit RGBA without gamma correction.
func ToRGBA8(color Color) [4]uint8 {
	return [4]uint8{clampAndCast(color[0]), clampAndCast(color[1]), clampAndCast(color[2]), 0xff}
}

// Convert a linear color to gamma-corrected 8-bit RGBA.
func ToSRGBA8(color Color) [4]uint8 {
	const invGamma = 1.0 / 2.2
	return [4]uint8{
		clampAndCast(math.Pow(math.Min(math.Max(color[0], 0.0), 1.0), invGamma)),
		clampAndCast(math.Pow(math.Min(math.Max(color[1], 0.0), 1.0), invGamma)),
		clampAndCast(math.Pow(math.Min(math.Max(color[2], 0.0), 1.0), invGamma)),
		0xff,
	}
}
