package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Gamma is the display gamma applied after tone mapping
const Gamma = 2.2

// ToneMap compresses a linear radiance into [0,1] relative to the image-wide
// maximum channel value, then gamma corrects it. A zero maximum yields black.
func ToneMap(c core.Vec3, maxValue float64) core.Vec3 {
	if maxValue <= 0 {
		return core.Vec3{}
	}
	return core.NewVec3(
		toneMapChannel(c.X, maxValue),
		toneMapChannel(c.Y, maxValue),
		toneMapChannel(c.Z, maxValue),
	)
}

func toneMapChannel(c, maxValue float64) float64 {
	mapped := c * (1 + c/(maxValue*maxValue)) / (1 + c)
	return math.Pow(mapped, 1/Gamma)
}

// quantize converts a [0,1] channel to 8 bits, clamping out of range values.
// NaN maps to 0.
func quantize(c float64) uint8 {
	if !(c > 0) {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(255 * c)
}

// vec3ToColor converts a [0,1] color to an opaque RGBA value
func vec3ToColor(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
		A: 255,
	}
}
