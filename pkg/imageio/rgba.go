// Package imageio converts the HDR frame accumulator to displayable pixels
// and writes it out as PPM or PNG.
package imageio

import (
	"math"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// EncodeRGBA8 quantizes a normalized color to 8-bit RGBA. Gamma encoding is
// the cheap sqrt approximation; quantization is clamp(floor(255.99*v), 0, 255).
func EncodeRGBA8(col core.Vec4, gammaCorrect bool) (r, g, b, a uint8) {
	c := col
	if gammaCorrect {
		c = core.NewVec4(math.Sqrt(col.X), math.Sqrt(col.Y), math.Sqrt(col.Z), col.W)
	}

	return quantize(c.X), quantize(c.Y), quantize(c.Z), 255
}

func quantize(v float64) uint8 {
	q := int(255.99 * v)
	if q < 0 {
		q = 0
	}
	if q > 255 {
		q = 255
	}
	return uint8(q)
}

// Normalize divides an accumulated buffer by the per-pixel sample count,
// returning a new buffer
func Normalize(buffer []core.Vec4, sampleCount int) []core.Vec4 {
	normalized := make([]core.Vec4, len(buffer))
	scale := 1.0 / float64(sampleCount)
	for i, c := range buffer {
		normalized[i] = c.Multiply(scale)
	}
	return normalized
}
