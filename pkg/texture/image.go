package texture

import (
	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// Image samples a 2D pixel grid with clamped nearest lookup. V is flipped so
// image row zero maps to the top of the parameterization.
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3 // row-major, top-to-bottom
}

// NewImage creates an image texture from tightly packed row-major pixels
func NewImage(pixels []core.Vec3, width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// NewWhite returns the 1x1 white fallback texture used when an image source
// is missing
func NewWhite() *Image {
	return NewImage([]core.Vec3{core.NewVec3(1, 1, 1)}, 1, 1)
}

// Value implements the Texture interface
func (t *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	i := int(u * float64(t.Width))
	j := int((1 - v) * float64(t.Height))

	if i < 0 {
		i = 0
	}
	if j < 0 {
		j = 0
	}
	if i > t.Width-1 {
		i = t.Width - 1
	}
	if j > t.Height-1 {
		j = t.Height - 1
	}

	return t.Pixels[i+t.Width*j]
}
