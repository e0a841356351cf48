package texture

import (
	"math"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// Texture is a color source parameterized by surface coordinates and the
// world-space hit point
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// Constant is a texture with a single color everywhere
type Constant struct {
	Color core.Vec3
}

// NewConstant creates a constant-color texture
func NewConstant(color core.Vec3) *Constant {
	return &Constant{Color: color}
}

// Value implements the Texture interface
func (c *Constant) Value(u, v float64, p core.Vec3) core.Vec3 {
	return c.Color
}

// Checker alternates between two subtextures in a 3D checkerboard driven by
// the sign of a product of sines of the hit point
type Checker struct {
	Even Texture
	Odd  Texture
}

// NewChecker creates a checker texture from two subtextures
func NewChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// Value implements the Texture interface
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
