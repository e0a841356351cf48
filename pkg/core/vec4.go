package core

// Vec4 is a four-lane float value used for the HDR frame accumulator:
// RGB in the first three lanes plus an alpha lane.
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two Vec4 values
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// AddVec3 accumulates an RGB sample into the color lanes
func (v Vec4) AddVec3(c Vec3) Vec4 {
	return Vec4{v.X + c.X, v.Y + c.Y, v.Z + c.Z, v.W}
}

// Multiply returns the Vec4 scaled by a scalar
func (v Vec4) Multiply(scalar float64) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// RGB returns the color lanes as a Vec3
func (v Vec4) RGB() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
