package core

// Ray represents a ray with an origin, direction, and shutter time.
// InvDirection caches the component-wise reciprocal of the direction for
// slab tests; parallel rays rely on IEEE infinities falling out of the
// division.
type Ray struct {
	Origin       Vec3
	Direction    Vec3
	InvDirection Vec3
	Time         float64
}

// NewRay creates a new ray with shutter time zero
func NewRay(origin, direction Vec3) Ray {
	return NewRayAtTime(origin, direction, 0)
}

// NewRayAtTime creates a new ray with the given shutter time
func NewRayAtTime(origin, direction Vec3, time float64) Ray {
	return Ray{
		Origin:       origin,
		Direction:    direction,
		InvDirection: Vec3{1.0 / direction.X, 1.0 / direction.Y, 1.0 / direction.Z},
		Time:         time,
	}
}

// At returns the point at parameter t along the ray. The direction is not
// renormalized, so t is in units of the supplied direction.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
