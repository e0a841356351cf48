package core

import (
	"math"
	"math/rand"
)

// DegreesToRadians converts degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RandomInUnitSphere returns a random point inside the unit sphere via
// rejection sampling
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := NewVec3(rng.Float64(), rng.Float64(), rng.Float64()).
			Multiply(2.0).
			Subtract(NewVec3(1, 1, 1))
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk returns a random point inside the unit disk in the XY plane
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := NewVec3(rng.Float64(), rng.Float64(), 0).
			Multiply(2.0).
			Subtract(NewVec3(1, 1, 0))
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted direction about +Z in
// basis-local coordinates
func RandomCosineDirection(rng *rand.Rand) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	z := math.Sqrt(1 - r2)
	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * 2 * math.Sqrt(r2)
	y := math.Sin(phi) * 2 * math.Sqrt(r2)
	return NewVec3(x, y, z)
}

// RandomToSphere returns a direction toward a sphere of the given radius at
// the given squared distance, in basis-local coordinates with +Z toward the
// sphere center
func RandomToSphere(radius, distanceSquared float64, rng *rand.Rand) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	z := 1 + r2*(math.Sqrt(math.Max(0, 1-radius*radius/distanceSquared))-1)
	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(math.Max(0, 1-z*z))
	y := math.Sin(phi) * math.Sqrt(math.Max(0, 1-z*z))
	return NewVec3(x, y, z)
}

// Schlick approximates the Fresnel reflectance for the given cosine of the
// incident angle and refractive index
func Schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// SphereUV maps a point on the unit sphere to latitude/longitude texture
// coordinates
func SphereUV(p Vec3) (u, v float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(math.Max(-1, math.Min(1, p.Y)))
	u = 1.0 - (phi+math.Pi)/(2*math.Pi)
	v = (theta + math.Pi/2) / math.Pi
	return u, v
}
