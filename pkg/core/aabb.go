package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBForSphere creates the AABB bounding a sphere
func NewAABBForSphere(center Vec3, radius float64) AABB {
	r := NewVec3(radius, radius, radius)
	return AABB{Min: center.Subtract(r), Max: center.Add(r)}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = MinVec(box.Min, p)
		box.Max = MaxVec(box.Max, p)
	}
	return box
}

// Union returns the box surrounding both boxes
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: MinVec(a.Min, b.Min), Max: MaxVec(a.Max, b.Max)}
}

// Center returns the center point of the box
func (a AABB) Center() Vec3 {
	return a.Min.Add(a.Max).Multiply(0.5)
}

// Contains reports whether the point lies inside the box expanded by eps
func (a AABB) Contains(p Vec3, eps float64) bool {
	return p.X >= a.Min.X-eps && p.X <= a.Max.X+eps &&
		p.Y >= a.Min.Y-eps && p.Y <= a.Max.Y+eps &&
		p.Z >= a.Min.Z-eps && p.Z <= a.Max.Z+eps
}

// Hit tests if a ray intersects the box using the slab method with the
// ray's precomputed inverse direction. No sign sort is done; parallel rays
// produce infinities that fall through the min/max comparisons.
func (a AABB) Hit(r Ray, tMin, tMax float64) bool {
	t0x := (a.Min.X - r.Origin.X) * r.InvDirection.X
	t1x := (a.Max.X - r.Origin.X) * r.InvDirection.X
	t0y := (a.Min.Y - r.Origin.Y) * r.InvDirection.Y
	t1y := (a.Max.Y - r.Origin.Y) * r.InvDirection.Y
	t0z := (a.Min.Z - r.Origin.Z) * r.InvDirection.Z
	t1z := (a.Max.Z - r.Origin.Z) * r.InvDirection.Z

	nearX, farX := math.Min(t0x, t1x), math.Max(t0x, t1x)
	nearY, farY := math.Min(t0y, t1y), math.Max(t0y, t1y)
	nearZ, farZ := math.Min(t0z, t1z), math.Max(t0z, t1z)

	near := math.Max(nearZ, math.Max(nearX, nearY))
	far := math.Min(farZ, math.Min(farX, farY))

	return far >= math.Max(tMin, near) && near < tMax
}
