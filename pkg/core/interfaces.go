package core

import "math/rand"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T      float64 // Parameter t along the ray, in units of its direction
	P      Vec3    // Point of intersection
	Normal Vec3    // Surface normal at intersection
	U, V   float64 // Parametric surface coordinates
	Mat    Material
}

// ScatterRecord describes how a material redistributes an incident ray.
// Specular scattering carries a concrete outgoing ray; diffuse scattering
// carries a sampling PDF plus a classic outgoing ray used as a fallback when
// importance sampling is disabled.
type ScatterRecord struct {
	IsSpecular       bool
	SpecularRay      Ray
	Attenuation      Vec3
	Pdf              Pdf
	ScatteredClassic Ray
}

// Material is a surface scattering model
type Material interface {
	// Scatter returns how the incident ray is redistributed at the hit, or
	// false if the ray is absorbed
	Scatter(rayIn Ray, rec HitRecord, rng *rand.Rand) (ScatterRecord, bool)

	// ScatteringPdf returns the material's own directional density for an
	// already-sampled outgoing ray
	ScatteringPdf(rayIn Ray, rec HitRecord, scattered Ray) float64

	// Emitted returns the radiance emitted toward the incident ray
	Emitted(rayIn Ray, rec HitRecord, u, v float64, p Vec3) Vec3

	// Albedo returns the material's base color at the given coordinates
	Albedo(u, v float64, p Vec3) Vec3
}

// Pdf is a probability density over directions. All randomness is explicit:
// callers pass their per-worker RNG instead of the density reaching for a
// process-wide source.
type Pdf interface {
	// Value returns the density of the given direction
	Value(direction Vec3, rng *rand.Rand) float64
	// Generate samples a direction from the density
	Generate(rng *rand.Rand) Vec3
}

// Hitable is any geometric entity a ray can intersect. Hit takes the caller's
// RNG because participating media sample their scatter distance during
// intersection.
type Hitable interface {
	// Hit returns the closest intersection in (tMin, tMax), if any
	Hit(r Ray, tMin, tMax float64, rng *rand.Rand) (*HitRecord, bool)

	// BoundingBox returns an AABB valid over the shutter interval [t0, t1],
	// or false if the entity is unbounded
	BoundingBox(t0, t1 float64) (AABB, bool)

	// PdfValue returns the density of sampling the given direction from
	// origin toward this shape (0 for shapes that cannot be sampled)
	PdfValue(origin, direction Vec3, rng *rand.Rand) float64

	// Random returns a random direction from origin onto this shape
	Random(origin Vec3, rng *rand.Rand) Vec3

	// IsLightShape reports whether the shape participates in explicit light
	// sampling
	IsLightShape() bool
}

// Scene is the view of a world the integrator needs: root geometry, the
// optional importance-sampled light shapes, and the miss color.
type Scene interface {
	World() Hitable
	LightShapes() Hitable
	BackgroundColor() Vec3
}
