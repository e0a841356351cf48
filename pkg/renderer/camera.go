package renderer

import (
	"math"
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// Camera is a thin-lens camera with a shutter interval for motion blur
type Camera struct {
	LookFrom   core.Vec3
	LookAt     core.Vec3
	Up         core.Vec3
	VertFov    float64 // vertical field of view in degrees
	Aspect     float64
	Aperture   float64
	FocusDist  float64
	Time0      float64
	Time1      float64
	Background core.Vec3

	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera and derives its internal frame
func NewCamera(lookFrom, lookAt, up core.Vec3, vertFov, aspect, aperture, focusDist, time0, time1 float64, background core.Vec3) *Camera {
	c := &Camera{
		LookFrom:   lookFrom,
		LookAt:     lookAt,
		Up:         up,
		VertFov:    vertFov,
		Aspect:     aspect,
		Aperture:   aperture,
		FocusDist:  focusDist,
		Time0:      time0,
		Time1:      time1,
		Background: background,
	}
	c.update()
	return c
}

// update rederives the orthonormal frame and viewport spans
func (c *Camera) update() {
	theta := core.DegreesToRadians(c.VertFov)
	halfHeight := math.Tan(theta / 2)
	halfWidth := c.Aspect * halfHeight

	c.origin = c.LookFrom
	c.w = c.LookFrom.Subtract(c.LookAt).Normalize()
	c.u = c.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)
	c.lensRadius = c.Aperture / 2

	c.lowerLeftCorner = c.origin.
		Subtract(c.u.Multiply(halfWidth * c.FocusDist)).
		Subtract(c.v.Multiply(halfHeight * c.FocusDist)).
		Subtract(c.w.Multiply(c.FocusDist))
	c.horizontal = c.u.Multiply(2 * halfWidth * c.FocusDist)
	c.vertical = c.v.Multiply(2 * halfHeight * c.FocusDist)
}

// SetAspect changes the aspect ratio and rederives the frame
func (c *Camera) SetAspect(aspect float64) {
	c.Aspect = aspect
	c.update()
}

// SetFocusDistanceToLookAt focuses the lens on the look-at point
func (c *Camera) SetFocusDistanceToLookAt() {
	c.FocusDist = c.LookAt.Subtract(c.LookFrom).Length()
	c.update()
}

// GetRay returns a primary ray through normalized image coordinates
// (s, t) in [0,1]^2, with a lens-disk origin perturbation and a shutter time
// uniform in [Time0, Time1]
func (c *Camera) GetRay(s, t float64, rng *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(rng).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	time := c.Time0 + rng.Float64()*(c.Time1-c.Time0)

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRayAtTime(origin, direction, time)
}

// ShutterInterval returns the camera's shutter time range
func (c *Camera) ShutterInterval() (t0, t1 float64) {
	return c.Time0, c.Time1
}
