package scene

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/geometry"
	"github.com/mvollmer/go-pathtracer/pkg/material"
	"github.com/mvollmer/go-pathtracer/pkg/renderer"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// buildRandom is the classic random-sphere field: a checkered ground sphere,
// three large feature spheres, and a grid of small randomized spheres, all
// under one BVH
func buildRandom(seed int64) *renderer.WorldScene {
	camera := renderer.NewCamera(
		core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		20, 1, 0, 10, 0, 1,
		core.NewVec3(0.7, 0.7, 0.7))

	rng := rand.New(rand.NewSource(seed))
	time0, time1 := camera.ShutterInterval()

	checker := texture.NewChecker(
		texture.NewConstant(core.NewVec3(0.2, 0.3, 0.1)),
		texture.NewConstant(core.NewVec3(0.9, 0.9, 0.9)))

	list := []core.Hitable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(checker)),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := core.NewVec3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := texture.NewConstant(core.NewVec3(
					rng.Float64()*rng.Float64(),
					rng.Float64()*rng.Float64(),
					rng.Float64()*rng.Float64()))
				list = append(list, geometry.NewMovingSphere(
					center, center.Add(core.NewVec3(0, 0.5*rng.Float64(), 0)),
					0, 1, 0.2,
					material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := texture.NewConstant(core.NewVec3(
					0.5*(1+rng.Float64()),
					0.5*(1+rng.Float64()),
					0.5*(1+rng.Float64())))
				list = append(list, geometry.NewSphere(center, 0.2,
					material.NewMetal(albedo, 0.5*rng.Float64())))
			default:
				list = append(list, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	list = append(list,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1,
			material.NewLambertian(texture.NewConstant(core.NewVec3(0.4, 0.2, 0.1)))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1,
			material.NewMetal(texture.NewConstant(core.NewVec3(0.7, 0.6, 0.5)), 0)),
	)

	bvh := geometry.NewBVHNode(list, time0, time1, rng)
	return renderer.NewWorldScene(camera, []core.Hitable{bvh}, nil)
}
