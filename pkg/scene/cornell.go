package scene

import (
	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/geometry"
	"github.com/mvollmer/go-pathtracer/pkg/material"
	"github.com/mvollmer/go-pathtracer/pkg/renderer"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// buildCornell is the Cornell box: red and green side walls, white floor,
// ceiling and back wall, a top-facing emissive rectangle, a glass sphere and
// a tall rotated box. The light and the glass sphere are importance-sampled.
// When smoke is set the tall box is wrapped in a black constant medium.
func buildCornell(smoke bool) *renderer.WorldScene {
	camera := renderer.NewCamera(
		core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), core.NewVec3(0, 1, 0),
		40, 1, 0, 10, 0, 1,
		core.NewVec3(0, 0, 0))

	red := material.NewLambertian(texture.NewConstant(core.NewVec3(0.65, 0.05, 0.05)))
	white := material.NewLambertian(texture.NewConstant(core.NewVec3(0.73, 0.73, 0.73)))
	green := material.NewLambertian(texture.NewConstant(core.NewVec3(0.12, 0.45, 0.15)))
	light := material.NewDiffuseLight(texture.NewConstant(core.NewVec3(50, 50, 50)))
	glass := material.NewDielectric(1.5)

	lightShape := geometry.NewLightRect(geometry.PlaneXZ, 200, 350, 200, 350, 555, light)
	glassSphere := geometry.NewLightSphere(core.NewVec3(190, 90, 190), 90, glass)

	list := []core.Hitable{
		geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneYZ, 0, 555, 0, 555, 555, green)),
		geometry.NewRect(geometry.PlaneYZ, 0, 555, 0, 555, 0, red),
		geometry.NewFlipNormals(lightShape),
		geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneXZ, 0, 555, 0, 555, 555, white)),
		geometry.NewRect(geometry.PlaneXZ, 0, 555, 0, 555, 0, white),
		geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneXY, 0, 555, 0, 555, 555, white)),
		glassSphere,
	}

	tallBox := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
			15),
		core.NewVec3(265, 0, 295))

	if smoke {
		list = append(list, geometry.NewConstantMedium(
			tallBox, 0.01, texture.NewConstant(core.NewVec3(0, 0, 0))))
	} else {
		list = append(list, tallBox)
	}

	lights := []core.Hitable{lightShape, glassSphere}
	return renderer.NewWorldScene(camera, list, lights)
}
