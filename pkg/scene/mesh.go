package scene

import (
	"math/rand"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/geometry"
	"github.com/mvollmer/go-pathtracer/pkg/loaders"
	"github.com/mvollmer/go-pathtracer/pkg/material"
	"github.com/mvollmer/go-pathtracer/pkg/renderer"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// buildMesh is the OBJ showcase: a purple floor slab, an emissive ceiling
// panel, three loaded meshes, a glass sphere and a yellow diffuse sphere.
// Meshes that fail to load are skipped with a warning so the scene still
// renders without its assets.
func buildMesh(seed int64, dataDir string) (*renderer.WorldScene, error) {
	camera := renderer.NewCamera(
		core.NewVec3(-495.333893, 303.848877, -828.657288),
		core.NewVec3(-494.744324, 303.853485, -827.849609),
		core.NewVec3(0, 1, 0),
		40, 1, 0, 90, 0, 1,
		core.NewVec3(0, 0, 0))

	rng := rand.New(rand.NewSource(seed))

	colorSapphire := core.NewVec3(0.06, 0.3, 0.7)
	colorYellow := core.NewVec3(1, 1, 0)
	colorPurple := core.NewVec3(0.621, 0.351, 0.988)

	ground := material.NewLambertian(texture.NewConstant(colorPurple))
	lightMat := material.NewDiffuseLight(texture.NewConstant(core.NewVec3(30, 30, 30)))
	lightShape := geometry.NewLightRect(geometry.PlaneXZ, -200, 200, -200, 200, 1000, lightMat)

	list := []core.Hitable{
		geometry.NewBox(core.NewVec3(-2000, -100, -2000), core.NewVec3(2000, 100, 2000), ground),
		geometry.NewFlipNormals(lightShape),
	}

	type meshSpec struct {
		file     string
		scale    float64
		angle    float64
		offset   core.Vec3
		override core.Material
	}
	meshes := []meshSpec{
		{"car.obj", 25, 20, core.NewVec3(220, 105, 145), nil},
		{"totoro.obj", 10, 180, core.NewVec3(-60, 105, 145),
			material.NewMetal(texture.NewConstant(colorSapphire), 0.5)},
		{"luigi.obj", 2, 180, core.NewVec3(-320, 105, -100), nil},
	}
	for _, ms := range meshes {
		mesh, err := loaders.LoadOBJ(filepath.Join(dataDir, ms.file), ms.scale, false, ms.override, rng)
		if err != nil {
			zap.S().Warnf("skipping mesh %s: %v", ms.file, err)
			continue
		}
		list = append(list, geometry.NewTranslate(geometry.NewRotateY(mesh, ms.angle), ms.offset))
	}

	glassSphere := geometry.NewLightSphere(core.NewVec3(359, 300, -300), 150, material.NewDielectric(1.5))
	list = append(list,
		glassSphere,
		geometry.NewSphere(core.NewVec3(500, 250, 100), 125,
			material.NewLambertian(texture.NewConstant(colorYellow))),
	)

	lights := []core.Hitable{lightShape, glassSphere}
	return renderer.NewWorldScene(camera, list, lights), nil
}
