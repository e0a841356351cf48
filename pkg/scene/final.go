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

// buildFinal is the kitchen-sink scene: a field of random-height ground
// boxes under a BVH, an emissive panel, a motion-blurred sphere, dielectric
// and metal spheres, two volumes (one wrapping the whole scene), an
// image-textured sphere, a Perlin sphere, and a rotated cluster of small
// spheres
func buildFinal(seed int64, dataDir string) *renderer.WorldScene {
	camera := renderer.NewCamera(
		core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), core.NewVec3(0, 1, 0),
		40, 1, 0, 10, 0, 1,
		core.NewVec3(0, 0, 0))

	rng := rand.New(rand.NewSource(seed))

	white := material.NewLambertian(texture.NewConstant(core.NewVec3(0.73, 0.73, 0.73)))
	ground := material.NewLambertian(texture.NewConstant(core.NewVec3(0.48, 0.83, 0.53)))

	var list []core.Hitable
	var lights []core.Hitable

	// Ground: a 20x20 grid of boxes with random heights, under its own BVH
	const numBoxes = 20
	var boxList []core.Hitable
	for i := 0; i < numBoxes; i++ {
		for j := 0; j < numBoxes; j++ {
			w := 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := 100 * (rng.Float64() + 0.01)
			boxList = append(boxList, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+w, y1, z0+w),
				ground))
		}
	}
	list = append(list, geometry.NewBVHNode(boxList, 0, 1, rng))

	// Light
	lightMat := material.NewDiffuseLight(texture.NewConstant(core.NewVec3(7, 7, 7)))
	lightShape := geometry.NewLightRect(geometry.PlaneXZ, 123, 423, 147, 412, 554, lightMat)
	list = append(list, geometry.NewFlipNormals(lightShape))
	lights = append(lights, lightShape)

	// Moving sphere, blurred along X over the shutter interval
	center := core.NewVec3(400, 400, 200)
	list = append(list, geometry.NewMovingSphere(
		center, center.Add(core.NewVec3(30, 0, 0)), 0, 1, 50,
		material.NewLambertian(texture.NewConstant(core.NewVec3(0.7, 0.3, 0.1)))))

	// Dielectric and metal spheres
	dielectricSphere := geometry.NewLightSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5))
	list = append(list, dielectricSphere)
	lights = append(lights, dielectricSphere)
	list = append(list, geometry.NewSphere(core.NewVec3(0, 150, 145), 50,
		material.NewMetal(texture.NewConstant(core.NewVec3(0.8, 0.8, 0.9)), 10)))

	// Volumes: a blue fog inside a glass sphere, and a thin mist over the
	// whole scene
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	list = append(list, boundary)
	list = append(list, geometry.NewConstantMedium(boundary, 0.2,
		texture.NewConstant(core.NewVec3(0.2, 0.4, 0.9))))
	worldBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	list = append(list, geometry.NewConstantMedium(worldBoundary, 0.0001,
		texture.NewConstant(core.NewVec3(1, 1, 1))))

	// Image-textured sphere; the texture falls back to white when the asset
	// is missing
	imageTex := loadImageTexture(filepath.Join(dataDir, "guitar.jpg"))
	list = append(list, geometry.NewSphere(core.NewVec3(400, 200, 400), 100,
		material.NewLambertian(imageTex)))

	// Perlin noise sphere
	perTex := texture.NewNoise(0.1, seed)
	list = append(list, geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewLambertian(perTex)))

	// Rotated, translated cluster of small spheres in its own BVH
	const numSmall = 1000
	var cluster []core.Hitable
	for j := 0; j < numSmall; j++ {
		cluster = append(cluster, geometry.NewSphere(
			core.NewVec3(165*rng.Float64(), 165*rng.Float64(), 165*rng.Float64()),
			10, white))
	}
	list = append(list, geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVHNode(cluster, 0, 1, rng), 15),
		core.NewVec3(-100, 270, 395)))

	return renderer.NewWorldScene(camera, list, lights)
}

// loadImageTexture loads an image texture, falling back to the bundled white
// texture with a debug line when the file is missing
func loadImageTexture(path string) texture.Texture {
	img, err := loaders.LoadImage(path)
	if err != nil {
		zap.S().Debugf("could not load texture %s: %v", path, err)
		return texture.NewWhite()
	}
	return texture.NewImage(img.Pixels, img.Width, img.Height)
}
