package renderer

import (
	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/geometry"
)

// WorldScene aggregates the root geometry, the optional importance-sampled
// light shapes, and the camera. The world list owns its hitables; the light
// shape list is a non-owning view over objects that also live in the world.
type WorldScene struct {
	world       *geometry.HitableList
	lightShapes *geometry.HitableList
	camera      *Camera
}

// NewWorldScene creates a scene from a camera and hitables. lightShapes may
// be empty.
func NewWorldScene(camera *Camera, hitables []core.Hitable, lightShapes []core.Hitable) *WorldScene {
	ws := &WorldScene{
		world:  geometry.NewHitableList(hitables),
		camera: camera,
	}
	if len(lightShapes) > 0 {
		ws.lightShapes = geometry.NewHitableList(lightShapes)
	}
	return ws
}

// World implements the core.Scene interface
func (ws *WorldScene) World() core.Hitable {
	return ws.world
}

// LightShapes implements the core.Scene interface; nil when the scene has no
// explicitly sampled lights
func (ws *WorldScene) LightShapes() core.Hitable {
	if ws.lightShapes == nil {
		return nil
	}
	return ws.lightShapes
}

// BackgroundColor implements the core.Scene interface
func (ws *WorldScene) BackgroundColor() core.Vec3 {
	return ws.camera.Background
}

// Camera returns the scene's camera
func (ws *WorldScene) Camera() *Camera {
	return ws.camera
}
