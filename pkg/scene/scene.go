// Package scene builds the sample scenes the console binary renders. Build
// takes a master seed that the random, mesh and final builders use for
// object placement, BVH splits and Perlin tables, so those are reproducible;
// the Cornell scenes use no randomness.
package scene

import (
	"fmt"

	"github.com/mvollmer/go-pathtracer/pkg/renderer"
)

// Type identifies a sample scene
type Type int

const (
	Random Type = iota
	Cornell
	CornellSmoke
	Mesh
	Final
)

// Names returns the output names of the sample scenes, in render order
func Names() []string {
	return []string{"random", "cornell1", "cornell2", "mesh", "final"}
}

// Build constructs the requested sample scene. dataDir is the directory
// holding mesh and texture assets (used by Mesh and Final).
func Build(t Type, seed int64, dataDir string) (*renderer.WorldScene, error) {
	switch t {
	case Random:
		return buildRandom(seed), nil
	case Cornell:
		return buildCornell(false), nil
	case CornellSmoke:
		return buildCornell(true), nil
	case Mesh:
		return buildMesh(seed, dataDir)
	case Final:
		return buildFinal(seed, dataDir), nil
	default:
		return nil, fmt.Errorf("unknown scene type %d", t)
	}
}
