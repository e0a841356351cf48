package loaders

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/geometry"
)

// stlTriangle mirrors the 50-byte packed record of a binary STL file
type stlTriangle struct {
	Normal        [3]float32
	Vert0         [3]float32
	Vert1         [3]float32
	Vert2         [3]float32
	AttrByteCount uint16
}

// LoadSTL reads a binary STL file into a triangle mesh. Positions' Z lane is
// negated to match the renderer's handedness, and the uniform scale is
// applied on load.
func LoadSTL(filePath string, mat core.Material, scale float64, rng *rand.Rand) (*geometry.TriangleMesh, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open stl file: %w", err)
	}
	defer file.Close()

	// 80-byte header, ignored
	var header [80]byte
	if _, err := file.Read(header[:]); err != nil {
		return nil, fmt.Errorf("failed to read stl header: %w", err)
	}

	var numTriangles uint32
	if err := binary.Read(file, binary.LittleEndian, &numTriangles); err != nil {
		return nil, fmt.Errorf("failed to read stl triangle count: %w", err)
	}

	triangles := make([]*geometry.Triangle, 0, numTriangles)
	for i := uint32(0); i < numTriangles; i++ {
		var tri stlTriangle
		if err := binary.Read(file, binary.LittleEndian, &tri); err != nil {
			return nil, fmt.Errorf("failed to read stl triangle %d: %w", i, err)
		}

		normal := stlVec(tri.Normal, 1)
		v0 := geometry.Vertex{Position: stlVec(tri.Vert0, scale), Normal: normal, Color: core.NewVec3(1, 1, 1)}
		v1 := geometry.Vertex{Position: stlVec(tri.Vert1, scale), Normal: normal, Color: core.NewVec3(1, 1, 1)}
		v2 := geometry.Vertex{Position: stlVec(tri.Vert2, scale), Normal: normal, Color: core.NewVec3(1, 1, 1)}

		triangles = append(triangles, geometry.NewTriangle(v0, v1, v2, mat))
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("stl file %s contains no triangles", filePath)
	}

	return geometry.NewTriangleMesh(triangles, mat, rng), nil
}

// stlVec converts an STL float triple, negating Z for handedness
func stlVec(v [3]float32, scale float64) core.Vec3 {
	return core.NewVec3(float64(v[0]), float64(v[1]), -float64(v[2])).Multiply(scale)
}
