package loaders

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/geometry"
	"github.com/mvollmer/go-pathtracer/pkg/material"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// faceVertex is one a/b/c component of an OBJ face directive. Indices are
// zero-based here; -1 marks a missing component, which resolves to the
// default-zeroed attribute.
type faceVertex struct {
	vertIndex     int
	texCoordIndex int
	normIndex     int
}

// LoadOBJ reads a Wavefront OBJ file into a triangle mesh. Recognized
// directives are mtllib, v, vn, vt, o (ignored) and f with 1-based indices;
// quad faces split into triangles (0,1,2) and (1,2,3). When matOverride is
// nil the material comes from the mtllib's map_Kd, falling back to a white
// texture.
func LoadOBJ(filePath string, scale float64, makeMetal bool, matOverride core.Material, rng *rand.Rand) (*geometry.TriangleMesh, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open obj file: %w", err)
	}
	defer file.Close()

	var verts []core.Vec3
	var normals []core.Vec3
	var texCoords [][2]float64
	var faces [][]faceVertex
	mat := matOverride

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) >= 4 {
				verts = append(verts, parseVec(fields[1:4]).Multiply(scale))
			}
		case "vn":
			if len(fields) >= 4 {
				normals = append(normals, parseVec(fields[1:4]).Normalize())
			}
		case "vt":
			if len(fields) >= 3 {
				u, _ := strconv.ParseFloat(fields[1], 64)
				v, _ := strconv.ParseFloat(fields[2], 64)
				texCoords = append(texCoords, [2]float64{u, v})
			}
		case "f":
			face := make([]faceVertex, 0, len(fields)-1)
			for _, comp := range fields[1:] {
				face = append(face, parseFaceVertex(comp))
			}
			if len(face) >= 3 {
				faces = append(faces, face)
			}
		case "mtllib":
			if mat == nil && len(fields) >= 2 {
				mtlPath := filepath.Join(filepath.Dir(filePath), fields[1])
				mat = loadWavefrontMaterial(mtlPath, makeMetal, 0)
			}
		case "o":
			// object names are ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read obj file: %w", err)
	}

	if mat == nil {
		zap.S().Debugf("obj %s has no material library, using white", filePath)
		mat = material.NewWavefront(texture.NewWhite(), makeMetal, 0)
	}

	var triangles []*geometry.Triangle
	for _, face := range faces {
		triangles = append(triangles, buildTriangle(face[0], face[1], face[2], verts, normals, texCoords, mat))
		if len(face) >= 4 {
			triangles = append(triangles, buildTriangle(face[1], face[2], face[3], verts, normals, texCoords, mat))
		}
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("obj file %s contains no faces", filePath)
	}

	return geometry.NewTriangleMesh(triangles, mat, rng), nil
}

// parseVec parses three float fields
func parseVec(fields []string) core.Vec3 {
	x, _ := strconv.ParseFloat(fields[0], 64)
	y, _ := strconv.ParseFloat(fields[1], 64)
	z, _ := strconv.ParseFloat(fields[2], 64)
	return core.NewVec3(x, y, z)
}

// parseFaceVertex parses an a/b/c face component into zero-based indices
func parseFaceVertex(comp string) faceVertex {
	fv := faceVertex{vertIndex: -1, texCoordIndex: -1, normIndex: -1}

	parts := strings.Split(comp, "/")
	if len(parts) > 0 && parts[0] != "" {
		idx, _ := strconv.Atoi(parts[0])
		fv.vertIndex = idx - 1
	}
	if len(parts) > 1 && parts[1] != "" {
		idx, _ := strconv.Atoi(parts[1])
		fv.texCoordIndex = idx - 1
	}
	if len(parts) > 2 && parts[2] != "" {
		idx, _ := strconv.Atoi(parts[2])
		fv.normIndex = idx - 1
	}

	return fv
}

// buildTriangle resolves face indices against the attribute lists; missing
// components yield default-zeroed attributes
func buildTriangle(a, b, c faceVertex, verts, normals []core.Vec3, texCoords [][2]float64, mat core.Material) *geometry.Triangle {
	return geometry.NewTriangle(
		resolveVertex(a, verts, normals, texCoords),
		resolveVertex(b, verts, normals, texCoords),
		resolveVertex(c, verts, normals, texCoords),
		mat,
	)
}

func resolveVertex(fv faceVertex, verts, normals []core.Vec3, texCoords [][2]float64) geometry.Vertex {
	var vert geometry.Vertex
	if fv.vertIndex >= 0 && fv.vertIndex < len(verts) {
		vert.Position = verts[fv.vertIndex]
	}
	if fv.normIndex >= 0 && fv.normIndex < len(normals) {
		vert.Normal = normals[fv.normIndex]
	}
	if fv.texCoordIndex >= 0 && fv.texCoordIndex < len(texCoords) {
		vert.U = texCoords[fv.texCoordIndex][0]
		vert.V = texCoords[fv.texCoordIndex][1]
	}
	return vert
}

// loadWavefrontMaterial parses a .mtl file for its map_Kd texture and builds
// the mesh material. A missing or unreadable map falls back to white.
func loadWavefrontMaterial(mtlPath string, makeMetal bool, fuzz float64) core.Material {
	diffuse := findDiffuseMap(mtlPath)
	return material.NewWavefront(diffuse, makeMetal, fuzz)
}

// findDiffuseMap extracts the map_Kd filename (relative to the material
// file's directory) and loads it
func findDiffuseMap(mtlPath string) texture.Texture {
	file, err := os.Open(mtlPath)
	if err != nil {
		zap.S().Debugf("could not open material file %s: %v", mtlPath, err)
		return texture.NewWhite()
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "map_Kd") {
			continue
		}

		name := strings.TrimSpace(strings.TrimPrefix(line, "map_Kd"))
		texPath := filepath.Join(filepath.Dir(mtlPath), name)
		img, err := LoadImage(texPath)
		if err != nil {
			zap.S().Debugf("could not load diffuse map %s: %v", texPath, err)
			return texture.NewWhite()
		}
		return texture.NewImage(img.Pixels, img.Width, img.Height)
	}

	zap.S().Debugf("no diffuse map in %s, using white", mtlPath)
	return texture.NewWhite()
}
