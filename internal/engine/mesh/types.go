// Package mesh provides indexed triangle meshes, a read-only face accessor and
// procedural primitives for the demo scene.
package mesh

import (
	"errors"

	"github.com/Faultbox/stencil-mirror/pkg/math"
)

var (
	// ErrIndexCount is returned when the index list does not group into triangles.
	ErrIndexCount = errors.New("index count is not a multiple of 3")
	// ErrIndexRange is returned when an index addresses a missing vertex.
	ErrIndexRange = errors.New("index out of vertex range")
	// ErrFaceRange is returned when a face number is outside [0, FaceCount).
	ErrFaceRange = errors.New("face out of range")
	// ErrEmpty is returned for meshes without any face.
	ErrEmpty = errors.New("mesh has no faces")
)

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
// The layout matches the interleaved VBO stride of 32 bytes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Mesh holds vertex and index data ready for GPU upload.
// Indices are grouped in triples, one triple per triangular face.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Triangle holds the three corner positions of a face.
type Triangle [3]math.Vec3

// Plane returns the plane through the triangle's corners, oriented by its
// counter-clockwise winding. ok is false for zero-area triangles.
func (t Triangle) Plane() (math.Plane, bool) {
	return math.PlaneFromPoints(t[0], t[1], t[2])
}

// Translate returns the triangle moved by offset.
func (t Triangle) Translate(offset math.Vec3) Triangle {
	return Triangle{t[0].Add(offset), t[1].Add(offset), t[2].Add(offset)}
}
