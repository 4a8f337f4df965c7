package mesh

import (
	"fmt"

	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// FaceCount returns the number of triangular faces (index count / 3).
func (m *Mesh) FaceCount() int {
	return len(m.Indices) / 3
}

// IndexOffset returns the position of face i's first index in the index list.
func IndexOffset(face int) int {
	return face * 3
}

// Face returns the three vertex positions referenced by face i.
func (m *Mesh) Face(i int) (Triangle, error) {
	if i < 0 || i >= m.FaceCount() {
		return Triangle{}, fmt.Errorf("face %d of %d: %w", i, m.FaceCount(), ErrFaceRange)
	}

	var tri Triangle
	base := IndexOffset(i)
	for k := 0; k < 3; k++ {
		idx := m.Indices[base+k]
		if int(idx) >= len(m.Vertices) {
			return Triangle{}, fmt.Errorf("face %d index %d (%d vertices): %w", i, idx, len(m.Vertices), ErrIndexRange)
		}
		tri[k] = math.V3(m.Vertices[idx].Position)
	}
	return tri, nil
}

// Faces calls fn for every face in order, stopping early if fn returns false.
// The mesh must be valid.
func (m *Mesh) Faces(fn func(i int, tri Triangle) bool) {
	for i := 0; i < m.FaceCount(); i++ {
		tri, err := m.Face(i)
		if err != nil {
			return
		}
		if !fn(i, tri) {
			return
		}
	}
}

// Validate checks that indices group into triangles and that every index
// addresses an existing vertex.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: %d indices: %w", m.Name, len(m.Indices), ErrIndexCount)
	}
	if len(m.Indices) == 0 {
		return fmt.Errorf("mesh %q: %w", m.Name, ErrEmpty)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("mesh %q face %d: index %d >= %d: %w", m.Name, i/3, idx, len(m.Vertices), ErrIndexRange)
		}
	}
	return nil
}
