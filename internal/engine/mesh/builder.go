package mesh

import (
	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// builder accumulates vertices and triangles for procedural meshes.
type builder struct {
	vertices []Vertex
	indices  []uint32
}

func (b *builder) addVertex(pos, normal math.Vec3, u, v float32) uint32 {
	b.vertices = append(b.vertices, Vertex{
		Position: pos.Array(),
		Normal:   normal.Array(),
		TexCoord: [2]float32{u, v},
	})
	return uint32(len(b.vertices) - 1)
}

// addTriangle appends a counter-clockwise face. Zero-area faces are dropped.
func (b *builder) addTriangle(i0, i1, i2 uint32) {
	p0 := math.V3(b.vertices[i0].Position)
	p1 := math.V3(b.vertices[i1].Position)
	p2 := math.V3(b.vertices[i2].Position)
	if _, ok := math.PlaneFromPoints(p0, p1, p2); !ok {
		return
	}
	b.indices = append(b.indices, i0, i1, i2)
}

func (b *builder) build(name string) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: b.vertices,
		Indices:  b.indices,
	}
	m.Bounds = computeBounds(m.Vertices)
	return m
}

// ComputeNormals replaces vertex normals with the area-weighted average of the
// face normals sharing each vertex.
func ComputeNormals(m *Mesh) {
	sums := make([]math.Vec3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		p0 := math.V3(m.Vertices[i0].Position)
		p1 := math.V3(m.Vertices[i1].Position)
		p2 := math.V3(m.Vertices[i2].Position)
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		sums[i0] = sums[i0].Add(n)
		sums[i1] = sums[i1].Add(n)
		sums[i2] = sums[i2].Add(n)
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = sums[i].Normalize().Array()
	}
}

// SmoothNormals averages normals at shared vertex positions.
// This hides seams where a surface wraps around onto duplicated vertices.
func SmoothNormals(vertices []Vertex) {
	const epsilon float32 = 0.001

	// Group vertices by quantized position for O(n) lookup
	posMap := make(map[[3]int32][]int)
	for i := range vertices {
		key := [3]int32{
			int32(vertices[i].Position[0] / epsilon),
			int32(vertices[i].Position[1] / epsilon),
			int32(vertices[i].Position[2] / epsilon),
		}
		posMap[key] = append(posMap[key], i)
	}

	for _, idxs := range posMap {
		if len(idxs) < 2 {
			continue
		}

		var sum math.Vec3
		for _, idx := range idxs {
			sum = sum.Add(math.V3(vertices[idx].Normal))
		}

		avg := sum.Normalize().Array()
		for _, idx := range idxs {
			vertices[idx].Normal = avg
		}
	}
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for i := range vertices {
		updateBounds(&b, vertices[i].Position)
	}
	return b
}

func updateBounds(b *Bounds, p [3]float32) {
	for k := 0; k < 3; k++ {
		if p[k] < b.Min[k] {
			b.Min[k] = p[k]
		}
		if p[k] > b.Max[k] {
			b.Max[k] = p[k]
		}
	}
}
