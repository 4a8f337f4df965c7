package mesh

import (
	"errors"
	"testing"

	"github.com/Faultbox/stencil-mirror/pkg/math"
)

func TestPrimitivesFaceCount(t *testing.T) {
	tests := []struct {
		name      string
		mesh      *Mesh
		wantFaces int
	}{
		{"box", Box(2, 2, 2), 12},
		{"sphere", Sphere(5, 16, 8), 16*8*2 - 2*16},
		{"teapot", Teapot(), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.mesh
			if err := m.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if m.FaceCount()*3 != len(m.Indices) {
				t.Errorf("FaceCount() = %d, want %d/3", m.FaceCount(), len(m.Indices))
			}
			if tt.wantFaces >= 0 && m.FaceCount() != tt.wantFaces {
				t.Errorf("FaceCount() = %d, want %d", m.FaceCount(), tt.wantFaces)
			}
			for i, idx := range m.Indices {
				if int(idx) >= len(m.Vertices) {
					t.Fatalf("index %d = %d out of range [0, %d)", i, idx, len(m.Vertices))
				}
			}
		})
	}
}

func TestPrimitivesHaveNoDegenerateFaces(t *testing.T) {
	for _, m := range []*Mesh{Box(2, 2, 2), Sphere(5, 12, 6), Teapot()} {
		m.Faces(func(i int, tri Triangle) bool {
			if _, ok := tri.Plane(); !ok {
				t.Errorf("%s face %d is degenerate: %v", m.Name, i, tri)
			}
			return true
		})
	}
}

// Faces of closed primitives centered on the origin wind counter-clockwise
// seen from outside, so their plane normal points away from the center.
func TestPrimitivesWindOutward(t *testing.T) {
	for _, m := range []*Mesh{Box(2, 2, 2), Sphere(5, 12, 6)} {
		m.Faces(func(i int, tri Triangle) bool {
			p, _ := tri.Plane()
			centroid := tri[0].Add(tri[1]).Add(tri[2]).Scale(1.0 / 3)
			if p.Normal.Dot(centroid) <= 0 {
				t.Errorf("%s face %d winds inward", m.Name, i)
			}
			return true
		})
	}
}

func TestBoxFrontFace(t *testing.T) {
	m := Box(2, 2, 2)
	for _, face := range []int{0, 1} {
		tri, err := m.Face(face)
		if err != nil {
			t.Fatalf("Face(%d) = %v", face, err)
		}
		p, ok := tri.Plane()
		if !ok {
			t.Fatalf("Face(%d) is degenerate", face)
		}
		if !p.Normal.ApproxEqual(math.Vec3{Z: -1}, 1e-6) {
			t.Errorf("Face(%d) normal = %v, want (0,0,-1)", face, p.Normal)
		}
		if d := p.Distance(math.Vec3{}); d > -0.999 || d < -1.001 {
			t.Errorf("Face(%d) origin distance = %f, want -1", face, d)
		}
	}
}

func TestBoxBounds(t *testing.T) {
	m := Box(2, 4, 6)
	want := Bounds{Min: [3]float32{-1, -2, -3}, Max: [3]float32{1, 2, 3}}
	if m.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", m.Bounds, want)
	}
}

func TestTeapotBounds(t *testing.T) {
	b := Teapot().Bounds
	width := b.Max[0] - b.Min[0]
	height := b.Max[1] - b.Min[1]
	if width < 2.5 || width > 3.5 {
		t.Errorf("teapot width = %f, want about 3", width)
	}
	if height < 1.4 || height > 1.8 {
		t.Errorf("teapot height = %f, want about 1.6", height)
	}
	if b.Min[1] > -0.5 || b.Max[1] < 0.5 {
		t.Errorf("teapot not centered vertically: %+v", b)
	}
}

func TestTeapotNormalsAreUnit(t *testing.T) {
	m := Teapot()
	for i, v := range m.Vertices {
		l := math.V3(v.Normal).Length()
		if l < 0.99 || l > 1.01 {
			t.Fatalf("vertex %d normal length = %f", i, l)
		}
	}
}

func TestFaceOutOfRange(t *testing.T) {
	m := Box(2, 2, 2)
	for _, i := range []int{-1, m.FaceCount()} {
		if _, err := m.Face(i); !errors.Is(err, ErrFaceRange) {
			t.Errorf("Face(%d) error = %v, want ErrFaceRange", i, err)
		}
	}
}

func TestFaceResolvesPositions(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{0, 0, 0}},
			{Position: [3]float32{1, 0, 0}},
			{Position: [3]float32{0, 1, 0}},
			{Position: [3]float32{0, 0, 1}},
		},
		Indices: []uint32{0, 1, 2, 3, 2, 1},
	}
	tri, err := m.Face(1)
	if err != nil {
		t.Fatalf("Face(1) = %v", err)
	}
	want := Triangle{{Z: 1}, {Y: 1}, {X: 1}}
	if tri != want {
		t.Errorf("Face(1) = %v, want %v", tri, want)
	}
	if IndexOffset(1) != 3 {
		t.Errorf("IndexOffset(1) = %d, want 3", IndexOffset(1))
	}
}

func TestValidate(t *testing.T) {
	verts := make([]Vertex, 3)
	tests := []struct {
		name string
		mesh *Mesh
		want error
	}{
		{"valid", &Mesh{Vertices: verts, Indices: []uint32{0, 1, 2}}, nil},
		{"partial face", &Mesh{Vertices: verts, Indices: []uint32{0, 1, 2, 0}}, ErrIndexCount},
		{"bad index", &Mesh{Vertices: verts, Indices: []uint32{0, 1, 3}}, ErrIndexRange},
		{"empty", &Mesh{Vertices: verts}, ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFacesStopsEarly(t *testing.T) {
	m := Box(2, 2, 2)
	visited := 0
	m.Faces(func(i int, _ Triangle) bool {
		visited++
		return i < 2
	})
	if visited != 3 {
		t.Errorf("visited %d faces, want 3", visited)
	}
}
