package renderer

import (
	"errors"
	"testing"

	"github.com/Faultbox/stencil-mirror/internal/engine/material"
	"github.com/Faultbox/stencil-mirror/internal/engine/mesh"
	"github.com/Faultbox/stencil-mirror/internal/engine/renderstate"
	"github.com/Faultbox/stencil-mirror/pkg/math"
)

func TestSaveRestoresState(t *testing.T) {
	r := NewRecorder()
	before := r.State()

	func() {
		defer Save(r)()
		r.SetState(before.StencilWrite(1))
		r.SetState(r.State().StencilMasked().Multiply().Mirrored())
	}()

	if got := r.State(); got != before {
		t.Errorf("state not restored: %v", got.Diff(before))
	}
}

func TestRecorderUploadValidates(t *testing.T) {
	r := NewRecorder()
	bad := &mesh.Mesh{Vertices: make([]mesh.Vertex, 3), Indices: []uint32{0, 1}}
	if _, err := r.Upload(bad); !errors.Is(err, mesh.ErrIndexCount) {
		t.Errorf("Upload(bad) error = %v, want ErrIndexCount", err)
	}

	h, err := r.Upload(mesh.Box(2, 2, 2))
	if err != nil {
		t.Fatalf("Upload(box) = %v", err)
	}
	if h == 0 {
		t.Error("handle should be non-zero")
	}
	r.Release(h)
	if r.Mesh(h) != nil {
		t.Error("released mesh should be gone")
	}
}

func TestRecorderDrawSnapshots(t *testing.T) {
	r := NewRecorder()
	h, _ := r.Upload(mesh.Box(2, 2, 2))

	world := math.Translate(1, 2, 3)
	r.SetWorld(world)
	r.SetMaterial(material.YellowMaterial)
	r.SetTexture(0)
	r.SetState(r.State().Multiply())
	r.DrawFaces(h, 4, 1)
	r.SetState(renderstate.Default())
	r.DrawMesh(h)

	draws := r.Draws()
	if len(draws) != 2 {
		t.Fatalf("got %d draws, want 2", len(draws))
	}

	d := draws[0]
	if d.Op != OpDrawFaces || d.First != 4 || d.Count != 1 {
		t.Errorf("first draw = %+v, want faces 4..5", d)
	}
	if d.World != world || d.Material != material.YellowMaterial {
		t.Error("first draw did not capture world/material")
	}
	if !d.State.Blend.Enabled {
		t.Error("first draw should capture blending state")
	}

	if draws[1].Op != OpDrawMesh || draws[1].Count != 12 {
		t.Errorf("second draw = %+v, want full 12-face mesh", draws[1])
	}
	if draws[1].State.Blend.Enabled {
		t.Error("second draw should run with blending off")
	}
}
