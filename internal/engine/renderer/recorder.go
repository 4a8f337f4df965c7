package renderer

import (
	"github.com/Faultbox/stencil-mirror/internal/engine/lighting"
	"github.com/Faultbox/stencil-mirror/internal/engine/material"
	"github.com/Faultbox/stencil-mirror/internal/engine/mesh"
	"github.com/Faultbox/stencil-mirror/internal/engine/renderstate"
	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// Op names a recorded device call.
type Op string

const (
	OpClear     Op = "clear"
	OpSetState  Op = "state"
	OpDrawMesh  Op = "draw-mesh"
	OpDrawFaces Op = "draw-faces"
)

// Call is one recorded device call. Draws carry a snapshot of everything
// they were issued under.
type Call struct {
	Op       Op
	Mesh     MeshHandle
	First    int
	Count    int
	Clear    renderstate.ClearMask
	State    renderstate.State
	World    math.Mat4
	Material material.Material
	Texture  uint32
}

// Recorder is a Device that keeps no GPU resources and records draws, clears
// and state changes. It backs headless runs and tests.
type Recorder struct {
	Calls []Call

	meshes   []*mesh.Mesh
	state    renderstate.State
	world    math.Mat4
	view     math.Mat4
	proj     math.Mat4
	eye      math.Vec3
	light    lighting.Directional
	material material.Material
	texture  uint32
}

// NewRecorder returns a Recorder in the default render state.
func NewRecorder() *Recorder {
	return &Recorder{
		state: renderstate.Default(),
		world: math.Identity(),
		view:  math.Identity(),
		proj:  math.Identity(),
	}
}

// Reset forgets recorded calls but keeps meshes and device state.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Upload implements Device.
func (r *Recorder) Upload(m *mesh.Mesh) (MeshHandle, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	r.meshes = append(r.meshes, m)
	return MeshHandle(len(r.meshes)), nil
}

// Release implements Device.
func (r *Recorder) Release(h MeshHandle) {
	if h > 0 && int(h) <= len(r.meshes) {
		r.meshes[h-1] = nil
	}
}

// Mesh returns the uploaded mesh for h, or nil.
func (r *Recorder) Mesh(h MeshHandle) *mesh.Mesh {
	if h <= 0 || int(h) > len(r.meshes) {
		return nil
	}
	return r.meshes[h-1]
}

// State implements Device.
func (r *Recorder) State() renderstate.State {
	return r.state
}

// SetState implements Device.
func (r *Recorder) SetState(s renderstate.State) {
	r.state = s
	r.Calls = append(r.Calls, Call{Op: OpSetState, State: s})
}

// Clear implements Device.
func (r *Recorder) Clear(mask renderstate.ClearMask) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Clear: mask, State: r.state})
}

// SetProjection implements Device.
func (r *Recorder) SetProjection(proj math.Mat4) { r.proj = proj }

// SetView implements Device.
func (r *Recorder) SetView(view math.Mat4, eye math.Vec3) {
	r.view = view
	r.eye = eye
}

// View returns the last view matrix and eye position.
func (r *Recorder) View() (math.Mat4, math.Vec3) { return r.view, r.eye }

// SetLight implements Device.
func (r *Recorder) SetLight(l lighting.Directional) { r.light = l }

// SetWorld implements Device.
func (r *Recorder) SetWorld(world math.Mat4) { r.world = world }

// SetMaterial implements Device.
func (r *Recorder) SetMaterial(m material.Material) { r.material = m }

// SetTexture implements Device.
func (r *Recorder) SetTexture(tex uint32) { r.texture = tex }

// DrawMesh implements Device.
func (r *Recorder) DrawMesh(h MeshHandle) {
	count := 0
	if m := r.Mesh(h); m != nil {
		count = m.FaceCount()
	}
	r.draw(OpDrawMesh, h, 0, count)
}

// DrawFaces implements Device.
func (r *Recorder) DrawFaces(h MeshHandle, first, count int) {
	r.draw(OpDrawFaces, h, first, count)
}

func (r *Recorder) draw(op Op, h MeshHandle, first, count int) {
	r.Calls = append(r.Calls, Call{
		Op:       op,
		Mesh:     h,
		First:    first,
		Count:    count,
		State:    r.state,
		World:    r.world,
		Material: r.material,
		Texture:  r.texture,
	})
}

// Draws returns only the recorded draw calls.
func (r *Recorder) Draws() []Call {
	var draws []Call
	for _, c := range r.Calls {
		if c.Op == OpDrawMesh || c.Op == OpDrawFaces {
			draws = append(draws, c)
		}
	}
	return draws
}
