// Package renderer provides the rendering device used by the demo and its
// OpenGL implementation.
package renderer

import (
	"errors"

	"github.com/Faultbox/stencil-mirror/internal/engine/lighting"
	"github.com/Faultbox/stencil-mirror/internal/engine/material"
	"github.com/Faultbox/stencil-mirror/internal/engine/mesh"
	"github.com/Faultbox/stencil-mirror/internal/engine/renderstate"
	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// ErrInvalidMesh is returned when a mesh handle does not refer to an uploaded mesh.
var ErrInvalidMesh = errors.New("invalid mesh handle")

// MeshHandle identifies a mesh uploaded to a Device. The zero value is invalid.
type MeshHandle int

// Device is the rendering device the scene draws through.
//
// The "current" material, texture, world transform and pipeline state are
// shared by every subsequent draw until changed.
type Device interface {
	// Upload copies a validated mesh to the device.
	Upload(m *mesh.Mesh) (MeshHandle, error)
	// Release frees an uploaded mesh.
	Release(h MeshHandle)

	State() renderstate.State
	SetState(s renderstate.State)
	Clear(mask renderstate.ClearMask)

	SetProjection(proj math.Mat4)
	SetView(view math.Mat4, eye math.Vec3)
	SetLight(l lighting.Directional)
	SetWorld(world math.Mat4)
	SetMaterial(m material.Material)
	// SetTexture binds a texture; 0 clears the binding.
	SetTexture(tex uint32)

	// DrawMesh draws every face of the mesh.
	DrawMesh(h MeshHandle)
	// DrawFaces draws count faces starting at face first.
	DrawFaces(h MeshHandle, first, count int)
}

// Save captures the device's pipeline state and returns a function that puts
// it back. Typical use:
//
//	defer renderer.Save(dev)()
func Save(d Device) (restore func()) {
	saved := d.State()
	return func() {
		d.SetState(saved)
	}
}
