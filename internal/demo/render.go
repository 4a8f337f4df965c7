package demo

import (
	"github.com/Faultbox/stencil-mirror/internal/engine/input"
	"github.com/Faultbox/stencil-mirror/internal/engine/mesh"
	"github.com/Faultbox/stencil-mirror/internal/engine/renderer"
	"github.com/Faultbox/stencil-mirror/internal/engine/renderstate"
	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// mirrorRef is the stencil value marking mirror pixels.
const mirrorRef = 1

// fixedPlane is the reflection plane used in PlaneFixed mode, in mirror-local space.
var fixedPlane = math.NewPlane(0, 0, -1, 0)

// PassStats counts what the mirror pass did with each face.
type PassStats struct {
	Faces             int
	Drawn             int
	SkippedBackFacing int
	SkippedDegenerate int
}

// Step advances the scene by dt seconds and renders one frame.
func (s *Scene) Step(dev renderer.Device, keys input.Keyboard, dt float64) PassStats {
	s.Update(keys, clampDelta(dt))
	return s.Render(dev)
}

// Render draws a full frame: clear, opaque pass, mirror pass.
func (s *Scene) Render(dev renderer.Device) PassStats {
	dev.Clear(renderstate.ClearAll)
	dev.SetView(s.Camera.ViewMatrix(), s.Camera.Position())
	dev.SetLight(s.Light)

	s.drawOpaque(dev)
	return s.drawMirror(dev)
}

// drawOpaque draws the teapot then the mirror object under the current state.
func (s *Scene) drawOpaque(dev renderer.Device) {
	for _, o := range []*Object{&s.Teapot, &s.Mirror} {
		dev.SetMaterial(o.Material)
		dev.SetTexture(0)
		dev.SetWorld(o.World())
		dev.DrawMesh(o.Handle)
	}
}

// drawMirror reflects the teapot into every eligible mirror face.
func (s *Scene) drawMirror(dev renderer.Device) PassStats {
	var stats PassStats
	s.Mirror.Mesh.Faces(func(i int, tri mesh.Triangle) bool {
		stats.Faces++

		plane, ok := s.reflectionPlane(tri)
		switch {
		case !ok:
			stats.SkippedDegenerate++
		case s.Policy.SkipBackFaces && !s.facesTeapot(tri):
			stats.SkippedBackFacing++
		default:
			if s.Policy.PlaneMode == PlaneFace {
				// Each face reflects differently, so earlier faces must not
				// leave their mask behind.
				dev.Clear(renderstate.ClearStencil)
			}
			s.drawReflection(dev, i, math.Reflect(plane))
			stats.Drawn++
		}
		return true
	})
	return stats
}

// reflectionPlane returns the world-space plane face tri reflects through.
// ok is false when no plane can be derived and the face must be skipped.
func (s *Scene) reflectionPlane(tri mesh.Triangle) (math.Plane, bool) {
	if s.Policy.PlaneMode == PlaneFace || s.Policy.SkipBackFaces {
		p, ok := tri.Plane()
		if !ok {
			return math.Plane{}, false
		}
		if s.Policy.PlaneMode == PlaneFace {
			return p.Translate(s.Mirror.Position), true
		}
	}
	return fixedPlane.Translate(s.Mirror.Position), true
}

// facesTeapot reports whether the teapot is strictly in front of face tri.
func (s *Scene) facesTeapot(tri mesh.Triangle) bool {
	p, ok := tri.Translate(s.Mirror.Position).Plane()
	return ok && p.Distance(s.Teapot.Position) > 0
}

// drawReflection marks face i in the stencil buffer, then draws the teapot
// transformed by reflect only where the mark is, multiplied into the mirror
// color. The device state is restored on return.
func (s *Scene) drawReflection(dev renderer.Device, face int, reflect math.Mat4) {
	defer renderer.Save(dev)()

	write := dev.State().StencilWrite(mirrorRef)
	dev.SetState(write)
	dev.SetWorld(s.Mirror.World())
	dev.DrawFaces(s.Mirror.Handle, face, 1)

	write.DepthWrite = true
	dev.SetState(write.StencilMasked())
	// The reflection lies behind the mirror surface, whose depth would hide it.
	dev.Clear(renderstate.ClearDepth)

	dev.SetState(write.StencilMasked().Multiply().Mirrored())
	dev.SetWorld(reflect.Mul(s.Teapot.World()))
	dev.SetMaterial(s.Teapot.Material)
	dev.SetTexture(0)
	dev.DrawMesh(s.Teapot.Handle)
}
