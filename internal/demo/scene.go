// Package demo implements the stencil mirror scene: a teapot reflected in a
// mirror object through a stencil-masked second draw.
package demo

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/stencil-mirror/internal/config"
	"github.com/Faultbox/stencil-mirror/internal/engine/camera"
	"github.com/Faultbox/stencil-mirror/internal/engine/lighting"
	"github.com/Faultbox/stencil-mirror/internal/engine/material"
	"github.com/Faultbox/stencil-mirror/internal/engine/mesh"
	"github.com/Faultbox/stencil-mirror/internal/engine/renderer"
	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// PlaneMode selects how the reflection plane of a mirror face is derived.
type PlaneMode uint8

const (
	// PlaneFixed uses the mirror-local plane z=0 with normal (0,0,-1) for every face.
	PlaneFixed PlaneMode = iota
	// PlaneFace uses the plane through the face's three corners.
	PlaneFace
)

func (m PlaneMode) String() string {
	if m == PlaneFace {
		return config.PlaneFace
	}
	return config.PlaneFixed
}

// ParsePlaneMode maps a config value to a PlaneMode.
func ParsePlaneMode(s string) (PlaneMode, error) {
	switch s {
	case config.PlaneFixed, "":
		return PlaneFixed, nil
	case config.PlaneFace:
		return PlaneFace, nil
	}
	return PlaneFixed, fmt.Errorf("%w: plane mode %q", config.ErrInvalid, s)
}

// MirrorPolicy controls which mirror faces reflect and through which plane.
type MirrorPolicy struct {
	PlaneMode PlaneMode
	// SkipBackFaces skips faces whose own plane does not face the teapot.
	SkipBackFaces bool
}

// Object is a drawable: a mesh placed by a pure translation.
type Object struct {
	Mesh     *mesh.Mesh
	Handle   renderer.MeshHandle
	Position math.Vec3
	Material material.Material
}

// World returns the object's world transform.
func (o *Object) World() math.Mat4 {
	return math.TranslateVec(o.Position)
}

// Rates are per-second input rates.
type Rates struct {
	Angular float32
	Zoom    float32
	Teapot  float32
}

// Scene holds everything a frame reads and the input update mutates.
type Scene struct {
	Camera     *camera.Orbit
	Projection camera.Projection
	Light      lighting.Directional

	Teapot Object
	Mirror Object

	Policy MirrorPolicy
	Rates  Rates
}

// NewScene builds the scene and its meshes from cfg. Meshes are validated but
// not uploaded; call Upload before rendering.
func NewScene(cfg *config.Config) (*Scene, error) {
	mirrorMesh, err := buildMirror(cfg.Scene.Mirror)
	if err != nil {
		return nil, err
	}
	teapotMesh := mesh.Teapot()
	if err := teapotMesh.Validate(); err != nil {
		return nil, fmt.Errorf("teapot mesh: %w", err)
	}

	teapotMat, ok := material.ByName(cfg.Scene.Teapot.Material)
	if !ok {
		return nil, fmt.Errorf("%w: teapot material %q", config.ErrInvalid, cfg.Scene.Teapot.Material)
	}
	mirrorMat, ok := material.ByName(cfg.Scene.Mirror.Material)
	if !ok {
		return nil, fmt.Errorf("%w: mirror material %q", config.ErrInvalid, cfg.Scene.Mirror.Material)
	}

	cam := camera.NewOrbit()
	cam.Angle = cfg.Scene.Camera.Angle
	cam.Radius = cfg.Scene.Camera.Radius
	cam.Height = cfg.Scene.Camera.Height

	s := &Scene{
		Camera:     cam,
		Projection: camera.DefaultProjection(),
		Teapot: Object{
			Mesh:     teapotMesh,
			Position: math.V3(cfg.Scene.Teapot.Position),
			Material: teapotMat,
		},
		Mirror: Object{
			Mesh:     mirrorMesh,
			Position: math.V3(cfg.Scene.Mirror.Position),
			Material: mirrorMat,
		},
	}
	if err := s.Apply(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func buildMirror(mc config.MirrorConfig) (*mesh.Mesh, error) {
	var m *mesh.Mesh
	switch mc.Shape {
	case config.ShapeBox:
		m = mesh.Box(mc.Size, mc.Size, mc.Size)
	case config.ShapeSphere:
		m = mesh.Sphere(mc.SphereRadius, mc.SphereSlices, mc.SphereStacks)
	default:
		return nil, fmt.Errorf("%w: mirror shape %q", config.ErrInvalid, mc.Shape)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("mirror mesh: %w", err)
	}
	return m, nil
}

// Apply takes the hot-reloadable tunables from cfg: rates, mirror policy,
// light, materials and field of view. Positions, camera placement and mesh
// shapes are live state and are left alone.
func (s *Scene) Apply(cfg *config.Config) error {
	mode, err := ParsePlaneMode(cfg.Scene.Mirror.PlaneMode)
	if err != nil {
		return err
	}
	s.Policy = MirrorPolicy{
		PlaneMode:     mode,
		SkipBackFaces: cfg.Scene.Mirror.SkipBackFaces,
	}

	r := cfg.Scene.Rates
	s.Rates = Rates{Angular: r.Angular, Zoom: r.Zoom, Teapot: r.Teapot}

	s.Light = lighting.NewDirectional(math.V3(cfg.Scene.Light.Direction), material.White)

	if m, ok := material.ByName(cfg.Scene.Teapot.Material); ok {
		s.Teapot.Material = m
	}
	if m, ok := material.ByName(cfg.Scene.Mirror.Material); ok {
		s.Mirror.Material = m
	}

	if fov := cfg.Graphics.FOVDegrees; fov > 0 {
		s.Projection.FovY = fov * gomath.Pi / 180
	}
	return nil
}

// Upload sends both meshes to dev.
func (s *Scene) Upload(dev renderer.Device) error {
	h, err := dev.Upload(s.Teapot.Mesh)
	if err != nil {
		return fmt.Errorf("uploading teapot: %w", err)
	}
	s.Teapot.Handle = h

	h, err = dev.Upload(s.Mirror.Mesh)
	if err != nil {
		dev.Release(s.Teapot.Handle)
		s.Teapot.Handle = 0
		return fmt.Errorf("uploading mirror: %w", err)
	}
	s.Mirror.Handle = h
	return nil
}

// Release frees the uploaded meshes.
func (s *Scene) Release(dev renderer.Device) {
	if s.Teapot.Handle != 0 {
		dev.Release(s.Teapot.Handle)
		s.Teapot.Handle = 0
	}
	if s.Mirror.Handle != 0 {
		dev.Release(s.Mirror.Handle)
		s.Mirror.Handle = 0
	}
}
