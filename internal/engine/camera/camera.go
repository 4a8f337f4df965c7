// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// Default orbit placement: behind the mirror looking down +Z, slightly raised.
const (
	DefaultAngle  = float32(3 * gomath.Pi / 2)
	DefaultRadius = 17.0
	DefaultHeight = 1.0
)

// Orbit circles the origin at a fixed height.
// Angle and Radius are polar coordinates in the XZ plane. Neither is clamped,
// so a negative radius puts the eye on the opposite side.
type Orbit struct {
	Angle  float32 // radians
	Radius float32
	Height float32

	Target math.Vec3
	Up     math.Vec3
}

// NewOrbit creates an orbit camera with default placement.
func NewOrbit() *Orbit {
	return &Orbit{
		Angle:  DefaultAngle,
		Radius: DefaultRadius,
		Height: DefaultHeight,
		Up:     math.Vec3{Y: 1},
	}
}

// Position returns the eye position in world space.
func (c *Orbit) Position() math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Cos(float64(c.Angle))) * c.Radius,
		Y: c.Height,
		Z: float32(gomath.Sin(float64(c.Angle))) * c.Radius,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Orbit) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, c.Up)
}

// Rotate advances the orbit angle by delta radians.
func (c *Orbit) Rotate(delta float32) {
	c.Angle += delta
}

// Zoom changes the orbit radius by delta.
func (c *Orbit) Zoom(delta float32) {
	c.Radius += delta
}

// Projection holds perspective projection parameters.
type Projection struct {
	FovY float32 // radians
	Near float32
	Far  float32
}

// DefaultProjection is a 45 degree perspective from 1 to 1000 units.
func DefaultProjection() Projection {
	return Projection{FovY: gomath.Pi / 4, Near: 1, Far: 1000}
}

// Matrix returns the projection matrix for a viewport of the given size.
func (p Projection) Matrix(width, height int) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(p.FovY, aspect, p.Near, p.Far)
}
