package demo

import "github.com/Faultbox/stencil-mirror/internal/engine/input"

// Update integrates held keys over dt seconds:
// A/S rotate the camera, Up/Down zoom, Left/Right slide the teapot along Z.
// Nothing is clamped. dt <= 0 leaves the scene unchanged.
func (s *Scene) Update(keys input.Keyboard, dt float32) {
	if dt <= 0 {
		return
	}

	if keys.Pressed(input.KeyA) {
		s.Camera.Rotate(-s.Rates.Angular * dt)
	}
	if keys.Pressed(input.KeyS) {
		s.Camera.Rotate(s.Rates.Angular * dt)
	}

	if keys.Pressed(input.KeyUp) {
		s.Camera.Zoom(-s.Rates.Zoom * dt)
	}
	if keys.Pressed(input.KeyDown) {
		s.Camera.Zoom(s.Rates.Zoom * dt)
	}

	if keys.Pressed(input.KeyLeft) {
		s.Teapot.Position.Z -= s.Rates.Teapot * dt
	}
	if keys.Pressed(input.KeyRight) {
		s.Teapot.Position.Z += s.Rates.Teapot * dt
	}
}

// clampDelta converts a frame delta to the update's float32 seconds.
// Negative deltas (clock adjustments) become 0.
func clampDelta(dt float64) float32 {
	if dt < 0 {
		return 0
	}
	return float32(dt)
}
