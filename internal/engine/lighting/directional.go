// Package lighting provides light sources for scene shading.
package lighting

import (
	"github.com/Faultbox/stencil-mirror/internal/engine/material"
	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// Directional is an infinitely distant light shining along Direction.
type Directional struct {
	Direction math.Vec3 // direction the light travels, normalized
	Ambient   material.Color
	Diffuse   material.Color
	Specular  material.Color
}

// NewDirectional builds a directional light of the given color.
// Ambient is 40% and specular 60% of the color.
func NewDirectional(direction math.Vec3, color material.Color) Directional {
	return Directional{
		Direction: direction.Normalize(),
		Ambient:   color.Scale(0.4),
		Diffuse:   color,
		Specular:  color.Scale(0.6),
	}
}

// ToLight returns the unit vector pointing from a surface towards the light.
func (d Directional) ToLight() math.Vec3 {
	return d.Direction.Negate().Normalize()
}
