package mesh

import (
	gomath "math"

	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// teapotProfile is the body and lid outline as (radius, height) pairs, walked
// from the bottom center out to the rim and back in over the lid to the knob.
var teapotProfile = [][2]float32{
	{0, 0},
	{1.50, 0},
	{1.75, 0.15},
	{1.95, 0.50},
	{2.00, 0.90},
	{1.95, 1.35},
	{1.80, 1.80},
	{1.60, 2.15},
	{1.45, 2.35},
	{1.40, 2.40},
	{1.30, 2.42},
	{1.15, 2.55},
	{0.80, 2.68},
	{0.40, 2.78},
	{0.20, 2.85},
	{0.22, 2.98},
	{0.38, 3.05},
	{0.32, 3.15},
	{0, 3.17},
}

const (
	teapotScale   = 0.5
	teapotYOffset = -1.5 // centers the body on the origin before scaling
	teapotSlices  = 32
	tubeSides     = 12
	tubeSegments  = 16
)

// Teapot builds a procedural teapot: a lathed body and lid, a swept spout on
// +X and a swept handle on -X. It is roughly 3 units wide and 1.6 units tall,
// centered on the origin.
func Teapot() *Mesh {
	var b builder

	lathe(&b, teapotProfile, teapotSlices)

	spout := func(t float32) (math.Vec3, float32) {
		c := quadBezier(
			math.Vec3{X: 1.7, Y: 0.9},
			math.Vec3{X: 2.7, Y: 1.0},
			math.Vec3{X: 3.0, Y: 2.3},
			t,
		)
		return c, 0.45 - 0.3*t
	}
	sweep(&b, spout, tubeSegments, tubeSides)

	handle := func(t float32) (math.Vec3, float32) {
		c := cubicBezier(
			math.Vec3{X: -1.85, Y: 2.0},
			math.Vec3{X: -3.0, Y: 2.15},
			math.Vec3{X: -3.0, Y: 0.55},
			math.Vec3{X: -1.7, Y: 0.75},
			t,
		)
		return c, 0.15
	}
	sweep(&b, handle, tubeSegments, tubeSides)

	for i := range b.vertices {
		p := b.vertices[i].Position
		b.vertices[i].Position = [3]float32{
			p[0] * teapotScale,
			(p[1] + teapotYOffset) * teapotScale,
			p[2] * teapotScale,
		}
	}

	m := b.build("teapot")
	ComputeNormals(m)
	SmoothNormals(m.Vertices)
	return m
}

// lathe revolves profile around the Y axis. Rings on the axis collapse to a
// point and their zero-area triangles are dropped by the builder.
func lathe(b *builder, profile [][2]float32, slices int) {
	base := uint32(len(b.vertices))
	row := uint32(slices + 1)

	for k, p := range profile {
		for j := 0; j <= slices; j++ {
			theta := 2 * gomath.Pi * float64(j) / float64(slices)
			pos := math.Vec3{
				X: p[0] * float32(gomath.Cos(theta)),
				Y: p[1],
				Z: p[0] * float32(gomath.Sin(theta)),
			}
			b.addVertex(pos, math.Vec3{}, float32(j)/float32(slices), float32(k)/float32(len(profile)-1))
		}
	}

	for k := 0; k+1 < len(profile); k++ {
		for j := 0; j < slices; j++ {
			a := base + uint32(k)*row + uint32(j)
			above := a + row
			b.addTriangle(a, above, a+1)
			b.addTriangle(a+1, above, above+1)
		}
	}
}

// sweep extrudes a circle of varying radius along a curve lying in the XY plane.
func sweep(b *builder, curve func(t float32) (math.Vec3, float32), segments, sides int) {
	base := uint32(len(b.vertices))
	row := uint32(sides + 1)
	side := math.Vec3{Z: 1}

	for k := 0; k <= segments; k++ {
		t := float32(k) / float32(segments)
		c, r := curve(t)

		// Central difference tangent, clamped at the ends.
		t0, t1 := t-0.01, t+0.01
		if t0 < 0 {
			t0 = 0
		}
		if t1 > 1 {
			t1 = 1
		}
		p0, _ := curve(t0)
		p1, _ := curve(t1)
		tangent := p1.Sub(p0).Normalize()
		normal := side.Cross(tangent).Normalize()

		for j := 0; j <= sides; j++ {
			phi := 2 * gomath.Pi * float64(j) / float64(sides)
			dir := normal.Scale(float32(gomath.Cos(phi))).Add(side.Scale(float32(gomath.Sin(phi))))
			b.addVertex(c.Add(dir.Scale(r)), math.Vec3{}, float32(j)/float32(sides), t)
		}
	}

	for k := 0; k < segments; k++ {
		for j := 0; j < sides; j++ {
			a := base + uint32(k)*row + uint32(j)
			next := a + row
			b.addTriangle(a, a+1, next)
			b.addTriangle(a+1, next+1, next)
		}
	}
}

func quadBezier(p0, p1, p2 math.Vec3, t float32) math.Vec3 {
	u := 1 - t
	return p0.Scale(u * u).Add(p1.Scale(2 * u * t)).Add(p2.Scale(t * t))
}

func cubicBezier(p0, p1, p2, p3 math.Vec3, t float32) math.Vec3 {
	u := 1 - t
	return p0.Scale(u * u * u).
		Add(p1.Scale(3 * u * u * t)).
		Add(p2.Scale(3 * u * t * t)).
		Add(p3.Scale(t * t * t))
}
