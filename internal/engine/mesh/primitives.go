package mesh

import (
	gomath "math"

	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// boxSides lists each box side as its outward normal and two in-plane axes
// with u × v == normal, so corners walk counter-clockwise seen from outside.
var boxSides = [6]struct {
	n, u, v math.Vec3
}{
	{math.Vec3{Z: -1}, math.Vec3{X: -1}, math.Vec3{Y: 1}}, // front, facing -Z
	{math.Vec3{Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},   // back
	{math.Vec3{X: -1}, math.Vec3{Z: 1}, math.Vec3{Y: 1}},  // left
	{math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{Y: 1}},  // right
	{math.Vec3{Y: 1}, math.Vec3{X: 1}, math.Vec3{Z: -1}},  // top
	{math.Vec3{Y: -1}, math.Vec3{X: 1}, math.Vec3{Z: 1}},  // bottom
}

// Box builds an axis-aligned box centered at the origin with 12 faces.
// Each side has its own four vertices so normals stay flat.
func Box(width, height, depth float32) *Mesh {
	half := math.Vec3{X: width / 2, Y: height / 2, Z: depth / 2}
	scale := func(v math.Vec3) math.Vec3 {
		return math.Vec3{X: v.X * half.X, Y: v.Y * half.Y, Z: v.Z * half.Z}
	}

	var b builder
	for _, side := range boxSides {
		c := scale(side.n)
		u := scale(side.u)
		v := scale(side.v)

		i0 := b.addVertex(c.Sub(u).Sub(v), side.n, 0, 1)
		i1 := b.addVertex(c.Add(u).Sub(v), side.n, 1, 1)
		i2 := b.addVertex(c.Add(u).Add(v), side.n, 1, 0)
		i3 := b.addVertex(c.Sub(u).Add(v), side.n, 0, 0)
		b.addTriangle(i0, i1, i2)
		b.addTriangle(i0, i2, i3)
	}
	return b.build("box")
}

// Sphere builds a UV sphere centered at the origin.
// Pole rings collapse to a point, so their zero-area triangles are omitted.
func Sphere(radius float32, slices, stacks int) *Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	var b builder
	for i := 0; i <= stacks; i++ {
		phi := gomath.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * gomath.Pi * float64(j) / float64(slices)
			n := math.Vec3{
				X: float32(gomath.Sin(phi) * gomath.Cos(theta)),
				Y: float32(gomath.Cos(phi)),
				Z: float32(gomath.Sin(phi) * gomath.Sin(theta)),
			}
			b.addVertex(n.Scale(radius), n, float32(j)/float32(slices), float32(i)/float32(stacks))
		}
	}

	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*row + uint32(j)
			below := a + row
			b.addTriangle(a, a+1, below)
			b.addTriangle(a+1, below+1, below)
		}
	}
	return b.build("sphere")
}
