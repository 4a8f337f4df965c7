package math

// Plane is the set of points x with Normal·x + D == 0.
type Plane struct {
	Normal Vec3
	D      float32
}

// degenerateArea is the squared cross-product length under which three points
// are treated as collinear.
const degenerateArea = 1e-12

// NewPlane builds a plane from its a, b, c, d coefficients.
func NewPlane(a, b, c, d float32) Plane {
	return Plane{Normal: Vec3{a, b, c}, D: d}
}

// PlaneFromPoints returns the plane through a, b and c whose normal is
// (b-a)×(c-a), normalized. ok is false for collinear or coincident points.
func PlaneFromPoints(a, b, c Vec3) (p Plane, ok bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Dot(n) <= degenerateArea {
		return Plane{}, false
	}
	n = n.Normalize()
	return Plane{Normal: n, D: -n.Dot(a)}, true
}

// Normalize scales the plane so its normal has unit length.
func (p Plane) Normalize() Plane {
	l := p.Normal.Length()
	if l == 0 {
		return p
	}
	return Plane{Normal: p.Normal.Scale(1 / l), D: p.D / l}
}

// Distance returns the signed distance from x to the plane.
// It is only a true distance when the plane is normalized.
func (p Plane) Distance(x Vec3) float32 {
	return p.Normal.Dot(x) + p.D
}

// Translate returns the plane moved by offset.
func (p Plane) Translate(offset Vec3) Plane {
	return Plane{Normal: p.Normal, D: p.D - p.Normal.Dot(offset)}
}
