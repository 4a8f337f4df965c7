package lighting

import (
	"testing"

	"github.com/Faultbox/stencil-mirror/internal/engine/material"
	"github.com/Faultbox/stencil-mirror/pkg/math"
)

func TestNewDirectional(t *testing.T) {
	l := NewDirectional(math.Vec3{X: 1, Y: -1, Z: 1}, material.White)

	if got := l.Direction.Length(); got < 0.999 || got > 1.001 {
		t.Errorf("direction length = %f, want 1", got)
	}
	if l.Diffuse != material.White {
		t.Errorf("diffuse = %+v, want white", l.Diffuse)
	}
	if want := material.White.Scale(0.4); l.Ambient != want {
		t.Errorf("ambient = %+v, want %+v", l.Ambient, want)
	}
	if want := material.White.Scale(0.6); l.Specular != want {
		t.Errorf("specular = %+v, want %+v", l.Specular, want)
	}
}

func TestToLight(t *testing.T) {
	l := NewDirectional(math.Vec3{Y: -2}, material.White)
	if got := l.ToLight(); !got.ApproxEqual(math.Vec3{Y: 1}, 1e-6) {
		t.Errorf("ToLight() = %v, want (0,1,0)", got)
	}
}
