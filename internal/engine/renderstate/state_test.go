package renderstate

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Stencil.Enabled {
		t.Error("stencil should be disabled by default")
	}
	if s.Blend.Enabled {
		t.Error("blending should be disabled by default")
	}
	if s.FrontFace != FrontCCW {
		t.Errorf("front face = %v, want ccw", s.FrontFace)
	}
	if !s.DepthTest || !s.DepthWrite {
		t.Error("depth test and writes should be enabled by default")
	}
	if !s.CullFace {
		t.Error("culling should be enabled by default")
	}
}

func TestStencilWrite(t *testing.T) {
	s := Default().StencilWrite(1)

	want := Stencil{
		Enabled:   true,
		Func:      CompareAlways,
		Ref:       1,
		ReadMask:  StencilMaskAll,
		WriteMask: StencilMaskAll,
		Fail:      OpKeep,
		DepthFail: OpKeep,
		Pass:      OpReplace,
	}
	if s.Stencil != want {
		t.Errorf("stencil = %+v, want %+v", s.Stencil, want)
	}
	if s.DepthWrite {
		t.Error("depth writes should be disabled while writing the stencil mask")
	}
	if s.Blend != (Blend{Enabled: true, Src: BlendZero, Dst: BlendOne}) {
		t.Errorf("blend = %+v, want zero/one", s.Blend)
	}
	if !s.DepthTest {
		t.Error("depth test should stay enabled")
	}
}

func TestStencilMaskedMultiplyMirrored(t *testing.T) {
	write := Default().StencilWrite(1)
	write.DepthWrite = true

	s := write.StencilMasked().Multiply().Mirrored()

	if s.Stencil.Func != CompareEqual {
		t.Errorf("stencil func = %v, want equal", s.Stencil.Func)
	}
	if s.Stencil.Pass != OpKeep {
		t.Errorf("stencil pass = %v, want keep", s.Stencil.Pass)
	}
	if s.Stencil.Ref != 1 {
		t.Errorf("stencil ref = %d, want 1", s.Stencil.Ref)
	}
	if s.Blend != (Blend{Enabled: true, Src: BlendDstColor, Dst: BlendZero}) {
		t.Errorf("blend = %+v, want dst-color/zero", s.Blend)
	}
	if s.FrontFace != FrontCW {
		t.Errorf("front face = %v, want cw", s.FrontFace)
	}
	if !s.DepthWrite {
		t.Error("depth writes should remain enabled")
	}
}

func TestMirroredTwiceIsIdentity(t *testing.T) {
	s := Default()
	if got := s.Mirrored().Mirrored(); got != s {
		t.Errorf("Mirrored twice = %+v, want %+v", got, s)
	}
}

func TestDerivedStatesDoNotMutateReceiver(t *testing.T) {
	base := Default()
	_ = base.StencilWrite(1).StencilMasked().Multiply().Mirrored()
	if base != Default() {
		t.Errorf("receiver mutated: %v", base.Diff(Default()))
	}
}

func TestDiff(t *testing.T) {
	a := Default()
	if d := a.Diff(a); len(d) != 0 {
		t.Errorf("Diff(self) = %v, want none", d)
	}

	b := a.Multiply().Mirrored()
	d := b.Diff(a)
	if len(d) != 2 {
		t.Fatalf("Diff = %v, want 2 entries", d)
	}
	if !strings.HasPrefix(d[0], "blend") || !strings.HasPrefix(d[1], "front face") {
		t.Errorf("Diff = %v, want blend and front face", d)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{CompareEqual.String(), "equal"},
		{OpReplace.String(), "replace"},
		{BlendDstColor.String(), "dst-color"},
		{FrontCW.String(), "cw"},
		{CompareFunc(99).String(), "CompareFunc(99)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
