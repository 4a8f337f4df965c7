// Package renderstate models the fixed-function pipeline state (stencil, depth,
// blending and culling) as a plain value.
//
// A device applies a State as a whole, so a render pass can capture the state
// it starts with and put it back when it is done instead of undoing each
// setting by hand.
package renderstate

import "fmt"

// CompareFunc is a stencil or depth comparison.
type CompareFunc uint8

const (
	CompareAlways CompareFunc = iota
	CompareNever
	CompareEqual
	CompareNotEqual
	CompareLess
	CompareLessEqual
	CompareGreater
	CompareGreaterEqual
)

var compareNames = [...]string{"always", "never", "equal", "not-equal", "less", "less-equal", "greater", "greater-equal"}

func (f CompareFunc) String() string {
	if int(f) < len(compareNames) {
		return compareNames[f]
	}
	return fmt.Sprintf("CompareFunc(%d)", uint8(f))
}

// StencilOp is the action taken on a stencil value.
type StencilOp uint8

const (
	OpKeep StencilOp = iota
	OpZero
	OpReplace
	OpIncr
	OpDecr
	OpInvert
)

var opNames = [...]string{"keep", "zero", "replace", "incr", "decr", "invert"}

func (op StencilOp) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("StencilOp(%d)", uint8(op))
}

// BlendFactor scales a source or destination color during blending.
type BlendFactor uint8

const (
	BlendOne BlendFactor = iota
	BlendZero
	BlendSrcColor
	BlendDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
)

var blendNames = [...]string{"one", "zero", "src-color", "dst-color", "src-alpha", "one-minus-src-alpha"}

func (b BlendFactor) String() string {
	if int(b) < len(blendNames) {
		return blendNames[b]
	}
	return fmt.Sprintf("BlendFactor(%d)", uint8(b))
}

// FrontFace is the winding that marks a triangle as front facing.
// Back faces are culled when culling is enabled.
type FrontFace uint8

const (
	FrontCCW FrontFace = iota
	FrontCW
)

func (f FrontFace) String() string {
	if f == FrontCW {
		return "cw"
	}
	return "ccw"
}

// ClearMask selects buffers to clear.
type ClearMask uint8

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
	ClearStencil

	ClearAll = ClearColor | ClearDepth | ClearStencil
)

// StencilMaskAll enables all bits of the 8-bit stencil buffer.
const StencilMaskAll uint32 = 0xFF

// Stencil configures the stencil test.
type Stencil struct {
	Enabled   bool
	Func      CompareFunc
	Ref       int32
	ReadMask  uint32
	WriteMask uint32
	Fail      StencilOp // stencil test failed
	DepthFail StencilOp // stencil passed, depth failed
	Pass      StencilOp // both passed
}

// Blend configures color blending: out = src*Src + dst*Dst.
type Blend struct {
	Enabled bool
	Src     BlendFactor
	Dst     BlendFactor
}

// State is the complete pipeline state a draw runs under.
type State struct {
	Stencil    Stencil
	DepthTest  bool
	DepthWrite bool
	Blend      Blend
	CullFace   bool
	FrontFace  FrontFace
}

// Default returns the baseline state: depth test and writes on, back faces of
// counter-clockwise geometry culled, no blending, no stencil test.
func Default() State {
	return State{
		Stencil: Stencil{
			Func:      CompareAlways,
			ReadMask:  StencilMaskAll,
			WriteMask: StencilMaskAll,
			Fail:      OpKeep,
			DepthFail: OpKeep,
			Pass:      OpKeep,
		},
		DepthTest:  true,
		DepthWrite: true,
		Blend:      Blend{Src: BlendOne, Dst: BlendZero},
		CullFace:   true,
		FrontFace:  FrontCCW,
	}
}

// StencilWrite derives from s the state that rasterizes geometry into the
// stencil buffer only: every covered pixel gets ref, depth and color are
// left untouched.
func (s State) StencilWrite(ref int32) State {
	s.Stencil = Stencil{
		Enabled:   true,
		Func:      CompareAlways,
		Ref:       ref,
		ReadMask:  StencilMaskAll,
		WriteMask: StencilMaskAll,
		Fail:      OpKeep,
		DepthFail: OpKeep,
		Pass:      OpReplace,
	}
	s.DepthWrite = false
	s.Blend = Blend{Enabled: true, Src: BlendZero, Dst: BlendOne}
	return s
}

// StencilMasked derives from s the state that draws only where the stencil
// value equals the reference, leaving the stencil buffer unchanged.
func (s State) StencilMasked() State {
	s.Stencil.Enabled = true
	s.Stencil.Func = CompareEqual
	s.Stencil.Pass = OpKeep
	return s
}

// Multiply derives from s the state that multiplies the incoming color into
// the framebuffer (src*dst).
func (s State) Multiply() State {
	s.Blend = Blend{Enabled: true, Src: BlendDstColor, Dst: BlendZero}
	return s
}

// Mirrored derives from s the state for geometry whose winding was flipped by a
// reflection: the front face convention is inverted.
func (s State) Mirrored() State {
	if s.FrontFace == FrontCCW {
		s.FrontFace = FrontCW
	} else {
		s.FrontFace = FrontCCW
	}
	return s
}

// Diff lists the fields that differ between s and other.
func (s State) Diff(other State) []string {
	var diffs []string
	add := func(name string, a, b any) {
		if a != b {
			diffs = append(diffs, fmt.Sprintf("%s: %v != %v", name, a, b))
		}
	}
	add("stencil", s.Stencil, other.Stencil)
	add("depth test", s.DepthTest, other.DepthTest)
	add("depth write", s.DepthWrite, other.DepthWrite)
	add("blend", s.Blend, other.Blend)
	add("cull", s.CullFace, other.CullFace)
	add("front face", s.FrontFace, other.FrontFace)
	return diffs
}
