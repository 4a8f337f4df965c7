package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/stencil-mirror/internal/engine/lighting"
	"github.com/Faultbox/stencil-mirror/internal/engine/material"
	"github.com/Faultbox/stencil-mirror/internal/engine/mesh"
	"github.com/Faultbox/stencil-mirror/internal/engine/renderer/shaders"
	"github.com/Faultbox/stencil-mirror/internal/engine/renderstate"
	"github.com/Faultbox/stencil-mirror/internal/engine/shader"
	"github.com/Faultbox/stencil-mirror/internal/logger"
	"github.com/Faultbox/stencil-mirror/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// gpuMesh holds the GL objects of an uploaded mesh.
type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	faceCount  int
}

// GL is the OpenGL 4.1 core implementation of Device.
// IMPORTANT: Must be created AFTER the OpenGL context exists, and used only
// from the thread that owns it.
type GL struct {
	config Config

	program uint32

	// Uniform locations
	locWorld         int32
	locView          int32
	locProj          int32
	locMatAmbient    int32
	locMatDiffuse    int32
	locMatSpecular   int32
	locMatEmissive   int32
	locMatPower      int32
	locLightDir      int32
	locLightAmbient  int32
	locLightDiffuse  int32
	locLightSpecular int32
	locEyePos        int32
	locTexture       int32
	locUseTexture    int32

	meshes []gpuMesh
	state  renderstate.State
}

// New creates the OpenGL device.
func New(cfg Config) (*GL, error) {
	d := &GL{config: cfg}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	var stencilBits int32
	gl.GetFramebufferAttachmentParameteriv(gl.FRAMEBUFFER, gl.STENCIL, gl.FRAMEBUFFER_ATTACHMENT_STENCIL_SIZE, &stencilBits)
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
		zap.Int32("stencil_bits", stencilBits),
	)
	if stencilBits == 0 {
		logger.Warn("default framebuffer has no stencil buffer, mirror will not be masked")
	}

	program, err := shader.CompileProgram(shaders.LitVertexShader, shaders.LitFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("lit shader: %w", err)
	}
	d.program = program

	d.locWorld = shader.GetUniform(program, "uWorld")
	d.locView = shader.GetUniform(program, "uView")
	d.locProj = shader.GetUniform(program, "uProj")
	d.locMatAmbient = shader.GetUniform(program, "uMatAmbient")
	d.locMatDiffuse = shader.GetUniform(program, "uMatDiffuse")
	d.locMatSpecular = shader.GetUniform(program, "uMatSpecular")
	d.locMatEmissive = shader.GetUniform(program, "uMatEmissive")
	d.locMatPower = shader.GetUniform(program, "uMatPower")
	d.locLightDir = shader.GetUniform(program, "uLightDir")
	d.locLightAmbient = shader.GetUniform(program, "uLightAmbient")
	d.locLightDiffuse = shader.GetUniform(program, "uLightDiffuse")
	d.locLightSpecular = shader.GetUniform(program, "uLightSpecular")
	d.locEyePos = shader.GetUniform(program, "uEyePos")
	d.locTexture = shader.GetUniform(program, "uTexture")
	d.locUseTexture = shader.GetUniform(program, "uUseTexture")

	gl.UseProgram(d.program)
	gl.Uniform1i(d.locTexture, 0)
	gl.Uniform1i(d.locUseTexture, 0)

	// Black background, far depth, empty stencil.
	gl.ClearColor(0, 0, 0, 1)
	gl.ClearDepth(1)
	gl.ClearStencil(0)
	gl.DepthFunc(gl.LESS)
	gl.CullFace(gl.BACK)

	d.apply(renderstate.Default(), true)
	d.Resize(cfg.Width, cfg.Height)

	return d, nil
}

// Close releases all GL resources.
func (d *GL) Close() {
	logger.Info("closing renderer")
	for i := range d.meshes {
		d.Release(MeshHandle(i + 1))
	}
	d.meshes = nil
	if d.program != 0 {
		gl.DeleteProgram(d.program)
		d.program = 0
	}
}

// Resize handles window resize.
func (d *GL) Resize(width, height int) {
	d.config.Width = width
	d.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Upload implements Device.
func (d *GL) Upload(m *mesh.Mesh) (MeshHandle, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	var gm gpuMesh
	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	vertexSize := int(unsafe.Sizeof(mesh.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	gm.indexCount = int32(len(m.Indices))
	gm.faceCount = m.FaceCount()
	d.meshes = append(d.meshes, gm)

	logger.Debug("mesh uploaded",
		zap.String("name", m.Name),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", gm.faceCount),
		zap.Uint32("vao", gm.vao),
	)
	return MeshHandle(len(d.meshes)), nil
}

// Release implements Device.
func (d *GL) Release(h MeshHandle) {
	gm := d.lookup(h)
	if gm == nil {
		return
	}
	if gm.vao != 0 {
		gl.DeleteVertexArrays(1, &gm.vao)
	}
	if gm.vbo != 0 {
		gl.DeleteBuffers(1, &gm.vbo)
	}
	if gm.ebo != 0 {
		gl.DeleteBuffers(1, &gm.ebo)
	}
	*gm = gpuMesh{}
}

func (d *GL) lookup(h MeshHandle) *gpuMesh {
	if h <= 0 || int(h) > len(d.meshes) {
		return nil
	}
	gm := &d.meshes[h-1]
	if gm.vao == 0 {
		return nil
	}
	return gm
}

// State implements Device.
func (d *GL) State() renderstate.State {
	return d.state
}

// SetState implements Device. Only settings that changed reach the driver.
func (d *GL) SetState(s renderstate.State) {
	d.apply(s, false)
}

func (d *GL) apply(s renderstate.State, force bool) {
	cur := d.state

	if force || s.Stencil != cur.Stencil {
		setEnabled(gl.STENCIL_TEST, s.Stencil.Enabled)
		gl.StencilFunc(compareFunc(s.Stencil.Func), s.Stencil.Ref, s.Stencil.ReadMask)
		gl.StencilMask(s.Stencil.WriteMask)
		gl.StencilOp(stencilOp(s.Stencil.Fail), stencilOp(s.Stencil.DepthFail), stencilOp(s.Stencil.Pass))
	}
	if force || s.DepthTest != cur.DepthTest {
		setEnabled(gl.DEPTH_TEST, s.DepthTest)
	}
	if force || s.DepthWrite != cur.DepthWrite {
		gl.DepthMask(s.DepthWrite)
	}
	if force || s.Blend != cur.Blend {
		setEnabled(gl.BLEND, s.Blend.Enabled)
		gl.BlendFunc(blendFactor(s.Blend.Src), blendFactor(s.Blend.Dst))
	}
	if force || s.CullFace != cur.CullFace {
		setEnabled(gl.CULL_FACE, s.CullFace)
	}
	if force || s.FrontFace != cur.FrontFace {
		if s.FrontFace == renderstate.FrontCW {
			gl.FrontFace(gl.CW)
		} else {
			gl.FrontFace(gl.CCW)
		}
	}

	d.state = s
}

// Clear implements Device. Depth and stencil clears obey the current depth
// and stencil write masks.
func (d *GL) Clear(mask renderstate.ClearMask) {
	var bits uint32
	if mask&renderstate.ClearColor != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&renderstate.ClearDepth != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	if mask&renderstate.ClearStencil != 0 {
		bits |= gl.STENCIL_BUFFER_BIT
	}
	if bits != 0 {
		gl.Clear(bits)
	}
}

// SetProjection implements Device.
func (d *GL) SetProjection(proj math.Mat4) {
	gl.UniformMatrix4fv(d.locProj, 1, false, proj.Ptr())
}

// SetView implements Device.
func (d *GL) SetView(view math.Mat4, eye math.Vec3) {
	gl.UniformMatrix4fv(d.locView, 1, false, view.Ptr())
	gl.Uniform3f(d.locEyePos, eye.X, eye.Y, eye.Z)
}

// SetLight implements Device.
func (d *GL) SetLight(l lighting.Directional) {
	dir := l.ToLight()
	gl.Uniform3f(d.locLightDir, dir.X, dir.Y, dir.Z)
	gl.Uniform3f(d.locLightAmbient, l.Ambient.R, l.Ambient.G, l.Ambient.B)
	gl.Uniform3f(d.locLightDiffuse, l.Diffuse.R, l.Diffuse.G, l.Diffuse.B)
	gl.Uniform3f(d.locLightSpecular, l.Specular.R, l.Specular.G, l.Specular.B)
}

// SetWorld implements Device.
func (d *GL) SetWorld(world math.Mat4) {
	gl.UniformMatrix4fv(d.locWorld, 1, false, world.Ptr())
}

// SetMaterial implements Device.
func (d *GL) SetMaterial(m material.Material) {
	setColor(d.locMatAmbient, m.Ambient)
	setColor(d.locMatDiffuse, m.Diffuse)
	setColor(d.locMatSpecular, m.Specular)
	setColor(d.locMatEmissive, m.Emissive)
	gl.Uniform1f(d.locMatPower, m.Power)
}

// SetTexture implements Device.
func (d *GL) SetTexture(tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	if tex != 0 {
		gl.Uniform1i(d.locUseTexture, 1)
	} else {
		gl.Uniform1i(d.locUseTexture, 0)
	}
}

// DrawMesh implements Device.
func (d *GL) DrawMesh(h MeshHandle) {
	gm := d.lookup(h)
	if gm == nil {
		return
	}
	gl.BindVertexArray(gm.vao)
	gl.DrawElements(gl.TRIANGLES, gm.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// DrawFaces implements Device.
func (d *GL) DrawFaces(h MeshHandle, first, count int) {
	gm := d.lookup(h)
	if gm == nil || first < 0 || count <= 0 || first+count > gm.faceCount {
		return
	}
	gl.BindVertexArray(gm.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count*3), gl.UNSIGNED_INT, uintptr(mesh.IndexOffset(first)*4))
	gl.BindVertexArray(0)
}

// ReadColor reads back the RGBA color buffer, bottom row first.
func (d *GL) ReadColor() (pixels []byte, width, height int) {
	width, height = d.config.Width, d.config.Height
	if width <= 0 || height <= 0 {
		return nil, 0, 0
	}
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// ReadStencil reads back the stencil buffer, one byte per pixel, bottom row first.
func (d *GL) ReadStencil() (values []byte, width, height int) {
	width, height = d.config.Width, d.config.Height
	if width <= 0 || height <= 0 {
		return nil, 0, 0
	}
	values = make([]byte, width*height)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.STENCIL_INDEX, gl.UNSIGNED_BYTE, gl.Ptr(values))
	return values, width, height
}

// CheckError returns the oldest pending GL error, if any.
func (d *GL) CheckError() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

func setColor(loc int32, c material.Color) {
	gl.Uniform4f(loc, c.R, c.G, c.B, c.A)
}

func setEnabled(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func compareFunc(f renderstate.CompareFunc) uint32 {
	switch f {
	case renderstate.CompareNever:
		return gl.NEVER
	case renderstate.CompareEqual:
		return gl.EQUAL
	case renderstate.CompareNotEqual:
		return gl.NOTEQUAL
	case renderstate.CompareLess:
		return gl.LESS
	case renderstate.CompareLessEqual:
		return gl.LEQUAL
	case renderstate.CompareGreater:
		return gl.GREATER
	case renderstate.CompareGreaterEqual:
		return gl.GEQUAL
	default:
		return gl.ALWAYS
	}
}

func stencilOp(op renderstate.StencilOp) uint32 {
	switch op {
	case renderstate.OpZero:
		return gl.ZERO
	case renderstate.OpReplace:
		return gl.REPLACE
	case renderstate.OpIncr:
		return gl.INCR
	case renderstate.OpDecr:
		return gl.DECR
	case renderstate.OpInvert:
		return gl.INVERT
	default:
		return gl.KEEP
	}
}

func blendFactor(b renderstate.BlendFactor) uint32 {
	switch b {
	case renderstate.BlendZero:
		return gl.ZERO
	case renderstate.BlendSrcColor:
		return gl.SRC_COLOR
	case renderstate.BlendDstColor:
		return gl.DST_COLOR
	case renderstate.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case renderstate.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	default:
		return gl.ONE
	}
}
