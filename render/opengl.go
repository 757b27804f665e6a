// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build !qu_headless

package render

// opengl.go is the OpenGL 3.3 core implementation of Backend, the
// concrete stand-in for spec.md §6's "OpenGL 3.3" renderer backend.
// It follows the teacher's render/opengl.go shader-and-buffer
// management style, generalized from a 3D model pipeline down to two
// small programs (solid, textured/font) and two VAOs (one per
// VertexFormat), and borrows its shader-compile/link helpers from the
// goshadertoy example's renderer.go (newProgram/compileShader). GLSL
// sources come from brush.go's yaml-loaded program descriptors, the way
// the teacher's load/shd.go loads shader descriptions from yaml rather
// than embedding them as Go string literals.

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// OpenGLBackend implements Backend against an OpenGL 3.3 core context
// created by the platform backend (platform.GLFWBackend).
type OpenGLBackend struct {
	solidProgram uint32
	texProgram   uint32

	solidProj, solidTransform, solidColor int32
	texProj, texTransform, texColor, texSampler, texBrush int32

	vao2xy, vbo2xy     uint32
	vao4xyst, vbo4xyst uint32

	curProgram uint32
	curVAO     uint32
	samples    int
}

// NewOpenGLBackend returns an uninitialized OpenGL 3.3 backend. The
// platform backend must have already made a GL context current.
func NewOpenGLBackend() *OpenGLBackend { return &OpenGLBackend{} }

func (b *OpenGLBackend) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("render: gl init: %w", err)
	}

	solid := brushSource("solid")
	textured := brushSource("textured")

	var err error
	b.solidProgram, err = newProgram(solid.Vertex, solid.Fragment)
	if err != nil {
		return fmt.Errorf("render: solid program: %w", err)
	}
	b.texProgram, err = newProgram(textured.Vertex, textured.Fragment)
	if err != nil {
		return fmt.Errorf("render: textured program: %w", err)
	}

	b.solidProj = gl.GetUniformLocation(b.solidProgram, gl.Str("u_projection\x00"))
	b.solidTransform = gl.GetUniformLocation(b.solidProgram, gl.Str("u_transform\x00"))
	b.solidColor = gl.GetUniformLocation(b.solidProgram, gl.Str("u_color\x00"))

	b.texProj = gl.GetUniformLocation(b.texProgram, gl.Str("u_projection\x00"))
	b.texTransform = gl.GetUniformLocation(b.texProgram, gl.Str("u_transform\x00"))
	b.texColor = gl.GetUniformLocation(b.texProgram, gl.Str("u_color\x00"))
	b.texSampler = gl.GetUniformLocation(b.texProgram, gl.Str("u_sampler\x00"))
	b.texBrush = gl.GetUniformLocation(b.texProgram, gl.Str("u_brush\x00"))

	gl.GenVertexArrays(1, &b.vao2xy)
	gl.GenBuffers(1, &b.vbo2xy)
	gl.BindVertexArray(b.vao2xy)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo2xy)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	gl.GenVertexArrays(1, &b.vao4xyst)
	gl.GenBuffers(1, &b.vbo4xyst)
	gl.BindVertexArray(b.vao4xyst)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo4xyst)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)

	gl.BindVertexArray(0)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	var samples int32
	gl.GetIntegerv(gl.MAX_SAMPLES, &samples)
	b.samples = int(samples)

	return nil
}

func (b *OpenGLBackend) Terminate() {
	gl.DeleteVertexArrays(1, &b.vao2xy)
	gl.DeleteVertexArrays(1, &b.vao4xyst)
	gl.DeleteBuffers(1, &b.vbo2xy)
	gl.DeleteBuffers(1, &b.vbo4xyst)
	gl.DeleteProgram(b.solidProgram)
	gl.DeleteProgram(b.texProgram)
}

func (b *OpenGLBackend) MaxSamples() int { return b.samples }

func (b *OpenGLBackend) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *OpenGLBackend) Clear(c Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *OpenGLBackend) UploadVertexData(format VertexFormat, data []float32) {
	var vbo uint32
	if format == Fmt4XYST {
		vbo = b.vbo4xyst
	} else {
		vbo = b.vbo2xy
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STREAM_DRAW)
}

func (b *OpenGLBackend) Draw(mode DrawMode, first, count int) {
	gl.DrawArrays(glDrawMode(mode), int32(first), int32(count))
}

func glDrawMode(m DrawMode) uint32 {
	switch m {
	case DrawPoints:
		return gl.POINTS
	case DrawLines:
		return gl.LINES
	case DrawLineLoop:
		return gl.LINE_LOOP
	case DrawTriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

func (b *OpenGLBackend) ApplyProjection(m M4) {
	if b.curProgram == b.solidProgram {
		gl.UniformMatrix4fv(b.solidProj, 1, false, m.Pointer())
	} else {
		gl.UniformMatrix4fv(b.texProj, 1, false, m.Pointer())
	}
}

func (b *OpenGLBackend) ApplyTransform(m M4) {
	if b.curProgram == b.solidProgram {
		gl.UniformMatrix4fv(b.solidTransform, 1, false, m.Pointer())
	} else {
		gl.UniformMatrix4fv(b.texTransform, 1, false, m.Pointer())
	}
}

func (b *OpenGLBackend) ApplyColor(c Color) {
	if b.curProgram == b.solidProgram {
		gl.Uniform4f(b.solidColor, c.R, c.G, c.B, c.A)
	} else {
		gl.Uniform4f(b.texColor, c.R, c.G, c.B, c.A)
	}
}

func (b *OpenGLBackend) ApplyBrush(brush Brush) {
	var program uint32
	if brush == BrushSolid {
		program = b.solidProgram
	} else {
		program = b.texProgram
	}
	if b.curProgram != program {
		b.curProgram = program
		gl.UseProgram(program)
	}
	if program == b.texProgram {
		v := int32(0)
		if brush == BrushFont {
			v = 1
		}
		gl.Uniform1i(b.texBrush, v)
		gl.Uniform1i(b.texSampler, 0)
	}
}

func (b *OpenGLBackend) ApplyVertexFormat(f VertexFormat) {
	var vao uint32
	if f == Fmt4XYST {
		vao = b.vao4xyst
	} else {
		vao = b.vao2xy
	}
	if b.curVAO != vao {
		b.curVAO = vao
		gl.BindVertexArray(vao)
	}
}

func (b *OpenGLBackend) ApplyBlendMode(m BlendMode) {
	switch m {
	case BlendNone:
		gl.Disable(gl.BLEND)
	case BlendAdd:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	default:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
}

func (b *OpenGLBackend) ApplyTexture(h TextureHandle) {
	id, _ := h.(uint32)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (b *OpenGLBackend) ApplySurface(h SurfaceHandle) {
	if h == nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return
	}
	s := h.(*glSurface)
	if s.samples > 1 {
		gl.BindFramebuffer(gl.FRAMEBUFFER, s.msFBO)
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, s.fbo)
	}
}

func channelFormat(channels int) (internal int32, format uint32) {
	switch channels {
	case 1:
		return gl.R8, gl.RED
	case 2:
		return gl.RG8, gl.RG
	case 3:
		return gl.RGB8, gl.RGB
	default:
		return gl.RGBA8, gl.RGBA
	}
}

func (b *OpenGLBackend) LoadTexture(width, height, channels int, pixels []byte) (TextureHandle, error) {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	internalFmt, format := channelFormat(channels)

	var ptr *byte
	if len(pixels) > 0 {
		ptr = &pixels[0]
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFmt, int32(width), int32(height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(ptr))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return id, nil
}

func (b *OpenGLBackend) UpdateSubTexture(h TextureHandle, x, y, width, height, channels int, pixels []byte) {
	id, _ := h.(uint32)
	gl.BindTexture(gl.TEXTURE_2D, id)
	_, format := channelFormat(channels)
	var ptr *byte
	if len(pixels) > 0 {
		ptr = &pixels[0]
	}
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(x), int32(y), int32(width), int32(height), format, gl.UNSIGNED_BYTE, gl.Ptr(ptr))
}

func (b *OpenGLBackend) UnloadTexture(h TextureHandle) {
	id, ok := h.(uint32)
	if !ok {
		return
	}
	gl.DeleteTextures(1, &id)
}

func (b *OpenGLBackend) SetTextureSmooth(h TextureHandle, smooth bool) {
	id, ok := h.(uint32)
	if !ok {
		return
	}
	mode := int32(gl.NEAREST)
	if smooth {
		mode = gl.LINEAR
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, mode)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, mode)
}

// glSurface is the OpenGL-specific state backing a render.Surface:
// a single-sample FBO wrapping a color texture + depth renderbuffer,
// plus, when samples > 1, a second FBO holding a multisample color+depth
// renderbuffer pair that all drawing actually targets, matching
// spec.md §4.5's "Multisample FBOs".
type glSurface struct {
	fbo, colorTex, depthRB uint32
	msFBO, msColorRB, msDepthRB uint32
	samples                int
}

func (b *OpenGLBackend) CreateSurface(width, height, samples int) (SurfaceHandle, TextureHandle, error) {
	s := &glSurface{samples: samples}

	gl.GenTextures(1, &s.colorTex)
	gl.BindTexture(gl.TEXTURE_2D, s.colorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.GenFramebuffers(1, &s.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, s.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, s.colorTex, 0)

	gl.GenRenderbuffers(1, &s.depthRB)
	gl.BindRenderbuffer(gl.RENDERBUFFER, s.depthRB)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, s.depthRB)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		b.destroySurface(s)
		return nil, nil, fmt.Errorf("render: incomplete framebuffer (0x%x)", status)
	}

	if samples > 1 {
		gl.GenFramebuffers(1, &s.msFBO)
		gl.BindFramebuffer(gl.FRAMEBUFFER, s.msFBO)

		gl.GenRenderbuffers(1, &s.msColorRB)
		gl.BindRenderbuffer(gl.RENDERBUFFER, s.msColorRB)
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, int32(samples), gl.RGBA8, int32(width), int32(height))
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, s.msColorRB)

		gl.GenRenderbuffers(1, &s.msDepthRB)
		gl.BindRenderbuffer(gl.RENDERBUFFER, s.msDepthRB)
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, int32(samples), gl.DEPTH_COMPONENT24, int32(width), int32(height))
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, s.msDepthRB)

		if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			b.destroySurface(s)
			return nil, nil, fmt.Errorf("render: incomplete multisample framebuffer (0x%x)", status)
		}
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return s, s.colorTex, nil
}

func (b *OpenGLBackend) DestroySurface(h SurfaceHandle) {
	s, ok := h.(*glSurface)
	if !ok {
		return
	}
	b.destroySurface(s)
}

func (b *OpenGLBackend) destroySurface(s *glSurface) {
	if s.fbo != 0 {
		gl.DeleteFramebuffers(1, &s.fbo)
	}
	if s.colorTex != 0 {
		gl.DeleteTextures(1, &s.colorTex)
	}
	if s.depthRB != 0 {
		gl.DeleteRenderbuffers(1, &s.depthRB)
	}
	if s.msFBO != 0 {
		gl.DeleteFramebuffers(1, &s.msFBO)
	}
	if s.msColorRB != 0 {
		gl.DeleteRenderbuffers(1, &s.msColorRB)
	}
	if s.msDepthRB != 0 {
		gl.DeleteRenderbuffers(1, &s.msDepthRB)
	}
}

// ResolveSurface blit-resolves a multisample surface's color renderbuffer
// into its single-sample color texture, per spec.md §4.5: "any
// apply_surface(other) or explicit flush first performs a
// blit-resolve from the MS framebuffer into the single-sample color
// texture."
func (b *OpenGLBackend) ResolveSurface(h SurfaceHandle) {
	s, ok := h.(*glSurface)
	if !ok || s.samples <= 1 {
		return
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, s.msFBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, s.fbo)
	// width/height are implied by the renderbuffer/texture storage sizes
	// set at creation; BlitFramebuffer needs them explicitly, so the
	// Renderer always calls this right after binding the surface that
	// was current, which re-applies the viewport via Resize.
	var dims [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &dims[0])
	gl.BlitFramebuffer(0, 0, dims[2], dims[3], 0, 0, dims[2], dims[3], gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("render: link program: %v", log)
	}

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		return 0, fmt.Errorf("render: compile shader: %v", logText)
	}
	return shader, nil
}
