// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package render implements the retained 2D renderer described by
// spec.md §4.5: a brush/vertex-format/blend-mode state cache over a
// pluggable graphics backend, a per-surface matrix stack, orthographic
// views, multisample-capable framebuffer-object surfaces, and the
// texture-atlas-backed draw submission the text package shapes glyphs
// into. It generalizes the teacher's render.Renderer (src/vu/render,
// render/opengl.go) from a 3D model/shader pipeline down to the
// narrower 2D brush model spec.md §4.5 calls for, keeping the same
// "state cache elides redundant backend calls" design.
package render

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/galvanizedlogic/qu/internal/handle"
)

var logger = log.With("module", "render")

// Brush names a shader program + uniform semantics combination, matching
// spec.md §4.5's three brushes.
type Brush uint8

const (
	BrushSolid    Brush = iota // single color
	BrushTextured              // sampler ⊗ color
	BrushFont                  // alpha-from-texture red channel ⊗ color
)

// VertexFormat names the layout of one vertex.
type VertexFormat uint8

const (
	Fmt2XY   VertexFormat = iota // position only: x, y
	Fmt4XYST                     // position + texcoord: x, y, s, t
)

// Stride reports the number of float32 values per vertex in f.
func (f VertexFormat) Stride() int {
	switch f {
	case Fmt4XYST:
		return 4
	default:
		return 2
	}
}

// BlendMode names a fixed-function blend configuration.
type BlendMode uint8

const (
	BlendAlpha BlendMode = iota // standard src-alpha / one-minus-src-alpha
	BlendNone                   // opaque, no blending
	BlendAdd                    // additive
)

// DrawMode names the primitive topology of a Draw call.
type DrawMode uint8

const (
	DrawPoints DrawMode = iota
	DrawLines
	DrawLineLoop
	DrawTriangles
	DrawTriangleFan
)

// Color is a straightforward RGBA color in the 0-1 range.
type Color struct{ R, G, B, A float32 }

// Opaque reports whether c has no transparency. Primitive draws do not
// use it: they skip a pass only when its color's A is 0.
func (c Color) Opaque() bool { return c.A >= 1 }

// SurfaceHandle is minimal framework-agnostic backend-owned state for a
// surface target (window default or an FBO), kept behind Backend so
// Renderer never touches concrete GL objects directly.
type SurfaceHandle any

// TextureHandle is the backend-owned state for a loaded texture.
type TextureHandle any

// Backend is the renderer backend interface consumed by Renderer,
// matching spec.md §6's list: query/init/terminate, vertex upload,
// apply-calls for every piece of cached state, exec calls, and
// texture/surface resource management. Concrete backends (OpenGLBackend,
// NullBackend) select one GL version / no-op implementation.
type Backend interface {
	Init() error
	Terminate()

	// MaxSamples reports the multisample count the context actually
	// supports, so surface creation can clamp a requested count down,
	// per spec.md's SUPPLEMENTED FEATURES "sample-count negotiation".
	MaxSamples() int

	Resize(width, height int)
	Clear(c Color)

	UploadVertexData(format VertexFormat, data []float32)
	Draw(mode DrawMode, first, count int)

	ApplyProjection(m M4)
	ApplyTransform(m M4)
	ApplyColor(c Color)
	ApplyBrush(b Brush)
	ApplyVertexFormat(f VertexFormat)
	ApplyBlendMode(m BlendMode)
	ApplyTexture(h TextureHandle)
	ApplySurface(h SurfaceHandle) // nil = window default surface

	LoadTexture(width, height, channels int, pixels []byte) (TextureHandle, error)
	UpdateSubTexture(h TextureHandle, x, y, width, height, channels int, pixels []byte)
	UnloadTexture(h TextureHandle)
	SetTextureSmooth(h TextureHandle, smooth bool)

	CreateSurface(width, height, samples int) (SurfaceHandle, TextureHandle, error)
	DestroySurface(h SurfaceHandle)
	ResolveSurface(h SurfaceHandle)
}

// Texture is a CPU-visible handle to a GPU image, matching spec.md §3's
// Texture entity.
type Texture struct {
	Width, Height int
	Channels      int
	Smooth        bool
	backend       TextureHandle
	pixels        []byte // retained only if the caller asked to keep a CPU copy
}

// Surface is a render target: either the window default (Backend field
// nil) or an FBO-backed Texture, optionally multisampled, matching
// spec.md §3's Surface entity.
type Surface struct {
	Texture
	Backend SurfaceHandle // nil for the window default surface

	Samples int

	projection M4
	view       *matrixStack
}

// newDefaultSurface returns the always-present window surface.
func newDefaultSurface(w, h int) *Surface {
	s := &Surface{view: newMatrixStack()}
	s.Width, s.Height = w, h
	s.projection = Ortho(float32(w)/2, float32(h)/2, float32(w), float32(h), 0)
	return s
}

// state is the dirty-bit tracked shadow of everything Renderer applies
// to the backend, per spec.md §4.5: "issue backend calls only on
// change".
type state struct {
	projection   M4
	haveProj     bool
	transform    M4
	haveTransform bool
	color        Color
	haveColor    bool
	brush        Brush
	haveBrush    bool
	format       VertexFormat
	haveFormat   bool
	blend        BlendMode
	haveBlend    bool
	texture      *Texture
	surface      *Surface
	haveSurface  bool
}

// Renderer is the public retained 2D renderer: matrix stack, view,
// clear, primitive/textured/surface/text draws, all funneled through
// the state cache onto Backend.
type Renderer struct {
	backend Backend

	textures *handle.List[Texture]
	surfaces *handle.List[Surface]

	window  *Surface // the always-present window default surface
	canvas  *Surface // optional offscreen target, nil if none requested
	current *Surface // the surface currently being drawn to

	canvasStretch bool // SPEC_FULL.md's restored CanvasStretch flag

	st state

	clearColor Color
}

// New wraps backend (already Init'd) with the 2D state cache, a window
// surface of the given pixel size, and no canvas.
func New(backend Backend, windowWidth, windowHeight int) *Renderer {
	r := &Renderer{
		backend:  backend,
		textures: handle.New[Texture](func(t *Texture) {
			if t.backend != nil {
				backend.UnloadTexture(t.backend)
			}
		}),
		surfaces: handle.New[Surface](nil),
	}
	r.window = newDefaultSurface(windowWidth, windowHeight)
	r.current = r.window
	return r
}

// EnableCanvas creates an offscreen surface of (w, h) that all drawing
// is directed to until SetSurface/ResetSurface is called, composited to
// the window on Present with aspect-preserving letterboxing, matching
// spec.md §4.5's "Surfaces & canvas".
func (r *Renderer) EnableCanvas(w, h, samples int) error {
	s, err := r.newSurface(w, h, samples)
	if err != nil {
		return err
	}
	r.canvas = s
	r.current = s
	return nil
}

// Resize updates the window surface's logical size and projection. Its
// caller is qu.SetWindowSize; WindowResized events from the platform
// backend are not forwarded to it.
func (r *Renderer) Resize(w, h int) {
	r.window.Width, r.window.Height = w, h
	r.window.projection = Ortho(float32(w)/2, float32(h)/2, float32(w), float32(h), 0)
	r.backend.Resize(w, h)
}

func (r *Renderer) newSurface(w, h, samples int) (*Surface, error) {
	if max := r.backend.MaxSamples(); samples > max {
		samples = max
	}
	sb, tex, err := r.backend.CreateSurface(w, h, samples)
	if err != nil {
		return nil, fmt.Errorf("render: create surface: %w", err)
	}
	s := &Surface{view: newMatrixStack(), Samples: samples}
	s.Width, s.Height = w, h
	s.Backend = sb
	s.Texture.backend = tex
	s.projection = Ortho(float32(w)/2, float32(h)/2, float32(w), float32(h), 0)
	return s, nil
}

// CreateSurface allocates a user-addressable FBO surface and returns a
// handle to it, or the invalid handle on backend failure (spec.md §4.5
// "Failure semantics": resource creation returns handle 0).
func (r *Renderer) CreateSurface(w, h, samples int) handle.H {
	s, err := r.newSurface(w, h, samples)
	if err != nil {
		logger.Warn("create surface failed", "err", err)
		return handle.Invalid
	}
	return r.surfaces.Add(*s)
}

// DestroySurface releases a surface created with CreateSurface. A
// no-op for an invalid or already-destroyed handle.
func (r *Renderer) DestroySurface(h handle.H) {
	s := r.surfaces.Get(h)
	if s == nil {
		return
	}
	if r.current == s {
		r.current = r.window
	}
	r.backend.DestroySurface(s.Backend)
	r.surfaces.Remove(h)
}

// SetSurface redirects drawing to the surface referenced by h, or to the
// canvas (or window, if there is no canvas) if h is invalid.
func (r *Renderer) SetSurface(h handle.H) {
	if s := r.surfaces.Get(h); s != nil {
		r.flushSurfaceSwitch(s)
		return
	}
	r.ResetSurface()
}

// ResetSurface redirects drawing back to the canvas, or the window if
// no canvas was enabled.
func (r *Renderer) ResetSurface() {
	if r.canvas != nil {
		r.flushSurfaceSwitch(r.canvas)
		return
	}
	r.flushSurfaceSwitch(r.window)
}

func (r *Renderer) flushSurfaceSwitch(next *Surface) {
	if r.current != nil && r.current.Samples > 1 && r.current != next {
		// Binding away from a multisample surface triggers its resolve
		// blit, per spec.md §4.5's "Multisample FBOs" contract.
		r.backend.ResolveSurface(r.current.Backend)
	}
	r.current = next
	r.applySurface(next)
}

// TextureSize reports a texture's pixel dimensions, or (0, 0) for an
// invalid handle.
func (r *Renderer) TextureSize(th handle.H) (width, height int) {
	t := r.textures.Get(th)
	if t == nil {
		return 0, 0
	}
	return t.Width, t.Height
}

// SurfaceTexture returns the resolved color Texture backing a surface,
// for drawing it as a textured quad (used internally by Present's
// canvas compositing, and available to callers that want to draw a
// user surface into another one).
func (r *Renderer) SurfaceTexture(h handle.H) *Texture {
	s := r.surfaces.Get(h)
	if s == nil {
		return nil
	}
	return &s.Texture
}

// Matrix stack, delegated to the current surface's stack.

func (r *Renderer) PushMatrix()              { r.current.view.Push() }
func (r *Renderer) PopMatrix()               { r.current.view.Pop() }
func (r *Renderer) Translate(tx, ty float32) { r.current.view.Translate(tx, ty) }
func (r *Renderer) Scale(sx, sy float32)     { r.current.view.Scale(sx, sy) }
func (r *Renderer) Rotate(degrees float32)   { r.current.view.Rotate(degrees) }

// SetView computes an orthographic projection centered at (cx, cy)
// covering w x h logical units, rotated by rot degrees, for the
// currently bound surface.
func (r *Renderer) SetView(cx, cy, w, h, rot float32) {
	r.current.projection = Ortho(cx, cy, w, h, rot)
}

// ResetView restores the identity view matching the current surface's
// pixel size.
func (r *Renderer) ResetView() {
	s := r.current
	s.projection = Ortho(float32(s.Width)/2, float32(s.Height)/2, float32(s.Width), float32(s.Height), 0)
}

// Clear clears the currently bound surface to c.
func (r *Renderer) Clear(c Color) {
	r.clearColor = c
	r.applySurface(r.current)
	r.backend.Clear(c)
}

// SetBlendMode changes the active blend mode through the state cache
// right away; the backend call is skipped if m is already active.
func (r *Renderer) SetBlendMode(m BlendMode) { r.applyBlendMode(m) }

// --- state-cache apply helpers: every one is a no-op if nothing changed ---

func (r *Renderer) applyProjection(m M4) {
	if r.st.haveProj && r.st.projection == m {
		return
	}
	r.st.projection, r.st.haveProj = m, true
	r.backend.ApplyProjection(m)
}

func (r *Renderer) applyTransform(m M4) {
	if r.st.haveTransform && r.st.transform == m {
		return
	}
	r.st.transform, r.st.haveTransform = m, true
	r.backend.ApplyTransform(m)
}

func (r *Renderer) applyColor(c Color) {
	if r.st.haveColor && r.st.color == c {
		return
	}
	r.st.color, r.st.haveColor = c, true
	r.backend.ApplyColor(c)
}

func (r *Renderer) applyBrush(b Brush) {
	if r.st.haveBrush && r.st.brush == b {
		return
	}
	r.st.brush, r.st.haveBrush = b, true
	r.backend.ApplyBrush(b)
}

func (r *Renderer) applyVertexFormat(f VertexFormat) {
	if r.st.haveFormat && r.st.format == f {
		return
	}
	r.st.format, r.st.haveFormat = f, true
	r.backend.ApplyVertexFormat(f)
}

func (r *Renderer) applyBlendMode(m BlendMode) {
	if r.st.haveBlend && r.st.blend == m {
		return
	}
	r.st.blend, r.st.haveBlend = m, true
	r.backend.ApplyBlendMode(m)
}

// applyTexture compares by identity (pointer), per spec.md §4.5: "identity
// comparison for pointer-typed state".
func (r *Renderer) applyTexture(t *Texture) {
	if r.st.texture == t {
		return
	}
	r.st.texture = t
	if t == nil {
		return
	}
	r.backend.ApplyTexture(t.backend)
}

func (r *Renderer) applySurface(s *Surface) {
	if r.st.haveSurface && r.st.surface == s {
		return
	}
	r.st.surface, r.st.haveSurface = s, true
	r.backend.ApplySurface(s.Backend)
	r.backend.Resize(s.Width, s.Height)
}

// beginDraw applies the current surface's projection/modelview and the
// requested brush/format before a draw call's vertex upload, the shared
// preamble every public draw function goes through.
func (r *Renderer) beginDraw(b Brush, f VertexFormat) {
	r.applySurface(r.current)
	r.applyProjection(r.current.projection)
	r.applyTransform(r.current.view.Top())
	r.applyBrush(b)
	r.applyVertexFormat(f)
}
