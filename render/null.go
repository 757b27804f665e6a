// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package render

// NullBackend discards all draw calls and fabricates texture/surface
// handles from a counter. It is always available (no build tag,
// unlike OpenGLBackend which requires a live GL context) and is used
// for headless operation, tests, and as Renderer's final fallback per
// spec.md §4.1: "exhausting candidates for audio falls back to a null
// implementation" generalized here to the renderer family too, the
// null.go counterpart the platform and audio packages already carry.
type NullBackend struct {
	nextID uint32
}

// NewNullBackend returns a ready-to-use no-op backend.
func NewNullBackend() *NullBackend { return &NullBackend{} }

func (b *NullBackend) Init() error   { return nil }
func (b *NullBackend) Terminate()    {}
func (b *NullBackend) MaxSamples() int { return 4 }

func (b *NullBackend) Resize(width, height int) {}
func (b *NullBackend) Clear(c Color)             {}

func (b *NullBackend) UploadVertexData(format VertexFormat, data []float32) {}
func (b *NullBackend) Draw(mode DrawMode, first, count int)                 {}

func (b *NullBackend) ApplyProjection(m M4)          {}
func (b *NullBackend) ApplyTransform(m M4)           {}
func (b *NullBackend) ApplyColor(c Color)            {}
func (b *NullBackend) ApplyBrush(br Brush)           {}
func (b *NullBackend) ApplyVertexFormat(f VertexFormat) {}
func (b *NullBackend) ApplyBlendMode(m BlendMode)    {}
func (b *NullBackend) ApplyTexture(h TextureHandle)  {}
func (b *NullBackend) ApplySurface(h SurfaceHandle)  {}

func (b *NullBackend) LoadTexture(width, height, channels int, pixels []byte) (TextureHandle, error) {
	b.nextID++
	return b.nextID, nil
}

func (b *NullBackend) UpdateSubTexture(h TextureHandle, x, y, width, height, channels int, pixels []byte) {
}

func (b *NullBackend) UnloadTexture(h TextureHandle) {}

func (b *NullBackend) SetTextureSmooth(h TextureHandle, smooth bool) {}

// nullSurface is the fabricated per-surface state NullBackend hands
// back so Renderer's identity comparisons and resolve calls still have
// something distinct to compare against.
type nullSurface struct{ id uint32 }

func (b *NullBackend) CreateSurface(width, height, samples int) (SurfaceHandle, TextureHandle, error) {
	b.nextID++
	s := &nullSurface{id: b.nextID}
	b.nextID++
	return s, b.nextID, nil
}

func (b *NullBackend) DestroySurface(h SurfaceHandle) {}
func (b *NullBackend) ResolveSurface(h SurfaceHandle) {}
