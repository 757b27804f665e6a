// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galvanizedlogic/qu/internal/handle"
)

// countingBackend wraps NullBackend and counts how many times each
// apply call actually reaches the backend, to verify spec.md §8's
// property 10: "Issuing 1000 identical textured draws performs exactly
// one apply_texture, one apply_brush, and one apply_vertex_format."
type countingBackend struct {
	*NullBackend
	textureCalls, brushCalls, formatCalls int
}

func newCountingBackend() *countingBackend {
	return &countingBackend{NullBackend: NewNullBackend()}
}

func (b *countingBackend) ApplyTexture(h TextureHandle)     { b.textureCalls++ }
func (b *countingBackend) ApplyBrush(br Brush)              { b.brushCalls++ }
func (b *countingBackend) ApplyVertexFormat(f VertexFormat) { b.formatCalls++ }

func TestStateCacheElidesRepeatedDraws(t *testing.T) {
	backend := newCountingBackend()
	r := New(backend, 800, 600)

	tex := r.CreateTexture(4, 4, 4, make([]byte, 4*4*4))
	require.NotEqual(t, handle.Invalid, tex)

	for i := 0; i < 1000; i++ {
		r.DrawTexture(tex, 0, 0, 10, 10, Color{1, 1, 1, 1})
	}

	assert.Equal(t, 1, backend.textureCalls)
	assert.Equal(t, 1, backend.brushCalls)
	assert.Equal(t, 1, backend.formatCalls)
}

func TestDrawInvalidTextureIsNoOp(t *testing.T) {
	r := New(NewNullBackend(), 100, 100)
	assert.NotPanics(t, func() {
		r.DrawTexture(handle.Invalid, 0, 0, 10, 10, Color{1, 1, 1, 1})
	})
}

func TestCreateDestroySurfaceRoundTrip(t *testing.T) {
	r := New(NewNullBackend(), 320, 240)
	s := r.CreateSurface(64, 64, 1)
	require.NotEqual(t, handle.Invalid, s)

	tex := r.SurfaceTexture(s)
	require.NotNil(t, tex)
	assert.Equal(t, 64, tex.Width)

	r.DestroySurface(s)
	assert.Nil(t, r.SurfaceTexture(s))
}

func TestSetSurfaceThenResetReturnsToWindow(t *testing.T) {
	r := New(NewNullBackend(), 320, 240)
	s := r.CreateSurface(64, 64, 1)
	r.SetSurface(s)
	assert.Same(t, r.current, r.surfaces.Get(s))

	r.ResetSurface()
	assert.Same(t, r.current, r.window)
}

func TestWindowToCanvasWithoutCanvasIsIdentity(t *testing.T) {
	r := New(NewNullBackend(), 320, 240)
	x, y := r.WindowToCanvas(10, 20)
	assert.Equal(t, int32(10), x)
	assert.Equal(t, int32(20), y)
}

func TestWindowToCanvasLetterboxesAndClamps(t *testing.T) {
	r := New(NewNullBackend(), 400, 200)
	require.NoError(t, r.EnableCanvas(100, 100, 1))

	// A 100x100 canvas in a 400x200 window scales by 2 (bounded by
	// height) and is centered horizontally, offset 100px each side.
	x, y := r.WindowToCanvas(150, 50)
	assert.Equal(t, int32(25), x)
	assert.Equal(t, int32(25), y)

	x, y = r.WindowToCanvas(0, 0)
	assert.Equal(t, int32(0), x)
	assert.Equal(t, int32(0), y)
}
