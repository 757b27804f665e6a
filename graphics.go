// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package qu

import (
	"bytes"

	"github.com/galvanizedlogic/qu/internal/handle"
	"github.com/galvanizedlogic/qu/loader"
	"github.com/galvanizedlogic/qu/render"
)

// Color is a straightforward RGBA color in the 0-1 range.
type Color = render.Color

// BlendMode names a fixed-function blend configuration.
type BlendMode = render.BlendMode

const (
	BlendAlpha = render.BlendAlpha
	BlendNone  = render.BlendNone
	BlendAdd   = render.BlendAdd
)

// Texture, Surface, and Font are opaque resource handles. The zero
// value of each is the always-invalid handle, safe to pass to any
// sink function, per spec.md §3: "Handles are per-resource-kind; a
// sound handle and a font handle may share a numeric value without
// collision because they index different tables."
type (
	Texture handle.H
	Surface handle.H
	Font    handle.H
)

// CreateTexture allocates a GPU texture from raw pixels (RGBA/RGB/GA/G
// order per channels) and returns the invalid handle on backend
// failure, per spec.md §4.5's failure semantics.
func CreateTexture(width, height, channels int, pixels []byte) Texture {
	if current == nil {
		return Texture(handle.Invalid)
	}
	return Texture(current.renderer.CreateTexture(width, height, channels, pixels))
}

// LoadTexture decodes an image file's bytes (PNG/JPEG/BMP, sniffed from
// its header) and uploads it as a texture, or returns the invalid
// handle on a decode or upload failure.
func LoadTexture(data []byte) Texture {
	width, height, channels, pixels, err := loader.DecodeImage(bytes.NewReader(data))
	if err != nil {
		logger.Warn("load texture failed", "err", err)
		return Texture(handle.Invalid)
	}
	return CreateTexture(width, height, channels, pixels)
}

// DestroyTexture releases a texture. A no-op for an invalid or
// already-destroyed handle.
func DestroyTexture(t Texture) {
	if current == nil {
		return
	}
	current.renderer.DestroyTexture(handle.H(t))
}

// SetTextureSmooth toggles linear (true) vs nearest (false) sampling.
func SetTextureSmooth(t Texture, smooth bool) {
	if current == nil {
		return
	}
	current.renderer.SetTextureSmooth(handle.H(t), smooth)
}

// TextureSize reports a texture's pixel dimensions, or (0, 0) for an
// invalid handle.
func TextureSize(t Texture) (width, height int) {
	if current == nil {
		return 0, 0
	}
	return current.renderer.TextureSize(handle.H(t))
}

// CreateSurface allocates a user-addressable FBO render target,
// optionally multisampled, or the invalid handle on backend failure.
func CreateSurface(width, height, samples int) Surface {
	if current == nil {
		return Surface(handle.Invalid)
	}
	return Surface(current.renderer.CreateSurface(width, height, samples))
}

// DestroySurface releases a surface. A no-op for an invalid or
// already-destroyed handle.
func DestroySurface(s Surface) {
	if current == nil {
		return
	}
	current.renderer.DestroySurface(handle.H(s))
}

// SetSurface redirects drawing to s, or to the canvas (or window, if no
// canvas) if s is invalid.
func SetSurface(s Surface) {
	if current == nil {
		return
	}
	current.renderer.SetSurface(handle.H(s))
}

// ResetSurface redirects drawing back to the canvas, or the window if
// no canvas was enabled.
func ResetSurface() {
	if current == nil {
		return
	}
	current.renderer.ResetSurface()
}

// DrawSurface draws a previously created surface's resolved color
// texture as a quad.
func DrawSurface(s Surface, x, y, w, h float32, tint Color) {
	if current == nil {
		return
	}
	current.renderer.DrawSurface(handle.H(s), x, y, w, h, tint)
}

// Matrix stack.

func PushMatrix() {
	if current != nil {
		current.renderer.PushMatrix()
	}
}

func PopMatrix() {
	if current != nil {
		current.renderer.PopMatrix()
	}
}

func Translate(tx, ty float32) {
	if current != nil {
		current.renderer.Translate(tx, ty)
	}
}

func ScaleView(sx, sy float32) {
	if current != nil {
		current.renderer.Scale(sx, sy)
	}
}

func Rotate(degrees float32) {
	if current != nil {
		current.renderer.Rotate(degrees)
	}
}

// SetView computes an orthographic projection centered at (cx, cy)
// covering w x h logical units, rotated by rot degrees.
func SetView(cx, cy, w, h, rot float32) {
	if current != nil {
		current.renderer.SetView(cx, cy, w, h, rot)
	}
}

// ResetView restores the identity view matching the current surface's
// pixel size.
func ResetView() {
	if current != nil {
		current.renderer.ResetView()
	}
}

// Clear clears the currently bound surface to c.
func Clear(c Color) {
	if current != nil {
		current.renderer.Clear(c)
	}
}

// SetBlendMode changes the active blend mode.
func SetBlendMode(m BlendMode) {
	if current != nil {
		current.renderer.SetBlendMode(m)
	}
}

// Primitive draws.

func DrawPoint(x, y float32, c Color) {
	if current != nil {
		current.renderer.DrawPoint(x, y, c)
	}
}

func DrawLine(x1, y1, x2, y2 float32, c Color) {
	if current != nil {
		current.renderer.DrawLine(x1, y1, x2, y2, c)
	}
}

func DrawTriangle(x1, y1, x2, y2, x3, y3 float32, c Color) {
	if current != nil {
		current.renderer.DrawTriangle(x1, y1, x2, y2, x3, y3, c)
	}
}

func DrawRectangle(x, y, w, h float32, fill, outline Color) {
	if current != nil {
		current.renderer.DrawRectangle(x, y, w, h, fill, outline)
	}
}

func DrawCircle(cx, cy, radius float32, fill, outline Color) {
	if current != nil {
		current.renderer.DrawCircle(cx, cy, radius, fill, outline)
	}
}

// DrawTexture draws the whole texture as a quad at (x, y) with size
// (w, h). A stale or invalid handle is a silent no-op.
func DrawTexture(t Texture, x, y, w, h float32, tint Color) {
	if current != nil {
		current.renderer.DrawTexture(handle.H(t), x, y, w, h, tint)
	}
}

// DrawSubTexture draws the (u0,v0)-(u1,v1) normalized region of t as a
// quad at (x, y) with size (w, h).
func DrawSubTexture(t Texture, x, y, w, h, u0, v0, u1, v1 float32, tint Color) {
	if current != nil {
		current.renderer.DrawSubTexture(handle.H(t), x, y, w, h, u0, v0, u1, v1, tint)
	}
}

// LoadFont parses TrueType/OpenType font bytes at the given point size
// and returns a handle to it, or the invalid handle on any failure.
func LoadFont(ttfBytes []byte, size int) Font {
	if current == nil {
		return Font(handle.Invalid)
	}
	return Font(current.shaper.LoadFont(ttfBytes, size))
}

// DestroyFont releases a font. A no-op for an invalid or
// already-destroyed handle.
func DestroyFont(f Font) {
	if current == nil {
		return
	}
	current.shaper.DestroyFont(handle.H(f))
}

// FontLineHeight reports a loaded font's line height in pixels.
func FontLineHeight(f Font) float32 {
	if current == nil {
		return 0
	}
	return current.shaper.LineHeight(handle.H(f))
}

// CalculateTextBox reports the (width, height) a string would occupy
// if drawn with f, without touching the GPU.
func CalculateTextBox(f Font, str string) (w, h float32) {
	if current == nil {
		return 0, 0
	}
	return current.shaper.CalculateTextBox(handle.H(f), str)
}

// DrawText shapes str with f and draws it at (x, y), tinted by tint.
func DrawText(f Font, x, y float32, str string, tint Color) {
	if current != nil {
		current.shaper.DrawText(handle.H(f), x, y, str, tint)
	}
}
