// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package render

// draw.go holds the public draw submission API: primitives, textured
// quads, and surface blits. Every draw funnels vertex data through one
// shared scratch buffer re-uploaded per call (spec.md §4.5's "Draw
// submission": "a single shared vertex buffer is re-uploaded per draw,
// streaming usage hint").

import (
	"math"

	"github.com/galvanizedlogic/qu/internal/handle"
)

// scratch2 and scratch4 are the shared per-call vertex scratch buffers
// for the two vertex formats, reused across draws to avoid per-call
// allocation.
var (
	scratch2 = make([]float32, 0, 256)
	scratch4 = make([]float32, 0, 256)
)

// DrawPoint draws a single point at (x, y).
func (r *Renderer) DrawPoint(x, y float32, c Color) {
	r.beginDraw(BrushSolid, Fmt2XY)
	r.applyColor(c)
	v := append(scratch2[:0], x, y)
	r.backend.UploadVertexData(Fmt2XY, v)
	r.backend.Draw(DrawPoints, 0, 1)
}

// DrawLine draws a line segment from (x1, y1) to (x2, y2).
func (r *Renderer) DrawLine(x1, y1, x2, y2 float32, c Color) {
	r.beginDraw(BrushSolid, Fmt2XY)
	r.applyColor(c)
	v := append(scratch2[:0], x1, y1, x2, y2)
	r.backend.UploadVertexData(Fmt2XY, v)
	r.backend.Draw(DrawLines, 0, 2)
}

// DrawTriangle draws a filled triangle with vertices (x1,y1),(x2,y2),(x3,y3).
func (r *Renderer) DrawTriangle(x1, y1, x2, y2, x3, y3 float32, c Color) {
	r.beginDraw(BrushSolid, Fmt2XY)
	r.applyColor(c)
	v := append(scratch2[:0], x1, y1, x2, y2, x3, y3)
	r.backend.UploadVertexData(Fmt2XY, v)
	r.backend.Draw(DrawTriangles, 0, 3)
}

// DrawRectangle draws the rectangle at (x, y) with size (w, h), filled
// with fill and outlined with outline. Each pass is gated on its own
// color's A component: the fill pass runs only if fill.A > 0 and the
// outline pass only if outline.A > 0, so a fully transparent fill gives
// an outline-only rectangle and a fully transparent outline a fill-only
// one.
func (r *Renderer) DrawRectangle(x, y, w, h float32, fill, outline Color) {
	r.beginDraw(BrushSolid, Fmt2XY)

	corners := [4][2]float32{
		{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h},
	}

	if fill.A > 0 {
		r.applyColor(fill)
		v := append(scratch2[:0],
			corners[0][0], corners[0][1],
			corners[1][0], corners[1][1],
			corners[2][0], corners[2][1],
			corners[3][0], corners[3][1],
		)
		r.backend.UploadVertexData(Fmt2XY, v)
		r.backend.Draw(DrawTriangleFan, 0, 4)
	}
	if outline.A > 0 {
		r.applyColor(outline)
		v := append(scratch2[:0],
			corners[0][0], corners[0][1],
			corners[1][0], corners[1][1],
			corners[2][0], corners[2][1],
			corners[3][0], corners[3][1],
		)
		r.backend.UploadVertexData(Fmt2XY, v)
		r.backend.Draw(DrawLineLoop, 0, 4)
	}
}

// circleSegmentK controls circle tessellation density: segments =
// max(6, radius*circleSegmentK), matching spec.md §4.5's
// "max(6, radius * k) for some k".
const circleSegmentK = 0.5

// DrawCircle draws a circle centered at (cx, cy) with the given radius,
// filled with fill and outlined with outline.
func (r *Renderer) DrawCircle(cx, cy, radius float32, fill, outline Color) {
	segments := int(radius * circleSegmentK)
	if segments < 6 {
		segments = 6
	}

	r.beginDraw(BrushSolid, Fmt2XY)

	pts := make([]float32, 0, 2*segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		pts = append(pts, cx+radius*float32(math.Cos(theta)), cy+radius*float32(math.Sin(theta)))
	}

	if fill.A > 0 {
		r.applyColor(fill)
		r.backend.UploadVertexData(Fmt2XY, pts)
		r.backend.Draw(DrawTriangleFan, 0, segments)
	}
	if outline.A > 0 {
		r.applyColor(outline)
		r.backend.UploadVertexData(Fmt2XY, pts)
		r.backend.Draw(DrawLineLoop, 0, segments)
	}
}

// CreateTexture allocates a GPU texture from raw CPU pixels (RGBA/RGB/
// GA/G order per channels, matching the source image's actual channel
// count per spec.md §4.7), and returns the invalid handle on backend
// failure.
func (r *Renderer) CreateTexture(width, height, channels int, pixels []byte) handle.H {
	tb, err := r.backend.LoadTexture(width, height, channels, pixels)
	if err != nil {
		logger.Warn("create texture failed", "err", err)
		return handle.Invalid
	}
	t := Texture{Width: width, Height: height, Channels: channels, backend: tb}
	return r.textures.Add(t)
}

// UpdateSubTexture replaces a rectangular region of an existing texture
// with new pixel data, used by the text package to write freshly
// rasterized glyphs into a font atlas.
func (r *Renderer) UpdateSubTexture(h handle.H, x, y, width, height, channels int, pixels []byte) {
	t := r.textures.Get(h)
	if t == nil {
		return
	}
	r.backend.UpdateSubTexture(t.backend, x, y, width, height, channels, pixels)
}

// DestroyTexture releases a texture created with CreateTexture. A no-op
// for an invalid or already-destroyed handle.
func (r *Renderer) DestroyTexture(h handle.H) { r.textures.Remove(h) }

// SetTextureSmooth toggles linear (true) vs nearest (false) sampling.
func (r *Renderer) SetTextureSmooth(h handle.H, smooth bool) {
	t := r.textures.Get(h)
	if t == nil {
		return
	}
	t.Smooth = smooth
	r.backend.SetTextureSmooth(t.backend, smooth)
}

// DrawTexture draws the whole texture referenced by h as a quad at
// (x, y) with size (w, hgt). A stale or invalid handle is a silent
// no-op, per spec.md §4.5's "Failure semantics: draws against invalid
// handles are silent no-ops."
func (r *Renderer) DrawTexture(h handle.H, x, y, w, hgt float32, tint Color) {
	t := r.textures.Get(h)
	if t == nil {
		return
	}
	r.drawTexturedQuad(t, x, y, w, hgt, 0, 0, 1, 1, tint, BrushTextured)
}

// DrawSubTexture draws the (u0,v0)-(u1,v1) normalized region of the
// texture referenced by h as a quad at (x, y) with size (w, hgt).
func (r *Renderer) DrawSubTexture(h handle.H, x, y, w, hgt, u0, v0, u1, v1 float32, tint Color) {
	t := r.textures.Get(h)
	if t == nil {
		return
	}
	r.drawTexturedQuad(t, x, y, w, hgt, u0, v0, u1, v1, tint, BrushTextured)
}

// DrawSurface draws a previously created surface's resolved color
// texture as a quad, e.g. for compositing a user render target.
func (r *Renderer) DrawSurface(h handle.H, x, y, w, hgt float32, tint Color) {
	s := r.surfaces.Get(h)
	if s == nil {
		return
	}
	r.drawTexturedQuad(&s.Texture, x, y, w, hgt, 0, 0, 1, 1, tint, BrushTextured)
}

func (r *Renderer) drawTexturedQuad(t *Texture, x, y, w, hgt, u0, v0, u1, v1 float32, tint Color, brush Brush) {
	r.beginDraw(brush, Fmt4XYST)
	r.applyTexture(t)
	r.applyColor(tint)

	v := append(scratch4[:0],
		x, y, u0, v0,
		x+w, y, u1, v0,
		x+w, y+hgt, u1, v1,
		x, y+hgt, u0, v1,
	)
	r.backend.UploadVertexData(Fmt4XYST, v)
	r.backend.Draw(DrawTriangleFan, 0, 4)
}

// DrawGlyphRun draws a precomputed run of glyph quads (6 vertices each,
// two triangles, matching spec.md §4.6: "emit 6 textured vertices per
// glyph") in a single textured draw, used by the text shaper so that an
// entire shaped string issues exactly one draw call. verts is a flat
// Fmt4XYST vertex array (x, y, s, t repeating).
func (r *Renderer) DrawGlyphRun(atlas handle.H, verts []float32, tint Color) {
	t := r.textures.Get(atlas)
	if t == nil || len(verts) == 0 {
		return
	}
	r.beginDraw(BrushFont, Fmt4XYST)
	r.applyTexture(t)
	r.applyColor(tint)
	r.backend.UploadVertexData(Fmt4XYST, verts)
	r.backend.Draw(DrawTriangles, 0, len(verts)/Fmt4XYST.Stride())
}
