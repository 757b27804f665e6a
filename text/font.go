// SPDX-FileCopyrightText : © 2024-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package text implements the text shaper described by spec.md §4.6: a
// Font pairs a loaded TrueType/OpenType face with a GPU texture atlas,
// caches rasterized glyphs by codepoint, and emits textured vertex runs
// for the FONT brush the render package's Renderer applies. It
// generalizes the teacher's load/ttf.go (golang.org/x/image/font +
// font/opentype atlas baking) from a one-shot "bake everything into one
// fixed image" loader into the spec's on-demand cache-and-grow atlas,
// addressed through the same internal/handle table every other
// resource kind uses.
package text

import (
	"image"
	"image/draw"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/galvanizedlogic/qu/internal/handle"
	"github.com/galvanizedlogic/qu/render"
)

var logger = log.With("module", "text")

// atlasWidth is the fixed atlas texture width; height doubles from
// atlasInitialHeight as glyphs overflow it, matching spec.md §4.6:
// "a single 2D texture ... sized e.g. 4096 x H where H is doubled as
// needed."
const (
	atlasWidth         = 4096
	atlasInitialHeight = 256
	glyphXPad          = 1
	glyphYPad          = 1
)

// asciiRange is the ASCII range U+0020..U+00FF pre-shaped and rasterized
// on load, per spec.md §4.6.
var asciiRange = func() []rune {
	rs := make([]rune, 0, 0xE0)
	for r := rune(0x20); r <= 0xFF; r++ {
		rs = append(rs, r)
	}
	return rs
}()

// Glyph is one cached character's atlas placement plus shaping metrics,
// matching spec.md §3's Glyph entity.
type Glyph struct {
	Codepoint rune

	U0, V0, U1, V1 float32 // atlas UV rect

	Width, Height int // pixel size in the atlas

	XAdvance, YAdvance float32
	XBearing, YBearing float32
}

// glyphRaster keeps a glyph's rasterized alpha image around so the
// atlas can be rebuilt from scratch on a height grow without
// re-invoking the font face (spec.md §9 "Texture atlas growth": option
// (a), re-rasterize/reupload every cached glyph after growth).
type glyphRaster struct {
	glyph Glyph
	pix   *image.Alpha
}

// Font is a loaded face plus its atlas and glyph cache, addressed by
// handle.H like every other resource kind.
type Font struct {
	face       font.Face
	lineHeight float32

	atlas      handle.H // render.Texture handle, channels=1 (alpha only)
	atlasH     int
	cursorX    int
	cursorY    int
	rowHeight  int

	glyphs  map[rune]*glyphRaster
	renderer *render.Renderer
}

// Shaper owns every loaded Font and the Renderer it allocates atlas
// textures from.
type Shaper struct {
	renderer *render.Renderer
	fonts    *handle.List[Font]
}

// NewShaper returns a Shaper that allocates atlas textures from r.
func NewShaper(r *render.Renderer) *Shaper {
	return &Shaper{renderer: r, fonts: handle.New[Font](func(f *Font) {
		if f.atlas != handle.Invalid {
			r.DestroyTexture(f.atlas)
		}
	})}
}

// LoadFont parses ttfBytes as a TrueType/OpenType font at the given
// point size, pre-shapes the ASCII range into a fresh atlas, and
// returns a handle to it, or the invalid handle on any failure
// (spec.md §4.7/§7: resource load failure returns handle 0 plus a
// logged warning).
func (s *Shaper) LoadFont(ttfBytes []byte, size int) handle.H {
	parsed, err := opentype.Parse(ttfBytes)
	if err != nil {
		logger.Warn("load font: parse failed", "err", err)
		return handle.Invalid
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		logger.Warn("load font: face creation failed", "err", err)
		return handle.Invalid
	}

	f := Font{
		face:       face,
		lineHeight: float32(face.Metrics().Height.Round()),
		atlasH:     atlasInitialHeight,
		glyphs:     make(map[rune]*glyphRaster),
		renderer:   s.renderer,
	}
	f.atlas = s.renderer.CreateTexture(atlasWidth, f.atlasH, 1, make([]byte, atlasWidth*f.atlasH))
	if f.atlas == handle.Invalid {
		logger.Warn("load font: atlas texture creation failed")
		return handle.Invalid
	}

	for _, r := range asciiRange {
		f.cacheGlyph(r)
	}

	return s.fonts.Add(f)
}

// DestroyFont releases a font loaded with LoadFont. A no-op for an
// invalid or already-destroyed handle.
func (s *Shaper) DestroyFont(h handle.H) { s.fonts.Remove(h) }

// LineHeight reports a loaded font's line height in pixels, or 0 for a
// stale handle.
func (s *Shaper) LineHeight(h handle.H) float32 {
	f := s.fonts.Get(h)
	if f == nil {
		return 0
	}
	return f.lineHeight
}

// cacheGlyph rasterizes r via the face API and inserts it into the
// atlas, per spec.md §4.6: "on miss, rasterize via the font-face API
// and insert." It is a no-op if r is already cached.
func (f *Font) cacheGlyph(r rune) *glyphRaster {
	if g, ok := f.glyphs[r]; ok {
		return g
	}

	bounds, adv, ok := f.face.GlyphBounds(r)
	if !ok {
		return nil
	}
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	dot := fixed.P(-bounds.Min.X.Floor(), -bounds.Min.Y.Floor())
	dr, mask, maskp, _, _ := f.face.Glyph(dot, r)
	draw.DrawMask(dst, dr.Sub(dr.Min), image.White, image.Point{}, mask, maskp, draw.Over)

	f.placeInAtlas(width, height)

	glyph := Glyph{
		Codepoint: r,
		Width:     width,
		Height:    height,
		XAdvance:  float32(adv.Round()),
		XBearing:  float32(bounds.Min.X.Round()),
		YBearing:  float32(-bounds.Min.Y.Round()),
	}
	glyph.U0 = float32(f.cursorX) / float32(atlasWidth)
	glyph.V0 = float32(f.cursorY) / float32(f.atlasH)
	glyph.U1 = float32(f.cursorX+width) / float32(atlasWidth)
	glyph.V1 = float32(f.cursorY+height) / float32(f.atlasH)

	gr := &glyphRaster{glyph: glyph, pix: dst}
	f.renderer.UpdateSubTexture(f.atlas, f.cursorX, f.cursorY, width, height, 1, dst.Pix)

	f.glyphs[r] = gr
	f.cursorX += width + glyphXPad
	if height+glyphYPad > f.rowHeight {
		f.rowHeight = height + glyphYPad
	}
	return gr
}

// placeInAtlas advances the packing cursor for a glyph of (width,
// height), wrapping to the next row when it doesn't fit horizontally
// and growing the atlas's height by doubling when it doesn't fit
// vertically either, per spec.md §4.6's "Atlas layout".
func (f *Font) placeInAtlas(width, height int) {
	if f.cursorX+width > atlasWidth {
		f.cursorX = 0
		f.cursorY += f.rowHeight
		f.rowHeight = 0
	}
	if f.cursorY+height > f.atlasH {
		f.growAtlas()
	}
}

// growAtlas doubles the atlas texture's height and re-uploads every
// previously cached glyph's raster, keeping their packed pixel
// positions unchanged — spec.md §9's "grow by doubling in H only"
// strategy, since every existing glyph's (x, y) packing position is
// still valid in the taller texture. Each glyph's V coordinates are
// halved to match the doubled height.
func (f *Font) growAtlas() {
	newH := f.atlasH * 2
	old := f.atlas
	f.atlas = f.renderer.CreateTexture(atlasWidth, newH, 1, make([]byte, atlasWidth*newH))
	for _, gr := range f.glyphs {
		x := int(gr.glyph.U0 * atlasWidth)
		y := int(gr.glyph.V0 * float32(f.atlasH))
		f.renderer.UpdateSubTexture(f.atlas, x, y, gr.glyph.Width, gr.glyph.Height, 1, gr.pix.Pix)
	}
	f.renderer.DestroyTexture(old)
	f.atlasH = newH

	// Every glyph's pixel position is unchanged; only the atlas height
	// doubled, so each V coordinate (normalized against height) halves.
	for _, gr := range f.glyphs {
		gr.glyph.V0 /= 2
		gr.glyph.V1 /= 2
	}
}

// glyphAt returns the glyph metrics for r, rasterizing and inserting it
// into the atlas on first use.
func (f *Font) glyphAt(r rune) (Glyph, bool) {
	gr := f.cacheGlyph(r)
	if gr == nil {
		return Glyph{}, false
	}
	return gr.glyph, true
}

// CalculateTextBox runs the same shaping loop as DrawText but only
// accumulates the advance sum and the font's line height, touching no
// GPU state, matching spec.md §4.6. A glyph not yet cached is measured
// through the face's advance without being rasterized into the atlas.
func (s *Shaper) CalculateTextBox(h handle.H, str string) (w, height float32) {
	f := s.fonts.Get(h)
	if f == nil {
		return 0, 0
	}
	var width float32
	for _, r := range str {
		if gr, ok := f.glyphs[r]; ok {
			width += gr.glyph.XAdvance
			continue
		}
		if adv, ok := f.face.GlyphAdvance(r); ok {
			width += float32(adv.Round())
		}
	}
	return width, f.lineHeight
}

// DrawText shapes str with font h and issues one textured draw call
// with brush=FONT, pen-advancing left to right from (x, y), matching
// spec.md §4.6's per-glyph vertex generation.
func (s *Shaper) DrawText(h handle.H, x, y float32, str string, tint render.Color) {
	f := s.fonts.Get(h)
	if f == nil {
		return
	}

	verts := make([]float32, 0, len(str)*6*4)
	pen := x

	for _, r := range str {
		g, ok := f.glyphAt(r)
		if !ok {
			continue
		}

		x0 := pen + g.XBearing
		y0 := y - g.YBearing + f.lineHeight
		x1 := x0 + float32(g.Width)
		y1 := y0 + float32(g.Height)

		// Two triangles, six vertices, per spec.md §4.6.
		verts = append(verts,
			x0, y0, g.U0, g.V0,
			x1, y0, g.U1, g.V0,
			x1, y1, g.U1, g.V1,

			x0, y0, g.U0, g.V0,
			x1, y1, g.U1, g.V1,
			x0, y1, g.U0, g.V1,
		)

		pen += g.XAdvance
	}

	s.renderer.DrawGlyphRun(f.atlas, verts, tint)
}
