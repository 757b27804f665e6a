// SPDX-FileCopyrightText : © 2024-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galvanizedlogic/qu/internal/handle"
	"github.com/galvanizedlogic/qu/render"
)

func newTestShaper() *Shaper {
	r := render.New(render.NewNullBackend(), 800, 600)
	return NewShaper(r)
}

// No TrueType/OpenType asset ships in this module (none of the retrieval
// pack's example repos bundle a font file either), so the happy-path
// shaping/atlas-growth behavior can only be exercised against a live
// font in an application's own test suite. These tests cover every
// degenerate path instead: malformed input and stale/invalid handles
// must fail soft, per spec.md §7's "resource load failure returns
// handle 0 plus a logged warning."

func TestLoadFontRejectsMalformedBytes(t *testing.T) {
	s := newTestShaper()

	h := s.LoadFont([]byte("not a font"), 16)

	assert.Equal(t, handle.Invalid, h)
}

func TestLoadFontRejectsEmptyInput(t *testing.T) {
	s := newTestShaper()

	h := s.LoadFont(nil, 16)

	assert.Equal(t, handle.Invalid, h)
}

func TestDestroyFontOnInvalidHandleIsNoop(t *testing.T) {
	s := newTestShaper()

	assert.NotPanics(t, func() { s.DestroyFont(handle.Invalid) })
}

func TestLineHeightOfStaleHandleIsZero(t *testing.T) {
	s := newTestShaper()

	assert.Equal(t, float32(0), s.LineHeight(handle.Invalid))
}

func TestCalculateTextBoxOfStaleHandleIsZero(t *testing.T) {
	s := newTestShaper()

	w, h := s.CalculateTextBox(handle.Invalid, "hello")

	assert.Equal(t, float32(0), w)
	assert.Equal(t, float32(0), h)
}

func TestDrawTextOfStaleHandleIsNoop(t *testing.T) {
	s := newTestShaper()

	assert.NotPanics(t, func() {
		s.DrawText(handle.Invalid, 0, 0, "hello", render.Color{A: 1})
	})
}

func TestDestroyFontIsIdempotent(t *testing.T) {
	s := newTestShaper()

	h := s.LoadFont([]byte("garbage"), 16)
	assert.Equal(t, handle.Invalid, h)

	s.DestroyFont(h)
	s.DestroyFont(h)
}
