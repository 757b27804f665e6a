// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateThenInverseReturnsToOrigin(t *testing.T) {
	m := Translate(Identity(), 5, -3)
	back := Translate(m, -5, 3)
	assert.InDelta(t, 0, back.Wx, 1e-5)
	assert.InDelta(t, 0, back.Wy, 1e-5)
}

func TestMatrixStackPushPopIsolatesTranslate(t *testing.T) {
	ms := newMatrixStack()
	ms.Translate(10, 20)
	ms.Push()
	ms.Translate(1, 1)
	ms.Pop()
	top := ms.Top()
	assert.Equal(t, float32(10), top.Wx)
	assert.Equal(t, float32(20), top.Wy)
}

func TestMatrixStackPopUnderflowClampsToBottom(t *testing.T) {
	ms := newMatrixStack()
	ms.Pop()
	ms.Pop()
	assert.Equal(t, Identity(), ms.Top())
}

func TestMatrixStackPushOverflowIsClamped(t *testing.T) {
	ms := newMatrixStack()
	for i := 0; i < maxMatrixDepth+5; i++ {
		ms.Push()
	}
	assert.Equal(t, maxMatrixDepth-1, ms.top)
}

func TestOrthoCentersOrigin(t *testing.T) {
	proj := Ortho(0, 0, 100, 100, 0)
	// The point (0,0) should map to the center of clip space (0,0,_,1).
	x := 0*proj.Xx + 0*proj.Yx + 0*proj.Zx + proj.Wx
	y := 0*proj.Xy + 0*proj.Yy + 0*proj.Zy + proj.Wy
	assert.InDelta(t, 0, x, 1e-5)
	assert.InDelta(t, 0, y, 1e-5)
}
