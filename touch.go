// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package qu

import "github.com/galvanizedlogic/qu/internal/event"

// MaxTouchInputs is the number of simultaneously tracked touch points.
const MaxTouchInputs = event.MaxTouchInputs

// Touch is one tracked touch point's pressed state, canvas-space
// position, and per-frame delta.
type Touch struct {
	Pressed bool
	X, Y    int32
	DX, DY  int32
}

// TouchAt returns the tracked state of touch point index, converting
// its position through the window→canvas transform.
func TouchAt(index int32) Touch {
	if current == nil {
		return Touch{}
	}
	t := current.input.Touch(index)
	cx, cy := current.renderer.WindowToCanvas(t.X, t.Y)
	return Touch{Pressed: t.Pressed, X: cx, Y: cy, DX: t.DX, DY: t.DY}
}

// OnTouchStarted registers a callback fired when a new touch point
// begins.
func OnTouchStarted(fn func(index int32, x, y int32)) {
	setCallbacks(func(cb *event.Callbacks) { cb.OnTouchStarted = fn })
}

// OnTouchEnded registers a callback fired when a touch point lifts.
func OnTouchEnded(fn func(index int32)) {
	setCallbacks(func(cb *event.Callbacks) { cb.OnTouchEnded = fn })
}

// OnTouchMoved registers a callback fired when a touch point moves.
func OnTouchMoved(fn func(index int32, x, y, dx, dy int32)) {
	setCallbacks(func(cb *event.Callbacks) { cb.OnTouchMoved = fn })
}
