// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package qu

import "github.com/galvanizedlogic/qu/internal/event"

// MouseButton identifies a mouse button.
type MouseButton = event.MouseButton

const (
	MouseButtonLeft   = event.MouseButtonLeft
	MouseButtonRight  = event.MouseButtonRight
	MouseButtonMiddle = event.MouseButtonMiddle
)

// IsMouseButtonPressed reports whether b is currently held down.
func IsMouseButtonPressed(b MouseButton) bool {
	if current == nil {
		return false
	}
	return current.input.IsMouseButtonPressed(b)
}

// MouseCursor returns the cursor's last latched position, in canvas
// logical coordinates (spec.md §4.2: "Cursor/touch positions exposed to
// the user are first routed through the renderer's window→canvas
// transform").
func MouseCursor() (x, y int32) {
	if current == nil {
		return 0, 0
	}
	wx, wy := current.input.MouseCursor()
	return current.renderer.WindowToCanvas(wx, wy)
}

// OnMouseButtonPressed registers an edge-triggered mouse button press
// callback.
func OnMouseButtonPressed(fn func(MouseButton)) {
	setCallbacks(func(cb *event.Callbacks) { cb.OnMouseButtonPressed = fn })
}

// OnMouseButtonReleased registers an edge-triggered mouse button
// release callback.
func OnMouseButtonReleased(fn func(MouseButton)) {
	setCallbacks(func(cb *event.Callbacks) { cb.OnMouseButtonReleased = fn })
}

// OnMouseCursorMoved registers the once-per-frame cursor motion
// callback, fired only if the accumulated delta is non-zero.
func OnMouseCursorMoved(fn func(x, y, dx, dy int32)) {
	setCallbacks(func(cb *event.Callbacks) { cb.OnMouseCursorMoved = fn })
}

// OnMouseWheelScrolled registers the once-per-frame wheel delta
// callback, fired only if the accumulated delta is non-zero.
func OnMouseWheelScrolled(fn func(dx, dy int32)) {
	setCallbacks(func(cb *event.Callbacks) { cb.OnMouseWheelScrolled = fn })
}
