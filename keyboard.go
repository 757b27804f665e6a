// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package qu

import "github.com/galvanizedlogic/qu/internal/event"

// Key identifies a physical keyboard key.
type Key = event.Key

// Re-export the key constants so callers never need to import the
// internal event package directly.
const (
	Key0 = event.Key0
	Key1 = event.Key1
	Key2 = event.Key2
	Key3 = event.Key3
	Key4 = event.Key4
	Key5 = event.Key5
	Key6 = event.Key6
	Key7 = event.Key7
	Key8 = event.Key8
	Key9 = event.Key9

	KeyA = event.KeyA
	KeyB = event.KeyB
	KeyC = event.KeyC
	KeyD = event.KeyD
	KeyE = event.KeyE
	KeyF = event.KeyF
	KeyG = event.KeyG
	KeyH = event.KeyH
	KeyI = event.KeyI
	KeyJ = event.KeyJ
	KeyK = event.KeyK
	KeyL = event.KeyL
	KeyM = event.KeyM
	KeyN = event.KeyN
	KeyO = event.KeyO
	KeyP = event.KeyP
	KeyQ = event.KeyQ
	KeyR = event.KeyR
	KeyS = event.KeyS
	KeyT = event.KeyT
	KeyU = event.KeyU
	KeyV = event.KeyV
	KeyW = event.KeyW
	KeyX = event.KeyX
	KeyY = event.KeyY
	KeyZ = event.KeyZ

	KeySpace     = event.KeySpace
	KeyEscape    = event.KeyEscape
	KeyBackspace = event.KeyBackspace
	KeyTab       = event.KeyTab
	KeyEnter     = event.KeyEnter

	KeyUp    = event.KeyUp
	KeyDown  = event.KeyDown
	KeyLeft  = event.KeyLeft
	KeyRight = event.KeyRight

	KeyLShift = event.KeyLShift
	KeyRShift = event.KeyRShift
	KeyLCtrl  = event.KeyLCtrl
	KeyRCtrl  = event.KeyRCtrl
	KeyLAlt   = event.KeyLAlt
	KeyRAlt   = event.KeyRAlt

	KeyInvalid = event.KeyInvalid
)

// IsKeyPressed reports whether k is currently held down.
func IsKeyPressed(k Key) bool {
	if current == nil {
		return false
	}
	return current.input.IsKeyPressed(k)
}

// KeyState reports k's per-frame state machine position: idle, pressed,
// or just-released.
func KeyState(k Key) event.KeyState {
	if current == nil {
		return event.KeyIdle
	}
	return current.input.KeyState(k)
}

// OnKeyPressed registers a callback fired exactly once per IDLE→PRESSED
// edge, per spec.md §4.2's key state machine.
func OnKeyPressed(fn func(Key)) { setCallbacks(func(cb *event.Callbacks) { cb.OnKeyPressed = fn }) }

// OnKeyRepeated registers a callback fired once per consecutive
// KEY_PRESSED event while a key is already held.
func OnKeyRepeated(fn func(Key)) { setCallbacks(func(cb *event.Callbacks) { cb.OnKeyRepeated = fn }) }

// OnKeyReleased registers a callback fired exactly once per
// PRESSED→RELEASED edge.
func OnKeyReleased(fn func(Key)) { setCallbacks(func(cb *event.Callbacks) { cb.OnKeyReleased = fn }) }

// registered mirrors the runtime's registered set so repeated Setters
// can patch one field without clobbering the others; event.Input has
// no getter, so the runtime keeps its own copy alongside it.
var registered event.Callbacks

func setCallbacks(patch func(*event.Callbacks)) {
	patch(&registered)
	if current != nil {
		current.input.SetCallbacks(registered)
	}
}
