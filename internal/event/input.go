// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package event

// MaxTouchInputs matches QU_MAX_TOUCH_INPUTS: the number of simultaneous
// touch points tracked.
const MaxTouchInputs = 16

// Touch is one tracked touch point.
type Touch struct {
	Pressed bool
	X, Y    int32
	DX, DY  int32
}

// Callbacks holds the user-registered edge-triggered input callbacks.
// A nil field means "no callback registered"; Input never allocates or
// calls through a nil field.
type Callbacks struct {
	OnKeyPressed   func(Key)
	OnKeyRepeated  func(Key)
	OnKeyReleased  func(Key)

	OnMouseButtonPressed  func(MouseButton)
	OnMouseButtonReleased func(MouseButton)
	OnMouseCursorMoved    func(x, y, dx, dy int32)
	OnMouseWheelScrolled  func(dx, dy int32)

	OnTouchStarted func(index int32, x, y int32)
	OnTouchEnded   func(index int32)
	OnTouchMoved   func(index int32, x, y, dx, dy int32)
}

// Input is the per-frame input snapshot described by spec.md §4.2: a
// keyboard key-state table, a mouse button bitmask plus cursor/wheel
// accumulators, and a fixed touch-point table. Apply drains a Queue once
// per frame and updates this snapshot in place, firing callbacks on
// state transitions only.
type Input struct {
	keys [KeyCount]KeyState

	buttonMask uint32

	mouseX, mouseY   int32
	mouseDX, mouseDY int32
	wheelDX, wheelDY int32

	touches [MaxTouchInputs]Touch

	active bool

	cb Callbacks
}

// NewInput returns an Input snapshot with every key IDLE and the window
// considered active (focused).
func NewInput(cb Callbacks) *Input {
	return &Input{active: true, cb: cb}
}

// SetCallbacks replaces the registered edge-triggered callbacks,
// letting a caller register handlers after construction (the runtime
// creates the Input snapshot during Initialize, before the
// application has had a chance to register its callbacks).
func (in *Input) SetCallbacks(cb Callbacks) { in.cb = cb }

// KeyState reports the current state of k, or KeyIdle if k is out of range.
func (in *Input) KeyState(k Key) KeyState {
	if k < 0 || k >= KeyCount {
		return KeyIdle
	}
	return in.keys[k]
}

// IsKeyPressed reports whether k is currently held down.
func (in *Input) IsKeyPressed(k Key) bool { return in.KeyState(k) == KeyPressed }

// IsMouseButtonPressed reports whether b is currently held down.
func (in *Input) IsMouseButtonPressed(b MouseButton) bool {
	if b < 0 || b >= MouseButtonCount {
		return false
	}
	return in.buttonMask&b.Bit() != 0
}

// MouseCursor returns the last latched absolute cursor position.
func (in *Input) MouseCursor() (x, y int32) { return in.mouseX, in.mouseY }

// Touch returns the tracked state of touch point index, or the zero
// value if index is out of range.
func (in *Input) Touch(index int32) Touch {
	if index < 0 || int(index) >= MaxTouchInputs {
		return Touch{}
	}
	return in.touches[index]
}

// Active reports whether the window currently has input focus.
func (in *Input) Active() bool { return in.active }

// BeginFrame demotes every RELEASED key back to IDLE and clears the
// per-frame motion/wheel accumulators, per spec.md §4.2's "on frame
// start" rule. Call this once before draining the queue for the frame.
func (in *Input) BeginFrame() {
	for k := range in.keys {
		if in.keys[k] == KeyReleased {
			in.keys[k] = KeyIdle
		}
	}
	in.mouseDX, in.mouseDY = 0, 0
	in.wheelDX, in.wheelDY = 0, 0
	for i := range in.touches {
		in.touches[i].DX, in.touches[i].DY = 0, 0
	}
}

// Apply drains q, updating the snapshot and firing edge-triggered
// callbacks, then emits the end-of-frame cursor/wheel callbacks if their
// accumulators are non-zero. Call BeginFrame immediately before Apply.
func (in *Input) Apply(q *Queue) {
	q.Drain(func(e Event) { in.apply(e) })

	if (in.mouseDX != 0 || in.mouseDY != 0) && in.cb.OnMouseCursorMoved != nil {
		in.cb.OnMouseCursorMoved(in.mouseX, in.mouseY, in.mouseDX, in.mouseDY)
	}
	if (in.wheelDX != 0 || in.wheelDY != 0) && in.cb.OnMouseWheelScrolled != nil {
		in.cb.OnMouseWheelScrolled(in.wheelDX, in.wheelDY)
	}
}

func (in *Input) apply(e Event) {
	switch e.Type {
	case KeyPressed:
		in.pressKey(e.Key)
	case KeyReleased:
		in.releaseKey(e.Key)
	case MouseButtonPressed:
		in.pressButton(e.Button)
	case MouseButtonReleased:
		in.releaseButton(e.Button)
	case MouseCursorMoved:
		in.mouseX, in.mouseY = e.X, e.Y
		in.mouseDX += e.DX
		in.mouseDY += e.DY
	case MouseWheelScrolled:
		in.wheelDX += e.DX
		in.wheelDY += e.DY
	case TouchStarted:
		in.startTouch(e.TouchIndex, e.X, e.Y)
	case TouchEnded:
		in.endTouch(e.TouchIndex)
	case TouchMoved:
		in.moveTouch(e.TouchIndex, e.X, e.Y, e.DX, e.DY)
	case Activated:
		in.active = true
	case Deactivated:
		in.purge()
		in.active = false
	}
}

func (in *Input) pressKey(k Key) {
	if k < 0 || k >= KeyCount {
		return
	}
	switch in.keys[k] {
	case KeyIdle, KeyReleased:
		in.keys[k] = KeyPressed
		if in.cb.OnKeyPressed != nil {
			in.cb.OnKeyPressed(k)
		}
	case KeyPressed:
		if in.cb.OnKeyRepeated != nil {
			in.cb.OnKeyRepeated(k)
		}
	}
}

func (in *Input) releaseKey(k Key) {
	if k < 0 || k >= KeyCount {
		return
	}
	if in.keys[k] == KeyPressed {
		in.keys[k] = KeyReleased
		if in.cb.OnKeyReleased != nil {
			in.cb.OnKeyReleased(k)
		}
	}
}

func (in *Input) pressButton(b MouseButton) {
	if b < 0 || b >= MouseButtonCount {
		return
	}
	if in.buttonMask&b.Bit() == 0 {
		in.buttonMask |= b.Bit()
		if in.cb.OnMouseButtonPressed != nil {
			in.cb.OnMouseButtonPressed(b)
		}
	}
}

func (in *Input) releaseButton(b MouseButton) {
	if b < 0 || b >= MouseButtonCount {
		return
	}
	if in.buttonMask&b.Bit() != 0 {
		in.buttonMask &^= b.Bit()
		if in.cb.OnMouseButtonReleased != nil {
			in.cb.OnMouseButtonReleased(b)
		}
	}
}

func (in *Input) startTouch(index, x, y int32) {
	if index < 0 || int(index) >= MaxTouchInputs {
		return
	}
	in.touches[index] = Touch{Pressed: true, X: x, Y: y}
	if in.cb.OnTouchStarted != nil {
		in.cb.OnTouchStarted(index, x, y)
	}
}

func (in *Input) endTouch(index int32) {
	if index < 0 || int(index) >= MaxTouchInputs {
		return
	}
	in.touches[index] = Touch{}
	if in.cb.OnTouchEnded != nil {
		in.cb.OnTouchEnded(index)
	}
}

func (in *Input) moveTouch(index, x, y, dx, dy int32) {
	if index < 0 || int(index) >= MaxTouchInputs {
		return
	}
	t := &in.touches[index]
	t.X, t.Y = x, y
	t.DX += dx
	t.DY += dy
	if in.cb.OnTouchMoved != nil {
		in.cb.OnTouchMoved(index, x, y, t.DX, t.DY)
	}
}

// purge synthesizes a release for every currently-held key and mouse
// button, in key-then-button order, per spec.md §4.2's focus-loss rule:
// "guarantees no phantom-held input after focus loss."
func (in *Input) purge() {
	for k := Key(0); k < KeyCount; k++ {
		if in.keys[k] == KeyPressed {
			if in.cb.OnKeyReleased != nil {
				in.cb.OnKeyReleased(k)
			}
			in.keys[k] = KeyIdle
		}
	}
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		if in.buttonMask&b.Bit() != 0 {
			in.buttonMask &^= b.Bit()
			if in.cb.OnMouseButtonReleased != nil {
				in.cb.OnMouseButtonReleased(b)
			}
		}
	}
}
