// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package event

// Key identifies a physical keyboard key, matching the original libqu
// qu_key enumeration (qu_core.c / libqu.h) so backends can translate
// platform-native scancodes with a simple lookup table.
type Key int32

// KeyInvalid is returned by backends for scancodes with no mapping.
const KeyInvalid Key = -1

const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyGrave
	KeyApostrophe
	KeyMinus
	KeyEqual
	KeyLBracket
	KeyRBracket
	KeyComma
	KeyPeriod
	KeySemicolon
	KeySlash
	KeyBackslash
	KeySpace
	KeyEscape
	KeyBackspace
	KeyTab
	KeyEnter
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyLShift
	KeyRShift
	KeyLCtrl
	KeyRCtrl
	KeyLAlt
	KeyRAlt
	KeyLSuper
	KeyRSuper
	KeyMenu
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPrintScreen
	KeyPause
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPMul
	KeyKPAdd
	KeyKPSub
	KeyKPPoint
	KeyKPDiv
	KeyKPEnter

	KeyCount
)

// KeyState is the per-frame state of one key in the Keyboard snapshot.
type KeyState uint8

const (
	KeyIdle KeyState = iota
	KeyPressed
	KeyReleased
)

// MouseButton identifies a mouse button, matching qu_mouse_button.
type MouseButton int32

const MouseButtonInvalid MouseButton = -1

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle

	MouseButtonCount
)

// Bit returns the bitmask bit used by the mouse-button state bitmask,
// matching qu_mouse_button_bits.
func (b MouseButton) Bit() uint32 { return 1 << uint32(b) }
