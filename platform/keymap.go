// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/galvanizedlogic/qu/internal/event"
)

// glfwKeys maps glfw.Key scancodes to the portable event.Key space, the
// same lookup-table approach the original's per-platform core
// implementations use to translate native key codes (qu_x11_core.c,
// qu_win32_core.c each carry their own table).
var glfwKeys = map[glfw.Key]event.Key{
	glfw.Key0: event.Key0, glfw.Key1: event.Key1, glfw.Key2: event.Key2,
	glfw.Key3: event.Key3, glfw.Key4: event.Key4, glfw.Key5: event.Key5,
	glfw.Key6: event.Key6, glfw.Key7: event.Key7, glfw.Key8: event.Key8,
	glfw.Key9: event.Key9,

	glfw.KeyA: event.KeyA, glfw.KeyB: event.KeyB, glfw.KeyC: event.KeyC,
	glfw.KeyD: event.KeyD, glfw.KeyE: event.KeyE, glfw.KeyF: event.KeyF,
	glfw.KeyG: event.KeyG, glfw.KeyH: event.KeyH, glfw.KeyI: event.KeyI,
	glfw.KeyJ: event.KeyJ, glfw.KeyK: event.KeyK, glfw.KeyL: event.KeyL,
	glfw.KeyM: event.KeyM, glfw.KeyN: event.KeyN, glfw.KeyO: event.KeyO,
	glfw.KeyP: event.KeyP, glfw.KeyQ: event.KeyQ, glfw.KeyR: event.KeyR,
	glfw.KeyS: event.KeyS, glfw.KeyT: event.KeyT, glfw.KeyU: event.KeyU,
	glfw.KeyV: event.KeyV, glfw.KeyW: event.KeyW, glfw.KeyX: event.KeyX,
	glfw.KeyY: event.KeyY, glfw.KeyZ: event.KeyZ,

	glfw.KeyGraveAccent: event.KeyGrave,
	glfw.KeyApostrophe:  event.KeyApostrophe,
	glfw.KeyMinus:       event.KeyMinus,
	glfw.KeyEqual:       event.KeyEqual,
	glfw.KeyLeftBracket: event.KeyLBracket,
	glfw.KeyRightBracket: event.KeyRBracket,
	glfw.KeyComma:       event.KeyComma,
	glfw.KeyPeriod:      event.KeyPeriod,
	glfw.KeySemicolon:   event.KeySemicolon,
	glfw.KeySlash:       event.KeySlash,
	glfw.KeyBackslash:   event.KeyBackslash,
	glfw.KeySpace:       event.KeySpace,
	glfw.KeyEscape:      event.KeyEscape,
	glfw.KeyBackspace:   event.KeyBackspace,
	glfw.KeyTab:         event.KeyTab,
	glfw.KeyEnter:       event.KeyEnter,

	glfw.KeyF1: event.KeyF1, glfw.KeyF2: event.KeyF2, glfw.KeyF3: event.KeyF3,
	glfw.KeyF4: event.KeyF4, glfw.KeyF5: event.KeyF5, glfw.KeyF6: event.KeyF6,
	glfw.KeyF7: event.KeyF7, glfw.KeyF8: event.KeyF8, glfw.KeyF9: event.KeyF9,
	glfw.KeyF10: event.KeyF10, glfw.KeyF11: event.KeyF11, glfw.KeyF12: event.KeyF12,

	glfw.KeyUp: event.KeyUp, glfw.KeyDown: event.KeyDown,
	glfw.KeyLeft: event.KeyLeft, glfw.KeyRight: event.KeyRight,

	glfw.KeyLeftShift: event.KeyLShift, glfw.KeyRightShift: event.KeyRShift,
	glfw.KeyLeftControl: event.KeyLCtrl, glfw.KeyRightControl: event.KeyRCtrl,
	glfw.KeyLeftAlt: event.KeyLAlt, glfw.KeyRightAlt: event.KeyRAlt,
	glfw.KeyLeftSuper: event.KeyLSuper, glfw.KeyRightSuper: event.KeyRSuper,
	glfw.KeyMenu: event.KeyMenu,

	glfw.KeyPageUp: event.KeyPageUp, glfw.KeyPageDown: event.KeyPageDown,
	glfw.KeyHome: event.KeyHome, glfw.KeyEnd: event.KeyEnd,
	glfw.KeyInsert: event.KeyInsert, glfw.KeyDelete: event.KeyDelete,
	glfw.KeyPrintScreen: event.KeyPrintScreen, glfw.KeyPause: event.KeyPause,
	glfw.KeyCapsLock: event.KeyCapsLock, glfw.KeyScrollLock: event.KeyScrollLock,
	glfw.KeyNumLock: event.KeyNumLock,

	glfw.KeyKP0: event.KeyKP0, glfw.KeyKP1: event.KeyKP1, glfw.KeyKP2: event.KeyKP2,
	glfw.KeyKP3: event.KeyKP3, glfw.KeyKP4: event.KeyKP4, glfw.KeyKP5: event.KeyKP5,
	glfw.KeyKP6: event.KeyKP6, glfw.KeyKP7: event.KeyKP7, glfw.KeyKP8: event.KeyKP8,
	glfw.KeyKP9: event.KeyKP9,
	glfw.KeyKPMultiply: event.KeyKPMul, glfw.KeyKPAdd: event.KeyKPAdd,
	glfw.KeyKPSubtract: event.KeyKPSub, glfw.KeyKPDecimal: event.KeyKPPoint,
	glfw.KeyKPDivide: event.KeyKPDiv, glfw.KeyKPEnter: event.KeyKPEnter,
}

func translateKey(k glfw.Key) event.Key {
	if mapped, ok := glfwKeys[k]; ok {
		return mapped
	}
	return event.KeyInvalid
}

func translateMouseButton(b glfw.MouseButton) event.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return event.MouseButtonLeft
	case glfw.MouseButtonRight:
		return event.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return event.MouseButtonMiddle
	default:
		return event.MouseButtonInvalid
	}
}
