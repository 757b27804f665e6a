// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package qu

import "github.com/galvanizedlogic/qu/platform"

// WindowTitle reports the current window title.
func WindowTitle() string {
	if current == nil {
		return ""
	}
	return current.platform.WindowTitle()
}

// SetWindowTitle changes the window title.
func SetWindowTitle(title string) {
	if current == nil {
		return
	}
	current.platform.SetWindowTitle(title)
}

// WindowSize reports the window's current pixel size.
func WindowSize() (width, height int) {
	if current == nil {
		return 0, 0
	}
	return current.platform.WindowSize()
}

// SetWindowSize resizes the window and updates the renderer's window
// surface and projection to match.
func SetWindowSize(width, height int) {
	if current == nil {
		return
	}
	current.platform.SetWindowSize(width, height)
	current.renderer.Resize(width, height)
}

// WindowActive reports whether the window currently has input focus.
func WindowActive() bool {
	if current == nil {
		return false
	}
	return current.input.Active()
}

// SetWindowFlags records flags in the runtime's window attributes.
// Restored per SPEC_FULL.md's supplemented qu_set_window_flags. The
// window created by Initialize is not changed; window flags take effect
// only when passed to Initialize through WindowFlags.
func SetWindowFlags(flags platform.WindowFlag) {
	if current == nil {
		return
	}
	current.attrs.windowFlags = flags
}

// SetCanvasFlags changes the canvas's sampling and letterbox-vs-stretch
// fit behavior. Restored per SPEC_FULL.md's supplemented
// qu_set_canvas_flags. A no-op if no canvas was enabled via Canvas(...).
func SetCanvasFlags(flags CanvasFlag) {
	if current == nil {
		return
	}
	current.canvasFlags = flags
	current.renderer.SetCanvasSmooth(flags&CanvasLinear != 0)
	current.renderer.SetCanvasStretch(flags&CanvasStretch != 0)
}
