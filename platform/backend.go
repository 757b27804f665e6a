// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package platform defines the windowing/graphics-context backend
// contract and the joystick backend contract, mirroring the original's
// qu_core_impl and qu_joystick_impl dispatch tables (qu_core.h). Each
// backend is tried in a probe → init → terminate order by the runtime's
// selection loop; concrete backends live in this package's glfw_backend.go
// (desktop) and null.go (headless/testing) files.
package platform

import "github.com/galvanizedlogic/qu/internal/event"

// Backend is one windowing/graphics-context implementation: GLFW on
// desktop, a future web/mobile backend, or the null backend used for
// headless operation and tests.
type Backend interface {
	// Probe reports whether this backend can run in the current
	// environment without fully initializing it (e.g. can a display be
	// opened). Probe must be cheap and side-effect-free.
	Probe() error

	// Init performs the actual window/context creation. queue is where
	// the backend pushes translated input events every ProcessEvents call.
	Init(cfg WindowConfig, queue *event.Queue) error

	// Terminate releases every resource Init acquired. Terminate must be
	// safe to call even if Init partially failed.
	Terminate()

	// ProcessEvents pumps the platform's native event loop once, pushing
	// any resulting events to the queue passed to Init, and reports
	// whether the application should keep running (false means the user
	// closed the window or the OS asked the process to quit).
	ProcessEvents() bool

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// GraphicsContextName identifies the active GL context, e.g.
	// "OpenGL 3.3" or "OpenGL ES 2.0", for diagnostics.
	GraphicsContextName() string

	// GLProcAddress resolves a GL function pointer by name for gl.Init.
	GLProcAddress(name string) uintptr

	// MaxSamples reports the multisample sample count the backend's
	// context actually supports, so the renderer can clamp a requested
	// count down to what is available.
	MaxSamples() int

	WindowTitle() string
	SetWindowTitle(title string)

	WindowSize() (w, h int)
	SetWindowSize(w, h int)

	AALevel() int
	SetAALevel(level int)
}

// WindowConfig carries the window parameters decided by qu.Attr options
// at Initialize time.
type WindowConfig struct {
	Title         string
	Width, Height int
	AALevel       int
	Flags         WindowFlag
}

// WindowFlag toggles window chrome behavior. Restored from the
// original's samples, which call qu_set_window_flags without the header
// declaring the flag values; SPEC_FULL documents them explicitly.
type WindowFlag uint32

const (
	WindowResizable WindowFlag = 1 << iota
	WindowFixedAspect
)

// Joystick is one joystick/gamepad backend implementation.
type Joystick interface {
	Probe() error
	Init() error
	Terminate()

	// Process polls the OS for updated joystick state. Called once per
	// frame alongside ProcessEvents.
	Process()

	IsConnected(id int) bool
	Name(id int) string
	ButtonCount(id int) int
	AxisCount(id int) int
	ButtonName(id, button int) string
	AxisName(id, axis int) string
	IsButtonPressed(id, button int) bool
	AxisValue(id, axis int) float32
}
