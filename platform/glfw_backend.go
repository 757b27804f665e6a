// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build !qu_headless

package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/galvanizedlogic/qu/internal/event"
)

func init() {
	// GLFW and most GL drivers require every call to originate from one
	// fixed OS thread; this is the same constraint goshadertoy's
	// glfwcontext package documents.
	runtime.LockOSThread()
}

// GLFWBackend is the desktop platform.Backend: it owns one glfw.Window
// and translates its callbacks into the core event.Queue.
type GLFWBackend struct {
	window *glfw.Window
	queue  *event.Queue

	title   string
	aaLevel int

	lastCursorX, lastCursorY int32
}

// NewGLFWBackend returns an uninitialized desktop backend.
func NewGLFWBackend() *GLFWBackend { return &GLFWBackend{} }

func (b *GLFWBackend) Probe() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("platform: glfw probe: %w", err)
	}
	glfw.Terminate()
	return nil
}

func (b *GLFWBackend) Init(cfg WindowConfig, queue *event.Queue) error {
	b.queue = queue
	b.aaLevel = cfg.AALevel
	b.title = cfg.Title

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("platform: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.AALevel)
	if cfg.Flags&WindowResizable != 0 {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("platform: create window: %w", err)
	}
	b.window = win
	if cfg.Flags&WindowFixedAspect != 0 {
		win.SetAspectRatio(cfg.Width, cfg.Height)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("platform: gl init: %w", err)
	}

	win.SetKeyCallback(b.onKey)
	win.SetMouseButtonCallback(b.onMouseButton)
	win.SetCursorPosCallback(b.onCursorPos)
	win.SetScrollCallback(b.onScroll)
	win.SetFocusCallback(b.onFocus)
	win.SetSizeCallback(b.onResize)

	return nil
}

func (b *GLFWBackend) Terminate() {
	if b.window != nil {
		b.window.Destroy()
		b.window = nil
	}
	glfw.Terminate()
}

func (b *GLFWBackend) ProcessEvents() bool {
	glfw.PollEvents()
	return !b.window.ShouldClose()
}

func (b *GLFWBackend) SwapBuffers() { b.window.SwapBuffers() }

func (b *GLFWBackend) GraphicsContextName() string {
	return "OpenGL " + gl.GoStr(gl.GetString(gl.VERSION))
}

func (b *GLFWBackend) GLProcAddress(name string) uintptr {
	return uintptr(glfw.GetProcAddress(name))
}

func (b *GLFWBackend) MaxSamples() int {
	var samples int32
	gl.GetIntegerv(gl.MAX_SAMPLES, &samples)
	if int(samples) < b.aaLevel {
		return int(samples)
	}
	return b.aaLevel
}

func (b *GLFWBackend) WindowTitle() string { return b.title }

func (b *GLFWBackend) SetWindowTitle(title string) {
	b.title = title
	b.window.SetTitle(title)
}

func (b *GLFWBackend) WindowSize() (int, int) { return b.window.GetSize() }

func (b *GLFWBackend) SetWindowSize(w, h int) { b.window.SetSize(w, h) }

func (b *GLFWBackend) AALevel() int { return b.aaLevel }

func (b *GLFWBackend) SetAALevel(level int) { b.aaLevel = level }

func (b *GLFWBackend) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := translateKey(key)
	if k == event.KeyInvalid {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		b.queue.Push(event.Event{Type: event.KeyPressed, Key: k})
	case glfw.Release:
		b.queue.Push(event.Event{Type: event.KeyReleased, Key: k})
	}
}

func (b *GLFWBackend) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	mb := translateMouseButton(button)
	if mb == event.MouseButtonInvalid {
		return
	}
	switch action {
	case glfw.Press:
		b.queue.Push(event.Event{Type: event.MouseButtonPressed, Button: mb})
	case glfw.Release:
		b.queue.Push(event.Event{Type: event.MouseButtonReleased, Button: mb})
	}
}

func (b *GLFWBackend) onCursorPos(w *glfw.Window, x, y float64) {
	nx, ny := int32(x), int32(y)
	dx, dy := nx-b.lastCursorX, ny-b.lastCursorY
	b.lastCursorX, b.lastCursorY = nx, ny
	b.queue.Push(event.Event{Type: event.MouseCursorMoved, X: nx, Y: ny, DX: dx, DY: dy})
}

func (b *GLFWBackend) onScroll(w *glfw.Window, xoff, yoff float64) {
	b.queue.Push(event.Event{Type: event.MouseWheelScrolled, DX: int32(xoff), DY: int32(yoff)})
}

func (b *GLFWBackend) onFocus(w *glfw.Window, focused bool) {
	if focused {
		b.queue.Push(event.Event{Type: event.Activated})
	} else {
		b.queue.Push(event.Event{Type: event.Deactivated})
	}
}

func (b *GLFWBackend) onResize(w *glfw.Window, width, height int) {
	b.queue.Push(event.Event{Type: event.WindowResized, X: int32(width), Y: int32(height)})
}
