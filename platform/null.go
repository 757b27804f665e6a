// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package platform

import "github.com/galvanizedlogic/qu/internal/event"

// NullBackend is a headless windowing backend used for tests and batch
// rendering. Its Probe always succeeds, so it only gets selected when
// explicitly requested or when every other backend's Probe fails.
type NullBackend struct {
	title         string
	width, height int
	aaLevel       int
}

// NewNullBackend returns a backend that satisfies every call without
// touching the OS.
func NewNullBackend() *NullBackend { return &NullBackend{} }

func (b *NullBackend) Probe() error { return nil }

func (b *NullBackend) Init(cfg WindowConfig, queue *event.Queue) error {
	b.title = cfg.Title
	b.width, b.height = cfg.Width, cfg.Height
	b.aaLevel = cfg.AALevel
	return nil
}

func (b *NullBackend) Terminate() {}

func (b *NullBackend) ProcessEvents() bool { return true }

func (b *NullBackend) SwapBuffers() {}

func (b *NullBackend) GraphicsContextName() string { return "null" }

func (b *NullBackend) GLProcAddress(name string) uintptr { return 0 }

func (b *NullBackend) MaxSamples() int { return 0 }

func (b *NullBackend) WindowTitle() string { return b.title }

func (b *NullBackend) SetWindowTitle(title string) { b.title = title }

func (b *NullBackend) WindowSize() (int, int) { return b.width, b.height }

func (b *NullBackend) SetWindowSize(w, h int) { b.width, b.height = w, h }

func (b *NullBackend) AALevel() int { return b.aaLevel }

func (b *NullBackend) SetAALevel(level int) { b.aaLevel = level }

// NullJoystick reports no joysticks ever connected.
type NullJoystick struct{}

func NewNullJoystick() *NullJoystick { return &NullJoystick{} }

func (j *NullJoystick) Probe() error     { return nil }
func (j *NullJoystick) Init() error      { return nil }
func (j *NullJoystick) Terminate()       {}
func (j *NullJoystick) Process()         {}
func (j *NullJoystick) IsConnected(int) bool { return false }
func (j *NullJoystick) Name(int) string      { return "" }
func (j *NullJoystick) ButtonCount(int) int  { return 0 }
func (j *NullJoystick) AxisCount(int) int    { return 0 }
func (j *NullJoystick) ButtonName(int, int) string { return "" }
func (j *NullJoystick) AxisName(int, int) string   { return "" }
func (j *NullJoystick) IsButtonPressed(int, int) bool { return false }
func (j *NullJoystick) AxisValue(int, int) float32    { return 0 }
