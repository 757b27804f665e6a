// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package qu is a small cross-platform 2D game framework: a single
// C-style API for windowing, input, timing, immediate-mode 2D
// graphics, text layout, and mixed sound/music playback, matching
// spec.md §1's scope. Applications call Initialize, receive a window
// and an OpenGL-backed renderer, and drive a per-frame loop with
// Process/Present or the Execute convenience driver.
//
// The package holds one process-wide runtime instance, following
// spec.md §9's "Global mutable state" design note: a single context
// struct created by Initialize and torn down by Terminate, accessed
// through this package's functions rather than thread-locals or
// static-initialization tricks. Like GLFW's qu_* analogue libraries it
// mirrors, the API is meant to be driven entirely from one thread (the
// game loop); the audio mixer's own background worker goroutines are
// the only exception, and they synchronize internally (see package
// audio).
package qu

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/galvanizedlogic/qu/audio"
	"github.com/galvanizedlogic/qu/internal/event"
	"github.com/galvanizedlogic/qu/platform"
	"github.com/galvanizedlogic/qu/render"
	"github.com/galvanizedlogic/qu/text"
)

var logger = log.With("module", "core")

// maxExitHandlers bounds the teardown stack, matching the original's
// MAX_EXIT_HANDLERS (qu_core.c).
const maxExitHandlers = 32

// CanvasFlag toggles canvas sampling/fit behavior, restored per
// SPEC_FULL.md's "Window flags / canvas flags" supplemented feature:
// samples called qu_set_canvas_flags from outside the shown header.
type CanvasFlag uint32

const (
	// CanvasLinear samples the canvas with linear filtering instead of
	// the default nearest-neighbor, smoothing the letterboxed blit.
	CanvasLinear CanvasFlag = 1 << iota
	// CanvasStretch fills the window ignoring the canvas aspect ratio
	// instead of the default letterboxed fit.
	CanvasStretch
)

// attrs accumulates the options passed to Initialize.
type attrs struct {
	title                     string
	width, height             int
	aaLevel                   int
	windowFlags               platform.WindowFlag
	canvasWidth, canvasHeight int
	canvasSamples             int
}

// Attr configures Initialize; see Title, Size, AALevel, WindowFlags,
// and Canvas. Generalized from the teacher's config.go functional-
// options pattern (vu.Title(...), vu.Size(...)) into qu.Attr, per
// SPEC_FULL.md's Configuration section.
type Attr func(*attrs)

// Title sets the window title. Defaults to "qu".
func Title(title string) Attr { return func(a *attrs) { a.title = title } }

// Size sets the window's initial pixel size. Defaults to 800x600.
func Size(width, height int) Attr {
	return func(a *attrs) { a.width, a.height = width, height }
}

// AALevel requests a multisample level for the window surface,
// clamped by the platform backend to what the context actually
// supports.
func AALevel(level int) Attr { return func(a *attrs) { a.aaLevel = level } }

// WindowFlags sets the window's resizable/fixed-aspect behavior.
func WindowFlags(flags platform.WindowFlag) Attr {
	return func(a *attrs) { a.windowFlags = flags }
}

// Canvas enables an offscreen canvas surface of (width, height)
// logical pixels that all drawing targets until SetSurface/ResetSurface
// is called, composited onto the window with aspect-preserving
// letterboxing on Present (spec.md §4.5 "Surfaces & canvas").
func Canvas(width, height, samples int) Attr {
	return func(a *attrs) { a.canvasWidth, a.canvasHeight, a.canvasSamples = width, height, samples }
}

// runtime is the single process-wide instance spec.md §9 calls for.
type runtime struct {
	attrs attrs

	queue    *event.Queue
	input    *event.Input
	platform platform.Backend
	joystick platform.Joystick
	renderer *render.Renderer
	mixer    *audio.Mixer
	shaper   *text.Shaper

	canvasFlags CanvasFlag

	exitHandlers []func()

	startedAt time.Time
}

// current is the single process-wide runtime instance. Every exported
// function in this package operates on it; it is nil until Initialize
// succeeds and nil again after Terminate.
var current *runtime

// halt reports an internal inconsistency (an invariant violation) and
// panics, the Go analogue of the original's QU_HALT/QU_HALT_IF abort()
// call, per spec.md §7 "Internal inconsistency": "log with module tag
// and abort." A library panics rather than calling os.Exit, since it
// does not own the process.
func halt(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Error(msg)
	panic("qu: " + msg)
}

// Initialize probes and selects one backend per role (platform,
// renderer, audio, joystick), in leaf-first order (platform primitives
// before renderer before audio), per spec.md §4.1 and §2's
// initialization ordering. It registers each selected backend's
// Terminate on the exit-handler stack before moving to the next role,
// so Terminate always tears down in strict reverse order regardless of
// which role failed partway through a later call.
//
// Initialize is fatal (panics, via halt) if every platform or renderer
// candidate fails its probe; an exhausted audio candidate list instead
// falls back to the null backend, matching spec.md §4.1's failure
// semantics. Calling Initialize while already initialized is also an
// internal-inconsistency halt.
func Initialize(opts ...Attr) error {
	if current != nil {
		halt("Initialize called while already initialized")
	}

	a := attrs{title: "qu", width: 800, height: 600, aaLevel: 0}
	for _, opt := range opts {
		opt(&a)
	}

	rt := &runtime{attrs: a, startedAt: time.Now()}
	rt.queue = event.NewQueue()

	pb, err := selectPlatform(rt, a)
	if err != nil {
		return err
	}
	rt.platform = pb
	rt.pushExitHandler(pb.Terminate)

	rt.joystick = selectJoystick()
	if err := rt.joystick.Init(); err != nil {
		// Joystick absence is never fatal; fall back silently to a
		// backend that reports nothing connected.
		logger.Warn("joystick init failed, continuing without one", "err", err)
		rt.joystick = platform.NewNullJoystick()
		_ = rt.joystick.Init()
	}
	rt.pushExitHandler(rt.joystick.Terminate)

	rb, err := selectRenderer(a)
	if err != nil {
		return err
	}
	rt.renderer = render.New(rb, a.width, a.height)
	rt.pushExitHandler(rb.Terminate)

	if a.canvasWidth > 0 && a.canvasHeight > 0 {
		if err := rt.renderer.EnableCanvas(a.canvasWidth, a.canvasHeight, a.canvasSamples); err != nil {
			logger.Warn("canvas creation failed, rendering directly to window", "err", err)
		}
	}

	ab := selectAudio()
	if err := ab.Init(); err != nil {
		logger.Warn("audio init failed, falling back to null backend", "err", err)
		ab = audio.NewNullBackend()
		_ = ab.Init()
	}
	rt.mixer = audio.NewMixer(ab)
	rt.pushExitHandler(rt.mixer.Terminate)

	rt.shaper = text.NewShaper(rt.renderer)

	rt.input = event.NewInput(event.Callbacks{})

	current = rt
	return nil
}

// Terminate unwinds the exit-handler stack in strict reverse
// registration order, matching spec.md §4.1's "Teardown is strict
// reverse order, driven by an exit-handler stack." Calling Terminate
// when not initialized is a no-op.
func Terminate() {
	if current == nil {
		return
	}
	rt := current
	current = nil
	for i := len(rt.exitHandlers) - 1; i >= 0; i-- {
		rt.exitHandlers[i]()
	}
	registered = event.Callbacks{}
}

func (rt *runtime) pushExitHandler(fn func()) {
	if len(rt.exitHandlers) >= maxExitHandlers {
		halt("exit-handler stack overflow (max %d)", maxExitHandlers)
	}
	rt.exitHandlers = append(rt.exitHandlers, fn)
}

// selectPlatform runs the probe → pick → init selection loop over
// platform.Candidates(), matching spec.md §4.1: "iterates calling
// precheck() ... picks the first that returns success. It then calls
// initialize() on the survivor."
func selectPlatform(rt *runtime, a attrs) (platform.Backend, error) {
	cfg := platform.WindowConfig{
		Title: a.title, Width: a.width, Height: a.height,
		AALevel: a.aaLevel, Flags: a.windowFlags,
	}
	for _, cand := range platform.Candidates() {
		if err := cand.Probe(); err != nil {
			logger.Debug("platform backend probe failed", "err", err)
			continue
		}
		if err := cand.Init(cfg, rt.queue); err != nil {
			logger.Warn("platform backend init failed after a successful probe", "err", err)
			continue
		}
		logger.Info("platform backend selected", "context", cand.GraphicsContextName())
		return cand, nil
	}
	halt("no platform backend could be initialized")
	return nil, nil // unreachable
}

func selectJoystick() platform.Joystick {
	for _, cand := range platform.JoystickCandidates() {
		if err := cand.Probe(); err != nil {
			continue
		}
		return cand
	}
	return platform.NewNullJoystick()
}

func selectRenderer(a attrs) (render.Backend, error) {
	for _, cand := range render.Candidates() {
		if err := cand.Init(); err != nil {
			logger.Warn("renderer backend init failed", "err", err)
			continue
		}
		return cand, nil
	}
	halt("no renderer backend could be initialized")
	return nil, fmt.Errorf("unreachable")
}

func selectAudio() audio.Backend {
	for _, cand := range audio.Candidates() {
		if err := cand.Probe(); err != nil {
			logger.Debug("audio backend probe failed", "err", err)
			continue
		}
		return cand
	}
	return audio.NewNullBackend()
}
