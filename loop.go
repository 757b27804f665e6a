// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package qu

// Process drains the platform event queue, derives the per-frame input
// snapshot, and ticks the joystick backend, matching spec.md §4.1:
// "process() drains the platform event queue, derives the per-frame
// input snapshot, ticks the joystick backend, and returns false iff
// the platform signaled close."
func Process() bool {
	if current == nil {
		return false
	}
	current.input.BeginFrame()
	running := current.platform.ProcessEvents()
	current.input.Apply(current.queue)
	current.joystick.Process()
	return running
}

// Present flushes any batched geometry, composites the canvas onto the
// window with a multisample-resolve blit if needed, and asks the
// platform backend to swap buffers, matching spec.md §4.1's present().
func Present() {
	if current == nil {
		return
	}
	current.renderer.Present()
	current.platform.SwapBuffers()
}

// Execute is the convenience driver spec.md §4.1 describes: on a
// platform the host doesn't own the loop for (every desktop backend
// this module ships), it simply loops `while process() && loopFn()`
// then calls Terminate. loopFn should issue one frame's draw calls and
// return false to end the loop early.
func Execute(loopFn func() bool) {
	for Process() {
		if !loopFn() {
			break
		}
		Present()
	}
	Terminate()
}
