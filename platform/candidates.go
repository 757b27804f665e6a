// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build !qu_headless

package platform

// Candidates returns the ordered list of windowing backends the
// runtime's selection loop (spec.md §4.1) probes in turn: GLFW first,
// falling back to the always-succeeding null backend for headless runs.
func Candidates() []Backend {
	return []Backend{NewGLFWBackend(), NewNullBackend()}
}
