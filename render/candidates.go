// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build !qu_headless

package render

// Candidates returns the ordered list of renderer backends the
// runtime's selection loop probes in turn: OpenGL 3.3 core first,
// falling back to the always-succeeding null backend.
func Candidates() []Backend {
	return []Backend{NewOpenGLBackend(), NewNullBackend()}
}
