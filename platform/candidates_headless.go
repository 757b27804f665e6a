// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build qu_headless

package platform

// Candidates returns only the null backend: a headless build never
// links GLFW or a real GL context.
func Candidates() []Backend {
	return []Backend{NewNullBackend()}
}
