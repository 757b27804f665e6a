// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build qu_headless

package render

// Candidates returns only the null backend for headless builds.
func Candidates() []Backend {
	return []Backend{NewNullBackend()}
}
