// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package platform

// JoystickCandidates returns the ordered list of joystick backends the
// runtime probes: the evdev-backed Linux backend first, falling back
// to the null backend when no /dev/input/jsN device is present.
func JoystickCandidates() []Joystick {
	return []Joystick{NewLinuxJoystick(), NewNullJoystick()}
}
