// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package qu

// JoystickConnected reports whether joystick id is currently connected.
func JoystickConnected(id int) bool {
	if current == nil {
		return false
	}
	return current.joystick.IsConnected(id)
}

// JoystickName reports joystick id's device name, or "" if disconnected.
func JoystickName(id int) string {
	if current == nil {
		return ""
	}
	return current.joystick.Name(id)
}

// JoystickButtonCount reports how many buttons joystick id exposes.
func JoystickButtonCount(id int) int {
	if current == nil {
		return 0
	}
	return current.joystick.ButtonCount(id)
}

// JoystickAxisCount reports how many axes joystick id exposes.
func JoystickAxisCount(id int) int {
	if current == nil {
		return 0
	}
	return current.joystick.AxisCount(id)
}

// JoystickButtonName reports the name of button on joystick id.
func JoystickButtonName(id, button int) string {
	if current == nil {
		return ""
	}
	return current.joystick.ButtonName(id, button)
}

// JoystickAxisName reports the name of axis on joystick id.
func JoystickAxisName(id, axis int) string {
	if current == nil {
		return ""
	}
	return current.joystick.AxisName(id, axis)
}

// IsJoystickButtonPressed reports whether button is currently held on
// joystick id.
func IsJoystickButtonPressed(id, button int) bool {
	if current == nil {
		return false
	}
	return current.joystick.IsButtonPressed(id, button)
}

// JoystickAxisValue reports the current value of axis on joystick id.
func JoystickAxisValue(id, axis int) float32 {
	if current == nil {
		return 0
	}
	return current.joystick.AxisValue(id, axis)
}
