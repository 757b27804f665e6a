// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package qu

import "time"

// Time reports seconds elapsed since Initialize, at float32 ("medium")
// precision, matching spec.md §6's "time (medium + high precision
// monotonic seconds since init)".
func Time() float32 {
	if current == nil {
		return 0
	}
	return float32(time.Since(current.startedAt).Seconds())
}

// TimeHighPrecision reports seconds elapsed since Initialize at float64
// precision, for callers accumulating over long play sessions where
// float32 would lose precision.
func TimeHighPrecision() float64 {
	if current == nil {
		return 0
	}
	return time.Since(current.startedAt).Seconds()
}

// DateTime is the wall-clock date/time broken into fields, restored per
// SPEC_FULL.md's supplemented qu_get_date_time: samples use it to draw
// on-screen clocks. No corpus library covers a need this narrow (a
// single time.Now() field breakout); see DESIGN.md's standard-library
// justification.
type DateTime struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Millisecond          int
}

// Now returns the current wall-clock date/time.
func Now() DateTime {
	t := time.Now()
	y, m, d := t.Date()
	return DateTime{
		Year: y, Month: int(m), Day: d,
		Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}
