// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build !qu_no_openal

package audio

// Candidates returns the ordered list of audio backends the runtime's
// selection loop probes in turn: the cgo OpenAL binding first, then
// PortAudio, falling back to the always-succeeding null backend per
// spec.md §4.1: "exhausting candidates for audio falls back to a null
// implementation."
func Candidates() []Backend {
	return []Backend{NewOpenALBackend(), NewPortAudioBackend(), NewNullBackend()}
}
