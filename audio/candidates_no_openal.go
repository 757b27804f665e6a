// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build qu_no_openal

package audio

// Candidates returns the audio backend list without the cgo OpenAL
// binding, for builds that can't link it.
func Candidates() []Backend {
	return []Backend{NewPortAudioBackend(), NewNullBackend()}
}
