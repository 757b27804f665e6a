// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package al

import "testing"

// The test passes if the binding layer can resolve its function
// pointers without crashing. Init only looks the symbols up and never
// calls into OpenAL; a symbol that cannot be found resolves to nil and a
// later call through it would segfault, which is why
// audio.OpenALBackend.Probe always opens a device before trusting the
// binding. On Linux and macOS the package links against OpenAL (see the
// cgo LDFLAGS), so the library must be installed to build this test.
func TestInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

func TestConstantsMatchOpenALHeader(t *testing.T) {
	cases := map[string]int{
		"NO_ERROR":          0,
		"GAIN":              0x100A,
		"SOURCE_STATE":      0x1010,
		"PLAYING":           0x1012,
		"PAUSED":            0x1013,
		"BUFFERS_QUEUED":    0x1015,
		"BUFFERS_PROCESSED": 0x1016,
		"FORMAT_MONO16":     0x1101,
		"FORMAT_STEREO16":   0x1103,
	}
	got := map[string]int{
		"NO_ERROR":          NO_ERROR,
		"GAIN":              GAIN,
		"SOURCE_STATE":      SOURCE_STATE,
		"PLAYING":           PLAYING,
		"PAUSED":            PAUSED,
		"BUFFERS_QUEUED":    BUFFERS_QUEUED,
		"BUFFERS_PROCESSED": BUFFERS_PROCESSED,
		"FORMAT_MONO16":     FORMAT_MONO16,
		"FORMAT_STEREO16":   FORMAT_STEREO16,
	}
	for name, want := range cases {
		if got[name] != want {
			t.Errorf("%s = %#x, want %#x", name, got[name], want)
		}
	}
}
