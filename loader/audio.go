// Copyright © 2013-2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package loader

import (
	"bytes"
	"fmt"
	"io"

	"github.com/galvanizedlogic/qu/audio"
)

// OpenAudio probes data against the two supported streamable formats in
// the order spec.md §4.7 lists them: WAV first, then Ogg Vorbis. Each
// decoder gets its own bytes.Reader over data so a rejected WAV attempt
// never consumes bytes the Vorbis attempt needs to see from the start.
func OpenAudio(data []byte) (audio.Decoder, error) {
	if dec, err := OpenWAV(bytes.NewReader(data)); err == nil {
		return dec, nil
	}

	dec, err := OpenVorbis(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loader: no decoder recognized the stream: %w", err)
	}
	return dec, nil
}

// DecodeAll drains dec fully into one interleaved int16 buffer, used to
// turn a streaming Decoder into the fully-decoded PCM buffer spec.md
// §3's Sound entity requires ("fully decoded PCM buffer"), as opposed
// to Music, which keeps the Decoder open and streams from it.
func DecodeAll(dec audio.Decoder) ([]int16, error) {
	var out []int16
	buf := make([]int16, 8192)
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: decode: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return out, nil
}
