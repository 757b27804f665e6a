// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package audio

// Decoder is the uniform shape every streamable audio format exposes,
// matching qu_audio_loader's four-function contract (qu_audio.c): the
// mixer's music worker only ever needs channel/rate metadata plus
// Read/Seek, regardless of whether the underlying format is WAV or Ogg
// Vorbis. loader.OpenWAV and loader.OpenVorbis both return a Decoder.
type Decoder interface {
	// Channels reports 1 (mono) or 2 (stereo).
	Channels() int

	// SampleRate reports samples per second per channel, e.g. 44100.
	SampleRate() int

	// TotalSamples reports the total interleaved sample count if known
	// up front, or -1 if the format can't report it without a full scan.
	TotalSamples() int64

	// Read fills buf with up to len(buf) interleaved int16 samples and
	// returns how many were written. A short read that is not an error
	// signals end of stream.
	Read(buf []int16) (int, error)

	// Seek repositions the decoder to a sample offset from the start.
	Seek(sampleOffset int64) error

	Close() error
}
