// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package audio mixes and plays 2D sound effects and streamed music
// through a fixed pool of voices. It is backend-agnostic: concrete
// backends (OpenAL, PortAudio, or a null backend for headless tests)
// implement the Backend interface and are selected by the runtime's
// probe loop.
package audio

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/galvanizedlogic/qu/internal/handle"
)

var logger = log.With("module", "audio")

// MaxVoices bounds the fixed voice pool, matching the original's
// QU_MAX_VOICES budget for simultaneously-playing sounds and tracks.
const MaxVoices = 64

// Backend interacts with the underlying sound driver. A Backend owns
// the device/context handshake; Mixer owns voice bookkeeping on top of
// it. This mirrors the Audio interface the teacher originally exposed,
// narrowed from 3D-positional playback to the queue/stream-oriented
// contract spec.md §6 describes (create_source/destroy_source/
// is_source_used/queue_buffer/get_queued_buffers/start/stop, plus
// master volume).
type Backend interface {
	// Probe reports whether this backend can initialize in the current
	// environment, without creating any lasting device/context state.
	Probe() error

	Init() error
	Terminate()

	SetMasterVolume(gain float32)

	// CreateSource allocates a native source for one voice and returns
	// its backend-specific id.
	CreateSource() (uint32, error)
	DestroySource(src uint32)

	// IsSourceUsed reports whether src still has buffers queued or
	// playing, used to detect a one-shot sound finishing on its own.
	IsSourceUsed(src uint32) bool

	// QueueBuffer uploads pcm (signed 16-bit little-endian samples) and
	// appends it to src's playback queue.
	QueueBuffer(src uint32, channels int, sampleRate int, pcm []int16) error

	// UnqueueProcessedBuffers releases every buffer src has finished
	// playing and reports how many were released.
	UnqueueProcessedBuffers(src uint32) int

	// GetQueuedBuffers reports how many buffers are still queued
	// (playing or pending) on src, mirroring qu_audio.c's
	// get_queued_buffers used to compute how many buffers the music
	// worker needs to refill each poll.
	GetQueuedBuffers(src uint32) int

	StartSource(src uint32)
	StopSource(src uint32)
	PauseSource(src uint32)

	SetSourceGain(src uint32, gain float32)

	// SetSourceLooping marks a one-shot sound's single queued buffer to
	// repeat indefinitely once it finishes, the backend-native
	// equivalent of AL_LOOPING. Music looping is handled above the
	// Backend layer, by the streaming worker re-queuing fresh buffers.
	SetSourceLooping(src uint32, loop bool)
}

// SoundData is decoded one-shot sound data ready to be queued in full.
type SoundData struct {
	Name       string
	PCM        []int16
	Channels   int
	SampleRate int
}

// Sound is a handle to sound data bound to the mixer, returned by
// Mixer.LoadSound.
type Sound handle.H

// Music is a handle to an open, streamable music track, returned by
// Mixer.OpenMusic.
type Music handle.H

func newMixerError(op string, err error) error {
	return fmt.Errorf("audio: %s: %w", op, err)
}
