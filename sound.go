// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package qu

import (
	"github.com/galvanizedlogic/qu/audio"
	"github.com/galvanizedlogic/qu/internal/handle"
	"github.com/galvanizedlogic/qu/loader"
)

// Sound is a handle to fully-decoded one-shot sound data, loaded once
// and replayed cheaply by PlaySound/LoopSound.
type Sound = audio.Sound

// Music is a handle to an open, streamable music track. Unlike Sound,
// the decoder stays open and is read incrementally by a background
// worker, per spec.md §4.3's distinction between queued one-shot
// sounds and streamed music.
type Music = audio.Music

// Voice is a handle to one playing instance of a Sound or Music,
// returned by PlaySound/LoopSound/PlayMusic/LoopMusic.
type Voice handle.H

// SetMasterVolume sets the mixer's master gain, in the 0-1 range.
func SetMasterVolume(gain float32) {
	if current != nil {
		current.mixer.SetMasterVolume(gain)
	}
}

// MasterVolume reports the mixer's current master gain.
func MasterVolume() float32 {
	if current == nil {
		return 0
	}
	return current.mixer.MasterVolume()
}

// LoadSound fully decodes data (WAV or Ogg Vorbis, sniffed from its
// header) into memory and registers it with the mixer, or returns the
// invalid handle on any decode failure.
func LoadSound(name string, data []byte) Sound {
	if current == nil {
		return Sound(handle.Invalid)
	}
	dec, err := loader.OpenAudio(data)
	if err != nil {
		logger.Warn("load sound failed", "name", name, "err", err)
		return Sound(handle.Invalid)
	}
	defer dec.Close()
	pcm, err := loader.DecodeAll(dec)
	if err != nil {
		logger.Warn("decode sound failed", "name", name, "err", err)
		return Sound(handle.Invalid)
	}
	return current.mixer.LoadSound(audio.SoundData{
		Name: name, PCM: pcm, Channels: dec.Channels(), SampleRate: dec.SampleRate(),
	})
}

// UnloadSound releases sound data. A no-op for an invalid or
// already-unloaded handle.
func UnloadSound(s Sound) {
	if current != nil {
		current.mixer.UnloadSound(s)
	}
}

// PlaySound plays s once on the next free voice, or returns the
// invalid handle if the voice pool is exhausted.
func PlaySound(s Sound) Voice {
	if current == nil {
		return Voice(handle.Invalid)
	}
	return Voice(current.mixer.PlaySound(s))
}

// LoopSound plays s repeatedly until StopVoice is called.
func LoopSound(s Sound) Voice {
	if current == nil {
		return Voice(handle.Invalid)
	}
	return Voice(current.mixer.LoopSound(s))
}

// OpenMusic opens a streamable music track (WAV or Ogg Vorbis) from
// data without decoding it fully, keeping the decoder alive until
// CloseMusic. Returns the invalid handle on any failure to open.
func OpenMusic(data []byte) Music {
	if current == nil {
		return Music(handle.Invalid)
	}
	dec, err := loader.OpenAudio(data)
	if err != nil {
		logger.Warn("open music failed", "err", err)
		return Music(handle.Invalid)
	}
	return current.mixer.OpenMusic(dec)
}

// CloseMusic stops any playing voice and releases the track's decoder.
func CloseMusic(m Music) {
	if current != nil {
		current.mixer.CloseMusic(m)
	}
}

// PlayMusic starts (or, if already playing, idempotently returns the
// handle of) m playing once.
func PlayMusic(m Music) Voice {
	if current == nil {
		return Voice(handle.Invalid)
	}
	return Voice(current.mixer.PlayMusic(m))
}

// LoopMusic starts (or idempotently returns the handle of) m looping
// indefinitely.
func LoopMusic(m Music) Voice {
	if current == nil {
		return Voice(handle.Invalid)
	}
	return Voice(current.mixer.LoopMusic(m))
}

// PauseVoice pauses a currently playing voice. A no-op for a stale or
// invalid handle.
func PauseVoice(v Voice) {
	if current != nil {
		current.mixer.PauseVoice(handle.H(v))
	}
}

// UnpauseVoice resumes a paused voice.
func UnpauseVoice(v Voice) {
	if current != nil {
		current.mixer.UnpauseVoice(handle.H(v))
	}
}

// StopVoice stops and releases a voice back to the pool.
func StopVoice(v Voice) {
	if current != nil {
		current.mixer.StopVoice(handle.H(v))
	}
}
