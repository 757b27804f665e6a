// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package audio

import (
	"sync"

	"github.com/galvanizedlogic/qu/internal/handle"
)

// Mixer owns the sound/music resource tables and the fixed voice pool,
// matching qu_audio.c's priv struct: one mutex guards voice state, the
// music back-reference, and thread liveness, held only across short
// critical sections (spec.md §6's Shared state & locking rule).
type Mixer struct {
	backend Backend

	mu     sync.Mutex
	voices [MaxVoices]voice

	sounds *handle.List[SoundData]
	music  *handle.List[*musicEntry]

	masterVolume float32
}

// NewMixer wraps backend with voice bookkeeping. backend must already
// be initialized.
func NewMixer(backend Backend) *Mixer {
	m := &Mixer{backend: backend, masterVolume: 1.0}
	m.sounds = handle.New[SoundData](nil)
	m.music = handle.New[*musicEntry](func(e **musicEntry) {
		if *e == nil {
			return
		}
		if (*e).active != nil {
			(*e).active.stop()
		}
		(*e).dec.Close()
	})
	return m
}

// Terminate stops every active voice, closes every open music track,
// and terminates the backend.
func (m *Mixer) Terminate() {
	m.mu.Lock()
	for i := range m.voices {
		v := &m.voices[i]
		if v.typ == voiceSound && v.state != voiceInactive {
			m.backend.DestroySource(v.src)
		}
	}
	m.mu.Unlock()

	m.music.Destroy()
	m.sounds.Destroy()
	m.backend.Terminate()
}

// SetMasterVolume sets the global gain, clamped to [0, 1].
func (m *Mixer) SetMasterVolume(gain float32) {
	if gain < 0 {
		gain = 0
	}
	if gain > 1 {
		gain = 1
	}
	m.masterVolume = gain
	m.backend.SetMasterVolume(gain)
}

// MasterVolume reports the last value passed to SetMasterVolume.
func (m *Mixer) MasterVolume() float32 { return m.masterVolume }

// LoadSound registers already-decoded PCM data and returns a handle to
// it. The data is copied into the mixer's sound table; PlaySound can be
// called on the returned handle any number of times.
func (m *Mixer) LoadSound(d SoundData) Sound {
	return Sound(m.sounds.Add(d))
}

// UnloadSound releases a sound previously returned by LoadSound. Voices
// already playing it continue until they finish naturally.
func (m *Mixer) UnloadSound(s Sound) {
	m.sounds.Remove(handle.H(s))
}

// PlaySound starts a single playback of s on a free voice and returns a
// handle to control it, or the invalid handle if every voice is busy.
func (m *Mixer) PlaySound(s Sound) handle.H {
	return m.playSound(s, false)
}

// LoopSound is PlaySound but the voice repeats s indefinitely until
// StopVoice is called.
func (m *Mixer) LoopSound(s Sound) handle.H {
	return m.playSound(s, true)
}

func (m *Mixer) playSound(s Sound, loop bool) handle.H {
	data := m.sounds.Get(handle.H(s))
	if data == nil {
		logger.Warn("play sound: unknown or unloaded handle")
		return handle.Invalid
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.findVoice()
	if i < 0 {
		logger.Warn("play sound: no free voice", "name", data.Name)
		return handle.Invalid
	}
	m.resetVoice(i)
	v := &m.voices[i]

	src, err := m.backend.CreateSource()
	if err != nil {
		logger.Error("play sound: create source failed", "err", err)
		return handle.Invalid
	}
	if err := m.backend.QueueBuffer(src, data.Channels, data.SampleRate, data.PCM); err != nil {
		logger.Error("play sound: queue buffer failed", "err", err)
		m.backend.DestroySource(src)
		return handle.Invalid
	}
	if loop {
		m.backend.SetSourceLooping(src, true)
	}
	m.backend.StartSource(src)

	v.typ = voiceSound
	v.state = voicePlaying
	v.src = src

	return voiceID(i, v.gen)
}

// PauseVoice pauses a currently playing voice. A no-op for stale or
// already-paused handles.
func (m *Mixer) PauseVoice(id handle.H) {
	m.withVoice(id, func(v *voice) {
		if v.state != voicePlaying {
			return
		}
		v.state = voicePaused
		m.backend.PauseSource(v.src)
	})
}

// UnpauseVoice resumes a paused voice.
func (m *Mixer) UnpauseVoice(id handle.H) {
	m.withVoice(id, func(v *voice) {
		if v.state != voicePaused {
			return
		}
		v.state = voicePlaying
		m.backend.StartSource(v.src)
	})
}

// StopVoice halts a voice immediately, regardless of type, and frees
// its slot for reuse.
func (m *Mixer) StopVoice(id handle.H) {
	m.withVoice(id, func(v *voice) {
		if v.typ == voiceNone {
			return
		}
		wasMusic := v.typ == voiceMusic
		music := v.music
		v.state = voiceDestroyed
		if !wasMusic {
			m.backend.StopSource(v.src)
			m.backend.DestroySource(v.src)
			v.typ = voiceNone
			v.state = voiceInactive
		}
		if wasMusic && music != nil {
			// music.stop() waits on the streaming goroutine, which
			// itself resets the voice to inactive on exit; don't hold
			// the mixer mutex across that wait.
			go music.stop()
		}
	})
}

// VoiceState reports a voice's playback state as seen by the caller:
// "playing", "paused", or "" if the handle is stale/inactive.
func (m *Mixer) VoiceState(id handle.H) string {
	var state string
	m.withVoice(id, func(v *voice) {
		switch v.state {
		case voicePlaying:
			state = "playing"
		case voicePaused:
			state = "paused"
		}
	})
	return state
}

func (m *Mixer) withVoice(id handle.H, fn func(*voice)) {
	index, gen, ok := decodeVoiceID(id)
	if !ok || index < 0 || index >= MaxVoices {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v := &m.voices[index]
	if v.gen != gen || v.typ == voiceNone {
		return
	}
	fn(v)
}
