// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package audio

import (
	"sync"
	"time"

	"github.com/galvanizedlogic/qu/internal/handle"
)

// totalMusicBuffers and musicBufferLength match qu_audio.c's
// TOTAL_MUSIC_BUFFERS/MUSIC_BUFFER_LENGTH: an 8-deep ring of 4096-sample
// int16 buffers kept topped up by the streaming goroutine.
const (
	totalMusicBuffers = 8
	musicBufferLength = 4096
)

const (
	musicPollInterval  = 250 * time.Millisecond
	musicPauseInterval = 100 * time.Millisecond
)

// OpenMusic registers dec as a playable music track and returns a
// handle to it. qu_open_music/qu_play_music/qu_loop_music are three
// separate calls in the original, so opening a track and starting its
// playback are kept as two separate mixer operations here too, the same
// way LoadSound and PlaySound are for one-shot sounds. The decoder is
// not touched until PlayMusic or LoopMusic is called.
func (m *Mixer) OpenMusic(dec Decoder) Music {
	return Music(m.music.Add(&musicEntry{dec: dec}))
}

// CloseMusic releases a music resource. If it is currently playing, its
// voice is stopped first.
func (m *Mixer) CloseMusic(mu Music) {
	m.music.Remove(handle.H(mu))
}

// musicEntry is the value stored in Mixer.music: a Decoder plus the
// active stream, if any, currently playing it.
type musicEntry struct {
	dec    Decoder
	active *musicStream
}

// musicStream owns one background goroutine streaming a Decoder into a
// voice's source buffers. One goroutine runs per currently-playing
// music track, per spec.md §6's scheduling model: "the mixer spawns one
// background thread per active music track... sounds do not spawn
// threads."
type musicStream struct {
	mixer   *Mixer
	voiceAt int // index into mixer.voices.
	voiceID handle.H

	dec Decoder

	mu        sync.Mutex
	loopCount int // 0 = stop at EOF, >0 = decrement and rewind, <0 = loop forever.

	done chan struct{}
}

// PlayMusic starts mu playing once (no looping) on a free voice and
// returns a handle to control it, or the invalid voice handle if no
// voice is free. Calling PlayMusic again on a mu that is already
// playing is idempotent: it returns the existing voice's handle rather
// than allocating a second voice, matching spec.md §4.3: "if
// music.voice != null, return its handle."
func (m *Mixer) PlayMusic(mu Music) handle.H {
	return m.startMusic(mu, 0)
}

// LoopMusic starts mu looping forever on a free voice, or returns the
// existing voice's handle if mu is already playing (see PlayMusic).
func (m *Mixer) LoopMusic(mu Music) handle.H {
	return m.startMusic(mu, -1)
}

func (m *Mixer) startMusic(mu Music, loopCount int) handle.H {
	entry := m.music.Get(handle.H(mu))
	if entry == nil {
		logger.Warn("play music: unknown or closed handle")
		return handle.Invalid
	}

	m.mu.Lock()
	if entry.active != nil {
		id := entry.active.voiceID
		m.mu.Unlock()
		return id
	}

	i := m.findVoice()
	if i < 0 {
		m.mu.Unlock()
		logger.Warn("play music: no free voice")
		return handle.Invalid
	}
	m.resetVoice(i)
	v := &m.voices[i]

	src, err := m.backend.CreateSource()
	if err != nil {
		m.mu.Unlock()
		logger.Error("play music: create source failed", "err", err)
		return handle.Invalid
	}

	ms := &musicStream{mixer: m, voiceAt: i, dec: entry.dec, loopCount: loopCount, done: make(chan struct{})}
	ms.voiceID = voiceID(i, v.gen)
	v.typ = voiceMusic
	v.state = voicePlaying
	v.src = src
	v.music = ms
	entry.active = ms
	gen := v.gen
	m.mu.Unlock()

	go ms.run(entry)

	return voiceID(i, gen)
}

// run is the music worker body, a direct port of qu_audio.c's
// music_main: rewind the decoder to sample 0, decode totalMusicBuffers
// upfront, start the source, then
// poll every 250ms for consumed buffers and refill them, sleeping
// 100ms instead while paused.
func (ms *musicStream) run(entry *musicEntry) {
	defer close(ms.done)

	buffers := make([][]int16, totalMusicBuffers)
	for i := range buffers {
		buffers[i] = make([]int16, musicBufferLength)
	}

	m := ms.mixer
	var src uint32
	m.withVoiceLocked(ms.voiceAt, func(v *voice) {
		src = v.src
	})
	channels, sampleRate := ms.dec.Channels(), ms.dec.SampleRate()
	ms.dec.Seek(0)

	for i := 0; i < totalMusicBuffers; i++ {
		n, err := ms.dec.Read(buffers[i])
		if n == 0 || err != nil {
			logger.Error("music track too short or unreadable")
			ms.finish(entry)
			return
		}
		if err := m.backend.QueueBuffer(src, channels, sampleRate, buffers[i][:n]); err != nil {
			logger.Error("music: queue buffer failed", "err", err)
		}
	}
	m.backend.StartSource(src)

	current := 0
	running := true

	for running {
		paused := false
		var destroyed bool
		m.withVoiceLocked(ms.voiceAt, func(v *voice) {
			switch v.state {
			case voicePaused:
				paused = true
			case voiceDestroyed:
				destroyed = true
			}
		})
		if destroyed {
			break
		}
		if paused {
			time.Sleep(musicPauseInterval)
			continue
		}

		m.backend.UnqueueProcessedBuffers(src)
		played := totalMusicBuffers - m.backend.GetQueuedBuffers(src)

		for i := 0; i < played; i++ {
			n, err := ms.dec.Read(buffers[current])
			if err != nil || n == 0 {
				ms.mu.Lock()
				loop := ms.loopCount
				ms.mu.Unlock()
				if loop == 0 {
					running = false
					break
				}
				if loop > 0 {
					ms.mu.Lock()
					ms.loopCount--
					ms.mu.Unlock()
				}
				ms.dec.Seek(0)
				continue
			}
			m.backend.QueueBuffer(src, channels, sampleRate, buffers[current][:n])
			current = (current + 1) % totalMusicBuffers
		}

		time.Sleep(musicPollInterval)
	}

	m.backend.StopSource(src)
	ms.finish(entry)
}

func (ms *musicStream) finish(entry *musicEntry) {
	m := ms.mixer
	m.mu.Lock()
	v := &m.voices[ms.voiceAt]
	m.backend.DestroySource(v.src)
	v.typ = voiceNone
	v.state = voiceInactive
	v.music = nil
	entry.active = nil
	m.mu.Unlock()
}

// stop marks the voice destroyed and waits for run() to observe it and
// exit, matching qu_destroy_voice's synchronous teardown of a music
// thread (pl_wait_thread). It does not close the underlying Decoder,
// since the music resource itself may be replayed later with PlayMusic.
func (ms *musicStream) stop() {
	m := ms.mixer
	m.withVoiceLocked(ms.voiceAt, func(v *voice) {
		v.state = voiceDestroyed
	})
	<-ms.done
}

// withVoiceLocked is like Mixer.withVoice but addresses a voice by raw
// slot index, for internal callers (the streaming goroutine) that
// already hold the index rather than an external handle.
func (m *Mixer) withVoiceLocked(index int, fn func(*voice)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.voices[index])
}

// SetLoopCount adjusts the remaining loop count of a currently playing
// music voice.
func (m *Mixer) SetLoopCount(id handle.H, loopCount int) {
	index, gen, ok := decodeVoiceID(id)
	if !ok {
		return
	}
	m.mu.Lock()
	v := &m.voices[index]
	if v.gen != gen || v.typ != voiceMusic || v.music == nil {
		m.mu.Unlock()
		return
	}
	ms := v.music
	m.mu.Unlock()

	ms.mu.Lock()
	ms.loopCount = loopCount
	ms.mu.Unlock()
}
