// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galvanizedlogic/qu/internal/handle"
)

func newTestMixer(t *testing.T) *Mixer {
	t.Helper()
	backend := NewNullBackend()
	require.NoError(t, backend.Init())
	return NewMixer(backend)
}

func TestLoadAndPlaySound(t *testing.T) {
	m := newTestMixer(t)
	defer m.Terminate()

	snd := m.LoadSound(SoundData{Name: "bloop", Channels: 1, SampleRate: 44100, PCM: []int16{1, 2, 3}})
	require.NotEqual(t, handle.Invalid, handle.H(snd))

	voice := m.PlaySound(snd)
	assert.NotEqual(t, handle.Invalid, voice)
	assert.Equal(t, "playing", m.VoiceState(voice))
}

func TestStopVoiceFreesSlot(t *testing.T) {
	m := newTestMixer(t)
	defer m.Terminate()

	snd := m.LoadSound(SoundData{Name: "bloop", Channels: 2, SampleRate: 22050, PCM: []int16{1, 2}})
	voice := m.PlaySound(snd)
	require.NotEqual(t, handle.Invalid, voice)

	m.StopVoice(voice)
	assert.Equal(t, "", m.VoiceState(voice))
}

// busyBackend is NullBackend with every source reported permanently in
// use, so findVoice can never reclaim one. Used to exercise the "every
// voice busy" exhaustion path that NullBackend's always-free sources
// would otherwise never reach.
type busyBackend struct{ *NullBackend }

func (b busyBackend) IsSourceUsed(src uint32) bool { return true }

func TestPlaySoundFailsWhenVoicePoolExhausted(t *testing.T) {
	backend := busyBackend{NewNullBackend()}
	require.NoError(t, backend.Init())
	m := NewMixer(backend)
	defer m.Terminate()

	snd := m.LoadSound(SoundData{Name: "tick", Channels: 1, SampleRate: 8000, PCM: []int16{1}})

	for i := 0; i < MaxVoices; i++ {
		v := m.PlaySound(snd)
		require.NotEqual(t, handle.Invalid, v, "voice %d should have been available", i)
	}

	exhausted := m.PlaySound(snd)
	assert.Equal(t, handle.Invalid, exhausted)
}

func TestMasterVolumeClampsToUnitRange(t *testing.T) {
	m := newTestMixer(t)
	defer m.Terminate()

	m.SetMasterVolume(5)
	assert.Equal(t, float32(1), m.MasterVolume())

	m.SetMasterVolume(-5)
	assert.Equal(t, float32(0), m.MasterVolume())
}

// fakeDecoder is an in-memory Decoder for exercising the music
// streaming worker without touching real audio files.
type fakeDecoder struct {
	samples []int16
	pos     int
	closed  bool
}

func (d *fakeDecoder) Channels() int        { return 1 }
func (d *fakeDecoder) SampleRate() int      { return 8000 }
func (d *fakeDecoder) TotalSamples() int64  { return int64(len(d.samples)) }
func (d *fakeDecoder) Close() error         { d.closed = true; return nil }
func (d *fakeDecoder) Seek(offset int64) error {
	d.pos = int(offset)
	return nil
}

func (d *fakeDecoder) Read(buf []int16) (int, error) {
	n := copy(buf, d.samples[d.pos:])
	d.pos += n
	return n, nil
}

func TestPlayMusicAllocatesAVoice(t *testing.T) {
	m := newTestMixer(t)
	defer m.Terminate()

	dec := &fakeDecoder{samples: make([]int16, musicBufferLength*totalMusicBuffers)}
	mu := m.OpenMusic(dec)
	require.NotEqual(t, handle.Invalid, handle.H(mu))

	voice := m.PlayMusic(mu)
	require.NotEqual(t, handle.Invalid, voice)

	m.StopVoice(voice)
}

func TestPlayMusicTwiceWhilePlayingIsIdempotent(t *testing.T) {
	m := newTestMixer(t)
	defer m.Terminate()

	dec := &fakeDecoder{samples: make([]int16, musicBufferLength*totalMusicBuffers*4)}
	mu := m.OpenMusic(dec)

	voice := m.PlayMusic(mu)
	require.NotEqual(t, handle.Invalid, voice)

	again := m.PlayMusic(mu)
	assert.Equal(t, voice, again, "replaying an already-playing track must return the same voice handle")

	m.StopVoice(voice)
}
