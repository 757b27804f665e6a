// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build qu_headless

package qu

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file is built with -tags qu_headless, which swaps the platform
// and renderer packages' Candidates() for their headless variant
// (platform/candidates_headless.go, render/candidates_headless.go), so
// Initialize deterministically wires up their null backends instead of
// depending on GLFW/GL probe failures in whatever environment the test
// happens to run in. The audio package always falls back to its null
// backend on its own once OpenAL/PortAudio fail to probe, with or
// without the tag.

func TestInitializeAndTerminateLifecycle(t *testing.T) {
	require.NoError(t, Initialize(Title("test"), Size(320, 240)))
	assert.Equal(t, "test", WindowTitle())
	w, h := WindowSize()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)

	Terminate()

	// Terminate is a no-op once already torn down.
	assert.NotPanics(t, Terminate)
}

func TestInitializeTwiceWithoutTerminateHalts(t *testing.T) {
	require.NoError(t, Initialize())
	defer Terminate()

	assert.Panics(t, func() { _ = Initialize() })
}

func TestProcessAndPresentAreNoopsBeforeInitialize(t *testing.T) {
	assert.False(t, Process())
	assert.NotPanics(t, Present)
}

func TestProcessReturnsTrueAfterInitialize(t *testing.T) {
	require.NoError(t, Initialize())
	defer Terminate()

	assert.True(t, Process())
}

func TestTextureRoundTrip(t *testing.T) {
	require.NoError(t, Initialize())
	defer Terminate()

	pixels := make([]byte, 4*4*4)
	tex := CreateTexture(4, 4, 4, pixels)
	assert.NotEqual(t, Texture(0), tex)

	w, h := TextureSize(tex)
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	DestroyTexture(tex)
}

func TestLoadTextureRejectsGarbageBytes(t *testing.T) {
	require.NoError(t, Initialize())
	defer Terminate()

	tex := LoadTexture([]byte("not an image"))
	assert.Equal(t, Texture(0), tex)
}

func TestSurfaceRoundTrip(t *testing.T) {
	require.NoError(t, Initialize())
	defer Terminate()

	surf := CreateSurface(64, 64, 1)
	assert.NotEqual(t, Surface(0), surf)

	SetSurface(surf)
	Clear(Color{A: 1})
	ResetSurface()

	DestroySurface(surf)
}

func TestSoundLoadAndPlayRoundTrip(t *testing.T) {
	require.NoError(t, Initialize())
	defer Terminate()

	data := buildTestWAV(t, 1, 16, 44100, []int16{1, 2, 3, 4})
	snd := LoadSound("beep", data)
	assert.NotEqual(t, Sound(0), snd)

	voice := PlaySound(snd)
	assert.NotEqual(t, Voice(0), voice)

	StopVoice(voice)
	UnloadSound(snd)
}

func TestMasterVolumeRoundTrip(t *testing.T) {
	require.NoError(t, Initialize())
	defer Terminate()

	SetMasterVolume(0.5)
	assert.Equal(t, float32(0.5), MasterVolume())
}

func TestLoadFontRejectsGarbageBytes(t *testing.T) {
	require.NoError(t, Initialize())
	defer Terminate()

	f := LoadFont([]byte("not a font"), 16)
	assert.Equal(t, Font(0), f)
}

func TestKeyStateIsIdleByDefault(t *testing.T) {
	require.NoError(t, Initialize())
	defer Terminate()

	assert.False(t, IsKeyPressed(KeyA))
}

func TestTouchAtOutOfRangeReturnsZeroValue(t *testing.T) {
	require.NoError(t, Initialize())
	defer Terminate()

	touch := TouchAt(MaxTouchInputs)
	assert.False(t, touch.Pressed)
}

// buildTestWAV assembles a minimal RIFF/WAVE PCM file in memory,
// mirroring loader's own wav_test.go helper, so audio round-trip tests
// don't depend on a fixture file.
func buildTestWAV(t *testing.T, channels, bits int, sampleRate uint32, samples []int16) []byte {
	t.Helper()
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(36+len(data))))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(16)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(1))) // PCM
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(channels)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, sampleRate))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, sampleRate*uint32(channels)*uint32(bits/8)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(channels*bits/8)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(bits)))
	buf.WriteString("data")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(data))))
	buf.Write(data)
	return buf.Bytes()
}
