// Copyright © 2013-2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package loader

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWAV assembles a minimal RIFF/WAVE PCM file in memory so tests
// don't depend on fixture files, unlike the teacher's load/wav_test.go
// which reads from vu/eg/audio.
func buildWAV(t *testing.T, channels, bits int, sampleRate uint32, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	hdr := wavHeader{
		RiffID:      [4]byte{'R', 'I', 'F', 'F'},
		FileSize:    uint32(36 + len(data)),
		WaveID:      [4]byte{'W', 'A', 'V', 'E'},
		Fmt:         [4]byte{'f', 'm', 't', ' '},
		FmtSize:     16,
		AudioFormat: 1,
		Channels:    uint16(channels),
		Frequency:   sampleRate,
		ByteRate:    sampleRate * uint32(channels) * uint32(bits/8),
		BlockAlign:  uint16(channels * bits / 8),
		SampleBits:  uint16(bits),
		DataID:      [4]byte{'d', 'a', 't', 'a'},
		DataSize:    uint32(len(data)),
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, hdr))
	buf.Write(data)
	return buf.Bytes()
}

func TestOpenWAV16Bit(t *testing.T) {
	samples := []int16{100, -200, 300, -400}
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	raw := buildWAV(t, 2, 16, 44100, data)

	d, err := OpenWAV(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Channels())
	assert.Equal(t, 44100, d.SampleRate())
	assert.Equal(t, int64(4), d.TotalSamples())

	out := make([]int16, 4)
	n, err := d.Read(out)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, samples, out)

	n, err = d.Read(out)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}

func TestOpenWAV8BitCentersAroundZero(t *testing.T) {
	raw := buildWAV(t, 1, 8, 8000, []byte{0, 128, 255})
	d, err := OpenWAV(bytes.NewReader(raw))
	require.NoError(t, err)

	out := make([]int16, 3)
	n, err := d.Read(out)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	assert.Less(t, out[0], int16(0))
	assert.Equal(t, int16(0), out[1])
	assert.Greater(t, out[2], int16(0))
}

func TestOpenWAVSeek(t *testing.T) {
	data := make([]byte, 8)
	for i := range [4]int16{} {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(i*10)))
	}
	raw := buildWAV(t, 1, 16, 44100, data)
	d, err := OpenWAV(bytes.NewReader(raw))
	require.NoError(t, err)

	require.NoError(t, d.Seek(2))
	out := make([]int16, 2)
	n, err := d.Read(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int16{20, 30}, out)

	assert.Error(t, d.Seek(-1))
	assert.Error(t, d.Seek(100))
}

func TestOpenWAVRejectsNonRIFF(t *testing.T) {
	_, err := OpenWAV(bytes.NewReader([]byte("not a wav file at all")))
	assert.Error(t, err)
}

func TestOpenWAVRejectsCompressedFormat(t *testing.T) {
	raw := buildWAV(t, 1, 16, 44100, []byte{1, 2})
	// Flip the RIFF/WAVE-valid header's AudioFormat field (offset 20)
	// to a non-PCM compression code.
	raw[20] = 2
	_, err := OpenWAV(bytes.NewReader(raw))
	assert.Error(t, err)
}
