// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build !qu_no_openal

package audio

import (
	"fmt"

	"github.com/galvanizedlogic/qu/internal/audio/al"
)

// OpenALBackend implements Backend on top of the cgo OpenAL binding.
// It is one of two selectable concrete audio backends (the other being
// PortAudioBackend), tried in the runtime's probe order.
type OpenALBackend struct {
	dev al.Device
	ctx al.Context
}

// NewOpenALBackend returns an uninitialized OpenAL backend.
func NewOpenALBackend() *OpenALBackend { return &OpenALBackend{} }

func (a *OpenALBackend) Probe() error {
	al.Init()
	dev := al.OpenDevice("")
	if dev == 0 {
		return fmt.Errorf("audio: openal: no device")
	}
	al.CloseDevice(dev)
	return nil
}

func (a *OpenALBackend) Init() error {
	al.Init()

	a.dev = al.OpenDevice("")
	if a.dev == 0 {
		return fmt.Errorf("audio: openal: no device")
	}
	a.ctx = al.CreateContext(a.dev, nil)
	if a.ctx == 0 {
		al.CloseDevice(a.dev)
		return fmt.Errorf("audio: openal: create context failed")
	}
	al.MakeContextCurrent(a.ctx)
	return nil
}

func (a *OpenALBackend) Terminate() {
	al.MakeContextCurrent(0)
	if a.ctx != 0 {
		al.DestroyContext(a.ctx)
	}
	if a.dev != 0 {
		al.CloseDevice(a.dev)
	}
}

func (a *OpenALBackend) SetMasterVolume(gain float32) {
	al.Listenerf(al.GAIN, gain)
}

func (a *OpenALBackend) CreateSource() (uint32, error) {
	var src uint32
	al.GenSources(1, &src)
	if alerr := al.GetError(); alerr != al.NO_ERROR {
		return 0, fmt.Errorf("audio: openal: gen source: %x", alerr)
	}
	return src, nil
}

func (a *OpenALBackend) DestroySource(src uint32) {
	al.SourceStop(src)
	al.DeleteSources(1, &src)
}

func (a *OpenALBackend) IsSourceUsed(src uint32) bool {
	var state int32
	al.GetSourcei(src, al.SOURCE_STATE, &state)
	return state == al.PLAYING || state == al.PAUSED
}

func (a *OpenALBackend) QueueBuffer(src uint32, channels, sampleRate int, pcm []int16) error {
	if len(pcm) == 0 {
		return nil
	}
	format, err := alFormat(channels)
	if err != nil {
		return err
	}
	var buf uint32
	al.GenBuffers(1, &buf)
	al.BufferData(buf, format, al.Pointer(&pcm[0]), int32(len(pcm)*2), int32(sampleRate))
	if alerr := al.GetError(); alerr != al.NO_ERROR {
		return fmt.Errorf("audio: openal: buffer data: %x", alerr)
	}
	al.SourceQueueBuffers(src, 1, &buf)
	return nil
}

func (a *OpenALBackend) UnqueueProcessedBuffers(src uint32) int {
	var processed int32
	al.GetSourcei(src, al.BUFFERS_PROCESSED, &processed)
	n := int(processed)
	for i := 0; i < n; i++ {
		var buf uint32
		al.SourceUnqueueBuffers(src, 1, &buf)
		al.DeleteBuffers(1, &buf)
	}
	return n
}

func (a *OpenALBackend) GetQueuedBuffers(src uint32) int {
	var queued int32
	al.GetSourcei(src, al.BUFFERS_QUEUED, &queued)
	return int(queued)
}

func (a *OpenALBackend) StartSource(src uint32) { al.SourcePlay(src) }
func (a *OpenALBackend) StopSource(src uint32)  { al.SourceStop(src) }
func (a *OpenALBackend) PauseSource(src uint32) { al.SourcePause(src) }

func (a *OpenALBackend) SetSourceGain(src uint32, gain float32) {
	al.Sourcef(src, al.GAIN, gain)
}

func alFormat(channels int) (int32, error) {
	switch channels {
	case 1:
		return al.FORMAT_MONO16, nil
	case 2:
		return al.FORMAT_STEREO16, nil
	default:
		return 0, fmt.Errorf("audio: openal: unsupported channel count %d", channels)
	}
}
