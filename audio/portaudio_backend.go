// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package audio

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const paOutputSampleRate = 44100
const paOutputChannels = 2

// paSource is one software-mixed voice: a FIFO of queued int16 buffers
// sharing one channel count, the one given to the most recent
// QueueBuffer call, so mono sources get upmixed to the shared stereo
// output.
type paSource struct {
	id      uint32
	playing bool
	gain    float32

	mu      sync.Mutex
	queue   [][]int16
	channels int
}

// PortAudioBackend implements Backend by software-mixing every active
// source into one stereo output stream, the alternative to
// OpenALBackend alongside which the runtime's probe loop may select it
// (spec.md §6: "probe multiple backends").
type PortAudioBackend struct {
	stream *portaudio.Stream
	gain   float32

	mu      sync.Mutex
	sources map[uint32]*paSource
	nextID  uint32
}

// NewPortAudioBackend returns an uninitialized PortAudio backend.
func NewPortAudioBackend() *PortAudioBackend {
	return &PortAudioBackend{gain: 1, sources: make(map[uint32]*paSource)}
}

func (p *PortAudioBackend) Probe() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio: portaudio: probe: %w", err)
	}
	return portaudio.Terminate()
}

func (p *PortAudioBackend) Init() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio: portaudio: init: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, paOutputChannels, paOutputSampleRate, 0, p.callback)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio: portaudio: open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio: portaudio: start stream: %w", err)
	}
	p.stream = stream
	return nil
}

func (p *PortAudioBackend) Terminate() {
	if p.stream != nil {
		p.stream.Stop()
		p.stream.Close()
	}
	portaudio.Terminate()
}

func (p *PortAudioBackend) SetMasterVolume(gain float32) { p.gain = gain }

func (p *PortAudioBackend) CreateSource() (uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	id := p.nextID
	p.sources[id] = &paSource{id: id, gain: 1}
	return id, nil
}

func (p *PortAudioBackend) DestroySource(src uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.sources, src)
}

func (p *PortAudioBackend) source(src uint32) *paSource {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sources[src]
}

func (p *PortAudioBackend) IsSourceUsed(src uint32) bool {
	s := p.source(src)
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue) > 0
}

func (p *PortAudioBackend) QueueBuffer(src uint32, channels, sampleRate int, pcm []int16) error {
	s := p.source(src)
	if s == nil {
		return fmt.Errorf("audio: portaudio: unknown source %d", src)
	}
	buf := make([]int16, len(pcm))
	copy(buf, pcm)
	s.mu.Lock()
	s.channels = channels
	s.queue = append(s.queue, buf)
	s.mu.Unlock()
	return nil
}

func (p *PortAudioBackend) UnqueueProcessedBuffers(src uint32) int {
	// The mixing callback pops buffers as it consumes them; nothing
	// further to release here.
	return 0
}

func (p *PortAudioBackend) GetQueuedBuffers(src uint32) int {
	s := p.source(src)
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

func (p *PortAudioBackend) StartSource(src uint32) {
	if s := p.source(src); s != nil {
		s.mu.Lock()
		s.playing = true
		s.mu.Unlock()
	}
}

func (p *PortAudioBackend) StopSource(src uint32) {
	if s := p.source(src); s != nil {
		s.mu.Lock()
		s.playing = false
		s.queue = nil
		s.mu.Unlock()
	}
}

func (p *PortAudioBackend) PauseSource(src uint32) {
	if s := p.source(src); s != nil {
		s.mu.Lock()
		s.playing = false
		s.mu.Unlock()
	}
}

func (p *PortAudioBackend) SetSourceGain(src uint32, gain float32) {
	if s := p.source(src); s != nil {
		s.mu.Lock()
		s.gain = gain
		s.mu.Unlock()
	}
}

// callback mixes every playing source's queued samples into out, one
// stereo frame at a time, upmixing mono sources by duplicating the
// sample into both channels.
func (p *PortAudioBackend) callback(out []int16) {
	for i := range out {
		out[i] = 0
	}

	p.mu.Lock()
	sources := make([]*paSource, 0, len(p.sources))
	for _, s := range p.sources {
		sources = append(sources, s)
	}
	p.mu.Unlock()

	frames := len(out) / paOutputChannels

	for _, s := range sources {
		s.mu.Lock()
		if !s.playing {
			s.mu.Unlock()
			continue
		}
		channels := s.channels
		if channels == 0 {
			channels = 1
		}
		gain := s.gain * p.gain

		frame := 0
		for frame < frames && len(s.queue) > 0 {
			buf := s.queue[0]
			for buf != nil && len(buf) >= channels && frame < frames {
				var l, r int32
				if channels == 1 {
					v := int32(float32(buf[0]) * gain)
					l, r = v, v
					buf = buf[1:]
				} else {
					l = int32(float32(buf[0]) * gain)
					r = int32(float32(buf[1]) * gain)
					buf = buf[2:]
				}
				out[frame*2] = clampInt16(int32(out[frame*2]) + l)
				out[frame*2+1] = clampInt16(int32(out[frame*2+1]) + r)
				frame++
			}
			if len(buf) < channels {
				s.queue = s.queue[1:]
			} else {
				s.queue[0] = buf
			}
		}
		s.mu.Unlock()
	}
}

func clampInt16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
