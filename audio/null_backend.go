// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package audio

// NullBackend discards all audio. Always probes successfully, so it is
// selected for headless tests or when no real backend is available
// (matching qu_null_audio_impl's role as the always-present fallback).
type NullBackend struct {
	nextSrc uint32
}

func NewNullBackend() *NullBackend { return &NullBackend{} }

func (n *NullBackend) Probe() error { return nil }
func (n *NullBackend) Init() error  { return nil }
func (n *NullBackend) Terminate()  {}

func (n *NullBackend) SetMasterVolume(gain float32) {}

func (n *NullBackend) CreateSource() (uint32, error) {
	n.nextSrc++
	return n.nextSrc, nil
}

func (n *NullBackend) DestroySource(src uint32) {}

func (n *NullBackend) IsSourceUsed(src uint32) bool { return false }

func (n *NullBackend) QueueBuffer(src uint32, channels, sampleRate int, pcm []int16) error {
	return nil
}

func (n *NullBackend) UnqueueProcessedBuffers(src uint32) int { return 0 }
func (n *NullBackend) GetQueuedBuffers(src uint32) int        { return 0 }

func (n *NullBackend) StartSource(src uint32) {}
func (n *NullBackend) StopSource(src uint32)  {}
func (n *NullBackend) PauseSource(src uint32) {}

func (n *NullBackend) SetSourceGain(src uint32, gain float32) {}

func (n *NullBackend) SetSourceLooping(src uint32, loop bool) {}
