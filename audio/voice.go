// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package audio

import "github.com/galvanizedlogic/qu/internal/handle"

// voiceState tracks where a voice is in its playback lifecycle.
type voiceState uint8

const (
	voiceInactive voiceState = iota
	voicePlaying
	voicePaused
	voiceDestroyed
)

// voiceType distinguishes a one-shot sound voice from a streamed music
// voice; find_voice uses this to never steal a voice that a background
// music thread still owns.
type voiceType uint8

const (
	voiceNone voiceType = iota
	voiceSound
	voiceMusic
)

// voice is one slot in the fixed MaxVoices pool.
type voice struct {
	typ   voiceType
	state voiceState
	gen   uint8 // advanced every time the slot is reused; wraps per handle.H's 7-bit field.
	src   uint32

	music *musicStream // non-nil only while typ == voiceMusic.
}

// findVoice scans the fixed pool for a slot that can be reused: a never
// used slot, a manually-stopped slot, or a sound voice whose source has
// finished playing on its own. Music voices are always skipped since a
// background goroutine still owns them. Returns -1 if every voice is
// busy.
func (m *Mixer) findVoice() int {
	for i := range m.voices {
		v := &m.voices[i]

		if v.typ == voiceMusic {
			continue
		}
		if v.typ == voiceNone || v.state == voiceDestroyed {
			return i
		}
		if !m.backend.IsSourceUsed(v.src) {
			m.backend.DestroySource(v.src)
			return i
		}
	}
	return -1
}

// resetVoice advances the slot's generation and marks it free for
// reuse, matching find_voice's bookkeeping once a slot is chosen.
func (m *Mixer) resetVoice(i int) {
	v := &m.voices[i]
	v.gen = (v.gen + 1) & 0x7F
	v.typ = voiceNone
	v.state = voiceInactive
	v.src = 0
	v.music = nil
}

// voiceID and decodeVoiceID address the fixed voice pool through the
// same handle.Encode/Decode layout every other resource kind uses,
// rather than qu_audio.c's bespoke voice_to_id (gen mod 64, 0xCC
// sentinel). See DESIGN.md Open Questions for why this port unifies on
// one handle layout instead of carrying the original's second one.
func voiceID(index int, gen uint8) handle.H {
	return handle.Encode(index, gen)
}

func decodeVoiceID(h handle.H) (index int, gen uint8, ok bool) {
	return handle.Decode(h)
}
