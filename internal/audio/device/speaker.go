// Package device sends bump sounds to the system audio output.
package device

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/ballgame/internal/audio"
)

const sampleRate = beep.SampleRate(44100)

// Speaker mixes bump sounds into the system audio output. It implements
// audio.Sink.
type Speaker struct {
	mixer *beep.Mixer
}

// OpenSpeaker initialises the audio device.
func OpenSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Speaker) Bump() {
	speaker.Lock()
	s.mixer.Add(beep.Take(sampleRate.N(80*time.Millisecond), audio.NewThud(sampleRate, 110)))
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
