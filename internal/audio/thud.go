// Package audio plays a short bump when the player hits the window edge.
package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Thud is a decaying sine with a falling pitch.
type Thud struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewThud(sr beep.SampleRate, freq float64) *Thud {
	return &Thud{sr: sr, freq: freq}
}

func (g *Thud) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		f := g.freq * (1 - 0.5*math.Min(t/0.08, 1))
		sample := 0.4 * math.Sin(2*math.Pi*f*t) * math.Exp(-t*40)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Thud) Err() error {
	return nil
}
