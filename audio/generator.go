package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BlipGenerator is a short decaying square-ish tick played while text reveals
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
	n    int
}

// NewBlipGenerator creates a blip at freq lasting d
func NewBlipGenerator(sr beep.SampleRate, freq float64, d time.Duration) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq, n: sr.N(d)}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.n {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.n {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics give the typewriter edge
		sample := math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*g.freq*3*t)
		sample *= 0.12 * math.Exp(-t*60)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// ChimeGenerator is a two-note bell used for toast notifications
type ChimeGenerator struct {
	sr     beep.SampleRate
	first  float64
	second float64
	split  int
	pos    int
	n      int
}

// NewChimeGenerator plays first then second, each for half of d
func NewChimeGenerator(sr beep.SampleRate, first, second float64, d time.Duration) *ChimeGenerator {
	n := sr.N(d)
	return &ChimeGenerator{sr: sr, first: first, second: second, split: n / 2, n: n}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.n {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.n {
			return i, true
		}
		freq, local := g.first, g.pos
		if g.pos >= g.split {
			freq, local = g.second, g.pos-g.split
		}
		t := float64(local) / float64(g.sr)

		// Bell partials with exponential decay
		sample := math.Sin(2*math.Pi*freq*t) + 0.4*math.Sin(2*math.Pi*freq*2.76*t)
		sample *= 0.15 * math.Exp(-t*6)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
