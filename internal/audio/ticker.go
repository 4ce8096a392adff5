// Package audio plays the clicking sound of the wheel passing its pointer.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/prize-wheel/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// Ticker emits one short click per piece boundary.
type Ticker struct {
	sr   beep.SampleRate
	play func(beep.Streamer)
}

// NewTicker opens the speaker. When that fails the returned Ticker is
// silent and the error says why.
func NewTicker() (*Ticker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return Silent(), fmt.Errorf("init speaker: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	return &Ticker{
		sr: sampleRate,
		play: func(s beep.Streamer) {
			speaker.Lock()
			mixer.Add(s)
			speaker.Unlock()
		},
	}, nil
}

// Silent is a Ticker that drops every click.
func Silent() *Ticker {
	return &Ticker{sr: sampleRate}
}

// Tick plays a click if any boundary passed. Several boundaries within one
// frame merge into one click.
func (t *Ticker) Tick(crossings int) bool {
	if t.play == nil || crossings <= 0 {
		return false
	}
	t.play(beep.Take(t.sr.N(config.TickDuration), newClick(t.sr, config.TickFrequency, config.TickVolume)))
	return true
}

// click is a sine burst with an exponential release.
type click struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

func newClick(sr beep.SampleRate, freq, volume float64) *click {
	return &click{sr: sr, freq: freq, volume: volume}
}

func (c *click) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(c.pos) / float64(c.sr)
		// ~3ms time constant
		env := math.Exp(-t / 0.003)
		v := c.volume * env * math.Sin(2*math.Pi*c.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *click) Err() error { return nil }
