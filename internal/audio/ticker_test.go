package audio

import (
	"math"
	"testing"

	"github.com/faiface/beep"

	"github.com/iburimskiy/prize-wheel/internal/config"
)

func TestClickDecays(t *testing.T) {
	c := newClick(sampleRate, 1000, 0.5)
	buf := make([][2]float64, sampleRate.N(config.TickDuration))
	n, ok := c.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream = %d, %v", n, ok)
	}

	peak := func(s [][2]float64) float64 {
		m := 0.0
		for _, v := range s {
			m = math.Max(m, math.Abs(v[0]))
			if v[0] != v[1] {
				t.Fatal("click must be mono")
			}
		}
		return m
	}
	head, tail := peak(buf[:len(buf)/4]), peak(buf[3*len(buf)/4:])
	if head > 0.5 || head < 0.1 || tail >= head/10 {
		t.Errorf("head peak %v, tail peak %v", head, tail)
	}
	if c.Err() != nil {
		t.Error("click never errors")
	}
}

func TestTick(t *testing.T) {
	var played []beep.Streamer
	tk := &Ticker{sr: sampleRate, play: func(s beep.Streamer) { played = append(played, s) }}

	if tk.Tick(0) {
		t.Error("no crossing, no click")
	}
	if !tk.Tick(3) || len(played) != 1 {
		t.Fatalf("expected one merged click, got %d", len(played))
	}

	buf := make([][2]float64, 4096)
	total := 0
	for {
		n, ok := played[0].Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(config.TickDuration); total != want {
		t.Errorf("click length %d samples, want %d", total, want)
	}
}

func TestSilent(t *testing.T) {
	if Silent().Tick(1) {
		t.Error("silent ticker must not play")
	}
}
