package wheel

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/iburimskiy/prize-wheel/internal/config"
)

type fixedRand []float64

func (f *fixedRand) Float64() float64 {
	v := (*f)[0]
	*f = (*f)[1:]
	return v
}

type harness struct {
	queue   FrameQueue
	frames  []float64
	stops   []float64
	spinner *Spinner
}

func newHarness(r RandSource) *harness {
	h := &harness{}
	h.spinner = NewSpinner(SpinnerConfig{
		Scheduler: &h.queue,
		Rand:      r,
		Frame:     func(rot float64) { h.frames = append(h.frames, rot) },
		OnStop:    func(rot float64) { h.stops = append(h.stops, rot) },
	})
	return h
}

// run flushes frames until the queue drains, with a safety cap.
func (h *harness) run(t *testing.T) int {
	t.Helper()
	n := 0
	for h.queue.Len() > 0 {
		h.queue.Flush()
		n++
		if n > 10000 {
			t.Fatal("spin did not converge")
		}
	}
	return n
}

func TestTicksToConvergeBounded(t *testing.T) {
	lo := TicksToConverge(config.SpinBase)
	hi := TicksToConverge(config.SpinBase + 0.999999)
	if lo < 140 || hi > 175 || lo > hi {
		t.Fatalf("ticks range [%d, %d]", lo, hi)
	}
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		n := TicksToConverge(config.SpinBase + r.Float64())
		if n < lo || n > hi {
			t.Fatalf("ticks %d outside [%d, %d]", n, lo, hi)
		}
	}
}

func TestSpinLifecycle(t *testing.T) {
	h := newHarness(rand.New(rand.NewPCG(42, 42)))
	if h.spinner.State() != Idle {
		t.Fatal("new spinner must be idle")
	}

	h.spinner.Start()
	if h.spinner.State() != Spinning {
		t.Fatal("expected spinning after start")
	}
	d := h.spinner.DecayRate()
	if d < 0.75 || d >= 1.75 {
		t.Fatalf("decay rate %v out of range", d)
	}
	if len(h.frames) != 1 || h.frames[0] != 0 {
		t.Fatalf("first frame must draw rotation 0 immediately, got %v", h.frames)
	}

	h.run(t)
	if h.spinner.State() != Idle {
		t.Fatal("expected idle after convergence")
	}
	if want := TicksToConverge(d); len(h.frames) != want {
		t.Errorf("drew %d frames, want %d", len(h.frames), want)
	}
	for i := 1; i < len(h.frames); i++ {
		if h.frames[i] <= h.frames[i-1] {
			t.Fatalf("rotation must increase: %v then %v", h.frames[i-1], h.frames[i])
		}
	}
	if len(h.stops) != 1 || h.stops[0] != h.frames[len(h.frames)-1] {
		t.Errorf("stop rotation %v, last frame %v", h.stops, h.frames[len(h.frames)-1])
	}
}

func TestSpinAgainResamples(t *testing.T) {
	r := fixedRand{0.1, 0.9}
	h := newHarness(&r)

	h.spinner.Start()
	h.run(t)
	first, rest := h.spinner.DecayRate(), h.spinner.Rotation()

	h.spinner.Start()
	if h.spinner.State() != Spinning {
		t.Fatal("second spin must start")
	}
	if second := h.spinner.DecayRate(); math.Abs(first-0.85) > 1e-12 || math.Abs(second-1.65) > 1e-12 {
		t.Errorf("decay rates %v, %v", first, second)
	}
	if got := h.frames[len(h.frames)-1]; got != rest {
		t.Errorf("second spin starts at %v, want resting rotation %v", got, rest)
	}
	h.run(t)
	if h.spinner.Spins() != 2 || len(h.stops) != 2 {
		t.Errorf("spins=%d stops=%d", h.spinner.Spins(), len(h.stops))
	}
}

func TestRestartCancelsStaleChain(t *testing.T) {
	r := fixedRand{0.5, 0.5}
	h := newHarness(&r)

	h.spinner.Start()
	h.queue.Flush()
	h.queue.Flush()
	// Both chains have a callback pending once the restart queues its own.
	h.spinner.Start()
	if h.queue.Len() != 2 {
		t.Fatalf("pending callbacks %d, want 2", h.queue.Len())
	}
	before := len(h.frames)
	h.queue.Flush()
	if got := len(h.frames) - before; got != 1 {
		t.Fatalf("stale chain drew: %d frames in one flush", got)
	}
	h.run(t)
	if len(h.stops) != 1 {
		t.Errorf("only the live chain stops, got %d stops", len(h.stops))
	}
}

func TestStop(t *testing.T) {
	h := newHarness(rand.New(rand.NewPCG(3, 4)))
	h.spinner.Start()
	h.queue.Flush()
	h.spinner.Stop()
	if h.spinner.State() != Idle {
		t.Fatal("expected idle after stop")
	}
	frames := len(h.frames)
	h.run(t)
	if len(h.frames) != frames || len(h.stops) != 0 {
		t.Errorf("cancelled spin kept running: frames %d→%d stops %d", frames, len(h.frames), len(h.stops))
	}
}

func TestClickShaftStartsSpin(t *testing.T) {
	var cell RegionCell
	h := newHarness(rand.New(rand.NewPCG(9, 9)))
	cell.Publish([]Region{ShaftRegion(500, 500, h.spinner.Start)})

	ctrl := NewController(&cell)
	if n := ctrl.Click(Point{500, 500}, Point{}); n != 1 {
		t.Fatalf("center click hits %d", n)
	}
	if h.spinner.State() != Spinning {
		t.Fatal("shaft hit must start a spin")
	}
	first := h.spinner.DecayRate()
	h.run(t)

	ctrl.Click(Point{500, 500}, Point{})
	if h.spinner.State() != Spinning || h.spinner.Spins() != 2 {
		t.Fatal("second click must spin again")
	}
	if h.spinner.DecayRate() == first {
		t.Error("decay rate should be sampled independently")
	}
}

func TestFrameQueueOrder(t *testing.T) {
	var q FrameQueue
	var got []int
	q.RequestFrame(func() {
		got = append(got, 1)
		q.RequestFrame(func() { got = append(got, 3) })
	})
	q.RequestFrame(func() { got = append(got, 2) })

	if n := q.Flush(); n != 2 {
		t.Fatalf("first flush ran %d", n)
	}
	if len(got) != 2 || q.Len() != 1 {
		t.Fatalf("got %v pending %d", got, q.Len())
	}
	q.Flush()
	if len(got) != 3 || got[2] != 3 {
		t.Errorf("got %v", got)
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Spinning.String() != "spinning" || State(9).String() != "unknown" {
		t.Error("unexpected state names")
	}
}

func TestTickReportsDrawnSteps(t *testing.T) {
	var queue FrameQueue
	var frames, stops []float64
	type step struct{ prev, next float64 }
	var steps []step
	s := NewSpinner(SpinnerConfig{
		Scheduler: &queue,
		Rand:      rand.New(rand.NewPCG(1, 2)),
		Frame:     func(rot float64) { frames = append(frames, rot) },
		OnTick:    func(prev, next float64) { steps = append(steps, step{prev, next}) },
		OnStop:    func(rot float64) { stops = append(stops, rot) },
	})
	s.Start()
	for i := 0; queue.Len() > 0; i++ {
		if i > 10000 {
			t.Fatal("spin did not converge")
		}
		queue.Flush()
	}

	if len(steps) != len(frames) {
		t.Fatalf("%d steps for %d frames", len(steps), len(frames))
	}
	if steps[0].prev != steps[0].next {
		t.Errorf("first step %v must not move", steps[0])
	}
	for i, st := range steps {
		if st.next != frames[i] {
			t.Fatalf("step %d ends at %v, frame drawn at %v", i, st.next, frames[i])
		}
		if i > 0 && st.prev != frames[i-1] {
			t.Fatalf("step %d starts at %v, previous frame %v", i, st.prev, frames[i-1])
		}
	}
	if last := steps[len(steps)-1].next; len(stops) != 1 || last != stops[0] {
		t.Errorf("last step ends at %v, wheel rests at %v", last, stops)
	}
}
