package wheel

import "github.com/iburimskiy/prize-wheel/internal/config"

// State of the spin driver.
type State int

const (
	Idle State = iota
	Spinning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	}
	return "unknown"
}

// Scheduler runs a callback before the next frame is presented.
type Scheduler interface {
	RequestFrame(fn func())
}

// RandSource supplies uniform samples in [0, 1).
type RandSource interface {
	Float64() float64
}

// FrameQueue is a Scheduler flushed once per host frame. Callbacks requested
// while flushing run on the following flush, in request order.
type FrameQueue struct {
	pending []func()
}

func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Flush runs the callbacks queued before this call and reports how many ran.
func (q *FrameQueue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len is the number of callbacks waiting for the next flush.
func (q *FrameQueue) Len() int { return len(q.pending) }

// FrameFunc clears and redraws the whole scene at rotation.
type FrameFunc func(rotation float64)

// SpinnerConfig wires a Spinner to its host.
type SpinnerConfig struct {
	Scheduler Scheduler
	Rand      RandSource
	Frame     FrameFunc

	// OnStart receives the sampled decay rate of a new spin.
	OnStart func(decayRate float64)
	// OnTick fires before every drawn frame with the step from the last
	// drawn rotation to the one about to be drawn.
	OnTick func(prev, next float64)
	// OnStop fires when a spin converges, with the resting rotation.
	OnStop func(rotation float64)
}

// chain is the cancellation token of one spin run.
type chain struct {
	cancelled bool
}

// Spinner drives the spin animation. It must be used from the host's
// frame goroutine only.
type Spinner struct {
	cfg SpinnerConfig

	state     State
	rotation  float64
	decayRate float64
	chain     *chain
	spins     int
}

func NewSpinner(cfg SpinnerConfig) *Spinner {
	return &Spinner{cfg: cfg}
}

// Start begins a new spin from the current rotation. Any spin in flight is
// cancelled first; its already scheduled frame becomes a no-op.
func (s *Spinner) Start() {
	s.cancel()

	c := &chain{}
	s.chain = c
	s.state = Spinning
	s.decayRate = config.SpinBase + s.cfg.Rand.Float64()
	s.spins++
	if s.cfg.OnStart != nil {
		s.cfg.OnStart(s.decayRate)
	}
	s.tick(c, s.rotation, s.decayRate)
}

// Stop cancels the running spin, leaving the wheel where it is.
func (s *Spinner) Stop() {
	s.cancel()
	s.state = Idle
}

func (s *Spinner) cancel() {
	if s.chain != nil {
		s.chain.cancelled = true
		s.chain = nil
	}
}

func (s *Spinner) tick(c *chain, rotation, delta float64) {
	if c.cancelled {
		return
	}
	if delta < config.SpinThreshold {
		s.chain = nil
		s.state = Idle
		if s.cfg.OnStop != nil {
			s.cfg.OnStop(s.rotation)
		}
		return
	}

	prev := s.rotation
	s.rotation = rotation
	if s.cfg.OnTick != nil {
		s.cfg.OnTick(prev, rotation)
	}
	s.cfg.Frame(rotation)
	next := rotation + delta
	s.cfg.Scheduler.RequestFrame(func() {
		s.tick(c, next, delta*config.SpinDecay)
	})
}

// State reports whether a spin is in flight.
func (s *Spinner) State() State { return s.state }

// Rotation is the rotation of the last drawn frame.
func (s *Spinner) Rotation() float64 { return s.rotation }

// DecayRate is the initial increment of the latest spin.
func (s *Spinner) DecayRate() float64 { return s.decayRate }

// Spins counts the spins started so far.
func (s *Spinner) Spins() int { return s.spins }

// TicksToConverge is the number of frames a spin starting at delta draws.
func TicksToConverge(delta float64) int {
	n := 0
	for delta >= config.SpinThreshold {
		n++
		delta *= config.SpinDecay
	}
	return n
}
