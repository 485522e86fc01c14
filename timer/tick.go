package timer

import "time"

// Tick is a deterministic countdown driven by explicit [Tick.Tick] calls
// instead of a clock. It suits schedulerless environments where time advances
// with loop iterations, and tests that need exact expiry points.
//
// Start interprets the integer value of the duration as a tick budget: a timer
// armed with 100 expires on the 100th tick. The zero value reports expired
// until armed.
type Tick struct {
	ticks  uint64
	budget uint64
}

// NewTick creates a new unarmed [Tick] timer.
func NewTick() *Tick { return &Tick{} }

// Start arms the timer with a tick budget of d.
// Zero and negative budgets expire immediately.
func (t *Tick) Start(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.budget = uint64(d)
	t.ticks = 0
}

// Tick advances the countdown by one tick.
func (t *Tick) Tick() {
	t.ticks++
}

// Expired reports whether the armed tick budget has been consumed.
func (t *Tick) Expired() bool {
	return t.ticks >= t.budget
}

// Left returns the number of ticks remaining until expiry.
func (t *Tick) Left() uint64 {
	if t.ticks >= t.budget {
		return 0
	}
	return t.budget - t.ticks
}
