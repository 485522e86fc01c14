package timer

import "time"

// Monotonic is a countdown timer over the runtime monotonic clock.
//
// The zero value reports expired until armed with Start. Monotonic is not safe
// for concurrent use — it is an exclusively-owned-for-the-call capability.
type Monotonic struct {
	deadline time.Time
}

// NewMonotonic creates a new unarmed [Monotonic] timer.
func NewMonotonic() *Monotonic { return &Monotonic{} }

// Start arms the timer to expire after d.
// Zero and negative durations expire immediately.
func (t *Monotonic) Start(d time.Duration) {
	t.deadline = time.Now().Add(d)
}

// Expired reports whether the armed duration has elapsed.
func (t *Monotonic) Expired() bool {
	return !time.Now().Before(t.deadline)
}

// Left returns the time remaining until the timer expires.
// Returns 0 if the timer is expired or unarmed.
func (t *Monotonic) Left() time.Duration {
	left := time.Until(t.deadline)
	if left < 0 {
		return 0
	}
	return left
}
