package timer

import (
	"log/slog"
	"sync"
	"time"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/timeguard/internal/errorutil"
)

// State represents the lifecycle state of a [Tracked] timer.
type State string

const (
	// StateIdle indicates the timer has never been armed.
	StateIdle State = "idle"
	// StateRunning indicates the timer is counting down.
	StateRunning State = "running"
	// StateStopped indicates the timer was stopped before expiry.
	StateStopped State = "stopped"
	// StateExpired indicates the armed duration has elapsed.
	StateExpired State = "expired"
)

const (
	triggerStart  = "start"
	triggerStop   = "stop"
	triggerExpire = "expire"
)

func newLifecycle(initial State) *stateless.StateMachine {
	sm := stateless.NewStateMachine(initial)
	sm.Configure(StateIdle).
		Permit(triggerStart, StateRunning)
	sm.Configure(StateRunning).
		PermitReentry(triggerStart).
		Permit(triggerStop, StateStopped).
		Permit(triggerExpire, StateExpired)
	sm.Configure(StateStopped).
		Permit(triggerStart, StateRunning)
	sm.Configure(StateExpired).
		Permit(triggerStart, StateRunning)
	return sm
}

// Tracked is a wall-clock countdown with an explicit lifecycle and
// serializable state, for countdowns that must survive a snapshot/restore
// cycle, such as timeouts of long-lived workflows.
//
// Expiry is evaluated lazily: querying Expired on a running timer whose
// duration has elapsed drives the running → expired transition. All
// operations are safe for concurrent use, though a timer still must drive at
// most one guarded call at a time.
type Tracked struct {
	mu        sync.Mutex
	sm        *stateless.StateMachine
	startTime time.Time
	duration  time.Duration
	stopTime  time.Time
}

// NewTracked creates a new [Tracked] timer in [StateIdle].
func NewTracked() *Tracked {
	return &Tracked{sm: newLifecycle(StateIdle)}
}

// Start arms the timer to expire after d, restarting any previous countdown.
func (t *Tracked) Start(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.sm.Fire(triggerStart)
	t.startTime = time.Now()
	t.duration = d
	t.stopTime = time.Time{}
}

// Expired reports whether the armed duration has elapsed.
// Stopped and idle timers never report expired.
func (t *Tracked) Expired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.expireLocked()
}

func (t *Tracked) expireLocked() bool {
	state := t.sm.MustState().(State) //nolint:forcetypeassert
	if state == StateRunning && time.Since(t.startTime) >= t.duration {
		_ = t.sm.Fire(triggerExpire)
		t.stopTime = time.Now()
		return true
	}
	return state == StateExpired
}

// Stop stops a running countdown before expiry.
// Returns false if the timer is not running.
func (t *Tracked) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.expireLocked() {
		return false
	}
	if err := t.sm.Fire(triggerStop); err != nil {
		return false
	}
	t.stopTime = time.Now()
	return true
}

// State returns the current lifecycle state, refreshing expiry first.
func (t *Tracked) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.expireLocked()
	return t.sm.MustState().(State) //nolint:forcetypeassert
}

// Left returns the time remaining until expiry.
// Returns 0 unless the timer is running.
func (t *Tracked) Left() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.expireLocked() {
		return 0
	}
	if t.sm.MustState().(State) != StateRunning { //nolint:forcetypeassert
		return 0
	}
	left := t.duration - time.Since(t.startTime)
	if left < 0 {
		return 0
	}
	return left
}

func (t *Tracked) LogValue() slog.Value {
	if t == nil {
		return slog.Value{}
	}
	snap := t.Snapshot()
	return slog.GroupValue(
		slog.String("state", string(snap.State)),
		slog.Duration("duration", snap.Duration),
		slog.Time("start_time", snap.StartTime),
	)
}

// Snapshot represents a serializable view of a [Tracked] timer.
// Only deterministic fields are included so that the snapshot can be safely
// persisted or transferred between processes.
type Snapshot struct {
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
	State     State         `json:"state"`
	StopTime  time.Time     `json:"stop_time,omitzero"`
}

// Snapshot returns an immutable representation of the timer state,
// refreshing expiry first. The returned snapshot can be serialized directly
// or passed to [Restore] to recreate the timer.
func (t *Tracked) Snapshot() *Snapshot {
	if t == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.expireLocked()
	return &Snapshot{
		StartTime: t.startTime,
		Duration:  t.duration,
		State:     t.sm.MustState().(State), //nolint:forcetypeassert
		StopTime:  t.stopTime,
	}
}

// Restore recreates a [Tracked] timer from a snapshot. A timer restored in
// [StateRunning] picks up the original deadline: if the armed duration
// elapsed while the snapshot was at rest, the next expiry query reports
// expired.
func Restore(snap *Snapshot) (*Tracked, error) {
	if snap == nil {
		return NewTracked(), nil
	}

	state := snap.State
	if state == "" {
		state = StateIdle
	}
	switch state {
	case StateIdle, StateRunning, StateStopped, StateExpired:
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown timer state %q", string(state)))
	}

	return &Tracked{
		sm:        newLifecycle(state),
		startTime: snap.StartTime,
		duration:  snap.Duration,
		stopTime:  snap.StopTime,
	}, nil
}
