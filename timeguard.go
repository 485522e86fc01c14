// Package timeguard races non-blocking poll operations against countdown timers.
//
// Hardware-facing drivers commonly expose non-blocking APIs: a call makes one
// poll attempt and reports "not ready yet" instead of waiting. Driving such an
// API to completion requires a poll loop, and bounding that loop requires a
// countdown timer. This package implements the race between the two:
// [BlockTimeout] polls an operation until it completes or a timer expires,
// [RepeatTimeout] keeps re-running an operation for as long as a timer is live.
//
// The consumed timer capability is deliberately small — [Timer] is anything
// that can be armed with a duration and polled for expiry. Countdowns over the
// wall clock, explicit ticks, contexts and a lifecycle-tracked serializable
// variant live in the timer subpackage.
//
// The guards do not sleep between polls. They target schedulerless,
// interrupt-free environments where blocking means polling until one of two
// conditions becomes true, so the loop is as tight as the polled operation
// allows.
package timeguard

//go:generate mockgen -destination internal/testutil/timermock/timermock.go -package timermock . Timer

import (
	"errors"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/timeguard/internal/syncutil"
	"github.com/ghettovoice/timeguard/log"
)

// Timer is the countdown capability consumed by the guards.
//
// Implementations define the duration unit: wall time for clock-backed timers,
// a tick budget for tick-counted ones. Expiry must be monotonic — once Expired
// reports true it keeps reporting true until the next Start.
type Timer interface {
	// Start arms the timer with the given duration, restarting any previous
	// countdown.
	Start(d time.Duration)
	// Expired reports whether the armed duration has elapsed.
	Expired() bool
}

// PollFunc performs one non-blocking poll attempt of an operation.
// It returns the operation value on completion, an error matching
// [ErrWouldBlock] while the operation is pending, and any other error on
// failure.
type PollFunc[T any] func() (T, error)

// timers tracks which timer capabilities are currently driving a guarded call.
var timers syncutil.Claims

// BlockTimeout polls op until it completes or tmr expires.
//
// The timer is armed with d exactly once, before the first poll, and is left
// running or expired on return — callers reusing the timer restart it
// themselves. Each loop iteration polls the operation first and consults the
// timer only on a pending result, so even a zero duration performs at least
// one poll attempt.
//
// Exactly one terminal outcome is produced: the operation value, the
// operation's own error surfaced as-is, or [ErrTimeout] when the countdown
// elapses with the operation still pending. An operation error is never
// reinterpreted as a timeout.
//
// The timer must not be driving another guarded call: concurrent use of one
// timer instance fails fast with [ErrTimerBusy]. The exclusivity registry is
// keyed by the timer value, so the timer's dynamic type must be comparable —
// pointer implementations, like every timer in the timer subpackage, are.
func BlockTimeout[T any](d time.Duration, tmr Timer, op PollFunc[T], opts *GuardOptions) (T, error) {
	var zero T
	if tmr == nil || op == nil {
		return zero, errtrace.Wrap(NewInvalidArgumentError("nil timer or operation"))
	}

	release, ok := timers.TryClaim(tmr)
	if !ok {
		return zero, errtrace.Wrap(ErrTimerBusy)
	}
	defer release()

	lg := opts.log().With("timer", log.FmtValue(tmr, false))
	lg.Debug("countdown started", "duration", d)

	tmr.Start(d)

	for polls := 1; ; polls++ {
		v, err := op()
		switch {
		case err == nil:
			lg.Debug("operation ready", "polls", polls)
			return v, nil
		case errors.Is(err, ErrWouldBlock):
			if tmr.Expired() {
				lg.Debug("countdown expired", "polls", polls)
				return zero, errtrace.Wrap(ErrTimeout)
			}
		default:
			lg.Debug("operation failed", "error", err, "polls", polls)
			return zero, errtrace.Wrap(err)
		}
	}
}

// RepeatTimeout re-runs op until tmr expires, reporting every attempt outcome
// through cbs. Successes and failures both keep the loop going — only timer
// expiry ends it.
//
// The timer is armed with d once, before the first attempt, and expiry is
// checked before each attempt: a zero duration runs the operation zero times.
// Attempts that report [ErrWouldBlock] produce no callback, they count as a
// single pending poll.
//
// The returned error is nil on deadline-ended completion; it is non-nil only
// for invalid arguments or a busy timer. Like [BlockTimeout], the timer must
// not be driving another guarded call and its dynamic type must be
// comparable.
func RepeatTimeout[T any](d time.Duration, tmr Timer, op PollFunc[T], cbs RepeatCallbacks[T], opts *GuardOptions) error {
	if tmr == nil || op == nil {
		return errtrace.Wrap(NewInvalidArgumentError("nil timer or operation"))
	}

	release, ok := timers.TryClaim(tmr)
	if !ok {
		return errtrace.Wrap(ErrTimerBusy)
	}
	defer release()

	lg := opts.log().With("timer", log.FmtValue(tmr, false))
	lg.Debug("countdown started", "duration", d)

	tmr.Start(d)

	for attempts := 0; ; {
		if tmr.Expired() {
			lg.Debug("countdown expired", "attempts", attempts)
			return nil
		}

		v, err := op()
		attempts++
		switch {
		case err == nil:
			cbs.result(v)
		case errors.Is(err, ErrWouldBlock):
		default:
			cbs.err(err)
		}
	}
}
