package timeguard

import "github.com/ghettovoice/timeguard/internal/errorutil"

// Error represents a timeguard error.
// See [errorutil.Error].
type Error = errorutil.Error

// Guard errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrWouldBlock is the pending marker returned by a [PollFunc] whose
	// operation has not completed yet. Wrapped values are recognized too,
	// the guards match it with [errors.Is].
	ErrWouldBlock Error = "operation would block"
	// ErrTimerBusy is returned when the timer capability is already driving
	// another guarded call.
	ErrTimerBusy Error = "timer already in use"
)

// ErrTimeout is returned by [BlockTimeout] when the countdown elapses with the
// operation still pending. It reports Timeout() == true, so net-style timeout
// checks recognize it.
const ErrTimeout timeoutError = "operation timed out"

type timeoutError string

func (e timeoutError) Error() string { return string(e) }

func (timeoutError) Timeout() bool { return true }

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
