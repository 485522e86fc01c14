package timeguard

import (
	"log/slog"

	"github.com/ghettovoice/timeguard/log"
)

// GuardOptions tunes [BlockTimeout] and [RepeatTimeout].
type GuardOptions struct {
	// Logger is the logger used to trace guarded calls.
	// If nil, the [log.Default] is used.
	Logger *slog.Logger
}

func (o *GuardOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// RepeatCallbacks receives the per-attempt outcomes of [RepeatTimeout].
// Nil callbacks are skipped.
type RepeatCallbacks[T any] struct {
	// OnResult is invoked with the value of every successful attempt.
	OnResult func(T)
	// OnError is invoked with the error of every failed attempt.
	OnError func(error)
}

func (c RepeatCallbacks[T]) result(v T) {
	if c.OnResult != nil {
		c.OnResult(v)
	}
}

func (c RepeatCallbacks[T]) err(e error) {
	if c.OnError != nil {
		c.OnError(e)
	}
}
