// Package timer provides countdown implementations of the timeguard.Timer
// capability.
//
// [Monotonic] counts down wall time on the runtime monotonic clock, [Tick] is
// a deterministic countdown driven by explicit tick calls, [Context] adapts a
// context deadline or cancellation to the timer shape, and [Tracked] adds an
// explicit lifecycle state machine with serializable snapshots for countdowns
// that outlive the process.
package timer
