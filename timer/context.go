package timer

import (
	"context"
	"time"
)

// Context adapts a [context.Context] to the countdown timer capability.
//
// Start derives a deadline context from the parent, so the countdown expires
// either when the armed duration elapses or when the parent is canceled,
// whichever comes first. Unarmed, the timer mirrors the parent: it is expired
// only if the parent is already done.
type Context struct {
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
}

// FromContext creates a timer driven by the parent context.
// A nil parent defaults to [context.Background].
func FromContext(parent context.Context) *Context {
	if parent == nil {
		parent = context.Background()
	}
	return &Context{parent: parent}
}

// Start arms the timer to expire after d, releasing any previous countdown.
func (t *Context) Start(d time.Duration) {
	if t.cancel != nil {
		t.cancel()
	}
	t.ctx, t.cancel = context.WithTimeout(t.parent, d)
}

// Expired reports whether the armed duration has elapsed or the parent
// context is done. The check never blocks.
func (t *Context) Expired() bool {
	ctx := t.ctx
	if ctx == nil {
		ctx = t.parent
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// Stop releases the resources held by the current countdown.
// The timer can be re-armed with Start afterwards.
func (t *Context) Stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Err returns the cause of expiry: [context.DeadlineExceeded] once the armed
// duration elapsed, the parent's error if it was canceled first, nil while
// the countdown is live.
func (t *Context) Err() error {
	ctx := t.ctx
	if ctx == nil {
		ctx = t.parent
	}
	return ctx.Err()
}
