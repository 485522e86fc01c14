// Package syncutil provides small synchronization helpers.
package syncutil

import "sync"

// Claims tracks exclusive ownership of shared capabilities by key.
// Keys must be comparable; interface-typed keys are compared by their
// dynamic value. The zero value is ready to use.
//
// Releasing a claim removes the key's entry, so the registry stays
// proportional to the number of live claims, not the number of keys
// ever claimed.
type Claims struct {
	muxs sync.Map
}

type claimEntry struct {
	mu      sync.Mutex
	claimed bool
	// retired marks an entry removed from the registry on release.
	// A reader holding a retired entry must reload the key.
	retired bool
}

// TryClaim claims the key if it is not already claimed.
// Returns a function that releases the claim and true on success.
func (c *Claims) TryClaim(key any) (release func(), ok bool) {
	for {
		v, _ := c.muxs.LoadOrStore(key, &claimEntry{})
		e := v.(*claimEntry) //nolint:forcetypeassert

		e.mu.Lock()
		if e.retired {
			e.mu.Unlock()
			c.muxs.CompareAndDelete(key, e)
			continue
		}
		if e.claimed {
			e.mu.Unlock()
			return nil, false
		}
		e.claimed = true
		e.mu.Unlock()

		return func() {
			e.mu.Lock()
			e.claimed = false
			e.retired = true
			e.mu.Unlock()
			c.muxs.CompareAndDelete(key, e)
		}, true
	}
}
