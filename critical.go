// critical.go — the generic mutual-exclusion container guarding shared state.
//
// Invariant: the owned state is reachable ONLY while the lock is held. Every
// operation acquires, runs its closure to completion, and releases via defer,
// so the lock is released even if the closure panics.
//
// Usage contract (not enforced by the type system): keep guarded closures
// short — no blocking I/O, no unbounded loops — or other goroutines starve.
// Operations block until ownership is obtained; no fairness order among
// waiters is promised.
//
// Go methods cannot introduce type parameters, so the result-carrying and
// equality-requiring forms (AccessValue, AccessUpdate, CompareExchange) are
// package-level functions over the same container.
package diag

// CriticalSection owns a value of type S and the Lock that guards it.
// Create with NewCriticalSection; the zero value is not usable.
type CriticalSection[S any] struct {
	lk    Lock
	state S
}

// NewCriticalSection allocates the guarding primitive and stores the initial
// state.
func NewCriticalSection[S any](initial S) *CriticalSection[S] {
	return &CriticalSection[S]{lk: NewMutexLock(), state: initial}
}

// Access runs fn with read intent over the current state under the lock.
// fn must not retain references into the state beyond the call.
func (c *CriticalSection[S]) Access(fn func(S)) {
	c.lk.Lock()
	defer c.lk.Unlock()
	fn(c.state)
}

// AccessMut runs fn over the state with permission to mutate it. This is the
// only sanctioned way to modify the guarded value.
func (c *CriticalSection[S]) AccessMut(fn func(*S)) {
	c.lk.Lock()
	defer c.lk.Unlock()
	fn(&c.state)
}

// Exchange atomically replaces the state with next and returns the previous
// value, under a single acquisition.
func (c *CriticalSection[S]) Exchange(next S) S {
	c.lk.Lock()
	defer c.lk.Unlock()
	old := c.state
	c.state = next
	return old
}

// AccessValue runs fn with read intent and returns its result.
func AccessValue[S, R any](c *CriticalSection[S], fn func(S) R) R {
	c.lk.Lock()
	defer c.lk.Unlock()
	return fn(c.state)
}

// AccessUpdate runs fn with mutate permission and returns its result.
func AccessUpdate[S, R any](c *CriticalSection[S], fn func(*S) R) R {
	c.lk.Lock()
	defer c.lk.Unlock()
	return fn(&c.state)
}

// CompareExchange replaces the state with next iff the current value equals
// expected, under a single acquisition. It reports whether the swap
// occurred.
func CompareExchange[S comparable](c *CriticalSection[S], next, expected S) bool {
	c.lk.Lock()
	defer c.lk.Unlock()
	if c.state != expected {
		return false
	}
	c.state = next
	return true
}
