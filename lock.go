// lock.go — the minimal mutual-exclusion capability diag builds on.
//
// Scope:
//   - Lock is the {acquire, try-acquire, release} capability set plus the
//     scoped WithLock helper. CriticalSection composes a Lock; nothing else
//     in the core touches raw primitives.
//   - Backed by sync.Mutex, the host OS primitive in Go. No timeout on
//     Lock(); no fairness ordering among waiters is promised.
//
// Constraints (documented, not enforced):
//   - Locks are NOT reentrant. A goroutine re-acquiring its own held lock
//     deadlocks.
//   - Unlock on a lock that is not held is a no-op (unlike raw sync.Mutex,
//     which would panic); the held marker below absorbs the call.
package diag

import (
	"sync"
	"sync/atomic"
)

// Lock is the minimal mutual-exclusion capability.
type Lock interface {
	// Lock blocks the calling goroutine until exclusive ownership is
	// obtained. There is no timeout.
	Lock()

	// TryLock attempts non-blocking acquisition and reports success.
	TryLock() bool

	// Unlock relinquishes ownership. Calling it when the lock is not held
	// is a no-op.
	Unlock()
}

// mutexLock adapts sync.Mutex to the Lock capability. The held marker makes
// Unlock-when-unheld a defined no-op; the CAS guarantees exactly one caller
// performs the underlying Unlock.
type mutexLock struct {
	mu   sync.Mutex
	held atomic.Bool
}

// NewMutexLock returns a Lock backed by the standard mutex primitive.
func NewMutexLock() Lock {
	return &mutexLock{}
}

func (l *mutexLock) Lock() {
	l.mu.Lock()
	l.held.Store(true)
}

func (l *mutexLock) TryLock() bool {
	if !l.mu.TryLock() {
		return false
	}
	l.held.Store(true)
	return true
}

func (l *mutexLock) Unlock() {
	if !l.held.CompareAndSwap(true, false) {
		return
	}
	l.mu.Unlock()
}

// WithLock runs body while holding l, releasing on every exit path including
// panic. This is the scoped-acquisition form; prefer it over manual
// Lock/Unlock pairs.
func WithLock(l Lock, body func()) {
	l.Lock()
	defer l.Unlock()
	body()
}
