package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryLockContention(t *testing.T) {
	l := NewMutexLock()

	require.True(t, l.TryLock(), "uncontended TryLock must succeed")
	assert.False(t, l.TryLock(), "second TryLock must fail while held")

	l.Unlock()
	assert.True(t, l.TryLock(), "TryLock succeeds again after release")
	l.Unlock()
}

func TestUnlockWhenNotHeldIsNoop(t *testing.T) {
	l := NewMutexLock()

	// Must not panic (raw sync.Mutex would).
	l.Unlock()
	l.Unlock()

	require.True(t, l.TryLock(), "lock still usable after spurious unlocks")
	l.Unlock()
}

func TestWithLockReleasesOnReturn(t *testing.T) {
	l := NewMutexLock()
	ran := false

	WithLock(l, func() {
		ran = true
		assert.False(t, l.TryLock(), "lock is held inside the body")
	})

	require.True(t, ran)
	assert.True(t, l.TryLock(), "lock released after body returns")
	l.Unlock()
}

func TestWithLockReleasesOnPanic(t *testing.T) {
	l := NewMutexLock()

	require.Panics(t, func() {
		WithLock(l, func() { panic("boom") })
	})

	assert.True(t, l.TryLock(), "lock must be released on abnormal exit")
	l.Unlock()
}
