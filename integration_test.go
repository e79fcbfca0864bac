package diag

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Exercises the full flow: a failure is created deep in a "storage" layer,
// gains frames as it crosses layers, is aggregated with a sibling failure,
// resolved against a registry, and finally logged.
func TestEndToEndPropagation(t *testing.T) {
	withDiagnosticMode(t, true)

	core, logs := observer.New(zapcore.ErrorLevel)
	withReporter(t, NewZapReporter(zap.New(core)))

	registry := NewMessageRegistry()
	require.NoError(t, registry.SetGroupMessage("A storage problem occurred.", "storage"))
	require.NoError(t, registry.SetDefaultMessage("Something went wrong."))

	// Layer 1: storage lookup fails.
	lookup := func() Error {
		return KeyNotFound("user:42", NewGroup("storage")).Set("shard", 3)
	}

	// Layer 2: service annotates and converts a foreign error from a
	// parallel path.
	svcErr := lookup().Appending(FrameHere("loading profile"))
	foreign := Unidentified(errors.New("tls handshake failed"), NewGroup("net"))

	// Layer 3: the request handler aggregates.
	issues := CollectIssues(svcErr, foreign)
	issues.Add(Cancelled("client went away"))

	got := issues.Errors()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"storage", "net"}, issues.Group().Tags())

	// Message resolution: storage is the first registered tag.
	assert.Equal(t, "A storage problem occurred.", registry.MessageFor(svcErr))
	assert.Equal(t, "Something went wrong.", registry.MessageFor(foreign))
	// Idempotent after memoization.
	assert.Equal(t, "A storage problem occurred.", registry.MessageFor(svcErr))

	// Late registration for an already-read kind is a discipline error.
	err := registry.SetMessage("too late", KindKeyNotFound)
	require.Error(t, err)
	assert.Equal(t, KindInternalInconsistency, KindOf(err))

	// Terminal action: log once, value unchanged.
	logged := issues.Logged()
	assert.Same(t, issues, logged)
	require.Len(t, logs.All(), 1)

	details := fmt.Sprintf("%+v", issues)
	assert.Contains(t, details, "loading profile")
	assert.Contains(t, details, "shard=3")
	assert.Contains(t, details, "cause: tls handshake failed")
}

// Cancellation flows through aggregation and stdlib traversal untouched.
func TestEndToEndCancellationSignal(t *testing.T) {
	c := Cancelled("shutdown")
	m := CollectIssues(KeyNotFound("k"), c)

	assert.True(t, IsCancelled(m))
	assert.False(t, IsFatalKind(m))

	// The original cancelled error is still reachable for handling.
	var found bool
	Walk(m, func(e error) bool {
		if KindOf(e) == KindCancelled {
			found = true
			return false
		}
		return true
	})
	assert.True(t, found)
}
