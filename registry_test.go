package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageForPrefersKindEntry(t *testing.T) {
	r := NewMessageRegistry()
	require.NoError(t, r.SetMessage("The key was not found.", KindKeyNotFound))
	require.NoError(t, r.SetGroupMessage("A storage problem occurred.", "storage"))

	e := KeyNotFound("user:42", NewGroup("storage"))
	assert.Equal(t, "The key was not found.", r.MessageFor(e))
}

func TestMessageForGroupTagsInDeclaredOrder(t *testing.T) {
	r := NewMessageRegistry()
	require.NoError(t, r.SetGroupMessage("An I/O problem occurred.", "io"))
	require.NoError(t, r.SetGroupMessage("A storage problem occurred.", "storage"))

	// "net" has no entry; "io" is the first declared tag that does.
	e := DataCorrupted("bad page", NewGroup("net", "io", "storage"))
	assert.Equal(t, "An I/O problem occurred.", r.MessageFor(e))
}

func TestMessageForDefaultFallback(t *testing.T) {
	r := NewMessageRegistry()
	require.NoError(t, r.SetDefaultMessage("Something went wrong."))

	e := Unexpected("odd state", NewGroup("unregistered"))
	assert.Equal(t, "Something went wrong.", r.MessageFor(e))
}

func TestMessageForSynthesizesKindName(t *testing.T) {
	r := NewMessageRegistry()
	assert.Equal(t, string(KindTypeMismatch), r.MessageFor(TypeMismatch("string")))
}

func TestMessageForIsMemoized(t *testing.T) {
	r := NewMessageRegistry()
	require.NoError(t, r.SetGroupMessage("A storage problem occurred.", "storage"))

	e := KeyNotFound("k", NewGroup("storage"))
	first := r.MessageFor(e)
	second := r.MessageFor(e)
	assert.Equal(t, first, second)

	// The memoized entry is keyed by KIND identity: a later lookup for the
	// same kind without the tag still resolves to the cached message.
	assert.Equal(t, first, r.MessageFor(KeyNotFound("other")))
}

func TestSetMessageIsSetOnce(t *testing.T) {
	r := NewMessageRegistry()
	require.NoError(t, r.SetMessage("first", KindInvalidValue))

	err := r.SetMessage("second", KindInvalidValue)
	require.Error(t, err)
	assert.Equal(t, KindInternalInconsistency, KindOf(err))

	// The existing entry is untouched.
	assert.Equal(t, "first", r.MessageFor(InvalidValue(1, "x")))
}

func TestSetMessageAfterReadFails(t *testing.T) {
	r := NewMessageRegistry()

	// Reading memoizes the synthesized message under the kind identity...
	got := r.MessageFor(DataCorrupted("x"))
	assert.Equal(t, string(KindDataCorrupted), got)

	// ...so a later set for that kind is a discipline error.
	err := r.SetMessage("too late", KindDataCorrupted)
	require.Error(t, err)
	assert.Equal(t, got, r.MessageFor(DataCorrupted("y")))
}

func TestSetGroupMessageSetOnceAndValidation(t *testing.T) {
	r := NewMessageRegistry()
	require.NoError(t, r.SetGroupMessage("msg", "storage"))
	require.Error(t, r.SetGroupMessage("again", "storage"))

	err := r.SetGroupMessage("msg", "")
	require.Error(t, err)
	assert.Equal(t, KindInvalidValue, KindOf(err))
}

func TestSetDefaultMessageSetOnce(t *testing.T) {
	r := NewMessageRegistry()
	require.NoError(t, r.SetDefaultMessage("fallback"))
	require.Error(t, r.SetDefaultMessage("other"))
}

func TestProcessWideSingletonIsStable(t *testing.T) {
	assert.Same(t, Messages(), Messages())
}
