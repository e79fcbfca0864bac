package diag

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectIssuesKeepsOrder(t *testing.T) {
	e1 := KeyNotFound("a")
	e2 := TypeMismatch("string")

	m := CollectIssues(e1, e2)

	require.Equal(t, KindMultipleIssues, m.KindVal())
	got := m.Errors()
	require.Len(t, got, 2)
	assert.Same(t, e1, got[0])
	assert.Same(t, e2, got[1])
}

func TestCollectIssuesSkipsNil(t *testing.T) {
	m := CollectIssues(nil, KeyNotFound("a"), nil)
	assert.Len(t, m.Errors(), 1)
}

func TestAddAppendsAndFoldsGroup(t *testing.T) {
	e1 := KeyNotFound("a", NewGroup("storage"))
	e2 := DataCorrupted("bad page", NewGroup("db"))
	e3 := InvalidValue(0, "zero", NewGroup("storage", "validation"))

	m := CollectIssues(e1, e2)
	require.Equal(t, []string{"storage", "db"}, m.Group().Tags())

	m.Add(e3)

	got := m.Errors()
	require.Len(t, got, 3)
	assert.Same(t, e3, got[2])
	// group == merge(e1.group, e2.group, e3.group), stable dedup.
	assert.Equal(t, []string{"storage", "db", "validation"}, m.Group().Tags())
}

func TestAddDoesNotMutateOrMergeContexts(t *testing.T) {
	e1 := KeyNotFound("a")
	m := CollectIssues(e1)
	before := m.Context().Len()

	e2 := TypeMismatch("string")
	m.Add(e2)

	assert.Equal(t, before, m.Context().Len(), "Add never merges contexts")
	assert.Equal(t, 1, e2.Context().Len(), "added error is never mutated")
	m.Add(nil) // no-op
	assert.Len(t, m.Errors(), 2)
}

func TestCompositeUnwrapTraversal(t *testing.T) {
	cause := errors.New("root cause")
	e1 := Unidentified(cause)
	e2 := KeyNotFound("a")
	m := CollectIssues(e1, e2)

	assert.True(t, errors.Is(m, cause), "errors.Is walks Unwrap() []error")

	leaves := Flatten(m)
	require.Len(t, leaves, 2)
	assert.Same(t, cause, leaves[0])
}

func TestCompositeErrorStringJoinsChildren(t *testing.T) {
	m := CollectIssues(KeyNotFound("a"), TypeMismatch("string"))
	parts := strings.Split(m.Error(), "\n")
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0], "key_not_found")
	assert.Contains(t, parts[1], "type_mismatch")

	empty := CollectIssues()
	assert.Equal(t, string(KindMultipleIssues), empty.Error())

	single := CollectIssues(KeyNotFound("a"))
	assert.NotContains(t, single.Error(), "\n")
}

func TestCompositeAppendingIsPure(t *testing.T) {
	m := CollectIssues(KeyNotFound("a"))
	d := m.Appending(NewFrame("retry", At("b", 20)))

	assert.Equal(t, 1, m.Context().Len())
	assert.Equal(t, 2, d.Context().Len())
	// The copy still exposes the same sub-errors.
	dc, ok := d.(Composite)
	require.True(t, ok)
	assert.Len(t, dc.Errors(), 1)
}

func TestCompositeStampsCallSiteFrame(t *testing.T) {
	m := CollectIssues(KeyNotFound("a"))
	loc := m.Context().Frames()[0].Location
	assert.True(t, strings.HasSuffix(loc.File, "multiple_test.go"), "got %q", loc.File)
}
