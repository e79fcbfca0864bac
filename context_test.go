package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameMessages(c Context) []string {
	frames := c.Frames()
	out := make([]string, len(frames))
	for i, f := range frames {
		out[i] = f.Message
	}
	return out
}

func TestNewContextSingleFrame(t *testing.T) {
	c := NewContext("boom", At("a", 10))
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "boom", c.Frames()[0].Message)
	assert.Equal(t, At("a", 10), c.Frames()[0].Location)
}

func TestContextAppendPreservesOrder(t *testing.T) {
	c := NewContext("one", At("a", 1))
	c.Append(NewFrame("two", At("b", 2)))
	c.Append(NewFrame("three", At("c", 3)))

	assert.Equal(t, []string{"one", "two", "three"}, frameMessages(c))
}

func TestContextAppendingCopySemantics(t *testing.T) {
	c := NewContext("one", At("a", 1))
	d := c.Appending(NewFrame("two", At("b", 2)))

	assert.Equal(t, c.Len()+1, d.Len())
	assert.Equal(t, []string{"one"}, frameMessages(c), "original untouched")
	assert.Equal(t, []string{"one", "two"}, frameMessages(d))
}

func TestContextAppendDoesNotAliasEarlierCopies(t *testing.T) {
	c := NewContext("one", At("a", 1))
	d := c.Appending(NewFrame("two", At("b", 2)))

	// Mutating c afterwards must not leak into d (fresh backing arrays).
	c.Append(NewFrame("sneak", At("x", 9)))

	assert.Equal(t, []string{"one", "two"}, frameMessages(d))
}

func TestMergingConcatenatesInArgumentOrder(t *testing.T) {
	c1 := NewContext("a1", At("a", 1))
	c1.Append(NewFrame("a2", At("a", 2)))
	c2 := NewContext("b1", At("b", 1))
	c3 := NewContext("c1", At("c", 1))

	merged := Merging(c1, c2, c3)

	assert.Equal(t, []string{"a1", "a2", "b1", "c1"}, frameMessages(merged))
	// No dedup: merging the same context twice doubles its frames.
	doubled := Merging(c2, c2)
	assert.Equal(t, []string{"b1", "b1"}, frameMessages(doubled))
	// Inputs untouched.
	assert.Equal(t, []string{"a1", "a2"}, frameMessages(c1))
}

func TestMergingEmpty(t *testing.T) {
	assert.True(t, Merging().Empty())
	assert.True(t, Merging(Context{}, Context{}).Empty())
}

func TestContextSetTargetsLastFrame(t *testing.T) {
	withDiagnosticMode(t, true)

	c := NewContext("one", At("a", 1))
	c.Append(NewFrame("two", At("b", 2)))
	c.Set("attempt", 7)

	frames := c.Frames()
	assert.Nil(t, frames[0].DebugValues())
	assert.Equal(t, 7, frames[1].DebugValues()["attempt"])
}

func TestContextSetNoopOnEmptyAndRelease(t *testing.T) {
	withDiagnosticMode(t, true)
	var empty Context
	empty.Set("k", "v") // must not panic
	assert.True(t, empty.Empty())

	withDiagnosticMode(t, false)
	c := NewContext("one", At("a", 1))
	c.Set("k", "v")
	assert.Nil(t, c.Frames()[0].DebugValues())
}

func TestContextFramesCopyOnRead(t *testing.T) {
	c := NewContext("one", At("a", 1))
	frames := c.Frames()
	frames[0].Message = "mutated"

	assert.Equal(t, "one", c.Frames()[0].Message)
}

// The two-frame scenario: an error created at a:10 then appended at b:20
// renders its locations in causal order.
func TestTwoFrameScenarioRendering(t *testing.T) {
	c := NewContext("undefined", At("a", 10))
	d := c.Appending(NewFrame("retry", At("b", 20)))

	frames := d.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, "a:10", frames[0].Location.String())
	assert.Equal(t, "b:20", frames[1].Location.String())
}
