// context.go — the ordered diagnostic stack attached to every diag error.
//
// Design:
//   - Internal representation: []Frame, oldest first. Frame order is the
//     causal order of Append calls; nothing reorders or deduplicates.
//   - Append mutates the receiver; Appending and Merging return NEW values.
//     "Mutating" operations still allocate a fresh backing array, so values
//     previously derived via Appending never observe later writes.
//   - All operations are total over well-formed inputs; there are no failure
//     modes here.
package diag

// Context is an ordered sequence of Frames — the diagnostic stack of an
// error. The zero value is empty; contexts built by constructors are
// non-empty (one creation-site frame).
type Context struct {
	frames []Frame
}

// NewContext returns a single-frame context.
func NewContext(msg string, loc Location) Context {
	return Context{frames: []Frame{NewFrame(msg, loc)}}
}

// framesCloneAppend returns a NEW frame slice with dst followed by add,
// always on a fresh backing array (no aliasing via append capacity reuse).
func framesCloneAppend(dst []Frame, add ...Frame) []Frame {
	out := make([]Frame, len(dst)+len(add))
	copy(out, dst)
	copy(out[len(dst):], add)
	return out
}

// Append adds a frame in place. All previously recorded frames are
// unchanged; copies of the context taken earlier are unaffected.
func (c *Context) Append(f Frame) {
	c.frames = framesCloneAppend(c.frames, f)
}

// Appending returns a copy of the context with one more frame; the receiver
// is untouched.
func (c Context) Appending(f Frame) Context {
	return Context{frames: framesCloneAppend(c.frames, f)}
}

// Merging concatenates the frame sequences of the given contexts in argument
// order. It flattens; it never deduplicates. Used when one error absorbs
// another's diagnostic history.
func Merging(ctxs ...Context) Context {
	total := 0
	for _, c := range ctxs {
		total += len(c.frames)
	}
	if total == 0 {
		return Context{}
	}
	out := make([]Frame, 0, total)
	for _, c := range ctxs {
		out = append(out, c.frames...)
	}
	return Context{frames: out}
}

// Set records a debug value on the LAST frame. It is a no-op on an empty
// context and in release mode (the gate lives in Frame.setDebug). An
// existing key is overwritten silently.
func (c *Context) Set(key string, val any) {
	if len(c.frames) == 0 {
		return
	}
	c.frames[len(c.frames)-1].setDebug(key, val)
}

// Frames returns a copy of the frame sequence, oldest first.
func (c Context) Frames() []Frame {
	if len(c.frames) == 0 {
		return nil
	}
	out := make([]Frame, len(c.frames))
	copy(out, c.frames)
	return out
}

// Len returns the number of frames.
func (c Context) Len() int { return len(c.frames) }

// Empty reports whether the context holds no frames.
func (c Context) Empty() bool { return len(c.frames) == 0 }

// clone returns a context backed by a fresh frame slice.
func (c Context) clone() Context {
	if len(c.frames) == 0 {
		return Context{}
	}
	return Context{frames: framesCloneAppend(c.frames)}
}
