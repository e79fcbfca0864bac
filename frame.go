// frame.go — diagnostic frames and the debug-value gate for diag.
//
// Design:
//   - Internal representation of debug values: append-only []Field
//     (deterministic order; Go map iteration order is unspecified).
//   - Frame identity (Equal) covers message + location ONLY. Debug values are
//     runtime data and must not destabilize frame comparisons.
//   - ALL debug-value writes funnel through one gate (Frame.setDebug) that
//     checks diagnostic mode. In release mode the gate is a no-op, so dynamic
//     runtime values can never leak into release diagnostics. This is a
//     privacy/security boundary, not an optimization.
package diag

import "sync/atomic"

// diagnosticMode gates debug-value capture and assertion behavior for the
// whole process. Off by default (release semantics).
var diagnosticMode atomic.Bool

// SetDiagnosticMode switches the process between release (false) and
// diagnostic (true) behavior. Intended to be set once at startup.
func SetDiagnosticMode(on bool) { diagnosticMode.Store(on) }

// DiagnosticMode reports whether diagnostic behavior is enabled.
func DiagnosticMode() bool { return diagnosticMode.Load() }

// Field is a single ordered key-value pair of frame debug data.
// Keys SHOULD be snake_case for consistency; the core does not enforce it.
type Field struct {
	Key string
	Val any
}

// fields is the internal append-only representation of debug values.
// Never modify elements in place once published; clone first.
type fields []Field

// fieldsCloneAppend returns a NEW slice with dst's contents followed by add.
// It always allocates a fresh backing array to avoid aliasing via append.
func fieldsCloneAppend(dst fields, add ...Field) fields {
	out := make(fields, len(dst)+len(add))
	copy(out, dst)
	copy(out[len(dst):], add)
	return out
}

// Frame is one recorded entry of a diagnostic stack: a short static message
// plus the Location it was stamped at, and (diagnostic mode only) ordered
// debug values.
type Frame struct {
	Message  string
	Location Location

	debug fields
}

// NewFrame builds a frame from an explicit message and location.
func NewFrame(msg string, loc Location) Frame {
	return Frame{Message: msg, Location: loc}
}

// FrameHere builds a frame stamped at the caller's location.
func FrameHere(msg string) Frame {
	return Frame{Message: msg, Location: Here(1)}
}

// Equal reports frame identity: message and location only. Debug values are
// deliberately ignored so identity is stable across builds and runs.
func (f Frame) Equal(other Frame) bool {
	return f.Message == other.Message && f.Location == other.Location
}

// DebugValues returns a copy-on-read map of the frame's debug values with
// last-write-wins per key. It returns nil when there are none — always nil
// in release mode.
func (f Frame) DebugValues() map[string]any {
	if len(f.debug) == 0 {
		return nil
	}
	m := make(map[string]any, len(f.debug))
	for _, fd := range f.debug {
		m[fd.Key] = fd.Val
	}
	return m
}

// debugFields returns the raw ordered debug values for rendering.
func (f Frame) debugFields() fields { return f.debug }

// setDebug records a debug value on the frame. This is the single gated
// write path for debug data: in release mode it does nothing. An existing
// key is overwritten (last-write-wins per key per frame); the backing slice
// is cloned before any write so sibling frame copies are unaffected.
func (f *Frame) setDebug(key string, val any) {
	if !diagnosticMode.Load() {
		return
	}
	for i := range f.debug {
		if f.debug[i].Key == key {
			cloned := fieldsCloneAppend(f.debug)
			cloned[i].Val = val
			f.debug = cloned
			return
		}
	}
	f.debug = fieldsCloneAppend(f.debug, Field{Key: key, Val: val})
}
