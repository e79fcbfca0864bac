// doc.go — package documentation for diag
//
// Package diag provides a small structured error-diagnostics core: a closed
// taxonomy of error kinds, an ordered frame-based diagnostic context, a
// tag-group classification model, a process-wide displayable-message
// registry, and the generic CriticalSection/Lock primitives that guard it.
// It is designed to be:
//   - Ergonomic at failure sites (one constructor per kind, call-site frames)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free (no HTTP/retry rules in core; rendering goes to a Reporter)
//
// # Contexts and Frames
//
// Every error carries a Context: an ordered stack of Frames, oldest first.
// A Frame records a short message and the source Location it was stamped at.
// Constructors always stamp one frame at the creation site; call sites add
// frames explicitly as the error propagates — there is no automatic stack
// capture.
//
//	err := diag.KeyNotFound("user:42")
//	...
//	return err.Appending(diag.FrameHere("loading profile"))
//
// Append mutates in place; Appending returns a modified copy and never
// touches the receiver. Merging concatenates whole contexts in argument
// order when one error absorbs another's diagnostic history.
//
// # Groups and Messages
//
// A Group is an ordered, duplicate-free set of string tags classifying an
// error kind. The displayable message for an error resolves through the
// process-wide registry (see Messages): kind identity first, then the
// group's tags in declared order, then the default entry, then the kind
// name itself. Registry keys are set-once: a second SetMessage for the same
// key fails rather than silently churning messages already observed.
//
// # Debug Values
//
// Frames may carry key→value debug fields, recorded only while diagnostic
// mode is on (SetDiagnosticMode). In release mode the write path is a no-op
// and debug values never appear in renderings; this is a privacy boundary,
// not an optimization.
//
// # Terminal Actions
//
//	Created → [Append]* → { Logged | AsFatal | AsAssertionFailure | discarded }
//
// Logged emits the verbose rendering through the package Reporter (zap by
// default) and returns the error unchanged so calls chain. AsFatal renders
// and terminates the process. AsAssertionFailure invokes a replaceable hook
// in diagnostic mode and is a pure no-op in release mode.
//
// # CriticalSection and Lock
//
// CriticalSection[S] owns a value and a Lock; the value is reachable only
// under mutual exclusion via Access/AccessMut/Exchange (plus the
// result-carrying package functions AccessValue/AccessUpdate and
// CompareExchange). Locks are not reentrant: a goroutine re-acquiring its
// own held lock deadlocks. Keep guarded closures short — no blocking I/O,
// no unbounded loops.
//
// # Formatting
//
//	%v, %s  → concise, single-line Error()
//	%+v     → verbose, multi-line (kind, message, group, payload, frames, cause)
//	%q      → quoted Error()
//
// errors.Is/As traverse causes and composite sub-errors via Unwrap.
package diag
