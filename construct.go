// construct.go — the concrete kind-bearing error type and its constructors.
//
// Scope (tiny core):
//   - One concrete type (kindErr) carries every simple variant: kind, payload
//     fields, optional foreign cause, diagnostic context, group.
//   - Every constructor stamps exactly one frame at the user's call site.
//     Nothing here captures stacks; propagation frames are explicit.
//   - Groups are fixed at construction; only merge operations extend them.
//
// Payload model:
//   - Payloads are ordered Field lists, never reflected over. Rendering is
//     type-erased only at the formatting boundary (format.go), where values
//     may implement Renderable to describe themselves.
//
// Interop:
//   - Unidentified keeps the foreign cause reachable via Unwrap, and
//     re-wrapping an Unidentified collapses to the innermost original error
//     so diagnostic depth cannot grow across layered rewraps. The collapsed
//     wrapper's frames are absorbed (merged, oldest first), not discarded.
package diag

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// kindErr implements Error for every non-composite kind.
type kindErr struct {
	kind    Kind
	msg     string // discriminating message fixed at construction; may be ""
	ctx     Context
	group   Group
	payload fields
	cause   error
}

func (e *kindErr) Error() string {
	if e.msg == "" {
		return string(e.kind)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

func (e *kindErr) KindVal() Kind    { return e.kind }
func (e *kindErr) Context() Context { return e.ctx.clone() }
func (e *kindErr) Group() Group     { return e.group }
func (e *kindErr) Unwrap() error    { return e.cause }

// DisplayMessage resolves through the process-wide registry; the result for
// this kind is memoized there on first resolution.
func (e *kindErr) DisplayMessage() string {
	return Messages().MessageFor(e)
}

// Equal applies the coarse default rule: displayable messages only. Kinds
// whose payload is meaningful (internal_inconsistency, cancelled) compare
// message and payload field-wise instead.
func (e *kindErr) Equal(other Error) bool {
	if other == nil {
		return false
	}
	if e.kind == other.KindVal() {
		switch e.kind {
		case KindInternalInconsistency, KindCancelled:
			if o, ok := other.(*kindErr); ok {
				return e.msg == o.msg && payloadEqual(e.payload, o.payload)
			}
		}
	}
	return e.DisplayMessage() == other.DisplayMessage()
}

func (e *kindErr) Append(f Frame) {
	e.ctx.Append(f)
}

func (e *kindErr) Appending(f Frame) Error {
	n := e.clone()
	n.ctx.Append(f)
	return n
}

func (e *kindErr) Merging(other Error) Error {
	n := e.clone()
	n.ctx = Merging(n.ctx, other.Context())
	n.group = MergeGroups(n.group, other.Group())
	return n
}

func (e *kindErr) Set(key string, val any) Error {
	e.ctx.Set(key, val)
	return e
}

func (e *kindErr) clone() *kindErr {
	n := *e
	n.ctx = e.ctx.clone()
	// payload and group are treated as immutable after construction;
	// sharing them is safe.
	return &n
}

// payloadEqual compares ordered payload fields. Values are compared with
// reflect.DeepEqual; payloads are small and this is not a hot path.
func payloadEqual(a, b fields) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || !reflect.DeepEqual(a[i].Val, b[i].Val) {
			return false
		}
	}
	return true
}

// newKindErr builds a kindErr with one creation-site frame. skip counts
// frames above the direct constructor (0 when the constructor is called by
// user code directly).
func newKindErr(kind Kind, msg string, payload fields, groups []Group, skip int) *kindErr {
	frameMsg := msg
	if frameMsg == "" {
		frameMsg = string(kind)
	}
	return &kindErr{
		kind:    kind,
		msg:     msg,
		ctx:     NewContext(frameMsg, Here(skip+2)),
		group:   MergeGroups(groups...),
		payload: payload,
	}
}

// -----------------------------------------------------------------------------
// Constructors — absence
// -----------------------------------------------------------------------------

// KeyNotFound reports a missing key in a keyed collection or store.
func KeyNotFound(key string, groups ...Group) Error {
	return newKindErr(KindKeyNotFound, "key not found",
		fields{{Key: "key", Val: key}}, groups, 0)
}

// ValueNotFound reports that no value of the named type was available.
func ValueNotFound(typeName string, groups ...Group) Error {
	return newKindErr(KindValueNotFound, "value not found",
		fields{{Key: "type", Val: typeName}}, groups, 0)
}

// -----------------------------------------------------------------------------
// Constructors — shape mismatch
// -----------------------------------------------------------------------------

// InvalidValue reports a value that violated a domain constraint. The
// offending value is carried as payload and rendered only at the formatting
// boundary (implement Renderable to control the rendering).
func InvalidValue(value any, msg string, groups ...Group) Error {
	return newKindErr(KindInvalidValue, msg,
		fields{{Key: "value", Val: value}}, groups, 0)
}

// TypeMismatch reports a value of the wrong type; expected names the type
// descriptor that was required.
func TypeMismatch(expected string, groups ...Group) Error {
	return newKindErr(KindTypeMismatch, "type mismatch",
		fields{{Key: "expected", Val: expected}}, groups, 0)
}

// DataCorrupted reports data that failed an integrity or well-formedness
// check.
func DataCorrupted(msg string, groups ...Group) Error {
	return newKindErr(KindDataCorrupted, msg, nil, groups, 0)
}

// -----------------------------------------------------------------------------
// Constructors — encoding
// -----------------------------------------------------------------------------

// StringEncodingFailure reports a failure to encode text in the named
// encoding.
func StringEncodingFailure(encoding string, groups ...Group) Error {
	return newKindErr(KindStringEncodingFailure, "string encoding failed",
		fields{{Key: "encoding", Val: encoding}}, groups, 0)
}

// StringDecodingFailure reports a failure to decode text in the named
// encoding.
func StringDecodingFailure(encoding string, groups ...Group) Error {
	return newKindErr(KindStringDecodingFailure, "string decoding failed",
		fields{{Key: "encoding", Val: encoding}}, groups, 0)
}

// -----------------------------------------------------------------------------
// Constructors — programmer-logic violations
// -----------------------------------------------------------------------------

// Unreachable marks code that must never execute. Intended terminal action:
// AsFatal or AsAssertionFailure.
func Unreachable(msg string, groups ...Group) Error {
	return newKindErr(KindUnreachable, msg, nil, groups, 0)
}

// Unimplemented marks a declared-but-unbuilt operation.
func Unimplemented(what string, groups ...Group) Error {
	return newKindErr(KindUnimplemented, "unimplemented",
		fields{{Key: "what", Val: what}}, groups, 0)
}

// InternalInconsistency reports a violated internal invariant. Equality for
// this kind is field-level (message + payload), not display-message based.
func InternalInconsistency(msg string, groups ...Group) Error {
	return newKindErr(KindInternalInconsistency, msg, nil, groups, 0)
}

// -----------------------------------------------------------------------------
// Constructors — control flow & catch-all
// -----------------------------------------------------------------------------

// Cancelled signals cooperative cancellation. Callers must treat it as a
// non-failure control-flow signal; IsCancelled also matches the stdlib
// context sentinels.
func Cancelled(reason string, groups ...Group) Error {
	return newKindErr(KindCancelled, "cancelled",
		fields{{Key: "reason", Val: reason}}, groups, 0)
}

// Undefined is the zero-information kind: something failed and nothing more
// specific applies.
func Undefined(groups ...Group) Error {
	return newKindErr(KindUndefined, "", nil, groups, 0)
}

// Unexpected reports a condition the code did not anticipate but can name.
func Unexpected(msg string, groups ...Group) Error {
	return newKindErr(KindUnexpected, msg, nil, groups, 0)
}

// Unidentified adopts a foreign error of unknown shape, keeping it reachable
// via Unwrap. Wrapping an error that is already Unidentified collapses to
// the innermost original cause: the old wrapper's frames and group are
// absorbed into the new value instead of nesting, so repeated re-wrapping at
// each layer of a call stack cannot grow the chain unboundedly.
func Unidentified(err error, groups ...Group) Error {
	if err == nil {
		err = errors.New("unidentified failure")
	}
	cause := err
	var absorbed Context
	var absorbedGroup Group
	if inner, ok := err.(*kindErr); ok && inner.kind == KindUnidentified {
		cause = inner.cause
		absorbed = inner.ctx
		absorbedGroup = inner.group
	}
	e := newKindErr(KindUnidentified, cause.Error(), nil, nil, 0)
	e.cause = cause
	if !absorbed.Empty() {
		e.ctx = Merging(absorbed, e.ctx)
	}
	e.group = MergeGroups(append([]Group{absorbedGroup}, groups...)...)
	return e
}

// -----------------------------------------------------------------------------
// Adoption & payload access
// -----------------------------------------------------------------------------

// From converts any error into a diag Error without adding policy.
//   - nil → nil
//   - diag Error → returned as-is
//   - context.Canceled / context.DeadlineExceeded → Cancelled (sentinel
//     preserved via Unwrap)
//   - other error → Unidentified (original cause preserved via Unwrap)
func From(err error) Error {
	if err == nil {
		return nil
	}
	if de, ok := err.(Error); ok {
		return de
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		e := newKindErr(KindCancelled, "cancelled",
			fields{{Key: "reason", Val: err.Error()}}, nil, 0)
		// Keep the sentinel reachable so errors.Is still matches it.
		e.cause = err
		return e
	}
	e := newKindErr(KindUnidentified, err.Error(), nil, nil, 0)
	e.cause = err
	return e
}

// PayloadOf returns a copy of the ordered payload fields of a diag error
// (the offending value for invalid_value, the key for key_not_found, and so
// on). It returns nil for errors without payload or non-diag errors.
func PayloadOf(err error) []Field {
	var ke *kindErr
	if !errors.As(err, &ke) || len(ke.payload) == 0 {
		return nil
	}
	out := make([]Field, len(ke.payload))
	copy(out, ke.payload)
	return out
}

// Interface conformance guard.
var _ Error = (*kindErr)(nil)
