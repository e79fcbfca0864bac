// kinds.go — the built-in error-kind taxonomy for diag.
//
// Intent:
//   - Provide the closed set of kinds the core ships with.
//   - Keep semantics open-ended: no retry/HTTP policy attached to kinds.
//   - Kind strings double as registry keys and as the synthesized fallback
//     display message, so they stay lowercase snake_case ASCII.
package diag

// Absence
const (
	KindKeyNotFound   Kind = "key_not_found"
	KindValueNotFound Kind = "value_not_found"
)

// Shape mismatch
const (
	KindInvalidValue  Kind = "invalid_value"
	KindTypeMismatch  Kind = "type_mismatch"
	KindDataCorrupted Kind = "data_corrupted"
)

// Encoding
const (
	KindStringEncodingFailure Kind = "string_encoding_failure"
	KindStringDecodingFailure Kind = "string_decoding_failure"
)

// Programmer-logic violations — intended to be fatal/assertable, never
// silently swallowed.
const (
	KindUnreachable           Kind = "unreachable"
	KindUnimplemented         Kind = "unimplemented"
	KindInternalInconsistency Kind = "internal_inconsistency"
)

// Control flow & catch-all
const (
	KindCancelled    Kind = "cancelled"
	KindUndefined    Kind = "undefined"
	KindUnexpected   Kind = "unexpected"
	KindUnidentified Kind = "unidentified"
)

// Composite
const (
	KindMultipleIssues Kind = "multiple_issues"
)

// allBuiltinKinds is the ordered set of kinds the core ships with.
// Unexported to avoid exposing mutable slice identity; order is stable to
// minimize churn in docs and rendering.
var allBuiltinKinds = []Kind{
	KindUndefined,
	KindUnexpected,
	KindUnidentified,
	KindCancelled,
	KindUnreachable,
	KindUnimplemented,
	KindInternalInconsistency,
	KindInvalidValue,
	KindKeyNotFound,
	KindTypeMismatch,
	KindValueNotFound,
	KindDataCorrupted,
	KindStringEncodingFailure,
	KindStringDecodingFailure,
	KindMultipleIssues,
}

// builtinKindSet provides O(1) membership checks for built-ins.
var builtinKindSet = map[Kind]struct{}{
	KindUndefined:             {},
	KindUnexpected:            {},
	KindUnidentified:          {},
	KindCancelled:             {},
	KindUnreachable:           {},
	KindUnimplemented:         {},
	KindInternalInconsistency: {},
	KindInvalidValue:          {},
	KindKeyNotFound:           {},
	KindTypeMismatch:          {},
	KindValueNotFound:         {},
	KindDataCorrupted:         {},
	KindStringEncodingFailure: {},
	KindStringDecodingFailure: {},
	KindMultipleIssues:        {},
}

// fatalKindSet marks the programmer-logic violations whose intended terminal
// action is AsFatal/AsAssertionFailure.
var fatalKindSet = map[Kind]struct{}{
	KindUnreachable:           {},
	KindUnimplemented:         {},
	KindInternalInconsistency: {},
}

// BuiltinKinds returns a defensive copy of the built-in kinds in stable order.
func BuiltinKinds() []Kind {
	out := make([]Kind, len(allBuiltinKinds))
	copy(out, allBuiltinKinds)
	return out
}

// IsBuiltin reports whether k is one of the core's closed taxonomy.
func (k Kind) IsBuiltin() bool {
	_, ok := builtinKindSet[k]
	return ok
}

// IsFatal reports whether k is a programmer-logic violation meant to abort
// rather than be handled.
func (k Kind) IsFatal() bool {
	_, ok := fatalKindSet[k]
	return ok
}
