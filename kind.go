// kind.go — the error contract shared by every diag kind: context, group,
// displayable message, coarse equality, propagation (append/merge), and
// terminal actions.
//
// Mutability model:
//   - Append and Set mutate the receiver's own context. An error value is
//     owned by one goroutine at a time; share it across goroutines only with
//     external synchronization (or use the pure Appending/Merging forms).
//   - Appending/Merging return NEW values and never alter the receiver, so
//     they are safe on shared errors.
//
// Unwrap semantics:
//   - Unwrap is deliberately NOT part of the interface: the stdlib forms
//     Unwrap() error and Unwrap() []error are mutually exclusive on one
//     method set. Unidentified exposes its foreign cause via Unwrap() error;
//     MultipleIssues exposes sub-errors via Unwrap() []error (multiple.go).
//     errors.Is/As traverse both.
package diag

// Kind names an error variant. Kinds are stringly-typed for stability across
// rendering boundaries; the built-in set is closed (see kinds.go) but the
// type itself does not forbid project-local kinds.
type Kind string

// Error is the capability set shared by all diag error kinds.
type Error interface {
	// error provides the concise one-line message. Rich rendering belongs to
	// %+v formatting and the Reporter.
	error

	// KindVal returns the variant identity. Named KindVal to leave Kind free
	// as the type name, mirroring the payload accessors below.
	KindVal() Kind

	// Context returns a copy of the diagnostic stack, oldest frame first.
	Context() Context

	// Group returns the classification tags fixed at construction (and
	// extended only by merge operations).
	Group() Group

	// DisplayMessage resolves the human-readable message through the
	// process-wide registry (kind identity → group tags → default → kind
	// name). The first resolution for a kind is memoized.
	DisplayMessage() string

	// Equal applies the coarse default equality: displayable messages only.
	// Kinds with meaningful payloads (internal_inconsistency, cancelled)
	// compare payload fields instead. Meant for test assertions and
	// deduplication, not structural identity.
	Equal(other Error) bool

	// Append records one more frame in place (oldest-first order preserved).
	Append(f Frame)

	// Appending returns a copy with one more frame; the receiver is
	// untouched.
	Appending(f Frame) Error

	// Merging returns a copy whose context is the receiver's frames followed
	// by other's frames, and whose group is the order-preserving merge of
	// both groups. The receiver and other are untouched.
	Merging(other Error) Error

	// Set records a debug value on the last frame of the error's own
	// context. No-op in release mode. Returns the receiver for chaining.
	Set(key string, val any) Error

	// Logged emits the verbose rendering through the package Reporter and
	// returns the receiver unchanged so terminal actions chain.
	Logged() Error

	// AsAssertionFailure triggers the replaceable assertion hook in
	// diagnostic mode; in release mode it is a pure no-op. Returns the
	// receiver unchanged.
	AsAssertionFailure(msg ...string) Error

	// AsFatal renders a full debug description through the Reporter and
	// terminates the process. It never returns.
	AsFatal(msg ...string)
}

// Renderable lets payload values control their own diagnostic rendering.
// Values that do not implement it are rendered with %v at the formatting
// boundary only; the domain model never depends on reflection.
type Renderable interface {
	Render() string
}
