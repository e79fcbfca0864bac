// predicates.go — minimal, stdlib-aligned classification predicates.
//
// Scope:
//   - Zero-policy helpers answering common classification questions.
//   - Interop-first: errors.Is / errors.As so traversal covers both single
//     Unwrap() error and multi Unwrap() []error chains.
//
// Out of scope (by design):
//   - Retry/backoff policy, HTTP mapping, logging.
package diag

import (
	"context"
	"errors"
)

// kindCarrier is the narrow capability predicates match on.
type kindCarrier interface{ KindVal() Kind }

// KindOf returns the first discovered Kind along err's chain, or "" if none.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var kc kindCarrier
	if errors.As(err, &kc) {
		return kc.KindVal()
	}
	return ""
}

// HasKind reports whether any error in the unwrap graph carries the given
// kind.
func HasKind(err error, k Kind) bool {
	if err == nil {
		return false
	}
	// errors.As stops at the first kind carrier — for a composite that is
	// the composite itself — so scan the whole graph.
	found := false
	Walk(err, func(e error) bool {
		if kc, ok := e.(kindCarrier); ok && kc.KindVal() == k {
			found = true
			return false
		}
		return true
	})
	return found
}

// IsCancelled reports whether err denotes cooperative cancellation. It
// matches the cancelled kind as well as the canonical stdlib context
// sentinels, so callers can treat all of them as non-failure signals.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return HasKind(err, KindCancelled)
}

// IsFatalKind reports whether err is (or wraps) a programmer-logic violation
// — unreachable, unimplemented, or internal_inconsistency. These are meant
// to be asserted or aborted on, never silently swallowed.
func IsFatalKind(err error) bool {
	if err == nil {
		return false
	}
	// Same whole-graph scan as HasKind: a fatal sub-error must not hide
	// behind an aggregating carrier.
	found := false
	Walk(err, func(e error) bool {
		if kc, ok := e.(kindCarrier); ok && kc.KindVal().IsFatal() {
			found = true
			return false
		}
		return true
	})
	return found
}

// groupCarrier is the narrow capability for tag matching.
type groupCarrier interface{ Group() Group }

// HasTag reports whether any error in the unwrap graph carries a group
// containing the given tag.
func HasTag(err error, tag string) bool {
	if err == nil || tag == "" {
		return false
	}
	// errors.As stops at the first group carrier, so scan the whole graph.
	found := false
	Walk(err, func(e error) bool {
		if g, ok := e.(groupCarrier); ok && g.Group().Contains(tag) {
			found = true
			return false
		}
		return true
	})
	return found
}
