// unwrap.go — stdlib-interop traversal over error graphs.
//
// Scope (tiny core):
//   - Generic traversal over single- and multi-wrapped errors.
//   - DFS flattening that cooperates with Unwrap() []error (composites,
//     errors.Join) and classic Unwrap() error wrapping.
//   - No policy, no logging — just correct, minimal utilities.
//
// Design notes (Go ≥1.20):
//   - errors.Unwrap only calls Unwrap() error, so correct traversal must
//     handle BOTH unwrap forms.
//   - We must NOT use map[error] as a blanket "seen" set: interface values
//     whose dynamic type is not comparable panic as map keys. Dual guard:
//       • seenErr (map[error]struct{})   — comparable dynamic types only
//       • seenPtr (map[uintptr]struct{}) — pointer identity otherwise
//     Non-comparable, non-pointer dynamics are treated as acyclic (bounded
//     by the depth cap).
package diag

import (
	"errors"
	"reflect"
)

// single/multi unwrap interfaces (stdlib-compatible)
type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// fastIsPointer returns true if err's dynamic type is a pointer.
// Fast path for package-local concrete types; reflect fallback otherwise.
func fastIsPointer(err error) bool {
	if err == nil {
		return false
	}
	switch err.(type) {
	case *kindErr, *multiErr:
		return true
	}
	return reflect.ValueOf(err).Kind() == reflect.Ptr
}

func isComparable(err error) bool {
	if err == nil {
		return false
	}
	return reflect.TypeOf(err).Comparable()
}

func ptrID(err error) (uintptr, bool) {
	if err == nil {
		return 0, false
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

// markSeen returns true if err was newly marked; false if already seen.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if isComparable(err) {
		if _, ok := seenErr[err]; ok {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if fastIsPointer(err) {
		if id, ok := ptrID(err); ok {
			if _, dup := seenPtr[id]; dup {
				return false
			}
			seenPtr[id] = struct{}{}
			return true
		}
	}
	return true
}

// Flatten walks an error graph and returns leaf errors (nodes with no
// children) in depth-first order. Nil yields nil.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	switch err.(type) {
	case multiUnwrapper, singleUnwrapper:
	default:
		return []error{err}
	}

	const maxDepth = 1 << 12 // generous cap against runaway graphs

	type frame struct {
		e   error
		idx int
	}

	out := make([]error, 0, 4)
	stack := make([]frame, 0, 8)
	seenErr := make(map[error]struct{}, 16)
	seenPtr := make(map[uintptr]struct{}, 16)

	stack = append(stack, frame{e: err})
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		top := &stack[len(stack)-1]

		if m, ok := top.e.(multiUnwrapper); ok {
			children := m.Unwrap()
			for top.idx < len(children) && children[top.idx] == nil {
				top.idx++
			}
			if top.idx < len(children) {
				child := children[top.idx]
				top.idx++
				if markSeen(child, seenErr, seenPtr) {
					stack = append(stack, frame{e: child})
				}
				continue
			}
			stack = stack[:len(stack)-1]
			continue
		}

		// Single-unwrap: descend in place so parents aren't misread as leaves.
		if s, ok := top.e.(singleUnwrapper); ok {
			if u := s.Unwrap(); u != nil {
				if markSeen(u, seenErr, seenPtr) {
					top.e = u
					continue
				}
				stack = stack[:len(stack)-1]
				continue
			}
		}

		out = append(out, top.e)
		stack = stack[:len(stack)-1]
	}

	return out
}

// Walk visits each distinct node depth-first in pre-order (visit before
// children). If visit returns false, traversal stops early. Cycle-safe; nil
// is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	const maxDepth = 1 << 12

	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 16)
	seenPtr := make(map[uintptr]struct{}, 16)

	stack = append(stack, err)
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		// Multi first; push in reverse for left-to-right DFS.
		if m, ok := cur.(multiUnwrapper); ok {
			kids := m.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				c := kids[i]
				if c == nil {
					continue
				}
				if markSeen(c, seenErr, seenPtr) {
					stack = append(stack, c)
				}
			}
			continue
		}
		if s, ok := cur.(singleUnwrapper); ok {
			if u := s.Unwrap(); u != nil && markSeen(u, seenErr, seenPtr) {
				stack = append(stack, u)
			}
		}
	}
}

// Root returns the first DFS leaf (deepest along the first path), nil-safe.
func Root(err error) error {
	leaves := Flatten(err)
	if len(leaves) == 0 {
		return nil
	}
	return leaves[0]
}

// Has reports whether target appears anywhere in err's unwrap graph.
// Nil-safe wrapper over errors.Is.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
