// multiple.go — the composite kind that aggregates other errors.
//
// Goals:
//   - Preserve stdlib semantics for traversal: Unwrap() []error exposes the
//     sub-errors so errors.Is/As walk the whole tree (pre-order DFS).
//   - Aggregate without losing individual causes: Add appends; it never
//     mutates the added error and never merges its context. Only the group
//     is folded in (order-preserving merge), because classification is a
//     property of the aggregate while diagnostic history stays per-error.
package diag

import "strings"

// Composite is the capability set of the multiple_issues kind: an Error that
// owns an ordered list of sub-errors.
type Composite interface {
	Error

	// Add appends err to the issue list and folds err's group into the
	// composite's own group. err itself is never mutated.
	Add(err Error)

	// Errors returns a copy of the sub-errors in insertion order.
	Errors() []Error
}

// multiErr implements Composite.
type multiErr struct {
	errs  []Error
	ctx   Context
	group Group
}

// CollectIssues builds a multiple_issues error from the given sub-errors in
// order, stamping one frame at the call site. The composite's group is the
// order-preserving merge of the sub-errors' groups; their contexts are left
// untouched.
func CollectIssues(errs ...Error) Composite {
	m := &multiErr{
		errs: make([]Error, 0, len(errs)),
		ctx:  NewContext(string(KindMultipleIssues), Here(1)),
	}
	groups := make([]Group, 0, len(errs))
	for _, e := range errs {
		if e == nil {
			continue
		}
		m.errs = append(m.errs, e)
		groups = append(groups, e.Group())
	}
	m.group = MergeGroups(groups...)
	return m
}

// Error newline-joins the sub-errors' concise strings, mirroring the shape
// of errors.Join output.
func (m *multiErr) Error() string {
	switch len(m.errs) {
	case 0:
		return string(KindMultipleIssues)
	case 1:
		return m.errs[0].Error()
	}
	sb := strings.Builder{}
	for i, e := range m.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

func (m *multiErr) KindVal() Kind    { return KindMultipleIssues }
func (m *multiErr) Context() Context { return m.ctx.clone() }
func (m *multiErr) Group() Group     { return m.group }

// Unwrap exposes the sub-errors to stdlib traversal; errors.Is/As walk them
// pre-order as of Go 1.20.
func (m *multiErr) Unwrap() []error {
	out := make([]error, len(m.errs))
	for i, e := range m.errs {
		out[i] = e
	}
	return out
}

func (m *multiErr) Add(err Error) {
	if err == nil {
		return
	}
	m.errs = append(m.errs, err)
	m.group = MergeGroups(m.group, err.Group())
}

func (m *multiErr) Errors() []Error {
	out := make([]Error, len(m.errs))
	copy(out, m.errs)
	return out
}

func (m *multiErr) DisplayMessage() string {
	return Messages().MessageFor(m)
}

func (m *multiErr) Equal(other Error) bool {
	if other == nil {
		return false
	}
	return m.DisplayMessage() == other.DisplayMessage()
}

func (m *multiErr) Append(f Frame) {
	m.ctx.Append(f)
}

func (m *multiErr) Appending(f Frame) Error {
	n := m.clone()
	n.ctx.Append(f)
	return n
}

func (m *multiErr) Merging(other Error) Error {
	n := m.clone()
	n.ctx = Merging(n.ctx, other.Context())
	n.group = MergeGroups(n.group, other.Group())
	return n
}

func (m *multiErr) Set(key string, val any) Error {
	m.ctx.Set(key, val)
	return m
}

func (m *multiErr) clone() *multiErr {
	n := &multiErr{
		errs:  make([]Error, len(m.errs)),
		ctx:   m.ctx.clone(),
		group: m.group,
	}
	copy(n.errs, m.errs)
	return n
}

var _ Composite = (*multiErr)(nil)
