// registry.go — the process-wide displayable-message registry.
//
// Model (see also doc.go):
//   - One process-lifetime singleton, created lazily on first use and reached
//     only through Messages(). No scattered module-level state: the backing
//     map lives inside a single CriticalSection and is touched exclusively
//     through it.
//   - Resolution order for a kind: exact kind entry → the kind's group tags
//     in declared order → the default entry → the kind name itself. Whatever
//     wins is memoized under the kind's identity, so repeated lookups return
//     the identical value.
//   - Keys are set-once. Because resolution memoizes under the kind key,
//     setting a message for a kind AFTER it has been read fails — by design,
//     to avoid silent message churn after values were observed elsewhere.
//     The existing entry is never overwritten (release-mode decision:
//     loud error on the API, no-op on the data).
package diag

import (
	"fmt"
	"sync"
)

const defaultMessageKey = "default"

func kindKey(k Kind) string      { return "kind/" + string(k) }
func groupKey(tag string) string { return "group/" + tag }

// registryState is the guarded backing map: resolved and registered
// messages, keyed by kind identity, group tag, or the default key.
type registryState struct {
	entries map[string]string
}

// MessageRegistry resolves displayable messages for error kinds and groups.
// All operations run under one CriticalSection; closures stay short.
type MessageRegistry struct {
	cs *CriticalSection[registryState]
}

// NewMessageRegistry returns an empty, independent registry. Production code
// uses the process-wide Messages() singleton; independent instances exist
// for tests and embedding.
func NewMessageRegistry() *MessageRegistry {
	return &MessageRegistry{
		cs: NewCriticalSection(registryState{entries: make(map[string]string)}),
	}
}

var (
	messagesOnce sync.Once
	messagesInst *MessageRegistry
)

// Messages returns the process-wide registry, creating it on first use.
func Messages() *MessageRegistry {
	messagesOnce.Do(func() {
		messagesInst = NewMessageRegistry()
	})
	return messagesInst
}

// MessageFor resolves the displayable message for e and memoizes the result
// under e's kind identity. Calling it twice always yields the identical
// value.
func (r *MessageRegistry) MessageFor(e Error) string {
	kind := e.KindVal()
	tags := e.Group().Tags()
	return AccessUpdate(r.cs, func(st *registryState) string {
		kk := kindKey(kind)
		if m, ok := st.entries[kk]; ok {
			return m
		}
		// Most specific registered tag wins, in declared order.
		for _, t := range tags {
			if m, ok := st.entries[groupKey(t)]; ok {
				st.entries[kk] = m
				return m
			}
		}
		if m, ok := st.entries[defaultMessageKey]; ok {
			st.entries[kk] = m
			return m
		}
		// Synthesize from the kind name.
		m := string(kind)
		st.entries[kk] = m
		return m
	})
}

// SetMessage registers the displayable message for a kind. It fails with an
// internal_inconsistency error if the kind already has an entry — including
// a memoized one, so messages must be set before first read.
func (r *MessageRegistry) SetMessage(msg string, k Kind) error {
	return r.setOnce(kindKey(k), msg)
}

// SetGroupMessage registers the displayable message for a group tag.
func (r *MessageRegistry) SetGroupMessage(msg, tag string) error {
	if tag == "" {
		return InvalidValue(tag, "empty group tag")
	}
	return r.setOnce(groupKey(tag), msg)
}

// SetDefaultMessage registers the fallback message used when neither kind
// nor group has an entry.
func (r *MessageRegistry) SetDefaultMessage(msg string) error {
	return r.setOnce(defaultMessageKey, msg)
}

// setOnce inserts key→msg, failing if key already has an entry. The
// existing entry is left untouched on failure.
func (r *MessageRegistry) setOnce(key, msg string) error {
	dup := AccessUpdate(r.cs, func(st *registryState) bool {
		if _, exists := st.entries[key]; exists {
			return true
		}
		st.entries[key] = msg
		return false
	})
	if dup {
		return InternalInconsistency(fmt.Sprintf("displayable message already set for %q", key))
	}
	return nil
}
