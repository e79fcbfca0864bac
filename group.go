// group.go — ordered tag sets classifying error kinds.
//
// Intent:
//   - A Group is an ordered, duplicate-free sequence of string tags.
//   - The empty group is the distinguished "default" group; it is a subset
//     of every group (vacuously), which is what drives message-registry
//     fallback.
//   - Merging preserves first-seen order and drops repeats (stable dedup).
//
// Conventions (documented, not enforced here):
//   - Tags are lowercase snake_case ASCII.
//   - Declared order matters: the registry tries tags most-specific-first in
//     the order they were declared.
package diag

// Group is an ordered set of string tags classifying an error kind.
// The zero value is the default group.
type Group struct {
	tags []string
}

// DefaultGroup is the distinguished empty group.
var DefaultGroup = Group{}

// NewGroup builds a group from tags, keeping first occurrences in order and
// dropping repeats and empty strings.
func NewGroup(tags ...string) Group {
	if len(tags) == 0 {
		return Group{}
	}
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return Group{}
	}
	return Group{tags: out}
}

// MergeGroups concatenates tag sequences in argument order with stable
// dedup: the first occurrence of a tag keeps its position, later repeats are
// dropped. O(total tags) with a seen-set.
func MergeGroups(groups ...Group) Group {
	total := 0
	for _, g := range groups {
		total += len(g.tags)
	}
	if total == 0 {
		return Group{}
	}
	out := make([]string, 0, total)
	seen := make(map[string]struct{}, total)
	for _, g := range groups {
		for _, t := range g.tags {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return Group{tags: out}
}

// IsSubset reports whether every tag of g appears in of. The empty group is
// vacuously a subset of everything, including itself.
func (g Group) IsSubset(of Group) bool {
	if len(g.tags) == 0 {
		return true
	}
	if len(g.tags) > len(of.tags) {
		return false
	}
	set := make(map[string]struct{}, len(of.tags))
	for _, t := range of.tags {
		set[t] = struct{}{}
	}
	for _, t := range g.tags {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}

// Contains reports whether g carries the given tag.
func (g Group) Contains(tag string) bool {
	for _, t := range g.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Tags returns a defensive copy of the tags in declared order.
func (g Group) Tags() []string {
	if len(g.tags) == 0 {
		return nil
	}
	out := make([]string, len(g.tags))
	copy(out, g.tags)
	return out
}

// IsDefault reports whether g is the empty (default) group.
func (g Group) IsDefault() bool { return len(g.tags) == 0 }

// Len returns the number of tags.
func (g Group) Len() int { return len(g.tags) }
