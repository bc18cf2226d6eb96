// Package disclosure tracks, per item id, whether an item's extended
// details are shown.
//
// A State is an immutable value. Toggle returns a new State and never
// modifies its argument, so a view can keep the previous State around
// (for example to diff renders) without copying it. An id that has
// never been toggled is collapsed.
package disclosure

import (
	"cmp"
	"maps"
	"slices"
)

// State maps item ids to their expanded flag. The zero value is an
// empty state with every id collapsed.
type State[K comparable] struct {
	shown map[K]bool
}

// New returns an empty State.
func New[K comparable]() State[K] {
	return State[K]{}
}

// Toggle returns a copy of s with the flag for id negated. Ids absent
// from s count as collapsed, so toggling one expands it. Any id is
// accepted; s is not validated against an item collection.
func Toggle[K comparable](s State[K], id K) State[K] {
	next := make(map[K]bool, len(s.shown)+1)
	maps.Copy(next, s.shown)
	next[id] = !s.shown[id]
	return State[K]{shown: next}
}

// IsExpanded reports whether id is expanded in s.
func IsExpanded[K comparable](s State[K], id K) bool {
	return s.shown[id]
}

// Toggle is the method form of Toggle.
func (s State[K]) Toggle(id K) State[K] { return Toggle(s, id) }

// IsExpanded is the method form of IsExpanded.
func (s State[K]) IsExpanded(id K) bool { return IsExpanded(s, id) }

// Len returns the number of ids that have ever been toggled,
// collapsed or not.
func (s State[K]) Len() int { return len(s.shown) }

// Expanded returns the ids currently expanded, in no particular order.
func (s State[K]) Expanded() []K {
	var ids []K
	for id, on := range s.shown {
		if on {
			ids = append(ids, id)
		}
	}
	return ids
}

// SortedExpanded returns Expanded sorted ascending.
func SortedExpanded[K cmp.Ordered](s State[K]) []K {
	ids := s.Expanded()
	slices.Sort(ids)
	return ids
}
