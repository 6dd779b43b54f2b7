package spatialtree

import (
	"github.com/samber/lo"
)

// Set collects the items found by a query. Queries add to it, so one set can accumulate the
// results of several queries.
type Set[I comparable] map[I]struct{}

// NewSet returns a set holding items.
func NewSet[I comparable](items ...I) Set[I] {
	s := make(Set[I], len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item into the set.
func (s Set[I]) Add(item I) {
	s[item] = struct{}{}
}

// Has reports whether item is in the set.
func (s Set[I]) Has(item I) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items in the set.
func (s Set[I]) Len() int {
	return len(s)
}

// Slice returns the items in no particular order.
func (s Set[I]) Slice() []I {
	return lo.Keys(map[I]struct{}(s))
}
