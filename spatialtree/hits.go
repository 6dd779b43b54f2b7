package spatialtree

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

const hitsDegree = 8

// Hit is an item whose region was intersected by a ray, with the distance from the ray origin to
// the region's lower corner.
type Hit[I comparable, R any] struct {
	Distance float64
	Region   R
	Item     I

	// tree and seq identify the item's insertion and break distance ties.
	tree uint64
	seq  uint64
}

// RayHits is an ordered collection of raycast hits, nearest first. Hits at the same distance are
// ordered by the tree they came from, in tree creation order, then by when their items were
// inserted. Raycasting the same tree into one RayHits more than once does not duplicate hits, and
// hits from different trees never replace each other. The zero value is ready to use.
type RayHits[I comparable, R any] struct {
	hits *btree.BTreeG[Hit[I, R]]
}

// NewRayHits returns an empty collection.
func NewRayHits[I comparable, R any]() *RayHits[I, R] {
	return &RayHits[I, R]{}
}

func lessHit[I comparable, R any](a, b Hit[I, R]) bool {
	if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
		return c < 0
	}
	if a.tree != b.tree {
		return a.tree < b.tree
	}
	return a.seq < b.seq
}

func (h *RayHits[I, R]) add(hit Hit[I, R]) {
	if h.hits == nil {
		h.hits = btree.NewG(hitsDegree, lessHit[I, R])
	}
	h.hits.ReplaceOrInsert(hit)
}

// Len returns the number of hits.
func (h *RayHits[I, R]) Len() int {
	if h.hits == nil {
		return 0
	}
	return h.hits.Len()
}

// Nearest returns the hit closest to the ray origin.
func (h *RayHits[I, R]) Nearest() (Hit[I, R], bool) {
	if h.hits == nil {
		return Hit[I, R]{}, false
	}
	return h.hits.Min()
}

// All iterates over the hits, nearest first.
func (h *RayHits[I, R]) All() iter.Seq[Hit[I, R]] {
	return func(yield func(Hit[I, R]) bool) {
		if h.hits == nil {
			return
		}
		h.hits.Ascend(func(hit Hit[I, R]) bool {
			return yield(hit)
		})
	}
}

// Slice returns the hits, nearest first.
func (h *RayHits[I, R]) Slice() []Hit[I, R] {
	out := make([]Hit[I, R], 0, h.Len())
	for hit := range h.All() {
		out = append(out, hit)
	}
	return out
}

// Items returns the hit items, nearest first.
func (h *RayHits[I, R]) Items() []I {
	out := make([]I, 0, h.Len())
	for hit := range h.All() {
		out = append(out, hit.Item)
	}
	return out
}

// Clear removes every hit.
func (h *RayHits[I, R]) Clear() {
	if h.hits != nil {
		h.hits.Clear(false)
	}
}
