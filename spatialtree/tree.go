// Package spatialtree implements the region-splitting engine behind quadtrees and octrees.
//
// A Tree stores items keyed by identity together with an axis-aligned region. Nodes are split
// lazily: the first insertion that descends into a leaf large enough to halve splits it into 2^D
// children, and every item is anchored at the deepest node whose region fully contains it.
// Removing items can collapse branches whose children are all empty leaves, either as each item is
// removed (Config.TrimOnRemove) or in one pass with Trim.
//
// Trees are not safe for concurrent use.
package spatialtree

import (
	"cmp"
	"iter"
	"slices"
	"sync/atomic"

	"github.com/samber/lo"

	"go.viam.com/spatialindex/logging"
)

// treeIDs hands out process-wide tree identities.
var treeIDs atomic.Uint64

// Tree is a spatial index of items of type I over regions of type R.
type Tree[I comparable, R Region[R, S], S Extent[S]] struct {
	cfg    Config[R, S]
	logger logging.Logger
	root   *Node[I, R, S]
	items  map[I]entry[R]
	id     uint64
	seq    uint64
}

// entry is what the tree knows about an item: its region and when it was inserted.
type entry[R any] struct {
	region R
	seq    uint64
}

// New creates an empty tree covering cfg.Region. A nil logger discards all output.
func New[I comparable, R Region[R, S], S Extent[S]](cfg Config[R, S], logger logging.Logger) (*Tree[I, R, S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewBlankLogger("spatialtree")
	}
	return newTree[I](cfg.WithDefaults(), logger), nil
}

// newTree skips validation; cfg must already be valid and resolved.
func newTree[I comparable, R Region[R, S], S Extent[S]](cfg Config[R, S], logger logging.Logger) *Tree[I, R, S] {
	t := &Tree[I, R, S]{
		cfg:    cfg,
		logger: logger,
		items:  make(map[I]entry[R]),
		id:     treeIDs.Add(1),
	}
	t.root = t.newNode(cfg.Region, nil)
	return t
}

// Config returns the resolved configuration of the tree.
func (t *Tree[I, R, S]) Config() Config[R, S] {
	return t.cfg
}

// Bounds returns the region covered by the root node.
func (t *Tree[I, R, S]) Bounds() R {
	return t.root.region
}

// Size returns the number of items in the tree.
func (t *Tree[I, R, S]) Size() int {
	return len(t.items)
}

// Contains reports whether item is in the tree.
func (t *Tree[I, R, S]) Contains(item I) bool {
	_, ok := t.items[item]
	return ok
}

// RegionFor returns the region item was inserted with, or an error wrapping ErrItemNotFound.
func (t *Tree[I, R, S]) RegionFor(item I) (R, error) {
	e, ok := t.items[item]
	if !ok {
		var zero R
		return zero, newItemNotFoundError(item)
	}
	return e.region, nil
}

// Insert places item at the deepest node fully containing region, splitting nodes on the way.
// An item already in the tree is moved. Insert returns false, leaving the tree untouched, if
// region is empty on some axis or not inside the tree's bounds.
func (t *Tree[I, R, S]) Insert(item I, region R) bool {
	if err := region.Validate(); err != nil {
		t.logger.Warnw("rejected insert of invalid region", "item", item, "error", err)
		return false
	}
	if !t.root.region.Contains(region) {
		t.logger.Debugw("rejected insert outside tree bounds", "item", item, "region", region, "bounds", t.root.region)
		return false
	}
	t.Remove(item)

	t.root.insert(item, region)
	t.seq++
	t.items[item] = entry[R]{region: region, seq: t.seq}
	return true
}

// Remove deletes item from the tree and reports whether it was present. With TrimOnRemove set,
// branches left holding only empty leaves are collapsed.
func (t *Tree[I, R, S]) Remove(item I) bool {
	e, ok := t.items[item]
	if !ok {
		return false
	}
	t.root.remove(item, e.region)
	return true
}

// Clear removes every item and discards all nodes but a fresh root.
func (t *Tree[I, R, S]) Clear() {
	t.logger.Debugw("cleared tree", "items", len(t.items))
	t.items = make(map[I]entry[R])
	t.root = t.newNode(t.cfg.Region, nil)
}

// Trim collapses every branch whose children are all empty leaves, bottom up. It is idempotent and
// has the same effect as TrimOnRemove, batched.
func (t *Tree[I, R, S]) Trim() {
	if removed := t.root.trim(); removed > 0 {
		t.logger.Debugw("trimmed tree", "nodes_removed", removed)
	}
}

// ContainedBy adds to out every item whose region lies entirely inside region.
func (t *Tree[I, R, S]) ContainedBy(region R, out Set[I]) {
	t.root.containedBy(region, out)
}

// OverlappedBy adds to out every item whose region overlaps region.
func (t *Tree[I, R, S]) OverlappedBy(region R, out Set[I]) {
	t.root.overlappedBy(region, out)
}

// Raycast adds to out a hit for every item whose region is intersected by ray.
func (t *Tree[I, R, S]) Raycast(ray Ray[R], out *RayHits[I, R]) {
	t.root.raycast(ray, out)
}

// Items iterates over every item and its region, in no particular order.
func (t *Tree[I, R, S]) Items() iter.Seq2[I, R] {
	return func(yield func(I, R) bool) {
		for item, e := range t.items {
			if !yield(item, e.region) {
				return
			}
		}
	}
}

// NodeCount returns the number of nodes, leaves included.
func (t *Tree[I, R, S]) NodeCount() int {
	var count int
	t.IterateNodes(func(*Node[I, R, S], int) Signal {
		count++
		return Continue
	})
	return count
}

// Equal reports whether both trees hold the same items with the same regions. The shape of the
// trees is not compared.
func (t *Tree[I, R, S]) Equal(other *Tree[I, R, S]) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil || len(t.items) != len(other.items) {
		return false
	}
	for item, e := range t.items {
		o, ok := other.items[item]
		if !ok || o.region != e.region {
			return false
		}
	}
	return true
}

// inInsertionOrder returns the items sorted by when they were last inserted.
func (t *Tree[I, R, S]) inInsertionOrder() []lo.Entry[I, entry[R]] {
	entries := lo.Entries(t.items)
	slices.SortFunc(entries, func(a, b lo.Entry[I, entry[R]]) int {
		return cmp.Compare(a.Value.seq, b.Value.seq)
	})
	return entries
}

// Map builds a new tree with the same configuration and logger, holding f(item, region) at region
// for every item of t. Items are re-inserted in their original insertion order, so when f maps
// two items to the same value the later one wins. t is not modified.
func Map[J, I comparable, R Region[R, S], S Extent[S]](t *Tree[I, R, S], f func(I, R) J) *Tree[J, R, S] {
	mapped := newTree[J](t.cfg, t.logger)
	for _, e := range t.inInsertionOrder() {
		mapped.Insert(f(e.Key, e.Value.region), e.Value.region)
	}
	return mapped
}
