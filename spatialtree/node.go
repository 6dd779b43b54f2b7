package spatialtree

import (
	"fmt"
	"iter"
)

// Node is one region of a tree. A node is either a leaf or split into exactly 2^D children that
// tile its region. Items are anchored at the deepest node that fully contained them when they were
// inserted. Nodes are handed to visitors read-only.
type Node[I comparable, R Region[R, S], S Extent[S]] struct {
	tree     *Tree[I, R, S]
	region   R
	items    map[I]R
	parent   *Node[I, R, S]
	children []*Node[I, R, S]
}

func (t *Tree[I, R, S]) newNode(region R, parent *Node[I, R, S]) *Node[I, R, S] {
	return &Node[I, R, S]{tree: t, region: region, parent: parent}
}

// Region returns the region covered by the node.
func (n *Node[I, R, S]) Region() R {
	return n.region
}

// Leaf reports whether the node has no children.
func (n *Node[I, R, S]) Leaf() bool {
	return n.children == nil
}

// Len returns the number of items anchored at this node, not counting descendants.
func (n *Node[I, R, S]) Len() int {
	return len(n.items)
}

// Item returns the region of an item anchored at this node.
func (n *Node[I, R, S]) Item(item I) (R, bool) {
	region, ok := n.items[item]
	return region, ok
}

// Items iterates over the items anchored at this node.
func (n *Node[I, R, S]) Items() iter.Seq2[I, R] {
	return func(yield func(I, R) bool) {
		for item, region := range n.items {
			if !yield(item, region) {
				return
			}
		}
	}
}

func (n *Node[I, R, S]) empty() bool {
	return n.children == nil && len(n.items) == 0
}

func (n *Node[I, R, S]) split() {
	regions := n.region.Subdivide()
	children := make([]*Node[I, R, S], len(regions))
	for i, region := range regions {
		children[i] = n.tree.newNode(region, n)
	}
	n.children = children
}

// collapse turns the node back into a leaf if every child is an empty leaf, returning the number
// of nodes discarded.
func (n *Node[I, R, S]) collapse() int {
	if n.children == nil {
		return 0
	}
	for _, child := range n.children {
		if !child.empty() {
			return 0
		}
	}
	removed := len(n.children)
	n.children = nil
	return removed
}

// insert descends to the deepest node containing region, splitting leaves that are large enough
// on the way, and anchors item there. region must be inside n.region.
func (n *Node[I, R, S]) insert(item I, region R) {
	node := n
	for {
		if node.children == nil && node.region.CanSubdivide(node.tree.cfg.MinimumChildSize) {
			node.split()
		}
		next := node.childContaining(region)
		if next == nil {
			break
		}
		node = next
	}

	if node.items == nil {
		node.items = make(map[I]R)
	}
	node.items[item] = region
}

// childContaining returns the first child, in subdivision order, that fully contains region.
func (n *Node[I, R, S]) childContaining(region R) *Node[I, R, S] {
	for _, child := range n.children {
		if child.region.Contains(region) {
			return child
		}
	}
	return nil
}

// remove follows the path insert took for region and deletes item from the node anchoring it.
func (n *Node[I, R, S]) remove(item I, region R) {
	node := n
	for {
		if _, ok := node.items[item]; ok {
			break
		}
		next := node.childContaining(region)
		if next == nil {
			panic(fmt.Sprintf("spatialtree: item %v with region %v is indexed but not anchored under %v",
				item, region, node.region))
		}
		node = next
	}

	delete(node.items, item)
	if len(node.items) == 0 {
		node.items = nil
	}
	delete(node.tree.items, item)

	if node.tree.cfg.TrimOnRemove {
		node.unsplitAscend()
	}
}

// unsplitAscend collapses n and then each ancestor in turn, stopping at the first node that still
// has a non-empty child.
func (n *Node[I, R, S]) unsplitAscend() {
	for node := n; node != nil; node = node.parent {
		if node.children == nil {
			continue
		}
		if node.collapse() == 0 {
			return
		}
	}
}

// trim collapses the subtree bottom up and returns the number of nodes discarded.
func (n *Node[I, R, S]) trim() int {
	var removed int
	for _, child := range n.children {
		removed += child.trim()
	}
	return removed + n.collapse()
}
