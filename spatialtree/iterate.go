package spatialtree

import (
	"iter"
)

// Signal tells a traversal whether to keep going.
type Signal int

const (
	// Continue visits the node's children and then the rest of the tree.
	Continue Signal = iota
	// Terminate stops the traversal immediately.
	Terminate
)

func (s Signal) String() string {
	if s == Terminate {
		return "terminate"
	}
	return "continue"
}

// Visitor is called for each node of a traversal with the node's depth, the root being at 0.
type Visitor[I comparable, R Region[R, S], S Extent[S]] func(node *Node[I, R, S], depth int) Signal

// IterateNodes walks the tree depth first, visiting each node before its children and children in
// subdivision order. It returns Terminate if the visitor stopped the walk early.
func (t *Tree[I, R, S]) IterateNodes(visit Visitor[I, R, S]) Signal {
	return t.root.iterate(visit, 0)
}

func (n *Node[I, R, S]) iterate(visit Visitor[I, R, S], depth int) Signal {
	if visit(n, depth) == Terminate {
		return Terminate
	}
	for _, child := range n.children {
		if child.iterate(visit, depth+1) == Terminate {
			return Terminate
		}
	}
	return Continue
}

// Nodes iterates over every node and its depth in the same order as IterateNodes.
func (t *Tree[I, R, S]) Nodes() iter.Seq2[int, *Node[I, R, S]] {
	return func(yield func(int, *Node[I, R, S]) bool) {
		t.IterateNodes(func(node *Node[I, R, S], depth int) Signal {
			if !yield(depth, node) {
				return Terminate
			}
			return Continue
		})
	}
}
