package spatialtree

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/spatialindex/geom"
	"go.viam.com/spatialindex/logging"
)

type rectTree[T geom.Scalar] = Tree[string, geom.Rect[T], geom.Vec2[T]]

type rectConfig[T geom.Scalar] = Config[geom.Rect[T], geom.Vec2[T]]

func rect[T geom.Scalar](minX, minY, maxX, maxY T) geom.Rect[T] {
	return geom.Rect[T]{Min: geom.Vec2[T]{X: minX, Y: minY}, Max: geom.Vec2[T]{X: maxX, Y: maxY}}
}

func newRectTree[T geom.Scalar](t *testing.T, bounds geom.Rect[T], trimOnRemove bool) *rectTree[T] {
	t.Helper()
	tree, err := New[string](rectConfig[T]{Region: bounds, TrimOnRemove: trimOnRemove}, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	return tree
}

// anchorOf returns the node item is anchored at, or nil.
func anchorOf[T geom.Scalar](tree *rectTree[T], item string) *Node[string, geom.Rect[T], geom.Vec2[T]] {
	var found *Node[string, geom.Rect[T], geom.Vec2[T]]
	tree.IterateNodes(func(node *Node[string, geom.Rect[T], geom.Vec2[T]], _ int) Signal {
		if _, ok := node.Item(item); ok {
			found = node
			return Terminate
		}
		return Continue
	})
	return found
}

func checkInvariants[I comparable, R Region[R, S], S Extent[S]](t *testing.T, tree *Tree[I, R, S]) {
	t.Helper()
	test.That(t, tree.CheckInvariants(), test.ShouldBeNil)
}
