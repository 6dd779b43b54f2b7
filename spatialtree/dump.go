package spatialtree

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the structure of the tree to w, one node per line indented by depth.
func (t *Tree[I, R, S]) Fprint(w io.Writer) error {
	if t == nil {
		return nil
	}

	var err error
	t.IterateNodes(func(node *Node[I, R, S], depth int) Signal {
		kind := "split"
		if node.Leaf() {
			kind = "leaf"
		}
		_, err = fmt.Fprintf(w, "%s%v %s items=%d\n", strings.Repeat("  ", depth), node.region, kind, node.Len())
		if err != nil {
			return Terminate
		}
		return Continue
	})
	return err
}

// String returns the structure of the tree as written by Fprint.
func (t *Tree[I, R, S]) String() string {
	w := new(strings.Builder)
	_ = t.Fprint(w)
	return w.String()
}
