// Package dot renders the node structure of a spatial tree as a Graphviz DOT graph.
package dot

import (
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/spatialindex/spatialtree"
)

// Render writes tree to w as a laid out DOT graph. Each node is labeled with its region and the
// number of items anchored at it; edges run from a node to its children.
func Render[I comparable, R spatialtree.Region[R, S], S spatialtree.Extent[S]](
	tree *spatialtree.Tree[I, R, S],
	w io.Writer,
) (err error) {
	g := graphviz.New()
	graph, err := g.Graph()
	if err != nil {
		return errors.Wrap(err, "creating graph")
	}
	defer func() {
		err = multierr.Combine(err, graph.Close(), g.Close())
	}()

	// path holds the most recent node at each depth; in a depth first walk that is the parent of
	// the next node one level deeper.
	var path []*cgraph.Node
	var index int
	tree.IterateNodes(func(node *spatialtree.Node[I, R, S], depth int) spatialtree.Signal {
		var gn *cgraph.Node
		gn, err = graph.CreateNode(fmt.Sprintf("n%d", index))
		if err != nil {
			return spatialtree.Terminate
		}
		gn.SetLabel(label(node))
		if depth > 0 {
			if _, err = graph.CreateEdge(fmt.Sprintf("e%d", index), path[depth-1], gn); err != nil {
				return spatialtree.Terminate
			}
		}
		path = append(path[:depth], gn)
		index++
		return spatialtree.Continue
	})
	if err != nil {
		return errors.Wrap(err, "building graph")
	}
	return errors.Wrap(g.Render(graph, "dot", w), "rendering graph")
}

func label[I comparable, R spatialtree.Region[R, S], S spatialtree.Extent[S]](node *spatialtree.Node[I, R, S]) string {
	return fmt.Sprintf(`%v\nitems=%d`, node.Region(), node.Len())
}
