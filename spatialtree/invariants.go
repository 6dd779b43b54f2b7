package spatialtree

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// CheckInvariants walks the whole tree and reports every structural inconsistency it finds: items
// indexed by the tree but not anchored in exactly one node (or the reverse), items anchored at a
// node that does not contain them or where a child would, split nodes whose children do not match
// the subdivision of their region, and broken parent links. A tree only mutated through its
// methods always returns nil.
func (t *Tree[I, R, S]) CheckInvariants() error {
	var errs error
	anchored := make(map[I]int, len(t.items))

	if t.root.parent != nil {
		errs = multierr.Append(errs, errors.New("root has a parent"))
	}
	if t.root.region != t.cfg.Region {
		errs = multierr.Append(errs, errors.Errorf("root region %v differs from configured region %v", t.root.region, t.cfg.Region))
	}

	t.IterateNodes(func(node *Node[I, R, S], depth int) Signal {
		if node.tree != t {
			errs = multierr.Append(errs, errors.Errorf("node %v at depth %d belongs to another tree", node.region, depth))
		}
		if node.items != nil && len(node.items) == 0 {
			errs = multierr.Append(errs, errors.Errorf("node %v keeps an empty item map", node.region))
		}

		if node.children != nil {
			expected := node.region.Subdivide()
			if len(expected) != len(node.children) {
				errs = multierr.Append(errs, errors.Errorf("node %v has %d children, want %d",
					node.region, len(node.children), len(expected)))
			}
			for i, child := range node.children {
				if child.parent != node {
					errs = multierr.Append(errs, errors.Errorf("child %v of %v does not link back to it", child.region, node.region))
				}
				if i < len(expected) && child.region != expected[i] {
					errs = multierr.Append(errs, errors.Errorf("child %d of %v covers %v, want %v",
						i, node.region, child.region, expected[i]))
				}
			}
		}

		for item, region := range node.items {
			anchored[item]++
			if !node.region.Contains(region) {
				errs = multierr.Append(errs, errors.Errorf("item %v at %v is outside node %v", item, region, node.region))
			}
			if child := node.childContaining(region); child != nil {
				errs = multierr.Append(errs, errors.Errorf("item %v at %v is anchored at %v but fits child %v",
					item, region, node.region, child.region))
			}
			e, ok := t.items[item]
			switch {
			case !ok:
				errs = multierr.Append(errs, errors.Errorf("item %v anchored at %v is not indexed", item, node.region))
			case e.region != region:
				errs = multierr.Append(errs, errors.Errorf("item %v anchored with region %v but indexed with %v", item, region, e.region))
			}
		}
		return Continue
	})

	for item := range t.items {
		switch count := anchored[item]; count {
		case 1:
		case 0:
			errs = multierr.Append(errs, errors.Errorf("item %v is indexed but not anchored", item))
		default:
			errs = multierr.Append(errs, errors.Errorf("item %v is anchored at %d nodes", item, count))
		}
	}
	return errs
}
