package spatialtree

func (n *Node[I, R, S]) containedBy(target R, out Set[I]) {
	if n.empty() || !target.Overlaps(n.region) {
		return
	}
	if target.Contains(n.region) {
		n.collect(out)
		return
	}
	for item, region := range n.items {
		if target.Contains(region) {
			out.Add(item)
		}
	}
	for _, child := range n.children {
		child.containedBy(target, out)
	}
}

// collect adds every item anchored in the subtree.
func (n *Node[I, R, S]) collect(out Set[I]) {
	for item := range n.items {
		out.Add(item)
	}
	for _, child := range n.children {
		child.collect(out)
	}
}

func (n *Node[I, R, S]) overlappedBy(target R, out Set[I]) {
	if n.empty() || !target.Overlaps(n.region) {
		return
	}
	for item, region := range n.items {
		if target.Overlaps(region) {
			out.Add(item)
		}
	}
	for _, child := range n.children {
		child.overlappedBy(target, out)
	}
}

func (n *Node[I, R, S]) raycast(ray Ray[R], out *RayHits[I, R]) {
	if n.empty() || !ray.Intersects(n.region) {
		return
	}
	for item, region := range n.items {
		if ray.Intersects(region) {
			out.add(Hit[I, R]{
				Distance: ray.Distance(region),
				Region:   region,
				Item:     item,
				tree:     n.tree.id,
				seq:      n.tree.items[item].seq,
			})
		}
	}
	for _, child := range n.children {
		child.raycast(ray, out)
	}
}
