package skeleton

// collapseEvent is a pending edge collapse: the edge between two adjacent
// nodes shrinks to zero length at the computed travel. Events are scheduled
// speculatively; topology changes after scheduling make them non-viable
// rather than being removed from the queue.
type collapseEvent struct {
	point Point
	at    float64

	// left and right are the edge's endpoints in chain order: right
	// follows left.
	left, right *Node
}

func (e *collapseEvent) when() float64 { return e.at }

// viable reports whether both sources are still active and still adjacent.
func (e *collapseEvent) viable(w *Wavefront) bool {
	return w.isActive(e.left) && w.isActive(e.right) && e.left.next == e.right
}

// apply removes the two sources from the chain and splices in a replacement
// Collapse node, or terminates the chain when too little of it remains to
// carry a new edge. Each consumed node is reported as one directed skeleton
// edge toward its replacement.
func (e *collapseEvent) apply(w *Wavefront, emit Emit) {
	a, b := e.left.prev, e.right.next
	node := newDerived(KindCollapse, e.point, e.at, e.left.headings[0], e.right.headings[1])
	mergeWhence(node.whence, e.left.whence)
	mergeWhence(node.whence, e.right.whence)

	switch {
	case a != nil && a == b:
		// Chain of three collapsing to a single point: the shared
		// neighbour is consumed along with the sources and the chain
		// terminates here.
		mergeWhence(node.whence, a.whence)
		w.retire(e.left, node)
		w.retire(e.right, node)
		w.retire(a, node)
		emit(e.left, node)
		emit(e.right, node)
		emit(a, node)

	case a == e.right:
		// Cyclic pair: the last two nodes of a ring consume each other.
		w.retire(e.left, node)
		w.retire(e.right, node)
		emit(e.left, node)
		emit(e.right, node)

	case a == nil && b == nil:
		// Two-node open chain vanishes.
		w.retire(e.left, node)
		w.retire(e.right, node)
		emit(e.left, node)
		emit(e.right, node)

	default:
		w.retire(e.left, node)
		w.retire(e.right, node)
		emit(e.left, node)
		emit(e.right, node)
		w.splice(node, a, b, emit)
	}
}
