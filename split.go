package skeleton

// splitEvent is a pending split: a reflex or terminal node's advancing ray
// meets an opposing edge, dividing one chain into two, or two coincident
// open-chain ends merge into one chain (a zero-travel split).
type splitEvent struct {
	point Point
	at    float64

	// source is the splitting vertex.
	source *Node

	// origin is the target edge's originating node as of scheduling.
	// The actual edge is re-located through origin's splits group at pop
	// time, because the edge's endpoints may have moved or collapsed
	// since the event was scheduled.
	origin *Node

	// other is the coincident partner terminal for chain merges; nil for
	// true splits.
	other *Node

	// edge is the re-validated target edge, filled in by viable.
	edge [2]*Node
}

func (e *splitEvent) when() float64 { return e.at }

func (e *splitEvent) viable(w *Wavefront) bool {
	if !w.isActive(e.source) {
		return false
	}
	if e.other != nil {
		return w.isActive(e.other) &&
			e.source.next == nil && e.other.prev == nil &&
			e.source.point == e.other.point
	}
	for _, m := range e.origin.splits {
		c := m.Current()
		if !w.isActive(c) || c.next == nil {
			continue
		}
		if c == e.source || c.next == e.source {
			continue
		}
		if splitFits(e.point, c, c.next) {
			e.edge = [2]*Node{c, c.next}
			return true
		}
	}
	return false
}

func (e *splitEvent) apply(w *Wavefront, emit Emit) {
	if e.other != nil {
		e.applyMerge(w, emit)
		return
	}

	e0, e1 := e.edge[0], e.edge[1]
	srcPrev, srcNext := e.source.prev, e.source.next

	// One duplicate per side of the split. Side 0 joins the source's prev
	// chain to the far end of the target edge; side 1 joins the near end
	// to the source's next chain. Both new nodes are recorded in the
	// edge's splits groups so later split searches see the new topology.
	s0 := newDerived(KindSplit, e.point, e.at, e.source.headings[0], e0.headings[1])
	mergeWhence(s0.whence, e.source.whence)
	mergeWhence(s0.whence, e1.whence)
	w.retire(e.source, s0)
	emit(e.source, s0)
	w.splice(s0, srcPrev, e1, emit)
	e.origin.splits = append(e.origin.splits, s0)
	if e1 != e.origin {
		e1.splits = append(e1.splits, s0)
	}

	s1 := newDerived(KindSplit, e.point, e.at, e0.headings[1], e.source.headings[1])
	mergeWhence(s1.whence, e.source.whence)
	mergeWhence(s1.whence, e0.whence)
	w.splice(s1, e0, srcNext, emit)
	if e0 != e.origin {
		e.origin.splits = append(e.origin.splits, s1)
	}
	e0.splits = append(e0.splits, s1)
}

// applyMerge welds two coincident open-chain ends into one chain.
func (e *splitEvent) applyMerge(w *Wavefront, emit Emit) {
	a, b := e.source.prev, e.other.next
	node := newDerived(KindSplit, e.point, e.at, e.source.headings[0], e.other.headings[1])
	mergeWhence(node.whence, e.source.whence)
	mergeWhence(node.whence, e.other.whence)

	w.retire(e.source, node)
	w.retire(e.other, node)
	emit(e.source, node)
	emit(e.other, node)

	switch {
	case a == e.other || b == e.source:
		// The two ends belonged to a two-node chain; nothing remains.
	case a != nil && a == b:
		// Three-node chain closing on itself.
		mergeWhence(node.whence, a.whence)
		w.retire(a, node)
		emit(a, node)
	default:
		w.splice(node, a, b, emit)
	}
}

// splice links a replacement node between prev and next, or consumes the
// single shared neighbour when both sides name the same node, then
// schedules fresh collapse candidates around the change.
func (w *Wavefront) splice(s, prev, next *Node, emit Emit) {
	if prev != nil && prev == next {
		w.retire(prev, s)
		emit(prev, s)
		return
	}
	s.prev, s.next = prev, next
	if prev != nil {
		prev.next = s
	}
	if next != nil {
		next.prev = s
	}
	w.insert(s)
	w.scheduleCollapse(s.collapseCandidate(w.limit))
	if prev != nil {
		w.scheduleCollapse(prev.collapseCandidate(w.limit))
	}
	if next != nil {
		w.scheduleCollapse(next.collapseCandidate(w.limit))
	}
}
