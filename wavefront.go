package skeleton

import (
	"math"

	iring "github.com/gogpu/skeleton/internal/ring"
	"github.com/gogpu/skeleton/internal/spatial"
)

// Unbounded runs the wavefront until the active set empties.
var Unbounded = math.Inf(1)

// Emit receives one directed skeleton edge per consumed node: the node that
// left the active set and the node that replaced it. When run unbounded the
// emitted pairs form the straight skeleton's edge list; when run with a
// finite limit the remaining loops are read from the returned iterator
// instead.
type Emit func(from, to *Node)

// Wavefront simulates one or more polygon rings or open polylines shrinking
// uniformly: every edge translates along its own normal at unit speed. The
// simulation is a discrete event loop over two event kinds, edge collapses
// and vertex splits, applied in non-decreasing travel order.
//
// A Wavefront is single-use: construct it, call Progress once, and drain
// the returned loop iterator. It is not safe for concurrent use, but
// independent Wavefronts are fully isolated from each other.
type Wavefront struct {
	opts   options
	active map[*Node]struct{}
	order  []*Node
	queue  eventQueue
	limit  float64
	done   bool
}

// New builds the initial node graph from the input rings (or open
// polylines, with Open). Consecutive coincident points are dropped, reflex
// corners are subdivided per the rounding tolerance, and the vertices are
// linked into cyclic or open neighbour chains.
//
// Rings are assumed simple and consistently oriented, counter-clockwise for
// shrinking inward; the behavior on degenerate input is undefined, and
// rings with fewer than three points (or polylines with fewer than two) are
// skipped.
func New(rings [][]Point, opts ...Option) *Wavefront {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &Wavefront{
		opts:   o,
		active: make(map[*Node]struct{}),
	}
	for ri, pts := range rings {
		w.addRing(ri, pts)
	}
	return w
}

// addRing constructs, links and activates the vertex chain of one ring.
func (w *Wavefront) addRing(ri int, pts []Point) {
	pts = fromRing(iring.Dedup(toRing(pts), w.opts.closed))
	if len(pts) < 2 || (w.opts.closed && len(pts) < 3) {
		return
	}
	n := len(pts)
	var nodes []*Node
	for i, p := range pts {
		var n0, n1 Vec2
		if w.opts.closed || i > 0 {
			n0 = edgeNormal(pts[(i-1+n)%n], p)
		}
		if w.opts.closed || i < n-1 {
			n1 = edgeNormal(p, pts[(i+1)%n])
		}
		uturn := n0.Cross(n1) == 0 && n0.Dot(n1) < 0
		if w.opts.rounding > 0 && !n0.IsZero() && !n1.IsZero() && (n0.Cross(n1) < 0 || uturn) {
			nodes = append(nodes, roundCorner(p, n0, n1, ri, w.opts.rounding)...)
		} else {
			nodes = append(nodes, newVertex(p, n0, n1, ri))
		}
	}
	for i, node := range nodes {
		if i > 0 {
			nodes[i-1].next = node
			node.prev = nodes[i-1]
		}
		w.insert(node)
	}
	if w.opts.closed {
		last := nodes[len(nodes)-1]
		last.next = nodes[0]
		nodes[0].prev = last
	}
}

// edgeNormal returns the unit normal along which the edge from a to b
// advances: the left-hand perpendicular of its direction, which points into
// the interior for counter-clockwise rings.
func edgeNormal(a, b Point) Vec2 {
	return b.Sub(a).Normalize().Perp()
}

// Progress seeds event candidates for the current active set and drains the
// queue in non-decreasing travel order, invoking emit for every applied
// event. Events at or beyond limit are discarded at computation time; pass
// Unbounded (or any non-positive limit) to run to full collapse.
//
// The returned iterator yields the boundary loops still active at
// termination: the offset polygons at the limit distance for a bounded run,
// or the uncollapsed chains of the skeleton for an unbounded one. Progress
// is one-shot; further calls return an empty iterator.
func (w *Wavefront) Progress(limit float64, emit Emit) *LoopIter {
	if w.done {
		return &LoopIter{w: w, limit: math.Inf(1), idx: len(w.order)}
	}
	w.done = true
	if limit <= 0 {
		limit = math.Inf(1)
	}
	w.limit = limit
	if emit == nil {
		emit = func(from, to *Node) {}
	}

	for _, n := range w.order {
		if w.isActive(n) {
			w.scheduleCollapse(n.collapseCandidate(limit))
		}
	}
	if w.opts.splits {
		w.scheduleMerges()
		w.scheduleSplits(limit)
	}

	applied, discarded := 0, 0
	for {
		e := w.queue.pop()
		if e == nil {
			break
		}
		if !e.viable(w) {
			discarded++
			continue
		}
		e.apply(w, emit)
		applied++
	}
	logger().Debug("wavefront drained",
		"applied", applied,
		"discarded", discarded,
		"remaining", len(w.active))
	return &LoopIter{w: w, limit: limit}
}

// scheduleMerges schedules a zero-travel split for every pair of coincident
// open-chain ends with crossing headings, so that open paths meeting at a
// point miter into one chain instead of sliding past each other.
func (w *Wavefront) scheduleMerges() {
	for _, t1 := range w.order {
		if !w.isActive(t1) || t1.next != nil {
			continue
		}
		for _, t2 := range w.order {
			if t2 == t1 || !w.isActive(t2) || t2.prev != nil {
				continue
			}
			if t1.point != t2.point || t1.heading.Cross(t2.heading) == 0 {
				continue
			}
			w.queue.push(&splitEvent{
				point:  t1.point,
				at:     math.Max(t1.travel, t2.travel),
				source: t1,
				other:  t2,
			})
		}
	}
}

// scheduleSplits bulk-loads a spatial index over the current wavefront
// edges and, for every reflex or terminal node, walks the index outward
// from the node until no edge can beat the best candidate found, then
// schedules that candidate.
func (w *Wavefront) scheduleSplits(limit float64) {
	var edges []*Node
	var rects []spatial.Rect
	for _, n := range w.order {
		if !w.isActive(n) || n.next == nil {
			continue
		}
		edges = append(edges, n)
		rects = append(rects, spatial.Bound(
			n.point.X, n.point.Y, n.next.point.X, n.next.point.Y))
	}
	if len(edges) == 0 {
		return
	}
	ix := spatial.New(rects)

	scheduled := 0
	for _, v := range w.order {
		if !w.isActive(v) || !(v.reflex || v.Terminal()) {
			continue
		}
		var best *splitEvent
		bound := limit
		cur := ix.Search(v.point.X, v.point.Y)
		for {
			i, dist, ok := cur.Next()
			if !ok || dist > (math.Abs(v.secant)+1)*bound {
				break
			}
			if ev := v.splitCandidate(edges[i], edges[i].next, bound); ev != nil {
				best = ev
				bound = ev.at
			}
		}
		if best != nil {
			w.queue.push(best)
			scheduled++
		}
	}
	logger().Debug("split search done", "edges", len(edges), "scheduled", scheduled)
}

// isActive reports whether n is a member of the active set.
func (w *Wavefront) isActive(n *Node) bool {
	_, ok := w.active[n]
	return ok
}

// insert adds a node to the active set.
func (w *Wavefront) insert(n *Node) {
	w.active[n] = struct{}{}
	w.order = append(w.order, n)
}

// retire removes a consumed node from the active set and records its
// replacement. After this the node is immutable.
func (w *Wavefront) retire(n, replacement *Node) {
	delete(w.active, n)
	n.collapsed = replacement
}

// scheduleCollapse pushes a collapse candidate, ignoring nil.
func (w *Wavefront) scheduleCollapse(e *collapseEvent) {
	if e != nil {
		w.queue.push(e)
	}
}

// mergeWhence unions src's ring ancestry into dst.
func mergeWhence(dst, src map[int]struct{}) {
	for ri := range src {
		dst[ri] = struct{}{}
	}
}

func toRing(pts []Point) []iring.Point {
	out := make([]iring.Point, len(pts))
	for i, p := range pts {
		out[i] = iring.Point{X: p.X, Y: p.Y}
	}
	return out
}

func fromRing(pts []iring.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

// LoopIter is a lazy, finite, one-shot iterator over the boundary loops
// still active when the event phase terminated. Each call recovers one
// whole chain by walking the neighbour links, removes its nodes from the
// active set, and yields its points: projected to the limit distance for a
// bounded run, or the creation points themselves for an unbounded one.
type LoopIter struct {
	w     *Wavefront
	limit float64
	idx   int
}

// Next returns the points of the next remaining loop, or nil when no loops
// remain. Open chains yield their points head to tail; cyclic chains start
// at an arbitrary surviving node.
func (it *LoopIter) Next() []Point {
	nodes := it.NextNodes()
	if nodes == nil {
		return nil
	}
	pts := make([]Point, len(nodes))
	for i, n := range nodes {
		if math.IsInf(it.limit, 1) {
			pts[i] = n.point
		} else {
			pts[i] = n.at(it.limit)
		}
	}
	return pts
}

// NextNodes returns the nodes of the next remaining loop in chain order, or
// nil when no loops remain. The nodes are removed from the active set.
func (it *LoopIter) NextNodes() []*Node {
	w := it.w
	for it.idx < len(w.order) {
		n := w.order[it.idx]
		it.idx++
		if !w.isActive(n) {
			continue
		}
		head := n
		for head.prev != nil && head.prev != n {
			head = head.prev
		}
		if head.prev == n {
			// Cyclic chain; start anywhere.
			head = n
		}
		var nodes []*Node
		for c := head; ; c = c.next {
			delete(w.active, c)
			nodes = append(nodes, c)
			if c.next == nil || c.next == head {
				break
			}
		}
		return nodes
	}
	return nil
}

// Collect drains the iterator into a slice of loops.
func (it *LoopIter) Collect() [][]Point {
	var out [][]Point
	for loop := it.Next(); loop != nil; loop = it.Next() {
		out = append(out, loop)
	}
	return out
}
