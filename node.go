package skeleton

import (
	"math"
	"sort"
)

// Kind identifies the variant of a wavefront node.
type Kind int

const (
	// KindVertex is an original input corner, or a synthetic corner
	// introduced to round a reflex angle.
	KindVertex Kind = iota

	// KindCollapse is a node produced when an active edge between two
	// neighbouring nodes shrank to zero length.
	KindCollapse

	// KindSplit is a node produced when a reflex or terminal vertex's
	// advancing wavefront ray met an opposing edge, dividing one chain
	// into two or merging two chains into one.
	KindSplit
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindCollapse:
		return "collapse"
	case KindSplit:
		return "split"
	}
	return "unknown"
}

// Node is a participant in the uniformly shrinking wavefront.
//
// A node comes into existence at a position and a travel distance and from
// then on moves along its heading: its position at wavefront distance t is
//
//	point + heading * secant * (t - travel)
//
// The heading is the bisector of the node's two bounding wavefront edge
// normals; the secant converts travel distance into displacement along the
// bisector, which is longer than the travel whenever the bisector is not
// perpendicular to its edges.
//
// Nodes form doubly linked chains through their neighbour links, cyclic for
// closed rings and nil-terminated for open polylines. The links are
// back-references only: chain membership is owned by the simulator's active
// set, and once a node leaves the active set it is immutable with collapsed
// pointing at the node that replaced it.
type Node struct {
	kind   Kind
	point  Point
	travel float64

	// headings holds the unit normals of the two wavefront edges bounding
	// this node's wedge. Either entry may be zero at an open chain end.
	headings [2]Vec2

	heading Vec2
	secant  float64
	reflex  bool

	prev, next *Node

	whence    map[int]struct{}
	collapsed *Node

	// splits tracks the live stand-ins for the wavefront edge this node
	// originates. Vertices start as the sole member of their own set;
	// split replacements are appended so that later split searches against
	// the edge see the updated topology.
	splits []*Node
}

// Kind returns the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Point returns the node's position at the instant it came into existence.
func (n *Node) Point() Point { return n.point }

// Travel returns the accumulated wavefront distance at which the node was
// created. Vertices start at zero.
func (n *Node) Travel() float64 { return n.travel }

// Heading returns the node's direction of motion.
func (n *Node) Heading() Vec2 { return n.heading }

// Reflex reports whether the node's wedge is reflex: the cross product of
// its two edge normals is negative, meaning the interior angle exceeds 180
// degrees on the offset side.
func (n *Node) Reflex() bool { return n.reflex }

// Terminal reports whether the node sits at the end of an open chain.
func (n *Node) Terminal() bool { return n.prev == nil || n.next == nil }

// Whence returns the sorted set of source-ring indices in this node's
// ancestry. The set only ever grows as nodes are merged.
func (n *Node) Whence() []int {
	out := make([]int, 0, len(n.whence))
	for ri := range n.whence {
		out = append(out, ri)
	}
	sort.Ints(out)
	return out
}

// Current follows collapsed links until reaching a node that was never
// replaced, resolving a historical reference to its live descendant.
func (n *Node) Current() *Node {
	for n.collapsed != nil {
		n = n.collapsed
	}
	return n
}

// at returns the node's position once the wavefront has travelled t.
func (n *Node) at(t float64) Point {
	return n.point.Add(n.heading.Mul(n.secant * (t - n.travel)))
}

// derive computes the effective heading, secant and reflex flag from the
// bounding edge normals. With a single normal (open chain end) the node
// translates with its only edge; with two exactly cancelling normals the
// node runs along the shared edge line instead.
func (n *Node) derive() {
	h0, h1 := n.headings[0], n.headings[1]
	switch {
	case h0.IsZero():
		n.heading = h1
	case h1.IsZero():
		n.heading = h0
	default:
		sum := h0.Add(h1)
		if sum.IsZero() {
			n.heading = h0.Perp()
		} else {
			n.heading = sum.Normalize()
		}
		n.reflex = h0.Cross(h1) < 0
	}
	first := h0
	if first.IsZero() {
		first = h1
	}
	n.secant = 1 / first.Dot(n.heading)
}

// collapseCandidate computes, for each active neighbour, the travel at which
// the shared edge degenerates to a point, and returns the earliest such
// event, or nil when no edge ever collapses (parallel headings), when the
// collapse lies behind the wavefront (negative distance), or when it lies at
// or beyond the given limit. A neighbour sharing this node's exact point is
// skipped; the zero-length edge between rounding duplicates never collapses.
func (n *Node) collapseCandidate(limit float64) *collapseEvent {
	var best *collapseEvent
	for _, nb := range [2]*Node{n.prev, n.next} {
		if nb == nil || nb.point == n.point {
			continue
		}
		h, hN := n.heading, nb.heading
		cos := h.Dot(hN)
		if cos*cos == 1 {
			continue
		}
		d := hN.Mul(cos).Sub(h).Dot(n.point.Sub(nb.point)) / (1 - cos*cos)
		if math.IsNaN(d) || d < 0 {
			continue
		}
		travel := n.travel + d/n.secant
		if math.IsNaN(travel) || travel >= limit {
			continue
		}
		ev := &collapseEvent{
			point:  n.point.Add(h.Mul(d)),
			at:     travel,
			left:   n,
			right:  nb,
		}
		if nb == n.prev {
			ev.left, ev.right = nb, n
		}
		if best == nil || ev.at < best.at {
			best = ev
		}
	}
	return best
}
