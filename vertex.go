package skeleton

import "math"

// newVertex creates an input-corner node from a coordinate and the unit
// normals of its one or two incident edges. An absent normal (at the end of
// an open polyline) is passed as the zero vector. The vertex starts as the
// sole member of its own splits tracking set.
func newVertex(p Point, prevNormal, nextNormal Vec2, ring int) *Node {
	n := &Node{
		kind:     KindVertex,
		point:    p,
		headings: [2]Vec2{prevNormal, nextNormal},
		whence:   map[int]struct{}{ring: {}},
	}
	n.derive()
	n.splits = []*Node{n}
	return n
}

// newDerived creates a Collapse or Split replacement node at the given event
// point and travel, bounded by the two surviving edge normals.
func newDerived(kind Kind, p Point, travel float64, h0, h1 Vec2) *Node {
	n := &Node{
		kind:     kind,
		point:    p,
		travel:   travel,
		headings: [2]Vec2{h0, h1},
		whence:   map[int]struct{}{},
	}
	n.derive()
	n.splits = []*Node{n}
	return n
}

// roundCorner subdivides a reflex corner into one vertex per angular step of
// at most tol radians, approximating the arc the offset corner sweeps. The
// synthetic vertices all sit at the corner point; their headings divide the
// swept angle into equal fractions. A U-turn corner (exactly opposite
// normals, as at the cap of a doubled polyline) sweeps half a turn.
func roundCorner(p Point, n0, n1 Vec2, ring int, tol float64) []*Node {
	sweep := n0.AngleTo(n1)
	if n0.Cross(n1) == 0 && n0.Dot(n1) < 0 {
		sweep = -math.Pi
	}
	steps := 1
	if tol > 0 {
		// The small epsilon keeps exact multiples of the tolerance from
		// rounding down under floating point.
		steps = int(math.Abs(sweep)/tol+1e-9) + 1
	}
	if steps == 1 {
		return []*Node{newVertex(p, n0, n1, ring)}
	}
	delta := sweep / float64(steps)
	out := make([]*Node, 0, steps)
	prev := n0
	for i := 1; i <= steps; i++ {
		next := n1
		if i < steps {
			next = n0.Rotate(delta * float64(i))
		}
		out = append(out, newVertex(p, prev, next, ring))
		prev = next
	}
	return out
}

// splitCandidate tests whether this node's advancing wavefront ray meets the
// opposing edge between e0 and e1, and if so at what travel. The candidate
// is rejected when the node coincides with either edge endpoint, when the
// meeting lies behind the wavefront or at or beyond the limit, and when the
// intersection falls outside the edge's currently valid span.
func (n *Node) splitCandidate(e0, e1 *Node, limit float64) *splitEvent {
	if n.point == e0.point || n.point == e1.point {
		return nil
	}
	dir := e0.headings[1]
	travel := dir.Dot(n.point.Sub(e0.point)) / (1 - n.secant*n.heading.Dot(dir))
	if math.IsNaN(travel) || math.IsInf(travel, 0) || travel < 0 || travel >= limit {
		return nil
	}
	p := n.point.Add(n.heading.Mul(n.secant * travel))
	if !splitFits(p, e0, e1) {
		return nil
	}
	return &splitEvent{
		point:  p,
		at:     travel,
		source: n,
		origin: e0,
	}
}

// splitFits reports whether the candidate point lies within the valid span
// of the edge from e0 to e1: on the advancing side of the edge and between
// the trajectories of its two endpoints.
func splitFits(p Point, e0, e1 *Node) bool {
	dir := e0.headings[1]
	if p.Sub(e0.point).Dot(dir) < 0 {
		return false
	}
	if p.Sub(e0.point).Cross(e0.heading) < 0 {
		return false
	}
	if p.Sub(e1.point).Cross(e1.heading) > 0 {
		return false
	}
	return true
}
