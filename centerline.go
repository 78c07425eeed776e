package skeleton

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// Centerlines extracts one medial-axis path per input ring or polyline.
//
// The wavefront runs unbounded; every emitted edge whose endpoints are both
// derived nodes (Collapse or Split) is an internal skeleton edge, and the
// chains left uncollapsed at termination contribute their remnant edges as
// well. The internal edges attributed to each ring form a junction graph,
// from which the longest path is selected by a double farthest-point
// traversal starting at the deepest node.
//
// Edges below minTravel are ignored, which prunes short spurs near the
// boundary. Closed rings with negative signed area (holes) yield no path.
func Centerlines(rings [][]Point, minTravel float64, opts ...Option) [][]Point {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	edges := Skeleton(rings, opts...)
	internal := edges[:0]
	for _, e := range edges {
		if e.From.kind == KindVertex || e.To.kind == KindVertex {
			continue
		}
		if e.From.travel < minTravel || e.To.travel < minTravel {
			continue
		}
		internal = append(internal, e)
	}
	logger().Debug("centerline graph", "edges", len(edges), "internal", len(internal))

	var nodes []*Node
	ids := make(map[*Node]int64)
	id := func(n *Node) int64 {
		if v, ok := ids[n]; ok {
			return v
		}
		v := int64(len(nodes))
		ids[n] = v
		nodes = append(nodes, n)
		return v
	}

	var out [][]Point
	for ri, ring := range rings {
		if o.closed && ringArea(ring) < 0 {
			continue
		}
		g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		var members []int64
		seen := make(map[int64]bool)
		deepest := int64(-1)
		for _, e := range internal {
			_, inA := e.From.whence[ri]
			_, inB := e.To.whence[ri]
			if !inA && !inB {
				continue
			}
			ida, idb := id(e.From), id(e.To)
			if ida == idb {
				continue
			}
			g.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(ida),
				T: simple.Node(idb),
				W: e.From.point.Distance(e.To.point),
			})
			for _, v := range [2]int64{ida, idb} {
				if !seen[v] {
					seen[v] = true
					members = append(members, v)
				}
				if deepest < 0 || deeper(nodes[v], nodes[deepest]) {
					deepest = v
				}
			}
		}
		if len(members) < 2 {
			continue
		}
		u := farthest(g, deepest, members)
		v := farthest(g, u, members)
		steps, _ := path.DijkstraFrom(simple.Node(u), g).To(v)
		if len(steps) < 2 {
			continue
		}
		pts := make([]Point, len(steps))
		for i, gn := range steps {
			pts[i] = nodes[gn.ID()].point
		}
		out = append(out, pts)
	}
	return out
}

// deeper orders nodes by travel for the deepest-node seed, breaking ties by
// position so the choice is reproducible.
func deeper(a, b *Node) bool {
	if a.travel != b.travel {
		return a.travel > b.travel
	}
	if a.point.X != b.point.X {
		return a.point.X < b.point.X
	}
	return a.point.Y < b.point.Y
}

// farthest returns the member at the greatest shortest-path distance from
// the start node, ignoring unreachable members.
func farthest(g *simple.WeightedUndirectedGraph, from int64, members []int64) int64 {
	sp := path.DijkstraFrom(simple.Node(from), g)
	best, bestDist := from, 0.0
	for _, m := range members {
		d := sp.WeightTo(m)
		if math.IsInf(d, 1) {
			continue
		}
		if d > bestDist || (d == bestDist && m < best) {
			best, bestDist = m, d
		}
	}
	return best
}
