package skeleton

// Edge is one directed straight-skeleton edge: a node and the node that
// consumed it. To is always a derived node; From is a derived node or an
// input vertex.
type Edge struct {
	From, To *Node
}

// Skeleton runs the wavefront to full collapse and returns the complete
// skeleton edge list: every emitted event edge plus the edges of any chains
// that never collapse (parallel corridors keep their remnant nodes).
func Skeleton(rings [][]Point, opts ...Option) []Edge {
	var edges []Edge
	w := New(rings, opts...)
	it := w.Progress(Unbounded, func(from, to *Node) {
		edges = append(edges, Edge{From: from, To: to})
	})
	for chain := it.NextNodes(); chain != nil; chain = it.NextNodes() {
		for i := 0; i+1 < len(chain); i++ {
			edges = append(edges, Edge{From: chain[i], To: chain[i+1]})
		}
		if len(chain) > 2 && chain[len(chain)-1].next == chain[0] {
			edges = append(edges, Edge{From: chain[len(chain)-1], To: chain[0]})
		}
	}
	return edges
}
