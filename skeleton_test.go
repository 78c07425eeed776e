package skeleton

import (
	"math"
	"testing"
)

func TestSkeleton_Square(t *testing.T) {
	edges := Skeleton([][]Point{sq(10)})
	if len(edges) != 5 {
		t.Fatalf("got %d edges, want 5", len(edges))
	}
	vertices := 0
	for _, e := range edges {
		if !e.To.Point().Approx(Pt(5, 5), 1e-9) {
			t.Errorf("edge ends at %v, want (5,5)", e.To.Point())
		}
		if math.Abs(e.To.Travel()-5) > 1e-9 {
			t.Errorf("edge travel = %v, want 5", e.To.Travel())
		}
		if e.From.Kind() == KindVertex {
			vertices++
		}
	}
	if vertices != 4 {
		t.Errorf("%d edges start at input vertices, want 4", vertices)
	}
}

func TestSkeleton_RemnantChain(t *testing.T) {
	// A lone open segment never collapses; its chain survives as one
	// remnant skeleton edge between the two input vertices.
	edges := Skeleton([][]Point{{{0, 0}, {10, 0}}}, Open())
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	e := edges[0]
	if e.From.Kind() != KindVertex || e.To.Kind() != KindVertex {
		t.Errorf("remnant edge kinds %v %v, want vertex vertex", e.From.Kind(), e.To.Kind())
	}
	if e.From.Point() != Pt(0, 0) || e.To.Point() != Pt(10, 0) {
		t.Errorf("remnant edge %v to %v", e.From.Point(), e.To.Point())
	}
}
