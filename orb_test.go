package skeleton

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func TestOrbRing_Conversions(t *testing.T) {
	r := orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	pts := FromOrbRing(r)
	if len(pts) != 4 {
		t.Fatalf("FromOrbRing kept %d points, want 4 without the closing dup", len(pts))
	}
	back := ToOrbRing(pts)
	if len(back) != 5 {
		t.Fatalf("ToOrbRing produced %d points, want 5 with the closing dup", len(back))
	}
	if back[0] != back[4] {
		t.Error("ring is not closed")
	}
	for i, p := range r {
		if back[i] != p {
			t.Errorf("point %d = %v, want %v", i, back[i], p)
		}
	}
}

func TestOrbLineString_Conversions(t *testing.T) {
	ls := orb.LineString{{0, 0}, {3, 1}, {7, 1}}
	pts := FromOrbLineString(ls)
	back := ToOrbLineString(pts)
	if len(back) != len(ls) {
		t.Fatalf("round trip changed length: %d != %d", len(back), len(ls))
	}
	for i := range ls {
		if back[i] != ls[i] {
			t.Errorf("point %d = %v, want %v", i, back[i], ls[i])
		}
	}
}

func TestInsetPolygon_WithHole(t *testing.T) {
	poly := orb.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{4, 4}, {4, 6}, {6, 6}, {6, 4}, {4, 4}}, // clockwise hole
	}
	rings := InsetPolygon(poly, 1, WithoutRounding())
	if len(rings) != 2 {
		t.Fatalf("got %d rings, want 2", len(rings))
	}
	// The exterior shrinks, the hole grows, both by the margin.
	if a := planar.Area(rings[0]); a < 64-1e-9 || a > 64+1e-9 {
		t.Errorf("exterior area = %v, want 64", a)
	}
	if a := planar.Area(rings[1]); a < -16-1e-9 || a > -16+1e-9 {
		t.Errorf("hole area = %v, want -16", a)
	}
}

func TestRingArea(t *testing.T) {
	if a := ringArea(sq(10)); a != 100 {
		t.Errorf("ccw square area = %v, want 100", a)
	}
	cw := []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	if a := ringArea(cw); a != -100 {
		t.Errorf("cw square area = %v, want -100", a)
	}
}
