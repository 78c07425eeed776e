package skeleton

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// FromOrbRing converts an orb ring (closed with a duplicated final point)
// into the open point sequence the wavefront consumes.
func FromOrbRing(r orb.Ring) []Point {
	pts := make([]Point, 0, len(r))
	for _, p := range r {
		pts = append(pts, Pt(p.X(), p.Y()))
	}
	if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// ToOrbRing converts a point loop into an orb ring, duplicating the first
// point at the end per the orb convention.
func ToOrbRing(pts []Point) orb.Ring {
	r := make(orb.Ring, 0, len(pts)+1)
	for _, p := range pts {
		r = append(r, orb.Point{p.X, p.Y})
	}
	if len(r) > 0 {
		r = append(r, r[0])
	}
	return r
}

// FromOrbLineString converts an orb line string into an open polyline.
func FromOrbLineString(ls orb.LineString) []Point {
	pts := make([]Point, len(ls))
	for i, p := range ls {
		pts[i] = Pt(p.X(), p.Y())
	}
	return pts
}

// ToOrbLineString converts an open path into an orb line string.
func ToOrbLineString(pts []Point) orb.LineString {
	ls := make(orb.LineString, len(pts))
	for i, p := range pts {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return ls
}

// InsetPolygon shrinks an orb polygon inward by margin. The exterior ring
// (counter-clockwise) and any holes (clockwise) all advance into the solid,
// and fronts meeting across the interior merge through split events. The
// result is returned as loose rings because an inset may split a polygon
// into several parts.
func InsetPolygon(poly orb.Polygon, margin float64, opts ...Option) []orb.Ring {
	rings := make([][]Point, len(poly))
	for i, r := range poly {
		rings[i] = FromOrbRing(r)
	}
	loops := Inset(rings, margin, opts...)
	out := make([]orb.Ring, len(loops))
	for i, l := range loops {
		out[i] = ToOrbRing(l)
	}
	return out
}

// ringArea returns the signed area of a point loop, positive for
// counter-clockwise orientation.
func ringArea(pts []Point) float64 {
	return planar.Area(ToOrbRing(pts))
}
