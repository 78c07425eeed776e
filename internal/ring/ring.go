// Package ring provides iteration and cleanup helpers over point sequences
// forming polygon rings or open polylines.
package ring

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Dedup removes consecutive coincident points. For closed rings the
// comparison wraps around, so a duplicated closing point is dropped too.
func Dedup(pts []Point, closed bool) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	if closed {
		for len(out) > 1 && out[len(out)-1] == out[0] {
			out = out[:len(out)-1]
		}
	}
	return out
}

// Reverse returns the points in reverse order.
func Reverse(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// Area returns the signed area of the ring: positive for counter-clockwise
// orientation, negative for clockwise.
func Area(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	sum := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Segments calls fn for every segment of the sequence, including the
// closing segment for closed rings. It stops early if fn returns false.
func Segments(pts []Point, closed bool, fn func(a, b Point) bool) {
	n := len(pts)
	if n < 2 {
		return
	}
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		if !fn(pts[i], pts[(i+1)%n]) {
			return
		}
	}
}
