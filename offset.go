package skeleton

import (
	iring "github.com/gogpu/skeleton/internal/ring"
)

// Inset shrinks each counter-clockwise ring inward by margin and returns
// the resulting loops. Loops that degenerate below three points or to zero
// area are dropped; a ring narrower than twice the margin disappears
// entirely.
func Inset(rings [][]Point, margin float64, opts ...Option) [][]Point {
	if margin <= 0 {
		return rings
	}
	w := New(rings, opts...)
	return dropDegenerate(w.Progress(margin, nil).Collect())
}

// Outset grows each counter-clockwise ring outward by margin. Growing is
// shrinking with the orientation reversed: the point order is reversed
// before and after the run.
func Outset(rings [][]Point, margin float64, opts ...Option) [][]Point {
	if margin <= 0 {
		return rings
	}
	reversed := make([][]Point, len(rings))
	for i, r := range rings {
		reversed[i] = fromRing(iring.Reverse(toRing(r)))
	}
	out := Inset(reversed, margin, opts...)
	for i, r := range out {
		out[i] = fromRing(iring.Reverse(toRing(r)))
	}
	return out
}

// Offset offsets each ring by a signed margin: positive margins shrink
// inward, negative margins grow outward.
func Offset(rings [][]Point, margin float64, opts ...Option) [][]Point {
	if margin < 0 {
		return Outset(rings, -margin, opts...)
	}
	return Inset(rings, margin, opts...)
}

// Buffer returns loops enclosing everything within margin of each input
// polyline. Each polyline is doubled into a there-and-back ring whose
// outward offset is the buffer; the U-turn corners at the two ends round
// into end caps, so rounding must not be disabled.
func Buffer(lines [][]Point, margin float64, opts ...Option) [][]Point {
	doubled := make([][]Point, 0, len(lines))
	for _, ln := range lines {
		ln = fromRing(iring.Dedup(toRing(ln), false))
		if len(ln) < 3 {
			continue
		}
		d := make([]Point, 0, 2*len(ln)-2)
		d = append(d, ln...)
		for j := len(ln) - 2; j >= 1; j-- {
			d = append(d, ln[j])
		}
		doubled = append(doubled, d)
	}
	return Outset(doubled, margin, opts...)
}

// CloseGaps fills concavities narrower than gap by growing every ring
// outward by half the gap and shrinking the result back. Openings the
// wavefronts seal on the way out stay sealed on the way back in.
func CloseGaps(rings [][]Point, gap float64, opts ...Option) [][]Point {
	return Inset(Outset(rings, gap/2, opts...), gap/2, opts...)
}

// Smooth rounds away features smaller than radius in both directions: first
// concavities (grow then shrink), then protrusions (shrink then grow).
func Smooth(rings [][]Point, radius float64, opts ...Option) [][]Point {
	closed := Inset(Outset(rings, radius, opts...), radius, opts...)
	return Outset(Inset(closed, radius, opts...), radius, opts...)
}

// dropDegenerate removes loops that no longer bound any area.
func dropDegenerate(loops [][]Point) [][]Point {
	out := loops[:0]
	for _, loop := range loops {
		if len(loop) < 3 || iring.Area(toRing(loop)) == 0 {
			continue
		}
		out = append(out, loop)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
