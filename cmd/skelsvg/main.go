// Command skelsvg renders a demonstration of the wavefront engine as an SVG
// document on stdout: a sample shape, its straight skeleton, and a family
// of inward offsets.
//
// Usage:
//
//	skelsvg > demo.svg
package main

import (
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/skeleton"
)

const scale = 24

// sample is a notched square: the notch makes two corners reflex so the
// skeleton shows split events as well as collapses.
var sample = []skeleton.Point{
	{X: 0, Y: 0}, {X: 14, Y: 0}, {X: 14, Y: 14}, {X: 9, Y: 14},
	{X: 9, Y: 6}, {X: 5, Y: 6}, {X: 5, Y: 14}, {X: 0, Y: 14},
}

func main() {
	canvas := svg.New(os.Stdout)
	canvas.Start(16*scale, 16*scale)
	canvas.Rect(0, 0, 16*scale, 16*scale, "fill:white")

	drawLoop(canvas, sample, "fill:none;stroke:black;stroke-width:3")

	// Skeleton edges from an unbounded run.
	for _, e := range skeleton.Skeleton([][]skeleton.Point{sample}, skeleton.WithoutRounding()) {
		canvas.Line(px(e.From.Point().X), px(e.From.Point().Y),
			px(e.To.Point().X), px(e.To.Point().Y),
			"stroke:crimson;stroke-width:1")
	}

	// Nested inward offsets.
	for _, margin := range []float64{1, 2, 3} {
		for _, loop := range skeleton.Inset([][]skeleton.Point{sample}, margin) {
			drawLoop(canvas, loop, "fill:none;stroke:steelblue;stroke-width:1")
		}
	}

	canvas.End()
}

func drawLoop(canvas *svg.SVG, loop []skeleton.Point, style string) {
	xs := make([]int, len(loop))
	ys := make([]int, len(loop))
	for i, p := range loop {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	canvas.Polygon(xs, ys, style)
}

func px(v float64) int {
	return int(v*scale) + scale
}
