// Package spatial provides a static bounding-box index over a fixed set of
// rectangles with incremental nearest-first search.
//
// The index is bulk-loaded once and never updated; the wavefront simulator
// rebuilds it per split-search pass. Queries are cursors that yield entries
// in non-decreasing distance from a point, so a caller can stop as soon as
// the distance exceeds its current best bound.
package spatial

import (
	"container/heap"
	"math"
	"sort"
)

// groupSize is the number of entries bounded by one group rectangle.
const groupSize = 16

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bound returns the bounding box of two points in any order.
func Bound(x0, y0, x1, y1 float64) Rect {
	return Rect{
		MinX: math.Min(x0, x1),
		MinY: math.Min(y0, y1),
		MaxX: math.Max(x0, x1),
		MaxY: math.Max(y0, y1),
	}
}

// union returns the smallest rect covering both.
func (r Rect) union(s Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, s.MinX),
		MinY: math.Min(r.MinY, s.MinY),
		MaxX: math.Max(r.MaxX, s.MaxX),
		MaxY: math.Max(r.MaxY, s.MaxY),
	}
}

// dist returns the distance from the point to the rect, zero inside.
func (r Rect) dist(x, y float64) float64 {
	dx := math.Max(0, math.Max(r.MinX-x, x-r.MaxX))
	dy := math.Max(0, math.Max(r.MinY-y, y-r.MaxY))
	return math.Hypot(dx, dy)
}

type entry struct {
	rect Rect
	id   int
}

type group struct {
	rect       Rect
	start, end int
}

// Index is a two-level packed index: entries sorted by center, chunked into
// bounded groups. Sufficient for the simulator's edge counts, where the
// index is rebuilt every pass anyway.
type Index struct {
	entries []entry
	groups  []group
}

// New bulk-loads an index over the given rectangles. Entry ids are the
// indices into the input slice.
func New(rects []Rect) *Index {
	entries := make([]entry, len(rects))
	for i, r := range rects {
		entries[i] = entry{rect: r, id: i}
	}
	sort.Slice(entries, func(i, j int) bool {
		ci := entries[i].rect.MinX + entries[i].rect.MaxX
		cj := entries[j].rect.MinX + entries[j].rect.MaxX
		if ci != cj {
			return ci < cj
		}
		return entries[i].id < entries[j].id
	})
	ix := &Index{entries: entries}
	for start := 0; start < len(entries); start += groupSize {
		end := start + groupSize
		if end > len(entries) {
			end = len(entries)
		}
		g := group{rect: entries[start].rect, start: start, end: end}
		for _, e := range entries[start+1 : end] {
			g.rect = g.rect.union(e.rect)
		}
		ix.groups = append(ix.groups, g)
	}
	return ix
}

// Search starts an incremental nearest-first traversal from the point.
func (ix *Index) Search(x, y float64) *Cursor {
	c := &Cursor{ix: ix, x: x, y: y}
	for gi, g := range ix.groups {
		heap.Push(&c.h, item{dist: g.rect.dist(x, y), group: gi, entry: -1})
	}
	return c
}

// Cursor yields entries in non-decreasing distance from the query point.
// Each entry is yielded at most once, so repeated calls naturally exclude
// the already-visited subset.
type Cursor struct {
	ix   *Index
	x, y float64
	h    itemHeap
}

// Next returns the id and distance of the nearest unvisited entry.
// ok is false once the index is exhausted.
func (c *Cursor) Next() (id int, dist float64, ok bool) {
	for len(c.h) > 0 {
		it := heap.Pop(&c.h).(item)
		if it.entry >= 0 {
			return it.entry, it.dist, true
		}
		g := c.ix.groups[it.group]
		for _, e := range c.ix.entries[g.start:g.end] {
			heap.Push(&c.h, item{dist: e.rect.dist(c.x, c.y), group: -1, entry: e.id})
		}
	}
	return 0, 0, false
}

type item struct {
	dist  float64
	group int
	entry int
}

type itemHeap []item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].entry < h[j].entry
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(item)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
