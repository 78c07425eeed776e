// Package skeleton computes straight skeletons of 2D polygon rings and open
// polylines by discrete-event wavefront propagation, and derives polygon
// offsetting, buffering, gap closing, smoothing and centerline extraction
// from them.
//
// # Overview
//
// The wavefront is a uniformly shrinking copy of the input boundary: every
// edge translates along its own normal at unit speed. Two event kinds drive
// the simulation. An edge collapse merges the two endpoints of an edge that
// shrank to zero length; a vertex split occurs when a reflex or terminal
// vertex's advancing ray meets an opposing edge, dividing one chain into
// two or merging two chains into one. Events are applied in non-decreasing
// travel order from a priority queue that tolerates stale entries: liveness
// is re-checked when an event is popped.
//
// # Quick Start
//
//	import "github.com/gogpu/skeleton"
//
//	ring := []skeleton.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
//
//	// Offset polygons: shrink the ring inward by 2.
//	loops := skeleton.Inset([][]skeleton.Point{ring}, 2)
//
//	// Skeleton edges: run the wavefront to full collapse.
//	edges := skeleton.Skeleton([][]skeleton.Point{ring})
//
//	// Or drive the engine directly with a per-event callback.
//	w := skeleton.New([][]skeleton.Point{ring})
//	w.Progress(skeleton.Unbounded, func(from, to *skeleton.Node) {
//	    // one directed skeleton edge per consumed node
//	}).Collect()
//
// # Coordinate System
//
// Rings are ordered counter-clockwise in a right-handed coordinate system;
// the wavefront then advances into the interior. Clockwise input advances
// outward instead, which is how Outset and Buffer are built. Input is
// assumed simple and consistently oriented; it is not validated.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Wavefront, Node, LoopIter, the offset and centerline
//     consumers, and orb interop
//   - Internal: ring (point-sequence helpers), spatial (edge index for
//     split searches)
package skeleton

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
