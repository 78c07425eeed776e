package skeleton

import "math"

// DefaultRounding is the default angular tolerance, in radians, used to
// subdivide reflex corners into arc approximations (15 degrees).
const DefaultRounding = math.Pi / 12

// Option configures a Wavefront during creation.
// Use functional options to customize Wavefront behavior.
//
// Example:
//
//	// Closed rings with default reflex rounding
//	w := skeleton.New(rings)
//
//	// Open polylines, sharp reflex corners
//	w := skeleton.New(lines, skeleton.Open(), skeleton.WithoutRounding())
type Option func(*options)

// options holds optional configuration for Wavefront creation.
type options struct {
	rounding float64
	closed   bool
	splits   bool
}

// defaultOptions returns the default wavefront options.
func defaultOptions() options {
	return options{
		rounding: DefaultRounding,
		closed:   true,
		splits:   true,
	}
}

// WithRounding sets the angular tolerance, in radians, for subdividing
// reflex corners. A reflex corner whose wavefront sweeps an angle larger
// than the tolerance is split into several vertices at intermediate
// headings so that offsetting produces a rounded rather than spiky corner.
// A value of zero or less disables rounding entirely.
func WithRounding(angle float64) Option {
	return func(o *options) {
		o.rounding = angle
	}
}

// WithoutRounding disables reflex corner rounding.
// Reflex corners stay sharp, producing mitered spikes when offsetting.
func WithoutRounding() Option {
	return func(o *options) {
		o.rounding = 0
	}
}

// Open marks the input sequences as open polylines rather than closed rings.
// The neighbour chains are left unclosed and the chain ends become terminal
// nodes, which participate in split detection so that coincident path ends
// miter together.
func Open() Option {
	return func(o *options) {
		o.closed = false
	}
}

// WithoutSplits disables split event detection.
// Reflex and terminal wavefront rays then pass through opposing edges
// instead of dividing the chain there. This is only safe for inputs known
// to be free of self-approach, such as the second pass of a round-trip
// offset.
func WithoutSplits() Option {
	return func(o *options) {
		o.splits = false
	}
}
