package advanced

import "math"

// Ceiling on the recursion depth of curve subdivision. A curve is never cut
// into more than 2^DefaultMaxDepth pieces; past that the approximation just
// gets coarser.
const DefaultMaxDepth = 5

type SubdivideOptions struct {
	// A piece turning more than this (radians) is split, unless it is
	// already shorter than MinLength.
	MinAngle  float64
	MinLength float64
	// A piece longer than this is always split.
	MaxLength float64
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

var DefaultSubdivideOptions = SubdivideOptions{
	MinAngle:  5 * math.Pi / 180,
	MinLength: 0.5,
	MaxLength: 10,
	MaxDepth:  DefaultMaxDepth,
}

func (o SubdivideOptions) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o SubdivideOptions) mustSplit(t Trajectory) bool {
	length := t.Magnitude()
	return (t.DeltaAngle() > o.MinAngle && length >= o.MinLength) || length > o.MaxLength
}

// Cut a trajectory into nearly straight pieces, in order. The trajectory is
// always split at least once, so a curve that doubles back on itself never
// collapses into a single edge.
func SubdivideTrajectory(t Trajectory, opts SubdivideOptions) []Trajectory {
	first, second := t.Divide()
	var leaves []Trajectory
	leaves = subdivide(leaves, first, opts, 1)
	leaves = subdivide(leaves, second, opts, 1)
	return leaves
}

func subdivide(leaves []Trajectory, t Trajectory, opts SubdivideOptions, depth int) []Trajectory {
	if !opts.mustSplit(t) {
		return append(leaves, t)
	}
	if depth >= opts.maxDepth() {
		Logger().Warn("recursion limit reached, emitting coarse piece",
			"depth", depth,
			"length", t.Magnitude(),
			"angle", t.DeltaAngle(),
		)
		return append(leaves, t)
	}
	first, second := t.Divide()
	leaves = subdivide(leaves, first, opts, depth+1)
	return subdivide(leaves, second, opts, depth+1)
}

// Turn a closed boundary into the point ring fed to the triangulator: the
// start of every piece of every trajectory, in order. The winding of the
// ring is whatever the trajectories trace; it is not inspected here.
func Subdivide(trajectories []Trajectory, opts SubdivideOptions) []Point {
	var points []Point
	for _, t := range trajectories {
		for _, piece := range SubdivideTrajectory(t, opts) {
			points = append(points, piece.StartPosition())
		}
	}
	return points
}
