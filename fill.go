package fillmesh

import (
	"math"

	"github.com/osuushi/fillmesh/advanced"
	"github.com/pkg/errors"
)

// FillOption configures Fill.
type FillOption func(*fillOptions)

type fillOptions struct {
	strategy    Strategy
	fallback    bool
	subdivision SubdivideOptions
	height      func(Point) float64
	arrange     bool
	maxCount    int
	maxDeltaH   float64
}

func defaultFillOptions() fillOptions {
	return fillOptions{
		strategy:    Quality,
		subdivision: DefaultSubdivideOptions,
		maxCount:    8,
		maxDeltaH:   math.Inf(1),
	}
}

func WithStrategy(strategy Strategy) FillOption {
	return func(o *fillOptions) {
		o.strategy = strategy
	}
}

// If the quality strategy fails, try again with the simple one.
func WithFallback() FillOption {
	return func(o *fillOptions) {
		o.fallback = true
	}
}

func WithSubdivision(opts SubdivideOptions) FillOption {
	return func(o *fillOptions) {
		o.subdivision = opts
	}
}

// Height of each ring point. Without this, the mesh is flat at zero.
func WithHeight(height func(Point) float64) FillOption {
	return func(o *fillOptions) {
		o.height = height
	}
}

// Merge triangles into areas of at most maxCount sides whose heights differ by
// no more than maxDeltaH.
func WithArrange(maxCount int, maxDeltaH float64) FillOption {
	return func(o *fillOptions) {
		o.arrange = true
		o.maxCount = maxCount
		o.maxDeltaH = maxDeltaH
	}
}

// Turn a closed boundary into a region graph: subdivide, triangulate, lift to
// 3D, and merge if WithArrange was given.
func Fill(trajectories []Trajectory, winding Winding, opts ...FillOption) (*Polygon, error) {
	o := defaultFillOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ring := advanced.Subdivide(trajectories, o.subdivision)
	triangles, err := TriangulateList(ring, winding, o.strategy)
	if err != nil && o.fallback && o.strategy == Quality && errors.Is(err, ErrTriangulationFailed) {
		advanced.Logger().Warn("quality triangulation failed, falling back to simple", "error", err)
		triangles, err = TriangulateList(ring, winding, Simple)
	}
	if err != nil {
		return nil, err
	}

	polygon, err := NewPolygonFromTriangles(advanced.Lift(ring, o.height), triangles)
	if err != nil {
		return nil, err
	}
	if o.arrange {
		polygon.Arrange(o.maxCount, o.maxDeltaH)
	}
	return polygon, nil
}
