// Triangulation and region merging for curved outlines.
//
// A closed boundary made of trajectories (straight segments, Bezier curves, or
// anything implementing Trajectory) is subdivided into a ring of points,
// ear-clipped into triangles, and the triangles are then greedily merged into
// larger areas that stay under a side count and height difference limit.
//
// The steps can be driven one by one through the advanced package; this
// package wraps them with plain error returns.
package fillmesh

import (
	"log/slog"

	"github.com/osuushi/fillmesh/advanced"
)

type Point = advanced.Point
type Vector = advanced.Vector
type Winding = advanced.Winding
type Triangle = advanced.Triangle
type TriangleList = advanced.TriangleList
type Strategy = advanced.Strategy
type Trajectory = advanced.Trajectory
type Segment = advanced.Segment
type Bezier = advanced.Bezier
type SubdivideOptions = advanced.SubdivideOptions
type Polygon = advanced.Polygon
type Area = advanced.Area
type Side = advanced.Side

const (
	CounterClockwise = advanced.CounterClockwise
	Clockwise        = advanced.Clockwise

	Quality = advanced.Quality
	Simple  = advanced.Simple
)

var (
	ErrDegeneratePolygon   = advanced.ErrDegeneratePolygon
	ErrTriangulationFailed = advanced.ErrTriangulationFailed
	ErrInvalidTriangles    = advanced.ErrInvalidTriangles

	DefaultSubdivideOptions = advanced.DefaultSubdivideOptions
)

// Set the logger for the engine. Logging is off by default.
func SetLogger(l *slog.Logger) {
	advanced.SetLogger(l)
}

// Cut closed boundary trajectories into the point ring used for
// triangulation.
func Subdivide(trajectories []Trajectory, opts SubdivideOptions) []Point {
	return advanced.Subdivide(trajectories, opts)
}

// Fast ear clipping. The ring must be simple and listed in the given winding;
// the winding is never inferred. The result is an index buffer into points,
// three per triangle, in the same winding.
func TriangulateSimple(points []Point, winding Winding) ([]int, error) {
	return triangulate(points, winding, advanced.Simple)
}

// Like TriangulateSimple, but at each step clips the ear whose triangle is
// closest to equilateral. Slower, with better shaped triangles.
func Triangulate(points []Point, winding Winding) ([]int, error) {
	return triangulate(points, winding, advanced.Quality)
}

func triangulate(points []Point, winding Winding, strategy Strategy) (result []int, err error) {
	triangles, err := TriangulateList(points, winding, strategy)
	if err != nil {
		return nil, err
	}
	return triangles.Flatten(winding), nil
}

// Ear clipping with the triangles kept as a list.
func TriangulateList(points []Point, winding Winding, strategy Strategy) (result TriangleList, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.ClipEars(points, winding, strategy), nil
}

// Build the region graph from vertex positions and an index buffer, three
// indices per triangle.
func NewPolygon(points []Vector, indices []int) (result *Polygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.NewPolygon(points, advanced.TrianglesFromIndices(indices, advanced.CounterClockwise)), nil
}

func NewPolygonFromTriangles(points []Vector, triangles TriangleList) (result *Polygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.NewPolygon(points, triangles), nil
}
