package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation of a ring without duplicate points is
// valid. The rules are:
//
//  1. There are exactly n-2 triangles.
//  2. Every triangle is stored counterclockwise, and has the ring's winding
//     when read back in that winding.
//  3. Every ring edge is an edge of some triangle.
//  4. The sum of the areas of all triangles is equal to the area of the ring.
//  5. No sample point lies strictly inside two triangles.
func AssertValidTriangulation(t *testing.T, points []Point, winding Winding, triangles TriangleList) {
	require.Len(t, triangles, len(points)-2, "triangle count")

	edges := make(map[[2]int]struct{})
	addEdge := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		edges[[2]int{a, b}] = struct{}{}
	}

	var area float64
	for _, tri := range triangles {
		require.Greater(t, tri.SignedArea(points), 0.0, "triangle %v is not counterclockwise", tri)
		indices := tri.Indices(winding)
		signed := TriangleSignedArea(points[indices[0]], points[indices[1]], points[indices[2]])
		require.Greater(t, signed*winding.Sign(), 0.0, "triangle %v does not have winding %s", tri, winding)
		area += tri.SignedArea(points)
		addEdge(tri.A, tri.B)
		addEdge(tri.B, tri.C)
		addEdge(tri.C, tri.A)
	}

	for i := range points {
		a, b := i, CircularIndex(i+1, len(points))
		if a > b {
			a, b = b, a
		}
		_, ok := edges[[2]int{a, b}]
		require.True(t, ok, "ring edge %d-%d is not covered", a, b)
	}

	require.InDelta(t, math.Abs(SignedArea(points)), area, 1e-9, "area is not conserved")

	assertNoOverlap(t, points, triangles)
}

func assertNoOverlap(t *testing.T, points []Point, triangles TriangleList) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	step := math.Max(maxX-minX, maxY-minY) / 47

	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			count := 0
			for _, tri := range triangles {
				if strictlyInside(p, points[tri.A], points[tri.B], points[tri.C]) {
					count++
				}
			}
			assert.LessOrEqual(t, count, 1, "point %v is inside %d triangles", p, count)
		}
	}
}

func strictlyInside(p, a, b, c Point) bool {
	const margin = 1e-9
	ab := b.Sub(a)
	ac := c.Sub(a)
	denominator := ab.Cross(ac)
	if denominator == 0 {
		return false
	}
	ap := p.Sub(a)
	s := ap.Cross(ac) / denominator
	t := ab.Cross(ap) / denominator
	return s > margin && t > margin && s+t < 1-margin
}

// Mean over triangles of the squared deviation of edge lengths from their mean.
func meanEdgeVariance(points []Point, triangles TriangleList) float64 {
	var total float64
	for _, tri := range triangles {
		a, b, c := points[tri.A], points[tri.B], points[tri.C]
		lengths := [3]float64{a.Sub(b).Norm(), b.Sub(c).Norm(), c.Sub(a).Norm()}
		mean := (lengths[0] + lengths[1] + lengths[2]) / 3
		for _, l := range lengths {
			total += (l - mean) * (l - mean)
		}
	}
	return total / float64(len(triangles))
}

// Run fn and convert a TriangulateError panic into an error.
func catch(fn func()) (err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}
