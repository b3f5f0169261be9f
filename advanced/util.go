package advanced

import "math"

const Tolerance = 1e-9

// Tolerance based float equality. Used where floating point noise would
// otherwise decide between geometrically identical choices.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Shoelace area of a ring. Positive for counterclockwise rings.
func SignedArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.Cross(q)
	}
	return sum / 2
}

func TriangleSignedArea(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a)) / 2
}

// Helper for callers that don't know the winding of their rings. The
// triangulator itself never infers winding.
func WindingOf(points []Point) Winding {
	if SignedArea(points) < 0 {
		return Clockwise
	}
	return CounterClockwise
}

// Inclusive barycentric test: points on an edge or corner count as inside.
func PointInTriangle(p, a, b, c Point) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	denominator := ab.Cross(ac)
	if denominator == 0 {
		return false
	}
	ap := p.Sub(a)
	s := ap.Cross(ac) / denominator
	t := ab.Cross(ap) / denominator
	return s >= 0 && t >= 0 && s+t <= 1
}

// Drop the height of each vertex.
func ProjectXY(vertices []Vector) []Point {
	result := make([]Point, len(vertices))
	for i, v := range vertices {
		result[i] = Point{X: v.X, Y: v.Y}
	}
	return result
}

// Give each point a height. A nil height function puts everything at zero.
func Lift(points []Point, height func(Point) float64) []Vector {
	result := make([]Vector, len(points))
	for i, p := range points {
		var z float64
		if height != nil {
			z = height(p)
		}
		result[i] = Vector{X: p.X, Y: p.Y, Z: z}
	}
	return result
}
