package advanced

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Positions on the triangulation plane. Vertices that carry a height (see
// Polygon) are r3 vectors whose Z component is the height.
type Point = r2.Point

type Vector = r3.Vector

type Winding int

const (
	CounterClockwise Winding = iota
	Clockwise
)

func (w Winding) Reverse() Winding {
	if w == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

// Sign of the signed area of a ring with this winding.
func (w Winding) Sign() float64 {
	if w == Clockwise {
		return -1
	}
	return 1
}

func (w Winding) String() string {
	if w == Clockwise {
		return "CW"
	}
	return "CCW"
}

// Triangles hold indices into the point array they were built from. They are
// always stored counterclockwise; use Indices to get them in another order.
type Triangle struct {
	A, B, C int
}

type TriangleList []Triangle

type Strategy int

const (
	// Pick the ear whose triangle is closest to equilateral.
	Quality Strategy = iota
	// Pop ears alternately from both ends of the ear set.
	Simple
)

func (s Strategy) String() string {
	if s == Simple {
		return "simple"
	}
	return "quality"
}
