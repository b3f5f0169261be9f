package advanced

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/fillmesh/dbg"
)

// A face of the region graph: one triangle at first, then whatever merging has
// grown it into. Sides form a single closed loop in order.
type Area struct {
	Index   int
	Sides   []Side
	polygon *Polygon
}

// Vertex indices around the loop, one per side.
func (a *Area) Vertices() []int {
	result := make([]int, len(a.Sides))
	for i, side := range a.Sides {
		result[i] = side.Start
	}
	return result
}

// Vertex positions around the loop, one per side.
func (a *Area) Positions() []Vector {
	result := make([]Vector, len(a.Sides))
	for i, side := range a.Sides {
		result[i] = a.polygon.Position(side.Start)
	}
	return result
}

// Component-wise minimum of the loop positions. This is a bounding box corner,
// not a hull point.
func (a *Area) Min() Vector {
	min := Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	for _, p := range a.Positions() {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
	}
	return min
}

func (a *Area) Max() Vector {
	max := Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, p := range a.Positions() {
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}
	return max
}

// Midpoint of the bounding box (not the centroid).
func (a *Area) Center() Vector {
	return a.Min().Add(a.Max()).Mul(0.5)
}

// The height Arrange compares between areas.
func (a *Area) Height() float64 {
	return a.Center().Z
}

func (a *Area) String() string {
	name := dbg.Name(a)
	if len(a.Sides) == 3 {
		name = aurora.Green(name).String()
	} else {
		name = aurora.Cyan(name).String()
	}
	return fmt.Sprintf("Area %s #%d <%d sides, h: %.3f, vertices: %v>",
		name, a.Index, len(a.Sides), a.Height(), a.Vertices())
}
