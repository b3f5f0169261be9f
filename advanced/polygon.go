package advanced

import (
	"github.com/pkg/errors"
)

// The region graph. The polygon owns the vertex positions; areas and sides
// only ever hold indices into them. After construction the only mutation is
// merging areas, so the area count only ever goes down.
type Polygon struct {
	points []Vector
	areas  []*Area
}

// One area per triangle, with sides in triangle order. Panics with
// ErrInvalidTriangles if a triangle refers to a missing point.
func NewPolygon(points []Vector, triangles TriangleList) *Polygon {
	polygon := &Polygon{
		points: points,
		areas:  make([]*Area, 0, len(triangles)),
	}
	for i, t := range triangles {
		indices := [3]int{t.A, t.B, t.C}
		area := &Area{Index: i, Sides: make([]Side, 3), polygon: polygon}
		for j, start := range indices {
			end := indices[(j+1)%3]
			if start < 0 || start >= len(points) {
				throw(ErrInvalidTriangles, "triangle %d refers to point %d of %d", i, start, len(points))
			}
			area.Sides[j] = Side{Area: i, Index: j, Start: start, End: end, ConnectedTo: -1}
		}
		polygon.areas = append(polygon.areas, area)
	}
	return polygon
}

func (p *Polygon) Position(index int) Vector {
	return p.points[index]
}

func (p *Polygon) Points() []Vector {
	return p.points
}

func (p *Polygon) Len() int {
	return len(p.areas)
}

// The current areas in list order. The slice is a copy; the areas are not.
func (p *Polygon) Areas() []*Area {
	result := make([]*Area, len(p.areas))
	copy(result, p.areas)
	return result
}

// Every pair of sides, one from each area, that walk the same edge in
// opposite directions. This has no side effects.
func SharedSides(a, b *Area) []SidePair {
	if a == b {
		return nil
	}
	var pairs []SidePair
	for i, sideA := range a.Sides {
		for j, sideB := range b.Sides {
			if sideA.Matches(sideB) {
				pairs = append(pairs, SidePair{i, j})
			}
		}
	}
	return pairs
}

// Record adjacency on both sides of every pair.
func Link(a, b *Area, pairs []SidePair) {
	for _, pair := range pairs {
		a.Sides[pair.A].ConnectedTo = b.Index
		b.Sides[pair.B].ConnectedTo = a.Index
	}
}

// Find where two areas touch, and link the shared sides. The connection is
// only reported when each area's shared sides form one unbroken run; merging
// across two separate runs would enclose a hole.
func (p *Polygon) IsConnected(a, b *Area) (Connection, bool) {
	pairs := SharedSides(a, b)
	if len(pairs) == 0 {
		return Connection{}, false
	}
	Link(a, b, pairs)

	positionsA := make([]int, len(pairs))
	positionsB := make([]int, len(pairs))
	for i, pair := range pairs {
		positionsA[i] = pair.A
		positionsB[i] = pair.B
	}
	startA, endA, okA := sharedRun(len(a.Sides), positionsA)
	startB, endB, okB := sharedRun(len(b.Sides), positionsB)
	if !okA || !okB {
		return Connection{}, false
	}
	return Connection{
		Side1Start: startA, Side1End: endA,
		Side2Start: startB, Side2End: endB,
	}, true
}

// Bounds of the single circular run formed by the given loop positions.
func sharedRun(n int, positions []int) (start, end int, ok bool) {
	shared := make([]bool, n)
	for _, i := range positions {
		shared[i] = true
	}
	start = -1
	for i := 0; i < n; i++ {
		if shared[i] && !shared[CircularIndex(i-1, n)] {
			if start >= 0 {
				return 0, 0, false // more than one run
			}
			start = i
		}
	}
	if start < 0 {
		return 0, 0, false // the whole loop, or nothing
	}
	end = start
	for shared[CircularIndex(end+1, n)] {
		end = CircularIndex(end+1, n)
	}
	return start, end, true
}

// Splice two areas into one, dropping the shared run. The new area gets the
// next unused index and goes to the end of the list; both sources are removed.
// Sides of other areas that pointed at either source now point at the new
// area.
func (p *Polygon) Connect(a, b *Area, c Connection) *Area {
	index := p.nextIndex()
	sides := make([]Side, 0, len(a.Sides)+len(b.Sides))
	sides = appendLoop(sides, a.Sides, c.Side1End+1, c.Side1Start)
	sides = appendLoop(sides, b.Sides, c.Side2End+1, c.Side2Start)
	for i := range sides {
		sides[i].Area = index
		sides[i].Index = i
	}
	merged := &Area{Index: index, Sides: sides, polygon: p}

	// Remove the later position first so the earlier one stays valid
	positionA, positionB := p.position(a), p.position(b)
	if positionA < positionB {
		positionA, positionB = positionB, positionA
	}
	p.removeAt(positionA)
	p.removeAt(positionB)
	p.areas = append(p.areas, merged)

	for _, area := range p.areas {
		for i := range area.Sides {
			if area.Sides[i].ConnectedTo == a.Index || area.Sides[i].ConnectedTo == b.Index {
				area.Sides[i].ConnectedTo = index
			}
		}
	}
	return merged
}

// Sides of a loop from position `from` up to, but not including, `to`,
// wrapping around.
func appendLoop(dst []Side, loop []Side, from, to int) []Side {
	n := len(loop)
	to = CircularIndex(to, n)
	for i := CircularIndex(from, n); i != to; i = CircularIndex(i+1, n) {
		dst = append(dst, loop[i])
	}
	return dst
}

func (p *Polygon) nextIndex() int {
	if len(p.areas) == 0 {
		return 0
	}
	max := p.areas[0].Index
	for _, area := range p.areas[1:] {
		if area.Index > max {
			max = area.Index
		}
	}
	return max + 1
}

func (p *Polygon) position(area *Area) int {
	for i, candidate := range p.areas {
		if candidate == area {
			return i
		}
	}
	panic("area does not belong to this polygon")
}

func (p *Polygon) removeAt(i int) {
	copy(p.areas[i:], p.areas[i+1:])
	p.areas[len(p.areas)-1] = nil
	p.areas = p.areas[:len(p.areas)-1]
}

// Greedily merge touching areas. A pair is skipped when the merged area would
// have more than maxCount sides, or when their heights differ by more than
// maxDeltaH. After each merge the scan resumes one area back, since positions
// have shifted.
//
// This is first-match greedy and depends on area order. It does not find the
// fewest possible areas.
func (p *Polygon) Arrange(maxCount int, maxDeltaH float64) {
	for i := 0; i < len(p.areas); i++ {
		for j := i + 1; j < len(p.areas); j++ {
			a, b := p.areas[i], p.areas[j]
			if len(a.Sides)+len(b.Sides) > maxCount {
				continue
			}
			heightA, heightB := a.Height(), b.Height()
			if max(heightA, heightB)-min(heightA, heightB) > maxDeltaH {
				continue
			}
			connection, ok := p.IsConnected(a, b)
			if !ok {
				continue
			}
			merged := p.Connect(a, b, connection)
			Logger().Debug("merged areas",
				"a", a.Index,
				"b", b.Index,
				"merged", merged,
			)
			i = max(i-2, -1)
			break
		}
	}
}

// Check the structural invariants: every loop is closed and numbered in
// order, area indices are unique, and each side's reverse edge belongs to at
// most one other area.
func (p *Polygon) Validate() error {
	seen := make(map[int]struct{}, len(p.areas))
	type edge struct{ start, end int }
	owners := make(map[edge][]int)
	for _, area := range p.areas {
		if _, ok := seen[area.Index]; ok {
			return errors.Errorf("duplicate area index %d", area.Index)
		}
		seen[area.Index] = struct{}{}
		if len(area.Sides) < 3 {
			return errors.Errorf("area %d has %d sides", area.Index, len(area.Sides))
		}
		for i, side := range area.Sides {
			if side.Area != area.Index || side.Index != i {
				return errors.Errorf("side %d of area %d is labelled %d/%d", i, area.Index, side.Area, side.Index)
			}
			next := area.Sides[CircularIndex(i+1, len(area.Sides))]
			if side.End != next.Start {
				return errors.Errorf("area %d is not closed at side %d", area.Index, i)
			}
			owners[edge{side.Start, side.End}] = append(owners[edge{side.Start, side.End}], area.Index)
		}
	}
	for _, area := range p.areas {
		for _, side := range area.Sides {
			count := 0
			for _, owner := range owners[edge{side.End, side.Start}] {
				if owner != area.Index {
					count++
				}
			}
			if count > 1 {
				return errors.Errorf("side %d-%d of area %d is shared by %d other areas",
					side.Start, side.End, area.Index, count)
			}
		}
	}
	return nil
}
