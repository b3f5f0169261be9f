package advanced

// The working polygon of the triangulator. Vertices live in a fixed arena and
// are linked into a circle through prev/next slot numbers. Clipping a vertex
// unlinks it and marks it removed; the slot is never reused.

type vertexState uint8

const (
	stateUnknown vertexState = iota
	stateConvex
	stateReflex
	stateRemoved
)

type vertex struct {
	Position Point
	// Index into the caller's point array
	Index      int
	prev, next int
	state      vertexState
}

type vertexRing struct {
	vertices []vertex
	winding  Winding
	// Any live slot
	head  int
	count int
}

// Build the ring, skipping consecutive duplicate points (including a closing
// point equal to the first). Panics with ErrDegeneratePolygon if fewer than
// three distinct points remain or the ring has no area.
func newVertexRing(points []Point, winding Winding) *vertexRing {
	vertices := make([]vertex, 0, len(points))
	for i, p := range points {
		if len(vertices) > 0 && vertices[len(vertices)-1].Position == p {
			continue
		}
		vertices = append(vertices, vertex{Position: p, Index: i})
	}
	for len(vertices) > 1 && vertices[len(vertices)-1].Position == vertices[0].Position {
		vertices = vertices[:len(vertices)-1]
	}
	if len(vertices) < 3 {
		throw(ErrDegeneratePolygon, "%d distinct points", len(vertices))
	}

	positions := make([]Point, len(vertices))
	for i := range vertices {
		vertices[i].prev = CircularIndex(i-1, len(vertices))
		vertices[i].next = CircularIndex(i+1, len(vertices))
		positions[i] = vertices[i].Position
	}
	if SignedArea(positions) == 0 {
		throw(ErrDegeneratePolygon, "all %d points are collinear", len(vertices))
	}

	return &vertexRing{
		vertices: vertices,
		winding:  winding,
		head:     0,
		count:    len(vertices),
	}
}

func (r *vertexRing) neighbors(slot int) (prev, next int) {
	v := &r.vertices[slot]
	return v.prev, v.next
}

// Convexity is computed lazily and cached until a neighbor is removed.
// Collinear vertices are reflex.
func (r *vertexRing) isConvex(slot int) bool {
	v := &r.vertices[slot]
	if v.state == stateUnknown {
		prev := r.vertices[v.prev].Position
		next := r.vertices[v.next].Position
		cross := v.Position.Sub(prev).Cross(next.Sub(v.Position))
		if cross*r.winding.Sign() > 0 {
			v.state = stateConvex
		} else {
			v.state = stateReflex
		}
	}
	return v.state == stateConvex
}

// A convex vertex is an ear when no other live vertex lies inside (or on the
// boundary of) the triangle it forms with its neighbors.
func (r *vertexRing) isEar(slot int) bool {
	if !r.isConvex(slot) {
		return false
	}
	prev, next := r.neighbors(slot)
	a := r.vertices[prev].Position
	b := r.vertices[slot].Position
	c := r.vertices[next].Position
	for other := r.vertices[next].next; other != prev; other = r.vertices[other].next {
		if PointInTriangle(r.vertices[other].Position, a, b, c) {
			return false
		}
	}
	return true
}

func (r *vertexRing) remove(slot int) {
	prev, next := r.neighbors(slot)
	r.vertices[prev].next = next
	r.vertices[next].prev = prev
	r.vertices[prev].state = stateUnknown
	r.vertices[next].state = stateUnknown
	r.vertices[slot].state = stateRemoved
	if r.head == slot {
		r.head = next
	}
	r.count--
}

// The triangle clipped off at a slot, emitted as (next, ear, prev). That order
// runs against the ring's winding.
func (r *vertexRing) triangle(slot int) Triangle {
	prev, next := r.neighbors(slot)
	return NewTriangle(
		r.vertices[next].Index,
		r.vertices[slot].Index,
		r.vertices[prev].Index,
		r.winding.Reverse(),
	)
}

// Squared deviation of the triangle's edge lengths from their mean. Zero for
// an equilateral triangle.
func (r *vertexRing) edgeVariance(slot int) float64 {
	prev, next := r.neighbors(slot)
	a := r.vertices[prev].Position
	b := r.vertices[slot].Position
	c := r.vertices[next].Position
	lengths := [3]float64{a.Sub(b).Norm(), b.Sub(c).Norm(), c.Sub(a).Norm()}
	mean := (lengths[0] + lengths[1] + lengths[2]) / 3
	var variance float64
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	return variance
}
