package advanced

import "math"

// Ear clipping for simple polygons given as an ordered ring of points with an
// explicitly supplied winding. Every ring vertex is classified once up front;
// after that, clipping an ear only invalidates its two neighbors, so only
// those are reclassified.

// Triangulate a ring. Panics with ErrDegeneratePolygon or
// ErrTriangulationFailed; see HandleTriangulatePanicRecover. On success the
// result has exactly n-2 triangles for n distinct ring points.
func ClipEars(points []Point, winding Winding, strategy Strategy) TriangleList {
	ring := newVertexRing(points, winding)
	ears := newEarSet(len(ring.vertices))
	slot := ring.head
	for i := 0; i < ring.count; i++ {
		if ring.isEar(slot) {
			ears.Add(slot)
		}
		slot = ring.vertices[slot].next
	}

	triangles := make(TriangleList, 0, ring.count-2)
	for clip := 0; ring.count > 3; clip++ {
		var ear int
		switch strategy {
		case Simple:
			ear = pickAlternating(ears, clip)
		default:
			ear = pickMostEquilateral(ring, ears)
		}
		if ear < 0 {
			throw(ErrTriangulationFailed, "no ear left with %d vertices remaining", ring.count)
		}

		ears.Remove(ear)
		triangles = append(triangles, ring.triangle(ear))
		prev, next := ring.neighbors(ear)
		ring.remove(ear)
		for _, neighbor := range [2]int{prev, next} {
			if ring.isEar(neighbor) {
				ears.Add(neighbor)
			} else {
				ears.Remove(neighbor)
			}
		}
	}

	// The last three vertices form the final triangle. It must still turn the
	// ring's way, or a lone triangle given the wrong winding slips through.
	if !ring.isConvex(ring.head) {
		throw(ErrTriangulationFailed, "last triangle does not match the %v winding", ring.winding)
	}
	return append(triangles, ring.triangle(ring.head))
}

// Even clips take the oldest ear, odd clips the newest. Spreading the clips
// around the ring keeps thin slivers from piling up on one side.
func pickAlternating(ears *earSet, clip int) int {
	if clip%2 == 0 {
		return ears.First()
	}
	return ears.Last()
}

// The ear whose triangle has the most even edge lengths. Scores within
// Tolerance of each other are ties, and the first one in set order wins.
func pickMostEquilateral(ring *vertexRing, ears *earSet) int {
	best := -1
	bestScore := math.Inf(1)
	for ear := ears.First(); ear >= 0; ear = ears.Next(ear) {
		score := ring.edgeVariance(ear)
		if score < bestScore && !Equal(score, bestScore) {
			best = ear
			bestScore = score
		}
	}
	return best
}
