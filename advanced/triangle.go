package advanced

// Build a triangle from three indices listed in the given winding.
func NewTriangle(a, b, c int, winding Winding) Triangle {
	if winding == Clockwise {
		return Triangle{a, c, b}
	}
	return Triangle{a, b, c}
}

// The three indices in the requested winding. The triangle itself is never
// modified.
func (t Triangle) Indices(winding Winding) [3]int {
	if winding == Clockwise {
		return [3]int{t.A, t.C, t.B}
	}
	return [3]int{t.A, t.B, t.C}
}

// Flatten into an index buffer, three indices per triangle in the requested
// winding. This only reorders indices, it never retriangulates.
func (tl TriangleList) Flatten(winding Winding) []int {
	result := make([]int, 0, len(tl)*3)
	for _, t := range tl {
		indices := t.Indices(winding)
		result = append(result, indices[:]...)
	}
	return result
}

// Inverse of Flatten. Panics with ErrInvalidTriangles if the buffer length is
// not a multiple of three.
func TrianglesFromIndices(indices []int, winding Winding) TriangleList {
	if len(indices)%3 != 0 {
		throw(ErrInvalidTriangles, "index buffer length %d is not a multiple of 3", len(indices))
	}
	result := make(TriangleList, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		result = append(result, NewTriangle(indices[i], indices[i+1], indices[i+2], winding))
	}
	return result
}

func (t Triangle) SignedArea(points []Point) float64 {
	return TriangleSignedArea(points[t.A], points[t.B], points[t.C])
}

func (tl TriangleList) Area(points []Point) float64 {
	var area float64
	for _, t := range tl {
		area += t.SignedArea(points)
	}
	return area
}
