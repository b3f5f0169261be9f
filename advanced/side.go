package advanced

// A directed boundary edge of an area, between two vertex indices of the
// owning polygon.
type Side struct {
	// Index of the owning area, and position in its loop
	Area, Index int
	Start, End  int
	// Index of the area across this side, or -1. This is a lookup only; it
	// is set when adjacency is discovered.
	ConnectedTo int
}

// Sides match when they are the same side, or the same edge walked in
// opposite directions.
func (s Side) Matches(other Side) bool {
	if s.Area == other.Area && s.Index == other.Index {
		return true
	}
	return s.Start == other.End && s.End == other.Start
}

func (s Side) IsConnected() bool {
	return s.ConnectedTo >= 0
}

// Positions of a pair of matching sides in their areas' loops.
type SidePair struct {
	A, B int
}

// Where two areas touch. Each start/end pair bounds the run of shared sides in
// that area's own loop order, so Start comes before End walking the loop
// (wrapping around if needed).
type Connection struct {
	Side1Start, Side1End int
	Side2Start, Side2End int
}
