package advanced

import "math"

// A piece of boundary curve. The subdivider only ever looks at these four
// members.
type Trajectory interface {
	// Arc length
	Magnitude() float64
	// Absolute turn between the start and end tangents, in radians
	DeltaAngle() float64
	// Split into two halves that together trace the same curve
	Divide() (Trajectory, Trajectory)
	StartPosition() Point
}

// A straight piece of boundary.
type Segment struct {
	Start, End Point
}

func (s Segment) Magnitude() float64 {
	return s.End.Sub(s.Start).Norm()
}

func (s Segment) DeltaAngle() float64 {
	return 0
}

func (s Segment) Divide() (Trajectory, Trajectory) {
	middle := s.Start.Add(s.End).Mul(0.5)
	return Segment{s.Start, middle}, Segment{middle, s.End}
}

func (s Segment) StartPosition() Point {
	return s.Start
}

// Number of chords used to estimate the length of a Bezier.
const bezierLengthSteps = 16

// A cubic Bezier piece of boundary.
type Bezier struct {
	P0, P1, P2, P3 Point
}

func (b Bezier) PointAt(t float64) Point {
	u := 1 - t
	return b.P0.Mul(u * u * u).
		Add(b.P1.Mul(3 * u * u * t)).
		Add(b.P2.Mul(3 * u * t * t)).
		Add(b.P3.Mul(t * t * t))
}

func (b Bezier) Magnitude() float64 {
	var length float64
	previous := b.P0
	for i := 1; i <= bezierLengthSteps; i++ {
		p := b.PointAt(float64(i) / bezierLengthSteps)
		length += p.Sub(previous).Norm()
		previous = p
	}
	return length
}

// Tangents fall back to the next control point when control points coincide.
func (b Bezier) startTangent() Point {
	for _, p := range []Point{b.P1, b.P2, b.P3} {
		if p != b.P0 {
			return p.Sub(b.P0)
		}
	}
	return Point{}
}

func (b Bezier) endTangent() Point {
	for _, p := range []Point{b.P2, b.P1, b.P0} {
		if p != b.P3 {
			return b.P3.Sub(p)
		}
	}
	return Point{}
}

func (b Bezier) DeltaAngle() float64 {
	start := b.startTangent()
	end := b.endTangent()
	if start == (Point{}) || end == (Point{}) {
		return 0
	}
	return math.Abs(math.Atan2(start.Cross(end), start.Dot(end)))
}

// De Casteljau at t = 0.5, which is exact.
func (b Bezier) Divide() (Trajectory, Trajectory) {
	p01 := b.P0.Add(b.P1).Mul(0.5)
	p12 := b.P1.Add(b.P2).Mul(0.5)
	p23 := b.P2.Add(b.P3).Mul(0.5)
	p012 := p01.Add(p12).Mul(0.5)
	p123 := p12.Add(p23).Mul(0.5)
	middle := p012.Add(p123).Mul(0.5)
	return Bezier{b.P0, p01, p012, middle}, Bezier{middle, p123, p23, b.P3}
}

func (b Bezier) StartPosition() Point {
	return b.P0
}
