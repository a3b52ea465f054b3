package internal

// Twice the negated shoelace area of the contour. The sign is what matters:
// positive means counterclockwise in the screen coordinate convention (y grows
// downward) that interactive input arrives in.
func (c Contour) SignedSum() float64 {
	var sum float64
	for i := 0; i < len(c)-1; i++ {
		sum += (c[i+1].X - c[i].X) * (c[i+1].Y + c[i].Y)
	}
	return sum
}

func (c Contour) Orientation() Orientation {
	if c.SignedSum() > 0 {
		return CounterClockwise
	}
	return Clockwise
}

type Intersection struct {
	Point Point
	// Position along the first and second segment, both in [0, 1]
	S, T     float64
	Crossing Crossing
}

// Intersect two segments by solving the 2x2 system for the parameter on each
// segment. Parallel and collinear segments never intersect; the determinant
// has to be exactly zero for that, so nearly parallel segments can produce
// intersections far outside the segments, which the range check then rejects.
//
// Endpoints are inclusive, so segments that merely touch intersect.
//
// The crossing direction comes from the cross product of the direction
// vectors. Positive means the first segment is exiting the region bounded by
// the second; zero or negative means it is entering.
func Intersect(l1, l2 Segment) (Intersection, bool) {
	a, b := l1.Start, l1.End
	c, d := l2.Start, l2.End
	dir1 := Point{b.X - a.X, b.Y - a.Y}
	dir2 := Point{d.X - c.X, d.Y - c.Y}

	det := a.X*dir2.Y - b.X*dir2.Y - c.X*dir1.Y + d.X*dir1.Y
	if det == 0 {
		return Intersection{}, false
	}
	s := (a.X*dir2.Y + c.X*(a.Y-d.Y) + d.X*(c.Y-a.Y)) / det
	t := -(a.X*(c.Y-b.Y) + b.X*(a.Y-c.Y) + c.X*dir1.Y) / det
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return Intersection{}, false
	}

	crossing := Entering
	if dir2.X*dir1.Y-dir1.X*dir2.Y > 0 {
		crossing = Exiting
	}
	return Intersection{
		Point:    l1.At(s),
		S:        s,
		T:        t,
		Crossing: crossing,
	}, true
}

// Does the segment cross any edge of the contour in the half open edge range
// [from, to)?
func (c Contour) crossesEdges(segment Segment, from, to int) bool {
	for i := from; i < to; i++ {
		if _, ok := Intersect(c.Edge(i), segment); ok {
			return true
		}
	}
	return false
}
