package internal

import "math"

const Epsilon = 1e-9

// Approximate equality, for tests and callers that compare computed
// intersection points. The engine itself never uses it; parallel edges are
// detected with an exact zero determinant.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func (p Point) Equals(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

// Linear interpolation along the segment. s=0 is Start and s=1 is End.
func (s Segment) At(t float64) Point {
	return Point{
		X: s.Start.X + t*(s.End.X-s.Start.X),
		Y: s.Start.Y + t*(s.End.Y-s.Start.Y),
	}
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// The edge from point i to point i+1. The contour is closed, so the last edge
// is at len-2.
func (c Contour) Edge(i int) Segment {
	return Segment{c[i], c[i+1]}
}

func (c Contour) EdgeCount() int {
	if len(c) < 2 {
		return 0
	}
	return len(c) - 1
}

// Reverse the direction of the contour. Since the contour is closed, the first
// point stays first.
func (c Contour) Reverse() Contour {
	reversed := make(Contour, len(c))
	for i, p := range c {
		reversed[len(c)-1-i] = p
	}
	return reversed
}

func (poly Polygon) Reverse() Polygon {
	reversed := make(Polygon, len(poly))
	for i, contour := range poly {
		reversed[i] = contour.Reverse()
	}
	return reversed
}

func (poly Polygon) Clone() Polygon {
	cloned := make(Polygon, len(poly))
	for i, contour := range poly {
		cloned[i] = append(Contour(nil), contour...)
	}
	return cloned
}
