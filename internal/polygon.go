package internal

// Even-odd point-in-polygon over every contour. This is provided primarily for
// validating clip output; holes work naturally, since a point inside a hole
// crosses the hole's edges too.
func (poly Polygon) ContainsPoint(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of edges crossed by a ray from p toward +X
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for _, contour := range poly {
		for i := 0; i < contour.EdgeCount(); i++ {
			edge := contour.Edge(i)
			if (edge.Start.Y > p.Y) == (edge.End.Y > p.Y) {
				continue
			}
			x := edge.Start.X + (p.Y-edge.Start.Y)*(edge.End.X-edge.Start.X)/(edge.End.Y-edge.Start.Y)
			if p.X < x {
				crossingCount++
			}
		}
	}
	return crossingCount
}

// Bounding box of all the points in the polygons. ok is false if there are no
// points at all.
func Bounds(polygons ...Polygon) (lo, hi Point, ok bool) {
	for _, poly := range polygons {
		for _, contour := range poly {
			for _, p := range contour {
				if !ok {
					lo, hi, ok = p, p, true
					continue
				}
				if p.X < lo.X {
					lo.X = p.X
				}
				if p.Y < lo.Y {
					lo.Y = p.Y
				}
				if p.X > hi.X {
					hi.X = p.X
				}
				if p.Y > hi.Y {
					hi.Y = p.Y
				}
			}
		}
	}
	return lo, hi, ok
}
