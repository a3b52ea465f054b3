package internal

import "github.com/pkg/errors"

var (
	ErrSelfIntersection = errors.New("new edge crosses existing geometry")
	ErrTooFewVertices   = errors.New("too few points to close")
)

// Builds a polygon point by point, refusing any edge that would cross an edge
// already accepted. The clipping walk assumes simple polygons, so all input
// should come through here.
//
// The last contour of the polygon is always the open one. It may be empty. The
// zero value is ready to use.
type PolygonBuilder struct {
	polygon    Polygon
	lastClosed Contour
}

func NewPolygonBuilder() *PolygonBuilder {
	return &PolygonBuilder{polygon: Polygon{nil}}
}

// Discard everything, including closed contours.
func (b *PolygonBuilder) Reset() {
	b.polygon = Polygon{nil}
	b.lastClosed = nil
}

// Snapshot of the polygon, including the open contour if it has any points.
// Useful for drawing a polygon that is still being built.
func (b *PolygonBuilder) Polygon() Polygon {
	poly := b.polygon.Clone()
	if len(poly) > 0 && len(poly[len(poly)-1]) == 0 {
		poly = poly[:len(poly)-1]
	}
	return poly
}

// The open contour. The returned slice must not be modified.
func (b *PolygonBuilder) Current() Contour {
	b.ensureOpen()
	return b.polygon[len(b.polygon)-1]
}

// The contour closed by the most recent successful ClosePath, if any.
func (b *PolygonBuilder) LastClosed() Contour {
	return b.lastClosed
}

func (b *PolygonBuilder) AddPoint(p Point) error {
	b.ensureOpen()
	b.push(p)
	if !b.lastEdgeValid(false) {
		b.pop()
		return errors.Wrapf(ErrSelfIntersection, "edge to %v", p)
	}
	return nil
}

// Close the open contour back to its first point and start a new one. The
// open contour must have at least three points. If it doesn't, it is cleared.
// If the closing edge would cross existing geometry, the contour stays open.
func (b *PolygonBuilder) ClosePath() error {
	b.ensureOpen()
	current := b.Current()
	if len(current) <= 2 {
		count := len(current)
		b.polygon[len(b.polygon)-1] = nil
		return errors.Wrapf(ErrTooFewVertices, "contour has %d points", count)
	}

	b.push(current[0])
	if !b.lastEdgeValid(true) {
		b.pop()
		return errors.Wrap(ErrSelfIntersection, "closing edge")
	}
	b.lastClosed = b.polygon[len(b.polygon)-1]
	b.polygon = append(b.polygon, nil)
	return nil
}

// Close the open contour, if it has any points, and return the finished
// polygon. The builder keeps the closed contours, so further points start a
// new contour of the same polygon.
func (b *PolygonBuilder) Finish() (Polygon, error) {
	if len(b.Current()) > 0 {
		if err := b.ClosePath(); err != nil {
			return nil, err
		}
	}
	return b.Polygon(), nil
}

func (b *PolygonBuilder) ensureOpen() {
	if len(b.polygon) == 0 {
		b.polygon = append(b.polygon, nil)
	}
}

func (b *PolygonBuilder) push(p Point) {
	last := len(b.polygon) - 1
	b.polygon[last] = append(b.polygon[last], p)
}

func (b *PolygonBuilder) pop() {
	last := len(b.polygon) - 1
	b.polygon[last] = b.polygon[last][:len(b.polygon[last])-1]
}

// Check the newest edge of the open contour against every edge of every closed
// contour, and against the edges of the open contour that don't share an
// endpoint with it.
func (b *PolygonBuilder) lastEdgeValid(closing bool) bool {
	current := b.polygon[len(b.polygon)-1]
	n := len(current)
	if n < 2 {
		return true
	}
	lastEdge := current.Edge(n - 2)

	for _, contour := range b.polygon[:len(b.polygon)-1] {
		if contour.crossesEdges(lastEdge, 0, contour.EdgeCount()) {
			return false
		}
	}

	// The edge just before the new one shares an endpoint with it. When
	// closing, so does the first edge.
	from := 0
	if closing {
		from = 1
	}
	return !current.crossesEdges(lastEdge, from, n-3)
}
