// Planar polygon clipping with the Weiler-Atherton algorithm.
//
// Build each polygon with a PolygonBuilder, which refuses any edge that would
// cross an edge already accepted, then Clip the subject against the clip
// polygon. Polygons may have several disjoint contours, and holes.
//
// Clipping gives three sets: the region where the polygons overlap, and the
// parts of each polygon's boundary that lie outside the other. See the readme
// for details.
package polyclip

import "github.com/osuushi/polyclip/internal"

type Point = internal.Point
type Contour = internal.Contour
type Polygon = internal.Polygon
type Orientation = internal.Orientation
type ClipResult = internal.ClipResult
type PolygonBuilder = internal.PolygonBuilder

const (
	Clockwise        = internal.Clockwise
	CounterClockwise = internal.CounterClockwise
)

var (
	ErrSelfIntersection = internal.ErrSelfIntersection
	ErrTooFewVertices   = internal.ErrTooFewVertices
)

// Start building a polygon, one point at a time.
func BeginPolygon() *PolygonBuilder {
	return internal.NewPolygonBuilder()
}

// Clip the subject polygon against the clip polygon. Neither input is modified.
//
// Both polygons must be simple. An error is only returned when that is not
// the case and the clipping walk breaks down as a result.
func Clip(subject, clip Polygon) (result ClipResult, err error) {
	defer func() {
		recoveredErr := internal.HandleClipPanicRecover(recover())
		if recoveredErr != nil {
			result = ClipResult{}
			err = recoveredErr
		}
	}()
	return internal.Clip(subject, clip), nil
}

// Like Clip, but also returns a dump of the vertex table the walks ran over,
// with a readable name for each vertex. The dump is empty if the walk broke
// down.
func ClipVerbose(subject, clip Polygon) (result ClipResult, dump string, err error) {
	defer func() {
		recoveredErr := internal.HandleClipPanicRecover(recover())
		if recoveredErr != nil {
			result = ClipResult{}
			dump = ""
			err = recoveredErr
		}
	}()
	result, table := internal.ClipWithTable(subject, clip)
	return result, table.String(), nil
}
