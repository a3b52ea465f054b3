package internal

type Point struct {
	X float64
	Y float64
}

// Segments are directed, from Start to End. They only exist transiently while
// testing edges against each other.
type Segment struct {
	Start Point
	End   Point
}

// A contour is one closed loop. The first and last points are equal, so a
// triangle has four points.
type Contour []Point

// A polygon is any number of contours. While a polygon is being authored, the
// last contour is the open one, and may be empty.
type Polygon []Contour

type Orientation int

const (
	Clockwise Orientation = iota
	CounterClockwise
)

func (o Orientation) String() string {
	if o == CounterClockwise {
		return "counterclockwise"
	}
	return "clockwise"
}

// The walk over the vertex table decides which chain to follow based on how the
// subject edge crossed the clip edge.
type Crossing int

const (
	Entering Crossing = iota
	Exiting
)

func (c Crossing) String() string {
	if c == Exiting {
		return "exiting"
	}
	return "entering"
}

// The three sets produced by a clip. Result contours are closed. Leftover
// contours are the parts of each input boundary that lie outside the other
// polygon, and are usually open polylines.
type ClipResult struct {
	Result          Polygon
	LeftoverSubject Polygon
	LeftoverClip    Polygon
}
