package internal

import "math"

// Clip the subject polygon against the clip polygon with the Weiler-Atherton
// walk. Both polygons must be simple, with no edge of one crossing another
// edge of the same polygon. Build them with a PolygonBuilder to ensure this.
//
// If the polygons don't cross at all, the result is empty and the leftovers
// reproduce the inputs, even when one polygon contains the other.
func Clip(subject, clip Polygon) ClipResult {
	result, _ := ClipWithTable(subject, clip)
	return result
}

// Like Clip, but also hand back the vertex table the walks ran over, with its
// visited flags set. The table holds the normalized winding, not the caller's.
func ClipWithTable(subject, clip Polygon) (ClipResult, *VertexTable) {
	// The walk only traces the overlap when outer contours wind
	// counterclockwise and holes clockwise.
	subject, subjectFlipped := normalizeWinding(subject)
	clip, clipFlipped := normalizeWinding(clip)

	table := NewVertexTable(subject, clip)
	table.InsertIntersections()

	result := ClipResult{
		Result:          table.WalkResult(),
		LeftoverSubject: table.WalkLeftoverSubject(),
		LeftoverClip:    table.WalkLeftoverClip(),
	}
	if subjectFlipped {
		result.Result = result.Result.Reverse()
		result.LeftoverSubject = result.LeftoverSubject.Reverse()
	}
	if clipFlipped {
		result.LeftoverClip = result.LeftoverClip.Reverse()
	}
	return result, table
}

// Give every contour the winding the walk expects: counterclockwise at even
// nesting depth (outer contours and islands), clockwise at odd depth (holes).
// Contours are never crossed by others of the same polygon, so the depth of
// any one vertex is the depth of its whole contour.
//
// flipped reports whether the largest contour had to be reversed. The output
// is reversed back in that case, so it follows the caller's outer winding.
func normalizeWinding(poly Polygon) (normalized Polygon, flipped bool) {
	normalized = make(Polygon, len(poly))
	var outerArea float64
	for i, contour := range poly {
		normalized[i] = contour
		if len(contour) == 0 {
			continue
		}

		want := CounterClockwise
		if poly.depth(i)%2 == 1 {
			want = Clockwise
		}
		reversed := contour.Orientation() != want
		if reversed {
			normalized[i] = contour.Reverse()
		}

		area := math.Abs(contour.SignedSum())
		if area > outerArea {
			outerArea = area
			flipped = reversed
		}
	}
	return normalized, flipped
}

// Number of other contours enclosing contour i
func (poly Polygon) depth(i int) int {
	p := poly[i][0]
	depth := 0
	for j, contour := range poly {
		if j != i && (Polygon{contour}).ContainsPoint(p) {
			depth++
		}
	}
	return depth
}
