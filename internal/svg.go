package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Class attribute marking a <polygon> element as part of the clip polygon
const ClipClass = "clip"

// Read a subject and a clip polygon from an SVG document. This is not a full
// (or even correct) svg reader. Every <polygon> element is one contour. Those
// with class="clip" belong to the clip polygon, and everything else belongs to
// the subject.
//
// Contours are built through a PolygonBuilder, so crossing edges are rejected
// just like interactive input.
func ParseSVG(r io.Reader) (subject, clip Polygon, err error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parse svg")
	}

	subjectBuilder := NewPolygonBuilder()
	clipBuilder := NewPolygonBuilder()
	for i, polygonEl := range rootEl.FindAll("polygon") {
		builder := subjectBuilder
		if hasClass(polygonEl.Attributes["class"], ClipClass) {
			builder = clipBuilder
		}

		points, err := parsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "polygon %d", i)
		}
		for _, p := range points {
			if err := builder.AddPoint(p); err != nil {
				return nil, nil, errors.Wrapf(err, "polygon %d", i)
			}
		}
		if err := builder.ClosePath(); err != nil {
			return nil, nil, errors.Wrapf(err, "polygon %d", i)
		}
	}

	if subject, err = subjectBuilder.Finish(); err != nil {
		return nil, nil, err
	}
	if clip, err = clipBuilder.Finish(); err != nil {
		return nil, nil, err
	}
	return subject, clip, nil
}

// Parse an SVG points attribute: "x,y x,y ...". A repeated first point at the
// end is dropped, since closing the contour adds it back.
func parsePoints(attr string) ([]Point, error) {
	var points []Point
	for _, pointString := range strings.Fields(attr) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		points = append(points, Point{x, y})
	}
	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	return points, nil
}

func hasClass(attr, class string) bool {
	for _, c := range strings.Fields(attr) {
		if c == class {
			return true
		}
	}
	return false
}
