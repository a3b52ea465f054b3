package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/polyclip"
	"github.com/pkg/errors"
)

// Line separating the subject polygon from the clip polygon
const polygonSeparator = "---"

func readPolygons(in io.Reader) (subject, clip polyclip.Polygon, err error) {
	subjectBuilder := polyclip.BeginPolygon()
	clipBuilder := polyclip.BeginPolygon()
	builder := subjectBuilder

	// Close the open contour if we collected any points
	closeContour := func() error {
		if len(builder.Current()) == 0 {
			return nil
		}
		return builder.ClosePath()
	}

	// Scan lines
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "#"):
			continue
		case line == "":
			if err := closeContour(); err != nil {
				return nil, nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			continue
		case line == polygonSeparator:
			if err := closeContour(); err != nil {
				return nil, nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			builder = clipBuilder
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		if err := builder.AddPoint(point); err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", lineNumber)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	// Handle trailing contours, if any
	if subject, err = subjectBuilder.Finish(); err != nil {
		return nil, nil, errors.Wrap(err, "subject")
	}
	if clip, err = clipBuilder.Finish(); err != nil {
		return nil, nil, errors.Wrap(err, "clip")
	}
	return subject, clip, nil
}

func parsePoint(fields []string) (polyclip.Point, error) {
	if len(fields) != 2 {
		return polyclip.Point{}, errors.Errorf("expected \"x y\", got %q", strings.Join(fields, " "))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return polyclip.Point{}, errors.Wrapf(err, "invalid x value %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return polyclip.Point{}, errors.Wrapf(err, "invalid y value %q", fields[1])
	}
	return polyclip.Point{X: x, Y: y}, nil
}
