package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each is an SVG with subject <polygon> elements and class="clip" polygons,
// read with ParseSVG. If anything goes wrong, the test binary exits.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (subject, clip Polygon) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	subject, clip, err = ParseSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return subject, clip
}

// Some ad hoc code specified fixtures

func closed(points ...Point) Contour {
	return append(Contour(points), points[0])
}

func OverlappingSquares() (subject, clip Polygon) {
	subject = Polygon{closed(Point{0, 0}, Point{2, 0}, Point{2, 2}, Point{0, 2})}
	clip = Polygon{closed(Point{1, 1}, Point{3, 1}, Point{3, 3}, Point{1, 3})}
	return
}

func DisjointSquares() (subject, clip Polygon) {
	subject = Polygon{closed(Point{0, 0}, Point{2, 0}, Point{2, 2}, Point{0, 2})}
	clip = Polygon{closed(Point{5, 5}, Point{6, 5}, Point{6, 6}, Point{5, 6})}
	return
}

// A star overlapping a square that cuts off three of its points
func StarAndSquare() (subject, clip Polygon) {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	subject = Polygon{closed(points...)}
	clip = Polygon{closed(Point{-1, -1}, Point{4, -1}, Point{4, 4}, Point{-1, 4})}
	return
}
