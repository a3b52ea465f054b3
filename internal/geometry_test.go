package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientation(t *testing.T) {
	contour := Contour{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
	assert.Equal(t, CounterClockwise, contour.Orientation())
	assert.Equal(t, Clockwise, contour.Reverse().Orientation())
	assert.InDelta(t, 2, contour.SignedSum(), Epsilon)
}

func TestIntersect(t *testing.T) {
	var tts = []struct {
		l1, l2   Segment
		ok       bool
		point    Point
		s, t     float64
		crossing Crossing
	}{
		// Simple cross, both directions
		{Segment{Point{0, 0}, Point{2, 0}}, Segment{Point{1, -1}, Point{1, 1}}, true, Point{1, 0}, 0.5, 0.5, Entering},
		{Segment{Point{0, 0}, Point{2, 0}}, Segment{Point{1, 1}, Point{1, -1}}, true, Point{1, 0}, 0.5, 0.5, Exiting},
		{Segment{Point{2, 0}, Point{2, 2}}, Segment{Point{1, 1}, Point{3, 1}}, true, Point{2, 1}, 0.5, 0.5, Exiting},
		// Off center
		{Segment{Point{0, 0}, Point{4, 0}}, Segment{Point{3, -1}, Point{3, 3}}, true, Point{3, 0}, 0.75, 0.25, Entering},
		// Touching at an endpoint counts
		{Segment{Point{0, 0}, Point{2, 0}}, Segment{Point{2, -1}, Point{2, 1}}, true, Point{2, 0}, 1, 0.5, Entering},
		{Segment{Point{0, 0}, Point{2, 0}}, Segment{Point{1, 0}, Point{1, 1}}, true, Point{1, 0}, 0.5, 0, Entering},
		// Lines cross, but outside the segments
		{Segment{Point{0, 0}, Point{2, 0}}, Segment{Point{3, -1}, Point{3, 1}}, false, Point{}, 0, 0, Entering},
		{Segment{Point{0, 0}, Point{2, 0}}, Segment{Point{1, 1}, Point{1, 2}}, false, Point{}, 0, 0, Entering},
		// Parallel and collinear segments never intersect
		{Segment{Point{0, 0}, Point{2, 0}}, Segment{Point{0, 1}, Point{2, 1}}, false, Point{}, 0, 0, Entering},
		{Segment{Point{0, 0}, Point{2, 0}}, Segment{Point{1, 0}, Point{3, 0}}, false, Point{}, 0, 0, Entering},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			hit, ok := Intersect(tt.l1, tt.l2)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.True(t, tt.point.Equals(hit.Point), "expected %v, got %v", tt.point, hit.Point)
			assert.InDelta(t, tt.s, hit.S, Epsilon)
			assert.InDelta(t, tt.t, hit.T, Epsilon)
			assert.Equal(t, tt.crossing, hit.Crossing)
		})
	}
}

func TestIntersectSymmetricPoint(t *testing.T) {
	l1 := Segment{Point{0, 0}, Point{6, 3}}
	l2 := Segment{Point{1, 4}, Point{5, -2}}
	a, ok := Intersect(l1, l2)
	require.True(t, ok)
	b, ok := Intersect(l2, l1)
	require.True(t, ok)

	assert.True(t, a.Point.Equals(b.Point))
	assert.InDelta(t, a.S, b.T, Epsilon)
	assert.InDelta(t, a.T, b.S, Epsilon)
	// Swapping the segments flips the sign of the cross product
	assert.NotEqual(t, a.Crossing, b.Crossing)
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestContainsPoint(t *testing.T) {
	subject, _ := LoadFixture("hole")
	assert.True(t, subject.ContainsPoint(Point{1, 1}))
	assert.False(t, subject.ContainsPoint(Point{5, 5}), "inside the hole")
	assert.True(t, subject.ContainsPoint(Point{8.5, 5}))
	assert.False(t, subject.ContainsPoint(Point{11, 5}))
}
