package internal

// This contains no actual tests. It is just a helper for testing clip validity.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Probe a grid of points over both inputs, and check that the result contains
// exactly those points that are inside the subject and inside the clip polygon.
// The grid is offset by odd fractions of a step so probes don't land on edges.
func validateClipBySampling(t *testing.T, result, subject, clip Polygon) {
	lo, hi, ok := Bounds(subject, clip)
	require.True(t, ok, "inputs have no points")
	lo.X--
	lo.Y--
	hi.X++
	hi.Y++

	const steps = 50
	for i := 0; i <= steps; i++ {
		for j := 0; j <= steps; j++ {
			p := Point{
				X: lo.X + (hi.X-lo.X)*(float64(i)+0.013)/steps,
				Y: lo.Y + (hi.Y-lo.Y)*(float64(j)+0.029)/steps,
			}
			expected := subject.ContainsPoint(p) && clip.ContainsPoint(p)
			if expected {
				assert.True(t, result.ContainsPoint(p), "point %v should be in the clipped region", p)
			} else {
				assert.False(t, result.ContainsPoint(p), "point %v should not be in the clipped region", p)
			}
		}
	}
}

// Every result contour must be simple, which we check by feeding it back
// through a builder.
func assertSimple(t *testing.T, poly Polygon) {
	for i, contour := range poly {
		builder := NewPolygonBuilder()
		for _, p := range contour[:len(contour)-1] {
			require.NoError(t, builder.AddPoint(p), "contour %d is not simple", i)
		}
		require.NoError(t, builder.ClosePath(), "contour %d is not simple", i)
	}
}

// No leftover edge may run through the inside of the clipped region.
func assertOutside(t *testing.T, leftover, result Polygon) {
	for _, contour := range leftover {
		for i := 0; i < contour.EdgeCount(); i++ {
			mid := contour.Edge(i).At(0.5)
			assert.False(t, result.ContainsPoint(mid), "leftover edge midpoint %v is inside the result", mid)
		}
	}
}

// Check that a closed contour visits the expected points in the same cyclic
// order, starting anywhere.
func assertSameLoop(t *testing.T, expected []Point, actual Contour) {
	require.Len(t, actual, len(expected)+1)
	assert.Equal(t, actual[0], actual[len(actual)-1], "contour is not closed")

	offset := -1
	for i, p := range actual[:len(expected)] {
		if p.Equals(expected[0]) {
			offset = i
			break
		}
	}
	require.NotEqual(t, -1, offset, "%v is not on the contour %v", expected[0], actual)
	for i, p := range expected {
		q := actual[CircularIndex(offset+i, len(expected))]
		assert.True(t, p.Equals(q), "expected %v at position %d, got %v", p, i, q)
	}
}
