package main

import (
	"testing"

	"github.com/osuushi/polyclip"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addPoints(t *testing.T, session *Session, points ...polyclip.Point) {
	for _, p := range points {
		_, err := session.AddPoint(p)
		require.NoError(t, err)
	}
}

func TestSession_FullRound(t *testing.T) {
	session := NewSession()
	assert.Equal(t, StageSubject, session.Stage())
	assert.Equal(t, subjectPrompt, session.Prompt())

	addPoints(t, session, polyclip.Point{X: 0, Y: 0}, polyclip.Point{X: 2, Y: 0}, polyclip.Point{X: 2, Y: 2}, polyclip.Point{X: 0, Y: 2})
	status, err := session.ClosePath()
	require.NoError(t, err)
	// y grows downward on screen, so this is clockwise by the usual convention
	assert.Contains(t, status, "the loop is clockwise")
	assert.Contains(t, status, subjectPrompt)

	status, err = session.Enter()
	require.NoError(t, err)
	assert.Equal(t, clipPrompt, status)
	assert.Equal(t, StageClip, session.Stage())
	assert.Len(t, session.Subject, 1)

	// Closed by Enter
	addPoints(t, session, polyclip.Point{X: 1, Y: 1}, polyclip.Point{X: 3, Y: 1}, polyclip.Point{X: 3, Y: 3}, polyclip.Point{X: 1, Y: 3})
	status, err = session.Enter()
	require.NoError(t, err)
	assert.Equal(t, resultPrompt, status)
	assert.Equal(t, StageResult, session.Stage())
	assert.Len(t, session.Clip, 1)
	assert.Len(t, session.Result.Result, 1)
	assert.Nil(t, session.Drawing())

	// Points are ignored while showing a result
	status, err = session.AddPoint(polyclip.Point{X: 9, Y: 9})
	require.NoError(t, err)
	assert.Equal(t, resultPrompt, status)

	status, err = session.Enter()
	require.NoError(t, err)
	assert.Equal(t, subjectPrompt, status)
	assert.Equal(t, StageSubject, session.Stage())
	assert.Nil(t, session.Subject)
	assert.Empty(t, session.Result.Result)
	assert.Empty(t, session.Drawing())
}

func TestSession_Rejections(t *testing.T) {
	session := NewSession()
	addPoints(t, session, polyclip.Point{X: 0, Y: 0}, polyclip.Point{X: 4, Y: 0}, polyclip.Point{X: 4, Y: 4})

	_, err := session.AddPoint(polyclip.Point{X: 2, Y: -2})
	assert.Equal(t, polyclip.ErrSelfIntersection, errors.Cause(err))
	assert.Equal(t, polyclip.Polygon{{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}}, session.Drawing())

	session.Clear()
	addPoints(t, session, polyclip.Point{X: 0, Y: 0}, polyclip.Point{X: 4, Y: 0})
	_, err = session.Enter()
	assert.Equal(t, polyclip.ErrTooFewVertices, errors.Cause(err))
	assert.Equal(t, StageSubject, session.Stage(), "failing to finish stays put")
}

func TestSession_Clear(t *testing.T) {
	session := NewSession()
	addPoints(t, session, polyclip.Point{X: 0, Y: 0}, polyclip.Point{X: 4, Y: 0}, polyclip.Point{X: 4, Y: 4})
	assert.Equal(t, "Subject polygon cleared.", session.Clear())
	assert.Empty(t, session.Drawing())
	assert.Equal(t, StageSubject, session.Stage())

	_, err := session.Enter()
	require.NoError(t, err)
	addPoints(t, session, polyclip.Point{X: 0, Y: 0})
	assert.Equal(t, "Clip polygon cleared.", session.Clear())
	assert.Equal(t, StageClip, session.Stage())

	_, err = session.Enter()
	require.NoError(t, err)
	assert.Equal(t, StageResult, session.Stage())
	assert.Equal(t, subjectPrompt, session.Clear())
	assert.Equal(t, StageSubject, session.Stage())
}
