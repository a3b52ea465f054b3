package main

import (
	"github.com/osuushi/polyclip"
	"github.com/pkg/errors"
)

type Stage int

const (
	StageSubject Stage = iota
	StageClip
	StageResult
)

func (s Stage) String() string {
	switch s {
	case StageSubject:
		return "subject"
	case StageClip:
		return "clip"
	default:
		return "result"
	}
}

const (
	subjectPrompt = "Enter the subject polygon. Close a loop with close, finish with enter, start over with clear."
	clipPrompt    = "Enter the clip polygon. Close a loop with close, finish with enter, start over with clear."
	resultPrompt  = "Showing the result. Press enter for another round. Red is the clip result, green is the subject, cyan is the clip polygon."
)

// An authoring session: enter a subject polygon, then a clip polygon, then see
// the clipped result. Every event returns the status line to show the user.
// Events that fail validation return an error instead, and leave the session
// where it was, so the user can try again.
type Session struct {
	stage   Stage
	subject *polyclip.PolygonBuilder
	clip    *polyclip.PolygonBuilder

	// Set on entering StageResult
	Subject polyclip.Polygon
	Clip    polyclip.Polygon
	Result  polyclip.ClipResult
}

func NewSession() *Session {
	return &Session{
		subject: polyclip.BeginPolygon(),
		clip:    polyclip.BeginPolygon(),
	}
}

func (s *Session) Stage() Stage {
	return s.stage
}

func (s *Session) Prompt() string {
	switch s.stage {
	case StageSubject:
		return subjectPrompt
	case StageClip:
		return clipPrompt
	default:
		return resultPrompt
	}
}

// The builder for the polygon being entered, or nil when showing a result
func (s *Session) builder() *polyclip.PolygonBuilder {
	switch s.stage {
	case StageSubject:
		return s.subject
	case StageClip:
		return s.clip
	}
	return nil
}

// Snapshot of the polygon being entered, open contour included
func (s *Session) Drawing() polyclip.Polygon {
	if builder := s.builder(); builder != nil {
		return builder.Polygon()
	}
	return nil
}

// Points are ignored while showing a result.
func (s *Session) AddPoint(p polyclip.Point) (string, error) {
	builder := s.builder()
	if builder == nil {
		return s.Prompt(), nil
	}
	if err := builder.AddPoint(p); err != nil {
		return "", errors.Wrap(err, "pick another point")
	}
	return s.Prompt(), nil
}

func (s *Session) ClosePath() (string, error) {
	builder := s.builder()
	if builder == nil {
		return s.Prompt(), nil
	}
	if err := builder.ClosePath(); err != nil {
		return "", errors.Wrap(err, "cannot close")
	}
	return "Closed (the loop is " + builder.LastClosed().Orientation().String() + "). " + s.Prompt(), nil
}

// Finish the polygon being entered and move on. After the clip polygon, this
// runs the clip. While showing a result, it starts a new round.
func (s *Session) Enter() (string, error) {
	switch s.stage {
	case StageSubject:
		subject, err := s.subject.Finish()
		if err != nil {
			return "", errors.Wrap(err, "cannot finish subject")
		}
		s.Subject = subject
		s.stage = StageClip

	case StageClip:
		clip, err := s.clip.Finish()
		if err != nil {
			return "", errors.Wrap(err, "cannot finish clip polygon")
		}
		result, err := polyclip.Clip(s.Subject, clip)
		if err != nil {
			return "", err
		}
		s.Clip = clip
		s.Result = result
		s.stage = StageResult

	case StageResult:
		s.restart()
	}
	return s.Prompt(), nil
}

// Discard the polygon being entered. While showing a result, this starts a new
// round.
func (s *Session) Clear() string {
	switch s.stage {
	case StageSubject:
		s.subject.Reset()
		return "Subject polygon cleared."
	case StageClip:
		s.clip.Reset()
		return "Clip polygon cleared."
	}
	s.restart()
	return s.Prompt()
}

func (s *Session) restart() {
	s.subject.Reset()
	s.clip.Reset()
	s.Subject = nil
	s.Clip = nil
	s.Result = polyclip.ClipResult{}
	s.stage = StageSubject
}
