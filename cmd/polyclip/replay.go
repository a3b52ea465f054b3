package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/osuushi/polyclip"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Drive a session from a script, one event per line:
//
//	p X Y   add a point
//	close   close the open loop
//	enter   finish the polygon being entered, or start a new round
//	clear   discard the polygon being entered
//
// Blank lines and lines starting with # are skipped. Validation failures are
// logged and the script carries on, as the user would. onResult is called each
// time the session reaches a result.
func replay(script io.Reader, session *Session, onResult func(polyclip.ClipResult) error) error {
	scanner := bufio.NewScanner(script)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		var status string
		var err error
		switch fields[0] {
		case "p":
			var point polyclip.Point
			point, err = parsePoint(fields[1:])
			if err != nil {
				return errors.Wrapf(err, "line %d", lineNumber)
			}
			status, err = session.AddPoint(point)
		case "close":
			status, err = session.ClosePath()
		case "enter":
			before := session.Stage()
			status, err = session.Enter()
			if err == nil && before == StageClip {
				log.Info(status)
				if err := onResult(session.Result); err != nil {
					return err
				}
				continue
			}
		case "clear":
			status = session.Clear()
		default:
			return errors.Errorf("line %d: unknown command %q", lineNumber, fields[0])
		}

		entry := log.WithFields(logrus.Fields{
			"line":  lineNumber,
			"stage": session.Stage(),
		})
		if err != nil {
			entry.WithError(err).Warn("rejected")
		} else {
			entry.Info(status)
		}
		if drawing := session.Drawing(); len(drawing) > 0 {
			entry.WithField("polygon", drawing).Debug("in progress")
		}
	}
	return scanner.Err()
}
