package main

import (
	"os"
	"time"

	"github.com/osuushi/polyclip"
	"github.com/osuushi/polyclip/internal"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end. The clip command reads both polygons at once, from
// stdin or an SVG file, and the replay command steps through a script of
// authoring events the way an interactive editor would receive them.
//
// Input on stdin should be newline separated points in the form "x y", with
// each contour ended by an extra newline, and a "---" line between the subject
// and the clip polygon. Polygons are validated as they are read: a contour
// whose edges cross is rejected.

var (
	app     = kingpin.New("polyclip", "Clip polygons with the Weiler-Atherton algorithm.")
	verbose = app.Flag("verbose", "Log at debug level.").Short('v').Envar("POLYCLIP_VERBOSE").Bool()
	dump    = app.Flag("dump", "Log the vertex table after clipping.").Envar("POLYCLIP_DUMP").Bool()

	pngPath   = app.Flag("png", "Draw the result to a PNG file.").Envar("POLYCLIP_PNG").String()
	scale     = app.Flag("scale", "Pixels per unit when drawing.").Default("1").Envar("POLYCLIP_SCALE").Float64()
	lineWidth = app.Flag("line-width", "Line width in pixels when drawing.").Default("5").Envar("POLYCLIP_LINE_WIDTH").Float64()
	showImage = app.Flag("imgcat", "Show the drawing inline in the terminal.").Envar("POLYCLIP_IMGCAT").Bool()

	clipCmd = app.Command("clip", "Clip a subject polygon against a clip polygon.").Default()
	svgPath = clipCmd.Flag("svg", "Read polygons from an SVG file instead of stdin. Polygons with class=\"clip\" form the clip polygon.").Envar("POLYCLIP_SVG").ExistingFile()

	replayCmd  = app.Command("replay", "Replay a script of authoring events: \"p X Y\", \"close\", \"enter\" and \"clear\".")
	replayPath = replayCmd.Arg("script", "Script file.").Required().ExistingFile()
)

var log = logrus.StandardLogger()

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})
	if *verbose || *dump {
		log.SetLevel(logrus.DebugLevel)
	}

	var err error
	switch command {
	case clipCmd.FullCommand():
		err = runClip()
	case replayCmd.FullCommand():
		err = runReplay()
	}
	if err != nil {
		log.WithError(err).Fatal("polyclip failed")
	}
}

func runClip() error {
	var subject, clip polyclip.Polygon
	var err error
	if *svgPath != "" {
		subject, clip, err = readSVG(*svgPath)
	} else {
		subject, clip, err = readPolygons(os.Stdin)
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"subject": len(subject),
		"clip":    len(clip),
	}).Debug("read polygons")

	return clipAndEmit(subject, clip)
}

func runReplay() error {
	script, err := os.Open(*replayPath)
	if err != nil {
		return err
	}
	defer script.Close()

	session := NewSession()
	log.Info(session.Prompt())
	return replay(script, session, emit)
}

func readSVG(path string) (subject, clip polyclip.Polygon, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return internal.ParseSVG(f)
}

func clipAndEmit(subject, clip polyclip.Polygon) error {
	var result polyclip.ClipResult
	var err error
	if *dump {
		var table string
		result, table, err = polyclip.ClipVerbose(subject, clip)
		if table != "" {
			log.Debug("vertex table\n" + table)
		}
	} else {
		result, err = polyclip.Clip(subject, clip)
	}
	if err != nil {
		return err
	}
	return emit(result)
}

// Print the result sets, and draw them if asked to
func emit(result polyclip.ClipResult) error {
	log.WithFields(logrus.Fields{
		"result":  len(result.Result),
		"subject": len(result.LeftoverSubject),
		"clip":    len(result.LeftoverClip),
	}).Info("clipped")

	if err := writeResult(os.Stdout, result); err != nil {
		return err
	}
	return draw(result, drawOptions{
		Path:      *pngPath,
		Scale:     *scale,
		LineWidth: *lineWidth,
		Imgcat:    *showImage,
	})
}
