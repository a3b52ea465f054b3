package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/osuushi/polyclip"
	"github.com/osuushi/polyclip/internal"
	"github.com/pkg/errors"
)

// Write the three sets in the same "x y" format readPolygons takes, each under
// a "# name" header. Leftovers are open polylines, so feeding them back in
// closes them.
func writeResult(w io.Writer, result polyclip.ClipResult) error {
	sections := []struct {
		name string
		poly polyclip.Polygon
	}{
		{"result", result.Result},
		{"subject", result.LeftoverSubject},
		{"clip", result.LeftoverClip},
	}

	out := bufio.NewWriter(w)
	for _, section := range sections {
		fmt.Fprintf(out, "# %s\n", section.name)
		for _, contour := range section.poly {
			for _, p := range contour {
				fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
			}
			fmt.Fprintln(out)
		}
	}
	return out.Flush()
}

type drawOptions struct {
	// Where to write the PNG. Empty means a temporary file when Imgcat is set,
	// and no drawing at all otherwise.
	Path      string
	Scale     float64
	LineWidth float64
	Imgcat    bool
}

func draw(result polyclip.ClipResult, opts drawOptions) error {
	if opts.Path == "" && !opts.Imgcat {
		return nil
	}

	path := opts.Path
	if path == "" {
		f, err := os.CreateTemp("", "polyclip-*.png")
		if err != nil {
			return errors.Wrap(err, "create temporary png")
		}
		path = f.Name()
		defer os.Remove(path)
		if err := f.Close(); err != nil {
			return errors.Wrap(err, "close temporary png")
		}
	}

	if err := result.SavePNG(path, opts.Scale, opts.LineWidth); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	log.WithField("path", path).Debug("saved drawing")

	if opts.Imgcat {
		return internal.PrintToTerminal(path, os.Stdout)
	}
	return nil
}
