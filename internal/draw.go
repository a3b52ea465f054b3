package internal

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the shapes, in pixels
const drawPadding = 20

// Line colours: red for the clipped region, green for what is left of the
// subject, cyan for what is left of the clip polygon.
var (
	resultColor          = [3]float64{1, 0, 0}
	leftoverSubjectColor = [3]float64{0, 1, 0}
	leftoverClipColor    = [3]float64{0, 1, 1}
)

// Draw the three polygon sets as line strips on a black background. Input
// comes from screen coordinates, so unlike a plot, y grows downward and the
// context is not flipped.
func (r ClipResult) Render(scale float64, lineWidth float64) image.Image {
	return r.context(scale, lineWidth).Image()
}

func (r ClipResult) SavePNG(path string, scale float64, lineWidth float64) error {
	return r.context(scale, lineWidth).SavePNG(path)
}

func (r ClipResult) context(scale float64, lineWidth float64) *gg.Context {
	lo, hi, ok := Bounds(r.Result, r.LeftoverSubject, r.LeftoverClip)
	if !ok {
		lo, hi = Point{}, Point{}
	}

	width := int(scale*(hi.X-lo.X)) + drawPadding*2
	height := int(scale*(hi.Y-lo.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-lo.X, -lo.Y)

	// gg strokes in device space, so the width is in pixels at any scale
	c.SetLineWidth(lineWidth)
	drawPolygon(c, r.LeftoverSubject, leftoverSubjectColor)
	drawPolygon(c, r.LeftoverClip, leftoverClipColor)
	drawPolygon(c, r.Result, resultColor)
	return c
}

func drawPolygon(c *gg.Context, poly Polygon, color [3]float64) {
	for _, contour := range poly {
		if len(contour) < 2 {
			continue
		}
		c.MoveTo(contour[0].X, contour[0].Y)
		for _, p := range contour[1:] {
			c.LineTo(p.X, p.Y)
		}
	}
	c.SetRGB(color[0], color[1], color[2])
	c.Stroke()
}

// Print a PNG inline in the terminal (iTerm protocol).
func PrintToTerminal(path string, out io.Writer) error {
	return imgcat.CatFile(path, out)
}
