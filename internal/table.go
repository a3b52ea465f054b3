package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyclip/internal/dbg"
)

type Origin int

const (
	SubjectOriginal Origin = iota
	ClipOriginal
	IntersectionVertex
)

func (o Origin) String() string {
	switch o {
	case SubjectOriginal:
		return "subject"
	case ClipOriginal:
		return "clip"
	case IntersectionVertex:
		return "intersection"
	}
	panic("invalid origin")
}

// Parameter given to original vertices. Inserted intersections always have a
// smaller parameter on each chain, so an insertion scan stops at the next
// original vertex.
const originalParam = 1.0

// Index for a chain a vertex does not belong to
const noLink = -1

// A vertex is on the subject chain, the clip chain, or (for intersections)
// both. The chains are circular linked lists threaded through the table by
// index.
type Vertex struct {
	Point  Point
	Origin Origin
	// Only meaningful for intersection vertices
	Crossing Crossing
	// Positions along the original subject and clip edges. These only order
	// intersections that land on the same edge.
	ParamSubject, ParamClip float64
	NextSubject, NextClip   int
	Visited                 bool
}

func (v *Vertex) IsIntersection() bool {
	return v.Origin == IntersectionVertex
}

// The vertex table for one clip. Subject vertices occupy [0, SubjectEnd), clip
// vertices occupy [SubjectEnd, ClipEnd), and intersections are appended after
// ClipEnd.
type VertexTable struct {
	Vertices   []Vertex
	SubjectEnd int
	ClipEnd    int
}

func NewVertexTable(subject, clip Polygon) *VertexTable {
	table := &VertexTable{}
	table.addPolygon(subject, SubjectOriginal)
	table.SubjectEnd = len(table.Vertices)
	table.addPolygon(clip, ClipOriginal)
	table.ClipEnd = len(table.Vertices)
	return table
}

// Append one vertex per point, skipping each contour's closing point, and link
// every contour into its own circle.
func (table *VertexTable) addPolygon(poly Polygon, origin Origin) {
	for _, contour := range poly {
		// Not a closed loop. Validated input never has these.
		if len(contour) < 4 {
			continue
		}
		head := len(table.Vertices)
		count := len(contour) - 1
		for i, point := range contour[:count] {
			next := head + CircularIndex(i+1, count)
			vertex := Vertex{
				Point:        point,
				Origin:       origin,
				ParamSubject: originalParam,
				ParamClip:    originalParam,
				NextSubject:  noLink,
				NextClip:     noLink,
			}
			if origin == SubjectOriginal {
				vertex.NextSubject = next
			} else {
				vertex.NextClip = next
			}
			table.Vertices = append(table.Vertices, vertex)
		}
	}
}

// Follow the chain the walk would take out of this vertex: originals stay on
// their own chain, entering intersections continue along the subject, and
// exiting intersections switch to the clip.
func (table *VertexTable) next(index int) int {
	vertex := &table.Vertices[index]
	switch vertex.Origin {
	case SubjectOriginal:
		return vertex.NextSubject
	case ClipOriginal:
		return vertex.NextClip
	}
	if vertex.Crossing == Entering {
		return vertex.NextSubject
	}
	return vertex.NextClip
}

func (table *VertexTable) String() string {
	var b strings.Builder
	for i := range table.Vertices {
		b.WriteString(table.describe(i))
		b.WriteByte('\n')
	}
	return b.String()
}

func (table *VertexTable) describe(index int) string {
	vertex := &table.Vertices[index]
	kind := vertex.Origin.String()
	if vertex.IsIntersection() {
		kind = fmt.Sprintf("%s (%s)", kind, vertex.Crossing)
	}
	visited := ""
	if vertex.Visited {
		visited = " visited"
	}
	return fmt.Sprintf("%3d %s %-24s (%g, %g) s=%g t=%g ➜ subject %s, clip %s%s",
		index,
		table.colorize(index, table.DbgName(index)),
		kind,
		vertex.Point.X, vertex.Point.Y,
		vertex.ParamSubject, vertex.ParamClip,
		table.DbgName(vertex.NextSubject),
		table.DbgName(vertex.NextClip),
		visited,
	)
}

type vertexKey struct {
	table *VertexTable
	index int
}

func (table *VertexTable) DbgName(index int) string {
	if index == noLink {
		return dbg.Name(nil)
	}
	return dbg.Name(vertexKey{table, index})
}

func (table *VertexTable) colorize(index int, name string) string {
	switch table.Vertices[index].Origin {
	case SubjectOriginal:
		return aurora.Green(name).String()
	case ClipOriginal:
		return aurora.Cyan(name).String()
	}
	return aurora.Red(name).String()
}
