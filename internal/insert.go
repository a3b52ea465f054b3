package internal

// Find every crossing between an original subject edge and an original clip
// edge, and splice a new vertex for it into both chains.
//
// Edges are always read from a frozen copy of the table, so edges split by
// earlier insertions are still tested whole. The parameters of the new vertex
// are relative to those whole edges, which is what keeps several
// intersections on the same edge in order.
func (table *VertexTable) InsertIntersections() {
	origin := append([]Vertex(nil), table.Vertices...)

	for i := 0; i < table.SubjectEnd; i++ {
		subjectEdge := Segment{origin[i].Point, origin[origin[i].NextSubject].Point}
		for j := table.SubjectEnd; j < table.ClipEnd; j++ {
			clipEdge := Segment{origin[j].Point, origin[origin[j].NextClip].Point}
			hit, ok := Intersect(subjectEdge, clipEdge)
			if !ok {
				continue
			}
			table.insert(i, j, hit)
		}
	}
}

func (table *VertexTable) insert(subjectStart, clipStart int, hit Intersection) {
	index := len(table.Vertices)
	vertex := Vertex{
		Point:        hit.Point,
		Origin:       IntersectionVertex,
		Crossing:     hit.Crossing,
		ParamSubject: hit.S,
		ParamClip:    hit.T,
	}

	// Scan past intersections already inserted earlier along the same edge
	cur := subjectStart
	for table.Vertices[table.Vertices[cur].NextSubject].ParamSubject < hit.S {
		cur = table.Vertices[cur].NextSubject
	}
	vertex.NextSubject = table.Vertices[cur].NextSubject
	table.Vertices[cur].NextSubject = index

	cur = clipStart
	for table.Vertices[table.Vertices[cur].NextClip].ParamClip < hit.T {
		cur = table.Vertices[cur].NextClip
	}
	vertex.NextClip = table.Vertices[cur].NextClip
	table.Vertices[cur].NextClip = index

	table.Vertices = append(table.Vertices, vertex)
}
