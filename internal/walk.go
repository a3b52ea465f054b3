package internal

// Trace the clipped region. Each unvisited intersection seeds a loop: follow
// the subject while inside the clip polygon, and switch to the clip polygon
// whenever the subject exits it, until we come back around to the seed.
func (table *VertexTable) WalkResult() Polygon {
	var result Polygon
	for {
		start := table.findUnvisited(table.ClipEnd, len(table.Vertices), IntersectionVertex)
		if start == noLink {
			break
		}

		var contour Contour
		cur := start
		for steps := 0; ; steps++ {
			if steps > len(table.Vertices) {
				fatalf("walk from %s did not return to its seed", table.DbgName(start))
			}
			vertex := &table.Vertices[cur]
			vertex.Visited = true
			contour = append(contour, vertex.Point)
			cur = table.next(cur)
			if cur == start {
				contour = append(contour, table.Vertices[start].Point)
				break
			}
		}
		result = append(result, contour)
	}
	return result
}

// Reconstruct the parts of the subject boundary that lie outside the clip
// polygon. Must run after WalkResult, since it relies on the visited flags to
// skip the edges that went into the result.
func (table *VertexTable) WalkLeftoverSubject() Polygon {
	return table.walkLeftover(0, table.SubjectEnd, SubjectOriginal, Exiting)
}

// Like WalkLeftoverSubject, for the clip boundary outside the subject.
func (table *VertexTable) WalkLeftoverClip() Polygon {
	return table.walkLeftover(table.SubjectEnd, table.ClipEnd, ClipOriginal, Entering)
}

// Walk each circle of one chain, emitting runs of edges. An edge starting at an
// unvisited original vertex, or at an intersection with the given crossing,
// lies outside the other polygon. Any other vertex breaks the run.
func (table *VertexTable) walkLeftover(from, to int, origin Origin, outside Crossing) Polygon {
	var leftover Polygon
	for {
		start := table.findUnvisited(from, to, origin)
		if start == noLink {
			break
		}

		var run Contour
		cur := start
		for steps := 0; ; steps++ {
			if steps > len(table.Vertices) {
				fatalf("%s chain from %s did not return to its seed", origin, table.DbgName(start))
			}
			vertex := &table.Vertices[cur]
			var onEdge bool
			if vertex.IsIntersection() {
				onEdge = vertex.Crossing == outside
			} else {
				onEdge = !vertex.Visited
			}
			vertex.Visited = true

			next := vertex.NextSubject
			if origin == ClipOriginal {
				next = vertex.NextClip
			}

			if onEdge {
				if len(run) == 0 {
					run = append(run, vertex.Point)
				}
				run = append(run, table.Vertices[next].Point)
			} else if len(run) > 0 {
				leftover = append(leftover, run)
				run = nil
			}

			cur = next
			if cur == start {
				if len(run) > 0 {
					leftover = append(leftover, run)
				}
				break
			}
		}
	}
	return leftover
}

func (table *VertexTable) findUnvisited(from, to int, origin Origin) int {
	for i := from; i < to; i++ {
		vertex := &table.Vertices[i]
		if vertex.Origin == origin && !vertex.Visited {
			return i
		}
	}
	return noLink
}
