package mesh

import "github.com/ungerik/go3d/float64/vec3"

// SubdivideOptions controls one level of Subdivide.
type SubdivideOptions struct {
	// KeepBorder pins boundary vertices to their original positions.
	KeepBorder bool
	// Continuity blends vertex placement between linear (0) and fully
	// smoothed (1) positions.
	Continuity float64
}

// DefaultSubdivideOptions matches a smooth, border-keeping single level.
func DefaultSubdivideOptions() SubdivideOptions {
	return SubdivideOptions{KeepBorder: true, Continuity: 1}
}

// Subdivide performs one Catmull-Clark style level. Every n-gon becomes n
// quads (vertex, edge point, face point, edge point) with the winding of
// the source face. Original vertices keep their index and valence; edge
// points follow at len(Positions)+edge order and face points after those.
// Hard edges pass their tag on to both halves.
func Subdivide(m *Mesh, opts SubdivideOptions) *Mesh {
	ix := NewIndex(m)
	nv := len(m.Positions)
	ne := len(ix.Edges)
	t := clamp01(opts.Continuity)

	facePts := make([]vec3.T, len(m.Faces))
	for fi, f := range m.Faces {
		facePts[fi] = m.Centroid(f)
	}

	edgeID := make(map[Edge]int, ne)
	edgePts := make([]vec3.T, ne)
	for i, e := range ix.Edges {
		edgeID[e] = nv + i
		mid := vec3.Interpolate(&m.Positions[e.A], &m.Positions[e.B], 0.5)
		faces := ix.EdgeFaces[e]
		if len(faces) != 2 {
			edgePts[i] = mid
			continue
		}
		smooth := vec3.Add(&m.Positions[e.A], &m.Positions[e.B])
		smooth.Add(&facePts[faces[0]])
		smooth.Add(&facePts[faces[1]])
		smooth.Scale(0.25)
		edgePts[i] = vec3.Interpolate(&mid, &smooth, t)
	}

	out := &Mesh{
		Name:      m.Name,
		Positions: make([]vec3.T, 0, nv+ne+len(m.Faces)),
		Faces:     make([]Face, 0, len(m.Faces)*4),
		Hard:      make(map[Edge]bool, len(m.Hard)*2),
	}
	for v := 0; v < nv; v++ {
		p := m.Positions[v]
		smooth := vertexPoint(m, ix, v, facePts, opts.KeepBorder)
		out.Positions = append(out.Positions, vec3.Interpolate(&p, &smooth, t))
	}
	out.Positions = append(out.Positions, edgePts...)
	out.Positions = append(out.Positions, facePts...)

	for fi, f := range m.Faces {
		fp := nv + ne + fi
		n := len(f)
		for i, v := range f {
			next := f[(i+1)%n]
			prev := f[(i+n-1)%n]
			out.Faces = append(out.Faces, Face{
				v,
				edgeID[NewEdge(v, next)],
				fp,
				edgeID[NewEdge(prev, v)],
			})
		}
	}

	for e := range m.Hard {
		id, ok := edgeID[e]
		if !ok {
			continue
		}
		out.Hard[NewEdge(e.A, id)] = true
		out.Hard[NewEdge(id, e.B)] = true
	}
	return out
}

// vertexPoint returns the smoothed position of an original vertex.
// Interior: (Q + 2R + (n-3)P) / n. Boundary: 3/4 P + 1/8 of each boundary
// neighbour, or P itself when the border is kept.
func vertexPoint(m *Mesh, ix *Index, v int, facePts []vec3.T, keepBorder bool) vec3.T {
	p := m.Positions[v]
	edges := ix.VertEdges[v]
	if len(edges) == 0 {
		return p
	}

	var border []int
	for _, e := range edges {
		if len(ix.EdgeFaces[e]) != 2 {
			border = append(border, e.Other(v))
		}
	}
	if len(border) > 0 {
		if keepBorder || len(border) != 2 {
			return p
		}
		s := p.Scaled(0.75)
		a := m.Positions[border[0]].Scaled(0.125)
		b := m.Positions[border[1]].Scaled(0.125)
		s.Add(&a)
		s.Add(&b)
		return s
	}

	n := float64(len(edges))
	var q vec3.T
	for _, fi := range ix.VertFaces[v] {
		q.Add(&facePts[fi])
	}
	q.Scale(1 / float64(len(ix.VertFaces[v])))

	var r vec3.T
	for _, e := range edges {
		mid := vec3.Interpolate(&m.Positions[e.A], &m.Positions[e.B], 0.5)
		r.Add(&mid)
	}
	r.Scale(2 / n)

	out := p.Scaled(n - 3)
	out.Add(&q)
	out.Add(&r)
	out.Scale(1 / n)
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
