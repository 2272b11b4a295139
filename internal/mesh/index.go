package mesh

import "sort"

// Index is the adjacency of a mesh at one point in time. It must be rebuilt
// after every structural edit; nothing in it tracks later changes.
type Index struct {
	// Edges lists every edge once, in first-encounter order over the faces.
	Edges     []Edge
	EdgeFaces map[Edge][]int
	VertEdges [][]Edge
	VertFaces [][]int
}

// NewIndex derives edge and incidence tables from the face cycles of m.
func NewIndex(m *Mesh) *Index {
	ix := &Index{
		EdgeFaces: make(map[Edge][]int),
		VertEdges: make([][]Edge, len(m.Positions)),
		VertFaces: make([][]int, len(m.Positions)),
	}
	for fi, f := range m.Faces {
		for _, v := range f {
			ix.VertFaces[v] = append(ix.VertFaces[v], fi)
		}
		for _, e := range f.Edges() {
			faces, seen := ix.EdgeFaces[e]
			if !seen {
				ix.Edges = append(ix.Edges, e)
				ix.VertEdges[e.A] = append(ix.VertEdges[e.A], e)
				ix.VertEdges[e.B] = append(ix.VertEdges[e.B], e)
			}
			ix.EdgeFaces[e] = append(faces, fi)
		}
	}
	for v := range ix.VertEdges {
		edges := ix.VertEdges[v]
		sort.Slice(edges, func(i, j int) bool {
			return edges[i].Other(v) < edges[j].Other(v)
		})
	}
	return ix
}

// Valence returns the number of distinct edges incident to v.
func (ix *Index) Valence(v int) int {
	return len(ix.VertEdges[v])
}

// IsBoundaryEdge reports whether e borders exactly one face.
func (ix *Index) IsBoundaryEdge(e Edge) bool {
	return len(ix.EdgeFaces[e]) == 1
}

// IsBoundaryVertex reports whether v is an endpoint of a boundary edge.
func (ix *Index) IsBoundaryVertex(v int) bool {
	for _, e := range ix.VertEdges[v] {
		if ix.IsBoundaryEdge(e) {
			return true
		}
	}
	return false
}

// BoundaryEdges returns every edge bordering exactly one face.
func (ix *Index) BoundaryEdges() []Edge {
	var out []Edge
	for _, e := range ix.Edges {
		if ix.IsBoundaryEdge(e) {
			out = append(out, e)
		}
	}
	return out
}

// ValenceHistogram counts vertices by valence. Isolated vertices count as 0.
func (ix *Index) ValenceHistogram() map[int]int {
	h := make(map[int]int)
	for v := range ix.VertEdges {
		h[ix.Valence(v)]++
	}
	return h
}
