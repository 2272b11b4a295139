package mesh

import (
	"fmt"
	"sort"
)

// DeleteEdges returns a copy of m with the given edges removed. Removing an
// interior edge merges its two faces; chains of removed edges merge whole
// groups of faces into one polygon, which takes the slot of the group's
// lowest face index. Boundary edges are left alone. Vertices left without
// faces disappear.
func DeleteEdges(m *Mesh, edges []Edge) (*Mesh, error) {
	ix := NewIndex(m)
	uf := newUnionFind(len(m.Faces))
	for _, e := range edges {
		faces := ix.EdgeFaces[e]
		switch {
		case len(faces) == 2:
			uf.union(faces[0], faces[1])
		case len(faces) > 2:
			return nil, fmt.Errorf("mesh: delete edge %d-%d shared by %d faces: %w", e.A, e.B, len(faces), ErrNonManifold)
		}
	}

	groups := make(map[int][]int)
	for fi := range m.Faces {
		r := uf.find(fi)
		groups[r] = append(groups[r], fi)
	}

	out := &Mesh{
		Name:      m.Name,
		Positions: append(m.Positions[:0:0], m.Positions...),
		Faces:     make([]Face, 0, len(groups)),
		Hard:      make(map[Edge]bool, len(m.Hard)),
	}
	for e := range m.Hard {
		out.Hard[e] = true
	}

	for fi, f := range m.Faces {
		members := groups[uf.find(fi)]
		if members[0] != fi {
			continue
		}
		if len(members) == 1 {
			out.Faces = append(out.Faces, append(Face(nil), f...))
			continue
		}
		merged, err := mergeFaces(m, members)
		if err != nil {
			return nil, err
		}
		if len(merged) >= 3 {
			out.Faces = append(out.Faces, merged)
		}
	}

	out.compact()
	return out, nil
}

// mergeFaces walks the outline of a group of faces. Edges shared inside the
// group vanish; what remains must be one simple cycle.
func mergeFaces(m *Mesh, members []int) (Face, error) {
	type halfEdge struct{ from, to int }
	var hes []halfEdge
	present := make(map[halfEdge]bool)
	for _, fi := range members {
		f := m.Faces[fi]
		for i, v := range f {
			he := halfEdge{v, f[(i+1)%len(f)]}
			hes = append(hes, he)
			present[he] = true
		}
	}

	next := make(map[int]int)
	start := -1
	count := 0
	for _, he := range hes {
		if present[halfEdge{he.to, he.from}] {
			continue
		}
		if _, dup := next[he.from]; dup {
			return nil, fmt.Errorf("mesh: merge faces %v: vertex %d pinched: %w", members, he.from, ErrNonManifold)
		}
		next[he.from] = he.to
		if start < 0 {
			start = he.from
		}
		count++
	}
	if start < 0 {
		return nil, nil
	}

	face := make(Face, 0, count)
	v := start
	for {
		face = append(face, v)
		to, ok := next[v]
		if !ok {
			return nil, fmt.Errorf("mesh: merge faces %v: open outline at vertex %d: %w", members, v, ErrNonManifold)
		}
		v = to
		if v == start {
			break
		}
		if len(face) > count {
			return nil, fmt.Errorf("mesh: merge faces %v: outline does not close: %w", members, ErrNonManifold)
		}
	}
	if len(face) != count {
		return nil, fmt.Errorf("mesh: merge faces %v: %d outlines: %w", members, 1+count-len(face), ErrNonManifold)
	}
	return face, nil
}

// DissolveVertices returns a copy of m with the given vertices cut out of
// every face cycle. The two edges meeting at a dissolved vertex become one
// edge, hard only if both were hard. Faces reduced below three vertices are
// dropped.
func DissolveVertices(m *Mesh, verts []int) *Mesh {
	drop := make(map[int]bool, len(verts))
	for _, v := range verts {
		drop[v] = true
	}

	hardAdj := make(map[int]map[int]bool)
	link := func(a, b int) {
		if hardAdj[a] == nil {
			hardAdj[a] = make(map[int]bool)
		}
		hardAdj[a][b] = true
	}
	for e := range m.Hard {
		link(e.A, e.B)
		link(e.B, e.A)
	}
	sorted := append([]int(nil), verts...)
	sort.Ints(sorted)
	for _, v := range sorted {
		nbrs := hardAdj[v]
		var ends []int
		for u := range nbrs {
			ends = append(ends, u)
			delete(hardAdj[u], v)
		}
		delete(hardAdj, v)
		if len(ends) == 2 && ends[0] != ends[1] {
			link(ends[0], ends[1])
			link(ends[1], ends[0])
		}
	}

	out := &Mesh{
		Name:      m.Name,
		Positions: append(m.Positions[:0:0], m.Positions...),
		Faces:     make([]Face, 0, len(m.Faces)),
		Hard:      make(map[Edge]bool),
	}
	for a, nbrs := range hardAdj {
		for b := range nbrs {
			out.Hard[NewEdge(a, b)] = true
		}
	}
	for _, f := range m.Faces {
		kept := make(Face, 0, len(f))
		for _, v := range f {
			if !drop[v] {
				kept = append(kept, v)
			}
		}
		if len(kept) >= 3 {
			out.Faces = append(out.Faces, kept)
		}
	}

	out.compact()
	return out
}

// DeleteFaces returns a copy of m without the given faces. Vertices and hard
// tags used only by those faces go with them.
func DeleteFaces(m *Mesh, faces []int) *Mesh {
	drop := make(map[int]bool, len(faces))
	for _, fi := range faces {
		drop[fi] = true
	}
	out := &Mesh{
		Name:      m.Name,
		Positions: append(m.Positions[:0:0], m.Positions...),
		Faces:     make([]Face, 0, len(m.Faces)),
		Hard:      make(map[Edge]bool, len(m.Hard)),
	}
	for e := range m.Hard {
		out.Hard[e] = true
	}
	for fi, f := range m.Faces {
		if !drop[fi] {
			out.Faces = append(out.Faces, append(Face(nil), f...))
		}
	}
	out.compact()
	return out
}

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union keeps the smaller index as root so group order stays stable.
func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
}
