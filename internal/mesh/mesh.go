package mesh

import (
	"errors"
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

var (
	// ErrBadIndex is returned when a face references a vertex that does not exist.
	ErrBadIndex = errors.New("vertex index out of range")

	// ErrDegenerateFace is returned for faces with fewer than 3 vertices or
	// repeated consecutive vertices.
	ErrDegenerateFace = errors.New("degenerate face")

	// ErrNonManifold is returned when an edit cannot produce simple face cycles.
	ErrNonManifold = errors.New("non-manifold geometry")
)

// Face is a cyclic sequence of vertex indices. Degree == number of edges.
type Face []int

// Degree returns the number of edges (== vertices) of the face.
func (f Face) Degree() int {
	return len(f)
}

// Edges returns the face's edges in cycle order.
func (f Face) Edges() []Edge {
	n := len(f)
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = NewEdge(f[i], f[(i+1)%n])
	}
	return edges
}

// Edge is an unordered vertex pair, always stored with A < B.
type Edge struct {
	A, B int
}

// NewEdge returns the normalized edge between a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Other returns the endpoint of e that is not v.
func (e Edge) Other(v int) int {
	if e.A == v {
		return e.B
	}
	return e.A
}

// Mesh is a polygon mesh: vertex positions plus faces indexing into them.
// Hard holds edges tagged as hard; the tag survives topology edits.
type Mesh struct {
	Name      string
	Positions []vec3.T
	Faces     []Face
	Hard      map[Edge]bool
}

// New returns an empty named mesh.
func New(name string) *Mesh {
	return &Mesh{Name: name, Hard: make(map[Edge]bool)}
}

// AddVertex appends a position and returns its index.
func (m *Mesh) AddVertex(p vec3.T) int {
	m.Positions = append(m.Positions, p)
	return len(m.Positions) - 1
}

// AddFace appends a face and returns its index.
func (m *Mesh) AddFace(verts ...int) int {
	f := make(Face, len(verts))
	copy(f, verts)
	m.Faces = append(m.Faces, f)
	return len(m.Faces) - 1
}

// SetHard tags or untags the edge between a and b.
func (m *Mesh) SetHard(a, b int, hard bool) {
	if m.Hard == nil {
		m.Hard = make(map[Edge]bool)
	}
	e := NewEdge(a, b)
	if hard {
		m.Hard[e] = true
	} else {
		delete(m.Hard, e)
	}
}

// IsHard reports whether the edge is tagged hard.
func (m *Mesh) IsHard(e Edge) bool {
	return m.Hard[e]
}

// Empty reports whether the mesh has no usable geometry.
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Positions) == 0 || len(m.Faces) == 0
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Name:      m.Name,
		Positions: make([]vec3.T, len(m.Positions)),
		Faces:     make([]Face, len(m.Faces)),
		Hard:      make(map[Edge]bool, len(m.Hard)),
	}
	copy(c.Positions, m.Positions)
	for i, f := range m.Faces {
		c.Faces[i] = append(Face(nil), f...)
	}
	for e := range m.Hard {
		c.Hard[e] = true
	}
	return c
}

// Validate checks that every face references existing vertices and is not
// degenerate.
func (m *Mesh) Validate() error {
	nv := len(m.Positions)
	for fi, f := range m.Faces {
		if len(f) < 3 {
			return fmt.Errorf("mesh: face %d has %d vertices: %w", fi, len(f), ErrDegenerateFace)
		}
		for i, v := range f {
			if v < 0 || v >= nv {
				return fmt.Errorf("mesh: face %d vertex %d: %w", fi, v, ErrBadIndex)
			}
			if v == f[(i+1)%len(f)] {
				return fmt.Errorf("mesh: face %d repeats vertex %d: %w", fi, v, ErrDegenerateFace)
			}
		}
	}
	return nil
}

// Centroid returns the average position of the face's vertices.
func (m *Mesh) Centroid(f Face) vec3.T {
	var c vec3.T
	for _, v := range f {
		c.Add(&m.Positions[v])
	}
	if len(f) > 0 {
		c.Scale(1 / float64(len(f)))
	}
	return c
}

// Normal returns the unit face normal using Newell's method, which is
// stable for non-planar polygons.
func (m *Mesh) Normal(f Face) vec3.T {
	var n vec3.T
	for i := range f {
		a := m.Positions[f[i]]
		b := m.Positions[f[(i+1)%len(f)]]
		n[0] += (a[1] - b[1]) * (a[2] + b[2])
		n[1] += (a[2] - b[2]) * (a[0] + b[0])
		n[2] += (a[0] - b[0]) * (a[1] + b[1])
	}
	if n.Length() < 1e-12 {
		return vec3.Zero
	}
	return n.Normalized()
}

// DegreeHistogram counts faces by edge count.
func (m *Mesh) DegreeHistogram() map[int]int {
	h := make(map[int]int)
	for _, f := range m.Faces {
		h[len(f)]++
	}
	return h
}

// compact drops vertices no face references and hard tags for edges that no
// longer exist, renumbering the survivors in their original order.
func (m *Mesh) compact() {
	used := make([]bool, len(m.Positions))
	present := make(map[Edge]bool)
	for _, f := range m.Faces {
		for _, v := range f {
			used[v] = true
		}
		for _, e := range f.Edges() {
			present[e] = true
		}
	}

	remap := make([]int, len(m.Positions))
	positions := make([]vec3.T, 0, len(m.Positions))
	for v, ok := range used {
		if !ok {
			remap[v] = -1
			continue
		}
		remap[v] = len(positions)
		positions = append(positions, m.Positions[v])
	}
	m.Positions = positions

	for _, f := range m.Faces {
		for i, v := range f {
			f[i] = remap[v]
		}
	}

	hard := make(map[Edge]bool, len(m.Hard))
	for e := range m.Hard {
		if !present[e] {
			continue
		}
		hard[NewEdge(remap[e.A], remap[e.B])] = true
	}
	m.Hard = hard
}
