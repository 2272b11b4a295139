package mesh

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// InsetOptions controls Inset.
type InsetOptions struct {
	// Offset is the fraction of the way each inner vertex moves from its
	// outer vertex toward the face centroid. Must be in (0, 1).
	Offset float64
	// Thickness moves the inner copy along the face normal. Zero keeps it
	// in the face plane.
	Thickness float64
}

// Inset returns a copy of m where each listed face is replaced by a rim of
// quads around a smaller copy of itself. Faces are processed independently,
// so adjacent faces never share inner vertices. The second return value
// holds the indices of the inner copy faces in the new mesh.
func Inset(m *Mesh, faces []int, opts InsetOptions) (*Mesh, []int, error) {
	if opts.Offset <= 0 || opts.Offset >= 1 {
		return nil, nil, fmt.Errorf("mesh: inset offset %g outside (0, 1)", opts.Offset)
	}
	inset := make(map[int]bool, len(faces))
	for _, fi := range faces {
		if fi < 0 || fi >= len(m.Faces) {
			return nil, nil, fmt.Errorf("mesh: inset face %d of %d", fi, len(m.Faces))
		}
		inset[fi] = true
	}

	out := m.Clone()
	out.Faces = out.Faces[:0]
	var inner []int
	for fi, f := range m.Faces {
		if !inset[fi] {
			out.Faces = append(out.Faces, append(Face(nil), f...))
			continue
		}
		c := m.Centroid(f)
		normal := m.Normal(f)
		lift := normal.Scaled(opts.Thickness)

		ring := make(Face, len(f))
		for i, v := range f {
			p := vec3.Interpolate(&m.Positions[v], &c, opts.Offset)
			p.Add(&lift)
			ring[i] = out.AddVertex(p)
		}
		n := len(f)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			out.Faces = append(out.Faces, Face{f[i], f[j], ring[j], ring[i]})
		}
		out.Faces = append(out.Faces, ring)
		inner = append(inner, len(out.Faces)-1)
	}
	return out, inner, nil
}

// Hollow insets every listed face and deletes the inner copies, leaving an
// open ring of quads where each face was.
func Hollow(m *Mesh, faces []int, opts InsetOptions) (*Mesh, error) {
	out, inner, err := Inset(m, faces, opts)
	if err != nil {
		return nil, err
	}
	return DeleteFaces(out, inner), nil
}
