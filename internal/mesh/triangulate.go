package mesh

// Triangulate returns a copy of m with every face split into triangles.
// Quads split along the v0-v2 diagonal; larger polygons fan out from v0.
// New diagonals are never hard.
func Triangulate(m *Mesh) *Mesh {
	out := &Mesh{
		Name:      m.Name,
		Positions: append(m.Positions[:0:0], m.Positions...),
		Faces:     make([]Face, 0, len(m.Faces)*2),
		Hard:      make(map[Edge]bool, len(m.Hard)),
	}
	for e := range m.Hard {
		out.Hard[e] = true
	}
	for _, f := range m.Faces {
		if len(f) <= 3 {
			out.Faces = append(out.Faces, append(Face(nil), f...))
			continue
		}
		for i := 1; i+1 < len(f); i++ {
			out.Faces = append(out.Faces, Face{f[0], f[i], f[i+1]})
		}
	}
	return out
}
