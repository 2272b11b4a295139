package hexagon

import "hexmesh/internal/mesh"

// findCenters returns the interior vertices of valence 6. Boundary vertices
// never qualify, whatever their valence.
func findCenters(m *mesh.Mesh) []int {
	ix := mesh.NewIndex(m)
	var centers []int
	for v := range m.Positions {
		if ix.Valence(v) == CenterValence && !ix.IsBoundaryVertex(v) {
			centers = append(centers, v)
		}
	}
	return centers
}

// collapseCenters deletes every edge touching a center, merging the ring of
// faces around each center into one polygon.
func collapseCenters(m *mesh.Mesh, centers []int) (*mesh.Mesh, error) {
	if len(centers) == 0 {
		return m, nil
	}
	ix := mesh.NewIndex(m)
	seen := make(map[mesh.Edge]bool)
	var edges []mesh.Edge
	for _, v := range centers {
		for _, e := range ix.VertEdges[v] {
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	return mesh.DeleteEdges(m, edges)
}

// cleanup dissolves every vertex left with two or fewer edges.
func cleanup(m *mesh.Mesh) *mesh.Mesh {
	ix := mesh.NewIndex(m)
	var weak []int
	for v := range m.Positions {
		if ix.Valence(v) <= 2 {
			weak = append(weak, v)
		}
	}
	if len(weak) == 0 {
		return m
	}
	return mesh.DissolveVertices(m, weak)
}

func facesBelow(m *mesh.Mesh, degree int) []int {
	var out []int
	for fi, f := range m.Faces {
		if f.Degree() < degree {
			out = append(out, fi)
		}
	}
	return out
}

func facesAtLeast(m *mesh.Mesh, degree int) []int {
	var out []int
	for fi, f := range m.Faces {
		if f.Degree() >= degree {
			out = append(out, fi)
		}
	}
	return out
}
