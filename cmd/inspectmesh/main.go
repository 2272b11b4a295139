package main

import (
	"fmt"
	"os"
	"sort"

	"hexmesh/internal/hexagon"
	"hexmesh/internal/mesh"
	"hexmesh/internal/objio"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspectmesh file.obj")
		os.Exit(1)
	}
	path := os.Args[1]
	meshes, err := objio.ParseFile(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Meshes: %d\n", len(meshes))
	for i, m := range meshes {
		ix := mesh.NewIndex(m)
		fmt.Printf("  Mesh[%d] %q: verts=%d, faces=%d, edges=%d, shells=%d\n",
			i, m.Name, len(m.Positions), len(m.Faces), len(ix.Edges), len(mesh.Components(m)))
		fmt.Printf("    Boundary edges: %d\n", len(ix.BoundaryEdges()))
		if err := m.Validate(); err != nil {
			fmt.Printf("    Invalid: %v\n", err)
		}
		fmt.Printf("    Face degrees: %s\n", histogram(m.DegreeHistogram()))
		fmt.Printf("    Valences:     %s\n", histogram(ix.ValenceHistogram()))

		centers := 0
		for v := range m.Positions {
			if ix.Valence(v) == hexagon.CenterValence && !ix.IsBoundaryVertex(v) {
				centers++
			}
		}
		fmt.Printf("    Interior valence-6 vertices: %d\n", centers)
	}
}

func histogram(h map[int]int) string {
	keys := make([]int, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	s := ""
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d:%d", k, h[k])
	}
	return s
}
