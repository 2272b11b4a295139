package mesh

// Components groups vertices into connected shells. Vertices that no face
// uses are left out. Shells are ordered by their lowest vertex index.
func Components(m *Mesh) [][]int {
	adj := make([][]int, len(m.Positions))
	for _, f := range m.Faces {
		for _, e := range f.Edges() {
			adj[e.A] = append(adj[e.A], e.B)
			adj[e.B] = append(adj[e.B], e.A)
		}
	}

	visited := make([]bool, len(m.Positions))
	var components [][]int
	for v := range m.Positions {
		if visited[v] || len(adj[v]) == 0 {
			continue
		}
		var comp []int
		stack := []int{v}
		for len(stack) > 0 {
			curr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[curr] {
				continue
			}
			visited[curr] = true
			comp = append(comp, curr)
			for _, nb := range adj[curr] {
				if !visited[nb] {
					stack = append(stack, nb)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}
