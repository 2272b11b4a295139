package mesh

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Plane builds a flat cols x rows grid of unit quads in the XY plane.
// Vertex (i, j) has index j*(cols+1)+i; faces wind counter-clockwise.
func Plane(cols, rows int) *Mesh {
	m := New("plane")
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			m.AddVertex(vec3.T{float64(i), float64(j), 0})
		}
	}
	at := func(i, j int) int { return j*(cols+1) + i }
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			m.AddFace(at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1))
		}
	}
	return m
}

// Torus builds a closed quad torus with major segments around the main ring
// and minor segments around the tube. Both counts need to be at least 3.
func Torus(major, minor int, radius, tube float64) *Mesh {
	m := New("torus")
	for i := 0; i < major; i++ {
		u := 2 * math.Pi * float64(i) / float64(major)
		for j := 0; j < minor; j++ {
			v := 2 * math.Pi * float64(j) / float64(minor)
			r := radius + tube*math.Cos(v)
			m.AddVertex(vec3.T{r * math.Cos(u), r * math.Sin(u), tube * math.Sin(v)})
		}
	}
	at := func(i, j int) int { return (i%major)*minor + j%minor }
	for i := 0; i < major; i++ {
		for j := 0; j < minor; j++ {
			m.AddFace(at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1))
		}
	}
	return m
}
