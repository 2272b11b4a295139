// Package objio reads and writes Wavefront OBJ polygon meshes.
//
// Only positions and face topology are kept. Each "o" or "g" statement that
// follows faces starts a new mesh, so a file holding several objects comes
// back as a selection of meshes with their own local vertex numbering.
package objio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ungerik/go3d/float64/vec3"

	"hexmesh/internal/mesh"
)

// ParseFile reads an OBJ file from disk.
func ParseFile(path string) ([]*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objio: open %s: %w", path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	meshes, err := Parse(f, name)
	if err != nil {
		return nil, fmt.Errorf("objio: %s: %w", path, err)
	}
	return meshes, nil
}

// builder collects the faces of one object and renumbers the global OBJ
// vertices it references into a compact local list.
type builder struct {
	m     *mesh.Mesh
	local map[int]int
}

func newBuilder(name string) *builder {
	return &builder{m: mesh.New(name), local: make(map[int]int)}
}

func (b *builder) vertex(global int, positions []vec3.T) int {
	if v, ok := b.local[global]; ok {
		return v
	}
	v := b.m.AddVertex(positions[global])
	b.local[global] = v
	return v
}

// Parse reads OBJ text. name is used for meshes that have no "o"/"g" name.
func Parse(r io.Reader, name string) ([]*mesh.Mesh, error) {
	var (
		positions []vec3.T
		meshes    []*mesh.Mesh
	)
	cur := newBuilder(name)
	flush := func() {
		if len(cur.m.Faces) > 0 {
			meshes = append(meshes, cur.m)
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var p vec3.T
			for k := 0; k < 3; k++ {
				c, err := strconv.ParseFloat(fields[1+k], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				p[k] = c
			}
			positions = append(positions, p)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			face := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				g, err := parseIndex(tok, len(positions))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				face = append(face, cur.vertex(g, positions))
			}
			cur.m.AddFace(face...)

		case "o", "g":
			objName := name
			if len(fields) > 1 {
				objName = strings.Join(fields[1:], " ")
			}
			if len(cur.m.Faces) == 0 {
				cur.m.Name = objName
				continue
			}
			flush()
			cur = newBuilder(objName)

		default:
			// vt, vn, usemtl, mtllib, s, l and the rest carry nothing we keep.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return meshes, nil
}

// parseIndex resolves the position part of a "v", "v/vt", "v//vn" or
// "v/vt/vn" token to a 0-based index. Negative indices count back from the
// last vertex read so far.
func parseIndex(tok string, count int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q", tok)
	}
	switch {
	case n > 0:
		n--
	case n < 0:
		n = count + n
	default:
		return 0, fmt.Errorf("face index 0 is not valid")
	}
	if n < 0 || n >= count {
		return 0, fmt.Errorf("face index %s out of range (%d vertices)", tok, count)
	}
	return n, nil
}

// WriteFile writes meshes to path as one OBJ file.
func WriteFile(path string, meshes []*mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objio: create %s: %w", path, err)
	}
	if err := Write(f, meshes); err != nil {
		f.Close()
		return fmt.Errorf("objio: write %s: %w", path, err)
	}
	return f.Close()
}

// Write emits one "o" block per mesh with 1-based global indices.
func Write(w io.Writer, meshes []*mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	base := 1
	for i, m := range meshes {
		name := m.Name
		if name == "" {
			name = fmt.Sprintf("mesh%d", i)
		}
		fmt.Fprintf(bw, "o %s\n", name)
		for _, p := range m.Positions {
			fmt.Fprintf(bw, "v %s %s %s\n", fmtFloat(p[0]), fmtFloat(p[1]), fmtFloat(p[2]))
		}
		for _, f := range m.Faces {
			bw.WriteString("f")
			for _, v := range f {
				bw.WriteByte(' ')
				bw.WriteString(strconv.Itoa(base + v))
			}
			bw.WriteByte('\n')
		}
		base += len(m.Positions)
	}
	return bw.Flush()
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
