package objio

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"hexmesh/internal/hexagon"
	"hexmesh/internal/mesh"
)

const twoObjects = `# two quads sharing nothing
mtllib scene.mtl
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1
o left
f 1/1/1 2/1/1 3/1/1 4/1/1
v 2 0 0
v 3 0 0
v 3 1 0
v 2 1 0
o right
usemtl red
s off
f -4//1 -3//1 -2//1 -1//1
`

func TestParseSplitsObjects(t *testing.T) {
	meshes, err := Parse(strings.NewReader(twoObjects), "scene")
	if err != nil {
		t.Fatal(err)
	}
	if len(meshes) != 2 {
		t.Fatalf("meshes = %d, want 2", len(meshes))
	}
	for i, name := range []string{"left", "right"} {
		m := meshes[i]
		if m.Name != name {
			t.Errorf("mesh %d name = %q, want %q", i, m.Name, name)
		}
		if len(m.Positions) != 4 || len(m.Faces) != 1 {
			t.Errorf("mesh %s: %d positions, %d faces", name, len(m.Positions), len(m.Faces))
		}
		if !reflect.DeepEqual(m.Faces[0], mesh.Face{0, 1, 2, 3}) {
			t.Errorf("mesh %s face = %v", name, m.Faces[0])
		}
	}
	if meshes[1].Positions[0][0] != 2 {
		t.Errorf("right mesh starts at %v, want x=2", meshes[1].Positions[0])
	}
}

func TestParseDefaultName(t *testing.T) {
	meshes, err := Parse(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), "tri")
	if err != nil {
		t.Fatal(err)
	}
	if len(meshes) != 1 || meshes[0].Name != "tri" {
		t.Fatalf("got %+v", meshes)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name, src string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad float", "v 1 2 x\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"forward ref", "v 0 0 0\nv 1 0 0\nf 1 2 3\n"},
		{"junk index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf a b c\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.src), "x"); err == nil {
				t.Fatal("expected error")
			} else if !strings.Contains(err.Error(), "line") {
				t.Errorf("error %q has no line number", err)
			}
		})
	}
}

func TestRoundTripResult(t *testing.T) {
	res, err := hexagon.Tessellate(mesh.Torus(6, 4, 3, 1), hexagon.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	other := mesh.Plane(2, 2)

	var buf bytes.Buffer
	if err := Write(&buf, []*mesh.Mesh{res.Mesh, other}); err != nil {
		t.Fatal(err)
	}
	back, err := Parse(&buf, "x")
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 {
		t.Fatalf("meshes = %d, want 2", len(back))
	}
	for i, want := range []*mesh.Mesh{res.Mesh, other} {
		got := back[i]
		if got.Name != want.Name {
			t.Errorf("name = %q, want %q", got.Name, want.Name)
		}
		if len(got.Positions) != len(want.Positions) || len(got.Faces) != len(want.Faces) {
			t.Errorf("%s: %d/%d positions, %d/%d faces", want.Name,
				len(got.Positions), len(want.Positions), len(got.Faces), len(want.Faces))
		}
		if !reflect.DeepEqual(got.DegreeHistogram(), want.DegreeHistogram()) {
			t.Errorf("%s: degree histogram changed", want.Name)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plane.obj")
	if err := WriteFile(path, []*mesh.Mesh{mesh.Plane(3, 2)}); err != nil {
		t.Fatal(err)
	}
	back, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 || len(back[0].Faces) != 6 {
		t.Fatalf("got %+v", back)
	}
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("missing file parsed")
	}
}
