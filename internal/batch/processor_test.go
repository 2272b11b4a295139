package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"hexmesh/internal/hexagon"
	"hexmesh/internal/mesh"
	"hexmesh/internal/objio"
	"hexmesh/internal/raster"
)

func testConfig(dir string) Config {
	return Config{
		OutputDir:   filepath.Join(dir, "out"),
		Suffix:      "_hex",
		Options:     hexagon.DefaultOptions(),
		Preview:     true,
		PreviewSize: 32,
		Supersample: 2,
		Base:        raster.DefaultBase,
		Workers:     2,
		Quiet:       true,
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "ring.obj")
	if err := objio.WriteFile(good, []*mesh.Mesh{mesh.Torus(6, 4, 3, 1), mesh.Plane(3, 3)}); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.obj")

	cfg := testConfig(dir)
	results := Run(cfg, []string{good, missing})
	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}

	r := results[0]
	if !r.Success {
		t.Fatalf("conversion failed: %s", r.Error)
	}
	if r.Meshes != 2 || r.Centers != 24+4 {
		t.Errorf("result = %+v", r)
	}
	if r.Message != "Hollow hexagons created" {
		t.Errorf("message = %q", r.Message)
	}
	back, err := objio.ParseFile(r.Output)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 {
		t.Errorf("written meshes = %d, want 2", len(back))
	}
	if st, err := os.Stat(r.Preview); err != nil || st.Size() == 0 {
		t.Errorf("preview missing: %v", err)
	}

	if results[1].Success || results[1].Error == "" {
		t.Errorf("missing input reported as %+v", results[1])
	}

	manifest := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := WriteManifest(manifest, results); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 || decoded[0].Output != r.Output {
		t.Errorf("manifest = %+v", decoded)
	}
}

func TestRunReportsPipelineErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tris.obj")
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(input, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(dir)
	cfg.Options.Strict = true
	results := Run(cfg, []string{input})
	if results[0].Success {
		t.Fatal("strict run accepted a triangle")
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "tris_hex.obj")); !os.IsNotExist(err) {
		t.Errorf("output written for a failed conversion: %v", err)
	}
}
