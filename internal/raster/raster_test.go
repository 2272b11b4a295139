package raster

import (
	"image"
	"image/color"
	"testing"

	"hexmesh/internal/hexagon"
	"hexmesh/internal/mesh"
)

func opaque(img *image.NRGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestRenderMeshesDrawsSomething(t *testing.T) {
	res, err := hexagon.Tessellate(mesh.Torus(8, 6, 3, 1), hexagon.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	img := RenderMeshes([]*mesh.Mesh{res.Mesh}, DefaultView, DefaultBase, 64, 2)
	if got := img.Bounds().Dx(); got != 128 {
		t.Fatalf("width = %d, want 128", got)
	}
	if opaque(img) == 0 {
		t.Fatal("nothing rendered")
	}
	// Corners stay inside the margin.
	if img.NRGBAAt(0, 0).A != 0 || img.NRGBAAt(127, 127).A != 0 {
		t.Error("corner pixel covered")
	}
}

func TestRenderEmpty(t *testing.T) {
	img := RenderMeshes(nil, DefaultView, DefaultBase, 32, 1)
	if opaque(img) != 0 {
		t.Error("empty scene rendered pixels")
	}
}

func TestRasterizeTriangleDepth(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	lc := DefaultLightConfig()
	px := []float64{1, 14, 1}
	py := []float64{1, 1, 14}
	near := []float64{5, 5, 5}
	far := []float64{1, 1, 1}
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	RasterizeTriangle(fb, px, py, near, [3]int{0, 1, 2}, red, 1, &lc)
	RasterizeTriangle(fb, px, py, far, [3]int{0, 1, 2}, blue, 1, &lc)
	i := (3*16 + 3) * 4
	if fb.Color[i] == 0 || fb.Color[i+2] != 0 {
		t.Errorf("pixel = %v, want the nearer red face", fb.Color[i:i+4])
	}
}

func TestAverageColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0})
	if got := AverageColor(img); got != (color.NRGBA{R: 200, G: 100, B: 0, A: 255}) {
		t.Errorf("average = %v", got)
	}
	if got := AverageColor(image.NewNRGBA(image.Rect(0, 0, 0, 0))); got != DefaultBase {
		t.Errorf("empty average = %v", got)
	}
}
