package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"hexmesh/internal/raster"
)

func TestLoadSwatchPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 120, B: 250, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "swatch.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := LoadSwatch(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != (color.NRGBA{R: 10, G: 120, B: 250, A: 255}) {
		t.Errorf("swatch = %v", got)
	}
}

func TestLoadSwatchDefault(t *testing.T) {
	got, err := LoadSwatch("")
	if err != nil || got != raster.DefaultBase {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.tga")); err == nil {
		t.Error("missing file loaded")
	}
	junk := filepath.Join(dir, "junk.tga")
	if err := os.WriteFile(junk, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSwatch(junk); err == nil {
		t.Error("junk decoded")
	}
}
