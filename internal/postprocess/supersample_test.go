package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func TestDownsampleKeepsOpaqueColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 40, B: 10, A: 255})
		}
	}
	dst := Downsample(src, 4)
	if dst.Bounds().Dx() != 4 || dst.Bounds().Dy() != 4 {
		t.Fatalf("size = %v", dst.Bounds())
	}
	c := dst.NRGBAAt(1, 1)
	if c.A != 255 || c.R < 195 || c.R > 205 {
		t.Errorf("center = %v, want about the source color", c)
	}
}

func TestDownsampleNoUpscale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if Downsample(src, 8) != src {
		t.Error("small image was resampled")
	}
}
