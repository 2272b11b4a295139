package raster

import (
	"image/color"
	"math"
)

// RasterizeTriangle fills one screen-space triangle with a flat color using
// the z-buffer (larger z is closer). shade is the lighting scalar of the
// polygon the triangle belongs to.
//
// This is the hot path: no allocation in the pixel loop.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	vi [3]int,
	base color.NRGBA,
	shade float64,
	lc *LightConfig,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	// Bounding box
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	r, g, b := shadeChannel(base.R, shade, lc), shadeChannel(base.G, shade, lc), shadeChannel(base.B, shade, lc)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = r
			fb.Color[pxIdx+1] = g
			fb.Color[pxIdx+2] = b
			fb.Color[pxIdx+3] = base.A
		}
	}
}

// RasterizeLine draws an edge on top of the filled faces. bias pulls the
// line toward the camera so it wins the depth test against its own faces.
func RasterizeLine(fb *FrameBuffer, x0, y0, z0, x1, y1, z1 float64, c color.NRGBA, bias float64) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(x0 + (x1-x0)*t + 0.5)
		y := int(y0 + (y1-y0)*t + 0.5)
		if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
			continue
		}
		z := z0 + (z1-z0)*t + bias
		idx := y*fb.Width + x
		if z < fb.ZBuf[idx] {
			continue
		}
		fb.ZBuf[idx] = z
		p := idx * 4
		fb.Color[p] = c.R
		fb.Color[p+1] = c.G
		fb.Color[p+2] = c.B
		fb.Color[p+3] = c.A
	}
}

// shadeChannel decodes sRGB, applies lighting and ACES, and re-encodes.
func shadeChannel(c uint8, shade float64, lc *LightConfig) uint8 {
	lin := srgbToLinear[c] * shade * lc.Exposure
	return clamp255(math.Pow(ACESTonemap(lin), lc.InvGamma) * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
