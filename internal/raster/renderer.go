package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"hexmesh/internal/mathutil"
	"hexmesh/internal/mesh"
)

// DefaultBase is the face color used when no swatch is given.
var DefaultBase = color.NRGBA{R: 160, G: 160, B: 170, A: 255}

// EdgeColor is the wireframe color drawn over the faces.
var EdgeColor = color.NRGBA{R: 30, G: 30, B: 36, A: 255}

// DefaultView looks at a Z-up mesh from 30° around and 35° above.
var DefaultView = mathutil.Orbit(30, 35)

// RenderMeshes renders meshes to a size*supersample square NRGBA image,
// framed to their common bounding box. Polygons are fan-triangulated and
// flat shaded with their own normal; edges are drawn on top.
func RenderMeshes(meshes []*mesh.Mesh, view mathutil.Mat3, base color.NRGBA, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	// Bounding box of all transformed vertices
	allMin := vec3.T{math.Inf(1), math.Inf(1), math.Inf(1)}
	allMax := vec3.T{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	count := 0
	for _, m := range meshes {
		for _, p := range m.Positions {
			tv := view.MulVec3(p)
			for k := 0; k < 3; k++ {
				allMin[k] = math.Min(allMin[k], tv[k])
				allMax[k] = math.Max(allMax[k], tv[k])
			}
			count++
		}
	}
	if count == 0 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	center := vec3.Interpolate(&allMin, &allMax, 0.5)
	span := math.Max(allMax[0]-allMin[0], allMax[1]-allMin[1])
	if span < 0.001 {
		span = 0.001
	}

	margin := 16 * supersample
	scale := float64(renderSize-2*margin) / span
	half := float64(renderSize) / 2

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()
	bias := span * scale * 1e-3

	for _, m := range meshes {
		n := len(m.Positions)
		px := make([]float64, n)
		py := make([]float64, n)
		pz := make([]float64, n)
		for i, p := range m.Positions {
			tv := view.MulVec3(p)
			px[i] = half + (tv[0]-center[0])*scale
			py[i] = half - (tv[1]-center[1])*scale
			pz[i] = (tv[2] - center[2]) * scale
		}

		for _, f := range m.Faces {
			normal := view.MulVec3(m.Normal(f))
			shade := lc.ComputeShade(normal)
			for i := 1; i+1 < len(f); i++ {
				RasterizeTriangle(fb, px, py, pz, [3]int{f[0], f[i], f[i+1]}, base, shade, &lc)
			}
		}
		for _, e := range mesh.NewIndex(m).Edges {
			RasterizeLine(fb, px[e.A], py[e.A], pz[e.A], px[e.B], py[e.B], pz[e.B], EdgeColor, bias)
		}
	}

	return fb.Image()
}

// AverageColor returns the mean opaque color of an image, used to turn a
// swatch texture into a single face color.
func AverageColor(tex *image.NRGBA) color.NRGBA {
	b := tex.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return DefaultBase
	}

	var sumR, sumG, sumB float64
	total := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := tex.PixOffset(x, y)
			if tex.Pix[i+3] == 0 {
				continue
			}
			sumR += float64(tex.Pix[i])
			sumG += float64(tex.Pix[i+1])
			sumB += float64(tex.Pix[i+2])
			total++
		}
	}
	if total == 0 {
		return DefaultBase
	}
	n := float64(total)
	return color.NRGBA{R: uint8(sumR/n + 0.5), G: uint8(sumG/n + 0.5), B: uint8(sumB/n + 0.5), A: 255}
}
