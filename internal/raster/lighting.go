package raster

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	LightDir  vec3.T
	RimDir    vec3.T
	ViewDir   vec3.T
	HalfMain  vec3.T // precomputed half-vector for Blinn-Phong
	Ambient   float64
	Hemi      float64
	Direct    float64
	Rim       float64
	SpecInt   float64
	SpecPow   float64
	Exposure  float64
	SRGBGamma float64
	InvGamma  float64
}

func unit(x, y, z float64) vec3.T {
	v := vec3.T{x, y, z}
	return v.Normalized()
}

// DefaultLightConfig returns a key light from the upper right, a cool rim
// from behind and a soft hemisphere fill.
func DefaultLightConfig() LightConfig {
	lightDir := unit(180, 260, 140)
	rimDir := unit(-160, 130, -210)
	viewDir := unit(0, -110, -400)

	halfMain := vec3.Sub(&lightDir, &viewDir)

	return LightConfig{
		LightDir:  lightDir,
		RimDir:    rimDir,
		ViewDir:   viewDir,
		HalfMain:  halfMain.Normalized(),
		Ambient:   0.45,
		Hemi:      0.40,
		Direct:    1.20,
		Rim:       0.50,
		SpecInt:   0.35,
		SpecPow:   12.0,
		Exposure:  1.0,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
// Faces are lit double-sided since hollowed rings show their back faces.
func (lc *LightConfig) ComputeShade(normal vec3.T) float64 {
	ndlMain := math.Abs(vec3.Dot(&normal, &lc.LightDir))
	ndlRim := math.Abs(vec3.Dot(&normal, &lc.RimDir))

	// Hemisphere fill
	hemi := (1.0-math.Abs(normal[1]))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := math.Abs(vec3.Dot(&normal, &lc.HalfMain))
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
