package color

import "math"

// XYZ is a CIE 1931 XYZ tristimulus value relative to a D65 white of Y = 1.
// Components are not clamped.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* color. L is nominally [0, 100]; a and b are unbounded.
type Lab struct {
	L, A, B float64
}

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

// RGBToXYZ converts an sRGB color to XYZ using the sRGB D65 matrix.
func RGBToXYZ(c RGB) XYZ {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)

	return XYZ{
		X: r*0.4124564 + g*0.3575761 + b*0.1804375,
		Y: r*0.2126729 + g*0.7151522 + b*0.0721750,
		Z: r*0.0193339 + g*0.1191920 + b*0.9503041,
	}
}

// XYZToLab converts XYZ to Lab against the D65 reference white.
func XYZToLab(v XYZ) Lab {
	fx := labF(v.X / whiteX)
	fy := labF(v.Y / whiteY)
	fz := labF(v.Z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// RGBToLab converts an sRGB color to Lab.
func RGBToLab(c RGB) Lab {
	return XYZToLab(RGBToXYZ(c))
}

// Lab returns the color in Lab space.
func (c RGB) Lab() Lab {
	return RGBToLab(c)
}

// srgbToLinear converts a single sRGB component [0,1] to linear light.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}
