// Package deltae implements the CIE76, CIE94 and CIEDE2000 color difference
// formulas over Lab values.
package deltae

import (
	"math"

	"github.com/jsvensson/huematch/internal/color"
)

// Weights are the application-dependent CIE94 parameters.
type Weights struct {
	KL float64 // lightness weight
	K1 float64 // chroma scaling
	K2 float64 // hue scaling
}

var (
	// GraphicArts is the default CIE94 weighting.
	GraphicArts = Weights{KL: 1, K1: 0.045, K2: 0.015}
	// Textiles is the CIE94 weighting for textile applications.
	Textiles = Weights{KL: 2, K1: 0.048, K2: 0.014}
)

// CIE76 returns the Euclidean distance between two Lab colors.
func CIE76(a, b color.Lab) float64 {
	dL := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dL*dL + da*da + db*db)
}

// CIE94 returns the CIE94 difference of b from the reference color a.
// The chroma weighting uses the reference color only, so the result is
// not symmetric in its arguments.
func CIE94(a, b color.Lab, w Weights) float64 {
	const sl, kc, kh = 1.0, 1.0, 1.0

	dL := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B

	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	dC := c1 - c2

	// Cancellation can push the squared hue difference slightly below zero.
	dH := da*da + db*db - dC*dC
	if dH < 0 {
		dH = 0
	} else {
		dH = math.Sqrt(dH)
	}

	sc := 1 + w.K1*c1
	sh := 1 + w.K2*c1

	vL := dL / (w.KL * sl)
	vC := dC / (kc * sc)
	vH := dH / (kh * sh)
	return math.Sqrt(vL*vL + vC*vC + vH*vH)
}

// CIEDE2000 returns the CIEDE2000 difference between two Lab colors with
// unit parametric factors.
func CIEDE2000(a, b color.Lab) float64 {
	const kl, kc, kh = 1.0, 1.0, 1.0

	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	cBar := (c1 + c2) / 2

	g := 0.5 * (1 - chromaWeight(cBar))
	a1p := (1 + g) * a.A
	a2p := (1 + g) * b.A

	c1p := math.Hypot(a1p, a.B)
	c2p := math.Hypot(a2p, b.B)
	cBarP := (c1p + c2p) / 2
	dCp := c2p - c1p

	h1p := hueAngle(a.B, a1p, c1p)
	h2p := hueAngle(b.B, a2p, c2p)

	var dhp float64
	switch {
	case c1p == 0 || c2p == 0:
		dhp = 0
	case math.Abs(h1p-h2p) <= 180:
		dhp = h2p - h1p
	case h2p <= h1p:
		dhp = h2p - h1p + 360
	default:
		dhp = h2p - h1p - 360
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(dhp/2))

	lBarP := (a.L + b.L) / 2
	dLp := b.L - a.L

	var hBarP float64
	switch {
	case c1p == 0 || c2p == 0:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) > 180:
		hBarP = (h1p + h2p + 360) / 2
	default:
		hBarP = (h1p + h2p) / 2
	}

	t := 1 -
		0.17*math.Cos(rad(hBarP-30)) +
		0.24*math.Cos(rad(2*hBarP)) +
		0.32*math.Cos(rad(3*hBarP+6)) -
		0.20*math.Cos(rad(4*hBarP-63))

	l50 := (lBarP - 50) * (lBarP - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t

	dTheta := 60 * math.Exp(-math.Pow((hBarP-275)/25, 2))
	rt := -2 * chromaWeight(cBarP) * math.Sin(rad(dTheta))

	vL := dLp / (kl * sl)
	vC := dCp / (kc * sc)
	vH := dHp / (kh * sh)
	return math.Sqrt(vL*vL + vC*vC + vH*vH + rt*vC*vH)
}

// chromaWeight returns sqrt(C^7 / (C^7 + 25^7)).
func chromaWeight(c float64) float64 {
	c7 := math.Pow(c, 7)
	return math.Sqrt(c7 / (c7 + 6103515625)) // 25^7
}

// hueAngle returns the hue in degrees [0, 360). Achromatic colors have hue 0.
func hueAngle(b, aPrime, chroma float64) float64 {
	if chroma == 0 {
		return 0
	}
	h := deg(math.Atan2(b, aPrime))
	if h < 0 {
		h += 360
	}
	return h
}

func rad(d float64) float64 { return d * math.Pi / 180 }
func deg(r float64) float64 { return r * 180 / math.Pi }
