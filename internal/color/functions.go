package color

import "math"

// Brighten raises the HSL lightness of c by amount, a fraction in [0, 1].
func Brighten(c RGB, amount float64) RGB {
	return adjustLightness(c, amount)
}

// Darken lowers the HSL lightness of c by amount, a fraction in [0, 1].
func Darken(c RGB, amount float64) RGB {
	return adjustLightness(c, -amount)
}

func adjustLightness(c RGB, delta float64) RGB {
	h, s, l := toHSL(c)
	l = math.Max(0, math.Min(1, l+delta))
	return fromHSL(h, s, l)
}

// toHSL returns hue in [0, 1), saturation and lightness in [0, 1].
func toHSL(c RGB) (h, s, l float64) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	hi := math.Max(math.Max(r, g), b)
	lo := math.Min(math.Min(r, g), b)
	l = (hi + lo) / 2

	if hi == lo {
		return 0, 0, l
	}

	d := hi - lo
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6, s, l
}

func fromHSL(h, s, l float64) RGB {
	if s == 0 {
		v := channel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: channel(hueToRGB(p, q, h+1.0/3)),
		G: channel(hueToRGB(p, q, h)),
		B: channel(hueToRGB(p, q, h-1.0/3)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	switch {
	case t < 0:
		t++
	case t > 1:
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
