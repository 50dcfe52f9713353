package colormodel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBToOKLab converts 8-bit sRGB to OKLab. L is in [0, 1].
func RGBToOKLab(r, g, b float64) OKLab {
	lr, lg, lb := colorful.Color{R: r / 255, G: g / 255, B: b / 255}.LinearRgb()

	// linear RGB -> LMS
	l := 0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb
	m := 0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb
	s := 0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb

	lp, mp, sp := math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	return OKLab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// OKLabToRGB converts OKLab to sRGB in [0, 255], clamping out-of-gamut
// channels.
func OKLabToRGB(L, a, b float64) RGB {
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	l, m, s := lp*lp*lp, mp*mp*mp, sp*sp*sp

	lr := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	lg := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	lb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	c := colorful.LinearRgb(clampFloat(lr, 0, 1), clampFloat(lg, 0, 1), clampFloat(lb, 0, 1))
	return RGB{R: c.R * 255, G: c.G * 255, B: c.B * 255}
}

// OKLabToOKLCH converts OKLab to its polar form.
func OKLabToOKLCH(l, a, b float64) OKLCH {
	return OKLCH{L: l, C: math.Hypot(a, b), H: polarHue(a, b)}
}

// OKLCHToOKLab converts polar OKLCH back to OKLab.
func OKLCHToOKLab(l, c, h float64) OKLab {
	L, a, b := colorful.HclToLab(h, c, l)
	return OKLab{L: L, A: a, B: b}
}
