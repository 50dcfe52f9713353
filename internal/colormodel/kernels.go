package colormodel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// D65 reference white, scaled so that Y = 100.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

// CIE constants used by the XYZ/LAB pair.
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RGBToHSL converts 8-bit RGB channels to HSL. Hue is in degrees in
// [0, 360); saturation and lightness are percentages. All three are rounded
// to one decimal, which keeps HSLToRGB(RGBToHSL(c)) == c for every 8-bit c.
func RGBToHSL(r, g, b float64) HSL {
	r /= 255
	g /= 255
	b /= 255

	cmin := math.Min(r, math.Min(g, b))
	cmax := math.Max(r, math.Max(g, b))
	delta := cmax - cmin

	var h float64
	switch {
	case delta == 0:
		h = 0
	case cmax == r:
		h = math.Mod((g-b)/delta, 6)
	case cmax == g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	h = round1(h * 60)
	if h < 0 {
		h += 360
	}
	if h == 0 {
		h = 0 // drop negative zero
	}

	l := (cmax + cmin) / 2

	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return HSL{H: h, S: round1(s * 100), L: round1(l * 100)}
}

// hueSector picks the pre-offset RGB triple for one of six 60° bands.
func hueSector(c, x, h float64) (float64, float64, float64) {
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	}
	return c, 0, x
}

// hslToUnitRGB converts HSL (s and l in percent) to RGB in [0, 1].
func hslToUnitRGB(h, s, l float64) (float64, float64, float64) {
	h = WrapDegrees(h)
	s /= 100
	l /= 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	r, g, b := hueSector(c, x, h)
	return r + m, g + m, b + m
}

// HSLToRGB converts HSL (s and l in percent) to rounded 8-bit RGB.
func HSLToRGB(h, s, l float64) RGB {
	r, g, b := hslToUnitRGB(h, s, l)
	return RGB{
		R: math.Round(r * 255),
		G: math.Round(g * 255),
		B: math.Round(b * 255),
	}
}

// sRGB primaries relative to D65, applied to linear channels scaled to
// [0, 100].
var (
	srgbToXYZ = Mat3{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToSRGB = Mat3{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// RGBToXYZ converts 8-bit sRGB to CIE XYZ (D65, Y in [0, 100]).
func RGBToXYZ(r, g, b float64) XYZ {
	lr, lg, lb := colorful.Color{R: r / 255, G: g / 255, B: b / 255}.LinearRgb()
	v := srgbToXYZ.Mul([3]float64{lr * 100, lg * 100, lb * 100})
	return XYZ{X: v[0], Y: v[1], Z: v[2]}
}

// XYZToRGB converts CIE XYZ (D65, Y in [0, 100]) to sRGB scaled to
// [0, 255]. Channels are clamped but not rounded.
func XYZToRGB(x, y, z float64) RGB {
	v := xyzToSRGB.Mul([3]float64{x, y, z})
	c := colorful.LinearRgb(v[0]/100, v[1]/100, v[2]/100)
	return RGB{
		R: clampFloat(c.R, 0, 1) * 255,
		G: clampFloat(c.G, 0, 1) * 255,
		B: clampFloat(c.B, 0, 1) * 255,
	}
}

func labForward(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// XYZToLab converts CIE XYZ to CIELAB relative to D65.
func XYZToLab(x, y, z float64) Lab {
	fx := labForward(x / whiteX)
	fy := labForward(y / whiteY)
	fz := labForward(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labInverse(f float64) float64 {
	if cube := f * f * f; cube > labEpsilon {
		return cube
	}
	return (116*f - 16) / labKappa
}

// LabToXYZ converts CIELAB relative to D65 back to CIE XYZ.
func LabToXYZ(l, a, b float64) XYZ {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	return XYZ{
		X: labInverse(fx) * whiteX,
		Y: labInverse(fy) * whiteY,
		Z: labInverse(fz) * whiteZ,
	}
}

// RGBToCMYK converts 8-bit RGB to CMYK percentages rounded to integers.
func RGBToCMYK(r, g, b float64) CMYK {
	r /= 255
	g /= 255
	b /= 255

	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{K: 100}
	}

	return CMYK{
		C: math.Round((1 - r - k) / (1 - k) * 100),
		M: math.Round((1 - g - k) / (1 - k) * 100),
		Y: math.Round((1 - b - k) / (1 - k) * 100),
		K: math.Round(k * 100),
	}
}

// CMYKToRGB converts CMYK percentages to RGB in [0, 255].
func CMYKToRGB(c, m, y, k float64) RGB {
	c, m, y, k = c/100, m/100, y/100, k/100
	return RGB{
		R: 255 * (1 - math.Min(1, c*(1-k)+k)),
		G: 255 * (1 - math.Min(1, m*(1-k)+k)),
		B: 255 * (1 - math.Min(1, y*(1-k)+k)),
	}
}

// RGBToHWB converts 8-bit RGB to HWB with whiteness and blackness in percent.
func RGBToHWB(r, g, b float64) HWB {
	hsl := RGBToHSL(r, g, b)
	return HWB{
		H: hsl.H,
		W: round1(math.Min(r, math.Min(g, b)) / 255 * 100),
		B: round1((1 - math.Max(r, math.Max(g, b))/255) * 100),
	}
}

// HWBToRGB converts HWB to RGB in [0, 255]. When whiteness and blackness
// add up to 100% or more the result is the gray w/(w+b).
func HWBToRGB(h, w, b float64) RGB {
	w /= 100
	b /= 100
	if w+b >= 1 {
		gray := w / (w + b) * 255
		return RGB{R: gray, G: gray, B: gray}
	}

	r, g, bl := hslToUnitRGB(h, 100, 50)
	scale := 1 - w - b
	return RGB{
		R: (r*scale + w) * 255,
		G: (g*scale + w) * 255,
		B: (bl*scale + w) * 255,
	}
}

// LabToLCH converts CIELAB to its polar form.
func LabToLCH(l, a, b float64) LCH {
	return LCH{
		L: l,
		C: math.Hypot(a, b),
		H: polarHue(a, b),
	}
}

// LCHToLab converts polar LCH back to CIELAB.
func LCHToLab(l, c, h float64) Lab {
	L, a, b := colorful.HclToLab(h, c, l)
	return Lab{L: L, A: a, B: b}
}

// polarHue returns atan2(b, a) in degrees, wrapped to [0, 360). Achromatic
// inputs have hue 0.
func polarHue(a, b float64) float64 {
	if math.Abs(a) < 1e-9 && math.Abs(b) < 1e-9 {
		return 0
	}
	return WrapDegrees(math.Atan2(b, a) * 180 / math.Pi)
}
