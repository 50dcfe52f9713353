package colormodel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
)

func within(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    HSL
	}{
		{"black", 0, 0, 0, HSL{0, 0, 0}},
		{"white", 255, 255, 255, HSL{0, 0, 100}},
		{"red", 255, 0, 0, HSL{0, 100, 50}},
		{"green", 0, 255, 0, HSL{120, 100, 50}},
		{"blue", 0, 0, 255, HSL{240, 100, 50}},
		{"gray", 128, 128, 128, HSL{0, 0, 50.2}},
		{"negative sector wraps", 255, 0, 128, HSL{329.9, 100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.r, tt.g, tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RGBToHSL(%v, %v, %v) mismatch (-want +got):\n%s", tt.r, tt.g, tt.b, diff)
			}
			if math.Signbit(got.H) {
				t.Errorf("hue should never be negative zero")
			}
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    RGB
	}{
		{0, 100, 50, RGB{255, 0, 0}},
		{120, 100, 50, RGB{0, 255, 0}},
		{240, 100, 50, RGB{0, 0, 255}},
		{330, 100, 50, RGB{255, 0, 128}},
		{0, 0, 100, RGB{255, 255, 255}},
		{-30, 100, 50, RGB{255, 0, 128}},
		{720, 100, 50, RGB{255, 0, 0}},
	}

	for _, tt := range tests {
		got := HSLToRGB(tt.h, tt.s, tt.l)
		if got != tt.want {
			t.Errorf("HSLToRGB(%v, %v, %v): got %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 3 {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b += 3 {
				hsl := RGBToHSL(float64(r), float64(g), float64(b))
				got := HSLToRGB(hsl.H, hsl.S, hsl.L)
				if !within(got.R, float64(r), 1) || !within(got.G, float64(g), 1) || !within(got.B, float64(b), 1) {
					t.Fatalf("rgb(%d,%d,%d) -> %v -> %v", r, g, b, hsl, got)
				}
			}
		}
	}
}

func TestXYZRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				xyz := RGBToXYZ(float64(r), float64(g), float64(b))
				got := XYZToRGB(xyz.X, xyz.Y, xyz.Z)
				if !within(got.R, float64(r), 1) || !within(got.G, float64(g), 1) || !within(got.B, float64(b), 1) {
					t.Fatalf("rgb(%d,%d,%d) -> %v -> %v", r, g, b, xyz, got)
				}
			}
		}
	}
}

func TestRGBToXYZ(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    XYZ
	}{
		{"white", 255, 255, 255, XYZ{X: 95.047, Y: 100.00001, Z: 108.883}},
		{"red", 255, 0, 0, XYZ{X: 41.24564, Y: 21.26729, Z: 1.93339}},
		{"green", 0, 255, 0, XYZ{X: 35.75761, Y: 71.51522, Z: 11.91920}},
		{"blue", 0, 0, 255, XYZ{X: 18.04375, Y: 7.21750, Z: 95.03041}},
		{"black", 0, 0, 0, XYZ{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToXYZ(tt.r, tt.g, tt.b)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRGBToXYZ_WhiteIsNeutralLab(t *testing.T) {
	xyz := RGBToXYZ(255, 255, 255)
	got := XYZToLab(xyz.X, xyz.Y, xyz.Z)
	if diff := cmp.Diff(Lab{100, 0, 0}, got, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		t.Errorf("white mismatch (-want +got):\n%s", diff)
	}

	rec, err := Parse("#ffffff")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	text, err := RenderAs(rec, "lab")
	if err != nil {
		t.Fatalf("RenderAs failed: %v", err)
	}
	if want := "lab(100.00, 0.0000, 0.0000)"; text != want {
		t.Errorf("got %q, want %q", text, want)
	}
}

func TestXYZToRGB_Clamps(t *testing.T) {
	got := XYZToRGB(200, 200, 200)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("got %v, want channels clamped to 255", got)
	}
	got = XYZToRGB(-10, -10, -10)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("got %v, want channels clamped to 0", got)
	}
}

func TestXYZToLab(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    Lab
	}{
		{"white", 255, 255, 255, Lab{100, 0, 0}},
		{"black", 0, 0, 0, Lab{0, 0, 0}},
		{"red", 255, 0, 0, Lab{53.24, 80.09, 67.20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xyz := RGBToXYZ(tt.r, tt.g, tt.b)
			got := XYZToLab(xyz.X, xyz.Y, xyz.Z)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 0.05)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// go-colorful implements the same CIE formulas with exact constants; the
// two must agree closely away from the linear toe.
func TestXYZToLab_MatchesColorful(t *testing.T) {
	for _, hex := range []string{"#ff0080", "#3366cc", "#c0ffee", "#804000", "#abcdef"} {
		c, err := colorful.Hex(hex)
		if err != nil {
			t.Fatalf("colorful.Hex(%s): %v", hex, err)
		}
		wl, wa, wb := c.Lab()

		xyz := RGBToXYZ(c.R*255, c.G*255, c.B*255)
		got := XYZToLab(xyz.X, xyz.Y, xyz.Z)

		want := Lab{L: wl * 100, A: wa * 100, B: wb * 100}
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 0.1)); diff != "" {
			t.Errorf("%s mismatch (-colorful +ours):\n%s", hex, diff)
		}
	}
}

func TestLabXYZRoundTrip(t *testing.T) {
	for _, lab := range []Lab{{50, 20, -30}, {75, -40, 10}, {30, 60, 45}, {95, 0, 0}} {
		xyz := LabToXYZ(lab.L, lab.A, lab.B)
		got := XYZToLab(xyz.X, xyz.Y, xyz.Z)
		if diff := cmp.Diff(lab, got, cmpopts.EquateApprox(0, 1e-3)); diff != "" {
			t.Errorf("LAB round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestCMYK(t *testing.T) {
	tests := []struct {
		rgb  RGB
		cmyk CMYK
	}{
		{RGB{255, 0, 0}, CMYK{0, 100, 100, 0}},
		{RGB{0, 0, 0}, CMYK{0, 0, 0, 100}},
		{RGB{255, 255, 255}, CMYK{0, 0, 0, 0}},
		{RGB{0, 255, 255}, CMYK{100, 0, 0, 0}},
	}

	for _, tt := range tests {
		if got := RGBToCMYK(tt.rgb.R, tt.rgb.G, tt.rgb.B); got != tt.cmyk {
			t.Errorf("RGBToCMYK(%v): got %v, want %v", tt.rgb, got, tt.cmyk)
		}
		if got := CMYKToRGB(tt.cmyk.C, tt.cmyk.M, tt.cmyk.Y, tt.cmyk.K); got != tt.rgb {
			t.Errorf("CMYKToRGB(%v): got %v, want %v", tt.cmyk, got, tt.rgb)
		}
	}
}

func TestHWB(t *testing.T) {
	if got := RGBToHWB(255, 0, 0); got != (HWB{0, 0, 0}) {
		t.Errorf("RGBToHWB(red): got %v", got)
	}
	if got := RGBToHWB(255, 255, 255); got != (HWB{0, 100, 0}) {
		t.Errorf("RGBToHWB(white): got %v", got)
	}

	// Whiteness and blackness over 100% collapse to gray.
	got := HWBToRGB(200, 60, 60)
	if got.R != 127.5 || got.G != 127.5 || got.B != 127.5 {
		t.Errorf("HWBToRGB(200, 60, 60): got %v, want gray 127.5", got)
	}

	for _, c := range []RGB{{255, 0, 128}, {12, 34, 56}, {200, 180, 90}} {
		hwb := RGBToHWB(c.R, c.G, c.B)
		back := HWBToRGB(hwb.H, hwb.W, hwb.B)
		if !within(back.R, c.R, 1) || !within(back.G, c.G, 1) || !within(back.B, c.B, 1) {
			t.Errorf("HWB round trip %v -> %v -> %v", c, hwb, back)
		}
	}
}

func TestLCH(t *testing.T) {
	tests := []struct {
		lab Lab
		lch LCH
	}{
		{Lab{50, 0, 0}, LCH{50, 0, 0}},
		{Lab{50, 10, 10}, LCH{50, math.Sqrt2 * 10, 45}},
		{Lab{50, 0, -10}, LCH{50, 10, 270}},
		{Lab{60, -10, 0}, LCH{60, 10, 180}},
	}

	for _, tt := range tests {
		got := LabToLCH(tt.lab.L, tt.lab.A, tt.lab.B)
		if diff := cmp.Diff(tt.lch, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("LabToLCH(%v) mismatch (-want +got):\n%s", tt.lab, diff)
		}

		back := LCHToLab(got.L, got.C, got.H)
		if diff := cmp.Diff(tt.lab, back, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("LCHToLab(%v) mismatch (-want +got):\n%s", got, diff)
		}
	}
}
