package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
)

func decodeSwatch(t *testing.T, result *SwatchResult) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	return img
}

func TestSwatch(t *testing.T) {
	colors := []*colormodel.Color{
		colormodel.NewRGBA(255, 0, 0, 1),
		colormodel.NewRGBA(0, 0, 255, 0.5),
	}

	result, err := Swatch(colors, 5, 3)
	if err != nil {
		t.Fatalf("Swatch failed: %v", err)
	}
	if result.Width != 5 || result.Height != 3 || result.MimeType != "image/png" {
		t.Errorf("got %dx%d %s, want 5x3 image/png", result.Width, result.Height, result.MimeType)
	}
	if diff := cmp.Diff([]string{"#ff0000", "#0000ff80"}, result.Colors); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}

	img := decodeSwatch(t, result)
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Fatalf("decoded size: got %dx%d, want 5x3", b.Dx(), b.Dy())
	}

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{R: 255, A: 255}},
		{1, 2, color.NRGBA{R: 255, A: 255}},
		{2, 0, color.NRGBA{B: 255, A: 128}},
		{4, 2, color.NRGBA{B: 255, A: 128}},
	}
	for _, tt := range tests {
		got := color.NRGBAModel.Convert(img.At(tt.x, tt.y)).(color.NRGBA)
		if got != tt.want {
			t.Errorf("pixel (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSwatch_Invalid(t *testing.T) {
	one := []*colormodel.Color{colormodel.NewRGBA(0, 0, 0, 1)}

	tests := []struct {
		name          string
		colors        []*colormodel.Color
		width, height int
	}{
		{"no colors", nil, 10, 10},
		{"zero width", one, 0, 10},
		{"negative height", one, 10, -1},
		{"too large", one, MaxSwatchSide + 1, 10},
		{"more colors than pixels", append(one, one[0], one[0]), 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Swatch(tt.colors, tt.width, tt.height); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
