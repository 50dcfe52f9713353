package imaging

import (
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
)

func TestColorDifference(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *colormodel.Color
		rgb      float64
		deltaE76 float64
		deltaE00 float64
	}{
		{"identical", colormodel.NewRGBA(12, 200, 56, 1), colormodel.NewRGBA(12, 200, 56, 1), 0, 0, 0},
		{"black and white", colormodel.NewRGBA(0, 0, 0, 1), colormodel.NewRGBA(255, 255, 255, 1), 441.67, 100, 100},
		{"alpha is ignored", colormodel.NewRGBA(10, 20, 30, 0), colormodel.NewRGBA(10, 20, 30, 1), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColorDifference(tt.a, tt.b)
			if err != nil {
				t.Fatalf("ColorDifference failed: %v", err)
			}
			if !within(got.RGBDistance, tt.rgb, 0.01) {
				t.Errorf("RGBDistance: got %v, want %v", got.RGBDistance, tt.rgb)
			}
			if !within(got.DeltaE76, tt.deltaE76, 0.01) {
				t.Errorf("DeltaE76: got %v, want %v", got.DeltaE76, tt.deltaE76)
			}
			if !within(got.DeltaE2000, tt.deltaE00, 0.01) {
				t.Errorf("DeltaE2000: got %v, want %v", got.DeltaE2000, tt.deltaE00)
			}
		})
	}
}

func TestColorDifference_PerceptualOrder(t *testing.T) {
	base := colormodel.NewRGBA(128, 128, 128, 1)
	near, _ := ColorDifference(base, colormodel.NewRGBA(130, 128, 128, 1))
	far, _ := ColorDifference(base, colormodel.NewRGBA(200, 60, 128, 1))

	if near.DeltaE2000 >= far.DeltaE2000 {
		t.Errorf("DeltaE2000: near %v should be below far %v", near.DeltaE2000, far.DeltaE2000)
	}
	if near.DeltaE76 >= far.DeltaE76 {
		t.Errorf("DeltaE76: near %v should be below far %v", near.DeltaE76, far.DeltaE76)
	}
}

func TestCompareRegions_Identical(t *testing.T) {
	img := createPatternImage(100, 100)
	r := Region{X1: 0, Y1: 0, X2: 50, Y2: 50}

	result, err := CompareRegions(img, r, r, colormodel.DefaultTable())
	if err != nil {
		t.Fatalf("CompareRegions failed: %v", err)
	}
	if result.SimilarityScore != 1 || result.PixelsDifferent != 0 {
		t.Errorf("got similarity %v with %d different pixels, want 1 and 0", result.SimilarityScore, result.PixelsDifferent)
	}
	if !result.SameSize || result.TotalPixels != 2500 {
		t.Errorf("got same_size=%v total=%d", result.SameSize, result.TotalPixels)
	}
	if result.Region1Average.Name != "red" {
		t.Errorf("average name: got %s, want red", result.Region1Average.Name)
	}
	if result.AverageDifference != (Difference{}) {
		t.Errorf("average difference: got %+v, want zero", result.AverageDifference)
	}
}

func TestCompareRegions_Different(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := CompareRegions(img,
		Region{X1: 0, Y1: 0, X2: 50, Y2: 50},
		Region{X1: 50, Y1: 0, X2: 100, Y2: 50},
		colormodel.DefaultTable())
	if err != nil {
		t.Fatalf("CompareRegions failed: %v", err)
	}
	if result.SimilarityScore != 0 || result.PixelsDifferent != 2500 {
		t.Errorf("got similarity %v with %d different pixels, want 0 and 2500", result.SimilarityScore, result.PixelsDifferent)
	}
	if result.Region1Average.Hex != "#ff0000" || result.Region2Average.Hex != "#00ff00" {
		t.Errorf("averages: got %s and %s", result.Region1Average.Hex, result.Region2Average.Hex)
	}
	if result.Region2Average.Name != "lime" {
		t.Errorf("average name: got %s, want lime", result.Region2Average.Name)
	}
	if !within(result.AverageDifference.RGBDistance, 360.62, 0.01) {
		t.Errorf("RGBDistance: got %v, want 360.62", result.AverageDifference.RGBDistance)
	}
}

func TestCompareRegions_MixedAverage(t *testing.T) {
	img := createPatternImage(100, 100)

	// The top half is half red and half green.
	result, err := CompareRegions(img,
		Region{X1: 0, Y1: 0, X2: 100, Y2: 50},
		Region{X1: 0, Y1: 0, X2: 10, Y2: 5},
		colormodel.DefaultTable())
	if err != nil {
		t.Fatalf("CompareRegions failed: %v", err)
	}
	if result.Region1Average.Hex != "#808000" {
		t.Errorf("average: got %s, want #808000", result.Region1Average.Hex)
	}
	if result.Region1Average.Name != "olive" {
		t.Errorf("average name: got %s, want olive", result.Region1Average.Name)
	}
	if result.SameSize || result.TotalPixels != 50 {
		t.Errorf("got same_size=%v total=%d, want false and 50", result.SameSize, result.TotalPixels)
	}
	if result.Region2Size != (Size{Width: 10, Height: 5}) {
		t.Errorf("region2 size: got %+v", result.Region2Size)
	}
}

func TestCompareRegions_Invalid(t *testing.T) {
	img := createPatternImage(20, 20)
	ok := Region{X1: 0, Y1: 0, X2: 10, Y2: 10}

	if _, err := CompareRegions(img, Region{X1: 0, Y1: 0, X2: 30, Y2: 10}, ok, colormodel.DefaultTable()); err == nil {
		t.Error("expected error for region1 outside the image")
	}
	if _, err := CompareRegions(img, ok, Region{X1: 5, Y1: 5, X2: 5, Y2: 10}, colormodel.DefaultTable()); err == nil {
		t.Error("expected error for an empty region2")
	}
}
