package imaging

import (
	"image"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
	"github.com/lucasb-eyer/go-colorful"
)

// Difference measures how far apart two colors are. Alpha is ignored.
type Difference struct {
	// RGBDistance is the Euclidean distance of the 8-bit channels.
	RGBDistance float64 `json:"rgb_distance"`
	// DeltaE76 is the Euclidean distance in CIE Lab.
	DeltaE76 float64 `json:"delta_e76"`
	// DeltaE2000 is the CIEDE2000 color difference.
	DeltaE2000 float64 `json:"delta_e2000"`
}

// ColorDifference compares a and b in RGB and in CIE Lab.
func ColorDifference(a, b *colormodel.Color) (Difference, error) {
	ra, rb := a.RGBA(), b.RGBA()

	la, err := colormodel.Convert(a.Record(), colormodel.ModelLab)
	if err != nil {
		return Difference{}, err
	}
	lb, err := colormodel.Convert(b.Record(), colormodel.ModelLab)
	if err != nil {
		return Difference{}, err
	}
	va, vb := la.Values(), lb.Values()

	ca := colorful.Color{R: ra.R / 255, G: ra.G / 255, B: ra.B / 255}
	cb := colorful.Color{R: rb.R / 255, G: rb.G / 255, B: rb.B / 255}

	return Difference{
		RGBDistance: round2(colormodel.Distance([3]float64{ra.R, ra.G, ra.B}, [3]float64{rb.R, rb.G, rb.B}, false)),
		DeltaE76:    round2(colormodel.Distance([3]float64{va[0], va[1], va[2]}, [3]float64{vb[0], vb[1], vb[2]}, false)),
		DeltaE2000:  round2(ca.DistanceCIEDE2000(cb) * 100),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CompareRegionsResult reports how two regions of an image differ.
type CompareRegionsResult struct {
	SimilarityScore float64 `json:"similarity_score"`
	PixelsDifferent int     `json:"pixels_different"`
	TotalPixels     int     `json:"total_pixels"`
	SameSize        bool    `json:"same_size"`
	Region1Size     Size    `json:"region1_size"`
	Region2Size     Size    `json:"region2_size"`

	Region1Average ColorResult `json:"region1_average"`
	Region2Average ColorResult `json:"region2_average"`
	// AverageDifference compares the two average colors.
	AverageDifference Difference `json:"average_difference"`
}

// pixelThreshold is the mean per-channel difference above which two pixels
// count as different.
const pixelThreshold = 10

// CompareRegions compares r1 and r2 pixel by pixel over their common size
// and compares their average colors.
func CompareRegions(img image.Image, r1, r2 Region, table colormodel.Table) (*CompareRegionsResult, error) {
	rect1, err := r1.Rect(img.Bounds())
	if err != nil {
		return nil, err
	}
	rect2, err := r2.Rect(img.Bounds())
	if err != nil {
		return nil, err
	}

	minW := min(rect1.Dx(), rect2.Dx())
	minH := min(rect1.Dy(), rect2.Dy())
	total := minW * minH
	different := 0

	for dy := 0; dy < minH; dy++ {
		for dx := 0; dx < minW; dx++ {
			p1 := colormodel.FromImageColor(img.At(rect1.Min.X+dx, rect1.Min.Y+dy)).NRGBA()
			p2 := colormodel.FromImageColor(img.At(rect2.Min.X+dx, rect2.Min.Y+dy)).NRGBA()
			diff := float64(absDiff(p1.R, p2.R)+absDiff(p1.G, p2.G)+absDiff(p1.B, p2.B)) / 3
			if diff > pixelThreshold {
				different++
			}
		}
	}

	avg1, avg2 := averageColor(img, rect1), averageColor(img, rect2)
	desc1, err := Describe(avg1, table)
	if err != nil {
		return nil, err
	}
	desc2, err := Describe(avg2, table)
	if err != nil {
		return nil, err
	}
	delta, err := ColorDifference(avg1, avg2)
	if err != nil {
		return nil, err
	}

	return &CompareRegionsResult{
		SimilarityScore:   math.Round((1-float64(different)/float64(total))*1000) / 1000,
		PixelsDifferent:   different,
		TotalPixels:       total,
		SameSize:          rect1.Size() == rect2.Size(),
		Region1Size:       Size{Width: rect1.Dx(), Height: rect1.Dy()},
		Region2Size:       Size{Width: rect2.Dx(), Height: rect2.Dy()},
		Region1Average:    *desc1,
		Region2Average:    *desc2,
		AverageDifference: delta,
	}, nil
}

// averageColor is the mean non-premultiplied color of rect, rounded to
// 8-bit channels.
func averageColor(img image.Image, rect image.Rectangle) *colormodel.Color {
	var r, g, b, a float64
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			n := colormodel.FromImageColor(img.At(x, y)).NRGBA()
			r += float64(n.R)
			g += float64(n.G)
			b += float64(n.B)
			a += float64(n.A)
		}
	}
	count := float64(rect.Dx() * rect.Dy())
	return colormodel.NewRGBA(
		math.Round(r/count), math.Round(g/count), math.Round(b/count),
		a/count/255,
	)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
