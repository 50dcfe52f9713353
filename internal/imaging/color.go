package imaging

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
)

// RGBColor is an RGB triple with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColorResult describes one color in the notations a client is most likely
// to need, plus the nearest entry of the named-color table.
type ColorResult struct {
	Hex   string   `json:"hex"` // "#rrggbb", alpha excluded
	RGB   RGBColor `json:"rgb"`
	Alpha float64  `json:"alpha"` // 0-1
	HSL   string   `json:"hsl"`
	Lab   string   `json:"lab"`

	// Name is the closest named color and NameDistance its Euclidean RGB
	// distance; 0 means an exact match.
	Name         string  `json:"name"`
	NameDistance float64 `json:"name_distance"`
}

// Describe renders c in hex, HSL and Lab and resolves its closest name in
// table.
func Describe(c *colormodel.Color, table colormodel.Table) (*ColorResult, error) {
	n := c.NRGBA()
	opaque := c.Record().WithAlpha(1)

	hex, err := colormodel.RenderAs(opaque, "hex")
	if err != nil {
		return nil, err
	}
	hsl, err := colormodel.RenderAs(c.Record(), "hsl")
	if err != nil {
		return nil, err
	}
	lab, err := colormodel.RenderAs(c.Record(), "lab")
	if err != nil {
		return nil, err
	}

	match, err := c.Closest(table)
	if err != nil {
		return nil, err
	}

	return &ColorResult{
		Hex:          hex,
		RGB:          RGBColor{R: n.R, G: n.G, B: n.B},
		Alpha:        c.Record().Alpha(),
		HSL:          hsl,
		Lab:          lab,
		Name:         match.Name,
		NameDistance: math.Round(match.Distance*100) / 100,
	}, nil
}

// SampleColor reads the pixel at (x, y) and describes it. Coordinates are
// 0-based from the top-left corner of the image bounds.
func SampleColor(img image.Image, x, y int, table colormodel.Table) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	return Describe(colormodel.FromImageColor(img.At(x, y)), table)
}

// LabeledPoint is a pixel coordinate with an optional label that is echoed
// in the results.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult combines a color sample with its location and label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult holds samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples several points in one call. Any point outside
// the image fails the whole call.
func SampleColorsMulti(img image.Image, points []LabeledPoint, table colormodel.Table) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(img, p.X, p.Y, table)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region is a rectangle within an image; (X1, Y1) is inclusive and
// (X2, Y2) exclusive.
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// Rect validates r against the image bounds and converts it.
func (r Region) Rect(bounds image.Rectangle) (image.Rectangle, error) {
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return image.Rectangle{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return image.Rectangle{}, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2), nil
}

// ColorFrequency is one palette entry of DominantColors.
type ColorFrequency struct {
	Hex        string   `json:"hex"` // quantized "#rrggbb"
	Percentage float64  `json:"percentage"`
	RGB        RGBColor `json:"rgb"`
	Name       string   `json:"name"`
}

// DominantColorsResult lists palette entries, most frequent first.
type DominantColorsResult struct {
	Colors      []ColorFrequency `json:"colors"`
	TotalPixels int              `json:"total_pixels"`
}

// DominantColors returns up to count of the most common colors in img, or
// in region when it is not nil. Channels are quantized to multiples of 16
// so near-identical shades are grouped; fully transparent pixels are
// skipped. Entries with equal frequency are ordered by hex value.
func DominantColors(img image.Image, count int, region *Region, table colormodel.Table) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	src := img
	if region != nil {
		rect, err := region.Rect(img.Bounds())
		if err != nil {
			return nil, err
		}
		src = imaging.Crop(img, rect)
	}

	counts := make(map[RGBColor]int)
	total := 0
	bounds := src.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := colormodel.FromImageColor(src.At(x, y)).NRGBA()
			if n.A == 0 {
				continue
			}
			counts[RGBColor{R: n.R / 16 * 16, G: n.G / 16 * 16, B: n.B / 16 * 16}]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for rgb, cnt := range counts {
		c := colormodel.NewRGBA(float64(rgb.R), float64(rgb.G), float64(rgb.B), 1)
		match, err := c.Closest(table)
		if err != nil {
			return nil, err
		}
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: math.Round(float64(cnt)/float64(total)*10000) / 100,
			RGB:        rgb,
			Name:       match.Name,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors, TotalPixels: total}, nil
}
