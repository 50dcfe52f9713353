package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
)

// MaxSwatchSide bounds both swatch dimensions.
const MaxSwatchSide = 4096

// SwatchResult contains a rendered swatch image.
type SwatchResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
	Colors      []string `json:"colors"` // hex of each stripe, left to right
}

// Swatch renders colors as equal vertical stripes of a width x height PNG.
// The last stripe absorbs the remainder when width does not divide evenly.
// Translucent colors keep their alpha.
func Swatch(colors []*colormodel.Color, width, height int) (*SwatchResult, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("at least one color is required")
	}
	if width <= 0 || height <= 0 || width > MaxSwatchSide || height > MaxSwatchSide {
		return nil, fmt.Errorf("invalid swatch size %dx%d: both sides must be in 1..%d", width, height, MaxSwatchSide)
	}
	if len(colors) > width {
		return nil, fmt.Errorf("%d colors do not fit in a %d pixel wide swatch", len(colors), width)
	}

	canvas := imaging.New(width, height, color.Transparent)
	stripe := width / len(colors)
	hexes := make([]string, len(colors))

	for i, c := range colors {
		w := stripe
		if i == len(colors)-1 {
			w = width - stripe*i
		}
		canvas = imaging.Paste(canvas, imaging.New(w, height, c.NRGBA()), image.Pt(stripe*i, 0))
		hexes[i] = c.Hex()
	}

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Colors:      hexes,
	}, nil
}
