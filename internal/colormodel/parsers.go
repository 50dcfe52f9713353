package colormodel

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// token returns tokens[i] or "" when it is missing.
func token(tokens []string, i int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}

// parseHue coerces a hue token to degrees in [0, 360).
func parseHue(raw string) float64 {
	value := strings.TrimSpace(raw)
	switch {
	case numericRegex.MatchString(value), hasAngleSuffix(value):
		return NormalizeDegrees(value)
	case strings.HasPrefix(strings.ToLower(value), "calc"):
		return WrapDegrees(evalCalc(value, parseHue))
	}
	return WrapDegrees(channelFallback(value))
}

func parseHexByte(pair string) float64 {
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0
	}
	return float64(v)
}

func fromHex(tokens []string) Record {
	alpha := 1.0
	if len(tokens) > 3 {
		if v, err := strconv.ParseUint(tokens[3], 16, 8); err == nil {
			alpha = float64(v) / 255
		}
	}
	return NewRecord(ModelRGB, alpha,
		parseHexByte(token(tokens, 0)),
		parseHexByte(token(tokens, 1)),
		parseHexByte(token(tokens, 2)),
	)
}

func fromRGB(tokens []string) Record {
	channel := func(i int) float64 {
		return Clamp(ConvertToChannelValue(token(tokens, i), 255), 0, 255)
	}
	return NewRecord(ModelRGB, convertAlpha(token(tokens, 3)), channel(0), channel(1), channel(2))
}

func fromHSL(tokens []string) Record {
	return NewRecord(ModelHSL, convertAlpha(token(tokens, 3)),
		parseHue(token(tokens, 0)),
		ConvertToChannelValue(token(tokens, 1), 100),
		ConvertToChannelValue(token(tokens, 2), 100),
	)
}

func fromHWB(tokens []string) Record {
	return NewRecord(ModelHWB, convertAlpha(token(tokens, 3)),
		parseHue(token(tokens, 0)),
		ConvertToChannelValue(token(tokens, 1), 100),
		ConvertToChannelValue(token(tokens, 2), 100),
	)
}

// CSS reference ranges: 100% of a LAB a/b axis is 125, of LCH chroma 150,
// of an OKLab a/b axis or OKLCH chroma 0.4.
func fromLab(tokens []string) Record {
	return NewRecord(ModelLab, convertAlpha(token(tokens, 3)),
		clampFloat(convertToNumber(token(tokens, 0), 100), 0, 100),
		convertToNumber(token(tokens, 1), 125),
		convertToNumber(token(tokens, 2), 125),
	)
}

func fromLCH(tokens []string) Record {
	return NewRecord(ModelLCH, convertAlpha(token(tokens, 3)),
		clampFloat(convertToNumber(token(tokens, 0), 100), 0, 100),
		max(convertToNumber(token(tokens, 1), 150), 0),
		parseHue(token(tokens, 2)),
	)
}

func fromXYZ(tokens []string) Record {
	return NewRecord(ModelXYZ, convertAlpha(token(tokens, 3)),
		convertToNumber(token(tokens, 0), 100),
		convertToNumber(token(tokens, 1), 100),
		convertToNumber(token(tokens, 2), 100),
	)
}

func fromOKLab(tokens []string) Record {
	return NewRecord(ModelOKLab, convertAlpha(token(tokens, 3)),
		clampFloat(convertToNumber(token(tokens, 0), 1), 0, 1),
		convertToNumber(token(tokens, 1), 0.4),
		convertToNumber(token(tokens, 2), 0.4),
	)
}

func fromOKLCH(tokens []string) Record {
	return NewRecord(ModelOKLCH, convertAlpha(token(tokens, 3)),
		clampFloat(convertToNumber(token(tokens, 0), 1), 0, 1),
		max(convertToNumber(token(tokens, 1), 0.4), 0),
		parseHue(token(tokens, 2)),
	)
}

func fromCMYK(tokens []string) Record {
	channel := func(i int) float64 {
		return clampFloat(ConvertToChannelValue(token(tokens, i), 100), 0, 100)
	}
	return NewRecord(ModelCMYK, 1, channel(0), channel(1), channel(2), channel(3))
}

// ExtractColorFunction tokenizes "color(<space> c1 c2 c3 [/ a])". The first
// token is the color space name; it expects 4 or 5 tokens and pads with
// "0" otherwise.
func ExtractColorFunction(colorString string) []string {
	values := SplitValues(CleanDefinition(colorString))
	if len(values) == 4 || len(values) == 5 {
		return values
	}

	warn("unexpected number of color() values, using fallback",
		"input", colorString, "count", len(values))
	out := []string{"srgb", "0", "0", "0"}
	for i := 0; i < len(values) && i < 4; i++ {
		out[i] = values[i]
	}
	return out
}

func fromColorFunction(tokens []string) Record {
	space := strings.ToLower(token(tokens, 0))
	c1 := convertToNumber(token(tokens, 1), 1)
	c2 := convertToNumber(token(tokens, 2), 1)
	c3 := convertToNumber(token(tokens, 3), 1)
	alpha := convertAlpha(token(tokens, 4))

	var rgb RGB
	switch space {
	case "srgb":
		rgb = RGB{R: c1 * 255, G: c2 * 255, B: c3 * 255}
	case "srgb-linear":
		c := colorful.LinearRgb(clampFloat(c1, 0, 1), clampFloat(c2, 0, 1), clampFloat(c3, 0, 1))
		rgb = RGB{R: c.R * 255, G: c.G * 255, B: c.B * 255}
	case "xyz", "xyz-d65":
		rgb = XYZToRGB(c1*100, c2*100, c3*100)
	default:
		warn("unsupported color() space, using black", "space", space)
	}

	return NewRecord(ModelRGB, alpha,
		clampFloat(rgb.R, 0, 255),
		clampFloat(rgb.G, 0, 255),
		clampFloat(rgb.B, 0, 255),
	)
}
