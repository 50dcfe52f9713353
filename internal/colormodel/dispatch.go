package colormodel

import (
	"regexp"
	"strings"
)

// colorFormat is one entry of the dispatch table.
type colorFormat struct {
	name     string
	pattern  *regexp.Regexp
	tokenize func(string) []string
	convert  func([]string) Record
}

// formats is checked in order; the first matching pattern wins.
var formats = []colorFormat{
	{"hex", regexp.MustCompile(`(?i)^#([0-9a-f]{3,8})`), ParseHex, fromHex},
	{"rgb", regexp.MustCompile(`(?i)^rgba?\(`), Extract, fromRGB},
	{"hsl", regexp.MustCompile(`(?i)^hsla?\(`), Extract, fromHSL},
	{"lab", regexp.MustCompile(`(?i)^lab\(`), Extract, fromLab},
	{"hwb", regexp.MustCompile(`(?i)^hwb\(`), Extract, fromHWB},
	{"xyz", regexp.MustCompile(`(?i)^xyz\(`), Extract, fromXYZ},
	{"lch", regexp.MustCompile(`(?i)^lch\(`), Extract, fromLCH},
	{"oklab", regexp.MustCompile(`(?i)^oklab\(`), Extract, fromOKLab},
	{"oklch", regexp.MustCompile(`(?i)^oklch\(`), Extract, fromOKLCH},
	{"cmyk", regexp.MustCompile(`(?i)^cmyk\(`), extractCMYK, fromCMYK},
	{"color", regexp.MustCompile(`(?i)^color\(`), ExtractColorFunction, fromColorFunction},
}

// formatAliases maps the alternative format spellings accepted by ParseAs.
var formatAliases = map[string]string{
	"rgba": "rgb",
	"hsla": "hsl",
	"hexa": "hex",
}

// extractCMYK tokenizes cmyk(), which has four channels and no alpha.
func extractCMYK(colorString string) []string {
	values := SplitValues(CleanDefinition(colorString))
	if len(values) == 4 {
		return values
	}
	if len(values) == 3 {
		warn("cmyk expects 4 channels, key set to 0", "input", colorString)
		return append(values, "0")
	}
	if len(values) > 4 {
		warn("cmyk has no alpha channel, ignoring extra values",
			"input", colorString, "count", len(values))
		return values[:4]
	}
	return Extract(colorString)
}

func lookupFormat(name string) (colorFormat, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := formatAliases[name]; ok {
		name = alias
	}
	for _, f := range formats {
		if f.name == name {
			return f, true
		}
	}
	return colorFormat{}, false
}

// Formats lists the recognized format names in detection order.
func Formats() []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = f.name
	}
	return out
}

// DetectFormat returns the name of the first format whose grammar matches
// text, or "" when none does.
func DetectFormat(text string) string {
	text = strings.TrimSpace(text)
	for _, f := range formats {
		if f.pattern.MatchString(text) {
			return f.name
		}
	}
	return ""
}

// Parse detects the format of text and converts it into a record. It fails
// only when no grammar matches; malformed channels inside a recognized
// format degrade to fallbacks with a logged warning.
//
//	rec, err := Parse("hsl(200deg 50% 40% / 0.8)")
func Parse(text string) (Record, error) {
	text = strings.TrimSpace(text)
	for _, f := range formats {
		if f.pattern.MatchString(text) {
			return f.convert(f.tokenize(text)), nil
		}
	}
	return Record{}, &UnrecognizedFormatError{Input: text}
}

// ParseAs parses text with the named format, skipping detection. The
// format name must be one of Formats() or an alpha spelling (rgba, hsla,
// hexa).
func ParseAs(text, format string) (Record, error) {
	f, ok := lookupFormat(format)
	if !ok {
		return Record{}, &UnknownModelError{Name: format}
	}
	return f.convert(f.tokenize(strings.TrimSpace(text))), nil
}
