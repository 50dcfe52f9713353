package colormodel

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\[([^\[\]]+)\]`)

// Unit is the display rule of a template placeholder.
type Unit struct {
	Name     string
	Min, Max float64
	Decimals int
	Radix    int
	Suffix   string
}

var (
	UnitInt8       = Unit{Name: "INT8", Min: 0, Max: 255, Radix: 10}
	UnitHex        = Unit{Name: "HEX", Min: 0, Max: 255, Radix: 16}
	UnitNormalized = Unit{Name: "NORMALIZED", Min: 0, Max: 1, Decimals: 4, Radix: 10}
	UnitFloat16    = Unit{Name: "FLOAT16", Min: 0, Max: 100, Decimals: 2, Radix: 10}
	UnitPercent    = Unit{Name: "PERCENT", Min: 0, Max: 100, Decimals: 2, Radix: 10, Suffix: "%"}
	UnitDegree     = Unit{Name: "DEGREE", Min: 0, Max: 360, Radix: 10, Suffix: "deg"}
	UnitNumber     = Unit{Name: "NUMBER", Min: math.Inf(-1), Max: math.Inf(1), Decimals: 4, Radix: 10}
)

var units = map[string]Unit{
	UnitInt8.Name:       UnitInt8,
	UnitHex.Name:        UnitHex,
	UnitNormalized.Name: UnitNormalized,
	UnitFloat16.Name:    UnitFloat16,
	UnitPercent.Name:    UnitPercent,
	UnitDegree.Name:     UnitDegree,
	UnitNumber.Name:     UnitNumber,
}

// Apply renders v under the unit: clamp low then high, round to the unit's
// decimals, change radix and append the suffix.
func (u Unit) Apply(v float64) string {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Max(v, u.Min)
	v = math.Min(v, u.Max)

	if u.Radix == 16 {
		return fmt.Sprintf("%02x", int(math.Round(v)))
	}

	scale := math.Pow(10, float64(u.Decimals))
	v = math.Round(v*scale) / scale
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', u.Decimals, 64) + u.Suffix
}

// formatAlpha renders the alpha slot. HEX scales to a byte, PERCENT to a
// percentage; every other unit prints the normalized value.
func formatAlpha(alpha float64, u Unit) string {
	switch u.Name {
	case UnitHex.Name:
		return u.Apply(alpha * 255)
	case UnitPercent.Name:
		return u.Apply(alpha * 100)
	}
	return UnitNormalized.Apply(alpha)
}

// Format substitutes every [selector:UNIT] placeholder in template with the
// matching value of rec. The selector is a 1-based channel index of the live
// model or A for alpha. Placeholders that cannot be resolved are left as
// literal text and logged. Format never fails.
//
//	Format(rec, "[1:INT8], [2:INT8], [3:INT8], [A:NORMALIZED]") // "255, 0, 128, 0.5000"
func Format(rec Record, template string) string {
	resolved := make(map[string]string)
	return placeholderRegex.ReplaceAllStringFunc(template, func(ph string) string {
		if out, ok := resolved[ph]; ok {
			return out
		}
		out := resolvePlaceholder(rec, ph)
		resolved[ph] = out
		return out
	})
}

func resolvePlaceholder(rec Record, ph string) string {
	parts := strings.Split(ph[1:len(ph)-1], ":")
	if len(parts) != 2 {
		warn("malformed template placeholder", "placeholder", ph)
		return ph
	}

	selector := strings.TrimSpace(parts[0])
	u, ok := units[strings.ToUpper(strings.TrimSpace(parts[1]))]
	if !ok {
		warn("unknown template unit", "placeholder", ph)
		return ph
	}

	if strings.EqualFold(selector, "A") {
		return formatAlpha(rec.alpha, u)
	}

	idx, err := strconv.Atoi(selector)
	if err != nil || idx < 1 || idx > rec.model.Arity() {
		warn("template channel out of range", "placeholder", ph, "model", rec.model.String())
		return ph
	}
	return u.Apply(rec.values[idx-1])
}

// namedTemplate is the rendering of one model: a wrapper name and the
// channel list, with and without alpha.
type namedTemplate struct {
	name, body           string
	alphaName, alphaBody string
}

func withAlpha(name, alphaName, body string) namedTemplate {
	return namedTemplate{
		name:      name,
		body:      body,
		alphaName: alphaName,
		alphaBody: body + ", [A:NORMALIZED]",
	}
}

var templates = map[Model]namedTemplate{
	ModelRGB:   withAlpha("rgb", "rgba", "[1:INT8], [2:INT8], [3:INT8]"),
	ModelHSL:   withAlpha("hsl", "hsla", "[1:DEGREE], [2:PERCENT], [3:PERCENT]"),
	ModelHWB:   withAlpha("hwb", "hwb", "[1:DEGREE], [2:PERCENT], [3:PERCENT]"),
	ModelLab:   withAlpha("lab", "lab", "[1:FLOAT16], [2:NUMBER], [3:NUMBER]"),
	ModelLCH:   withAlpha("lch", "lch", "[1:FLOAT16], [2:NUMBER], [3:NUMBER]"),
	ModelXYZ:   withAlpha("xyz", "xyz", "[1:NUMBER], [2:NUMBER], [3:NUMBER]"),
	ModelOKLab: withAlpha("oklab", "oklab", "[1:NORMALIZED], [2:NUMBER], [3:NUMBER]"),
	ModelOKLCH: withAlpha("oklch", "oklch", "[1:NORMALIZED], [2:NUMBER], [3:NUMBER]"),
	ModelCMYK:  {name: "cmyk", body: "[1:PERCENT], [2:PERCENT], [3:PERCENT], [4:PERCENT]"},
}

const (
	hexTemplate      = "#[1:HEX][2:HEX][3:HEX]"
	hexAlphaTemplate = "#[1:HEX][2:HEX][3:HEX][A:HEX]"
	colorTemplate    = "color(srgb [1:NORMALIZED] [2:NORMALIZED] [3:NORMALIZED])"
)

// Template returns the named template of model m, wrapper included. The
// alpha variant is returned when alpha is true and the model has one.
func Template(m Model, alpha bool) string {
	t, ok := templates[m]
	if !ok {
		return ""
	}
	if alpha && t.alphaBody != "" {
		return t.alphaName + "(" + t.alphaBody + ")"
	}
	return t.name + "(" + t.body + ")"
}

// Render formats rec in its live model, using the alpha template when
// alpha is below 1.
func Render(rec Record) string {
	return Format(rec, Template(rec.model, rec.alpha < 1))
}

// RenderAs converts rec to the model behind format and renders it. "hex"
// gives #rrggbb (#rrggbbaa when translucent), "color" gives
// color(srgb r g b), and the explicit alpha spellings rgba, hsla and hexa
// always include alpha.
func RenderAs(rec Record, format string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	m, err := ParseModel(name)
	if err != nil {
		return "", err
	}
	out, err := Convert(rec, m)
	if err != nil {
		return "", err
	}

	forceAlpha := name == "rgba" || name == "hsla" || name == "hexa"
	alpha := forceAlpha || out.alpha < 1

	switch name {
	case "hex", "hexa":
		if alpha {
			return Format(out, hexAlphaTemplate), nil
		}
		return Format(out, hexTemplate), nil
	case "color":
		unit := NewRecord(ModelRGB, out.alpha, out.values[0]/255, out.values[1]/255, out.values[2]/255)
		s := Format(unit, colorTemplate)
		if out.alpha < 1 {
			s = strings.TrimSuffix(s, ")") + " / " + UnitNormalized.Apply(out.alpha) + ")"
		}
		return s, nil
	}
	return Format(out, Template(m, alpha)), nil
}
