package colormodel

import (
	"math"
	"strings"
)

// Model identifies a color space.
type Model int

const (
	ModelRGB Model = iota
	ModelHSL
	ModelLab
	ModelLCH
	ModelHWB
	ModelXYZ
	ModelCMYK
	ModelOKLab
	ModelOKLCH
)

var modelNames = [...]string{
	ModelRGB:   "rgb",
	ModelHSL:   "hsl",
	ModelLab:   "lab",
	ModelLCH:   "lch",
	ModelHWB:   "hwb",
	ModelXYZ:   "xyz",
	ModelCMYK:  "cmyk",
	ModelOKLab: "oklab",
	ModelOKLCH: "oklch",
}

// Models lists every supported model in declaration order.
func Models() []Model {
	return []Model{ModelRGB, ModelHSL, ModelLab, ModelLCH, ModelHWB, ModelXYZ, ModelCMYK, ModelOKLab, ModelOKLCH}
}

func (m Model) String() string {
	if m < 0 || int(m) >= len(modelNames) {
		return "unknown"
	}
	return modelNames[m]
}

// Arity is the number of color channels of the model, alpha excluded.
func (m Model) Arity() int {
	if m == ModelCMYK {
		return 4
	}
	return 3
}

// HasAlpha reports whether records in this model carry an alpha channel.
// CMYK is always opaque.
func (m Model) HasAlpha() bool {
	return m != ModelCMYK
}

// hueIndex is the position of the hue channel, or -1.
func (m Model) hueIndex() int {
	switch m {
	case ModelHSL, ModelHWB:
		return 0
	case ModelLCH, ModelOKLCH:
		return 2
	}
	return -1
}

// ParseModel resolves a model or format name. The alpha spellings (rgba,
// hsla) and the hex and color() formats resolve to the model they store.
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rgb", "rgba", "hex", "hexa", "color":
		return ModelRGB, nil
	case "hsl", "hsla":
		return ModelHSL, nil
	case "lab":
		return ModelLab, nil
	case "lch":
		return ModelLCH, nil
	case "hwb":
		return ModelHWB, nil
	case "xyz":
		return ModelXYZ, nil
	case "cmyk":
		return ModelCMYK, nil
	case "oklab":
		return ModelOKLab, nil
	case "oklch":
		return ModelOKLCH, nil
	}
	return 0, &UnknownModelError{Name: name}
}

// Record is the canonical color value: the channels of exactly one live
// model plus a normalized alpha. The zero Record is transparent black in
// RGB; use the constructors to get a well-formed alpha.
type Record struct {
	model  Model
	values [4]float64
	alpha  float64
}

// NewRecord builds a record in model m. Missing values are 0 and extra
// values are ignored. Alpha is bounded to [0, 1] (NaN means opaque) and hue
// channels are wrapped into [0, 360).
func NewRecord(m Model, alpha float64, values ...float64) Record {
	r := Record{model: m}
	copy(r.values[:m.Arity()], values)
	if i := m.hueIndex(); i >= 0 {
		r.values[i] = WrapDegrees(r.values[i])
	}
	r.alpha = normalizeAlpha(m, alpha)
	return r
}

func normalizeAlpha(m Model, alpha float64) float64 {
	if !m.HasAlpha() || math.IsNaN(alpha) {
		return 1
	}
	return clampFloat(alpha, 0, 1)
}

// Model returns the live model.
func (r Record) Model() Model { return r.model }

// Alpha returns the normalized alpha.
func (r Record) Alpha() float64 { return r.alpha }

// Values returns a copy of the live channel values in model order.
func (r Record) Values() []float64 {
	out := make([]float64, r.model.Arity())
	copy(out, r.values[:])
	return out
}

// WithAlpha returns a copy of r with a new alpha.
func (r Record) WithAlpha(alpha float64) Record {
	r.alpha = normalizeAlpha(r.model, alpha)
	return r
}

// Channel reads a channel. It reports false when the channel does not
// belong to the live model; call EnsureSpace first in that case.
func (r Record) Channel(ch Channel) (float64, bool) {
	if ch.Model != r.model || ch.Index < 0 || ch.Index >= r.model.Arity() {
		return 0, false
	}
	return r.values[ch.Index], true
}

// WithChannel returns a copy of r with one channel replaced. It reports
// false when the channel does not belong to the live model.
func (r Record) WithChannel(ch Channel, v float64) (Record, bool) {
	if ch.Model != r.model || ch.Index < 0 || ch.Index >= r.model.Arity() {
		return r, false
	}
	if ch.Index == r.model.hueIndex() {
		v = WrapDegrees(v)
	}
	r.values[ch.Index] = v
	return r, true
}

// Typed views of a record. Each struct mirrors one model's channels.
type (
	RGB   struct{ R, G, B float64 }
	HSL   struct{ H, S, L float64 }
	Lab   struct{ L, A, B float64 }
	LCH   struct{ L, C, H float64 }
	HWB   struct{ H, W, B float64 }
	XYZ   struct{ X, Y, Z float64 }
	CMYK  struct{ C, M, Y, K float64 }
	OKLab struct{ L, A, B float64 }
	OKLCH struct{ L, C, H float64 }
)

// RGBA is an RGB triple with alpha, the input of nearest-color search.
type RGBA struct {
	R, G, B float64
	A       float64
}

func (c RGB) Record(alpha float64) Record   { return NewRecord(ModelRGB, alpha, c.R, c.G, c.B) }
func (c HSL) Record(alpha float64) Record   { return NewRecord(ModelHSL, alpha, c.H, c.S, c.L) }
func (c Lab) Record(alpha float64) Record   { return NewRecord(ModelLab, alpha, c.L, c.A, c.B) }
func (c LCH) Record(alpha float64) Record   { return NewRecord(ModelLCH, alpha, c.L, c.C, c.H) }
func (c HWB) Record(alpha float64) Record   { return NewRecord(ModelHWB, alpha, c.H, c.W, c.B) }
func (c XYZ) Record(alpha float64) Record   { return NewRecord(ModelXYZ, alpha, c.X, c.Y, c.Z) }
func (c CMYK) Record() Record               { return NewRecord(ModelCMYK, 1, c.C, c.M, c.Y, c.K) }
func (c OKLab) Record(alpha float64) Record { return NewRecord(ModelOKLab, alpha, c.L, c.A, c.B) }
func (c OKLCH) Record(alpha float64) Record { return NewRecord(ModelOKLCH, alpha, c.L, c.C, c.H) }

func (r Record) RGB() (RGB, bool) {
	return RGB{r.values[0], r.values[1], r.values[2]}, r.model == ModelRGB
}

func (r Record) HSL() (HSL, bool) {
	return HSL{r.values[0], r.values[1], r.values[2]}, r.model == ModelHSL
}

func (r Record) Lab() (Lab, bool) {
	return Lab{r.values[0], r.values[1], r.values[2]}, r.model == ModelLab
}

func (r Record) LCH() (LCH, bool) {
	return LCH{r.values[0], r.values[1], r.values[2]}, r.model == ModelLCH
}

func (r Record) HWB() (HWB, bool) {
	return HWB{r.values[0], r.values[1], r.values[2]}, r.model == ModelHWB
}

func (r Record) XYZ() (XYZ, bool) {
	return XYZ{r.values[0], r.values[1], r.values[2]}, r.model == ModelXYZ
}

func (r Record) CMYK() (CMYK, bool) {
	return CMYK{r.values[0], r.values[1], r.values[2], r.values[3]}, r.model == ModelCMYK
}

func (r Record) OKLab() (OKLab, bool) {
	return OKLab{r.values[0], r.values[1], r.values[2]}, r.model == ModelOKLab
}

func (r Record) OKLCH() (OKLCH, bool) {
	return OKLCH{r.values[0], r.values[1], r.values[2]}, r.model == ModelOKLCH
}

// Channel names one coordinate of one model.
type Channel struct {
	Model Model
	Index int
	Name  string
}

var (
	Red   = Channel{ModelRGB, 0, "red"}
	Green = Channel{ModelRGB, 1, "green"}
	Blue  = Channel{ModelRGB, 2, "blue"}

	Hue        = Channel{ModelHSL, 0, "hue"}
	Saturation = Channel{ModelHSL, 1, "saturation"}
	Lightness  = Channel{ModelHSL, 2, "lightness"}

	LabL = Channel{ModelLab, 0, "l"}
	LabA = Channel{ModelLab, 1, "a"}
	LabB = Channel{ModelLab, 2, "b"}

	LCHLightness = Channel{ModelLCH, 0, "l"}
	LCHChroma    = Channel{ModelLCH, 1, "c"}
	LCHHue       = Channel{ModelLCH, 2, "h"}

	HWBHue    = Channel{ModelHWB, 0, "hue"}
	Whiteness = Channel{ModelHWB, 1, "whiteness"}
	Blackness = Channel{ModelHWB, 2, "blackness"}

	X = Channel{ModelXYZ, 0, "x"}
	Y = Channel{ModelXYZ, 1, "y"}
	Z = Channel{ModelXYZ, 2, "z"}

	Cyan    = Channel{ModelCMYK, 0, "cyan"}
	Magenta = Channel{ModelCMYK, 1, "magenta"}
	Yellow  = Channel{ModelCMYK, 2, "yellow"}
	Key     = Channel{ModelCMYK, 3, "key"}

	OKLabL = Channel{ModelOKLab, 0, "l"}
	OKLabA = Channel{ModelOKLab, 1, "a"}
	OKLabB = Channel{ModelOKLab, 2, "b"}

	OKLCHLightness = Channel{ModelOKLCH, 0, "l"}
	OKLCHChroma    = Channel{ModelOKLCH, 1, "c"}
	OKLCHHue       = Channel{ModelOKLCH, 2, "h"}
)

// Channels returns the channel table of a model in value order.
func Channels(m Model) []Channel {
	switch m {
	case ModelRGB:
		return []Channel{Red, Green, Blue}
	case ModelHSL:
		return []Channel{Hue, Saturation, Lightness}
	case ModelLab:
		return []Channel{LabL, LabA, LabB}
	case ModelLCH:
		return []Channel{LCHLightness, LCHChroma, LCHHue}
	case ModelHWB:
		return []Channel{HWBHue, Whiteness, Blackness}
	case ModelXYZ:
		return []Channel{X, Y, Z}
	case ModelCMYK:
		return []Channel{Cyan, Magenta, Yellow, Key}
	case ModelOKLab:
		return []Channel{OKLabL, OKLabA, OKLabB}
	case ModelOKLCH:
		return []Channel{OKLCHLightness, OKLCHChroma, OKLCHHue}
	}
	return nil
}

// LookupChannel finds a channel of model m by its name or its first letter
// ("r", "hue", "w"). Matching is case-insensitive.
func LookupChannel(m Model, name string) (Channel, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Channel{}, false
	}
	for _, ch := range Channels(m) {
		if ch.Name == name || ch.Name[:1] == name {
			return ch, true
		}
	}
	return Channel{}, false
}
