package colormodel

// kernel converts the channel values of one model into another.
type kernel func(v [4]float64) [4]float64

type edge struct{ from, to Model }

// conversionEdges is the conversion graph. Every model is reachable from
// RGB and back; LAB goes through XYZ, LCH through LAB and OKLCH through
// OKLab. Anything not listed here, directly or as a path, is unsupported.
var conversionEdges = map[edge]kernel{
	{ModelRGB, ModelHSL}: func(v [4]float64) [4]float64 {
		c := RGBToHSL(v[0], v[1], v[2])
		return [4]float64{c.H, c.S, c.L}
	},
	{ModelHSL, ModelRGB}: func(v [4]float64) [4]float64 {
		c := HSLToRGB(v[0], v[1], v[2])
		return [4]float64{c.R, c.G, c.B}
	},
	{ModelRGB, ModelHWB}: func(v [4]float64) [4]float64 {
		c := RGBToHWB(v[0], v[1], v[2])
		return [4]float64{c.H, c.W, c.B}
	},
	{ModelHWB, ModelRGB}: func(v [4]float64) [4]float64 {
		c := HWBToRGB(v[0], v[1], v[2])
		return [4]float64{c.R, c.G, c.B}
	},
	{ModelRGB, ModelCMYK}: func(v [4]float64) [4]float64 {
		c := RGBToCMYK(v[0], v[1], v[2])
		return [4]float64{c.C, c.M, c.Y, c.K}
	},
	{ModelCMYK, ModelRGB}: func(v [4]float64) [4]float64 {
		c := CMYKToRGB(v[0], v[1], v[2], v[3])
		return [4]float64{c.R, c.G, c.B}
	},
	{ModelRGB, ModelXYZ}: func(v [4]float64) [4]float64 {
		c := RGBToXYZ(v[0], v[1], v[2])
		return [4]float64{c.X, c.Y, c.Z}
	},
	{ModelXYZ, ModelRGB}: func(v [4]float64) [4]float64 {
		c := XYZToRGB(v[0], v[1], v[2])
		return [4]float64{c.R, c.G, c.B}
	},
	{ModelXYZ, ModelLab}: func(v [4]float64) [4]float64 {
		c := XYZToLab(v[0], v[1], v[2])
		return [4]float64{c.L, c.A, c.B}
	},
	{ModelLab, ModelXYZ}: func(v [4]float64) [4]float64 {
		c := LabToXYZ(v[0], v[1], v[2])
		return [4]float64{c.X, c.Y, c.Z}
	},
	{ModelLab, ModelLCH}: func(v [4]float64) [4]float64 {
		c := LabToLCH(v[0], v[1], v[2])
		return [4]float64{c.L, c.C, c.H}
	},
	{ModelLCH, ModelLab}: func(v [4]float64) [4]float64 {
		c := LCHToLab(v[0], v[1], v[2])
		return [4]float64{c.L, c.A, c.B}
	},
	{ModelRGB, ModelOKLab}: func(v [4]float64) [4]float64 {
		c := RGBToOKLab(v[0], v[1], v[2])
		return [4]float64{c.L, c.A, c.B}
	},
	{ModelOKLab, ModelRGB}: func(v [4]float64) [4]float64 {
		c := OKLabToRGB(v[0], v[1], v[2])
		return [4]float64{c.R, c.G, c.B}
	},
	{ModelOKLab, ModelOKLCH}: func(v [4]float64) [4]float64 {
		c := OKLabToOKLCH(v[0], v[1], v[2])
		return [4]float64{c.L, c.C, c.H}
	},
	{ModelOKLCH, ModelOKLab}: func(v [4]float64) [4]float64 {
		c := OKLCHToOKLab(v[0], v[1], v[2])
		return [4]float64{c.L, c.A, c.B}
	},
}

// ConversionPath returns the sequence of models visited when converting
// from one model to another, both ends included. It reports false when no
// path exists. Paths are shortest in number of kernels; ties are broken by
// model declaration order so the result is deterministic.
func ConversionPath(from, to Model) ([]Model, bool) {
	if from == to {
		return []Model{from}, true
	}

	prev := map[Model]Model{from: from}
	queue := []Model{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range Models() {
			if _, seen := prev[next]; seen {
				continue
			}
			if _, ok := conversionEdges[edge{cur, next}]; !ok {
				continue
			}
			prev[next] = cur
			if next == to {
				path := []Model{to}
				for m := to; m != from; {
					m = prev[m]
					path = append([]Model{m}, path...)
				}
				return path, true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

// SupportedConversions lists every ordered model pair the graph can
// convert, direct kernels and multi-step paths alike.
func SupportedConversions() [][2]Model {
	var out [][2]Model
	for _, from := range Models() {
		for _, to := range Models() {
			if from == to {
				continue
			}
			if _, ok := ConversionPath(from, to); ok {
				out = append(out, [2]Model{from, to})
			}
		}
	}
	return out
}

// Convert returns rec expressed in the target model. Alpha is carried
// across unchanged, except that CMYK records are always opaque.
func Convert(rec Record, target Model) (Record, error) {
	if target < 0 || int(target) >= len(modelNames) {
		return rec, &UnknownModelError{Name: target.String()}
	}

	path, ok := ConversionPath(rec.model, target)
	if !ok {
		return rec, &UnsupportedConversionError{From: rec.model, To: target}
	}

	values := rec.values
	for i := 1; i < len(path); i++ {
		values = conversionEdges[edge{path[i-1], path[i]}](values)
	}

	return NewRecord(target, rec.alpha, values[:target.Arity()]...), nil
}

// ConvertTo is Convert with the target given by name.
func ConvertTo(rec Record, target string) (Record, error) {
	m, err := ParseModel(target)
	if err != nil {
		return rec, err
	}
	return Convert(rec, m)
}

// EnsureSpace makes sure rec is live in model m, converting it when it is
// not. The second result reports whether a conversion happened.
func EnsureSpace(rec Record, m Model) (Record, bool, error) {
	if rec.model == m {
		return rec, false, nil
	}
	out, err := Convert(rec, m)
	if err != nil {
		return rec, false, err
	}
	return out, true, nil
}
