package colormodel

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	numericRegex = regexp.MustCompile(`^[-+]?\d*\.?\d+$`)
	leadingFloat = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)
	calcRegex    = regexp.MustCompile(`(?i)calc\(([^)]+)\)`)
	calcBinary   = regexp.MustCompile(`^(\S+)\s+([-+*/])\s+(\S+)$`)
)

// Clamp rounds value half away from zero and bounds it to [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(math.Round(value), min), max)
}

// clampFloat bounds value to [min, max] without rounding.
func clampFloat(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

// parseLeadingFloat reads the longest numeric prefix of s, ignoring any
// trailing unit. It reports false when s does not start with a number.
func parseLeadingFloat(s string) (float64, bool) {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// WrapDegrees folds an angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	if deg < 0 {
		deg = math.Mod(deg, 360) + 360
	}
	if deg >= 360 {
		deg = math.Mod(deg, 360)
	}
	return deg
}

// NormalizeDegrees converts a CSS angle to degrees in [0, 360).
//
// Accepted suffixes are deg, rad, grad and turn. Radians and turns are
// rounded to whole degrees. A bare number is taken as degrees and an
// unparseable string yields 0.
//
//	NormalizeDegrees("-30")     // 330
//	NormalizeDegrees("725")     // 5
//	NormalizeDegrees("0.5turn") // 180
func NormalizeDegrees(raw string) float64 {
	angle := strings.ToLower(strings.TrimSpace(raw))
	v, _ := parseLeadingFloat(angle)

	switch {
	case strings.HasSuffix(angle, "grad"):
		v *= 0.9
	case strings.HasSuffix(angle, "deg"):
	case strings.HasSuffix(angle, "rad"):
		v = math.Round(v * (180 / math.Pi))
	case strings.HasSuffix(angle, "turn"):
		v = math.Round(v * 360)
	}

	return WrapDegrees(v)
}

func hasAngleSuffix(s string) bool {
	s = strings.ToLower(s)
	return strings.HasSuffix(s, "deg") || strings.HasSuffix(s, "rad") || strings.HasSuffix(s, "turn")
}

// channelFallback resolves sentinel keywords and garbage tokens. Positive
// infinity maps to 255, everything else to 0. A warning is always logged.
func channelFallback(value string) float64 {
	switch strings.ToLower(value) {
	case "infinity", "+infinity":
		warn("positive infinity value has been set to 255", "value", value)
		return 255
	case "-infinity":
		warn("negative infinity value has been set to 0", "value", value)
	case "nan":
		warn("NaN value has been set to 0", "value", value)
	case "none":
		warn("the none keyword is invalid in legacy color syntax, set to 0", "value", value)
	case "currentcolor":
		warn("the currentColor value has been set to 0", "value", value)
	case "transparent":
		warn("the transparent value has been set to 0", "value", value)
	default:
		warn("invalid channel value has been set to 0", "value", value)
	}
	return 0
}

// ConvertToChannelValue coerces a CSS channel token into a number.
//
// Plain numbers are rounded and bounded to [0, multiplier]. Percentages are
// scaled against multiplier ("50%" with 255 gives 127.5). Angles are
// normalized to degrees, and calc() expressions are evaluated and bounded.
// Sentinel keywords such as "infinity" or "none" resolve to a fallback with
// a logged warning; the function never fails.
func ConvertToChannelValue(raw string, multiplier float64) float64 {
	value := strings.TrimSpace(raw)

	switch {
	case numericRegex.MatchString(value):
		v, _ := strconv.ParseFloat(value, 64)
		return Clamp(v, 0, multiplier)
	case strings.HasSuffix(value, "%"):
		v, _ := parseLeadingFloat(value)
		return v / 100 * multiplier
	case hasAngleSuffix(value):
		return NormalizeDegrees(value)
	case strings.HasPrefix(strings.ToLower(value), "calc"):
		return Clamp(evalCalc(value, func(s string) float64 {
			return ConvertToChannelValue(s, multiplier)
		}), 0, multiplier)
	}

	return channelFallback(value)
}

// convertToNumber coerces a token for an unbounded axis such as LAB a/b.
// Percentages are scaled against percentRef; nothing is clamped.
func convertToNumber(raw string, percentRef float64) float64 {
	value := strings.TrimSpace(raw)

	switch {
	case numericRegex.MatchString(value):
		v, _ := strconv.ParseFloat(value, 64)
		return v
	case strings.HasSuffix(value, "%"):
		v, _ := parseLeadingFloat(value)
		return v / 100 * percentRef
	case hasAngleSuffix(value):
		return NormalizeDegrees(value)
	case strings.HasPrefix(strings.ToLower(value), "calc"):
		return evalCalc(value, func(s string) float64 {
			return convertToNumber(s, percentRef)
		})
	}

	return channelFallback(value)
}

// convertAlpha coerces an alpha token to [0, 1]. An empty token means opaque.
func convertAlpha(raw string) float64 {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 1
	}

	switch {
	case numericRegex.MatchString(value):
		v, _ := strconv.ParseFloat(value, 64)
		return clampFloat(v, 0, 1)
	case strings.HasSuffix(value, "%"):
		v, _ := parseLeadingFloat(value)
		return clampFloat(v/100, 0, 1)
	case strings.HasPrefix(strings.ToLower(value), "calc"):
		return clampFloat(evalCalc(value, convertAlpha), 0, 1)
	}

	// Sentinel alphas resolve to opaque, except negative infinity.
	if channelFallback(value) == 0 && strings.EqualFold(value, "-infinity") {
		return 0
	}
	return 1
}

// evalCalc extracts the body of calc(...) and evaluates it. The body is a
// single operand or one binary operation between two operands; each operand
// is coerced with operand.
func evalCalc(value string, operand func(string) float64) float64 {
	m := calcRegex.FindStringSubmatch(value)
	if m == nil {
		return channelFallback(value)
	}
	inner := strings.TrimSpace(m[1])

	parts := calcBinary.FindStringSubmatch(inner)
	if parts == nil {
		return operand(inner)
	}

	left := operand(parts[1])
	switch parts[2] {
	case "+":
		return left + operand(parts[3])
	case "-":
		return left - operand(parts[3])
	case "*":
		// The right side of a product is a plain factor, not a channel value.
		f, ok := parseLeadingFloat(parts[3])
		if !ok {
			return left * operand(parts[3])
		}
		return left * f
	case "/":
		f, ok := parseLeadingFloat(parts[3])
		if !ok || f == 0 {
			warn("invalid calc() divisor", "value", value)
			return left
		}
		return left / f
	}

	return operand(inner)
}
