package colormodel

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	commentRegex = regexp.MustCompile(`(?s)/\*.*?\*/|//[^\n]*`)
	hexPairRegex = regexp.MustCompile(`^[0-9a-fA-F]+$`)
)

// StripComments removes /* block */ and // line comments.
func StripComments(s string) string {
	return commentRegex.ReplaceAllString(s, "")
}

// CleanDefinition strips comments and returns the trimmed text between the
// first "(" and the last ")". Without a closing parenthesis everything after
// the opening one is returned.
func CleanDefinition(s string) string {
	clean := StripComments(s)

	open := strings.Index(clean, "(")
	closing := strings.LastIndex(clean, ")")
	if closing <= open {
		closing = len(clean)
	}

	return strings.TrimSpace(clean[open+1 : closing])
}

// SplitValues splits a channel list on commas when present, otherwise on
// runs of whitespace. The CSS "/" alpha separator is treated as one more
// separator. Separators nested in parentheses, as in calc(10 + 20), do not
// split. Every token is trimmed.
func SplitValues(raw string) []string {
	byComma := false
	depth := 0
	for _, r := range raw {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				byComma = true
			}
		}
	}

	var (
		out []string
		cur strings.Builder
	)
	flush := func(keepEmpty bool) {
		tok := strings.TrimSpace(cur.String())
		cur.Reset()
		if tok != "" || keepEmpty {
			out = append(out, tok)
		}
	}

	depth = 0
	for _, r := range raw {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case depth > 0:
		case r == ',' || r == '/':
			flush(byComma)
			continue
		case !byComma && unicode.IsSpace(r):
			flush(false)
			continue
		}
		cur.WriteRune(r)
	}
	flush(byComma && len(out) > 0)
	return out
}

// fallbackTokens keeps the first three tokens and pads missing ones with "0".
func fallbackTokens(tokens []string) []string {
	out := []string{"0", "0", "0"}
	for i := 0; i < len(tokens) && i < 3; i++ {
		if tokens[i] != "" {
			out[i] = tokens[i]
		}
	}
	return out
}

// Extract tokenizes a functional color string such as "rgb(1, 2, 3)". A
// token count other than 3 or 4 logs a warning and falls back to three
// tokens.
func Extract(colorString string) []string {
	values := SplitValues(CleanDefinition(colorString))
	if len(values) != 3 && len(values) != 4 {
		warn("unexpected number of color channels, using fallback",
			"input", colorString, "count", len(values))
		return fallbackTokens(values)
	}
	return values
}

// ParseHex splits "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa" into upper-cased
// two-digit pairs. Short forms double every digit. Pairs that are not valid
// hex digits are kept as is and logged; any other length logs a warning and
// yields black.
func ParseHex(value string) []string {
	digits := strings.TrimPrefix(strings.TrimSpace(value), "#")

	var pairs []string
	switch len(digits) {
	case 3, 4:
		for _, d := range digits {
			pairs = append(pairs, strings.Repeat(string(d), 2))
		}
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			pairs = append(pairs, digits[i:i+2])
		}
	}

	if len(pairs) == 0 {
		warn("invalid hex color, using fallback", "input", value)
		return []string{"00", "00", "00"}
	}

	for i, p := range pairs {
		if !hexPairRegex.MatchString(p) {
			warn("invalid hex digits", "input", value, "index", i, "pair", p)
			continue
		}
		pairs[i] = strings.ToUpper(p)
	}
	return pairs
}
