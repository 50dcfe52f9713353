package colormodel

import (
	"strings"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max float64
		want            float64
	}{
		{127.5, 0, 255, 128},
		{127.4, 0, 255, 127},
		{-3, 0, 255, 0},
		{300, 0, 255, 255},
		{-0.5, -10, 10, -1},
		{50, 0, 100, 50},
	}

	for _, tt := range tests {
		if got := Clamp(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v): got %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"-30", 330},
		{"725", 5},
		{"0", 0},
		{"360", 0},
		{"-360", 0},
		{"90deg", 90},
		{"-90DEG", 270},
		{"0.5turn", 180},
		{"100grad", 90},
		{"3.14159rad", 180},
		{"garbage", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeDegrees(tt.raw); got != tt.want {
				t.Errorf("NormalizeDegrees(%q): got %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-30, 330},
		{725, 5},
		{-750, 330},
		{359.5, 359.5},
	}
	for _, tt := range tests {
		if got := WrapDegrees(tt.in); got != tt.want {
			t.Errorf("WrapDegrees(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertToChannelValue(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		multiplier float64
		want       float64
		wantWarn   bool
	}{
		{"plain", "128", 255, 128, false},
		{"rounded", "1.5", 255, 2, false},
		{"above range", "300", 255, 255, false},
		{"negative", "-20", 255, 0, false},
		{"percent", "50%", 255, 127.5, false},
		{"percent of 100", "40%", 100, 40, false},
		{"angle", "90deg", 255, 90, false},
		{"calc sum", "calc(100 + 20)", 255, 120, false},
		{"calc percent product", "calc(50% * 2)", 255, 255, false},
		{"calc single operand", "calc(42)", 255, 42, false},
		{"calc divide by zero", "calc(10 / 0)", 255, 10, true},
		{"infinity", "infinity", 255, 255, true},
		{"positive infinity", "+Infinity", 255, 255, true},
		{"negative infinity", "-infinity", 255, 0, true},
		{"nan", "NaN", 255, 0, true},
		{"none", "none", 255, 0, true},
		{"currentColor", "currentColor", 255, 0, true},
		{"transparent", "transparent", 255, 0, true},
		{"garbage", "abc", 255, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := captureWarnings(t)

			got := ConvertToChannelValue(tt.raw, tt.multiplier)
			if got != tt.want {
				t.Errorf("ConvertToChannelValue(%q, %v): got %v, want %v", tt.raw, tt.multiplier, got, tt.want)
			}
			if warned := h.count() > 0; warned != tt.wantWarn {
				t.Errorf("warning logged: got %v, want %v (%v)", warned, tt.wantWarn, h.messages())
			}
		})
	}
}

func TestConvertToChannelValue_WarningNamesValue(t *testing.T) {
	h := captureWarnings(t)

	ConvertToChannelValue("infinity", 255)

	msgs := h.messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d warnings, want 1", len(msgs))
	}
	if !strings.Contains(msgs[0], "infinity") || !strings.Contains(msgs[0], "255") {
		t.Errorf("warning should mention the sentinel and its fallback: %q", msgs[0])
	}
}

func TestConvertToNumber(t *testing.T) {
	tests := []struct {
		raw  string
		ref  float64
		want float64
	}{
		{"-80.5", 125, -80.5},
		{"50%", 125, 62.5},
		{"-100%", 0.4, -0.4},
		{"calc(10 - 30)", 125, -20},
	}
	for _, tt := range tests {
		if got := convertToNumber(tt.raw, tt.ref); got != tt.want {
			t.Errorf("convertToNumber(%q, %v): got %v, want %v", tt.raw, tt.ref, got, tt.want)
		}
	}
}

func TestConvertAlpha(t *testing.T) {
	captureWarnings(t)

	tests := []struct {
		raw  string
		want float64
	}{
		{"", 1},
		{"0.5", 0.5},
		{"50%", 0.5},
		{"2", 1},
		{"-1", 0},
		{"none", 1},
		{"-infinity", 0},
		{"calc(0.25 + 0.25)", 0.5},
	}
	for _, tt := range tests {
		if got := convertAlpha(tt.raw); got != tt.want {
			t.Errorf("convertAlpha(%q): got %v, want %v", tt.raw, got, tt.want)
		}
	}
}
