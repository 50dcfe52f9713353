package colormodel

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseModel(t *testing.T) {
	tests := map[string]Model{
		"rgb":    ModelRGB,
		"RGBA":   ModelRGB,
		"hex":    ModelRGB,
		"color":  ModelRGB,
		" hsla ": ModelHSL,
		"lab":    ModelLab,
		"lch":    ModelLCH,
		"hwb":    ModelHWB,
		"xyz":    ModelXYZ,
		"cmyk":   ModelCMYK,
		"OKLab":  ModelOKLab,
		"oklch":  ModelOKLCH,
	}
	for in, want := range tests {
		got, err := ParseModel(in)
		if err != nil {
			t.Errorf("ParseModel(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseModel(%q): got %s, want %s", in, got, want)
		}
	}

	_, err := ParseModel("ryb")
	var merr *UnknownModelError
	if !errors.As(err, &merr) || merr.Name != "ryb" {
		t.Errorf("got %v, want *UnknownModelError for ryb", err)
	}
}

func TestModelString(t *testing.T) {
	if got := ModelOKLCH.String(); got != "oklch" {
		t.Errorf("got %q, want oklch", got)
	}
	if got := Model(-1).String(); got != "unknown" {
		t.Errorf("got %q, want unknown", got)
	}
}

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name       string
		rec        Record
		wantValues []float64
		wantAlpha  float64
	}{
		{"hue wrapped", NewRecord(ModelHSL, 1, -30, 50, 50), []float64{330, 50, 50}, 1},
		{"lch hue wrapped", NewRecord(ModelLCH, 1, 50, 20, 725), []float64{50, 20, 5}, 1},
		{"alpha bounded", NewRecord(ModelRGB, 2, 1, 2, 3), []float64{1, 2, 3}, 1},
		{"negative alpha", NewRecord(ModelRGB, -1, 1, 2, 3), []float64{1, 2, 3}, 0},
		{"NaN alpha is opaque", NewRecord(ModelRGB, math.NaN(), 1, 2, 3), []float64{1, 2, 3}, 1},
		{"missing values", NewRecord(ModelLab, 1, 50), []float64{50, 0, 0}, 1},
		{"extra values ignored", NewRecord(ModelXYZ, 1, 1, 2, 3, 4), []float64{1, 2, 3}, 1},
		{"cmyk is opaque", NewRecord(ModelCMYK, 0.5, 1, 2, 3, 4), []float64{1, 2, 3, 4}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.wantValues, tt.rec.Values()); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
			if tt.rec.Alpha() != tt.wantAlpha {
				t.Errorf("alpha: got %v, want %v", tt.rec.Alpha(), tt.wantAlpha)
			}
		})
	}
}

func TestRecord_WithAlpha(t *testing.T) {
	rec := RGB{1, 2, 3}.Record(1)
	if got := rec.WithAlpha(0.25).Alpha(); got != 0.25 {
		t.Errorf("got %v, want 0.25", got)
	}
	if rec.Alpha() != 1 {
		t.Error("WithAlpha modified the receiver")
	}
	if got := (CMYK{}).Record().WithAlpha(0.25).Alpha(); got != 1 {
		t.Errorf("cmyk alpha: got %v, want 1", got)
	}
}

func TestRecord_Channels(t *testing.T) {
	rec := HWB{120, 10, 20}.Record(1)

	if v, ok := rec.Channel(Whiteness); !ok || v != 10 {
		t.Errorf("whiteness: got %v, %v", v, ok)
	}
	if _, ok := rec.Channel(Hue); ok {
		t.Error("the hsl hue must not be readable from an hwb record")
	}

	next, ok := rec.WithChannel(HWBHue, 370)
	if !ok {
		t.Fatal("WithChannel failed")
	}
	if diff := cmp.Diff([]float64{10, 10, 20}, next.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if _, ok := rec.WithChannel(Red, 1); ok {
		t.Error("WithChannel accepted a channel of another model")
	}

	hwb, ok := next.HWB()
	if !ok || hwb != (HWB{10, 10, 20}) {
		t.Errorf("HWB view: got %v, %v", hwb, ok)
	}
	if _, ok := next.RGB(); ok {
		t.Error("RGB view must report false for an hwb record")
	}
}

func TestLookupChannel(t *testing.T) {
	tests := []struct {
		model Model
		name  string
		want  Channel
		ok    bool
	}{
		{ModelRGB, "r", Red, true},
		{ModelRGB, "Blue", Blue, true},
		{ModelHSL, "hue", Hue, true},
		{ModelHSL, "l", Lightness, true},
		{ModelHWB, "w", Whiteness, true},
		{ModelCMYK, "k", Key, true},
		{ModelOKLCH, "c", OKLCHChroma, true},
		{ModelRGB, "hue", Channel{}, false},
		{ModelLab, "", Channel{}, false},
	}

	for _, tt := range tests {
		got, ok := LookupChannel(tt.model, tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("LookupChannel(%s, %q): got %v, %v, want %v, %v", tt.model, tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestChannels_Arity(t *testing.T) {
	for _, m := range Models() {
		if got := len(Channels(m)); got != m.Arity() {
			t.Errorf("%s: got %d channels, want %d", m, got, m.Arity())
		}
	}
}
