package colormodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStripComments(t *testing.T) {
	got := StripComments("rgb(/* red */ 255, 0, 0) // trailing")
	if want := "rgb( 255, 0, 0) "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanDefinition(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"rgb(255, 0, 0)", "255, 0, 0"},
		{"rgb( 1 2 3 )", "1 2 3"},
		{"hsl(calc(10 + 20) 50% 50%)", "calc(10 + 20) 50% 50%"},
		{"rgb(1, 2, 3", "1, 2, 3"},
		{"1 2 3", "1 2 3"},
		{"lab(/* note */ 50 20 10)", "50 20 10"},
	}

	for _, tt := range tests {
		if got := CleanDefinition(tt.in); got != tt.want {
			t.Errorf("CleanDefinition(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitValues(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"255, 0 , 128", []string{"255", "0", "128"}},
		{"255   0\t128", []string{"255", "0", "128"}},
		{"255 0 128 / 50%", []string{"255", "0", "128", "50%"}},
		{"255 0 128/0.5", []string{"255", "0", "128", "0.5"}},
		{"1, 2, 3, 0.5", []string{"1", "2", "3", "0.5"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, SplitValues(tt.in)); diff != "" {
			t.Errorf("SplitValues(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestExtract(t *testing.T) {
	t.Run("three values", func(t *testing.T) {
		h := captureWarnings(t)
		if diff := cmp.Diff([]string{"1", "2", "3"}, Extract("rgb(1, 2, 3)")); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
		if h.count() != 0 {
			t.Errorf("unexpected warnings: %v", h.messages())
		}
	})

	t.Run("too few values", func(t *testing.T) {
		h := captureWarnings(t)
		if diff := cmp.Diff([]string{"1", "2", "0"}, Extract("rgb(1, 2)")); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
		if h.count() != 1 {
			t.Errorf("got %d warnings, want 1", h.count())
		}
	})

	t.Run("too many values", func(t *testing.T) {
		h := captureWarnings(t)
		if diff := cmp.Diff([]string{"1", "2", "3"}, Extract("rgb(1 2 3 4 5)")); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
		if h.count() != 1 {
			t.Errorf("got %d warnings, want 1", h.count())
		}
	})
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		want     []string
		wantWarn bool
	}{
		{"#f08", []string{"FF", "00", "88"}, false},
		{"#f08c", []string{"FF", "00", "88", "CC"}, false},
		{"#ff0080", []string{"FF", "00", "80"}, false},
		{"#FF008080", []string{"FF", "00", "80", "80"}, false},
		{"ff0080", []string{"FF", "00", "80"}, false},
		{"#ff00zz", []string{"FF", "00", "zz"}, true},
		{"#12345", []string{"00", "00", "00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h := captureWarnings(t)
			if diff := cmp.Diff(tt.want, ParseHex(tt.in)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if warned := h.count() > 0; warned != tt.wantWarn {
				t.Errorf("warning logged: got %v, want %v", warned, tt.wantWarn)
			}
		})
	}
}
