package colormodel

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/colornames"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	if table.Len() != len(colornames.Names) {
		t.Errorf("got %d entries, want %d", table.Len(), len(colornames.Names))
	}
	if first := table.Colors[0].Name; first != "aliceblue" {
		t.Errorf("first entry: got %q, want aliceblue", first)
	}

	c, ok := table.Lookup("  DarkSlateGray ")
	if !ok {
		t.Fatal("darkslategray not found")
	}
	if c.RGB != [3]uint8{47, 79, 79} {
		t.Errorf("darkslategray: got %v", c.RGB)
	}
	if _, ok := table.Lookup("rebeccapurple"); ok {
		t.Error("rebeccapurple is not an SVG 1.1 name")
	}
}

func TestLoadTable(t *testing.T) {
	doc := `{"sky": [135, 206, 235], "brick": [178, 34, 34], "ink": [0, 0, 0]}`

	table, err := LoadTable("custom", strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	want := Table{
		Name: "custom",
		Colors: []NamedColor{
			{"sky", [3]uint8{135, 206, 235}},
			{"brick", [3]uint8{178, 34, 34}},
			{"ink", [3]uint8{0, 0, 0}},
		},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTable_Errors(t *testing.T) {
	tests := map[string]string{
		"not an object":   `[[1, 2, 3]]`,
		"string value":    `{"red": "#ff0000"}`,
		"out of range":    `{"red": [300, 0, 0]}`,
		"truncated":       `{"red": [255, 0, 0]`,
		"empty input":     ``,
		"negative number": `{"red": [-1, 0, 0]}`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadTable("bad", strings.NewReader(doc)); err == nil {
				t.Errorf("expected an error for %q", doc)
			}
		})
	}
}

func TestLoadTable_Empty(t *testing.T) {
	table, err := LoadTable("none", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("got %d entries, want 0", table.Len())
	}
}
