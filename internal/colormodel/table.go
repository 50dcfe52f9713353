package colormodel

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

// NamedColor is one entry of a reference table.
type NamedColor struct {
	Name string
	RGB  [3]uint8
}

// Table is an ordered list of named colors. Order matters: nearest-color
// ties go to the earlier entry.
type Table struct {
	Name   string
	Colors []NamedColor
}

// Len returns the number of entries.
func (t Table) Len() int { return len(t.Colors) }

// Lookup finds an entry by name, ignoring case.
func (t Table) Lookup(name string) (NamedColor, bool) {
	name = strings.TrimSpace(name)
	for _, c := range t.Colors {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return NamedColor{}, false
}

var (
	defaultOnce  sync.Once
	defaultTable Table
)

// DefaultTable returns the SVG 1.1 named colors in alphabetical order. It
// is built once and must be treated as read-only.
func DefaultTable() Table {
	defaultOnce.Do(func() {
		colors := make([]NamedColor, 0, len(colornames.Names))
		for _, name := range colornames.Names {
			c := colornames.Map[name]
			colors = append(colors, NamedColor{Name: name, RGB: [3]uint8{c.R, c.G, c.B}})
		}
		defaultTable = Table{Name: "svg", Colors: colors}
	})
	return defaultTable
}

// LoadTable decodes a JSON object of the form {"name": [r, g, b], ...}.
// Entries keep their document order.
func LoadTable(name string, r io.Reader) (Table, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return Table{}, fmt.Errorf("failed to read color table: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Table{}, fmt.Errorf("color table must be a JSON object")
	}

	t := Table{Name: name}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Table{}, fmt.Errorf("failed to read color name: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return Table{}, fmt.Errorf("unexpected token %v in color table", tok)
		}

		var rgb [3]uint8
		if err := dec.Decode(&rgb); err != nil {
			return Table{}, fmt.Errorf("invalid value for color %q: %w", key, err)
		}
		t.Colors = append(t.Colors, NamedColor{Name: key, RGB: rgb})
	}

	if _, err := dec.Token(); err != nil {
		return Table{}, fmt.Errorf("failed to read color table: %w", err)
	}
	return t, nil
}
