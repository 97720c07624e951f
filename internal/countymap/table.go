// Package countymap maps county names to marker positions on the map image.
package countymap

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed counties.yaml
var defaultTableYAML []byte

// Offset is a marker position in pixels relative to the map image's
// top-left corner.
type Offset struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Table maps a county name (exact string from the dataset) to its offset.
type Table map[string]Offset

// UnknownCountyError reports a county name with no map coordinate. Scene
// construction fails rather than silently dropping the marker.
type UnknownCountyError struct {
	County string
}

func (e *UnknownCountyError) Error() string {
	return fmt.Sprintf("no map coordinate for county %q", e.County)
}

// Lookup returns the offset for a county, or an UnknownCountyError.
func (t Table) Lookup(county string) (Offset, error) {
	off, ok := t[county]
	if !ok {
		return Offset{}, &UnknownCountyError{County: county}
	}
	return off, nil
}

// LoadTable parses a YAML county table from r.
func LoadTable(r io.Reader) (Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("parse county table: %w", err)
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("county table is empty")
	}
	return t, nil
}

// Default returns the table embedded with the binary, covering every county
// that appears in the 2008-2020 dataset.
func Default() Table {
	t, err := LoadTable(bytes.NewReader(defaultTableYAML))
	if err != nil {
		// The embedded table is validated by tests; failing to parse it
		// is a build defect, not a runtime condition.
		panic(err)
	}
	return t
}
