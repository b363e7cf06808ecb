// Copyright (c) Molviz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package showcolor

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestColorNames(t *testing.T) {
	named, elements := Tables()

	for n, want := range elements {
		var c Color
		if err := c.UnmarshalText([]byte(n)); err != nil {
			t.Errorf("Unmarshal %q: unexpected error: %v", n, err)
			continue
		}
		if c != want {
			t.Errorf("Unmarshal %q: got %v, want %v", n, c, want)
		}
	}
	for n, want := range named {
		if _, both := elements[n]; both {
			// Element entries own shared names (they carry the same triple
			// in the shipped tables anyway).
			continue
		}
		var c Color
		if err := c.UnmarshalText([]byte(n)); err != nil {
			t.Errorf("Unmarshal %q: unexpected error: %v", n, err)
			continue
		}
		if c != want {
			t.Errorf("Unmarshal %q: got %v, want %v", n, c, want)
		}
	}
}

func TestColorNameRoundTrip(t *testing.T) {
	// Marshaling any registered triple yields a name that unmarshals back to
	// the identical triple, whichever name wins the collision collapse.
	named, elements := Tables()
	for _, m := range []map[string]Color{named, elements} {
		for n, rgb := range m {
			out, err := rgb.MarshalText()
			if err != nil {
				t.Errorf("Marshal %v (%s): unexpected error: %v", rgb, n, err)
				continue
			}
			var back Color
			if err := back.UnmarshalText(out); err != nil {
				t.Errorf("Unmarshal %q: unexpected error: %v", out, err)
				continue
			}
			if back != rgb.Round() {
				t.Errorf("Round trip %s -> %s: got %v, want %v", n, out, back, rgb.Round())
			}
		}
	}
}

func TestColorCollisions(t *testing.T) {
	tests := []struct {
		rgb  Color
		want string
	}{
		{Color{1, 1, 0}, "dash"},         // dash < yellow, same subset
		{Color{0.2, 1, 0.2}, "carbon"},   // element carbon beats generic carbon/tv_green
		{Color{0.9, 0.9, 0.9}, "deuterium"}, // deuterium < hydrogen within elements
		{Color{0, 1, 0}, "strontium"},    // element beats generic "green"
		{Color{1, 0, 0}, "red"},
	}
	for _, tc := range tests {
		got, ok := LookupName(tc.rgb)
		if !ok {
			t.Errorf("LookupName %v: no name", tc.rgb)
		} else if got != tc.want {
			t.Errorf("LookupName %v: got %q, want %q", tc.rgb, got, tc.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#ff0000", Color{1, 0, 0}},
		{"ff0000", Color{1, 0, 0}},
		{"#f00", Color{1, 0, 0}},
		{"", Color{1, 1, 1}}, // empty means white
		{"#000", Color{0, 0, 0}},
	}
	for _, tc := range tests {
		var c Color
		if err := c.UnmarshalText([]byte(tc.input)); err != nil {
			t.Errorf("Unmarshal %q: unexpected error: %v", tc.input, err)
		} else if c != tc.want {
			t.Errorf("Unmarshal %q: got %v, want %v", tc.input, c, tc.want)
		}
	}

	for _, bad := range []string{"#ff00", "#ggg", "notacolor", "#abcdefg"} {
		var c Color
		if err := c.UnmarshalText([]byte(bad)); err == nil {
			t.Errorf("Unmarshal %q: got %v, want error", bad, c)
		}
	}
}

func TestColorJSON(t *testing.T) {
	tests := []struct {
		input  string
		want   Color
		output string
	}{
		{`"red"`, Color{1, 0, 0}, `"red"`},
		{`"#ff0000"`, Color{1, 0, 0}, `"red"`},
		{`[1, 0, 0]`, Color{1, 0, 0}, `"red"`},
		{`[0.439, 0.671, 0.98]`, Color{0.439, 0.671, 0.98}, `"actinium"`},
		{`[0.123, 0.456, 0.789]`, Color{0.123, 0.456, 0.789}, `"#1f74c9"`},
	}
	for _, tc := range tests {
		var val Color
		if err := json.Unmarshal([]byte(tc.input), &val); err != nil {
			t.Fatalf("Unmarshal %q: %v", tc.input, err)
		}
		if diff := cmp.Diff(tc.want, val); diff != "" {
			t.Errorf("Incorrect value (-want, +got):\n%s", diff)
		}
		bits, err := json.Marshal(val)
		if err != nil {
			t.Fatalf("Marshal %v: %v", val, err)
		}
		if got := string(bits); got != tc.output {
			t.Errorf("Marshal: got %#q, want %#q", got, tc.output)
		}
	}

	for _, bad := range []string{`{}`, `[1, 0]`, `5`} {
		var val Color
		if err := json.Unmarshal([]byte(bad), &val); err == nil {
			t.Errorf("Unmarshal %q: got %v, want error", bad, val)
		}
	}
}

func TestAtomYAML(t *testing.T) {
	const input = `
- id: mol1/1
  rgb: [1.0, 0.0, 0.0]
- id: mol1/2
  rgb: "#00ff00"
- id: mol1/3
  rgb: carbon
`
	var atoms []Atom
	if err := yaml.Unmarshal([]byte(input), &atoms); err != nil {
		t.Fatalf("Unmarshal atoms: %v", err)
	}
	want := []Atom{
		{ID: "mol1/1", RGB: Color{1, 0, 0}},
		{ID: "mol1/2", RGB: Color{0, 1, 0}},
		{ID: "mol1/3", RGB: Color{0.2, 1, 0.2}},
	}
	if diff := cmp.Diff(want, atoms); diff != "" {
		t.Errorf("Incorrect atoms (-want, +got):\n%s", diff)
	}

	if err := (Atom{RGB: Color{1, 0, 0}}).ValidForAnnotate(); err == nil {
		t.Error("ValidForAnnotate: want error for empty ID")
	}
}
