// Copyright (c) Molviz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package annotate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/molviz/showcolor"
	"github.com/molviz/showcolor/table"
)

func mustTable(t *testing.T) *table.Table {
	t.Helper()
	tab, err := table.New(nil)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	return tab
}

func TestAtoms(t *testing.T) {
	tab := mustTable(t)
	atoms := []showcolor.Atom{
		{ID: "mol1/3", RGB: showcolor.Color{0, 0, 0.5}},     // nothing close
		{ID: "mol1/1", RGB: showcolor.Color{1, 0, 0}},       // exact
		{ID: "mol1/2", RGB: showcolor.Color{0.98, 0.02, 0}}, // nearest
	}
	rows, err := Atoms(atoms, tab)
	if err != nil {
		t.Fatalf("Atoms: unexpected error: %v", err)
	}
	want := []Row{
		{ID: "mol1/1", RGB: showcolor.Color{1, 0, 0}, Name: "red"},
		{ID: "mol1/2", RGB: showcolor.Color{0.98, 0.02, 0}, Name: "red"},
		{ID: "mol1/3", RGB: showcolor.Color{0, 0, 0.5}, Name: showcolor.Unknown},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Incorrect rows (-want, +got):\n%s", diff)
	}

	resolved, unknown := Partition(rows)
	if len(resolved) != 2 || len(unknown) != 1 {
		t.Errorf("Partition: got %d/%d, want 2/1", len(resolved), len(unknown))
	}
	if len(unknown) == 1 && unknown[0].ID != "mol1/3" {
		t.Errorf("Partition: unknown row is %q, want %q", unknown[0].ID, "mol1/3")
	}
}

func TestAtomsInvalid(t *testing.T) {
	tab := mustTable(t)
	if _, err := Atoms([]showcolor.Atom{{RGB: showcolor.Color{1, 0, 0}}}, tab); err == nil {
		t.Error("Atoms: want error for empty atom ID")
	}
}

func TestLoadAtoms(t *testing.T) {
	dir := t.TempDir()

	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(dir, "atoms.json")
		const text = `[
  {"id": "a", "rgb": "#ff0000"},
  {"id": "b", "rgb": "carbon"},
  {"id": "c", "rgb": [0.9, 0.9, 0.9]}
]`
		if err := os.WriteFile(path, []byte(text), 0600); err != nil {
			t.Fatal(err)
		}
		atoms, err := LoadAtoms(path)
		if err != nil {
			t.Fatalf("LoadAtoms: %v", err)
		}
		want := []showcolor.Atom{
			{ID: "a", RGB: showcolor.Color{1, 0, 0}},
			{ID: "b", RGB: showcolor.Color{0.2, 1, 0.2}},
			{ID: "c", RGB: showcolor.Color{0.9, 0.9, 0.9}},
		}
		if diff := cmp.Diff(want, atoms); diff != "" {
			t.Errorf("Incorrect atoms (-want, +got):\n%s", diff)
		}
	})

	t.Run("YAML", func(t *testing.T) {
		path := filepath.Join(dir, "atoms.yaml")
		const text = `
- id: a
  rgb: [1, 0, 0]
`
		if err := os.WriteFile(path, []byte(text), 0600); err != nil {
			t.Fatal(err)
		}
		atoms, err := LoadAtoms(path)
		if err != nil {
			t.Fatalf("LoadAtoms: %v", err)
		}
		if len(atoms) != 1 || atoms[0].RGB != (showcolor.Color{1, 0, 0}) {
			t.Errorf("LoadAtoms: got %+v", atoms)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := LoadAtoms(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("LoadAtoms: want error for missing file")
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte(`{"not": "a list"}`), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadAtoms(path); err == nil {
			t.Error("LoadAtoms: want error for malformed input")
		}
	})
}

func TestWriters(t *testing.T) {
	rows := []Row{
		{ID: "a", RGB: showcolor.Color{1, 0, 0}, Name: "red"},
		{ID: "b", RGB: showcolor.Color{0, 0, 0.5}, Name: showcolor.Unknown},
	}

	var jbuf strings.Builder
	if err := WriteJSON(&jbuf, rows); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	const wantJSON = `{
  "a": "red",
  "b": "unknown"
}
`
	if got := jbuf.String(); got != wantJSON {
		t.Errorf("WriteJSON: got %#q, want %#q", got, wantJSON)
	}

	var tbuf strings.Builder
	if err := WriteText(&tbuf, rows); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	got := tbuf.String()
	for _, want := range []string{"a", "#ff0000", "red", "b", "#00007f", "unknown"} {
		if !strings.Contains(got, want) {
			t.Errorf("WriteText output %#q missing %q", got, want)
		}
	}
}
