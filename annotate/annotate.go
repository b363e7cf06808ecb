// Copyright (c) Molviz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package annotate maps atoms supplied by the host visualization tool to
// resolved color-name labels. The host enumerates atoms and applies the
// labels on screen; this package only computes the mapping.
package annotate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/creachadair/mds/slice"
	"github.com/molviz/showcolor"
	"github.com/molviz/showcolor/table"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// A Row pairs one atom with its resolved label.
type Row struct {
	ID   string          `json:"id"`
	RGB  showcolor.Color `json:"rgb"`
	Name string          `json:"name"`
}

// Atoms resolves a label for every atom against t and returns one row per
// atom, sorted by atom ID. An unresolvable color is not an error: the row
// gets the sentinel label and the miss is logged at info level.
func Atoms(atoms []showcolor.Atom, t *table.Table) ([]Row, error) {
	rows := make([]Row, 0, len(atoms))
	for i, a := range atoms {
		if err := a.ValidForAnnotate(); err != nil {
			return nil, fmt.Errorf("atom %d: %w", i, err)
		}
		name := t.Label(a.RGB)
		if name == showcolor.Unknown {
			log.Info().
				Str("atom", a.ID).
				Str("rgb", a.RGB.Hex()).
				Msg("no color within tolerance")
		}
		rows = append(rows, Row{ID: a.ID, RGB: a.RGB, Name: name})
	}
	slices.SortFunc(rows, func(a, b Row) int {
		return strings.Compare(a.ID, b.ID)
	})
	return rows, nil
}

// Partition splits rows into those with a resolved name and those that got
// the sentinel label. The input order is preserved within each part.
func Partition(rows []Row) (resolved, unknown []Row) {
	rs := slices.Clone(rows)
	res := slice.Partition(rs, func(r Row) bool {
		return r.Name != showcolor.Unknown
	})
	return res, rs[len(res):]
}

// LoadAtoms reads an atoms file produced by the host. A .yaml or .yml
// extension selects YAML; anything else is parsed as a JSON array.
func LoadAtoms(path string) ([]showcolor.Atom, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read atoms: %w", err)
	}
	var atoms []showcolor.Atom
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &atoms)
	default:
		err = json.Unmarshal(data, &atoms)
	}
	if err != nil {
		return nil, fmt.Errorf("parse atoms %s: %w", path, err)
	}
	return atoms, nil
}

// WriteJSON writes the id-to-label mapping as an indented JSON object.
// Object keys are emitted in sorted order, so output is deterministic.
func WriteJSON(w io.Writer, rows []Row) error {
	labels := make(map[string]string, len(rows))
	for _, r := range rows {
		labels[r.ID] = r.Name
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(labels)
}

// WriteText writes one aligned "id hex label" line per row.
func WriteText(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.RGB.Hex(), r.Name)
	}
	return tw.Flush()
}
