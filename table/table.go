// Copyright (c) Molviz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package table implements the merged color lookup table and the resolver
// that maps an RGB triple back to a color name.
//
// # Structure
//
// A Table merges two subsets: generic named colors and chemical-element
// colors. The built-in tables are always present; additional YAML files may
// be layered on top at construction time. After construction a Table is
// read-only and safe for concurrent use by multiple goroutines.
package table

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/molviz/showcolor"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// An Entry is one (triple, name) pair of the merged table. Element reports
// which subset the entry belongs to.
type Entry struct {
	RGB     showcolor.Color
	Name    string
	Element bool
}

// A Table is a merged, immutable color lookup table.
type Table struct {
	exact     map[showcolor.Color]string
	entries   []Entry // ordered: elements before generics, then by name
	tolerance float64
}

// Options are optional settings for a Table. A nil *Options is ready for use
// with default values.
type Options struct {
	// Accept a nearest-neighbor match only if its Euclidean RGB distance is
	// at most this value. Default: 0.05.
	Tolerance float64

	// Additional YAML table files merged over the built-in tables, in order.
	// An entry at a triple already present in the same subset replaces it.
	Files []string
}

func (o *Options) tolerance() float64 {
	if o == nil || o.Tolerance <= 0 {
		return 0.05
	}
	return o.Tolerance
}

func (o *Options) files() []string {
	if o == nil {
		return nil
	}
	return o.Files
}

// New constructs a Table from the built-in tables plus any files named in
// opts. A nil *Options provides default settings (see [Options]). A
// malformed file entry fails construction; a Table is never partially
// loaded.
func New(opts *Options) (*Table, error) {
	named, elements := showcolor.Tables()
	generic := collapse(named)
	element := collapse(elements)

	for _, path := range opts.files() {
		g, e, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		maps.Copy(generic, g)
		maps.Copy(element, e)
	}

	// Element entries override generic ones at the same triple.
	exact := make(map[showcolor.Color]string, len(generic)+len(element))
	maps.Copy(exact, generic)
	maps.Copy(exact, element)

	entries := make([]Entry, 0, len(generic)+len(element))
	for c, n := range element {
		entries = append(entries, Entry{RGB: c, Name: n, Element: true})
	}
	for c, n := range generic {
		entries = append(entries, Entry{RGB: c, Name: n})
	}
	// The scan in Resolve keeps the first entry at the minimum distance, so
	// this order is the tie-break rule: element entries beat generic ones,
	// then the lexicographically smallest name wins.
	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Element != b.Element {
			if a.Element {
				return -1
			}
			return 1
		}
		if a.Name != b.Name {
			if a.Name < b.Name {
				return -1
			}
			return 1
		}
		return 0
	})

	return &Table{
		exact:     exact,
		entries:   entries,
		tolerance: opts.tolerance(),
	}, nil
}

// collapse inverts a name-to-triple subset into a triple-to-name map.
// When two names share a triple the lexicographically smallest name wins,
// independent of map iteration order.
func collapse(m map[string]showcolor.Color) map[showcolor.Color]string {
	out := make(map[showcolor.Color]string, len(m))
	for n, c := range m {
		c = c.Round()
		if cur, ok := out[c]; !ok || n < cur {
			out[c] = n
		}
	}
	return out
}

// Resolve maps an RGB triple to a color name. An exact hit (at 3-decimal
// precision) returns immediately; otherwise the nearest entry by Euclidean
// RGB distance is returned if it lies within the table's tolerance.
// Resolve is a pure function of the table contents.
func (t *Table) Resolve(c showcolor.Color) (name string, ok bool) {
	if name, ok := t.exact[c.Round()]; ok {
		return name, true
	}

	want := colorful.Color{R: c.R(), G: c.G(), B: c.B()}
	bestDist := math.Inf(1)
	var best Entry
	for _, e := range t.entries {
		got := colorful.Color{R: e.RGB.R(), G: e.RGB.G(), B: e.RGB.B()}
		if d := want.DistanceRgb(got); d < bestDist {
			best, bestDist = e, d
		}
	}
	if bestDist > t.tolerance {
		return "", false
	}
	return best.Name, true
}

// Label is Resolve with the sentinel label in place of a miss.
func (t *Table) Label(c showcolor.Color) string {
	if name, ok := t.Resolve(c); ok {
		return name
	}
	return showcolor.Unknown
}

// Entries returns a copy of the merged table in tie-break order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Len reports the number of distinct triples in the merged table.
func (t *Table) Len() int { return len(t.exact) }

// Tolerance reports the nearest-match acceptance distance.
func (t *Table) Tolerance() float64 { return t.tolerance }
