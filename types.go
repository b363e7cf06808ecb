// Copyright (c) Molviz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package showcolor maps the display colors of rendered atoms back to
// human-readable color names.
//
// This package defines shared data types used throughout the tool.
package showcolor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Unknown is the sentinel label applied to an atom whose color is not
// within tolerance of any table entry. It is not an error value.
const Unknown = "unknown"

// An Atom identifies a single rendered atom and the display color it
// currently carries. The host visualization tool produces these; we never
// enumerate atoms ourselves.
type Atom struct {
	ID  string `json:"id" yaml:"id"`
	RGB Color  `json:"rgb" yaml:"rgb"`
}

// ValidForAnnotate reports whether a can be submitted for annotation.
func (a Atom) ValidForAnnotate() error {
	if a.ID == "" {
		return errors.New("atom ID is empty")
	}
	return nil
}

// MustColor constructs a color from a known color name or hex specification
// #xxx or #xxxxxx. It panics if s does not correspond to a valid color.
func MustColor(s string) Color {
	var c Color
	if err := c.UnmarshalText([]byte(s)); err != nil {
		panic("invalid color: " + err.Error())
	}
	return c
}

// A Color is an RGB triple with each component nominally in [0, 1].
// Components outside that range are carried through as-is, never clamped.
//
// In text form a Color is a known color name or a "#xxx"/"#xxxxxx" hex
// string (the "#" is optional). In JSON and YAML it additionally decodes
// from a bare 3-element array of floats, which preserves the full precision
// the renderer reports.
type Color [3]float64

func (c Color) R() float64 { return c[0] }
func (c Color) G() float64 { return c[1] }
func (c Color) B() float64 { return c[2] }

// Round returns c with each component rounded to three decimal places, the
// precision at which table entries are stored and exact matches are decided.
func (c Color) Round() Color {
	for i, v := range c {
		c[i] = math.Round(v*1000) / 1000
	}
	return c
}

// Hex renders c in "#xxxxxx" web form. Out-of-range components are clipped
// by the byte conversion; Hex is for display, not for round-trips.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		byte(c[0]*255), byte(c[1]*255), byte(c[2]*255))
}

func (c Color) MarshalText() ([]byte, error) {
	// Check for a name mapping.
	if n, ok := LookupName(c); ok {
		return []byte(n), nil
	}
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(data []byte) error {
	// As a special case, treat an empty string as "white".
	if len(data) == 0 {
		c[0], c[1], c[2] = 1, 1, 1
		return nil
	}
	p := string(data)

	// Check for a name mapping.
	if rgb, ok := LookupColor(p); ok {
		*c = rgb
		return nil
	}

	p = strings.TrimPrefix(p, "#")
	var r, g, b byte
	var err error
	switch len(p) {
	case 3:
		_, err = fmt.Sscanf(p, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(p, "%2x%2x%2x", &r, &g, &b)
	default:
		return errors.New("invalid hex color")
	}
	if err != nil {
		return err
	}
	c[0], c[1], c[2] = float64(r)/255, float64(g)/255, float64(b)/255
	return nil
}

func (c Color) MarshalJSON() ([]byte, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (c *Color) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty input")
	}
	switch data[0] {
	case '[':
		// A short array would silently zero-fill a [3]float64, so check the
		// arity explicitly.
		var v []float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		if len(v) != 3 {
			return fmt.Errorf("color must have 3 components, got %d", len(v))
		}
		copy(c[:], v)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	default:
		return errors.New("invalid color")
	}
}

func (c Color) MarshalYAML() (any, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	case yaml.SequenceNode:
		var v []float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		if len(v) != 3 {
			return fmt.Errorf("color must have 3 components, got %d (line %d)", len(v), node.Line)
		}
		copy(c[:], v)
		return nil
	default:
		return fmt.Errorf("invalid color node (line %d)", node.Line)
	}
}
