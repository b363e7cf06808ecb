// Copyright (c) Molviz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package table

import (
	"fmt"
	"os"

	"github.com/molviz/showcolor"
	"gopkg.in/yaml.v3"
)

// A table file holds two optional lists of entries, one per subset:
//
//	colors:
//	  - name: cherry
//	    rgb: [0.91, 0.1, 0.14]
//	elements:
//	  - name: unobtainium
//	    rgb: [0.1, 0.9, 0.7]
type tableFile struct {
	Colors   []tableEntry `yaml:"colors"`
	Elements []tableEntry `yaml:"elements"`
}

type tableEntry struct {
	Name string    `yaml:"name"`
	RGB  []float64 `yaml:"rgb"`
}

// loadFile reads and validates one YAML table file, returning its generic
// and element subsets keyed by rounded triple. Any malformed entry is an
// error; the caller must not use a partially decoded file.
func loadFile(path string) (generic, element map[showcolor.Color]string, _ error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read table: %w", err)
	}
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, nil, fmt.Errorf("parse table %s: %w", path, err)
	}
	generic, err = checkSubset(path, "colors", tf.Colors)
	if err != nil {
		return nil, nil, err
	}
	element, err = checkSubset(path, "elements", tf.Elements)
	if err != nil {
		return nil, nil, err
	}
	return generic, element, nil
}

func checkSubset(path, subset string, es []tableEntry) (map[showcolor.Color]string, error) {
	out := make(map[showcolor.Color]string, len(es))
	for i, e := range es {
		if e.Name == "" {
			return nil, fmt.Errorf("table %s: %s[%d]: empty name", path, subset, i)
		}
		if len(e.RGB) != 3 {
			return nil, fmt.Errorf("table %s: %s[%d] (%s): rgb must have 3 components, got %d",
				path, subset, i, e.Name, len(e.RGB))
		}
		// Components outside [0, 1] are accepted as-is; the resolver never
		// clamps.
		c := showcolor.Color{e.RGB[0], e.RGB[1], e.RGB[2]}.Round()
		if prev, ok := out[c]; ok {
			return nil, fmt.Errorf("table %s: %s[%d] (%s): duplicate triple already used by %q",
				path, subset, i, e.Name, prev)
		}
		out[c] = e.Name
	}
	return out, nil
}
