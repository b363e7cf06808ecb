// Copyright (c) Molviz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/molviz/showcolor"
	"github.com/molviz/showcolor/annotate"
	"github.com/molviz/showcolor/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <color>...",
	Short: "Resolve colors to names",
	Long: `Resolve one or more colors to names.

A color is a known name, a hex string (#rrggbb or #rgb), or a comma-separated
triple of floats such as 0.98,0.02,0.0.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTable()
		if err != nil {
			return err
		}
		for _, arg := range args {
			c, err := parseColor(arg)
			if err != nil {
				return fmt.Errorf("color %q: %w", arg, err)
			}
			fmt.Printf("%s\t%s\n", arg, t.Label(c))
		}
		return nil
	},
}

var (
	atomsPath  string
	outPath    string
	textFormat bool
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Annotate all atoms from an atoms file",
	Long: `Annotate all atoms from an atoms file.

The input is a JSON array (or YAML list, by extension) of {id, rgb} objects
as exported by the host visualization tool. The output maps each atom ID to
its resolved color name, "unknown" included; the host applies the labels.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := annotateAtoms()
		if err != nil {
			return err
		}
		out, done, err := openOutput()
		if err != nil {
			return err
		}
		defer done()
		if textFormat {
			return annotate.WriteText(out, rows)
		}
		return annotate.WriteJSON(out, rows)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a PNG legend for an atoms file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if outPath == "" {
			return fmt.Errorf("an output file is required (-o)")
		}
		rows, err := annotateAtoms()
		if err != nil {
			return err
		}
		out, done, err := openOutput()
		if err != nil {
			return err
		}
		defer done()
		return render.WritePNG(out, render.Legend(rows))
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the merged color table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTable()
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, e := range t.Entries() {
			subset := "color"
			if e.Element {
				subset = "element"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f %.3f %.3f\n",
				subset, e.Name, e.RGB.Hex(), e.RGB.R(), e.RGB.G(), e.RGB.B())
		}
		return tw.Flush()
	},
}

func init() {
	for _, cmd := range []*cobra.Command{annotateCmd, renderCmd} {
		cmd.Flags().StringVarP(&atomsPath, "atoms", "i", "",
			"Atoms file exported by the host (required)")
		cmd.Flags().StringVarP(&outPath, "output", "o", "",
			"Output file (default stdout)")
	}
	annotateCmd.Flags().BoolVar(&textFormat, "text", false,
		"Write aligned text instead of JSON")
}

// annotateAtoms runs the load-resolve pipeline shared by the annotate and
// render commands and logs a summary.
func annotateAtoms() ([]annotate.Row, error) {
	if atomsPath == "" {
		return nil, fmt.Errorf("an atoms file is required (-i)")
	}
	t, err := newTable()
	if err != nil {
		return nil, err
	}
	atoms, err := annotate.LoadAtoms(atomsPath)
	if err != nil {
		return nil, err
	}
	rows, err := annotate.Atoms(atoms, t)
	if err != nil {
		return nil, err
	}
	resolved, unknown := annotate.Partition(rows)
	log.Info().
		Int("atoms", len(rows)).
		Int("resolved", len(resolved)).
		Int("unknown", len(unknown)).
		Msg("annotation complete")
	return rows, nil
}

func openOutput() (io.Writer, func(), error) {
	if outPath == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// parseColor accepts the resolve command's color spellings.
func parseColor(arg string) (showcolor.Color, error) {
	var c showcolor.Color
	if strings.Contains(arg, ",") {
		parts := strings.Split(arg, ",")
		if len(parts) != 3 {
			return c, fmt.Errorf("triple must have 3 components, got %d", len(parts))
		}
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return c, err
			}
			c[i] = v
		}
		return c, nil
	}
	err := c.UnmarshalText([]byte(arg))
	return c, err
}
