// Copyright (c) Molviz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Program showcolor annotates rendered atoms with the human-readable names
// of their display colors. It reads (atom, RGB) pairs exported by the host
// visualization tool, reverse-maps each triple through the built-in color
// tables, and emits the id-to-name mapping for the host to apply as labels.
package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/molviz/showcolor/table"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Flag definitions. Environment variables provide the defaults so the host
// tool can configure an invocation without building a command line:
// SHOWCOLOR_TABLES is a path list of extra table files, SHOWCOLOR_TOLERANCE
// overrides the nearest-match distance.
var (
	flagTables    []string
	flagTolerance float64
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "showcolor",
	Short: "Annotate rendered atoms with the names of their display colors",
	Long: `Annotate rendered atoms with the names of their display colors.

Colors are resolved against two built-in tables (generic named colors and
chemical-element colors), optionally extended by YAML table files. An exact
triple match wins; otherwise the nearest entry within the tolerance is used,
and atoms matching nothing are labeled "unknown".`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(flagVerbose)
	},
}

func init() {
	// Flag defaults come from the environment, so the .env file must be in
	// before the flags are registered.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("No usable .env file")
	}

	rootCmd.PersistentFlags().StringSliceVar(&flagTables, "table", envTables(),
		"Additional YAML color table files, merged over the built-ins")
	rootCmd.PersistentFlags().Float64Var(&flagTolerance, "tolerance", envTolerance(),
		"Maximum RGB distance for a nearest match (0 uses the default 0.05)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Enable verbose debug logging")
	rootCmd.AddCommand(resolveCmd, annotateCmd, renderCmd, tablesCmd)
}

func envTables() []string {
	if v := os.Getenv("SHOWCOLOR_TABLES"); v != "" {
		return filepath.SplitList(v)
	}
	return nil
}

func envTolerance() float64 {
	if v := os.Getenv("SHOWCOLOR_TOLERANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

func setupLogger(verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// newTable constructs the merged lookup table from the built-ins plus any
// configured table files.
func newTable() (*table.Table, error) {
	return table.New(&table.Options{
		Tolerance: flagTolerance,
		Files:     flagTables,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
