package main

import (
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/csvkit"
)

func main() {
	var (
		firstRow string
		column   int
	)

	cmd := &cobra.Command{
		Use:     "maptocsvcolumn INFILE JSONMAP OUTFILE",
		Short:   "Append a JSON map as a new CSV column",
		Long:    "Look up each row's key column in a JSON map and append the mapped value as a new column.",
		Version: common.GetFullVersion(),
		Args:    cobra.ExactArgs(3),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return csvkit.MapToCSVColumn(args[0], args[1], args[2], firstRow, column, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&firstRow, "first-row", "", "Text for the appended cell of the first row")
	cmd.Flags().IntVar(&column, "column", 2, "Column to use as map key, zero-indexed")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
