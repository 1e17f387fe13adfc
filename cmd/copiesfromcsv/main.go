package main

import (
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/csvkit"
)

func main() {
	var (
		column    int
		dropFirst bool
	)

	cmd := &cobra.Command{
		Use:     "copiesfromcsv CSVFILE INFILE",
		Short:   "Copy a template file once per CSV row, named from a column",
		Version: common.GetFullVersion(),
		Args:    cobra.ExactArgs(2),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return csvkit.CopiesFromCSV(args[0], args[1], column, dropFirst, os.Stdout)
		},
	}

	cmd.Flags().IntVar(&column, "column", 0, "Use specific column, zero-indexed")
	cmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop first line")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
