package main

import (
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/csvkit"
)

func main() {
	var keyTitle, valueTitle string

	cmd := &cobra.Command{
		Use:     "maptocsv JSONMAP OUTFILE",
		Short:   "Convert a JSON map into a two-column CSV file",
		Version: common.GetFullVersion(),
		Args:    cobra.ExactArgs(2),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return csvkit.MapToCSV(args[0], args[1], keyTitle, valueTitle)
		},
	}

	cmd.Flags().StringVarP(&keyTitle, "key-title", "k", "", "Title for the first column of the CSV title row")
	cmd.Flags().StringVarP(&valueTitle, "value-title", "v", "", "Title for the second column of the CSV title row")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
