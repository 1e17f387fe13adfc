package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/fileops"
)

func main() {
	var output string

	cmd := &cobra.Command{
		Use:     "pdfrepeat FILE N",
		Short:   "Repeat a PDF multiple times into one document",
		Long:    "Concatenate N copies of a PDF using pdfunite.",
		Version: common.GetFullVersion(),
		Args:    cobra.ExactArgs(2),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return common.NewValidationError("pdfrepeat_count_invalid",
					fmt.Sprintf("invalid repeat count: %s", args[1]))
			}

			result, err := fileops.PDFRepeat(args[0], n, output)
			if err != nil {
				return err
			}
			fmt.Printf("Written %s\n", result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Filename for the output file")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
