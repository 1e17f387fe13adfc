package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/qrgen"
)

func main() {
	var quiet bool

	cmd := &cobra.Command{
		Use:     "qr LINK [FILE]",
		Short:   "Generate QR codes from links with automatic file naming",
		Version: common.GetFullVersion(),
		Args:    cobra.RangeArgs(1, 2),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			link := args[0]

			output := qrgen.Filename(link)
			if len(args) == 2 {
				output = args[1]
			}

			if err := qrgen.Generate(link, output); err != nil {
				return err
			}
			if !quiet {
				fmt.Printf("QR code saved to %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode, suppress output messages")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
