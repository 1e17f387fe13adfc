package main

import (
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/mdscan"
)

func main() {
	cmd := &cobra.Command{
		Use:     "onelinesummary PATH",
		Short:   "Create a one-line summary of all documents in a directory with links",
		Version: common.GetFullVersion(),
		Args:    cobra.ExactArgs(1),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			return mdscan.OneLineSummary(os.Stdout, args[0], cwd)
		},
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
