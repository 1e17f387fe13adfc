package main

import (
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/fileops"
)

func main() {
	var mapPath string

	cmd := &cobra.Command{
		Use:     "movetoguids IN_DIRECTORY OUT_DIRECTORY",
		Short:   "Copy files in a directory to GUID-named files",
		Version: common.GetFullVersion(),
		Args:    cobra.ExactArgs(2),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fileops.MoveToGUIDs(args[0], args[1], mapPath, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&mapPath, "persist", "p", "", "Persist original-to-GUID names in a JSON map")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
