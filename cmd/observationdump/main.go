package main

import (
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/services"
	"randomtools/internal/tasks"
)

func main() {
	var year string

	cmd := &cobra.Command{
		Use:     "observationdump PATH",
		Short:   "Dump observations to Markdown files",
		Version: common.GetFullVersion(),
		Args:    cobra.ExactArgs(1),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := common.LoadTasksConfig()
			if err != nil {
				return err
			}

			client := services.NewTasksClient(config)
			return tasks.DumpObservations(client, args[0], year, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "Dump specific year")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
