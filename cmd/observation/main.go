package main

import (
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/services"
	"randomtools/internal/tasks"
)

func main() {
	var (
		date      string
		thread    string
		entryType string
	)

	cmd := &cobra.Command{
		Use:     "observation",
		Short:   "Add an observation",
		Long:    "Compose an observation entry in $EDITOR and post it to the tasks collector.",
		Version: common.GetFullVersion(),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := common.LoadTasksConfig()
			if err != nil {
				return err
			}

			composer := tasks.NewComposer(services.NewTasksClient(config), config, os.Stdout)
			return composer.Observation(date, thread, entryType)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Use specific date")
	cmd.Flags().StringVar(&thread, "thread", "big-picture", "Use specific thread")
	cmd.Flags().StringVar(&entryType, "type", "observation", "Choose type")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
