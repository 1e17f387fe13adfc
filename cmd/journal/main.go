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
		date       string
		thread     string
		weekly     bool
		bigPicture bool
	)

	cmd := &cobra.Command{
		Use:     "journal",
		Short:   "Add a journal entry",
		Long:    "Compose a journal entry in $EDITOR and post it to the tasks collector.",
		Version: common.GetFullVersion(),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := common.LoadTasksConfig()
			if err != nil {
				return err
			}

			if weekly {
				thread = "Weekly"
			} else if bigPicture {
				thread = "big-picture"
			}

			composer := tasks.NewComposer(services.NewTasksClient(config), config, os.Stdout)
			return composer.Journal(date, thread)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Use specific date")
	cmd.Flags().StringVar(&thread, "thread", "Daily", "Use specific thread")
	cmd.Flags().BoolVar(&weekly, "weekly", false, "Alias for --thread Weekly")
	cmd.Flags().BoolVar(&bigPicture, "big-picture", false, "Alias for --thread big-picture")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
