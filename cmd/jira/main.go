package main

import (
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/services"
	"randomtools/internal/shell"
)

func main() {
	cmd := &cobra.Command{
		Use:     "jira",
		Short:   "Jira worklog management shell",
		Long:    "Interactive shell for logging time against Jira issues.\nQuit by pressing Ctrl+D or Ctrl+C.",
		Version: common.GetFullVersion(),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := common.LoadSettings("")
			if err != nil {
				return err
			}
			if err := common.InitLogger(&settings.Logging); err != nil {
				return err
			}

			config, err := common.LoadJiraConfig()
			if err != nil {
				return err
			}

			store, err := services.NewStateStore()
			if err != nil {
				return err
			}

			client := services.NewJiraClient(config)
			worklogs := services.NewWorklogService(client)

			common.PrintShellBanner("Jira Worklog Shell", "", map[string]string{
				"Jira": config.BaseURL(),
				"User": config.Email,
			}, []string{"Jira", "User"})

			return shell.New(config, client, worklogs, store, os.Stdout).Run()
		},
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
