package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/gitbatch"
)

func main() {
	var message string

	cmd := &cobra.Command{
		Use:   "github-synchronize",
		Short: "Synchronize every git repository under the current directory",
		Long: `Iterate through all first-level subdirectories of the current
directory and bring each git repository in sync with its remote.
Repositories off the main branch are only switched back when clean,
and the run stops on the first rebase or stash-pop conflict.`,
		Version: common.GetFullVersion(),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" {
				message = fmt.Sprintf("docs: update %s", time.Now().Format("2006-01-02"))
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			failed, err := gitbatch.NewSynchronizer(os.Stdin, os.Stdout).Run(cwd, message)
			if err != nil {
				return err
			}
			if failed != "" {
				common.PrintError("Failed on repository: " + failed)
				return common.NewError(common.ErrorTypeValidation, "sync_failed",
					"synchronization stopped on "+failed)
			}
			common.PrintSuccess("All repositories processed successfully")
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Default commit message (defaults to current date)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
