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
	var path string

	cmd := &cobra.Command{
		Use:   "push [commit_message]",
		Short: "Batch-commit and push git repositories with pending changes",
		Example: `  push                           # Use default message "docs: update on <date>"
  push "feat: add new feature"   # Use custom commit message
  push --path=/home/user/code    # Search in specific directory`,
		Version: common.GetFullVersion(),
		Args:    cobra.MaximumNArgs(1),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			message := fmt.Sprintf("docs: update on %s", time.Now().Format("2006-01-02"))
			if len(args) == 1 {
				message = args[0]
			}

			searchPath := path
			if searchPath == "" {
				searchPath, _ = os.Getwd()
			}

			_, err := gitbatch.NewPusher(os.Stdin, os.Stdout).Run(searchPath, message)
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Directory to search for repositories (defaults to current directory)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
