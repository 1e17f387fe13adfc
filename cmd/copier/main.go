package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/snippets"
)

func main() {
	cmd := &cobra.Command{
		Use:   "copier <file>",
		Short: "Clipboard snippet picker driven by a YAML configuration",
		Long: `Interactive shell that copies named snippets to the clipboard.

Reads ~/.info/<file>.yaml; each section is plain text, the contents of
a file, or the output of a shell command.
Quit by pressing Ctrl+D or Ctrl+C.`,
		Version: common.GetFullVersion(),
		Args:    cobra.ExactArgs(1),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := common.LoadSettings("")
			if err != nil {
				return err
			}
			if err := common.InitLogger(&settings.Logging); err != nil {
				return err
			}

			config, err := snippets.Load(args[0])
			if err != nil {
				return err
			}

			common.PrintShellBanner("Copier", "", map[string]string{
				"Config":   config.Path,
				"Sections": strconv.Itoa(len(config.Sections)),
			}, []string{"Config", "Sections"})

			return snippets.NewShell(config, os.Stdout).Run()
		},
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
