package main

import (
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/csvkit"
)

func main() {
	var opts csvkit.MatcherOptions

	cmd := &cobra.Command{
		Use:   "attachmatch IN_CSVFILE MAPFILE",
		Short: "Fuzzy-match CSV values against a GUID map of attachments",
		Long: `Interactively match values from a CSV column (typically e-mail
addresses) against the file names of a GUID map, producing a link per
match. Matches are persisted so interrupted runs can resume.`,
		Version: common.GetFullVersion(),
		Args:    cobra.ExactArgs(2),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := csvkit.NewMatcher(opts, os.Stdin, os.Stdout).Run(args[0], args[1])
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.MapPath, "persist", "p", "", "Persist the link map as JSON")
	cmd.Flags().BoolVar(&opts.KeepFirst, "no-drop-first", false, "Keep the first row of the CSV file")
	cmd.Flags().StringVar(&opts.Default, "default", "default.pdf", "Present this file for the D choice")
	cmd.Flags().IntVar(&opts.Column, "column", 2, "Use this column, zero-indexed")
	cmd.Flags().StringVar(&opts.Pattern, "pattern", "", "Link pattern with a %s placeholder for the matched file")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
