package main

import (
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/mdscan"
)

type options struct {
	githubWiki bool
	header     int
	noColon    bool
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:   "usecase PATH",
		Short: "List scenario cases from Markdown files as a Markdown list",
		Long: `Scenario file format:

# (vX.Y)            <- version, optional

## X. Something     <- a case

## X. .Hidden       <- this will not show up

## Cases

1. Some case        <- short notation
2. Some other case  <- can also be placed on top of file`,
		Version: common.GetFullVersion(),
		Args:    cobra.ExactArgs(1),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.githubWiki, "github-wiki", false, "Display names in Github Wiki format")
	cmd.Flags().IntVarP(&opts.header, "header", "H", 0, "Render file names as headers of this level")
	cmd.Flags().BoolVar(&opts.noColon, "no-colon", false, "Do not put a colon after the file name")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return common.NewValidationError("scenario_path_invalid", err.Error())
	}

	scenarios, err := mdscan.ReadScenarios(path)
	if err != nil {
		return err
	}

	colon := !opts.noColon
	name := mdscan.BaseName

	if opts.githubWiki {
		colon = false
		name = mdscan.WikiName
	} else if info.IsDir() {
		name = mdscan.RelativeName(path)
	}

	if opts.header > 0 {
		name = mdscan.WithHeader(name, opts.header)
	}
	if colon {
		name = mdscan.WithColon(name)
	}

	mdscan.PrintScenarios(os.Stdout, scenarios, name)
	return nil
}
