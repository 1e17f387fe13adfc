package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"randomtools/internal/common"
	"randomtools/internal/services"
)

func main() {
	var plural bool

	cmd := &cobra.Command{
		Use:     "wish",
		Short:   "Get wishes for someone",
		Version: common.GetFullVersion(),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			wish, err := services.FetchWish(plural)
			if err != nil {
				return err
			}
			fmt.Println(wish)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plural, "plural", false, "Display plural wishes")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
