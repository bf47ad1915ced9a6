package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/typedarena/internal/bench"
)

func newSizesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "List supported element sizes and strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.jsonOut {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"sizes":      bench.Sizes(),
					"strategies": bench.Strategies,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sizes: %v\n", bench.Sizes())
			fmt.Fprintf(out, "Strategies: %v\n", bench.Strategies)
			return nil
		},
	}
}
