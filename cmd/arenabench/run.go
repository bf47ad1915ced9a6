package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pavanmanishd/typedarena/internal/bench"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	var (
		sizes      []int
		strategies []string
		iterations int
		rounds     int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the allocation benchmarks",
		Example: `  arenabench run
  arenabench run --sizes 8,64 --strategies heap,arena --iterations 100000
  arenabench run --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := bench.Options{
				Sizes:      sizes,
				Iterations: iterations,
				Rounds:     rounds,
				Logger:     flags.logger(cmd),
			}
			if len(strategies) > 0 {
				parsed, err := bench.ParseStrategies(strategies)
				if err != nil {
					return err
				}
				opts.Strategies = parsed
			}

			results, err := bench.Run(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("benchmark failed: %w", err)
			}

			if flags.jsonOut {
				return printJSON(cmd.OutOrStdout(), results)
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "Element sizes in bytes (default: all supported sizes)")
	cmd.Flags().StringSliceVar(&strategies, "strategies", nil, "Strategies to run: nothing, heap, arena, emplace (default: all)")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", bench.DefaultIterations, "Allocations per round")
	cmd.Flags().IntVarP(&rounds, "rounds", "r", bench.DefaultRounds, "Timed rounds per strategy and size")
	return cmd
}

// printResults writes one table row per result with grouped digits.
func printResults(w io.Writer, results []bench.Result) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	p.Fprintf(tw, "SIZE\tSTRATEGY\tALLOCS\tNS/OP\tMAX RSS (KiB)\t\n")
	for _, r := range results {
		p.Fprintf(tw, "%d\t%s\t%d\t%.2f\t%d\t\n",
			r.Size, r.Strategy, r.Iterations*r.Rounds, r.NsPerOp, r.MaxRSSKiB)
	}
	return tw.Flush()
}
