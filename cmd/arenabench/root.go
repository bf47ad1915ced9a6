package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	jsonOut bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "arenabench",
		Short: "Benchmark typed arena allocation",
		Long: `arenabench times repeated allocations of fixed-size values using
the typed arena and compares them with one heap object per value.
Every allocated value is kept alive until the end of a round.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().BoolVar(&flags.jsonOut, "json", false, "Output in JSON format")

	root.AddCommand(newRunCmd(flags), newSizesCmd(flags))
	return root
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// logger returns a text logger on stderr, at debug level with --verbose.
func (f *globalFlags) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
