// Command limeass parses, lints, and analyzes ASS/SSA subtitle scripts.
//
// # Usage
//
//	limeass parse <file.ass>
//	limeass lint [--config lint.yaml] <file.ass>
//	limeass analyze <file.ass>
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/limenime/limeass/internal/obslog"
)

func main() {
	logCfg := obslog.DefaultFlags().NewConfig()

	rootCmd := &cobra.Command{
		Use:           "limeass",
		Short:         "Parse, lint, and analyze ASS/SSA subtitle scripts",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newAnalyzeCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}
