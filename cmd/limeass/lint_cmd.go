package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/limenime/limeass/analysis"
	"github.com/limenime/limeass/parse"
)

func newLintCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "lint <file.ass>",
		Short: "Run lint rules over a script and print findings as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runLint(args[0], configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML lint configuration file")
	return cmd
}

func runLint(path, configPath string) error {
	src, err := readInput(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	script, err := parse.Parse(src, parse.Options{})
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	cfg := analysis.LintConfig{}
	if configPath != "" {
		cfgBytes, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("read lint config: %w", err)
		}
		cfg, err = analysis.LoadLintConfig(cfgBytes)
		if err != nil {
			return fmt.Errorf("load lint config: %w", err)
		}
	}

	issues := analysis.Lint(script, cfg)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(lintIssuesToReport(issues))
}

func lintIssuesToReport(issues []analysis.LintIssue) []issueReport {
	out := make([]issueReport, 0, len(issues))
	for _, iss := range issues {
		out = append(out, issueReport{
			Severity: iss.Severity.String(),
			Kind:     iss.Rule,
			Start:    iss.Span.Start,
			End:      iss.Span.End,
			Message:  iss.Message,
		})
	}
	return out
}
