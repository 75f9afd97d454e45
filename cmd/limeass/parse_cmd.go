package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/parse"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file.ass>",
		Short: "Parse a script and print its section/issue summary as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runParse(args[0])
		},
	}
}

type parseSummary struct {
	Version  string        `json:"version"`
	Sections []string      `json:"sections"`
	Issues   []issueReport `json:"issues"`
}

type issueReport struct {
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

func runParse(path string) error {
	src, err := readInput(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	script, err := parse.Parse(src, parse.Options{})
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	summary := parseSummary{Version: script.Version.String()}
	for _, sec := range script.Sections {
		summary.Sections = append(summary.Sections, sectionLabel(sec))
	}
	for _, iss := range script.Issues {
		summary.Issues = append(summary.Issues, issueReport{
			Severity: iss.Severity.String(),
			Kind:     string(iss.Kind),
			Start:    iss.Span.Start,
			End:      iss.Span.End,
			Message:  iss.Message,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func sectionLabel(sec ast.Section) string {
	if sec.Kind.HeaderName != "" {
		return sec.Kind.HeaderName
	}
	return fmt.Sprintf("section-%d", sec.Kind.Kind)
}
