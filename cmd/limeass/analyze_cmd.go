package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/limenime/limeass/analysis"
	"github.com/limenime/limeass/override"
	"github.com/limenime/limeass/parse"
)

func newAnalyzeCommand() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "analyze <file.ass>",
		Short: "Resolve styles and per-event dialogue info, print as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAnalyze(args[0], concurrency)
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "parallel per-event analysis worker count")
	return cmd
}

type analyzeReport struct {
	Styles   map[string]analysis.ResolvedStyle `json:"styles"`
	Events   []eventReport                     `json:"events"`
	Overlaps []analysis.Overlap                `json:"overlaps"`
	Assets   []assetReport                     `json:"assets,omitempty"`
}

type assetReport struct {
	Name  string `json:"name"`
	Bytes int    `json:"bytes"`
	Error string `json:"error,omitempty"`
}

type eventReport struct {
	PlainText   string `json:"plainText"`
	DurationMs  int    `json:"durationMs"`
	DrawingOnly bool   `json:"drawingOnly"`
	Karaoke     int    `json:"karaokeSyllables"`
}

func runAnalyze(path string, concurrency int) error {
	src, err := readInput(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	script, err := parse.Parse(src, parse.Options{})
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	infos, err := analysis.AnalyzeEvents(context.Background(), script, override.Options{}, concurrency)
	if err != nil {
		return fmt.Errorf("analyze events: %w", err)
	}

	report := analyzeReport{
		Styles:   analysis.ResolveStyles(script),
		Overlaps: analysis.TimingOverlaps(script),
	}
	for _, info := range infos {
		report.Events = append(report.Events, eventReport{
			PlainText:   info.PlainText,
			DurationMs:  info.DurationMs,
			DrawingOnly: info.DrawingOnly,
			Karaoke:     len(info.Karaoke),
		})
	}

	for _, asset := range analysis.DecodeEmbeddedAssets(script) {
		ar := assetReport{Name: asset.Name, Bytes: len(asset.Data)}
		if asset.Err != nil {
			ar.Error = asset.Err.Error()
		}
		report.Assets = append(report.Assets, ar)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
