package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/euprime/leadrank/internal/lead"
	"github.com/euprime/leadrank/internal/output"
	"github.com/euprime/leadrank/internal/pipeline"
	"github.com/euprime/leadrank/internal/report"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a lead file and export the ranked table",
		Long:  "Reads a JSON array of lead records, runs the dedupe/enrich/score/rank pipeline, and writes the ranked table.",
		RunE:  runScore,
	}

	cmd.Flags().String("input", "", "input JSON file with lead records (required)")
	cmd.Flags().String("output", "", "output file (default: stdout)")
	cmd.Flags().String("format", "csv", "output format (csv|tsv|json)")
	cmd.Flags().Int("min-score", 0, "drop leads scoring below this before export")
	cmd.Flags().Int("top", 0, "export only the top N leads (0 = all)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	formatName, _ := cmd.Flags().GetString("format")
	minScore, _ := cmd.Flags().GetInt("min-score")
	top, _ := cmd.Flags().GetInt("top")

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	leads, err := readLeads(inputPath)
	if err != nil {
		return err
	}

	agg := pipeline.New(cfg, log.Logger)
	result := agg.Process(leads)

	ranked := result.Leads
	if minScore > 0 {
		ranked = pipeline.Filter(ranked, pipeline.FilterOptions{MinScore: minScore})
		pipeline.Rank(ranked)
	}
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}

	if outputPath == "" {
		if err := output.Write(os.Stdout, ranked, format); err != nil {
			return err
		}
	} else {
		if err := output.WriteFile(outputPath, ranked, format); err != nil {
			return err
		}
		log.Info().Str("path", outputPath).Int("leads", len(ranked)).Msg("exported ranked leads")
	}

	summary := report.Summarize(ranked)
	log.Info().
		Int("total", summary.TotalLeads).
		Float64("avg_score", summary.AverageScore).
		Int("high_quality", summary.HighQuality).
		Msg("batch summary")
	return nil
}

func readLeads(path string) ([]lead.Lead, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	var leads []lead.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("parse input %s: %w", path, err)
	}
	return leads, nil
}
