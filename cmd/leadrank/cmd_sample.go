package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/euprime/leadrank/internal/lead"
	"github.com/euprime/leadrank/internal/output"
	"github.com/euprime/leadrank/internal/pipeline"
	"github.com/euprime/leadrank/internal/report"
	"github.com/euprime/leadrank/internal/sample"
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Run the pipeline over the embedded demonstration leads",
		RunE:  runSample,
	}
	cmd.Flags().String("output", "", "also export the ranked table to this file")
	cmd.Flags().String("format", "csv", "export format (csv|tsv|json)")
	return cmd
}

func runSample(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	formatName, _ := cmd.Flags().GetString("format")

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	leads, err := sample.Leads()
	if err != nil {
		return err
	}

	agg := pipeline.New(cfg, log.Logger)
	result := agg.Process(leads)

	printTable(result.Leads)
	printSummary(report.Summarize(result.Leads))

	if outputPath != "" {
		if err := output.WriteFile(outputPath, result.Leads, format); err != nil {
			return err
		}
		log.Info().Str("path", outputPath).Msg("exported sample results")
	}
	return nil
}

func printTable(leads []lead.Lead) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tSCORE\tNAME\tTITLE\tCOMPANY\tHUB")
	for i := range leads {
		l := &leads[i]
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
			l.Rank, l.ScoreTotal, l.Name, l.Title, l.Company, l.BiotechHub)
	}
	w.Flush()
}

func printSummary(s report.Summary) {
	fmt.Printf("\nLeads: %d  Avg score: %.1f  High quality (>=80): %d\n",
		s.TotalLeads, s.AverageScore, s.HighQuality)
	if len(s.HubCounts) > 0 {
		fmt.Println("Hubs:")
		for hub, count := range s.HubCounts {
			fmt.Printf("  %-24s %d\n", hub, count)
		}
	}
}
