package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"

	"github.com/euprime/leadrank/internal/output"
	"github.com/euprime/leadrank/internal/pipeline"
	"github.com/euprime/leadrank/internal/report"
	"github.com/euprime/leadrank/internal/sample"
)

const (
	menuSample = "Scan the sample lead set"
	menuScore  = "Score a lead file"
	menuConfig = "Show scoring configuration"
	menuExit   = "Exit"
)

// runMenu is the interactive entry point for terminal sessions.
func runMenu() error {
	for {
		prompt := promptui.Select{
			Label: "leadrank",
			Items: []string{menuSample, menuScore, menuConfig, menuExit},
		}
		_, choice, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				return nil
			}
			return err
		}

		switch choice {
		case menuSample:
			err = menuRunSample()
		case menuScore:
			err = menuScoreFile()
		case menuConfig:
			err = menuShowConfig()
		case menuExit:
			return nil
		}
		if err != nil {
			log.Error().Err(err).Msg("menu action failed")
		}
	}
}

func menuRunSample() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	leads, err := sample.Leads()
	if err != nil {
		return err
	}

	result := pipeline.New(cfg, log.Logger).Process(leads)
	printTable(result.Leads)
	printSummary(report.Summarize(result.Leads))
	return nil
}

func menuScoreFile() error {
	pathPrompt := promptui.Prompt{Label: "Input JSON file"}
	inputPath, err := pathPrompt.Run()
	if err != nil {
		return err
	}

	formatPrompt := promptui.Select{
		Label: "Output format",
		Items: []string{string(output.FormatCSV), string(output.FormatTSV), string(output.FormatJSON)},
	}
	_, formatName, err := formatPrompt.Run()
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	outPrompt := promptui.Prompt{Label: "Output file", Default: "leads_output." + formatName}
	outputPath, err := outPrompt.Run()
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

	result := pipeline.New(cfg, log.Logger).Process(leads)
	if err := output.WriteFile(outputPath, result.Leads, format); err != nil {
		return err
	}
	fmt.Printf("Exported %d leads to %s\n", len(result.Leads), outputPath)
	return nil
}

func menuShowConfig() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("Role-fit tiers: %d high / %d medium / %d low keywords\n",
		len(cfg.Scoring.RoleFit.HighValue),
		len(cfg.Scoring.RoleFit.MediumValue),
		len(cfg.Scoring.RoleFit.LowValue))
	fmt.Printf("Funding rounds: %d mappings, +%d recency bonus within %d days\n",
		len(cfg.Scoring.Funding.Rounds),
		cfg.Scoring.Funding.RecencyBonus,
		cfg.Scoring.Funding.RecencyDays)
	fmt.Printf("Technographic keywords: %d\n", len(cfg.Scoring.Technographic.Keywords))
	fmt.Printf("Scientific keywords: %d, recency window %d days\n",
		len(cfg.Scoring.Scientific.Keywords), cfg.Scoring.Scientific.RecencyDays)
	fmt.Printf("Hubs: %d  Countries: %d\n", len(cfg.Locations.Hubs), len(cfg.Locations.Countries))
	return nil
}
