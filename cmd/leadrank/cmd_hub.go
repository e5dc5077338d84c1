package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/euprime/leadrank/internal/location"
)

func newHubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hub LOCATION",
		Short: "Classify a location string against the biotech hub table",
		Args:  cobra.ExactArgs(1),
		RunE:  runHub,
	}
}

func runHub(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	classifier := location.NewClassifier(cfg.Locations)
	raw := args[0]

	hub := classifier.IdentifyHub(raw)
	if hub == "" {
		hub = "(none)"
	}
	country := classifier.ExtractCountry(raw)
	if country == "" {
		country = "(unknown)"
	}

	fmt.Printf("location:  %s\n", raw)
	fmt.Printf("normalized: %s\n", classifier.Normalize(raw))
	fmt.Printf("hub:       %s\n", hub)
	fmt.Printf("score:     %d\n", classifier.Score(raw))
	fmt.Printf("country:   %s\n", country)
	fmt.Printf("remote:    %t\n", classifier.IsRemote(raw))
	return nil
}
