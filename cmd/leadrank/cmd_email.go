package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/euprime/leadrank/internal/email"
)

func newEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email NAME COMPANY",
		Short: "Infer likely business email addresses",
		Long:  "Prints candidate addresses for a person at a company, most likely first. Pattern inference only; nothing is verified.",
		Args:  cobra.ExactArgs(2),
		RunE:  runEmail,
	}
	cmd.Flags().String("domain", "", "known company domain (default: derived from company name)")
	return cmd
}

func runEmail(cmd *cobra.Command, args []string) error {
	domain, _ := cmd.Flags().GetString("domain")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inferrer := email.NewInferrer(cfg.Email)
	variations := inferrer.GenerateVariations(args[0], args[1], domain)
	if len(variations) == 0 {
		return fmt.Errorf("no usable name tokens in %q", args[0])
	}

	for i, v := range variations {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, v)
	}
	return nil
}
