package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/euprime/leadrank/internal/config"
)

const (
	appName = "leadrank"
	version = "v1.2.0"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Rank biotech sales leads by propensity to buy",
		Version: version,
		Long: `leadrank scores and ranks sales leads for 3D in-vitro model vendors.

Leads are deduplicated, enriched (location split, email inference, hub
tagging), scored against five weighted criteria, and ranked into a table
ready for CSV export. Run without arguments in a terminal for the
interactive menu.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: runDefault,
	}

	rootCmd.PersistentFlags().String("config", "", "scoring config file (default: built-in reference config)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "force json log format")

	viper.SetEnvPrefix("LEADRANK")
	viper.AutomaticEnv()
	if err := bindFlags(rootCmd.PersistentFlags(), "config", "debug", "json"); err != nil {
		fmt.Fprintf(os.Stderr, "bind flags: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newSampleCmd())
	rootCmd.AddCommand(newEmailCmd())
	rootCmd.AddCommand(newHubCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bindFlags exposes the named flags through viper so each can also be
// set via a LEADRANK_* environment variable.
func bindFlags(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind %s: %w", name, err)
		}
	}
	return nil
}

func setupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if viper.GetBool("debug") {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if !viper.GetBool("json") && term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// runDefault opens the interactive menu on a TTY; otherwise it prints
// usage so scripted callers get a stable non-interactive surface.
func runDefault(cmd *cobra.Command, args []string) error {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return runMenu()
	}
	return cmd.Help()
}

// loadConfig resolves the scoring configuration: the --config file when
// given, the built-in reference config otherwise. Failure here is fatal
// by contract.
func loadConfig() (*config.Config, error) {
	path := viper.GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Msg("loaded scoring config")
	return cfg, nil
}
