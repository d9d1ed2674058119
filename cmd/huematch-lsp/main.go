package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/huematch/internal/deltae"
	"github.com/jsvensson/huematch/internal/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var (
	flagFormula string
	flagWeights string
	flagPalette string
	flagLogFile string
	flagVerbose int
	version     = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:          "huematch-lsp",
	Short:        "Language server that names hex colors",
	Long:         "Language server over stdio. Hovering a hex color shows the nearest palette names; palette files get diagnostics and formatting.",
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagFormula, "formula", "f", "", `delta-E formula: "76", "94" or "2000" (default: palette default, then "76")`)
	rootCmd.Flags().StringVar(&flagWeights, "weights", "", `CIE94 weights: "graphic-arts" or "textiles"`)
	rootCmd.Flags().StringVarP(&flagPalette, "palette", "p", "", "palette file to use instead of the built-in palette")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity")
}

func run(cmd *cobra.Command, args []string) error {
	// Logs go to stderr unless a file is given; stdout carries the protocol.
	var logPath *string
	if flagLogFile != "" {
		logPath = &flagLogFile
	}
	commonlog.Configure(1+flagVerbose, logPath)

	var settings lsp.Settings
	if flagFormula != "" {
		f, err := deltae.ParseFormula(flagFormula)
		if err != nil {
			return err
		}
		settings.Formula = &f
	}
	if flagWeights != "" {
		w, err := deltae.ParseWeights(flagWeights)
		if err != nil {
			return err
		}
		settings.Weights = &w
	}
	settings.PalettePath = flagPalette

	s, err := lsp.NewServer(version, settings)
	if err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return s.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
