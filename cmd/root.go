// Package cmd implements the CLI commands for rosterpipe using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "rosterpipe",
	Short: "rosterpipe — scrape a legislature's member listing into a roster",
	Long: `rosterpipe fetches a legislative member-listing page, extracts one record per
legislator (name, title, position, party, city, phone, email, profile URL),
removes duplicates and writes the roster as JSON, Markdown or PDF.

Usage:
  rosterpipe scrape [listing-url] [flags]`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(newLogger(flagVerbose))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log skipped containers and other debug output")
}

// newLogger returns the side-channel logger. Logs go to stderr so stdout
// only carries results.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
