// Package cli implements the cyclostat command tree.
//
// The root command runs the interactive explorer; stats, raw, and describe
// are one-shot commands for scripted use. All commands read trips through
// the same dataset/stats/render pipeline.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cyclostat/cyclostat/config"
)

const version = "0.3.0"

// rootOptions carries persistent flag state shared by every command.
type rootOptions struct {
	cfgPath string
	dataDir string
	verbose bool
}

// loadConfig resolves configuration with flag overrides applied.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return nil, err
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	return cfg, nil
}

// Execute runs the CLI against the process streams.
func Execute() error {
	// A .env file can hold CYCLOSTAT_* overrides; missing is fine.
	_ = godotenv.Load()
	return NewRootCmd(os.Stdin, os.Stdout).Execute()
}

// NewRootCmd builds the command tree. The reader and writer are injected so
// tests can drive the interactive session with scripted input.
func NewRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:     "cyclostat",
		Short:   "Explore US bikeshare trip logs from the terminal",
		Long: `cyclostat loads city bikeshare trip logs (Chicago, New York City,
Washington), filters them by month and weekday, and prints descriptive
statistics: popular travel times, popular stations, trip durations, and
rider demographics.

Run it without arguments for the interactive explorer, or use the stats,
raw, and describe subcommands for one-shot scripted output.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return runExplore(cfg, in, out)
		},
	}

	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.cfgPath, "config", "", "path to config file (default: ./"+config.DefaultFile+")")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory holding the city CSV files (overrides config)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newExploreCmd(opts, in, out),
		newStatsCmd(opts, out),
		newRawCmd(opts, out),
		newDescribeCmd(opts, out),
	)
	return root
}

// initLogging configures the default slog logger: human-readable text on
// stderr so command output on stdout stays clean.
func initLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Main is the conventional entry point for cmd/cyclostat.
func Main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
