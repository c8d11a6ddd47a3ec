package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TMCantwell/HPSO-image-sizes/pkg/hpso"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidScenario) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string
	opts := reportOptions{}

	cmd := &cobra.Command{
		Use:           "hpsosizes",
		Short:         "HPSO storage requirements and growth timelines",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			return runReport(cmd.OutOrStdout(), logger, hpso.DefaultCatalog(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	addReportFlags(cmd, &opts)

	cmd.AddCommand(reportCmd(&logLevel))
	cmd.AddCommand(timelineCmd(&logLevel))
	cmd.AddCommand(validateCmd(&logLevel))
	cmd.AddCommand(catalogCmd())
	return cmd
}

func addReportFlags(cmd *cobra.Command, opts *reportOptions) {
	cmd.Flags().StringVarP(&opts.chartsDir, "charts-dir", "o", ".", "directory for chart images")
	cmd.Flags().BoolVar(&opts.noCharts, "no-charts", false, "skip chart export")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, json, yaml)")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
}

func reportCmd(logLevel *string) *cobra.Command {
	opts := reportOptions{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print per-HPSO storage totals and export timeline charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(*logLevel)
			if err != nil {
				return err
			}
			return runReport(cmd.OutOrStdout(), logger, hpso.DefaultCatalog(), opts)
		},
	}
	addReportFlags(cmd, &opts)
	return cmd
}

func timelineCmd(logLevel *string) *cobra.Command {
	var increments bool
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the year-by-year storage timeline of every HPSO",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(*logLevel)
			if err != nil {
				return err
			}
			return runTimeline(cmd.OutOrStdout(), logger, hpso.DefaultCatalog(), increments)
		},
	}
	cmd.Flags().BoolVar(&increments, "increments", false, "print storage added per year instead of cumulative storage")
	return cmd
}

func validateCmd(logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the scenario without producing a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(*logLevel)
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), logger, hpso.DefaultCatalog())
		},
	}
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the built-in scenario as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return hpso.Encode(cmd.OutOrStdout(), hpso.DefaultCatalog())
		},
	}
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
