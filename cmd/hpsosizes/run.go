package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/TMCantwell/HPSO-image-sizes/internal/metrics"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/chart"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/fleet"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/hpso"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/validation"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// errInvalidScenario is returned after the validation report has been
// printed, so main does not repeat it.
var errInvalidScenario = errors.New("scenario has validation errors")

type reportOptions struct {
	chartsDir   string
	noCharts    bool
	format      string
	metricsFile string
}

// resolve validates the catalog and computes the projection. An invalid
// catalog prints its report to w and returns errInvalidScenario.
func resolve(w io.Writer, logger *slog.Logger, c *hpso.Catalog) (*fleet.Projection, error) {
	schemaReport := validation.ValidateSchema(c)
	if !schemaReport.Valid {
		printValidationReport(w, schemaReport)
		return nil, errInvalidScenario
	}

	projection, err := fleet.Resolve(c)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved projection",
		"programs", len(projection.Programs),
		"projected", projection.Projected,
		"total_pb", projection.TotalStoragePB)

	analyticsReport := fleet.Validate(projection)
	for _, warn := range analyticsReport.Warnings {
		logger.Warn(warn.Message, "program", warn.Program)
	}
	for _, info := range analyticsReport.Info {
		logger.Debug(info.Message, "program", info.Program)
	}
	return projection, nil
}

func runReport(w io.Writer, logger *slog.Logger, c *hpso.Catalog, opts reportOptions) error {
	switch opts.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", opts.format, formatText, formatJSON, formatYAML)
	}

	projection, err := resolve(w, logger, c)
	if err != nil {
		return err
	}

	switch opts.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(projection); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(projection); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	default:
		printStorageReport(w, projection)
	}

	if !opts.noCharts {
		paths, err := chart.RenderAll(c, projection, opts.chartsDir)
		if err != nil {
			return fmt.Errorf("exporting charts: %w", err)
		}
		for _, path := range paths {
			logger.Info("wrote chart", "path", path)
		}
	}

	if opts.metricsFile != "" {
		collector := metrics.New()
		collector.Observe(projection)
		if err := collector.WriteTextfile(opts.metricsFile); err != nil {
			return err
		}
		logger.Info("wrote metrics", "path", opts.metricsFile)
	}
	return nil
}

func runTimeline(w io.Writer, logger *slog.Logger, c *hpso.Catalog, increments bool) error {
	projection, err := resolve(w, logger, c)
	if err != nil {
		return err
	}
	printTimelineTable(w, projection, increments)
	return nil
}

func runValidate(w io.Writer, logger *slog.Logger, c *hpso.Catalog) error {
	report := validation.ValidateSchema(c)
	if report.Valid {
		projection, err := fleet.Resolve(c)
		if err != nil {
			return err
		}
		report.Merge(fleet.Validate(projection))
	}
	logger.Debug("validated scenario", "summary", report.Summary)

	printValidationReport(w, report)
	if !report.Valid {
		return errInvalidScenario
	}
	return nil
}
