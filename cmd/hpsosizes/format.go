package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TMCantwell/HPSO-image-sizes/pkg/fleet"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/timeline"
	"github.com/TMCantwell/HPSO-image-sizes/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, warn := range r.Warnings {
			printResult(w, warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, res validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
	if res.Path != "" {
		fmt.Fprintf(w, "    -> %s = %v\n", res.Path, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", res.Expected)
	}
	if res.ConflictWith != "" {
		fmt.Fprintf(w, "    conflicts with: %s\n", res.ConflictWith)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

// printStorageReport prints one line per program in catalog order. The
// cosmology line follows the program it is derived from.
func printStorageReport(w io.Writer, p *fleet.Projection) {
	for _, r := range p.Programs {
		printStorageLine(w, r.Name, r.TotalStoragePB)
		if p.Cosmology != nil && p.Cosmology.Source == r.Name {
			printStorageLine(w, p.Cosmology.Name, p.Cosmology.StoragePB)
		}
	}
}

func printStorageLine(w io.Writer, name string, pb float64) {
	fmt.Fprintf(w, "The storage for HPSO %s is :\t%s\n", name, formatPB(pb))
}

func printTimelineTable(w io.Writer, p *fleet.Projection, increments bool) {
	nameWidth := len("Total")
	for _, r := range p.Programs {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}

	fmt.Fprintf(w, "%-*s %5s", nameWidth, "Program", "Years")
	for year := 0; year < timeline.Years; year++ {
		fmt.Fprintf(w, " %8s", strconv.Itoa(year))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s%s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", 5), strings.Repeat(" --------", timeline.Years))

	row := func(name, years string, t timeline.Timeline) {
		if increments {
			t = t.Increments()
		}
		fmt.Fprintf(w, "%-*s %5s", nameWidth, name, years)
		for _, v := range t {
			fmt.Fprintf(w, " %8.2f", v)
		}
		fmt.Fprintln(w)
	}

	for _, r := range p.Programs {
		if r.Timeline == nil {
			continue
		}
		row(r.Name, strconv.Itoa(r.ActiveYears), *r.Timeline)
	}
	row("Total", "", p.Fleet)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Raw storage:  %s PB\n", formatPB(p.TotalStoragePB))
	fmt.Fprintf(w, "Fleet peak:   %.2f PB (year %d)\n", p.FleetPeakPB, p.PeakYear)
}

// formatPB prints the shortest round-trip digits, keeping a decimal point
// on whole numbers.
func formatPB(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.Contains(s, "e") {
		return s
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
