package validation

import "fmt"

// Level indicates which validation stage produced the result.
type Level string

const (
	LevelSchema     Level = "schema"
	LevelAnalytical Level = "analytical"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single validation finding.
type Result struct {
	Level        Level    `yaml:"level" json:"level"`
	Severity     Severity `yaml:"severity" json:"severity"`
	Message      string   `yaml:"message" json:"message"`
	Program      string   `yaml:"program,omitempty" json:"program,omitempty"`
	Path         string   `yaml:"path" json:"path"`
	ActualValue  any      `yaml:"actual_value,omitempty" json:"actual_value,omitempty"`
	Expected     string   `yaml:"expected,omitempty" json:"expected,omitempty"`
	ConflictWith string   `yaml:"conflict_with,omitempty" json:"conflict_with,omitempty"`
	Suggestions  []string `yaml:"suggestions,omitempty" json:"suggestions,omitempty"`
}

// Report is the complete validation output.
type Report struct {
	Valid    bool     `yaml:"valid" json:"valid"`
	Errors   []Result `yaml:"errors" json:"errors"`
	Warnings []Result `yaml:"warnings" json:"warnings"`
	Info     []Result `yaml:"info" json:"info"`
	Summary  string   `yaml:"summary" json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	return &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning result.
func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

// AddInfo adds an informational result.
func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// Err returns nil for a valid report, otherwise an error carrying the
// first error message and the summary.
func (r *Report) Err() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("%s (%s)", r.Errors[0].Message, r.Summary)
}

// Merge combines another report into this one.
func (r *Report) Merge(other *Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
