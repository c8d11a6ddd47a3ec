package validation

import "testing"

func TestNewReport(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if len(r.Errors) != 0 || len(r.Warnings) != 0 || len(r.Info) != 0 {
		t.Error("new report should have empty slices")
	}
}

func TestAddError(t *testing.T) {
	r := NewReport()
	r.AddError(Result{
		Level:       LevelSchema,
		Message:     "fields must be > 0",
		Program:     "HI:14",
		Path:        "programs[6].fields",
		ActualValue: 0,
	})
	if r.Valid {
		t.Error("report with error should be invalid")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(r.Errors))
	}
	if r.Errors[0].Severity != SeverityError {
		t.Error("AddError should set severity to error")
	}
	if r.Errors[0].Program != "HI:14" {
		t.Errorf("program = %q, want HI:14", r.Errors[0].Program)
	}
	if r.Summary != "1 errors, 0 warnings, 0 info" {
		t.Errorf("unexpected summary: %s", r.Summary)
	}
}

func TestWarningsAndInfoKeepReportValid(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelAnalytical, Message: "ramp never plateaus"})
	r.AddInfo(Result{Level: LevelAnalytical, Message: "fractional image count"})

	if !r.Valid {
		t.Error("warnings and info should not invalidate report")
	}
	if len(r.Warnings) != 1 || r.Warnings[0].Severity != SeverityWarning {
		t.Errorf("warnings = %+v", r.Warnings)
	}
	if len(r.Info) != 1 || r.Info[0].Severity != SeverityInfo {
		t.Errorf("info = %+v", r.Info)
	}
	if r.Summary != "0 errors, 1 warnings, 1 info" {
		t.Errorf("unexpected summary: %s", r.Summary)
	}
}

func TestMergeSchemaAndAnalytical(t *testing.T) {
	schema := NewReport()
	schema.AddWarning(Result{Level: LevelSchema, Message: "no duty cycle"})

	analytical := NewReport()
	analytical.AddError(Result{Level: LevelAnalytical, Message: "cosmology source missing"})
	analytical.AddInfo(Result{Level: LevelAnalytical, Message: "cosmology excluded from totals"})

	schema.Merge(analytical)

	if schema.Valid {
		t.Error("merged report should be invalid when other has errors")
	}
	if len(schema.Errors) != 1 || len(schema.Warnings) != 1 || len(schema.Info) != 1 {
		t.Errorf("merged counts = %d/%d/%d, want 1/1/1", len(schema.Errors), len(schema.Warnings), len(schema.Info))
	}
	if schema.Summary != "1 errors, 1 warnings, 1 info" {
		t.Errorf("unexpected summary: %s", schema.Summary)
	}

	valid := NewReport()
	valid.Merge(NewReport())
	if !valid.Valid {
		t.Error("merging two valid reports should stay valid")
	}
}

func TestErr(t *testing.T) {
	r := NewReport()
	if r.Err() != nil {
		t.Errorf("valid report Err() = %v, want nil", r.Err())
	}

	r.AddWarning(Result{Level: LevelAnalytical, Message: "plateau outside window"})
	if r.Err() != nil {
		t.Error("warnings alone should not produce an error")
	}

	r.AddError(Result{Level: LevelSchema, Program: "EoR:1", Message: "fields must be > 0"})
	err := r.Err()
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "fields must be > 0 (1 errors, 1 warnings, 0 info)" {
		t.Errorf("unexpected error text: %s", err.Error())
	}
}
