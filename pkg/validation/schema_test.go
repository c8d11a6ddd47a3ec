package validation

import (
	"strings"
	"testing"

	"github.com/TMCantwell/HPSO-image-sizes/pkg/hpso"
)

func TestValidateSchemaDefaultCatalog(t *testing.T) {
	r := ValidateSchema(hpso.DefaultCatalog())
	if !r.Valid {
		t.Fatalf("default catalog should be valid, got errors: %+v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("default catalog should have no warnings, got %+v", r.Warnings)
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
}

func TestValidateSchemaZeroFields(t *testing.T) {
	c := hpso.DefaultCatalog()
	c.Programs[0].Fields = 0

	r := ValidateSchema(c)
	if r.Valid {
		t.Fatal("zero fields should invalidate the catalog")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("errors = %d, want 1: %+v", len(r.Errors), r.Errors)
	}
	e := r.Errors[0]
	if e.Program != "EoR:1" || e.Path != "programs[0].fields" {
		t.Errorf("error = %s at %s, want EoR:1 at programs[0].fields", e.Program, e.Path)
	}
	if e.Level != LevelSchema || e.Severity != SeverityError {
		t.Errorf("level/severity = %s/%s", e.Level, e.Severity)
	}
	if err := r.Err(); err == nil || !strings.Contains(err.Error(), "EoR:1") {
		t.Errorf("Err() = %v, want message naming EoR:1", err)
	}
}

func TestValidateSchemaZeroCadenceAndDutyCycle(t *testing.T) {
	c := hpso.DefaultCatalog()
	c.Programs[1].ImageCadenceHours = 0
	zero := 0.0
	c.Programs[3].DutyCycle = &zero

	r := ValidateSchema(c)
	if len(r.Errors) != 2 {
		t.Fatalf("errors = %d, want 2: %+v", len(r.Errors), r.Errors)
	}
	if r.Errors[0].Path != "programs[1].image_cadence_hours" {
		t.Errorf("first error path = %s", r.Errors[0].Path)
	}
	if r.Errors[1].Path != "programs[3].duty_cycle" {
		t.Errorf("second error path = %s", r.Errors[1].Path)
	}
}

func TestValidateSchemaDuplicateName(t *testing.T) {
	c := hpso.DefaultCatalog()
	c.Programs[15].Name = "Continuum:38a"

	r := ValidateSchema(c)
	if r.Valid {
		t.Fatal("duplicate names should invalidate the catalog")
	}
	found := false
	for _, e := range r.Errors {
		if e.Path == "programs[15].name" && e.ConflictWith == "programs[14].name" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected duplicate name error, got %+v", r.Errors)
	}
}

func TestValidateSchemaMissingDutyCycle(t *testing.T) {
	c := hpso.DefaultCatalog()
	c.Programs[8].DutyCycle = nil // Transients:18, plotted on the NIP chart

	r := ValidateSchema(c)
	if len(r.Warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(r.Warnings))
	}
	if r.Valid {
		t.Error("a charted program without a timeline should be an error")
	}
}

func TestValidateSchemaCosmology(t *testing.T) {
	c := hpso.DefaultCatalog()
	c.Cosmology.Source = "Pulsars:4"
	r := ValidateSchema(c)
	if r.Valid {
		t.Error("streaming cosmology source should be invalid")
	}

	c = hpso.DefaultCatalog()
	c.Cosmology.Source = "Cosmology:99"
	r = ValidateSchema(c)
	if r.Valid {
		t.Error("unknown cosmology source should be invalid")
	}
}

func TestValidateSchemaCharts(t *testing.T) {
	c := hpso.DefaultCatalog()
	c.Charts[0].Programs = append(c.Charts[0].Programs, "HI:99")
	c.Charts[1].File = c.Charts[0].File

	r := ValidateSchema(c)
	if len(r.Errors) != 2 {
		t.Fatalf("errors = %d, want 2: %+v", len(r.Errors), r.Errors)
	}
}

func TestValidateSchemaEmptyCatalog(t *testing.T) {
	r := ValidateSchema(&hpso.Catalog{})
	if r.Valid {
		t.Error("empty catalog should be invalid")
	}
}
