package hpso

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	if len(c.Programs) != 16 {
		t.Fatalf("programs = %d, want 16", len(c.Programs))
	}

	imagingCount, streamingCount := 0, 0
	seen := map[string]bool{}
	for _, p := range c.Programs {
		if seen[p.Name] {
			t.Errorf("duplicate program name %q", p.Name)
		}
		seen[p.Name] = true

		switch p.Kind {
		case KindImaging:
			imagingCount++
		case KindStreaming:
			streamingCount++
		default:
			t.Errorf("%s: unexpected kind %q", p.Name, p.Kind)
		}
		if !p.Projected() {
			t.Errorf("%s: expected a duty cycle", p.Name)
		}
		if p.Style == "" {
			t.Errorf("%s: missing chart style", p.Name)
		}
	}
	if imagingCount != 13 || streamingCount != 3 {
		t.Errorf("imaging/streaming = %d/%d, want 13/3", imagingCount, streamingCount)
	}

	// Reporting order follows the source enumeration.
	if c.Programs[0].Name != "EoR:1" || c.Programs[3].Name != "Pulsars:4" || c.Programs[15].Name != "Continuum:38b" {
		t.Errorf("unexpected order: %s, %s, %s", c.Programs[0].Name, c.Programs[3].Name, c.Programs[15].Name)
	}

	eor := c.ByName("EoR:1")
	if eor == nil {
		t.Fatal("missing EoR:1")
	}
	if eor.ImageSizeBytes != 14e12 || eor.ObservingHours != 5000 || eor.Fields != 5 || eor.ImageCadenceHours != 6 {
		t.Errorf("EoR:1 = %+v", *eor)
	}

	pulsars := c.ByName("Pulsars:4")
	if pulsars == nil {
		t.Fatal("missing Pulsars:4")
	}
	if pulsars.ObservingHours != 15950 || pulsars.DataRateBitsPerSec != 0.7e9 {
		t.Errorf("Pulsars:4 = %+v", *pulsars)
	}

	if c.ByName(c.Cosmology.Source) == nil {
		t.Errorf("cosmology source %q not in catalog", c.Cosmology.Source)
	}
	if c.ByName("Cosmology:33") != nil {
		t.Error("Cosmology:33 is derived and should not be a program")
	}
}

func TestDefaultCatalogCharts(t *testing.T) {
	c := DefaultCatalog()
	if len(c.Charts) != 4 {
		t.Fatalf("charts = %d, want 4", len(c.Charts))
	}

	fleetCharts := 0
	for _, ch := range c.Charts {
		if !strings.HasSuffix(ch.File, ".png") {
			t.Errorf("chart file %q should be a png", ch.File)
		}
		if ch.Fleet {
			fleetCharts++
		}
		for _, name := range ch.Programs {
			if c.ByName(name) == nil {
				t.Errorf("chart %s references unknown program %q", ch.File, name)
			}
		}
	}
	if fleetCharts != 1 {
		t.Errorf("fleet charts = %d, want 1", fleetCharts)
	}
}

func TestDefaultCatalogIsFresh(t *testing.T) {
	a := DefaultCatalog()
	b := DefaultCatalog()
	*a.Programs[0].DutyCycle = 0.5
	if *b.Programs[0].DutyCycle == 0.5 {
		t.Error("catalogs should not share duty cycle storage")
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, DefaultCatalog()); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Pulsars:4", "kind: streaming", "duty_cycle: 0.2", "file: storage_total.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded catalog missing %q", want)
		}
	}

	var decoded Catalog
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("encoded catalog is not valid YAML: %v", err)
	}
	hi := decoded.ByName("HI:15")
	if hi == nil || hi.DutyCycle == nil || *hi.DutyCycle != 0.15 {
		t.Errorf("HI:15 duty cycle not preserved: %+v", hi)
	}
}
