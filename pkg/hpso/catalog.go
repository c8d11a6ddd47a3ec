package hpso

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// CatalogSource is the document the literal parameters are taken from.
const CatalogSource = "SKA-TEL-SDP-0000038 revision 02, tables 8 and 9"

func duty(f float64) *float64 { return &f }

// DefaultCatalog returns the fixed survey scenario. Programs are listed in
// reporting order. Image sizes are in bytes, times in hours.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Source: CatalogSource,
		Programs: []Program{
			imaging("EoR:1", 14e12, 5000, 5, 6, 0.10, "b-"),
			imaging("EoR:2a", 14e12, 5000, 50, 6, 0.10, "b--"),
			imaging("EoR:2b", 14e12, 5000, 500, 6, 0.10, "b:"),
			streaming("Pulsars:4", 0.7e9, 12750+800+2400, 0.20, "r-"),
			streaming("Pulsars:5", 0.6e9, 4300+1600+1600, 0.10, "r--"),
			imaging("HI:13", 16.1e12, 5000, 5, 6, 0.10, "g-"),
			imaging("HI:14", 8.3e12, 2000, 10, 6, 0.05, "g--"),
			imaging("HI:15", 1.6e12, 12600, 2842, 4.4, 0.15, "g:"),
			streaming("Transients:18", 0.1e9, 10000, 0.10, "m-"),
			imaging("Cradle of Life:22", 48.8e12, 6000, 10, 6, 0.10, "c-"),
			imaging("Magnetism:27", 1.5e12, 10000, 8157, 0.1, 0.15, "y-"),
			imaging("Continuum:37a", 34.7e12, 2000, 21, 6, 0.05, "k-"),
			imaging("Continuum:37b", 34.7e12, 2000, 1, 6, 0.05, "k--"),
			imaging("Continuum:37c", 5.9e12, 10000, 2632, 6, 0.15, "k:"),
			imaging("Continuum:38a", 110.7e12, 1000, 61, 6, 0.05, "m--"),
			imaging("Continuum:38b", 112.5e12, 1000, 1, 6, 0.05, "m:"),
		},
		Cosmology: Cosmology{
			Name:       "Cosmology:33",
			Source:     "Magnetism:27",
			Multiplier: 9,
		},
		Charts: []ChartDef{
			{
				File:     "storage_eor_hi.png",
				Title:    "EoR and HI storage",
				Programs: []string{"EoR:1", "EoR:2a", "EoR:2b", "HI:13", "HI:14", "HI:15"},
			},
			{
				File:     "storage_continuum.png",
				Title:    "Continuum, magnetism and cradle of life storage",
				Programs: []string{"Cradle of Life:22", "Magnetism:27", "Continuum:37a", "Continuum:37b", "Continuum:37c", "Continuum:38a", "Continuum:38b"},
			},
			{
				File:     "storage_nip.png",
				Title:    "Non-imaging pipeline storage",
				Programs: []string{"Pulsars:4", "Pulsars:5", "Transients:18"},
			},
			{
				File:  "storage_total.png",
				Title: "Total storage",
				Fleet: true,
			},
		},
	}
}

func imaging(name string, imageSize, hours float64, fields int, cadence, dutyCycle float64, style string) Program {
	return Program{
		Name:              name,
		Kind:              KindImaging,
		ImageSizeBytes:    imageSize,
		ObservingHours:    hours,
		Fields:            fields,
		ImageCadenceHours: cadence,
		DutyCycle:         duty(dutyCycle),
		Style:             style,
	}
}

func streaming(name string, bitsPerSec, hours, dutyCycle float64, style string) Program {
	return Program{
		Name:               name,
		Kind:               KindStreaming,
		DataRateBitsPerSec: bitsPerSec,
		ObservingHours:     hours,
		DutyCycle:          duty(dutyCycle),
		Style:              style,
	}
}

// Encode writes the catalog as YAML.
func Encode(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding catalog YAML: %w", err)
	}
	return enc.Close()
}
