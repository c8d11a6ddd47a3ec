package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/TMCantwell/HPSO-image-sizes/pkg/fleet"
)

// Collector holds storage projection gauges on a private registry.
type Collector struct {
	registry *prometheus.Registry

	totalPB     *prometheus.GaugeVec
	activeYears *prometheus.GaugeVec
	timelinePB  *prometheus.GaugeVec
	fleetPB     *prometheus.GaugeVec
	cosmologyPB prometheus.Gauge
}

// New creates a collector with all gauges registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		totalPB: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hpso_storage_total_petabytes",
				Help: "Raw storage required by an HPSO.",
			},
			[]string{"program", "kind"},
		),
		activeYears: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hpso_storage_active_years",
				Help: "Calendar years over which an HPSO accumulates data.",
			},
			[]string{"program"},
		),
		timelinePB: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hpso_storage_timeline_petabytes",
				Help: "Projected cumulative storage of an HPSO by year, including advanced data products.",
			},
			[]string{"program", "year"},
		),
		fleetPB: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hpso_fleet_storage_petabytes",
				Help: "Projected cumulative storage of all HPSOs by year.",
			},
			[]string{"year"},
		),
		cosmologyPB: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "hpso_cosmology_storage_petabytes",
				Help: "Derived Cosmology storage.",
			},
		),
	}

	c.registry.MustRegister(c.totalPB, c.activeYears, c.timelinePB, c.fleetPB, c.cosmologyPB)
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Observe records a resolved projection.
func (c *Collector) Observe(p *fleet.Projection) {
	for _, r := range p.Programs {
		c.totalPB.WithLabelValues(r.Name, string(r.Kind)).Set(r.TotalStoragePB)
		if r.Timeline == nil {
			continue
		}
		c.activeYears.WithLabelValues(r.Name).Set(float64(r.ActiveYears))
		for year, v := range r.Timeline {
			c.timelinePB.WithLabelValues(r.Name, strconv.Itoa(year)).Set(v)
		}
	}
	for year, v := range p.Fleet {
		c.fleetPB.WithLabelValues(strconv.Itoa(year)).Set(v)
	}
	if p.Cosmology != nil {
		c.cosmologyPB.Set(p.Cosmology.StoragePB)
	}
}

// WriteTextfile writes the gauges in the Prometheus text format, for a
// node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
