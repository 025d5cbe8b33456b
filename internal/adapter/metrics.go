package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	m "doccov.dev/pkg/doccov/internal/model"
)

const metricsNamespace = "doccov"

// MetricsExporter publishes coverage figures for dashboards and CI gates.
type MetricsExporter interface {
	Export(ctx context.Context, path m.Path, agg m.AggregateStats) error
}

type textfileExporter struct{}

// NewTextfileExporter returns a MetricsExporter that writes the Prometheus
// text exposition format, suitable for the node_exporter textfile collector.
func NewTextfileExporter() MetricsExporter {
	return &textfileExporter{}
}

// CoverageRegistry builds a registry holding the coverage gauges for agg.
func CoverageRegistry(agg m.AggregateStats) (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()

	fileItems := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "file_items",
		Help:      "Declarations found per file.",
	}, []string{"file"})
	fileDocumented := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "file_documented_items",
		Help:      "Documented declarations per file.",
	}, []string{"file"})
	fileCoverage := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "file_coverage_percent",
		Help:      "Documentation coverage per file, in percent.",
	}, []string{"file"})
	missing := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "missing_items",
		Help:      "Undocumented declarations across all files, by category.",
	}, []string{"category"})

	files := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "files",
		Help:      "Files analysed.",
	})
	items := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "items",
		Help:      "Declarations found across all files.",
	})
	documented := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "documented_items",
		Help:      "Documented declarations across all files.",
	})
	coverage := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "coverage_percent",
		Help:      "Overall documentation coverage, in percent.",
	})

	collectors := []prometheus.Collector{
		fileItems, fileDocumented, fileCoverage, missing, files, items, documented, coverage,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("register coverage metric: %w", err)
		}
	}

	for path, stats := range agg.PerFile {
		fileItems.WithLabelValues(string(path)).Set(float64(stats.TotalItems))
		fileDocumented.WithLabelValues(string(path)).Set(float64(stats.DocumentedItems))
		fileCoverage.WithLabelValues(string(path)).Set(stats.CoveragePercentage)
	}

	for _, category := range m.Categories {
		missing.WithLabelValues(category.MissingKey()).Set(float64(len(agg.MissingDocumentation.For(category))))
	}

	files.Set(float64(agg.Files))
	items.Set(float64(agg.TotalItems))
	documented.Set(float64(agg.DocumentedItems))
	coverage.Set(agg.CoveragePercentage)

	return registry, nil
}

func (e *textfileExporter) Export(ctx context.Context, path m.Path, agg m.AggregateStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	registry, err := CoverageRegistry(agg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}

	if err := prometheus.WriteToTextfile(string(path), registry); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}

	return nil
}
