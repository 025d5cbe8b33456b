package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "doccov.dev/pkg/doccov/internal/model"
)

func sampleAggregate() m.AggregateStats {
	agg := m.AggregateStats{
		Files:              2,
		TotalItems:         4,
		DocumentedItems:    2,
		CoveragePercentage: 50,
		PerFile: map[m.Path]m.FileStats{
			"A.swift": {TotalItems: 1, DocumentedItems: 1, CoveragePercentage: 100},
			"B.swift": {TotalItems: 3, DocumentedItems: 1, CoveragePercentage: 100.0 / 3},
		},
	}
	agg.MissingDocumentation.Append(m.CategoryFunction, "run", "stop")

	return agg
}

func TestCoverageRegistry(t *testing.T) {
	registry, err := CoverageRegistry(sampleAggregate())
	require.NoError(t, err)

	families, err := registry.Gather()
	require.NoError(t, err)

	values := make(map[string]int)
	for _, family := range families {
		values[family.GetName()] = len(family.GetMetric())
	}

	assert.Equal(t, 2, values["doccov_file_items"])
	assert.Equal(t, 2, values["doccov_file_coverage_percent"])
	assert.Equal(t, 3, values["doccov_missing_items"])
	assert.Equal(t, 1, values["doccov_coverage_percent"])
}

func TestTextfileExporter_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics", "doccov.prom")

	err := NewTextfileExporter().Export(context.Background(), m.Path(path), sampleAggregate())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "doccov_files 2\n")
	assert.Contains(t, text, "doccov_items 4\n")
	assert.Contains(t, text, "doccov_documented_items 2\n")
	assert.Contains(t, text, "doccov_coverage_percent 50\n")
	assert.Contains(t, text, `doccov_file_items{file="B.swift"} 3`)
	assert.Contains(t, text, `doccov_missing_items{category="methods"} 2`)
	assert.Contains(t, text, `doccov_missing_items{category="classes"} 0`)
}

func TestTextfileExporter_ExportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewTextfileExporter().Export(ctx, m.Path(filepath.Join(t.TempDir(), "x.prom")), sampleAggregate())
	require.ErrorIs(t, err, context.Canceled)
}
