package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCategory_MissingKey(t *testing.T) {
	assert.Equal(t, "classes", CategoryType.MissingKey())
	assert.Equal(t, "methods", CategoryFunction.MissingKey())
	assert.Equal(t, "properties", CategoryProperty.MissingKey())
	assert.Equal(t, "other", Category("other").MissingKey())
}

func TestMissingDocumentation_AppendAndFor(t *testing.T) {
	var md MissingDocumentation

	md.Append(CategoryType, "Foo")
	md.Append(CategoryFunction, "bar", "baz")
	md.Append(CategoryProperty, "qux")
	md.Append(Category("unknown"), "ignored")

	assert.Equal(t, []string{"Foo"}, md.For(CategoryType))
	assert.Equal(t, []string{"bar", "baz"}, md.For(CategoryFunction))
	assert.Equal(t, []string{"qux"}, md.For(CategoryProperty))
	assert.Nil(t, md.For(Category("unknown")))
	assert.Equal(t, 4, md.Len())
}

func TestAggregateStats_Sorted(t *testing.T) {
	agg := AggregateStats{
		PerFile: map[Path]FileStats{
			"b.swift": {CoveragePercentage: 50},
			"a.swift": {CoveragePercentage: 50},
			"c.swift": {CoveragePercentage: 0},
			"d.swift": {CoveragePercentage: 100},
		},
	}

	sorted := agg.Sorted()

	paths := make([]Path, 0, len(sorted))
	for _, entry := range sorted {
		paths = append(paths, entry.Path)
	}

	assert.Equal(t, []Path{"c.swift", "a.swift", "b.swift", "d.swift"}, paths)
}

func TestFileStats_JSONKeepsEmptyLists(t *testing.T) {
	stats := FileStats{TotalItems: 1, DocumentedItems: 1, CoveragePercentage: 100}

	data, err := json.Marshal(stats)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"total_items": 1,
		"documented_items": 1,
		"coverage_percentage": 100,
		"missing_documentation": {"classes": [], "methods": [], "properties": []}
	}`, string(data))
}

func TestFileStats_YAMLKeepsEmptyLists(t *testing.T) {
	stats := FileStats{TotalItems: 2, DocumentedItems: 1, CoveragePercentage: 50}
	stats.MissingDocumentation.Append(CategoryProperty, "count")

	data, err := yaml.Marshal(stats)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "classes: []")
	assert.Contains(t, out, "methods: []")
	assert.Contains(t, out, "- count")
	assert.NotContains(t, out, "null")
}
