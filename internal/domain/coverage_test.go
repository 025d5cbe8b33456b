package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

func TestCoveragePercentage(t *testing.T) {
	assert.InDelta(t, 0.0, domain.CoveragePercentage(0, 0), 1e-9)
	assert.InDelta(t, 50.0, domain.CoveragePercentage(1, 2), 1e-9)
	assert.InDelta(t, 100.0, domain.CoveragePercentage(3, 3), 1e-9)
	assert.InDelta(t, 100.0/3, domain.CoveragePercentage(1, 3), 1e-9)
}

func TestFoldVerdicts(t *testing.T) {
	verdicts := []m.Verdict{
		{Site: m.DeclarationSite{Category: m.CategoryType, Name: "A"}, Documented: true},
		{Site: m.DeclarationSite{Category: m.CategoryFunction, Name: "b"}},
		{Site: m.DeclarationSite{Category: m.CategoryProperty, Name: "c"}},
		{Site: m.DeclarationSite{Category: m.CategoryFunction, Name: "d"}},
	}

	stats := domain.FoldVerdicts(verdicts)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.DocumentedItems)
	assert.InDelta(t, 25.0, stats.CoveragePercentage, 1e-9)
	assert.Empty(t, stats.MissingDocumentation.Classes)
	assert.Equal(t, []string{"b", "d"}, stats.MissingDocumentation.Methods)
	assert.Equal(t, []string{"c"}, stats.MissingDocumentation.Properties)
	assert.Equal(t, stats.TotalItems-stats.DocumentedItems, stats.MissingDocumentation.Len())
}

func TestFoldVerdicts_Empty(t *testing.T) {
	stats := domain.FoldVerdicts(nil)

	assert.Zero(t, stats.TotalItems)
	assert.Zero(t, stats.DocumentedItems)
	assert.Zero(t, stats.CoveragePercentage)
	assert.Zero(t, stats.MissingDocumentation.Len())
}

func fileStats(total, documented int, missing ...string) m.FileStats {
	stats := m.FileStats{
		TotalItems:         total,
		DocumentedItems:    documented,
		CoveragePercentage: domain.CoveragePercentage(documented, total),
	}
	stats.MissingDocumentation.Append(m.CategoryFunction, missing...)

	return stats
}

func TestAggregator_Result(t *testing.T) {
	agg := domain.NewAggregator()
	agg.Add("b.swift", fileStats(4, 1, "x", "y", "z"))
	agg.Add("a.swift", fileStats(2, 2))
	agg.Add("c.swift", fileStats(0, 0))

	result := agg.Result()

	assert.Equal(t, 3, result.Files)
	assert.Equal(t, 6, result.TotalItems)
	assert.Equal(t, 3, result.DocumentedItems)
	assert.InDelta(t, 50.0, result.CoveragePercentage, 1e-9)
	assert.Equal(t, []string{"x", "y", "z"}, result.MissingDocumentation.Methods)
	assert.Len(t, result.PerFile, 3)
	assert.Equal(t, result.TotalItems-result.DocumentedItems, result.MissingDocumentation.Len())
}

func TestAggregator_ReAddReplaces(t *testing.T) {
	agg := domain.NewAggregator()
	agg.Add("a.swift", fileStats(2, 0, "p", "q"))
	agg.Add("a.swift", fileStats(2, 2))

	result := agg.Result()

	assert.Equal(t, 1, agg.Len())
	assert.Equal(t, 2, result.DocumentedItems)
	assert.Zero(t, result.MissingDocumentation.Len())
}

func TestAggregator_MissingNamesFollowPathOrder(t *testing.T) {
	agg := domain.NewAggregator()
	agg.Add("z.swift", fileStats(1, 0, "late"))
	agg.Add("a.swift", fileStats(1, 0, "early"))

	assert.Equal(t, []string{"early", "late"}, agg.Result().MissingDocumentation.Methods)
}

func TestAggregator_Merge(t *testing.T) {
	first := domain.NewAggregator()
	first.Add("a.swift", fileStats(1, 1))

	second := domain.NewAggregator()
	second.Add("b.swift", fileStats(1, 0, "m"))
	second.Merge(first.Result())

	result := second.Result()
	assert.Equal(t, 2, result.Files)
	assert.Equal(t, 2, result.TotalItems)
	assert.Equal(t, 1, result.DocumentedItems)
}

func TestAggregator_Empty(t *testing.T) {
	result := domain.NewAggregator().Result()

	assert.Zero(t, result.Files)
	assert.Zero(t, result.CoveragePercentage)
	assert.Empty(t, result.Sorted())
}

func TestPrioritize(t *testing.T) {
	agg := domain.NewAggregator()
	agg.Add("none.swift", fileStats(3, 0, "a", "b", "c"))
	agg.Add("low.swift", fileStats(10, 1))
	agg.Add("edge.swift", fileStats(5, 1))
	agg.Add("good.swift", fileStats(2, 2))
	agg.Add("empty.swift", fileStats(0, 0))

	priorities := domain.Prioritize(agg.Result(), 20)

	assert.InDelta(t, 20.0, priorities.Threshold, 1e-9)
	assert.Equal(t, []m.Path{"none.swift"}, priorities.ZeroCoverage)
	require.Len(t, priorities.LowCoverage, 1)
	assert.Equal(t, m.Path("low.swift"), priorities.LowCoverage[0].Path)
}
