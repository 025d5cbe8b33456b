package domain

import (
	"sort"

	m "doccov.dev/pkg/doccov/internal/model"
)

// CoveragePercentage returns documented/total as a percentage, or 0 when
// there is nothing to document.
func CoveragePercentage(documented, total int) float64 {
	if total <= 0 {
		return 0
	}

	return float64(documented) / float64(total) * 100
}

// FoldVerdicts builds the FileStats for one file from its verdicts.
func FoldVerdicts(verdicts []m.Verdict) m.FileStats {
	var stats m.FileStats

	for _, verdict := range verdicts {
		stats.TotalItems++

		if verdict.Documented {
			stats.DocumentedItems++
			continue
		}

		stats.MissingDocumentation.Append(verdict.Site.Category, verdict.Site.Name)
	}

	stats.CoveragePercentage = CoveragePercentage(stats.DocumentedItems, stats.TotalItems)

	return stats
}

// Aggregator accumulates per-file stats. Adding a path twice replaces the
// earlier record.
type Aggregator struct {
	perFile map[m.Path]m.FileStats
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{perFile: make(map[m.Path]m.FileStats)}
}

// Add records the stats of one file.
func (a *Aggregator) Add(path m.Path, stats m.FileStats) {
	a.perFile[path] = stats
}

// Merge adds every file of another aggregate.
func (a *Aggregator) Merge(other m.AggregateStats) {
	for path, stats := range other.PerFile {
		a.Add(path, stats)
	}
}

// Len is the number of files recorded so far.
func (a *Aggregator) Len() int {
	return len(a.perFile)
}

// Result sums the recorded files. Missing names are concatenated in path order.
func (a *Aggregator) Result() m.AggregateStats {
	paths := make([]m.Path, 0, len(a.perFile))
	for path := range a.perFile {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	agg := m.AggregateStats{
		Files:   len(paths),
		PerFile: make(map[m.Path]m.FileStats, len(paths)),
	}

	for _, path := range paths {
		stats := a.perFile[path]

		agg.TotalItems += stats.TotalItems
		agg.DocumentedItems += stats.DocumentedItems

		for _, category := range m.Categories {
			agg.MissingDocumentation.Append(category, stats.MissingDocumentation.For(category)...)
		}

		agg.PerFile[path] = stats
	}

	agg.CoveragePercentage = CoveragePercentage(agg.DocumentedItems, agg.TotalItems)

	return agg
}

// Prioritize selects files with no coverage and files below threshold
// percent. Files without declarations are left out.
func Prioritize(agg m.AggregateStats, threshold float64) m.Priorities {
	priorities := m.Priorities{Threshold: threshold}

	for _, entry := range agg.Sorted() {
		if entry.Stats.TotalItems == 0 {
			continue
		}

		coverage := entry.Stats.CoveragePercentage

		switch {
		case coverage == 0:
			priorities.ZeroCoverage = append(priorities.ZeroCoverage, entry.Path)
		case coverage < threshold:
			priorities.LowCoverage = append(priorities.LowCoverage, entry)
		}
	}

	return priorities
}
