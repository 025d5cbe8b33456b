package model

import (
	"encoding/json"
	"sort"
)

// MissingDocumentation lists undocumented names per category in scan order.
type MissingDocumentation struct {
	Classes    []string `json:"classes" yaml:"classes"`
	Methods    []string `json:"methods" yaml:"methods"`
	Properties []string `json:"properties" yaml:"properties"`
}

// For returns the names recorded for a category.
func (md MissingDocumentation) For(category Category) []string {
	switch category {
	case CategoryType:
		return md.Classes
	case CategoryFunction:
		return md.Methods
	case CategoryProperty:
		return md.Properties
	}

	return nil
}

// Append records an undocumented name under its category.
func (md *MissingDocumentation) Append(category Category, names ...string) {
	switch category {
	case CategoryType:
		md.Classes = append(md.Classes, names...)
	case CategoryFunction:
		md.Methods = append(md.Methods, names...)
	case CategoryProperty:
		md.Properties = append(md.Properties, names...)
	}
}

type plainMissing MissingDocumentation

// withEmptyLists replaces nil categories with empty lists.
func (md MissingDocumentation) withEmptyLists() plainMissing {
	out := plainMissing(md)
	for _, names := range []*[]string{&out.Classes, &out.Methods, &out.Properties} {
		if *names == nil {
			*names = []string{}
		}
	}

	return out
}

// MarshalJSON encodes empty categories as empty lists rather than null.
func (md MissingDocumentation) MarshalJSON() ([]byte, error) {
	return json.Marshal(md.withEmptyLists())
}

// MarshalYAML encodes empty categories as empty lists rather than null.
func (md MissingDocumentation) MarshalYAML() (any, error) {
	return md.withEmptyLists(), nil
}

// Len is the number of undocumented names across all categories.
func (md MissingDocumentation) Len() int {
	return len(md.Classes) + len(md.Methods) + len(md.Properties)
}

// FileStats is the coverage record for one analysed file.
type FileStats struct {
	TotalItems           int                  `json:"total_items" yaml:"total_items"`
	DocumentedItems      int                  `json:"documented_items" yaml:"documented_items"`
	CoveragePercentage   float64              `json:"coverage_percentage" yaml:"coverage_percentage"`
	MissingDocumentation MissingDocumentation `json:"missing_documentation" yaml:"missing_documentation"`
}

// FileAudit ties a file's stats to where it was found and where its report went.
type FileAudit struct {
	Path       Path
	RelPath    Path
	Stats      FileStats
	ReportPath Path
}

// AggregateStats sums FileStats across a set of files.
type AggregateStats struct {
	Files                int
	TotalItems           int
	DocumentedItems      int
	CoveragePercentage   float64
	MissingDocumentation MissingDocumentation
	PerFile              map[Path]FileStats
}

// FileCoverage is one entry of the per-file listing.
type FileCoverage struct {
	Path  Path
	Stats FileStats
}

// Sorted returns the per-file stats ordered by coverage, lowest first.
// Files with equal coverage are ordered by path.
func (a AggregateStats) Sorted() []FileCoverage {
	entries := make([]FileCoverage, 0, len(a.PerFile))
	for path, stats := range a.PerFile {
		entries = append(entries, FileCoverage{Path: path, Stats: stats})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Stats.CoveragePercentage != entries[j].Stats.CoveragePercentage {
			return entries[i].Stats.CoveragePercentage < entries[j].Stats.CoveragePercentage
		}

		return entries[i].Path < entries[j].Path
	})

	return entries
}

// Priorities lists the files that need documentation work first.
type Priorities struct {
	Threshold    float64
	ZeroCoverage []Path
	LowCoverage  []FileCoverage
}
