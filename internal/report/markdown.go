// Package report renders coverage statistics as Markdown.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	m "doccov.dev/pkg/doccov/internal/model"
)

// FileAudit renders the audit report of a single file.
func FileAudit(fileName string, stats m.FileStats) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Documentation Audit for %s\n\n", fileName))
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Coverage:** %.2f%%\n", stats.CoveragePercentage))
	sb.WriteString(fmt.Sprintf("- **Items:** %d/%d\n\n", stats.DocumentedItems, stats.TotalItems))

	if stats.MissingDocumentation.Len() > 0 {
		sb.WriteString("## Missing Documentation\n\n")
		writeMissing(&sb, stats.MissingDocumentation, "###")
	}

	return sb.String()
}

// DirectoryAudit renders the summary report of a set of files. links maps a
// file path to the location of its own report; files without a link are
// listed by path only.
func DirectoryAudit(agg m.AggregateStats, links map[m.Path]string) string {
	var sb strings.Builder

	sb.WriteString("# Documentation Audit Report\n\n")
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Files analyzed:** %d\n", agg.Files))
	sb.WriteString(fmt.Sprintf("- **Total items:** %d\n", agg.TotalItems))
	sb.WriteString(fmt.Sprintf("- **Documented items:** %d\n", agg.DocumentedItems))
	sb.WriteString(fmt.Sprintf("- **Overall coverage:** %.2f%%\n\n", agg.CoveragePercentage))
	sb.WriteString("## Files by Coverage (Lowest to Highest)\n\n")

	for _, entry := range agg.Sorted() {
		title := string(entry.Path)
		if link, ok := links[entry.Path]; ok && link != "" {
			title = fmt.Sprintf("[%s](%s)", entry.Path, filepath.ToSlash(link))
		}

		sb.WriteString(fmt.Sprintf("### %s\n", title))
		sb.WriteString(fmt.Sprintf("- Coverage: %.2f%%\n", entry.Stats.CoveragePercentage))
		sb.WriteString(fmt.Sprintf("- Items: %d/%d\n\n", entry.Stats.DocumentedItems, entry.Stats.TotalItems))

		if entry.Stats.MissingDocumentation.Len() > 0 {
			sb.WriteString("#### Missing Documentation\n\n")
			writeMissing(&sb, entry.Stats.MissingDocumentation, "#####")
		}
	}

	return sb.String()
}

func writeMissing(sb *strings.Builder, missing m.MissingDocumentation, heading string) {
	for _, category := range m.Categories {
		names := missing.For(category)
		if len(names) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s %s\n", heading, title(category.MissingKey())))

		for _, name := range names {
			sb.WriteString(fmt.Sprintf("- `%s`\n", name))
		}

		sb.WriteString("\n")
	}
}

func title(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// Suggestions renders the documentation suggestions for one file.
func Suggestions(path m.Path, language string, suggestions []m.Suggestion) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Documentation Suggestions for %s\n\n", filepath.Base(string(path))))
	sb.WriteString(fmt.Sprintf("File: %s\n", path))
	sb.WriteString(fmt.Sprintf("Total suggestions: %d\n\n", len(suggestions)))

	sections := []struct {
		category m.Category
		heading  string
	}{
		{m.CategoryType, "Class Documentation"},
		{m.CategoryFunction, "Method Documentation"},
		{m.CategoryProperty, "Property Documentation"},
	}

	for _, section := range sections {
		var group []m.Suggestion

		for _, s := range suggestions {
			if s.Site.Category == section.category {
				group = append(group, s)
			}
		}

		if len(group) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("## %s (%d)\n\n", section.heading, len(group)))

		for _, s := range group {
			sb.WriteString(fmt.Sprintf("### %s (Line %d)\n\n", s.Site.Name, s.Site.Line))
			sb.WriteString("**Context:**\n\n")
			sb.WriteString(fmt.Sprintf("```%s\n%s\n```\n\n", language, s.Context))
			sb.WriteString("**Suggested Documentation:**\n\n")
			sb.WriteString(fmt.Sprintf("```%s\n%s\n```\n\n", language, s.Template))
		}
	}

	sb.WriteString(fmt.Sprintf("Total documentation suggestions: %d\n", len(suggestions)))

	return sb.String()
}
