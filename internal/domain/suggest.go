package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "doccov.dev/pkg/doccov/internal/model"
)

// suggestionContextLines is how many lines around a declaration are quoted.
const suggestionContextLines = 3

// Suggest proposes a documentation comment for every undocumented site.
func Suggest(text string, analysis Analysis) []m.Suggestion {
	lines := strings.Split(text, "\n")

	undocumented := analysis.Undocumented()
	suggestions := make([]m.Suggestion, 0, len(undocumented))

	for _, site := range undocumented {
		suggestions = append(suggestions, m.Suggestion{
			Site:     site,
			Context:  contextAround(lines, site.Line-1, suggestionContextLines),
			Template: DocTemplate(site),
		})
	}

	return suggestions
}

func contextAround(lines []string, index, radius int) string {
	start := max(0, index-radius)
	end := min(len(lines), index+radius+1)

	if start >= end {
		return ""
	}

	return strings.Join(lines[start:end], "\n")
}

// DocTemplate returns a documentation skeleton for the site.
func DocTemplate(site m.DeclarationSite) string {
	switch site.Category {
	case m.CategoryType:
		kind := TypeKind(site.Name)

		return fmt.Sprintf("/// %s %s.\n///\n/// [Add a description of what this %s does and its responsibilities]", site.Name, kind, kind)
	case m.CategoryFunction:
		return fmt.Sprintf("/// [Add a description of what the %s method does]\n///\n/// - Parameters:\n///   - [parameter]: [Description of parameter]\n/// - Returns: [Description of the return value]", site.Name)
	case m.CategoryProperty:
		return fmt.Sprintf("/// [Description of the %s property]", site.Name)
	}

	return fmt.Sprintf("/// [Description of %s]", site.Name)
}

// TypeKind guesses what a type is from its name suffix.
func TypeKind(name string) string {
	suffixes := []struct {
		suffix string
		kind   string
	}{
		{"Controller", "controller"},
		{"Service", "service"},
		{"Manager", "manager"},
		{"ViewModel", "view model"},
		{"View", "view"},
	}

	for _, s := range suffixes {
		if strings.HasSuffix(name, s.suffix) {
			return s.kind
		}
	}

	return "class"
}

// ApplySuggestions inserts each template above its declaration line, indented
// like the declaration. Only the first suggestion for a line is used.
func ApplySuggestions(text string, suggestions []m.Suggestion) string {
	lines := strings.Split(text, "\n")

	byLine := make(map[int]m.Suggestion)
	for _, s := range suggestions {
		if _, ok := byLine[s.Site.Line]; !ok {
			byLine[s.Site.Line] = s
		}
	}

	targets := make([]int, 0, len(byLine))
	for line := range byLine {
		targets = append(targets, line)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(targets)))

	for _, line := range targets {
		idx := line - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}

		indent := leadingWhitespace(lines[idx])

		template := strings.Split(byLine[line].Template, "\n")
		for i := range template {
			template[i] = indent + template[i]
		}

		lines = append(lines[:idx], append(template, lines[idx:]...)...)
	}

	return strings.Join(lines, "\n")
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// SuggestionDiff renders the unified diff between the original text and the
// text with suggestions applied.
func SuggestionDiff(path m.Path, before, after string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(path),
		ToFile:   string(path) + " (documented)",
		Context:  3,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("render diff for %s: %w", path, err)
	}

	return out, nil
}
