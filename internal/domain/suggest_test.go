package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

func TestTypeKind(t *testing.T) {
	tests := map[string]string{
		"ProfileViewController": "controller",
		"NetworkService":        "service",
		"CacheManager":          "manager",
		"ProfileViewModel":      "view model",
		"HeaderView":            "view",
		"User":                  "class",
	}

	for name, want := range tests {
		assert.Equal(t, want, domain.TypeKind(name), name)
	}
}

func TestDocTemplate(t *testing.T) {
	typeTemplate := domain.DocTemplate(m.DeclarationSite{Category: m.CategoryType, Name: "CacheManager"})
	assert.True(t, strings.HasPrefix(typeTemplate, "/// CacheManager manager.\n"))

	funcTemplate := domain.DocTemplate(m.DeclarationSite{Category: m.CategoryFunction, Name: "load"})
	assert.Contains(t, funcTemplate, "the load method")
	assert.Contains(t, funcTemplate, "- Returns:")

	propTemplate := domain.DocTemplate(m.DeclarationSite{Category: m.CategoryProperty, Name: "count"})
	assert.Equal(t, "/// [Description of the count property]", propTemplate)

	for _, template := range []string{typeTemplate, funcTemplate, propTemplate} {
		for _, line := range strings.Split(template, "\n") {
			assert.True(t, strings.HasPrefix(line, "///"), line)
		}
	}
}

func TestSuggest(t *testing.T) {
	analysis := newAnalyzer(t, domain.PolicyBackward).Analyze(sampleSource)

	suggestions := domain.Suggest(sampleSource, analysis)

	require.Len(t, suggestions, 3)
	assert.Equal(t, "isEditing", suggestions[0].Site.Name)
	assert.Contains(t, suggestions[0].Context, "var isEditing = false")
	assert.Contains(t, suggestions[0].Context, "private let user: User")
	assert.Equal(t, domain.DocTemplate(suggestions[0].Site), suggestions[0].Template)
}

func TestSuggest_FullyDocumented(t *testing.T) {
	text := "/// Doc.\nfunc foo() {}\n"

	assert.Empty(t, domain.Suggest(text, newAnalyzer(t, domain.PolicyBackward).Analyze(text)))
}

func TestApplySuggestions(t *testing.T) {
	text := "struct S {\n    var a = 1\n}\nfunc top() {}\n"
	analyzer := newAnalyzer(t, domain.PolicyBackward)

	suggestions := domain.Suggest(text, analyzer.Analyze(text))
	require.Len(t, suggestions, 3)

	applied := domain.ApplySuggestions(text, suggestions)

	assert.Contains(t, applied, "    /// [Description of the a property]\n    var a = 1")
	assert.Contains(t, applied, "/// S class.")

	after := analyzer.Analyze(applied)
	assert.Equal(t, after.Stats.TotalItems, after.Stats.DocumentedItems)
}

func TestApplySuggestions_FirstSuggestionPerLineWins(t *testing.T) {
	text := "class func make() {}\n"

	suggestions := domain.Suggest(text, newAnalyzer(t, domain.PolicyBackward).Analyze(text))
	require.Len(t, suggestions, 2)

	applied := domain.ApplySuggestions(text, suggestions)

	assert.Equal(t, 1, strings.Count(applied, "/// func class."))
	assert.NotContains(t, applied, "the make method")
}

func TestSuggestionDiff(t *testing.T) {
	diff, err := domain.SuggestionDiff("Sources/A.swift", "func foo() {}\n", "/// Doc.\nfunc foo() {}\n")
	require.NoError(t, err)

	assert.Contains(t, diff, "--- Sources/A.swift\n")
	assert.Contains(t, diff, "+++ Sources/A.swift (documented)\n")
	assert.Contains(t, diff, "+/// Doc.\n")
}

func TestSuggestionDiff_NoChanges(t *testing.T) {
	diff, err := domain.SuggestionDiff("A.swift", "func foo() {}\n", "func foo() {}\n")
	require.NoError(t, err)
	assert.Empty(t, diff)
}
