package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

func newDefaultScanner(t *testing.T) *domain.Scanner {
	t.Helper()

	scanner, err := domain.NewScanner(domain.DefaultScanConfig())
	require.NoError(t, err)

	return scanner
}

func TestScanner_Scan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []m.DeclarationSite
	}{
		{
			name: "plain function",
			text: "func foo() {}\n",
			want: []m.DeclarationSite{
				{Category: m.CategoryFunction, Name: "foo", Offset: 0, Line: 1},
			},
		},
		{
			name: "modifiers belong to the match",
			text: "\n  public static func bar() {}\n",
			want: []m.DeclarationSite{
				{Category: m.CategoryFunction, Name: "bar", Offset: 3, Line: 2},
			},
		},
		{
			name: "final class with access modifier",
			text: "open final class Base {}",
			want: []m.DeclarationSite{
				{Category: m.CategoryType, Name: "Base", Offset: 0, Line: 1},
			},
		},
		{
			name: "every type keyword",
			text: "struct A {}\nenum B {}\nprotocol C {}\nextension D {}\n",
			want: []m.DeclarationSite{
				{Category: m.CategoryType, Name: "A", Offset: 0, Line: 1},
				{Category: m.CategoryType, Name: "B", Offset: 12, Line: 2},
				{Category: m.CategoryType, Name: "C", Offset: 22, Line: 3},
				{Category: m.CategoryType, Name: "D", Offset: 36, Line: 4},
			},
		},
		{
			name: "properties",
			text: "private static let x = 1\nvar y = 2\n",
			want: []m.DeclarationSite{
				{Category: m.CategoryProperty, Name: "x", Offset: 0, Line: 1},
				{Category: m.CategoryProperty, Name: "y", Offset: 25, Line: 2},
			},
		},
		{
			name: "keyword must stand alone",
			text: "let classify = 1\n",
			want: []m.DeclarationSite{
				{Category: m.CategoryProperty, Name: "classify", Offset: 0, Line: 1},
			},
		},
		{
			name: "unicode identifiers",
			text: "func café() {}\nlet 予約 = 1\nstruct Ñandú {}\n",
			want: []m.DeclarationSite{
				{Category: m.CategoryFunction, Name: "café", Offset: 0, Line: 1},
				{Category: m.CategoryProperty, Name: "予約", Offset: 16, Line: 2},
				{Category: m.CategoryType, Name: "Ñandú", Offset: 31, Line: 3},
			},
		},
		{
			name: "no declarations",
			text: "import Foundation\n",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	scanner := newDefaultScanner(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanner.Scan(tt.text))
		})
	}
}

func TestScanner_SameNameInDifferentCategories(t *testing.T) {
	text := "struct Item {}\nlet Item = 1\n"

	sites := newDefaultScanner(t).Scan(text)

	require.Len(t, sites, 2)
	assert.Equal(t, m.CategoryType, sites[0].Category)
	assert.Equal(t, "Item", sites[0].Name)
	assert.Equal(t, m.CategoryProperty, sites[1].Category)
	assert.Equal(t, "Item", sites[1].Name)
	assert.NotEqual(t, sites[0].Offset, sites[1].Offset)
}

func TestScanner_ClassFuncIsReportedTwice(t *testing.T) {
	sites := newDefaultScanner(t).Scan("class func make() {}\n")

	require.Len(t, sites, 2)
	assert.Equal(t, m.DeclarationSite{Category: m.CategoryType, Name: "func", Offset: 0, Line: 1}, sites[0])
	assert.Equal(t, m.DeclarationSite{Category: m.CategoryFunction, Name: "make", Offset: 0, Line: 1}, sites[1])
}

func TestScanner_OrderedByOffset(t *testing.T) {
	text := "var a = 1\nfunc b() {}\nclass C {}\nlet d = 2\n"

	sites := newDefaultScanner(t).Scan(text)

	require.Len(t, sites, 4)

	for i := 1; i < len(sites); i++ {
		assert.LessOrEqual(t, sites[i-1].Offset, sites[i].Offset)
	}

	for _, site := range sites {
		assert.Equal(t, domain.LineAt(text, site.Offset), site.Line)
	}
}

func TestScanner_PinsLexicalMisfires(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "misfires.swift"))
	require.NoError(t, err)

	sites := newDefaultScanner(t).Scan(string(data))

	names := make([]string, 0, len(sites))
	for _, site := range sites {
		names = append(names, string(site.Category)+":"+site.Name)
	}

	assert.Equal(t, []string{
		"type:Greeter",
		"property:prefix",
		"property:sample",
		"type:Fake",
		"function:hidden",
		"type:func",
		"function:make",
		"property:cached",
	}, names)
}

func TestNewScanner_CustomVocabulary(t *testing.T) {
	cfg := domain.DefaultScanConfig()
	cfg.FunctionKeywords = []string{"fn"}

	scanner, err := domain.NewScanner(cfg)
	require.NoError(t, err)

	sites := scanner.Scan("fn run() {}\nfunc skip() {}\n")
	require.Len(t, sites, 1)
	assert.Equal(t, "run", sites[0].Name)
}

func TestNewScanner_RequiresKeywords(t *testing.T) {
	cfg := domain.DefaultScanConfig()
	cfg.PropertyKeywords = []string{" ", ""}

	_, err := domain.NewScanner(cfg)
	require.ErrorIs(t, err, domain.ErrNoKeywords)
}

func TestLineAt(t *testing.T) {
	text := "a\nb\nc"

	assert.Equal(t, 1, domain.LineAt(text, 0))
	assert.Equal(t, 2, domain.LineAt(text, 2))
	assert.Equal(t, 3, domain.LineAt(text, 4))
	assert.Equal(t, 1, domain.LineAt(text, -5))
	assert.Equal(t, 3, domain.LineAt(text, 100))
}
