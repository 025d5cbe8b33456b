package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	m "doccov.dev/pkg/doccov/internal/model"
)

// ScanConfig lists the words that make up each declaration pattern family.
// A family matches: access modifiers, then secondary modifiers, then one of
// its keywords, then an identifier.
type ScanConfig struct {
	AccessModifiers   []string
	TypeModifiers     []string
	TypeKeywords      []string
	FunctionModifiers []string
	FunctionKeywords  []string
	PropertyModifiers []string
	PropertyKeywords  []string
}

// DefaultScanConfig returns the Swift declaration vocabulary.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		AccessModifiers:   []string{"public", "private", "internal", "fileprivate", "open"},
		TypeModifiers:     []string{"final"},
		TypeKeywords:      []string{"class", "struct", "enum", "protocol", "extension"},
		FunctionModifiers: []string{"static", "class", "override"},
		FunctionKeywords:  []string{"func"},
		PropertyModifiers: []string{"static", "class"},
		PropertyKeywords:  []string{"let", "var"},
	}
}

// ErrNoKeywords is returned when a pattern family has nothing to match on.
var ErrNoKeywords = errors.New("declaration family has no keywords")

type patternFamily struct {
	category m.Category
	pattern  *regexp.Regexp
}

// Scanner finds declaration sites with line-oriented regular expressions.
// It does not track nesting, strings or comments, so declaration-like text
// inside literals is reported as well.
type Scanner struct {
	families []patternFamily
}

// NewScanner compiles the three pattern families described by cfg.
func NewScanner(cfg ScanConfig) (*Scanner, error) {
	families := []struct {
		category  m.Category
		modifiers []string
		keywords  []string
		repeat    bool
	}{
		{m.CategoryType, cfg.TypeModifiers, cfg.TypeKeywords, false},
		{m.CategoryFunction, cfg.FunctionModifiers, cfg.FunctionKeywords, true},
		{m.CategoryProperty, cfg.PropertyModifiers, cfg.PropertyKeywords, true},
	}

	scanner := &Scanner{families: make([]patternFamily, 0, len(families))}

	for _, fam := range families {
		if len(nonEmpty(fam.keywords)) == 0 {
			return nil, fmt.Errorf("%s: %w", fam.category, ErrNoKeywords)
		}

		expr := familyExpr(cfg.AccessModifiers, fam.modifiers, fam.keywords, fam.repeat)

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile %s pattern: %w", fam.category, err)
		}

		scanner.families = append(scanner.families, patternFamily{category: fam.category, pattern: re})
	}

	return scanner, nil
}

func familyExpr(access, modifiers, keywords []string, repeat bool) string {
	var b strings.Builder

	b.WriteString(`\b`)

	if group := alternation(access); group != "" {
		b.WriteString(`(?:` + group + ` +)*`)
	}

	if group := alternation(modifiers); group != "" {
		quantifier := "?"
		if repeat {
			quantifier = "*"
		}

		b.WriteString(`(?:` + group + ` +)` + quantifier)
	}

	b.WriteString(alternation(keywords))
	b.WriteString(` +([\p{L}\p{N}_]+)`)

	return b.String()
}

func alternation(words []string) string {
	words = nonEmpty(words)
	if len(words) == 0 {
		return ""
	}

	quoted := make([]string, 0, len(words))
	for _, w := range words {
		quoted = append(quoted, regexp.QuoteMeta(w))
	}

	return `(?:` + strings.Join(quoted, "|") + `)`
}

func nonEmpty(words []string) []string {
	out := make([]string, 0, len(words))

	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}

	return out
}

// Scan returns every declaration site in text ordered by offset. Families are
// scanned independently and the union is returned, so one offset may yield a
// site in more than one category.
func (s *Scanner) Scan(text string) []m.DeclarationSite {
	newlines := newlineOffsets(text)

	var sites []m.DeclarationSite

	for _, family := range s.families {
		for _, loc := range family.pattern.FindAllStringSubmatchIndex(text, -1) {
			sites = append(sites, m.DeclarationSite{
				Category: family.category,
				Name:     text[loc[2]:loc[3]],
				Offset:   loc[0],
				Line:     lineFromNewlines(newlines, loc[0]),
			})
		}
	}

	sort.SliceStable(sites, func(i, j int) bool {
		return sites[i].Offset < sites[j].Offset
	})

	return sites
}

// LineAt returns the 1-based line number of offset in text.
func LineAt(text string, offset int) int {
	offset = clampOffset(text, offset)

	return strings.Count(text[:offset], "\n") + 1
}

func newlineOffsets(text string) []int {
	var offsets []int

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i)
		}
	}

	return offsets
}

func lineFromNewlines(newlines []int, offset int) int {
	return sort.SearchInts(newlines, offset) + 1
}

func clampOffset(text string, offset int) int {
	if offset < 0 {
		return 0
	}

	if offset > len(text) {
		return len(text)
	}

	return offset
}
