package domain

import (
	"fmt"
	"strings"
)

// Policy selects how documentation is associated with a declaration.
type Policy string

const (
	// PolicyStrict only inspects a fixed window of lines above the declaration.
	PolicyStrict Policy = "strict"
	// PolicyBackward walks upward over comments and annotations.
	PolicyBackward Policy = "backward"
)

// AssociationConfig configures the documentation associator.
type AssociationConfig struct {
	Policy             Policy
	DocPrefixes        []string
	CommentPrefixes    []string
	AnnotationPrefixes []string
	MaxLookback        int // backward scan bound, in lines
	Window             int // strict window, in lines
}

// DefaultAssociationConfig returns the Swift defaults: `///` documentation,
// `//` plain comments, `@` attributes.
func DefaultAssociationConfig() AssociationConfig {
	return AssociationConfig{
		Policy:             PolicyBackward,
		DocPrefixes:        []string{"///"},
		CommentPrefixes:    []string{"//"},
		AnnotationPrefixes: []string{"@"},
		MaxLookback:        20,
		Window:             2,
	}
}

// Associator decides whether the declaration starting at offset is documented.
type Associator interface {
	IsDocumented(text string, offset int) bool
}

// NewAssociator returns the associator selected by cfg.Policy.
func NewAssociator(cfg AssociationConfig) (Associator, error) {
	if len(nonEmpty(cfg.DocPrefixes)) == 0 {
		return nil, fmt.Errorf("association policy %q: no documentation prefixes", cfg.Policy)
	}

	markers := lineMarkers{
		doc:        nonEmpty(cfg.DocPrefixes),
		comment:    nonEmpty(cfg.CommentPrefixes),
		annotation: nonEmpty(cfg.AnnotationPrefixes),
	}

	switch cfg.Policy {
	case PolicyStrict:
		if cfg.Window <= 0 {
			return nil, fmt.Errorf("strict policy: window must be positive, got %d", cfg.Window)
		}

		return &StrictAdjacency{markers: markers, window: cfg.Window}, nil
	case PolicyBackward, "":
		if cfg.MaxLookback <= 0 {
			return nil, fmt.Errorf("backward policy: lookback must be positive, got %d", cfg.MaxLookback)
		}

		return &BackwardScan{markers: markers, maxLookback: cfg.MaxLookback}, nil
	}

	return nil, fmt.Errorf("unknown association policy %q", cfg.Policy)
}

type lineMarkers struct {
	doc        []string
	comment    []string
	annotation []string
}

func (lm lineMarkers) isDoc(trimmed string) bool {
	return hasAnyPrefix(trimmed, lm.doc)
}

func (lm lineMarkers) isCommentOrAnnotation(trimmed string) bool {
	return hasAnyPrefix(trimmed, lm.comment) || hasAnyPrefix(trimmed, lm.annotation)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}

	return false
}

// precedingLines returns the lines of text above the line holding offset,
// closest first.
func precedingLines(text string, offset int) []string {
	offset = clampOffset(text, offset)

	head := text[:offset]

	idx := strings.LastIndexByte(head, '\n')
	if idx < 0 {
		return nil
	}

	lines := strings.Split(head[:idx], "\n")
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}

	return lines
}

// StrictAdjacency treats a declaration as documented when a documentation
// line sits within the fixed window directly above it. Blank lines and
// annotations inside the window are not special.
type StrictAdjacency struct {
	markers lineMarkers
	window  int
}

// IsDocumented implements Associator.
func (s *StrictAdjacency) IsDocumented(text string, offset int) bool {
	for i, line := range precedingLines(text, offset) {
		if i >= s.window {
			break
		}

		if s.markers.isDoc(strings.TrimSpace(line)) {
			return true
		}
	}

	return false
}

// BackwardScan walks upward from the declaration over plain comments and
// annotations. A documentation line ends the walk as documented; a blank
// line, a code line or the lookback bound ends it as undocumented.
type BackwardScan struct {
	markers     lineMarkers
	maxLookback int
}

// IsDocumented implements Associator.
func (b *BackwardScan) IsDocumented(text string, offset int) bool {
	for i, line := range precedingLines(text, offset) {
		if i >= b.maxLookback {
			return false
		}

		trimmed := strings.TrimSpace(line)

		switch {
		case b.markers.isDoc(trimmed):
			return true
		case trimmed == "":
			return false
		case b.markers.isCommentOrAnnotation(trimmed):
			continue
		default:
			return false
		}
	}

	return false
}
