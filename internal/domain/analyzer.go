package domain

import (
	m "doccov.dev/pkg/doccov/internal/model"
)

// Analysis is the result of analysing one source buffer.
type Analysis struct {
	Sites    []m.DeclarationSite
	Verdicts []m.Verdict
	Stats    m.FileStats
}

// Undocumented returns the sites without documentation, in scan order.
func (a Analysis) Undocumented() []m.DeclarationSite {
	var sites []m.DeclarationSite

	for _, verdict := range a.Verdicts {
		if !verdict.Documented {
			sites = append(sites, verdict.Site)
		}
	}

	return sites
}

// Analyzer turns source text into coverage statistics.
type Analyzer interface {
	Analyze(text string) Analysis
}

type analyzer struct {
	scanner    *Scanner
	associator Associator
}

// NewAnalyzer composes a scanner and an associator.
func NewAnalyzer(scanner *Scanner, associator Associator) Analyzer {
	return &analyzer{
		scanner:    scanner,
		associator: associator,
	}
}

func (a *analyzer) Analyze(text string) Analysis {
	sites := a.scanner.Scan(text)

	verdicts := make([]m.Verdict, 0, len(sites))
	for _, site := range sites {
		verdicts = append(verdicts, m.Verdict{
			Site:       site,
			Documented: a.associator.IsDocumented(text, site.Offset),
		})
	}

	return Analysis{
		Sites:    sites,
		Verdicts: verdicts,
		Stats:    FoldVerdicts(verdicts),
	}
}
