package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "doccov.dev/pkg/doccov/internal/model"
)

// SimpleUI implements UI by printing to the command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayInfo prints a plain message.
func (s *SimpleUI) DisplayInfo(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", message)
}

// DisplayWarning prints a non-fatal problem to stderr.
func (s *SimpleUI) DisplayWarning(ctx context.Context, message string, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	if err != nil {
		s.errorf("warning: %s: %v\n", message, err)
		return
	}

	s.errorf("warning: %s\n", message)
}

// DisplayFileStats prints the coverage of a single file.
func (s *SimpleUI) DisplayFileStats(ctx context.Context, path m.Path, stats m.FileStats) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s: %.2f%% (%d/%d documented)\n", path, stats.CoveragePercentage, stats.DocumentedItems, stats.TotalItems)

	for _, category := range m.Categories {
		names := stats.MissingDocumentation.For(category)
		if len(names) == 0 {
			continue
		}

		s.printf("  missing %s: %v\n", category.MissingKey(), names)
	}
}

// DisplayAggregate prints a coverage table, lowest coverage first.
func (s *SimpleUI) DisplayAggregate(ctx context.Context, agg m.AggregateStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderCoverageTable(agg))

	return nil
}

func renderCoverageTable(agg m.AggregateStats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Documented", "Coverage"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT})

	for _, entry := range agg.Sorted() {
		table.Append([]string{
			string(entry.Path),
			fmt.Sprintf("%d/%d", entry.Stats.DocumentedItems, entry.Stats.TotalItems),
			fmt.Sprintf("%.2f%%", entry.Stats.CoveragePercentage),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", agg.Files),
		fmt.Sprintf("%d/%d", agg.DocumentedItems, agg.TotalItems),
		fmt.Sprintf("%.2f%%", agg.CoveragePercentage),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayPriorities lists the files to document first.
func (s *SimpleUI) DisplayPriorities(ctx context.Context, priorities m.Priorities) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(priorities.ZeroCoverage) == 0 {
		s.printf("No files with 0%% documentation coverage found.\n")
	} else {
		s.printf("Files with 0%% documentation coverage:\n")

		for _, path := range priorities.ZeroCoverage {
			s.printf("- %s\n", path)
		}
	}

	if len(priorities.LowCoverage) == 0 {
		s.printf("\nNo files with low documentation coverage (below %.0f%%) found.\n", priorities.Threshold)
		return
	}

	s.printf("\nFiles with low documentation coverage (below %.0f%%):\n", priorities.Threshold)

	for _, entry := range priorities.LowCoverage {
		s.printf("- %s (%.2f%%)\n", entry.Path, entry.Stats.CoveragePercentage)
	}
}

// DisplaySuggestions prints a rendered suggestions report.
func (s *SimpleUI) DisplaySuggestions(ctx context.Context, path m.Path, report string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Analyzing %s...\n%s\n", path, report)
}

// DisplayDiff prints a unified diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("Nothing to change.\n")
		return
	}

	s.printf("%s", diff)
}

// DisplayReportSaved announces where a report was written.
func (s *SimpleUI) DisplayReportSaved(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Report saved to %s\n", path)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
