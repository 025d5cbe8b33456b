// Package controller provides output adapters for displaying coverage results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "doccov.dev/pkg/doccov/internal/model"
)

// UI defines how workflow results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayInfo(ctx context.Context, message string)
	DisplayWarning(ctx context.Context, message string, err error)
	DisplayFileStats(ctx context.Context, path m.Path, stats m.FileStats)
	DisplayAggregate(ctx context.Context, agg m.AggregateStats) error
	DisplayPriorities(ctx context.Context, priorities m.Priorities)
	DisplaySuggestions(ctx context.Context, path m.Path, report string)
	DisplayDiff(ctx context.Context, diff string)
	DisplayReportSaved(ctx context.Context, path m.Path)
}

// NewUI returns the interactive UI on a terminal and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
