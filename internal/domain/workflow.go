package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"doccov.dev/pkg/doccov/internal/adapter"
	"doccov.dev/pkg/doccov/internal/controller"
	m "doccov.dev/pkg/doccov/internal/model"
	"doccov.dev/pkg/doccov/internal/report"
	"doccov.dev/pkg/doccov/pkg"
)

const (
	suggestionsDir    = "suggestions"
	auditsDir         = "audits"
	suggestionsSuffix = "_suggestions.md"
	auditSuffix       = "_audit.md"
)

// WorkflowConfig holds the settings shared by every workflow operation.
type WorkflowConfig struct {
	OutputDir    m.Path
	Extensions   []string
	ExcludeDirs  []string
	Language     string // code fence language used in suggestion reports
	LowThreshold float64
	MetricsFile  m.Path
	SpillDir     string
}

// AnalyzeArgs contains the arguments for generating suggestions for one file.
type AnalyzeArgs struct {
	File m.Path
	Diff bool
}

// AuditArgs contains the arguments for auditing a file or a directory.
type AuditArgs struct {
	Path    m.Path
	Exclude []string
	Threads int
}

// AnalyzeAllArgs contains the arguments for generating suggestions for a tree.
type AnalyzeAllArgs struct {
	Dir     m.Path
	Exclude []string
}

// RunArgs contains the arguments for the complete documentation workflow.
type RunArgs struct {
	AuditArgs
	File       m.Path
	AnalyzeAll bool
}

// ViewArgs contains the arguments for viewing stored audit results.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the user-facing documentation coverage operations.
type Workflow interface {
	AnalyzeOnly(ctx context.Context, file m.Path) (m.FileStats, error)
	Analyze(ctx context.Context, args AnalyzeArgs) (m.Path, error)
	AuditFile(ctx context.Context, file m.Path) (m.FileAudit, error)
	Audit(ctx context.Context, args AuditArgs) (m.AggregateStats, error)
	AnalyzeAll(ctx context.Context, args AnalyzeAllArgs) error
	Run(ctx context.Context, args RunArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fs       adapter.SourceFSAdapter
	store    adapter.ReportStore
	metrics  adapter.MetricsExporter
	ui       controller.UI
	analyzer Analyzer
	cfg      WorkflowConfig
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	metrics adapter.MetricsExporter,
	ui controller.UI,
	analyzer Analyzer,
	cfg WorkflowConfig,
) Workflow {
	return &workflow{
		fs:       fsAdapter,
		store:    reportStore,
		metrics:  metrics,
		ui:       ui,
		analyzer: analyzer,
		cfg:      cfg,
	}
}

// location is where a source file sits relative to its project root.
type location struct {
	rel m.Path
}

func (l location) output(ctx context.Context, fsAdapter adapter.SourceFSAdapter, out m.Path, kind, suffix string) m.Path {
	rel := string(l.rel)
	base := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))

	return fsAdapter.JoinPath(ctx, string(out), kind, filepath.Dir(rel), base+suffix)
}

func (w *workflow) AnalyzeOnly(ctx context.Context, file m.Path) (m.FileStats, error) {
	_, text, err := w.loadSource(ctx, file)
	if err != nil {
		return m.FileStats{}, err
	}

	return w.analyzer.Analyze(text).Stats, nil
}

func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) (m.Path, error) {
	abs, text, err := w.loadSource(ctx, args.File)
	if err != nil {
		return "", err
	}

	loc, err := w.locate(ctx, abs)
	if err != nil {
		return "", err
	}

	analysis := w.analyzer.Analyze(text)
	suggestions := Suggest(text, analysis)
	content := report.Suggestions(abs, w.cfg.Language, suggestions)

	out := loc.output(ctx, w.fs, w.cfg.OutputDir, suggestionsDir, suggestionsSuffix)
	if err := w.store.SaveReport(ctx, out, content); err != nil {
		return "", err
	}

	w.ui.DisplaySuggestions(ctx, abs, content)

	if args.Diff {
		diff, err := SuggestionDiff(loc.rel, text, ApplySuggestions(text, suggestions))
		if err != nil {
			return "", err
		}

		w.ui.DisplayDiff(ctx, diff)
	}

	w.ui.DisplayReportSaved(ctx, out)
	slog.Debug("Analyzed file", "path", abs, "suggestions", len(suggestions))

	return out, nil
}

func (w *workflow) AuditFile(ctx context.Context, file m.Path) (m.FileAudit, error) {
	abs, text, err := w.loadSource(ctx, file)
	if err != nil {
		return m.FileAudit{}, err
	}

	loc, err := w.locate(ctx, abs)
	if err != nil {
		return m.FileAudit{}, err
	}

	stats := w.analyzer.Analyze(text).Stats

	out := loc.output(ctx, w.fs, w.cfg.OutputDir, auditsDir, auditSuffix)
	if err := w.store.SaveReport(ctx, out, report.FileAudit(filepath.Base(string(abs)), stats)); err != nil {
		return m.FileAudit{}, err
	}

	statsPath := loc.output(ctx, w.fs, w.cfg.OutputDir, auditsDir, adapter.StatsFileSuffix)
	if err := w.store.SaveStats(ctx, statsPath, adapter.StoredAudit{Source: loc.rel, FileStats: stats}); err != nil {
		return m.FileAudit{}, err
	}

	slog.Debug("Audited file", "path", abs, "coverage", stats.CoveragePercentage)

	return m.FileAudit{
		Path:       abs,
		RelPath:    loc.rel,
		Stats:      stats,
		ReportPath: out,
	}, nil
}

func (w *workflow) Audit(ctx context.Context, args AuditArgs) (m.AggregateStats, error) {
	abs, info, err := w.stat(ctx, args.Path)
	if err != nil {
		return m.AggregateStats{}, err
	}

	if !info.IsDir() {
		return w.auditSingle(ctx, abs)
	}

	root, err := w.fs.FindProjectRoot(ctx, abs)
	if err != nil {
		slog.Error("Failed to find project root", "path", abs, "error", err)
		return m.AggregateStats{}, fmt.Errorf("audit %s: %w", abs, err)
	}

	relDir, err := w.fs.RelPath(ctx, root, abs)
	if err != nil {
		return m.AggregateStats{}, fmt.Errorf("relative path of %s: %w", abs, err)
	}

	files, err := w.collectFiles(ctx, abs, args.Exclude)
	if err != nil {
		return m.AggregateStats{}, err
	}

	w.ui.DisplayInfo(ctx, fmt.Sprintf("Found %d source files to audit", len(files)))

	audits, err := w.auditFiles(ctx, files, args.Threads)
	if err != nil {
		return m.AggregateStats{}, err
	}
	defer func() { _ = audits.Close() }()

	summary := w.fs.JoinPath(ctx, string(w.cfg.OutputDir), auditsDir, string(relDir),
		filepath.Base(string(abs))+auditSuffix)

	aggregator := NewAggregator()
	links := make(map[m.Path]string)

	err = audits.Range(func(_ uint64, audit m.FileAudit) error {
		aggregator.Add(audit.RelPath, audit.Stats)

		link, relErr := w.fs.RelPath(ctx, m.Path(filepath.Dir(string(summary))), audit.ReportPath)
		if relErr == nil {
			links[audit.RelPath] = string(link)
		}

		return nil
	})
	if err != nil {
		return m.AggregateStats{}, fmt.Errorf("collect audit results: %w", err)
	}

	result := aggregator.Result()

	if err := w.store.SaveReport(ctx, summary, report.DirectoryAudit(result, links)); err != nil {
		return m.AggregateStats{}, err
	}

	if err := w.ui.DisplayAggregate(ctx, result); err != nil {
		return m.AggregateStats{}, fmt.Errorf("display: %w", err)
	}

	w.ui.DisplayReportSaved(ctx, summary)

	if err := w.exportMetrics(ctx, result); err != nil {
		return m.AggregateStats{}, err
	}

	return result, nil
}

func (w *workflow) auditSingle(ctx context.Context, abs m.Path) (m.AggregateStats, error) {
	audit, err := w.AuditFile(ctx, abs)
	if err != nil {
		return m.AggregateStats{}, err
	}

	w.ui.DisplayFileStats(ctx, audit.RelPath, audit.Stats)
	w.ui.DisplayReportSaved(ctx, audit.ReportPath)

	aggregator := NewAggregator()
	aggregator.Add(audit.RelPath, audit.Stats)

	result := aggregator.Result()
	if err := w.exportMetrics(ctx, result); err != nil {
		return m.AggregateStats{}, err
	}

	return result, nil
}

// auditFiles audits files concurrently. Files that fail are reported and
// left out; only cancellation or a spill failure aborts the run.
func (w *workflow) auditFiles(ctx context.Context, files []m.File, threads int) (pkg.FileSpill[m.FileAudit], error) {
	spill, err := pkg.NewFileSpill[m.FileAudit](w.cfg.SpillDir)
	if err != nil {
		return nil, fmt.Errorf("create audit spill: %w", err)
	}

	type failure struct {
		path m.Path
		err  error
	}

	var (
		failures []failure
		mu       sync.Mutex
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(threads, 1))

	for _, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			audit, err := w.AuditFile(groupCtx, file.FullPath)
			if err != nil {
				slog.Warn("Skipping file", "path", file.FullPath, "error", err)
				mu.Lock()
				failures = append(failures, failure{path: file.ShortPath, err: err})
				mu.Unlock()

				return nil
			}

			audit.RelPath = file.ShortPath

			return spill.Append(audit)
		})
	}

	if err := group.Wait(); err != nil {
		_ = spill.Close()
		return nil, fmt.Errorf("audit files: %w", err)
	}

	if err := ctx.Err(); err != nil {
		_ = spill.Close()
		return nil, err
	}

	sort.Slice(failures, func(i, j int) bool { return failures[i].path < failures[j].path })

	for _, f := range failures {
		w.ui.DisplayWarning(ctx, fmt.Sprintf("skipped %s", f.path), f.err)
	}

	return spill, nil
}

func (w *workflow) exportMetrics(ctx context.Context, agg m.AggregateStats) error {
	if w.cfg.MetricsFile == "" || w.metrics == nil {
		return nil
	}

	if err := w.metrics.Export(ctx, w.cfg.MetricsFile, agg); err != nil {
		slog.Error("Failed to export metrics", "path", w.cfg.MetricsFile, "error", err)
		return fmt.Errorf("export metrics: %w", err)
	}

	return nil
}

func (w *workflow) AnalyzeAll(ctx context.Context, args AnalyzeAllArgs) error {
	abs, info, err := w.stat(ctx, args.Dir)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", m.ErrInvalidPath, args.Dir)
	}

	files, err := w.collectFiles(ctx, abs, args.Exclude)
	if err != nil {
		return err
	}

	w.ui.DisplayInfo(ctx, fmt.Sprintf("Found %d source files to analyze", len(files)))

	analyzed := 0

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := w.Analyze(ctx, AnalyzeArgs{File: file.FullPath}); err != nil {
			slog.Warn("Skipping file", "path", file.FullPath, "error", err)
			w.ui.DisplayWarning(ctx, fmt.Sprintf("skipped %s", file.ShortPath), err)

			continue
		}

		analyzed++
	}

	w.ui.DisplayInfo(ctx, fmt.Sprintf("Completed analysis of %d of %d files", analyzed, len(files)))

	return nil
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	agg, err := w.Audit(ctx, args.AuditArgs)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	w.ui.DisplayPriorities(ctx, Prioritize(agg, w.cfg.LowThreshold))

	switch {
	case args.AnalyzeAll:
		return w.AnalyzeAll(ctx, AnalyzeAllArgs{Dir: args.Path, Exclude: args.Exclude})
	case args.File != "":
		_, err := w.Analyze(ctx, AnalyzeArgs{File: args.File})
		return err
	}

	w.ui.DisplayInfo(ctx, "\nTo analyze a specific file, run:\n  doccov analyze path/to/file"+
		"\nTo analyze all files in a directory, run:\n  doccov analyze-all path/to/directory"+
		"\nOr add --analyze-all to the workflow command.")

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports := args.Reports
	if reports == "" {
		reports = w.cfg.OutputDir
	}

	root := w.fs.JoinPath(ctx, string(reports), auditsDir)

	audits, skipped, err := w.store.LoadStats(ctx, root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: no audits under %s, run an audit first", m.ErrInvalidPath, reports)
		}

		return err
	}

	for _, skip := range skipped {
		w.ui.DisplayWarning(ctx, "skipped stored stats", skip)
	}

	aggregator := NewAggregator()
	for _, audit := range audits {
		aggregator.Add(audit.Source, audit.FileStats)
	}

	return w.ui.DisplayAggregate(ctx, aggregator.Result())
}

func (w *workflow) stat(ctx context.Context, path m.Path) (m.Path, os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	abs, err := w.fs.AbsPath(ctx, path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %v", m.ErrInvalidPath, path, err)
	}

	info, err := w.fs.FileInfo(ctx, abs)
	if err != nil {
		slog.Error("Failed to stat path", "path", abs, "error", err)
		return "", nil, fmt.Errorf("%w: %s: %v", m.ErrInvalidPath, path, err)
	}

	return abs, info, nil
}

// loadSource validates that file is a readable source file and returns its
// absolute path and contents.
func (w *workflow) loadSource(ctx context.Context, file m.Path) (m.Path, string, error) {
	abs, info, err := w.stat(ctx, file)
	if err != nil {
		return "", "", err
	}

	if info.IsDir() {
		return "", "", fmt.Errorf("%w: %s is a directory", m.ErrInvalidPath, file)
	}

	if !w.isSource(string(abs)) {
		return "", "", fmt.Errorf("%w: %s", m.ErrUnsupportedFile, file)
	}

	content, err := w.fs.ReadFile(ctx, abs)
	if err != nil {
		slog.Error("Failed to read source file", "path", abs, "error", err)
		return "", "", fmt.Errorf("read %s: %w", file, err)
	}

	return abs, string(content), nil
}

func (w *workflow) locate(ctx context.Context, abs m.Path) (location, error) {
	root, err := w.fs.FindProjectRoot(ctx, abs)
	if err != nil {
		slog.Error("Failed to find project root", "path", abs, "error", err)
		return location{}, fmt.Errorf("locate %s: %w", abs, err)
	}

	rel, err := w.fs.RelPath(ctx, root, abs)
	if err != nil {
		return location{}, fmt.Errorf("relative path of %s: %w", abs, err)
	}

	return location{rel: rel}, nil
}

func (w *workflow) isSource(path string) bool {
	ext := filepath.Ext(path)

	for _, want := range w.cfg.Extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}

	return false
}

// collectFiles lists the source files under dir, skipping excluded directory
// names and files whose relative path matches an exclude pattern.
func (w *workflow) collectFiles(ctx context.Context, dir m.Path, exclude []string) ([]m.File, error) {
	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	excludedDirs := make(map[string]struct{}, len(w.cfg.ExcludeDirs))
	for _, name := range w.cfg.ExcludeDirs {
		excludedDirs[name] = struct{}{}
	}

	var files []m.File

	err = w.fs.Walk(ctx, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == string(dir) {
				return err
			}

			slog.Warn("Skipping unreadable path", "path", path, "error", err)

			return nil
		}

		if info.IsDir() {
			if _, skip := excludedDirs[info.Name()]; skip && path != string(dir) {
				return filepath.SkipDir
			}

			return nil
		}

		if !w.isSource(path) {
			return nil
		}

		rel, relErr := w.fs.RelPath(ctx, dir, m.Path(path))
		if relErr != nil {
			return relErr
		}

		if matchesAny(patterns, filepath.ToSlash(string(rel))) {
			return nil
		}

		files = append(files, m.File{ShortPath: rel, FullPath: m.Path(path)})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walk %s: %v", m.ErrInvalidPath, dir, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].ShortPath < files[j].ShortPath })

	return files, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}

	return false
}
