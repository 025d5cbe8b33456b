package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "doccov.dev/pkg/doccov/internal/model"
)

// StatsFileSuffix is appended to a source file's base name for its stored stats.
const StatsFileSuffix = "_audit.json"

// StoredAudit is the stats payload persisted next to a file's audit report.
type StoredAudit struct {
	Source m.Path `json:"source"`
	m.FileStats
}

// ReportStore persists rendered reports and per-file statistics.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, content string) error
	SaveStats(ctx context.Context, path m.Path, audit StoredAudit) error
	// LoadStats reads every stored stats file under root. Payloads that fail
	// to decode are returned as skipped errors wrapping m.ErrMalformedStats.
	LoadStats(ctx context.Context, root m.Path) ([]StoredAudit, []error, error)
}

type localReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore returns a ReportStore writing through fsAdapter.
func NewReportStore(fsAdapter SourceFSAdapter) ReportStore {
	return &localReportStore{fs: fsAdapter}
}

func (s *localReportStore) SaveReport(ctx context.Context, path m.Path, content string) error {
	if err := s.fs.WriteFile(ctx, path, []byte(content), 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (s *localReportStore) SaveStats(ctx context.Context, path m.Path, audit StoredAudit) error {
	payload, err := json.MarshalIndent(audit, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats for %s: %w", audit.Source, err)
	}

	if err := s.fs.WriteFile(ctx, path, payload, 0o600); err != nil {
		slog.Error("Failed to write stats", "path", path, "error", err)
		return fmt.Errorf("write stats %s: %w", path, err)
	}

	return nil
}

func (s *localReportStore) LoadStats(ctx context.Context, root m.Path) ([]StoredAudit, []error, error) {
	var (
		audits  []StoredAudit
		skipped []error
	)

	err := s.fs.Walk(ctx, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == string(root) {
				return err
			}

			skipped = append(skipped, fmt.Errorf("read %s: %w", path, err))

			return nil
		}

		if info.IsDir() || !strings.HasSuffix(path, StatsFileSuffix) {
			return nil
		}

		audit, decodeErr := s.decode(ctx, m.Path(path))
		if decodeErr != nil {
			slog.Warn("Skipping stats file", "path", path, "error", decodeErr)
			skipped = append(skipped, decodeErr)

			return nil
		}

		audits = append(audits, audit)

		return nil
	})
	if err != nil {
		return nil, skipped, fmt.Errorf("load stats from %s: %w", root, err)
	}

	sort.Slice(audits, func(i, j int) bool { return audits[i].Source < audits[j].Source })

	return audits, skipped, nil
}

func (s *localReportStore) decode(ctx context.Context, path m.Path) (StoredAudit, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return StoredAudit{}, fmt.Errorf("read %s: %w", path, err)
	}

	var audit StoredAudit
	if err := json.Unmarshal(data, &audit); err != nil {
		return StoredAudit{}, fmt.Errorf("%w: %s: %v", m.ErrMalformedStats, path, err)
	}

	if audit.Source == "" {
		audit.Source = m.Path(strings.TrimSuffix(filepath.Base(string(path)), StatsFileSuffix))
	}

	if audit.DocumentedItems > audit.TotalItems || audit.TotalItems < 0 || audit.DocumentedItems < 0 {
		return StoredAudit{}, fmt.Errorf("%w: %s: documented %d of %d items",
			m.ErrMalformedStats, path, audit.DocumentedItems, audit.TotalItems)
	}

	return audit, nil
}
