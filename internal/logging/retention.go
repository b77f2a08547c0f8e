package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PruneSessionLogs removes session log files in dir last written more than
// retentionDays ago and returns how many were removed. keep, usually the file
// the current run writes, is never removed. A retentionDays of zero or less
// disables pruning. Failures are logged and skipped.
func PruneSessionLogs(logger *slog.Logger, dir string, retentionDays int, keep string) int {
	dir = strings.TrimSpace(dir)
	if retentionDays <= 0 || dir == "" {
		return 0
	}
	if logger == nil {
		logger = NewNop()
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	removed := 0
	for _, path := range staleSessionLogs(dir, cutoff, absPath(keep)) {
		if err := os.Remove(path); err != nil {
			WarnWithContext(logger, "log retention remove failed; file remains", "log_retention_failed",
				String("path", path),
				Error(err),
				String(FieldErrorHint, "check file permissions on logging.dir"),
				String(FieldImpact, "old log file remains on disk"),
			)
			continue
		}
		removed++
	}
	if removed > 0 {
		logger.Info("old session logs pruned",
			Int("removed", removed),
			Int("retention_days", retentionDays),
			String(FieldEventType, "log_pruned"),
		)
	}
	return removed
}

// staleSessionLogs lists files matching LogFilePattern modified before cutoff.
func staleSessionLogs(dir string, cutoff time.Time, keep string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, LogFilePattern))
	if err != nil {
		return nil
	}
	var stale []string
	for _, path := range matches {
		path = absPath(path)
		if path == keep {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || !info.ModTime().Before(cutoff) {
			continue
		}
		stale = append(stale, path)
	}
	return stale
}

func absPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
