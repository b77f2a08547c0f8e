package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"artgallery/internal/config"
)

const logFilePrefix = "artgallery"

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	OutputPaths []string
	Development bool
	// SessionID, when set, is attached to every record as session_id.
	SessionID string
}

// Destination selects where NewFromConfig routes records.
type Destination int

const (
	// FileOnly writes to the session log file only. The interactive browser
	// uses it because the terminal belongs to the UI.
	FileOnly Destination = iota
	// StderrAndFile also mirrors warnings and errors to stderr in console
	// format (all levels when running at debug).
	StderrAndFile
)

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	writer, err := openWriters(defaultSlice(opts.OutputPaths, []string{"stderr"}))
	if err != nil {
		return nil, err
	}

	handler, err := buildHandler(opts.Format, writer, levelVar, opts.Development || level <= slog.LevelDebug)
	if err != nil {
		return nil, err
	}
	if opts.SessionID != "" {
		handler = newSessionHandler(handler, opts.SessionID)
	}
	return slog.New(handler), nil
}

// NewFromConfig creates a logger writing to a dated file under the configured
// log directory. It returns the logger and the path of the file in use so the
// caller can exclude it from retention. Every record carries a fresh
// session_id plus the given run attributes.
func NewFromConfig(cfg *config.Config, dest Destination, run ...Attr) (*slog.Logger, string, error) {
	if cfg == nil {
		logger, err := New(Options{Level: "info", Format: "console", OutputPaths: []string{"stderr"}})
		return logger, "", err
	}

	if err := os.MkdirAll(cfg.Logging.Dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("ensure log directory: %w", err)
	}
	logPath := LogFilePath(cfg.Logging.Dir, time.Now())
	fileWriter, err := openWriters([]string{logPath})
	if err != nil {
		return nil, "", err
	}

	level := parseLevel(cfg.Logging.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)
	addSource := level <= slog.LevelDebug

	fileHandler, err := buildHandler(cfg.Logging.Format, fileWriter, levelVar, addSource)
	if err != nil {
		return nil, "", err
	}
	handlers := []slog.Handler{fileHandler}
	if dest == StderrAndFile {
		stderrLevel := slog.LevelWarn
		if level <= slog.LevelDebug {
			stderrLevel = level
		}
		handlers = append(handlers, newPrettyHandler(os.Stderr, stderrLevel, addSource))
	}

	handler := newSessionHandler(newFanoutHandler(handlers...), uuid.NewString(), run...)
	return slog.New(handler), logPath, nil
}

// LogFilePath returns the dated log file used for sessions started at now.
func LogFilePath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.log", logFilePrefix, now.Format("20060102")))
}

// LogFilePattern matches every file LogFilePath produces.
const LogFilePattern = logFilePrefix + "-*.log"

func buildHandler(format string, w io.Writer, level slog.Leveler, addSource bool) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return newJSONHandler(w, level, addSource), nil
	case "console", "":
		return newPrettyHandler(w, level, addSource), nil
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", format)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultSlice(value []string, fallback []string) []string {
	if len(value) == 0 {
		value = fallback
	}
	cp := make([]string, len(value))
	copy(cp, value)
	return cp
}

func openWriters(paths []string) (io.Writer, error) {
	seen := map[string]struct{}{}
	var writers []io.Writer

	for _, path := range paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}

		switch trimmed {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			if dir := filepath.Dir(trimmed); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, fmt.Errorf("ensure log directory: %w", err)
				}
			}
			file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
			if err != nil {
				return nil, fmt.Errorf("open log file %s: %w", trimmed, err)
			}
			writers = append(writers, file)
		}
	}

	switch len(writers) {
	case 0:
		return os.Stderr, nil
	case 1:
		return writers[0], nil
	default:
		return io.MultiWriter(writers...), nil
	}
}
