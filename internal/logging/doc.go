// Package logging assembles structured slog loggers and formatting helpers used
// across artgallery.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and stamps every record with a per-process session identifier so
// the log file of an interactive session can be correlated after the fact. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Interactive sessions must not write to the terminal the UI draws on, so
// NewFromConfig routes them to the log file only.
package logging
