// Package logs reads the session log files the browser writes.
//
// The interactive browser owns the terminal, so its log records only reach
// disk. This package finds the newest session file, returns its last lines
// with bounded memory, and follows appended lines until the caller's context
// ends.
package logs
