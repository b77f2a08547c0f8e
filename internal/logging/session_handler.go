package logging

import (
	"context"
	"log/slog"
)

// FieldSessionID identifies one process run. Several runs share a dated log
// file, so every record carries it.
const FieldSessionID = "session_id"

// FieldCommand names the CLI command that started the run.
const FieldCommand = "command"

// sessionHandler appends run-level attributes to every record. Like other
// record attributes they land inside any open group.
type sessionHandler struct {
	base  slog.Handler
	stamp []slog.Attr
}

func newSessionHandler(base slog.Handler, sessionID string, extra ...slog.Attr) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	stamp := make([]slog.Attr, 0, len(extra)+1)
	stamp = append(stamp, slog.String(FieldSessionID, sessionID))
	for _, attr := range extra {
		if attr.Key != "" {
			stamp = append(stamp, attr)
		}
	}
	return &sessionHandler{base: base, stamp: stamp}
}

func (h *sessionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *sessionHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(h.stamp...)
	return h.base.Handle(ctx, record)
}

func (h *sessionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sessionHandler{base: h.base.WithAttrs(attrs), stamp: h.stamp}
}

func (h *sessionHandler) WithGroup(name string) slog.Handler {
	return &sessionHandler{base: h.base.WithGroup(name), stamp: h.stamp}
}
