package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"artgallery/internal/catalog"
	"artgallery/internal/logging"
)

// State is the load lifecycle of a Store.
type State int

const (
	// StateEmpty is the initial state: no fetch issued, empty catalog.
	StateEmpty State = iota
	// StateLoading means the fetch task has been handed out and not completed.
	StateLoading
	// StateLoaded means the fetch and decode succeeded.
	StateLoaded
	// StateFailed means the fetch or decode failed; the catalog stays empty.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrLoadStarted is returned by Load when the store has already left StateEmpty.
var ErrLoadStarted = errors.New("catalog load already started")

// ErrNotLoading is returned by Complete when no load is outstanding.
var ErrNotLoading = errors.New("no catalog load in progress")

// Loader fetches and decodes the catalog.
type Loader interface {
	Fetch(ctx context.Context) (catalog.Catalog, error)
}

// Result is the outcome of a load Task.
type Result struct {
	RequestID string
	Catalog   catalog.Catalog
	Err       error
}

// Task performs the fetch for one load. It is safe to run on any goroutine
// and does not touch Store state.
type Task func() Result

// Store owns the catalog, the active filter text, and the derived view.
// It is not safe for concurrent use; see the package documentation.
type Store struct {
	loader Loader
	logger *slog.Logger

	state   State
	catalog catalog.Catalog
	filter  string
	view    []catalog.Artist
	lastErr error
}

// New creates an empty store backed by loader.
func New(loader Loader, logger *slog.Logger) *Store {
	return &Store{
		loader: loader,
		logger: logging.NewComponentLogger(logger, "store"),
		state:  StateEmpty,
	}
}

// State reports the current lifecycle state.
func (s *Store) State() State {
	return s.state
}

// Err returns the failure recorded by the last Complete, if any.
func (s *Store) Err() error {
	return s.lastErr
}

// Filter returns the active filter text.
func (s *Store) Filter() string {
	return s.filter
}

// Len returns the number of artists in the full catalog.
func (s *Store) Len() int {
	return s.catalog.Len()
}

// Load moves the store from Empty to Loading and returns the fetch task.
func (s *Store) Load(ctx context.Context) (Task, error) {
	if s.state != StateEmpty {
		return nil, ErrLoadStarted
	}
	if s.loader == nil {
		return nil, errors.New("store has no catalog loader")
	}
	s.state = StateLoading
	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)
	logger := logging.WithContext(ctx, s.logger)
	logger.Debug("catalog load started")

	loader := s.loader
	return func() Result {
		started := time.Now()
		c, err := loader.Fetch(ctx)
		logger.Debug("catalog request finished",
			logging.Duration("elapsed", time.Since(started)),
			logging.Bool("ok", err == nil),
		)
		return Result{RequestID: requestID, Catalog: c, Err: err}
	}, nil
}

// Complete applies a task result. It must run on the goroutine that owns the
// store. On failure the catalog stays empty, the error is logged, and the same
// error is returned for reporting.
func (s *Store) Complete(result Result) error {
	if s.state != StateLoading {
		return ErrNotLoading
	}
	if result.Err != nil {
		s.state = StateFailed
		s.lastErr = result.Err
		logging.ErrorWithContext(s.logger, "catalog load failed", "catalog_load_failed",
			logging.String(logging.FieldCorrelationID, result.RequestID),
			logging.String("kind", failureKind(result.Err)),
			logging.Error(result.Err),
			logging.String(logging.FieldErrorHint, "check catalog.url and network connectivity"),
		)
		return result.Err
	}

	s.catalog = result.Catalog.Clone()
	s.state = StateLoaded
	s.lastErr = nil
	s.recompute()
	s.logger.Info("catalog loaded",
		logging.String(logging.FieldCorrelationID, result.RequestID),
		logging.Int("artists", s.catalog.Len()),
		logging.String(logging.FieldEventType, "catalog_loaded"),
	)
	return nil
}

// LoadSync runs a complete load on the calling goroutine.
func (s *Store) LoadSync(ctx context.Context) error {
	task, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return s.Complete(task())
}

// SetFilter replaces the filter text and recomputes the view from the full
// catalog. Matching is case-insensitive substring on artist names.
func (s *Store) SetFilter(text string) {
	s.filter = text
	s.recompute()
}

// CurrentView returns the artists matching the active filter, in catalog
// order. The returned slice is a copy.
func (s *Store) CurrentView() []catalog.Artist {
	out := make([]catalog.Artist, len(s.view))
	for i, artist := range s.view {
		out[i] = artist.Clone()
	}
	return out
}

func (s *Store) recompute() {
	s.view = Apply(s.catalog.Artists, s.filter)
}
