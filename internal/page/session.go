package page

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/inovacc/activeforks/internal/forks"
	"github.com/inovacc/activeforks/internal/giturl"
)

// Fetcher is the API the page reads from.
type Fetcher interface {
	FetchOrigin(ctx context.Context, id giturl.RepoID) (forks.Repository, error)
	FetchForks(ctx context.Context, id giturl.RepoID) ([]forks.Repository, error)
}

// Config configures a Session.
type Config struct {
	Fetcher   Fetcher
	Location  Location        // defaults to an empty History
	Logger    *slog.Logger    // defaults to slog.Default()
	Humanizer forks.Humanizer // defaults to forks.RelativeTime
}

// Session is the page state. It is not safe for concurrent use: callers
// apply results from a single goroutine (the TUI update loop) or through Run.
type Session struct {
	ctx       context.Context
	fetcher   Fetcher
	location  Location
	logger    *slog.Logger
	humanizer forks.Humanizer

	query  string
	origin *forks.Repository
	table  *forks.Table
	alert  *forks.Alert

	generation uint64
	pending    int
	cancel     context.CancelFunc
}

// NewSession creates an empty page. ctx bounds every fetch the session
// starts.
func NewSession(ctx context.Context, cfg Config) *Session {
	if cfg.Location == nil {
		cfg.Location = &History{}
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Humanizer == nil {
		cfg.Humanizer = forks.RelativeTime{}
	}

	return &Session{
		ctx:       ctx,
		fetcher:   cfg.Fetcher,
		location:  cfg.Location,
		logger:    cfg.Logger,
		humanizer: cfg.Humanizer,
		table:     forks.NewTable(),
	}
}

// Load restores the query from the location and returns the fetches for
// it, or nil when the location carries no query.
func (s *Session) Load() []Task {
	fragment := s.location.Fragment()
	if fragment == "" {
		return nil
	}

	s.logger.Debug("restoring query from location", slog.String("query", fragment))

	return s.Submit(fragment)
}

// Submit validates input, syncs the location and returns the origin and
// forks fetches. Invalid input shows a danger alert and returns nil.
// Either way, fetches from earlier submissions are cancelled and their
// results will be dropped by Apply.
func (s *Session) Submit(input string) []Task {
	s.query = input
	s.supersede()

	id, err := giturl.ParseRepoID(input)
	if err != nil {
		s.logger.Warn("rejected query", slog.String("query", input), slog.String("error", err.Error()))
		s.showAlert(forks.Alert{Severity: forks.SeverityDanger, Message: giturl.InvalidRepoMessage})

		return nil
	}

	normalized := id.String()
	s.query = normalized

	if s.location.Fragment() != normalized {
		s.location.PushFragment(normalized)
	}

	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	s.pending = 2

	submission := uuid.NewString()
	s.logger.Info("fetching repository",
		slog.String("repo", normalized),
		slog.String("submission", submission),
		slog.Uint64("generation", s.generation),
	)

	base := Task{Repo: id, Generation: s.generation, SubmissionID: submission, ctx: ctx, fetcher: s.fetcher}
	origin, forksTask := base, base
	origin.Kind = TaskOrigin
	forksTask.Kind = TaskForks

	return []Task{origin, forksTask}
}

// Apply records a finished fetch. Results from a superseded submission are
// dropped and Apply returns false.
func (s *Session) Apply(r Result) bool {
	log := s.logger.With(
		slog.String("fetch", r.Task.Kind.String()),
		slog.String("repo", r.Task.Repo.String()),
		slog.String("submission", r.Task.SubmissionID),
	)

	if r.Task.Generation != s.generation {
		log.Debug("dropping superseded result", slog.Uint64("generation", r.Task.Generation))
		return false
	}

	if s.pending > 0 {
		s.pending--
	}

	if s.pending == 0 && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if r.Err != nil {
		log.Error("fetch failed", slog.String("error", r.Err.Error()))
		s.showAlert(forks.FetchAlert(r.Err))

		return true
	}

	switch r.Task.Kind {
	case TaskOrigin:
		origin := r.Origin
		s.origin = &origin
		log.Info("origin loaded")
	case TaskForks:
		s.table.SetRecords(r.Forks)
		s.alert = nil
		log.Info("forks loaded", slog.Int("count", len(r.Forks)))
	}

	return true
}

// Close cancels any fetch still in flight.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) supersede() {
	s.Close()
	s.generation++
	s.pending = 0
}

// showAlert replaces the current notice; at most one is shown.
func (s *Session) showAlert(a forks.Alert) {
	s.alert = &a
}

// Query is the current content of the query input.
func (s *Session) Query() string {
	return s.query
}

// Location returns where the query is reflected.
func (s *Session) Location() Location {
	return s.location
}

// Origin is the last successfully fetched origin, or nil.
func (s *Session) Origin() *forks.Repository {
	return s.origin
}

// OriginFields is the origin panel content, or nil before the first
// successful origin fetch.
func (s *Session) OriginFields() []forks.Field {
	if s.origin == nil {
		return nil
	}

	return forks.OriginFields(*s.origin)
}

// Table is the fork table.
func (s *Session) Table() *forks.Table {
	return s.table
}

// Cells renders the visible page of the table for display.
func (s *Session) Cells() [][]forks.Cell {
	rows := s.table.Visible()
	out := make([][]forks.Cell, len(rows))

	for i, row := range rows {
		out[i] = forks.DisplayRow(s.table.Columns(), row, s.origin, s.humanizer)
	}

	return out
}

// Alert is the notice currently shown in place of the results, or nil.
func (s *Session) Alert() *forks.Alert {
	return s.alert
}

// DismissAlert closes the current notice.
func (s *Session) DismissAlert() {
	s.alert = nil
}

// Loading reports whether fetches of the current submission are pending.
func (s *Session) Loading() bool {
	return s.pending > 0
}

// Generation identifies the current submission.
func (s *Session) Generation() uint64 {
	return s.generation
}
