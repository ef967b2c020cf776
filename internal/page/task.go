package page

import (
	"context"
	"errors"
	"sync"

	"github.com/inovacc/activeforks/internal/forks"
	"github.com/inovacc/activeforks/internal/giturl"
	"golang.org/x/sync/errgroup"
)

// TaskKind tells which view a fetch feeds.
type TaskKind int

const (
	TaskOrigin TaskKind = iota
	TaskForks
)

func (k TaskKind) String() string {
	switch k {
	case TaskOrigin:
		return "origin"
	case TaskForks:
		return "forks"
	}

	return "unknown"
}

// Task is one fetch of a submission. Tasks are independent: running one
// never waits on the other.
type Task struct {
	Kind         TaskKind
	Repo         giturl.RepoID
	Generation   uint64
	SubmissionID string

	ctx     context.Context
	fetcher Fetcher
}

// Result is the outcome of a Task.
type Result struct {
	Task   Task
	Origin forks.Repository
	Forks  []forks.Repository
	Err    error
}

// Do performs the fetch. It blocks until the request completes or the
// submission is superseded.
func (t Task) Do() Result {
	ctx := t.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	if t.fetcher == nil {
		return Result{Task: t, Err: errors.New("no fetcher configured")}
	}

	res := Result{Task: t}

	switch t.Kind {
	case TaskOrigin:
		res.Origin, res.Err = t.fetcher.FetchOrigin(ctx, t.Repo)
	case TaskForks:
		res.Forks, res.Err = t.fetcher.FetchForks(ctx, t.Repo)
	default:
		res.Err = errors.New("unknown task kind " + t.Kind.String())
	}

	return res
}

// Run performs tasks concurrently and applies each result as it completes.
// A failed fetch does not stop the others; every failure is logged and
// shown by Apply, and Run returns the first one.
func (s *Session) Run(tasks []Task) error {
	var (
		mu sync.Mutex
		g  errgroup.Group
	)

	for _, t := range tasks {
		g.Go(func() error {
			res := t.Do()

			mu.Lock()
			defer mu.Unlock()

			if !s.Apply(res) {
				return nil
			}

			return res.Err
		})
	}

	return g.Wait()
}
