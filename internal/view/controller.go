// Package view owns the per-page data lifecycle: every dashboard area
// has one controller that loads records for the selected branch,
// substitutes the sample dataset when the remote store fails or is
// empty, and discards results that a newer branch selection has
// superseded.
package view

import (
	"context"
	"sync"

	"marvelous/internal/branch"
	"marvelous/internal/logging"
)

// Status is the page-visible loading state. A failed fetch still
// lands in StatusReady: the page shows fallback records plus an error
// banner rather than a dead end.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Outcome is the result of resolving one load: either remote rows, or
// a wholesale substitution by the filtered sample set. Records are
// never a mix of both sources.
type Outcome[T any] struct {
	Records      []T
	ErrorMessage string
	FromFallback bool
}

// Snapshot is the read model a page renders from.
type Snapshot[T any] struct {
	Status       Status
	Records      []T
	ErrorMessage string
	FromFallback bool
	Selector     branch.Selector
	Generation   uint64
}

// FetchFunc loads records for a selector from the remote store. The
// store filters concrete selectors server side, so the result needs
// no further narrowing.
type FetchFunc[T any] func(ctx context.Context, sel branch.Selector) ([]T, error)

// SampleFunc returns the area's built-in dataset, selector-agnostic.
type SampleFunc[T any] func() []T

// Controller drives one area's records through
// Idle -> Loading -> Ready. All methods are safe for concurrent use;
// Resolve does its blocking work without holding the lock.
type Controller[T any] struct {
	name   string
	fetch  FetchFunc[T] // nil when the area has no remote path
	sample SampleFunc[T]
	filter func([]T, branch.Selector) []T

	mu           sync.Mutex
	status       Status
	gen          uint64
	sel          branch.Selector
	records      []T
	errorMessage string
	fromFallback bool
}

// NewRegional builds a controller whose sample records carry a branch
// tag, narrowed with the standard branch filter. fetch may be nil for
// areas served purely by samples.
func NewRegional[T branch.Regional](name string, fetch FetchFunc[T], sample SampleFunc[T]) *Controller[T] {
	return &Controller[T]{
		name:   name,
		fetch:  fetch,
		sample: sample,
		filter: branch.Filter[T],
		sel:    branch.Global,
	}
}

// NewShared builds a controller for records shared group-wide, where
// every selector sees the same rows.
func NewShared[T any](name string, sample SampleFunc[T]) *Controller[T] {
	return &Controller[T]{
		name:   name,
		sample: sample,
		filter: func(records []T, _ branch.Selector) []T { return records },
		sel:    branch.Global,
	}
}

// Begin starts a load for the given selector and returns the
// generation token the eventual Commit must present. Starting a new
// load supersedes any in-flight one.
func (c *Controller[T]) Begin(sel branch.Selector) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.status = StatusLoading
	c.sel = sel
	logging.FetchDebug("%s: begin gen=%d sel=%s", c.name, c.gen, sel)
	return c.gen
}

// Resolve performs the fetch-or-fallback work for one generation. It
// holds no lock, so a slow remote call never blocks Begin or
// Snapshot. The outcome rules:
//
//   - no remote path          -> filtered samples, no error
//   - remote error            -> filtered samples, one-line error
//   - remote ok, empty result -> filtered samples, NO error
//   - remote ok, rows         -> rows as-is
func (c *Controller[T]) Resolve(ctx context.Context, gen uint64, sel branch.Selector) Outcome[T] {
	if c.fetch == nil {
		return Outcome[T]{Records: c.filter(c.sample(), sel), FromFallback: true}
	}

	records, err := c.fetch(ctx, sel)
	if err != nil {
		logging.Fallback("%s: remote failed, serving samples: %v", c.name, err)
		return Outcome[T]{
			Records:      c.filter(c.sample(), sel),
			ErrorMessage: "Connexion au serveur impossible. Données de démonstration affichées.",
			FromFallback: true,
		}
	}
	if len(records) == 0 {
		logging.Fallback("%s: remote empty, serving samples", c.name)
		return Outcome[T]{Records: c.filter(c.sample(), sel), FromFallback: true}
	}
	return Outcome[T]{Records: records}
}

// Commit publishes an outcome if its generation is still current.
// Stale generations are discarded wholesale and leave the state
// untouched, so a superseded branch can never overwrite the current
// selection.
func (c *Controller[T]) Commit(gen uint64, out Outcome[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		logging.FetchDebug("%s: drop stale gen=%d (current %d)", c.name, gen, c.gen)
		return false
	}
	c.status = StatusReady
	c.records = out.Records
	c.errorMessage = out.ErrorMessage
	c.fromFallback = out.FromFallback
	return true
}

// Refresh runs the full Begin/Resolve/Commit cycle synchronously and
// reports whether the result was committed.
func (c *Controller[T]) Refresh(ctx context.Context, sel branch.Selector) bool {
	gen := c.Begin(sel)
	out := c.Resolve(ctx, gen, sel)
	return c.Commit(gen, out)
}

// Snapshot returns a copy of the current state. The records slice is
// copied so pages can sort or slice it freely.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := make([]T, len(c.records))
	copy(records, c.records)
	return Snapshot[T]{
		Status:       c.status,
		Records:      records,
		ErrorMessage: c.errorMessage,
		FromFallback: c.fromFallback,
		Selector:     c.sel,
		Generation:   c.gen,
	}
}
