// Package catalog loads the categorized menu from the ordering service.
package catalog

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"storefront/internal/domain"
)

// Phase is the loader's lifecycle position. The zero value is Idle.
type Phase int

const (
	Idle Phase = iota
	Pending
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// State is a snapshot of the loader. Catalog is set only when Phase is
// Succeeded; Err only when Failed. Illegal combinations (loading with an
// error set, say) are unrepresentable.
type State struct {
	Phase   Phase
	Catalog []domain.CatalogCategory
	Err     error
}

// Fetcher is the slice of the ordering client the loader needs.
type Fetcher interface {
	FetchCatalog(ctx context.Context) ([]domain.CatalogCategory, error)
}

// Loader fetches the catalog with at most one request in flight. Concurrent
// callers join the pending fetch and share its result. A caller abandoning
// the wait detaches silently; when the last waiter detaches the underlying
// request is aborted and no state transition is published.
type Loader struct {
	client Fetcher
	logger *zap.Logger

	mu      sync.Mutex
	pending *call
	last    State
}

type call struct {
	done    chan struct{}
	cancel  context.CancelFunc
	waiters int
	catalog []domain.CatalogCategory
	err     error
}

func NewLoader(client Fetcher, logger *zap.Logger) *Loader {
	return &Loader{client: client, logger: logger}
}

// Load returns the catalog, starting a fetch unless one is already in
// flight. ctx covers this caller's wait only: cancelling it detaches the
// caller without failing the shared fetch, unless no other waiter remains.
func (l *Loader) Load(ctx context.Context) ([]domain.CatalogCategory, error) {
	l.mu.Lock()
	c := l.pending
	if c == nil {
		runCtx, cancel := context.WithCancel(context.Background())
		c = &call{done: make(chan struct{}), cancel: cancel}
		l.pending = c
		l.last = State{Phase: Pending}
		go l.run(runCtx, c)
	}
	c.waiters++
	l.mu.Unlock()

	select {
	case <-c.done:
		return c.catalog, c.err
	case <-ctx.Done():
		l.detach(c)
		return nil, ctx.Err()
	}
}

// State reports the last settled state. An aborted fetch leaves it as it
// was before the fetch began.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

func (l *Loader) run(ctx context.Context, c *call) {
	defer c.cancel()
	catalog, err := l.client.FetchCatalog(ctx)

	l.mu.Lock()
	if l.pending == c {
		l.pending = nil
	}
	aborted := errors.Is(err, context.Canceled)
	if !aborted {
		if err != nil {
			l.last = State{Phase: Failed, Err: err}
		} else {
			l.last = State{Phase: Succeeded, Catalog: catalog}
		}
	} else if l.last.Phase == Pending {
		l.last = State{Phase: Idle}
	}
	l.mu.Unlock()

	if aborted {
		l.logger.Debug("menu fetch aborted before completion")
	} else if err != nil {
		l.logger.Warn("menu fetch failed", zap.Error(err))
	}

	c.catalog, c.err = catalog, err
	close(c.done)
}

func (l *Loader) detach(c *call) {
	l.mu.Lock()
	c.waiters--
	if c.waiters == 0 && l.pending == c {
		l.pending = nil
		c.cancel()
	}
	l.mu.Unlock()
}
