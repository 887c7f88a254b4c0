package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"vitalsync/internal/domain/entity"
)

// CriteriaStore is the part of a filter store an Explorer depends on.
type CriteriaStore[C any] interface {
	Criteria() C
	SetPage(page int)
	Subscribe(fn func(C)) func()
}

// Fetcher produces a result page for criteria and never fails.
type Fetcher[C, T any] interface {
	Fetch(ctx context.Context, criteria C) FetchResult[T]
}

// Snapshot is the observable state of an Explorer. Loading is set while the
// first page is in flight; Refreshing while a later page is in flight and the
// previous Result is still shown as a placeholder.
type Snapshot[C, T any] struct {
	Criteria   C                     `json:"criteria"`
	Result     *entity.ResultPage[T] `json:"result,omitempty"`
	Meta       *FetchMeta            `json:"meta,omitempty"`
	Loading    bool                  `json:"loading"`
	Refreshing bool                  `json:"refreshing"`
}

type ExplorerOption[C any] func(*explorerOptions[C])

type explorerOptions[C any] struct {
	pageOf func(C) int
}

// WithPageClamp snaps the store back to the last page when a result reports
// fewer pages than the page pageOf reads from the criteria.
func WithPageClamp[C any](pageOf func(C) int) ExplorerOption[C] {
	return func(o *explorerOptions[C]) { o.pageOf = pageOf }
}

// Explorer refetches whenever its store changes. Only the most recent
// request may update the result; earlier responses are discarded.
type Explorer[C, T any] struct {
	store   CriteriaStore[C]
	fetcher Fetcher[C, T]
	opts    explorerOptions[C]
	log     *logrus.Logger

	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	criteria C
	result   *FetchResult[T]
	inFlight bool
	idle     chan struct{}
	closed   bool

	unsubscribe func()
	wg          sync.WaitGroup
}

// NewExplorer subscribes to store and starts the first fetch.
func NewExplorer[C, T any](store CriteriaStore[C], fetcher Fetcher[C, T], log *logrus.Logger, opts ...ExplorerOption[C]) *Explorer[C, T] {
	e := &Explorer[C, T]{
		store:   store,
		fetcher: fetcher,
		log:     log,
		idle:    make(chan struct{}),
	}
	close(e.idle)
	for _, opt := range opts {
		opt(&e.opts)
	}

	e.unsubscribe = store.Subscribe(e.onChange)
	e.onChange(store.Criteria())
	return e
}

// Snapshot returns the current state.
func (e *Explorer[C, T]) Snapshot() Snapshot[C, T] {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot[C, T]{Criteria: e.criteria}
	if e.result != nil {
		page := e.result.Page
		meta := e.result.Meta
		snap.Result = &page
		snap.Meta = &meta
	}
	snap.Loading = e.inFlight && e.result == nil
	snap.Refreshing = e.inFlight && e.result != nil
	return snap
}

// Await blocks until no fetch is in flight or ctx is done.
func (e *Explorer[C, T]) Await(ctx context.Context) error {
	e.mu.Lock()
	idle := e.idle
	e.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops listening to the store and cancels the in-flight fetch.
func (e *Explorer[C, T]) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	if e.cancel != nil {
		e.cancel()
	}
	e.mu.Unlock()

	e.unsubscribe()
	e.wg.Wait()
}

func (e *Explorer[C, T]) onChange(criteria C) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	if e.cancel != nil {
		e.cancel()
	}
	e.seq++
	seq := e.seq
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.criteria = criteria
	if !e.inFlight {
		e.inFlight = true
		e.idle = make(chan struct{})
	}
	e.wg.Add(1)
	e.mu.Unlock()

	go e.run(ctx, seq, criteria)
}

func (e *Explorer[C, T]) run(ctx context.Context, seq uint64, criteria C) {
	defer e.wg.Done()

	result := e.fetcher.Fetch(ctx, criteria)

	e.mu.Lock()
	if seq != e.seq || e.closed {
		e.mu.Unlock()
		e.log.Debugf("Discarding stale result for %q", result.Meta.Key)
		return
	}

	totalPages := result.Page.TotalPages
	if e.opts.pageOf != nil && e.opts.pageOf(criteria) > totalPages {
		e.mu.Unlock()
		e.store.SetPage(totalPages)
		return
	}

	e.result = &result
	e.inFlight = false
	close(e.idle)
	e.mu.Unlock()
}
