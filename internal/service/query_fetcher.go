package service

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"vitalsync/internal/domain/entity"
	"vitalsync/internal/infrastructure/backend"
	"vitalsync/internal/observability/metrics"
)

// =============================================================================
// Types
// =============================================================================

type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
)

// FetchMeta describes where a result page came from.
type FetchMeta struct {
	Key       string    `json:"key"`
	Source    Source    `json:"source"`
	Cached    bool      `json:"cached"`
	FetchedAt time.Time `json:"fetchedAt"`
}

type FetchResult[T any] struct {
	Page entity.ResultPage[T]
	Meta FetchMeta
}

// RemoteFunc loads one page from the backend.
type RemoteFunc[C, T any] func(ctx context.Context, criteria C) (entity.ResultPage[T], error)

// FallbackFunc computes one page from the local catalog. It must not fail.
type FallbackFunc[C, T any] func(criteria C) entity.ResultPage[T]

type QueryFetcherConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

// QueryFetcher turns criteria into a result page: cached by the serialized
// criteria, deduplicated while in flight, remote first with a local fallback.
type QueryFetcher[C, T any] struct {
	feature  string
	key      func(C) string
	remote   RemoteFunc[C, T]
	fallback FallbackFunc[C, T]

	cache   *expirable.LRU[string, FetchResult[T]]
	group   singleflight.Group
	log     *logrus.Logger
	metrics *metrics.FetchMetrics
	now     func() time.Time
}

// =============================================================================
// Constructor
// =============================================================================

func NewQueryFetcher[C, T any](
	feature string,
	key func(C) string,
	remote RemoteFunc[C, T],
	fallback FallbackFunc[C, T],
	cfg QueryFetcherConfig,
	log *logrus.Logger,
	m *metrics.FetchMetrics,
) *QueryFetcher[C, T] {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &QueryFetcher[C, T]{
		feature:  feature,
		key:      key,
		remote:   remote,
		fallback: fallback,
		cache:    expirable.NewLRU[string, FetchResult[T]](cfg.CacheSize, nil, cfg.CacheTTL),
		log:      log,
		metrics:  m,
		now:      time.Now,
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Fetch never fails. A cancelled ctx yields an uncached fallback page while
// the shared load keeps running for other callers.
func (f *QueryFetcher[C, T]) Fetch(ctx context.Context, criteria C) FetchResult[T] {
	start := time.Now()
	key := f.key(criteria)

	if cached, ok := f.cache.Get(key); ok {
		cached.Meta.Cached = true
		f.metrics.ObserveFetch(f.feature, "cache", time.Since(start))
		return cached
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := f.group.DoChan(key, func() (any, error) {
		return f.load(loadCtx, key, criteria), nil
	})

	select {
	case res := <-ch:
		result := res.Val.(FetchResult[T])
		f.metrics.ObserveFetch(f.feature, string(result.Meta.Source), time.Since(start))
		return result
	case <-ctx.Done():
		f.log.Debugf("%s fetch for %q abandoned: %v", f.feature, key, ctx.Err())
		return FetchResult[T]{
			Page: f.fallback(criteria),
			Meta: FetchMeta{Key: key, Source: SourceFallback, FetchedAt: f.now()},
		}
	}
}

// Invalidate drops every cached page.
func (f *QueryFetcher[C, T]) Invalidate() {
	f.cache.Purge()
}

// =============================================================================
// Private Methods
// =============================================================================

func (f *QueryFetcher[C, T]) load(ctx context.Context, key string, criteria C) FetchResult[T] {
	result := FetchResult[T]{Meta: FetchMeta{Key: key, FetchedAt: f.now()}}

	page, err := f.remote(ctx, criteria)
	if err == nil {
		result.Page = page
		result.Meta.Source = SourceRemote
	} else {
		kind := backend.Kind(err)
		f.metrics.ObserveBackendError(f.feature, kind)
		if kind == "disabled" {
			f.log.Debugf("Serving local %s catalog", f.feature)
		} else {
			f.log.Warnf("Falling back to local %s catalog: %+v", f.feature, err)
		}
		result.Page = f.fallback(criteria)
		result.Meta.Source = SourceFallback
	}

	f.cache.Add(key, result)
	return result
}
