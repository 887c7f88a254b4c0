package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalsync/internal/catalog"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/infrastructure/seed"
	"vitalsync/internal/store"
)

// gatedFetcher serves the local catalog but holds requests whose search text
// has a gate until it is released.
type gatedFetcher struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
}

func (g *gatedFetcher) gate(search string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gates == nil {
		g.gates = map[string]chan struct{}{}
	}
	ch := make(chan struct{})
	g.gates[search] = ch
	return ch
}

func (g *gatedFetcher) Fetch(ctx context.Context, c entity.MedicineFilter) FetchResult[entity.Medicine] {
	g.mu.Lock()
	ch := g.gates[c.Search]
	g.mu.Unlock()
	if ch != nil {
		<-ch
	}
	return FetchResult[entity.Medicine]{
		Page: catalog.FilterMedicines(seed.Medicines(), c),
		Meta: FetchMeta{Key: c.CacheKey(), Source: SourceRemote},
	}
}

func awaitIdle(t *testing.T, wait func(context.Context) error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, wait(ctx))
}

func TestExplorerInitialLoad(t *testing.T) {
	s := store.NewMedicineFilterStore()
	e := NewExplorer[entity.MedicineFilter, entity.Medicine](s, &gatedFetcher{}, quietLogger())
	defer e.Close()

	awaitIdle(t, e.Await)

	snap := e.Snapshot()
	require.NotNil(t, snap.Result)
	assert.False(t, snap.Loading)
	assert.False(t, snap.Refreshing)
	assert.Equal(t, 2, snap.Result.Total)
}

func TestExplorerLastRequestWins(t *testing.T) {
	fetcher := &gatedFetcher{}
	slow := fetcher.gate("paracetamol")

	s := store.NewMedicineFilterStore()
	e := NewExplorer[entity.MedicineFilter, entity.Medicine](s, fetcher, quietLogger())
	defer e.Close()
	awaitIdle(t, e.Await)

	s.SetSearch("paracetamol")
	snap := e.Snapshot()
	assert.True(t, snap.Refreshing)
	require.NotNil(t, snap.Result)
	assert.Equal(t, 2, snap.Result.Total)

	s.SetSearch("tempra")
	awaitIdle(t, e.Await)
	assert.Equal(t, "tempra", e.Snapshot().Criteria.Search)
	require.Len(t, e.Snapshot().Result.Items, 1)
	assert.Equal(t, "tempra-forte-650", e.Snapshot().Result.Items[0].ID)

	close(slow)
	time.Sleep(30 * time.Millisecond)

	snap = e.Snapshot()
	require.Len(t, snap.Result.Items, 1)
	assert.Equal(t, "tempra-forte-650", snap.Result.Items[0].ID)
}

func TestExplorerClampsPageBeyondTotal(t *testing.T) {
	s := store.NewDoctorFilterStore()
	fetcher := newDoctorFetcher(func(ctx context.Context, c entity.DoctorFilter) (entity.ResultPage[entity.Doctor], error) {
		return localDoctors(c), nil
	})
	e := NewExplorer[entity.DoctorFilter, entity.Doctor](s, fetcher, quietLogger(),
		WithPageClamp(func(c entity.DoctorFilter) int { return c.Page }))
	defer e.Close()
	awaitIdle(t, e.Await)

	s.SetPage(4)

	require.Eventually(t, func() bool {
		snap := e.Snapshot()
		return !snap.Refreshing && snap.Result != nil && snap.Result.Page == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, s.Criteria().Page)
	assert.Len(t, e.Snapshot().Result.Items, 6)
}

func TestExplorerIgnoresChangesAfterClose(t *testing.T) {
	s := store.NewMedicineFilterStore()
	e := NewExplorer[entity.MedicineFilter, entity.Medicine](s, &gatedFetcher{}, quietLogger())
	awaitIdle(t, e.Await)
	e.Close()

	s.SetSearch("tempra")

	assert.Equal(t, "", e.Snapshot().Criteria.Search)
	e.Close()
}
