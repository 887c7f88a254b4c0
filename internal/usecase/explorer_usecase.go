package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"

	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/observability/metrics"
	"vitalsync/internal/service"
	"vitalsync/internal/store"
	"vitalsync/pkg/debounce"
)

var (
	ErrUnknownFeature   = errors.New("unknown explorer feature")
	ErrExplorerNotFound = errors.New("explorer session not found")
)

const (
	FeatureDoctors   = "doctors"
	FeatureMedicines = "medicines"

	defaultExplorerSessions = 1024
	defaultExplorerTTL      = 30 * time.Minute
)

type ExplorerConfig struct {
	MaxSessions    int
	SessionTTL     time.Duration
	SearchDebounce time.Duration
}

type ExplorerUsecase interface {
	Open(ctx context.Context, feature string) (*dto.ExplorerResponse, error)
	Get(ctx context.Context, feature, id string) (*dto.ExplorerResponse, error)
	SetFilters(ctx context.Context, feature, id string, req *dto.FilterPatchRequest) (*dto.ExplorerResponse, error)
	SetPage(ctx context.Context, feature, id string, page int) (*dto.ExplorerResponse, error)
	SetSearch(ctx context.Context, feature, id, search string) (*dto.ExplorerResponse, error)
	Reset(ctx context.Context, feature, id string) (*dto.ExplorerResponse, error)
	Close(ctx context.Context, feature, id string) error
	Shutdown()
}

// explorerSession is one client's filter store, debounced search box and
// explorer for a single feature.
type explorerSession interface {
	feature() string
	state() any
	setFilters(req *dto.FilterPatchRequest)
	setPage(page int)
	setSearch(search string)
	reset()
	// close tears the session down once and reports whether this call did it.
	close() bool
}

type explorerUsecase struct {
	log       *logrus.Logger
	metrics   *metrics.FetchMetrics
	doctors   service.Fetcher[entity.DoctorFilter, entity.Doctor]
	medicines service.Fetcher[entity.MedicineFilter, entity.Medicine]
	debounce  time.Duration

	// mu orders lifetime renewal against Close so a removed session is
	// never added back.
	mu       sync.Mutex
	sessions *expirable.LRU[string, explorerSession]
}

func NewExplorerUsecase(
	log *logrus.Logger,
	m *metrics.FetchMetrics,
	doctors service.Fetcher[entity.DoctorFilter, entity.Doctor],
	medicines service.Fetcher[entity.MedicineFilter, entity.Medicine],
	cfg ExplorerConfig,
) ExplorerUsecase {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultExplorerSessions
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultExplorerTTL
	}

	u := &explorerUsecase{
		log:       log,
		metrics:   m,
		doctors:   doctors,
		medicines: medicines,
		debounce:  cfg.SearchDebounce,
	}
	u.sessions = expirable.NewLRU[string, explorerSession](cfg.MaxSessions, u.onEvict, cfg.SessionTTL)
	return u
}

func (u *explorerUsecase) Open(ctx context.Context, feature string) (*dto.ExplorerResponse, error) {
	var session explorerSession
	switch feature {
	case FeatureDoctors:
		session = newDoctorExplorer(u.doctors, u.debounce, u.log)
	case FeatureMedicines:
		session = newMedicineExplorer(u.medicines, u.debounce, u.log)
	default:
		return nil, ErrUnknownFeature
	}

	id := uuid.NewString()
	u.sessions.Add(id, session)
	u.metrics.SessionOpened(feature)
	u.log.Debugf("Opened %s explorer %s", feature, id)

	return u.response(id, session), nil
}

func (u *explorerUsecase) Get(ctx context.Context, feature, id string) (*dto.ExplorerResponse, error) {
	return u.with(feature, id, func(explorerSession) {})
}

func (u *explorerUsecase) SetFilters(ctx context.Context, feature, id string, req *dto.FilterPatchRequest) (*dto.ExplorerResponse, error) {
	return u.with(feature, id, func(s explorerSession) { s.setFilters(req) })
}

func (u *explorerUsecase) SetPage(ctx context.Context, feature, id string, page int) (*dto.ExplorerResponse, error) {
	return u.with(feature, id, func(s explorerSession) { s.setPage(page) })
}

// SetSearch feeds the debounced search box. The store only changes once the
// text has settled.
func (u *explorerUsecase) SetSearch(ctx context.Context, feature, id, search string) (*dto.ExplorerResponse, error) {
	return u.with(feature, id, func(s explorerSession) { s.setSearch(search) })
}

func (u *explorerUsecase) Reset(ctx context.Context, feature, id string) (*dto.ExplorerResponse, error) {
	return u.with(feature, id, func(s explorerSession) { s.reset() })
}

func (u *explorerUsecase) Close(ctx context.Context, feature, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, err := u.lookup(feature, id); err != nil {
		return err
	}
	u.sessions.Remove(id)
	return nil
}

// Shutdown tears down every session.
func (u *explorerUsecase) Shutdown() {
	u.sessions.Purge()
}

func (u *explorerUsecase) lookup(feature, id string) (explorerSession, error) {
	if feature != FeatureDoctors && feature != FeatureMedicines {
		return nil, ErrUnknownFeature
	}
	session, ok := u.sessions.Get(id)
	if !ok || session.feature() != feature {
		return nil, ErrExplorerNotFound
	}
	return session, nil
}

// with applies fn to the session and renews its lifetime.
func (u *explorerUsecase) with(feature, id string, fn func(explorerSession)) (*dto.ExplorerResponse, error) {
	session, err := u.lookup(feature, id)
	if err != nil {
		return nil, err
	}
	fn(session)

	u.mu.Lock()
	if current, ok := u.sessions.Peek(id); ok && current == session {
		u.sessions.Add(id, session)
	}
	u.mu.Unlock()

	return u.response(id, session), nil
}

func (u *explorerUsecase) response(id string, session explorerSession) *dto.ExplorerResponse {
	return &dto.ExplorerResponse{
		ID:      id,
		Feature: session.feature(),
		State:   session.state(),
	}
}

func (u *explorerUsecase) onEvict(id string, session explorerSession) {
	if !session.close() {
		return
	}
	u.metrics.SessionClosed(session.feature())
	u.log.Debugf("Closed %s explorer %s", session.feature(), id)
}

// =============================================================================
// Feature sessions
// =============================================================================

type doctorExplorer struct {
	closed   atomic.Bool
	store    *store.DoctorFilterStore
	search   *debounce.Debouncer[string]
	explorer *service.Explorer[entity.DoctorFilter, entity.Doctor]
}

func newDoctorExplorer(fetcher service.Fetcher[entity.DoctorFilter, entity.Doctor], wait time.Duration, log *logrus.Logger) *doctorExplorer {
	s := store.NewDoctorFilterStore()
	return &doctorExplorer{
		store:  s,
		search: debounce.New(s.Criteria().Search, wait, s.SetSearch),
		explorer: service.NewExplorer(s, fetcher, log,
			service.WithPageClamp(func(c entity.DoctorFilter) int { return c.Page })),
	}
}

func (e *doctorExplorer) feature() string { return FeatureDoctors }

func (e *doctorExplorer) state() any { return e.explorer.Snapshot() }

func (e *doctorExplorer) setFilters(req *dto.FilterPatchRequest) {
	e.store.SetFilters(store.DoctorFilterPatch{
		Search:    req.Search,
		Specialty: req.Specialty,
		Insurance: req.Insurance,
		Location:  req.Location,
		MinRating: req.MinRating,
		PerPage:   req.PerPage,
	})
	if req.Search != nil {
		e.search.Reset(*req.Search)
	}
}

func (e *doctorExplorer) setPage(page int) { e.store.SetPage(page) }

func (e *doctorExplorer) setSearch(search string) { e.search.Set(search) }

func (e *doctorExplorer) reset() {
	e.store.ResetFilters()
	e.search.Reset(e.store.Criteria().Search)
}

func (e *doctorExplorer) close() bool {
	if !e.closed.CompareAndSwap(false, true) {
		return false
	}
	e.search.Stop()
	e.explorer.Close()
	return true
}

type medicineExplorer struct {
	closed   atomic.Bool
	store    *store.MedicineFilterStore
	search   *debounce.Debouncer[string]
	explorer *service.Explorer[entity.MedicineFilter, entity.Medicine]
}

func newMedicineExplorer(fetcher service.Fetcher[entity.MedicineFilter, entity.Medicine], wait time.Duration, log *logrus.Logger) *medicineExplorer {
	s := store.NewMedicineFilterStore()
	return &medicineExplorer{
		store:    s,
		search:   debounce.New(s.Criteria().Search, wait, s.SetSearch),
		explorer: service.NewExplorer(s, fetcher, log),
	}
}

func (e *medicineExplorer) feature() string { return FeatureMedicines }

func (e *medicineExplorer) state() any { return e.explorer.Snapshot() }

func (e *medicineExplorer) setFilters(req *dto.FilterPatchRequest) {
	patch := store.MedicineFilterPatch{Search: req.Search, PerPage: req.PerPage}
	if req.Sort != nil {
		sort := entity.MedicineSort(*req.Sort)
		patch.Sort = &sort
	}
	if req.Availability != nil {
		availability := entity.MedicineAvailability(*req.Availability)
		patch.Availability = &availability
	}
	e.store.SetFilters(patch)
	if req.Search != nil {
		e.search.Reset(*req.Search)
	}
}

func (e *medicineExplorer) setPage(page int) { e.store.SetPage(page) }

func (e *medicineExplorer) setSearch(search string) { e.search.Set(search) }

func (e *medicineExplorer) reset() {
	e.store.ResetFilters()
	e.search.Reset(e.store.Criteria().Search)
}

func (e *medicineExplorer) close() bool {
	if !e.closed.CompareAndSwap(false, true) {
		return false
	}
	e.search.Stop()
	e.explorer.Close()
	return true
}
