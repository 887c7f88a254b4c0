package usecase

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"vitalsync/internal/catalog"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/infrastructure/backend"
	"vitalsync/internal/infrastructure/seed"
	"vitalsync/internal/service"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockDoctorBackend struct {
	mock.Mock
}

func (m *mockDoctorBackend) GetDoctorDetail(ctx context.Context, id string) (entity.DoctorDetailView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.DoctorDetailView), args.Error(1)
}

func (m *mockDoctorBackend) CreateDoctorReview(ctx context.Context, doctorID string, review backend.NewReview) (entity.DoctorReview, error) {
	args := m.Called(ctx, doctorID, review)
	return args.Get(0).(entity.DoctorReview), args.Error(1)
}

type mockLocationBackend struct {
	mock.Mock
}

func (m *mockLocationBackend) ListLocations(ctx context.Context) ([]entity.UserLocation, error) {
	args := m.Called(ctx)
	locations, _ := args.Get(0).([]entity.UserLocation)
	return locations, args.Error(1)
}

func (m *mockLocationBackend) CreateLocation(ctx context.Context, location backend.NewLocation) (entity.UserLocation, error) {
	args := m.Called(ctx, location)
	return args.Get(0).(entity.UserLocation), args.Error(1)
}

func (m *mockLocationBackend) MarkPrimaryLocation(ctx context.Context, id string) (entity.UserLocation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.UserLocation), args.Error(1)
}

func (m *mockLocationBackend) DeleteLocation(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockSymptomBackend struct {
	mock.Mock
}

func (m *mockSymptomBackend) GetSymptomGuide(ctx context.Context) (entity.SymptomGuide, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.SymptomGuide), args.Error(1)
}

func (m *mockSymptomBackend) SubmitSymptoms(ctx context.Context, submission entity.SymptomSubmission) (entity.SymptomGuide, error) {
	args := m.Called(ctx, submission)
	return args.Get(0).(entity.SymptomGuide), args.Error(1)
}

func (m *mockSymptomBackend) SendConversation(ctx context.Context, message entity.ConversationMessage) (entity.ConversationReply, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(entity.ConversationReply), args.Error(1)
}

// localDoctorFetcher serves the seed catalog and counts invalidations.
type localDoctorFetcher struct {
	invalidations atomic.Int32
}

func (f *localDoctorFetcher) Fetch(ctx context.Context, c entity.DoctorFilter) service.FetchResult[entity.Doctor] {
	return service.FetchResult[entity.Doctor]{
		Page: catalog.FilterDoctors(seed.Doctors(), c),
		Meta: service.FetchMeta{Key: c.CacheKey(), Source: service.SourceFallback},
	}
}

func (f *localDoctorFetcher) Invalidate() {
	f.invalidations.Add(1)
}

type seedCatalog struct{}

func (seedCatalog) Doctors() []entity.Doctor { return seed.Doctors() }
