package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vitalsync/internal/catalog"
	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/service"
	"vitalsync/pkg/response"
)

type mockDoctorUsecase struct{ mock.Mock }

func (m *mockDoctorUsecase) ListDoctors(ctx context.Context, filter entity.DoctorFilter) service.FetchResult[entity.Doctor] {
	return m.Called(ctx, filter).Get(0).(service.FetchResult[entity.Doctor])
}

func (m *mockDoctorUsecase) GetFilterOptions(ctx context.Context) catalog.DoctorFilterOptions {
	return m.Called(ctx).Get(0).(catalog.DoctorFilterOptions)
}

func (m *mockDoctorUsecase) GetDoctorDetail(ctx context.Context, id string) (*entity.DoctorDetailView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*entity.DoctorDetailView)
	return view, args.Error(1)
}

func (m *mockDoctorUsecase) CreateReview(ctx context.Context, doctorID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, doctorID, req)
	review, _ := args.Get(0).(*dto.ReviewResponse)
	return review, args.Error(1)
}

type mockCatalogUsecase struct{ mock.Mock }

func (m *mockCatalogUsecase) ListMedicines(ctx context.Context, filter entity.MedicineFilter) service.FetchResult[entity.Medicine] {
	return m.Called(ctx, filter).Get(0).(service.FetchResult[entity.Medicine])
}

func (m *mockCatalogUsecase) SearchMedicines(ctx context.Context, list entity.ShoppingList) service.FetchResult[entity.Medicine] {
	return m.Called(ctx, list).Get(0).(service.FetchResult[entity.Medicine])
}

func (m *mockCatalogUsecase) ListEmergencyCenters(ctx context.Context, filter entity.CenterFilter) service.FetchResult[entity.CenterMatch] {
	return m.Called(ctx, filter).Get(0).(service.FetchResult[entity.CenterMatch])
}

type mockLocationUsecase struct{ mock.Mock }

func (m *mockLocationUsecase) ListLocations(ctx context.Context) (*dto.LocationListResponse, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).(*dto.LocationListResponse)
	return list, args.Error(1)
}

func (m *mockLocationUsecase) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	args := m.Called(ctx, req)
	location, _ := args.Get(0).(*dto.LocationResponse)
	return location, args.Error(1)
}

func (m *mockLocationUsecase) MarkPrimary(ctx context.Context, id string) (*dto.LocationResponse, error) {
	args := m.Called(ctx, id)
	location, _ := args.Get(0).(*dto.LocationResponse)
	return location, args.Error(1)
}

func (m *mockLocationUsecase) DeleteLocation(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockSymptomUsecase struct{ mock.Mock }

func (m *mockSymptomUsecase) session(args mock.Arguments) (*dto.WizardSessionResponse, error) {
	session, _ := args.Get(0).(*dto.WizardSessionResponse)
	return session, args.Error(1)
}

func (m *mockSymptomUsecase) GetGuide(ctx context.Context) (entity.SymptomGuide, service.Source) {
	args := m.Called(ctx)
	return args.Get(0).(entity.SymptomGuide), args.Get(1).(service.Source)
}

func (m *mockSymptomUsecase) StartSession(ctx context.Context) (*dto.WizardSessionResponse, error) {
	return m.session(m.Called(ctx))
}

func (m *mockSymptomUsecase) GetSession(ctx context.Context, id string) (*dto.WizardSessionResponse, error) {
	return m.session(m.Called(ctx, id))
}

func (m *mockSymptomUsecase) DeleteSession(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSymptomUsecase) SelectArea(ctx context.Context, id string, req *dto.SelectAreaRequest) (*dto.WizardSessionResponse, error) {
	return m.session(m.Called(ctx, id, req))
}

func (m *mockSymptomUsecase) ToggleSymptom(ctx context.Context, id, symptomID string) (*dto.WizardSessionResponse, error) {
	return m.session(m.Called(ctx, id, symptomID))
}

func (m *mockSymptomUsecase) Answer(ctx context.Context, id string, req *dto.AnswerRequest) (*dto.WizardSessionResponse, error) {
	return m.session(m.Called(ctx, id, req))
}

func (m *mockSymptomUsecase) Next(ctx context.Context, id string) (*dto.WizardSessionResponse, error) {
	return m.session(m.Called(ctx, id))
}

func (m *mockSymptomUsecase) Back(ctx context.Context, id string) (*dto.WizardSessionResponse, error) {
	return m.session(m.Called(ctx, id))
}

func (m *mockSymptomUsecase) Reset(ctx context.Context, id string) (*dto.WizardSessionResponse, error) {
	return m.session(m.Called(ctx, id))
}

type mockExplorerUsecase struct{ mock.Mock }

func (m *mockExplorerUsecase) explorer(args mock.Arguments) (*dto.ExplorerResponse, error) {
	explorer, _ := args.Get(0).(*dto.ExplorerResponse)
	return explorer, args.Error(1)
}

func (m *mockExplorerUsecase) Open(ctx context.Context, feature string) (*dto.ExplorerResponse, error) {
	return m.explorer(m.Called(ctx, feature))
}

func (m *mockExplorerUsecase) Get(ctx context.Context, feature, id string) (*dto.ExplorerResponse, error) {
	return m.explorer(m.Called(ctx, feature, id))
}

func (m *mockExplorerUsecase) SetFilters(ctx context.Context, feature, id string, req *dto.FilterPatchRequest) (*dto.ExplorerResponse, error) {
	return m.explorer(m.Called(ctx, feature, id, req))
}

func (m *mockExplorerUsecase) SetPage(ctx context.Context, feature, id string, page int) (*dto.ExplorerResponse, error) {
	return m.explorer(m.Called(ctx, feature, id, page))
}

func (m *mockExplorerUsecase) SetSearch(ctx context.Context, feature, id, search string) (*dto.ExplorerResponse, error) {
	return m.explorer(m.Called(ctx, feature, id, search))
}

func (m *mockExplorerUsecase) Reset(ctx context.Context, feature, id string) (*dto.ExplorerResponse, error) {
	return m.explorer(m.Called(ctx, feature, id))
}

func (m *mockExplorerUsecase) Close(ctx context.Context, feature, id string) error {
	return m.Called(ctx, feature, id).Error(0)
}

func (m *mockExplorerUsecase) Shutdown() {
	m.Called()
}

// serve runs h against a request carrying the given route variables.
func serve(h http.HandlerFunc, method, target, body string, vars map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
