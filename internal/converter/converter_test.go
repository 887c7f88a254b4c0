package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/infrastructure/seed"
	"vitalsync/internal/wizard"
)

func ptr[T any](v T) *T { return &v }

func TestLocationRequestToNewAppliesDefaults(t *testing.T) {
	loc := LocationRequestToNew(&dto.CreateLocationRequest{Latitude: ptr(-12.05), Longitude: ptr(-77.04)})

	assert.Equal(t, entity.DefaultLocationLabel, loc.Label)
	assert.Equal(t, entity.DefaultLocationAddress, loc.AddressLine)
	assert.Equal(t, entity.LocationOther, loc.Tag)
	assert.Equal(t, -12.05, loc.Latitude)
}

func TestCenterQueryToFilterNeedsBothCoordinates(t *testing.T) {
	f := CenterQueryToFilter(&dto.CenterListQuery{Lat: ptr(-12.0)})
	assert.Nil(t, f.Origin)

	f = CenterQueryToFilter(&dto.CenterListQuery{Lat: ptr(-12.0), Lng: ptr(-77.0)})
	if assert.NotNil(t, f.Origin) {
		assert.Equal(t, -77.0, f.Origin.Longitude)
	}
}

func TestDoctorQueryRoundTripKeepsDefaults(t *testing.T) {
	q := DoctorFilterToQuery(entity.DefaultDoctorFilter())
	assert.Equal(t, entity.DefaultDoctorFilter(), DoctorQueryToFilter(&q))
}

func TestPageToMeta(t *testing.T) {
	meta := PageToMeta(entity.ResultPage[int]{Items: []int{1}, Total: 25, Page: 3, PerPage: 9, TotalPages: 3}, "fallback")

	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 9, meta.Limit)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, "fallback", meta.Source)
}

func TestReviewToResponse(t *testing.T) {
	created := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	res := ReviewToResponse(&entity.DoctorReview{ID: "r1", DoctorID: "d1", Rating: 5, CreatedAt: created}, "local")

	assert.Equal(t, "2025-03-01T10:00:00Z", res.CreatedAt)
	assert.Equal(t, "local", res.Source)
	assert.Nil(t, ReviewToResponse(nil, "local"))
}

func TestWizardStateToResponse(t *testing.T) {
	guide := seed.SymptomGuide()
	state := wizard.NewState("w1", guide)
	_ = state.SelectArea(guide, "head")

	res := WizardStateToResponse(state, guide)

	assert.Equal(t, entity.StepArea, res.CurrentStep.ID)
	assert.True(t, res.CanGoNext)
	assert.Equal(t, "pain-quality", res.CurrentBlockID)
}
