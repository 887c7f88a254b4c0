package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/usecase"
	"vitalsync/pkg/validator"
)

func TestCreateLocation(t *testing.T) {
	uc := &mockLocationUsecase{}
	h := NewLocationHandler(uc, validator.NewValidator())
	uc.On("CreateLocation", mock.Anything, mock.MatchedBy(func(req *dto.CreateLocationRequest) bool {
		return req.Label == "Gym" && *req.Latitude == -12.05
	})).Return(&dto.LocationResponse{ID: "gym", Label: "Gym"}, nil)

	rec := serve(h.CreateLocation, http.MethodPost, "/locations",
		`{"label":"Gym","latitude":-12.05,"longitude":-77.04,"tag":"other"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestCreateLocationRequiresCoordinates(t *testing.T) {
	uc := &mockLocationUsecase{}
	h := NewLocationHandler(uc, validator.NewValidator())

	rec := serve(h.CreateLocation, http.MethodPost, "/locations", `{"label":"Gym","longitude":-77.04}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h.CreateLocation, http.MethodPost, "/locations", `{"latitude":0,"longitude":0,"tag":"beach"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.AssertNotCalled(t, "CreateLocation", mock.Anything, mock.Anything)
}

func TestMarkPrimaryAndDelete(t *testing.T) {
	uc := &mockLocationUsecase{}
	h := NewLocationHandler(uc, validator.NewValidator())
	uc.On("MarkPrimary", mock.Anything, "office").Return(&dto.LocationResponse{ID: "office", IsPrimary: true}, nil)
	uc.On("MarkPrimary", mock.Anything, "ghost").Return(nil, usecase.ErrLocationNotFound)
	uc.On("DeleteLocation", mock.Anything, "ghost").Return(usecase.ErrLocationNotFound)
	uc.On("DeleteLocation", mock.Anything, "broken").Return(errors.New("boom"))

	rec := serve(h.MarkPrimary, http.MethodPatch, "/locations/office", "", map[string]string{"id": "office"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h.MarkPrimary, http.MethodPatch, "/locations/ghost", "", map[string]string{"id": "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h.DeleteLocation, http.MethodDelete, "/locations/ghost", "", map[string]string{"id": "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h.DeleteLocation, http.MethodDelete, "/locations/broken", "", map[string]string{"id": "broken"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
