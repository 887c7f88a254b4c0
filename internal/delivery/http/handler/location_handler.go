package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/usecase"
	"vitalsync/pkg/response"
	"vitalsync/pkg/validator"
)

type LocationHandler struct {
	locationUsecase usecase.LocationUsecase
	validator       *validator.CustomValidator
}

func NewLocationHandler(locationUsecase usecase.LocationUsecase, validator *validator.CustomValidator) *LocationHandler {
	return &LocationHandler{
		locationUsecase: locationUsecase,
		validator:       validator,
	}
}

func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationUsecase.ListLocations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get locations")
		return
	}

	response.Success(w, http.StatusOK, "Locations retrieved successfully", locations)
}

func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	location, err := h.locationUsecase.CreateLocation(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create location")
		return
	}

	response.Success(w, http.StatusCreated, "Location created successfully", location)
}

func (h *LocationHandler) MarkPrimary(w http.ResponseWriter, r *http.Request) {
	location, err := h.locationUsecase.MarkPrimary(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrLocationNotFound) {
			response.NotFound(w, "Location not found")
			return
		}
		response.InternalServerError(w, "Failed to update location")
		return
	}

	response.Success(w, http.StatusOK, "Location marked as primary", location)
}

func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := h.locationUsecase.DeleteLocation(r.Context(), mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, usecase.ErrLocationNotFound) {
			response.NotFound(w, "Location not found")
			return
		}
		response.InternalServerError(w, "Failed to delete location")
		return
	}

	response.Success(w, http.StatusOK, "Location deleted successfully", nil)
}
