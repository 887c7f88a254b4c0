package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"vitalsync/internal/converter"
	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/usecase"
	"vitalsync/pkg/response"
	"vitalsync/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	query := converter.DoctorFilterToQuery(entity.DefaultDoctorFilter())
	p := newQueryParser(r)
	p.text("search", &query.Search)
	p.text("specialty", &query.Specialty)
	p.text("insurance", &query.Insurance)
	p.text("location", &query.Location)
	p.number("minRating", &query.MinRating)
	p.integer("page", &query.Page)
	p.integer("perPage", &query.PerPage)
	if p.err != nil {
		response.BadRequest(w, p.err.Error())
		return
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result := h.doctorUsecase.ListDoctors(r.Context(), converter.DoctorQueryToFilter(&query))

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", result.Page,
		converter.PageToMeta(result.Page, string(result.Meta.Source)))
}

func (h *DoctorHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	options := h.doctorUsecase.GetFilterOptions(r.Context())

	response.Success(w, http.StatusOK, "Doctor filter options retrieved successfully", options)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["id"]

	doctor, err := h.doctorUsecase.GetDoctorDetail(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["id"]

	var req dto.CreateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.doctorUsecase.CreateReview(r.Context(), doctorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrReviewRejected):
			response.BadGateway(w, "Review was rejected")
		default:
			response.InternalServerError(w, "Failed to create review")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Review created successfully", review)
}
