package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/service"
	"vitalsync/internal/usecase"
	"vitalsync/internal/wizard"
	"vitalsync/pkg/response"
	"vitalsync/pkg/validator"
)

type SymptomHandler struct {
	symptomUsecase usecase.SymptomUsecase
	validator      *validator.CustomValidator
}

func NewSymptomHandler(symptomUsecase usecase.SymptomUsecase, validator *validator.CustomValidator) *SymptomHandler {
	return &SymptomHandler{
		symptomUsecase: symptomUsecase,
		validator:      validator,
	}
}

func (h *SymptomHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	guide, source := h.symptomUsecase.GetGuide(r.Context())

	response.SuccessWithMeta(w, http.StatusOK, "Symptom guide retrieved successfully", guide,
		&response.Meta{Source: string(source)})
}

func (h *SymptomHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.symptomUsecase.StartSession(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to start symptom guide")
		return
	}

	response.Success(w, http.StatusCreated, "Symptom guide started", session)
}

func (h *SymptomHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.symptomUsecase.GetSession(r.Context(), mux.Vars(r)["id"])
	h.respond(w, session, err, "Symptom guide retrieved successfully")
}

func (h *SymptomHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	err := h.symptomUsecase.DeleteSession(r.Context(), mux.Vars(r)["id"])
	h.respond(w, nil, err, "Symptom guide closed")
}

func (h *SymptomHandler) SelectArea(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectAreaRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.symptomUsecase.SelectArea(r.Context(), mux.Vars(r)["id"], &req)
	h.respond(w, session, err, "Area selected")
}

func (h *SymptomHandler) ToggleSymptom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	session, err := h.symptomUsecase.ToggleSymptom(r.Context(), vars["id"], vars["symptomId"])
	h.respond(w, session, err, "Symptom toggled")
}

func (h *SymptomHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req dto.AnswerRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.symptomUsecase.Answer(r.Context(), mux.Vars(r)["id"], &req)
	h.respond(w, session, err, "Answer recorded")
}

func (h *SymptomHandler) Next(w http.ResponseWriter, r *http.Request) {
	session, err := h.symptomUsecase.Next(r.Context(), mux.Vars(r)["id"])
	h.respond(w, session, err, "Moved to the next step")
}

func (h *SymptomHandler) Back(w http.ResponseWriter, r *http.Request) {
	session, err := h.symptomUsecase.Back(r.Context(), mux.Vars(r)["id"])
	h.respond(w, session, err, "Moved to the previous step")
}

func (h *SymptomHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session, err := h.symptomUsecase.Reset(r.Context(), mux.Vars(r)["id"])
	h.respond(w, session, err, "Symptom guide reset")
}

func (h *SymptomHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := decodeJSON(r, req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func (h *SymptomHandler) respond(w http.ResponseWriter, session *dto.WizardSessionResponse, err error, message string) {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			response.NotFound(w, "Symptom guide session not found")
		case errors.Is(err, wizard.ErrUnknownArea),
			errors.Is(err, wizard.ErrUnknownSymptom),
			errors.Is(err, wizard.ErrUnknownBlock),
			errors.Is(err, wizard.ErrUnknownOption):
			response.BadRequest(w, err.Error())
		case errors.Is(err, wizard.ErrBlockLocked),
			errors.Is(err, wizard.ErrBlockNotCurrent),
			errors.Is(err, wizard.ErrStepBlocked):
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update symptom guide")
		}
		return
	}

	if session == nil {
		response.Success(w, http.StatusOK, message, nil)
		return
	}
	response.Success(w, http.StatusOK, message, session)
}
