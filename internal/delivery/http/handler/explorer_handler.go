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

type ExplorerHandler struct {
	explorerUsecase usecase.ExplorerUsecase
	validator       *validator.CustomValidator
}

func NewExplorerHandler(explorerUsecase usecase.ExplorerUsecase, validator *validator.CustomValidator) *ExplorerHandler {
	return &ExplorerHandler{
		explorerUsecase: explorerUsecase,
		validator:       validator,
	}
}

func (h *ExplorerHandler) Open(w http.ResponseWriter, r *http.Request) {
	explorer, err := h.explorerUsecase.Open(r.Context(), mux.Vars(r)["feature"])
	if err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Explorer opened", explorer)
}

func (h *ExplorerHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	explorer, err := h.explorerUsecase.Get(r.Context(), vars["feature"], vars["id"])
	h.respond(w, explorer, err)
}

func (h *ExplorerHandler) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterPatchRequest
	if !h.decode(w, r, &req) {
		return
	}
	vars := mux.Vars(r)

	explorer, err := h.explorerUsecase.SetFilters(r.Context(), vars["feature"], vars["id"], &req)
	h.respond(w, explorer, err)
}

func (h *ExplorerHandler) SetPage(w http.ResponseWriter, r *http.Request) {
	var req dto.PageRequest
	if !h.decode(w, r, &req) {
		return
	}
	vars := mux.Vars(r)

	explorer, err := h.explorerUsecase.SetPage(r.Context(), vars["feature"], vars["id"], req.Page)
	h.respond(w, explorer, err)
}

func (h *ExplorerHandler) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequest
	if !h.decode(w, r, &req) {
		return
	}
	vars := mux.Vars(r)

	explorer, err := h.explorerUsecase.SetSearch(r.Context(), vars["feature"], vars["id"], req.Search)
	h.respond(w, explorer, err)
}

func (h *ExplorerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	explorer, err := h.explorerUsecase.Reset(r.Context(), vars["feature"], vars["id"])
	h.respond(w, explorer, err)
}

func (h *ExplorerHandler) Close(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.explorerUsecase.Close(r.Context(), vars["feature"], vars["id"]); err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Explorer closed", nil)
}

func (h *ExplorerHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
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

func (h *ExplorerHandler) respond(w http.ResponseWriter, explorer *dto.ExplorerResponse, err error) {
	if err != nil {
		h.fail(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Explorer retrieved successfully", explorer)
}

func (h *ExplorerHandler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnknownFeature):
		response.NotFound(w, "Unknown explorer feature")
	case errors.Is(err, usecase.ErrExplorerNotFound):
		response.NotFound(w, "Explorer not found")
	default:
		response.InternalServerError(w, "Failed to update explorer")
	}
}
