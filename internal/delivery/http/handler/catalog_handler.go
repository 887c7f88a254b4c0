package handler

import (
	"net/http"

	"vitalsync/internal/converter"
	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/usecase"
	"vitalsync/pkg/response"
	"vitalsync/pkg/validator"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

func (h *CatalogHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	query := converter.MedicineFilterToQuery(entity.DefaultMedicineFilter())
	p := newQueryParser(r)
	p.text("search", &query.Search)
	p.text("sort", &query.Sort)
	p.text("availability", &query.Availability)
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

	result := h.catalogUsecase.ListMedicines(r.Context(), converter.MedicineQueryToFilter(&query))

	response.SuccessWithMeta(w, http.StatusOK, "Medicines retrieved successfully", result.Page,
		converter.PageToMeta(result.Page, string(result.Meta.Source)))
}

// SearchMedicines matches a shopping list of medicine names in one call.
func (h *CatalogHandler) SearchMedicines(w http.ResponseWriter, r *http.Request) {
	var req dto.AdvancedMedicineSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result := h.catalogUsecase.SearchMedicines(r.Context(), converter.AdvancedSearchToShoppingList(&req))

	response.SuccessWithMeta(w, http.StatusOK, "Medicines matched successfully", result.Page,
		converter.PageToMeta(result.Page, string(result.Meta.Source)))
}

func (h *CatalogHandler) ListEmergencyCenters(w http.ResponseWriter, r *http.Request) {
	var query dto.CenterListQuery
	p := newQueryParser(r)
	p.text("search", &query.Search)
	p.optionalNumber("lat", &query.Lat)
	p.optionalNumber("lng", &query.Lng)
	p.number("maxDistanceKm", &query.MaxDistanceKm)
	p.integer("page", &query.Page)
	p.integer("perPage", &query.PerPage)
	if p.err != nil {
		response.BadRequest(w, p.err.Error())
		return
	}
	if (query.Lat == nil) != (query.Lng == nil) {
		response.BadRequest(w, "lat and lng must be given together")
		return
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result := h.catalogUsecase.ListEmergencyCenters(r.Context(), converter.CenterQueryToFilter(&query))

	response.SuccessWithMeta(w, http.StatusOK, "Emergency centers retrieved successfully", result.Page,
		converter.PageToMeta(result.Page, string(result.Meta.Source)))
}
