package converter

import (
	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/pkg/response"
)

func MedicineQueryToFilter(q *dto.MedicineListQuery) entity.MedicineFilter {
	return entity.MedicineFilter{
		Search:       q.Search,
		Sort:         entity.MedicineSort(q.Sort),
		Availability: entity.MedicineAvailability(q.Availability),
		Page:         q.Page,
		PerPage:      q.PerPage,
	}
}

func MedicineFilterToQuery(f entity.MedicineFilter) dto.MedicineListQuery {
	return dto.MedicineListQuery{
		Search:       f.Search,
		Sort:         string(f.Sort),
		Availability: string(f.Availability),
		Page:         f.Page,
		PerPage:      f.PerPage,
	}
}

// CenterQueryToFilter sets an origin only when both coordinates are present
func CenterQueryToFilter(q *dto.CenterListQuery) entity.CenterFilter {
	filter := entity.CenterFilter{
		Search:        q.Search,
		MaxDistanceKm: q.MaxDistanceKm,
		Page:          q.Page,
		PerPage:       q.PerPage,
	}
	if q.Lat != nil && q.Lng != nil {
		filter.Origin = &entity.Coordinates{Latitude: *q.Lat, Longitude: *q.Lng}
	}
	return filter
}

// PageToMeta builds the list envelope metadata for a result page
func PageToMeta[T any](page entity.ResultPage[T], source string) *response.Meta {
	return &response.Meta{
		Page:       page.Page,
		Limit:      page.PerPage,
		Total:      int64(page.Total),
		TotalPages: page.TotalPages,
		Source:     source,
	}
}

func AdvancedSearchToShoppingList(req *dto.AdvancedMedicineSearchRequest) entity.ShoppingList {
	items := make([]entity.ShoppingListItem, 0, len(req.Medicines))
	for _, m := range req.Medicines {
		items = append(items, entity.ShoppingListItem{Name: m.Name, Quantity: m.Quantity})
	}
	return entity.ShoppingList{Medicines: items}
}
