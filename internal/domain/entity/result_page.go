package entity

// FilterAll is the categorical sentinel meaning "no constraint".
const FilterAll = "Todos"

// ResultPage is one page of a filtered list plus its pagination metadata.
// It is always replaced wholesale, never mutated in place.
type ResultPage[T any] struct {
	Items      []T `json:"items" validate:"dive"`
	Total      int `json:"total" validate:"gte=0"`
	Page       int `json:"page" validate:"gte=1"`
	PerPage    int `json:"perPage" validate:"gte=1"`
	TotalPages int `json:"totalPages" validate:"gte=1"`
}

// IsUnset reports whether a categorical filter value imposes no constraint.
func IsUnset(value string) bool {
	return value == "" || value == FilterAll
}
