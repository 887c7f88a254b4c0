package dto

// Request DTOs

// FilterPatchRequest changes an explorer's filters. Nil fields are left
// untouched; fields that do not belong to the explorer's feature are
// ignored.
type FilterPatchRequest struct {
	Search       *string  `json:"search" validate:"omitempty,max=100"`
	Specialty    *string  `json:"specialty" validate:"omitempty,max=100"`
	Insurance    *string  `json:"insurance" validate:"omitempty,oneof=Todos SIS EsSalud Privado"`
	Location     *string  `json:"location" validate:"omitempty,max=150"`
	MinRating    *float64 `json:"minRating" validate:"omitempty,gte=0,lte=5"`
	Sort         *string  `json:"sort" validate:"omitempty,oneof=price distance availability"`
	Availability *string  `json:"availability" validate:"omitempty,oneof=all in_stock out_of_stock"`
	PerPage      *int     `json:"perPage" validate:"omitempty,gte=1,lte=50"`
}

type PageRequest struct {
	Page int `json:"page" validate:"required,gte=1,lte=100000"`
}

type SearchRequest struct {
	Search string `json:"search" validate:"max=100"`
}

// Response DTOs

type ExplorerResponse struct {
	ID      string `json:"id"`
	Feature string `json:"feature"`
	State   any    `json:"state"`
}
