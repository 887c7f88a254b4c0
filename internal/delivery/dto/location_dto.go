package dto

// Request DTOs

type CreateLocationRequest struct {
	Label       string   `json:"label" validate:"omitempty,max=150"`
	AddressLine string   `json:"addressLine" validate:"omitempty,max=255"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Tag         string   `json:"tag" validate:"omitempty,oneof=home office other"`
}

// Response DTOs

type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
}

type LocationResponse struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	AddressLine string  `json:"addressLine"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Tag         string  `json:"tag"`
	IsPrimary   bool    `json:"isPrimary"`
}
