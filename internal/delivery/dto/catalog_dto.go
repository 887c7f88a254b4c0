package dto

type MedicineListQuery struct {
	Search       string `json:"search" validate:"max=100"`
	Sort         string `json:"sort" validate:"omitempty,oneof=price distance availability"`
	Availability string `json:"availability" validate:"omitempty,oneof=all in_stock out_of_stock"`
	Page         int    `json:"page" validate:"gte=0,lte=100000"`
	PerPage      int    `json:"perPage" validate:"gte=0,lte=50"`
}

// CenterListQuery carries an optional origin. Lat and Lng must be given
// together.
type CenterListQuery struct {
	Search        string   `json:"search" validate:"max=100"`
	Lat           *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng           *float64 `json:"lng" validate:"omitempty,longitude"`
	MaxDistanceKm float64  `json:"maxDistanceKm" validate:"gte=0,lte=500"`
	Page          int      `json:"page" validate:"gte=0,lte=100000"`
	PerPage       int      `json:"perPage" validate:"gte=0,lte=50"`
}

type ShoppingListItemRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Quantity int    `json:"quantity" validate:"gte=0,lte=1000"`
}

type AdvancedMedicineSearchRequest struct {
	Medicines []ShoppingListItemRequest `json:"medicines" validate:"max=50,dive"`
}
