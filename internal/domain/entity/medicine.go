package entity

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type MedicineSort string

const (
	MedicineSortPrice        MedicineSort = "price"
	MedicineSortDistance     MedicineSort = "distance"
	MedicineSortAvailability MedicineSort = "availability"
)

type MedicineAvailability string

const (
	AvailabilityAll        MedicineAvailability = "all"
	AvailabilityInStock    MedicineAvailability = "in_stock"
	AvailabilityOutOfStock MedicineAvailability = "out_of_stock"
)

type PharmacyStatus string

const (
	PharmacyAvailable   PharmacyStatus = "available"
	PharmacyPromo       PharmacyStatus = "promo"
	PharmacyOutOfStock  PharmacyStatus = "out_of_stock"
	PharmacyUnavailable PharmacyStatus = "unavailable"
)

const DefaultMedicinePerPage = 10

// PharmacyPrice is one pharmacy's offer for a medicine. Price is nil when
// the pharmacy publishes none.
type PharmacyPrice struct {
	PharmacyID string           `json:"pharmacyId" validate:"required"`
	Name       string           `json:"name"`
	DistanceKm float64          `json:"distanceKm" validate:"gte=0"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Status     PharmacyStatus   `json:"status" validate:"oneof=available promo out_of_stock unavailable"`
	LogoURL    string           `json:"logoUrl"`
}

// InStock reports whether the offer can be bought right now.
func (p PharmacyPrice) InStock() bool {
	return p.Status == PharmacyAvailable || p.Status == PharmacyPromo
}

// Priced reports whether the offer carries a usable price.
func (p PharmacyPrice) Priced() bool {
	return p.Price != nil && p.Price.IsPositive()
}

type Medicine struct {
	ID           string          `gorm:"type:varchar(100);primaryKey" json:"id" validate:"required"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Presentation string          `gorm:"type:varchar(255)" json:"presentation"`
	Description  string          `gorm:"type:text" json:"description"`
	Category     string          `gorm:"type:varchar(20)" json:"category"`
	Highlight    string          `gorm:"type:varchar(255)" json:"highlight,omitempty"`
	Pharmacies   []PharmacyPrice `gorm:"type:jsonb;serializer:json" json:"pharmacies" validate:"dive"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// MedicineFilter is the domain-level criteria for querying medicines.
type MedicineFilter struct {
	Search       string               `json:"search"`
	Sort         MedicineSort         `json:"sort"`
	Availability MedicineAvailability `json:"availability"`
	Page         int                  `json:"page"`
	PerPage      int                  `json:"perPage"`
}

func DefaultMedicineFilter() MedicineFilter {
	return MedicineFilter{
		Sort:         MedicineSortPrice,
		Availability: AvailabilityAll,
		Page:         1,
		PerPage:      DefaultMedicinePerPage,
	}
}

func (f MedicineFilter) Normalize() MedicineFilter {
	out := MedicineFilter{
		Search:  strings.TrimSpace(f.Search),
		Sort:    f.Sort,
		Page:    f.Page,
		PerPage: f.PerPage,
	}
	if f.Availability != AvailabilityAll {
		out.Availability = f.Availability
	}
	if out.Page <= 0 {
		out.Page = 1
	}
	if out.PerPage <= 0 {
		out.PerPage = DefaultMedicinePerPage
	}
	return out
}

func (f MedicineFilter) QueryParams() url.Values {
	n := f.Normalize()
	q := url.Values{}
	if n.Search != "" {
		q.Set("search", n.Search)
	}
	if n.Sort != "" {
		q.Set("sort", string(n.Sort))
	}
	if n.Availability != "" {
		q.Set("availability", string(n.Availability))
	}
	q.Set("page", strconv.Itoa(n.Page))
	q.Set("perPage", strconv.Itoa(n.PerPage))
	return q
}

func (f MedicineFilter) CacheKey() string {
	return "medicines?" + f.QueryParams().Encode()
}

// ShoppingListItem is one line of an advanced medicine search.
type ShoppingListItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ShoppingList is the payload of an advanced medicine search: several
// medicine names looked up at once.
type ShoppingList struct {
	Medicines []ShoppingListItem `json:"medicines"`
}

// Names returns the lowercased, trimmed, non-empty item names.
func (l ShoppingList) Names() []string {
	names := make([]string, 0, len(l.Medicines))
	for _, item := range l.Medicines {
		if name := strings.ToLower(strings.TrimSpace(item.Name)); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (l ShoppingList) CacheKey() string {
	q := url.Values{}
	for _, item := range l.Medicines {
		q.Add("item", strings.ToLower(strings.TrimSpace(item.Name))+":"+strconv.Itoa(item.Quantity))
	}
	return "medicines/advanced?" + q.Encode()
}
