package entity

import "time"

type LocationTag string

const (
	LocationHome   LocationTag = "home"
	LocationOffice LocationTag = "office"
	LocationOther  LocationTag = "other"
)

const (
	DefaultLocationLabel   = "Nueva ubicación"
	DefaultLocationAddress = "Dirección pendiente"
)

// UserLocation is a saved address. At most one location is primary.
type UserLocation struct {
	ID          string      `gorm:"type:varchar(100);primaryKey" json:"id" validate:"required"`
	Label       string      `gorm:"type:varchar(150);not null" json:"label"`
	AddressLine string      `gorm:"type:varchar(255);not null" json:"addressLine"`
	Latitude    float64     `gorm:"not null" json:"latitude" validate:"latitude"`
	Longitude   float64     `gorm:"not null" json:"longitude" validate:"longitude"`
	Tag         LocationTag `gorm:"type:varchar(20);not null;default:other" json:"tag" validate:"oneof=home office other"`
	IsPrimary   bool        `gorm:"not null;default:false" json:"isPrimary"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"-"`
}

func (UserLocation) TableName() string {
	return "user_locations"
}
