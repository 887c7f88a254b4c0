package entity

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultCenterPerPage       = 10
	DefaultCenterMaxDistanceKm = 10
)

type EmergencyCenter struct {
	ID              string   `gorm:"type:varchar(100);primaryKey" json:"id" validate:"required"`
	Name            string   `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address         string   `gorm:"type:varchar(255)" json:"address"`
	District        string   `gorm:"type:varchar(100);index" json:"district"`
	Latitude        float64  `gorm:"not null" json:"latitude" validate:"latitude"`
	Longitude       float64  `gorm:"not null" json:"longitude" validate:"longitude"`
	Phone           string   `gorm:"type:varchar(50)" json:"phone"`
	AvailableBeds   int      `gorm:"not null;default:0" json:"availableBeds" validate:"gte=0"`
	WaitTimeMinutes int      `gorm:"not null;default:0" json:"waitTimeMinutes" validate:"gte=0"`
	Tags            []string `gorm:"type:jsonb;serializer:json" json:"tags,omitempty"`
}

func (EmergencyCenter) TableName() string {
	return "emergency_centers"
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CenterMatch is an emergency center together with its distance from the
// query origin. DistanceKm is nil when the query had no origin.
type CenterMatch struct {
	EmergencyCenter
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

type CenterFilter struct {
	Search        string       `json:"search"`
	Origin        *Coordinates `json:"origin,omitempty"`
	MaxDistanceKm float64      `json:"maxDistanceKm"`
	Page          int          `json:"page"`
	PerPage       int          `json:"perPage"`
}

func DefaultCenterFilter() CenterFilter {
	return CenterFilter{
		MaxDistanceKm: DefaultCenterMaxDistanceKm,
		Page:          1,
		PerPage:       DefaultCenterPerPage,
	}
}

func (f CenterFilter) Normalize() CenterFilter {
	out := CenterFilter{
		Search:        strings.TrimSpace(f.Search),
		Origin:        f.Origin,
		MaxDistanceKm: f.MaxDistanceKm,
		Page:          f.Page,
		PerPage:       f.PerPage,
	}
	if out.MaxDistanceKm <= 0 {
		out.MaxDistanceKm = DefaultCenterMaxDistanceKm
	}
	if out.Page <= 0 {
		out.Page = 1
	}
	if out.PerPage <= 0 {
		out.PerPage = DefaultCenterPerPage
	}
	return out
}

func (f CenterFilter) QueryParams() url.Values {
	n := f.Normalize()
	q := url.Values{}
	if n.Search != "" {
		q.Set("query", n.Search)
	}
	if n.Origin != nil {
		q.Set("latitude", strconv.FormatFloat(n.Origin.Latitude, 'f', 6, 64))
		q.Set("longitude", strconv.FormatFloat(n.Origin.Longitude, 'f', 6, 64))
		q.Set("range", strconv.FormatFloat(n.MaxDistanceKm, 'f', -1, 64))
	}
	q.Set("page", strconv.Itoa(n.Page))
	q.Set("perPage", strconv.Itoa(n.PerPage))
	return q
}

func (f CenterFilter) CacheKey() string {
	return fmt.Sprintf("centers?%s", f.QueryParams().Encode())
}
