package entity

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

type InsuranceProvider string

const (
	InsuranceSIS     InsuranceProvider = "SIS"
	InsuranceEsSalud InsuranceProvider = "EsSalud"
	InsurancePrivado InsuranceProvider = "Privado"
)

const (
	DefaultDoctorPerPage   = 9
	DefaultDoctorMinRating = 4
)

// Doctor is the summary record shown in doctor listings.
type Doctor struct {
	ID          string              `gorm:"type:varchar(100);primaryKey" json:"id" validate:"required"`
	Name        string              `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Specialty   string              `gorm:"type:varchar(100);not null;index" json:"specialty"`
	CMP         string              `gorm:"column:cmp;type:varchar(50)" json:"cmp"`
	Rating      float64             `gorm:"not null;default:0" json:"rating" validate:"gte=0,lte=5"`
	RatingCount int                 `gorm:"not null;default:0" json:"ratingCount"`
	Location    string              `gorm:"type:varchar(150);index" json:"location"`
	Insurances  []InsuranceProvider `gorm:"type:jsonb;serializer:json" json:"insurances"`
	ImageURL    string              `gorm:"type:text" json:"imageUrl"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// HasInsurance reports whether the doctor accepts the given provider.
func (d Doctor) HasInsurance(provider InsuranceProvider) bool {
	for _, insurance := range d.Insurances {
		if insurance == provider {
			return true
		}
	}
	return false
}

type ScheduleDay struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

// DoctorProfile holds the long-form data behind a doctor's detail page.
type DoctorProfile struct {
	DoctorID        string        `gorm:"type:varchar(100);primaryKey" json:"doctor_id"`
	Bio             string        `gorm:"type:text" json:"bio"`
	YearsExperience int           `json:"years_experience"`
	Languages       []string      `gorm:"type:jsonb;serializer:json" json:"languages"`
	Education       string        `gorm:"type:varchar(255)" json:"education"`
	ClinicAddress   string        `gorm:"type:varchar(255)" json:"clinic_address"`
	Schedule        []ScheduleDay `gorm:"type:jsonb;serializer:json" json:"schedule"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// DoctorDetail is the doctor summary enriched with profile fields.
type DoctorDetail struct {
	Doctor
	Bio             string        `json:"bio"`
	YearsExperience int           `json:"yearsExperience"`
	Languages       []string      `json:"languages"`
	Education       string        `json:"education"`
	ClinicAddress   string        `json:"clinicAddress"`
	Schedule        []ScheduleDay `json:"schedule,omitempty"`
}

type DoctorReview struct {
	ID         string    `gorm:"type:varchar(100);primaryKey" json:"id" validate:"required"`
	DoctorID   string    `gorm:"type:varchar(100);not null;index" json:"doctorId" validate:"required"`
	AuthorName string    `gorm:"type:varchar(255);not null" json:"authorName"`
	Rating     int       `gorm:"not null" json:"rating" validate:"gte=1,lte=5"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (DoctorReview) TableName() string {
	return "doctor_reviews"
}

// DoctorDetailView is the payload of a doctor detail lookup.
type DoctorDetailView struct {
	Doctor  DoctorDetail   `json:"doctor" validate:"required"`
	Reviews []DoctorReview `json:"reviews" validate:"dive"`
}

// DoctorFilter is the domain-level criteria for querying doctors.
type DoctorFilter struct {
	Search    string  `json:"search"`
	Specialty string  `json:"specialty"`
	Insurance string  `json:"insurance"`
	Location  string  `json:"location"`
	MinRating float64 `json:"minRating"`
	Page      int     `json:"page"`
	PerPage   int     `json:"perPage"`
}

func DefaultDoctorFilter() DoctorFilter {
	return DoctorFilter{
		Specialty: FilterAll,
		Insurance: FilterAll,
		Location:  FilterAll,
		MinRating: DefaultDoctorMinRating,
		Page:      1,
		PerPage:   DefaultDoctorPerPage,
	}
}

// Normalize trims the search text, collapses sentinels to "" and applies
// pagination defaults.
func (f DoctorFilter) Normalize() DoctorFilter {
	out := DoctorFilter{
		Search:    strings.TrimSpace(f.Search),
		MinRating: f.MinRating,
		Page:      f.Page,
		PerPage:   f.PerPage,
	}
	if !IsUnset(f.Specialty) {
		out.Specialty = f.Specialty
	}
	if !IsUnset(f.Insurance) {
		out.Insurance = f.Insurance
	}
	if !IsUnset(f.Location) {
		out.Location = f.Location
	}
	if out.MinRating < 0 {
		out.MinRating = 0
	}
	if out.Page <= 0 {
		out.Page = 1
	}
	if out.PerPage <= 0 {
		out.PerPage = DefaultDoctorPerPage
	}
	return out
}

// QueryParams is the wire form of the filter. Unset values are omitted.
func (f DoctorFilter) QueryParams() url.Values {
	n := f.Normalize()
	q := url.Values{}
	if n.Search != "" {
		q.Set("search", n.Search)
	}
	if n.Specialty != "" {
		q.Set("specialty", n.Specialty)
	}
	if n.Insurance != "" {
		q.Set("insurance", n.Insurance)
	}
	if n.Location != "" {
		q.Set("location", n.Location)
	}
	if n.MinRating > 0 {
		q.Set("minRating", strconv.FormatFloat(n.MinRating, 'f', -1, 64))
	}
	q.Set("page", strconv.Itoa(n.Page))
	q.Set("perPage", strconv.Itoa(n.PerPage))
	return q
}

// CacheKey identifies the filter by its full serialized form.
func (f DoctorFilter) CacheKey() string {
	return "doctors?" + f.QueryParams().Encode()
}
