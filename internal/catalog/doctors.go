package catalog

import (
	"slices"

	"github.com/samber/lo"

	"vitalsync/internal/domain/entity"
)

// FilterDoctors applies the doctor criteria to the full list and returns the
// requested page. The input slice is not modified.
func FilterDoctors(doctors []entity.Doctor, filter entity.DoctorFilter) entity.ResultPage[entity.Doctor] {
	f := filter.Normalize()

	filtered := lo.Filter(doctors, func(d entity.Doctor, _ int) bool {
		if !matchesText(f.Search, d.Name, d.Specialty) {
			return false
		}
		if f.Specialty != "" && d.Specialty != f.Specialty {
			return false
		}
		if f.Location != "" && d.Location != f.Location {
			return false
		}
		if f.Insurance != "" && !d.HasInsurance(entity.InsuranceProvider(f.Insurance)) {
			return false
		}
		if f.MinRating > 0 && d.Rating < f.MinRating {
			return false
		}
		return true
	})

	return Paginate(filtered, f.Page, f.PerPage, entity.DefaultDoctorPerPage)
}

// DoctorFilterOptions lists the values offered by the doctor filter controls.
type DoctorFilterOptions struct {
	Specialties []string  `json:"specialties"`
	Locations   []string  `json:"locations"`
	Insurances  []string  `json:"insurances"`
	Ratings     []float64 `json:"ratings"`
}

// BuildDoctorFilterOptions derives the option lists from a catalog. Each list
// starts with the "Todos" sentinel and keeps first-seen order.
func BuildDoctorFilterOptions(doctors []entity.Doctor) DoctorFilterOptions {
	specialties := lo.Uniq(lo.Map(doctors, func(d entity.Doctor, _ int) string { return d.Specialty }))
	locations := lo.Uniq(lo.Map(doctors, func(d entity.Doctor, _ int) string { return d.Location }))

	return DoctorFilterOptions{
		Specialties: slices.Insert(specialties, 0, entity.FilterAll),
		Locations:   slices.Insert(locations, 0, entity.FilterAll),
		Insurances: []string{
			entity.FilterAll,
			string(entity.InsuranceSIS),
			string(entity.InsuranceEsSalud),
			string(entity.InsurancePrivado),
		},
		Ratings: []float64{0, 3, 3.5, 4, 4.5},
	}
}
