package catalog

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalsync/internal/domain/entity"
	"vitalsync/internal/infrastructure/seed"
)

func doctorNames(page entity.ResultPage[entity.Doctor]) []string {
	names := make([]string, 0, len(page.Items))
	for _, d := range page.Items {
		names = append(names, d.Name)
	}
	return names
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("last partial page", func(t *testing.T) {
		page := Paginate(items, 3, 9, 10)
		assert.Equal(t, 25, page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, []int{18, 19, 20, 21, 22, 23, 24}, page.Items)
	})

	t.Run("page past the end is empty and not clamped", func(t *testing.T) {
		page := Paginate(items, 4, 9, 10)
		assert.Equal(t, 4, page.Page)
		assert.Equal(t, 3, page.TotalPages)
		require.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})

	t.Run("non-positive inputs use defaults", func(t *testing.T) {
		page := Paginate(items, 0, -1, 10)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PerPage)
		assert.Len(t, page.Items, 10)
	})

	t.Run("empty list still has one page", func(t *testing.T) {
		page := Paginate([]int{}, 1, 9, 9)
		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 1, page.TotalPages)
	})
}

func TestFilterDoctors(t *testing.T) {
	doctors := seed.Doctors()

	t.Run("no constraints returns the whole catalog", func(t *testing.T) {
		f := entity.DefaultDoctorFilter()
		f.MinRating = 0
		page := FilterDoctors(doctors, f)
		assert.Equal(t, 6, page.Total)
		assert.Equal(t, 1, page.TotalPages)
		assert.Len(t, page.Items, 6)
	})

	t.Run("rating threshold keeps catalog order", func(t *testing.T) {
		f := entity.DefaultDoctorFilter()
		f.MinRating = 4.5
		page := FilterDoctors(doctors, f)
		assert.Equal(t, []string{"Dr. Elena Vargas", "Dr. Carlos Mendoza", "Dr. Javier Torres"}, doctorNames(page))
	})

	t.Run("rating threshold with insurance", func(t *testing.T) {
		f := entity.DefaultDoctorFilter()
		f.MinRating = 4.5
		f.Insurance = string(entity.InsurancePrivado)
		f.Specialty = "Dermatología"
		page := FilterDoctors(doctors, f)
		assert.Equal(t, []string{"Dr. Carlos Mendoza"}, doctorNames(page))
	})

	t.Run("search matches name or specialty case-insensitively", func(t *testing.T) {
		f := entity.DefaultDoctorFilter()
		f.MinRating = 0
		f.Search = "CARDIO"
		page := FilterDoctors(doctors, f)
		assert.Equal(t, []string{"Dr. Elena Vargas", "Dra. Ana Flores"}, doctorNames(page))
	})

	t.Run("location equality", func(t *testing.T) {
		f := entity.DefaultDoctorFilter()
		f.MinRating = 0
		f.Location = "Cusco"
		page := FilterDoctors(doctors, f)
		assert.Equal(t, []string{"Dr. Javier Torres"}, doctorNames(page))
	})

	t.Run("does not modify the input", func(t *testing.T) {
		before := seed.Doctors()
		f := entity.DefaultDoctorFilter()
		f.Search = "dra"
		FilterDoctors(doctors, f)
		assert.Equal(t, before, doctors)
	})
}

func TestFilterDoctorsPagination(t *testing.T) {
	doctors := make([]entity.Doctor, 25)
	for i := range doctors {
		doctors[i] = entity.Doctor{ID: fmt.Sprintf("d-%02d", i), Name: fmt.Sprintf("Doctor %02d", i), Rating: 5}
	}

	f := entity.DefaultDoctorFilter()
	f.Page = 3
	page := FilterDoctors(doctors, f)

	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 7)
	assert.Equal(t, "d-18", page.Items[0].ID)
}

func TestBuildDoctorFilterOptions(t *testing.T) {
	options := BuildDoctorFilterOptions(seed.Doctors())

	assert.Equal(t, []string{"Todos", "Cardiología", "Dermatología", "Pediatría", "Ginecología"}, options.Specialties)
	assert.Equal(t, "Todos", options.Locations[0])
	assert.Contains(t, options.Locations, "Arequipa")
	assert.Len(t, options.Insurances, 4)
}

func medicineIDs(page entity.ResultPage[entity.Medicine]) []string {
	ids := make([]string, 0, len(page.Items))
	for _, m := range page.Items {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestFilterMedicines(t *testing.T) {
	medicines := seed.Medicines()

	t.Run("price sort uses the lowest priced offer", func(t *testing.T) {
		page := FilterMedicines(medicines, entity.DefaultMedicineFilter())
		assert.Equal(t, []string{"paracetamol-500", "tempra-forte-650"}, medicineIDs(page))
	})

	t.Run("in stock keeps items with an available offer", func(t *testing.T) {
		f := entity.DefaultMedicineFilter()
		f.Availability = entity.AvailabilityInStock
		page := FilterMedicines(medicines, f)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("in stock excludes items without available offers", func(t *testing.T) {
		sold := entity.Medicine{
			ID:   "agotado",
			Name: "Ibuprofeno 400mg",
			Pharmacies: []entity.PharmacyPrice{
				{PharmacyID: "a", Status: entity.PharmacyOutOfStock},
				{PharmacyID: "b", Status: entity.PharmacyUnavailable},
			},
		}
		f := entity.DefaultMedicineFilter()
		f.Availability = entity.AvailabilityInStock
		page := FilterMedicines(append(seed.Medicines(), sold), f)
		assert.NotContains(t, medicineIDs(page), "agotado")

		f.Availability = entity.AvailabilityOutOfStock
		page = FilterMedicines(append(seed.Medicines(), sold), f)
		assert.Contains(t, medicineIDs(page), "agotado")
	})

	t.Run("search covers presentation and description", func(t *testing.T) {
		f := entity.DefaultMedicineFilter()
		f.Search = "principio activo"
		page := FilterMedicines(medicines, f)
		assert.Equal(t, []string{"tempra-forte-650"}, medicineIDs(page))
	})

	t.Run("distance sort", func(t *testing.T) {
		far := entity.Medicine{ID: "far", Pharmacies: []entity.PharmacyPrice{{PharmacyID: "x", DistanceKm: 0.5}}}
		f := entity.DefaultMedicineFilter()
		f.Sort = entity.MedicineSortDistance
		page := FilterMedicines(append(seed.Medicines(), far), f)
		assert.Equal(t, "far", page.Items[0].ID)
	})
}

func TestPriceSortPutsUnpricedLast(t *testing.T) {
	unpriced := entity.Medicine{ID: "unpriced", Pharmacies: []entity.PharmacyPrice{{PharmacyID: "z", Status: entity.PharmacyAvailable}}}
	zero := decimal.Zero
	zeroPriced := entity.Medicine{ID: "zero", Pharmacies: []entity.PharmacyPrice{{PharmacyID: "z", Price: &zero, Status: entity.PharmacyAvailable}}}

	items := append([]entity.Medicine{unpriced, zeroPriced}, seed.Medicines()...)
	page := FilterMedicines(items, entity.DefaultMedicineFilter())

	assert.Equal(t, []string{"paracetamol-500", "tempra-forte-650", "unpriced", "zero"}, medicineIDs(page))
}

func TestMinPrice(t *testing.T) {
	lowest, ok := MinPrice(seed.Medicines()[1])
	require.True(t, ok)
	assert.True(t, lowest.Equal(decimal.RequireFromString("68.5")))

	_, ok = MinPrice(entity.Medicine{})
	assert.False(t, ok)
}

func TestAvailabilitySortIsStable(t *testing.T) {
	none := entity.Medicine{ID: "none", Pharmacies: []entity.PharmacyPrice{{PharmacyID: "a", Status: entity.PharmacyUnavailable}}}
	items := append([]entity.Medicine{none}, seed.Medicines()...)

	f := entity.DefaultMedicineFilter()
	f.Sort = entity.MedicineSortAvailability
	page := FilterMedicines(items, f)

	assert.Equal(t, []string{"paracetamol-500", "tempra-forte-650", "none"}, medicineIDs(page))
}

func TestFilterCenters(t *testing.T) {
	centers := seed.EmergencyCenters()

	t.Run("without origin keeps all in catalog order", func(t *testing.T) {
		page := FilterCenters(centers, entity.DefaultCenterFilter())
		assert.Equal(t, 4, page.Total)
		assert.Nil(t, page.Items[0].DistanceKm)
	})

	t.Run("origin applies radius and nearest-first order", func(t *testing.T) {
		f := entity.DefaultCenterFilter()
		f.Origin = &entity.Coordinates{Latitude: -12.0464, Longitude: -77.0428}
		page := FilterCenters(centers, f)

		require.Equal(t, 3, page.Total)
		assert.Equal(t, "dos-de-mayo", page.Items[0].ID)
		for i := 1; i < len(page.Items); i++ {
			assert.LessOrEqual(t, *page.Items[i-1].DistanceKm, *page.Items[i].DistanceKm)
		}
	})

	t.Run("search by district", func(t *testing.T) {
		f := entity.DefaultCenterFilter()
		f.Search = "san isidro"
		page := FilterCenters(centers, f)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "clinica-ricardo-palma", page.Items[0].ID)
	})
}

func TestDistanceKm(t *testing.T) {
	lima := entity.Coordinates{Latitude: -12.0464, Longitude: -77.0428}
	arequipa := entity.Coordinates{Latitude: -16.4090, Longitude: -71.5375}

	assert.InDelta(t, 0, DistanceKm(lima, lima), 1e-9)
	assert.InDelta(t, 765, DistanceKm(lima, arequipa), 15)
}

func TestPaginateHugeValues(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, math.MaxInt, 9, 10)
	assert.Empty(t, page.Items)
	assert.Equal(t, math.MaxInt, page.Page)
	assert.Equal(t, 1, page.TotalPages)

	page = Paginate(items, 1, math.MaxInt, 10)
	assert.Equal(t, []int{1, 2, 3}, page.Items)
	assert.Equal(t, 1, page.TotalPages)

	page = Paginate([]int{}, math.MaxInt, math.MaxInt, 10)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

func TestFilterDoctorsPageBeyondIntRange(t *testing.T) {
	f := entity.DefaultDoctorFilter()
	f.MinRating = 0
	f.Page = 1024819115206086202

	var page entity.ResultPage[entity.Doctor]
	require.NotPanics(t, func() { page = FilterDoctors(seed.Doctors(), f) })
	assert.Empty(t, page.Items)
	assert.Equal(t, 6, page.Total)
}

func TestFiltersAreIdempotent(t *testing.T) {
	doctorFilter := entity.DefaultDoctorFilter()
	doctorFilter.Search = "a"
	assert.Equal(t, FilterDoctors(seed.Doctors(), doctorFilter), FilterDoctors(seed.Doctors(), doctorFilter))

	medicineFilter := entity.DefaultMedicineFilter()
	medicineFilter.Sort = entity.MedicineSortDistance
	assert.Equal(t, FilterMedicines(seed.Medicines(), medicineFilter), FilterMedicines(seed.Medicines(), medicineFilter))

	centerFilter := entity.DefaultCenterFilter()
	centerFilter.Origin = &entity.Coordinates{Latitude: -12.1, Longitude: -77.03}
	assert.Equal(t, FilterCenters(seed.EmergencyCenters(), centerFilter), FilterCenters(seed.EmergencyCenters(), centerFilter))
}

var searchTerms = []string{"", "a", "ar", "CARDIO", "lima", "mg", "tempra", "clínica", "zzz", " "}

// Every search splits the catalog in two: kept items contain the text in a
// searchable field and dropped items contain it in none.
func TestSearchPartitionsCatalog(t *testing.T) {
	contains := func(search string, fields ...string) bool {
		return strings.Contains(strings.ToLower(strings.Join(fields, " ")), strings.ToLower(strings.TrimSpace(search)))
	}

	for _, term := range searchTerms {
		t.Run(fmt.Sprintf("doctors %q", term), func(t *testing.T) {
			f := entity.DefaultDoctorFilter()
			f.MinRating = 0
			f.Search = term
			f.PerPage = 100
			kept := map[string]bool{}
			for _, d := range FilterDoctors(seed.Doctors(), f).Items {
				kept[d.ID] = true
			}
			for _, d := range seed.Doctors() {
				assert.Equal(t, contains(term, d.Name, d.Specialty), kept[d.ID], d.ID)
			}
		})

		t.Run(fmt.Sprintf("medicines %q", term), func(t *testing.T) {
			f := entity.DefaultMedicineFilter()
			f.Search = term
			f.PerPage = 100
			kept := map[string]bool{}
			for _, m := range FilterMedicines(seed.Medicines(), f).Items {
				kept[m.ID] = true
			}
			for _, m := range seed.Medicines() {
				assert.Equal(t, contains(term, m.Name, m.Presentation, m.Description), kept[m.ID], m.ID)
			}
		})
	}
}

func TestMatchMedicines(t *testing.T) {
	medicines := seed.Medicines()

	t.Run("empty list yields an empty default page", func(t *testing.T) {
		page := MatchMedicines(medicines, entity.ShoppingList{})
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, entity.DefaultMedicinePerPage, page.PerPage)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("names match case-insensitively on the medicine name", func(t *testing.T) {
		page := MatchMedicines(medicines, entity.ShoppingList{Medicines: []entity.ShoppingListItem{
			{Name: " PARA ", Quantity: 2},
		}})
		assert.Equal(t, []string{"paracetamol-500"}, medicineIDs(page))
		assert.Equal(t, 1, page.Total)
		assert.Equal(t, 1, page.PerPage)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("any listed name is enough", func(t *testing.T) {
		page := MatchMedicines(medicines, entity.ShoppingList{Medicines: []entity.ShoppingListItem{
			{Name: "tempra", Quantity: 1},
			{Name: "paracetamol", Quantity: 1},
			{Name: "   "},
		}})
		assert.ElementsMatch(t, []string{"paracetamol-500", "tempra-forte-650"}, medicineIDs(page))
		assert.Equal(t, 2, page.PerPage)
	})

	t.Run("no match still reports one page", func(t *testing.T) {
		page := MatchMedicines(medicines, entity.ShoppingList{Medicines: []entity.ShoppingListItem{{Name: "ibuprofeno"}}})
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.PerPage)
		assert.Equal(t, 1, page.TotalPages)
	})
}
