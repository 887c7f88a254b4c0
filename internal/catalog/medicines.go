package catalog

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"vitalsync/internal/domain/entity"
)

// FilterMedicines applies the medicine criteria to the full list and returns
// the requested page. Sorting is stable and the input slice is not modified.
func FilterMedicines(medicines []entity.Medicine, filter entity.MedicineFilter) entity.ResultPage[entity.Medicine] {
	f := filter.Normalize()

	filtered := lo.Filter(medicines, func(m entity.Medicine, _ int) bool {
		if !matchesText(f.Search, m.Name, m.Presentation, m.Description) {
			return false
		}
		switch f.Availability {
		case entity.AvailabilityInStock:
			return hasInStockOffer(m)
		case entity.AvailabilityOutOfStock:
			return lo.ContainsBy(m.Pharmacies, func(p entity.PharmacyPrice) bool { return !p.InStock() })
		}
		return true
	})

	switch f.Sort {
	case entity.MedicineSortPrice:
		slices.SortStableFunc(filtered, compareByMinPrice)
	case entity.MedicineSortDistance:
		slices.SortStableFunc(filtered, func(a, b entity.Medicine) int {
			return cmp.Compare(minDistance(a), minDistance(b))
		})
	case entity.MedicineSortAvailability:
		slices.SortStableFunc(filtered, func(a, b entity.Medicine) int {
			return boolRank(hasInStockOffer(a)) - boolRank(hasInStockOffer(b))
		})
	}

	return Paginate(filtered, f.Page, f.PerPage, entity.DefaultMedicinePerPage)
}

// MinPrice returns the lowest published price among the medicine's offers.
// Offers without a positive price are ignored.
func MinPrice(m entity.Medicine) (decimal.Decimal, bool) {
	var (
		lowest decimal.Decimal
		found  bool
	)
	for _, p := range m.Pharmacies {
		if !p.Priced() {
			continue
		}
		if !found || p.Price.LessThan(lowest) {
			lowest = *p.Price
			found = true
		}
	}
	return lowest, found
}

func compareByMinPrice(a, b entity.Medicine) int {
	priceA, okA := MinPrice(a)
	priceB, okB := MinPrice(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return priceA.Cmp(priceB)
}

func minDistance(m entity.Medicine) float64 {
	if len(m.Pharmacies) == 0 {
		return math.Inf(1)
	}
	return lo.MinBy(m.Pharmacies, func(a, b entity.PharmacyPrice) bool {
		return a.DistanceKm < b.DistanceKm
	}).DistanceKm
}

func hasInStockOffer(m entity.Medicine) bool {
	return lo.ContainsBy(m.Pharmacies, func(p entity.PharmacyPrice) bool { return p.InStock() })
}

// boolRank orders true before false.
func boolRank(v bool) int {
	if v {
		return 0
	}
	return 1
}

// MatchMedicines returns, on a single page, every medicine whose name
// contains one of the list's names. An empty list yields an empty page with
// the default page size.
func MatchMedicines(medicines []entity.Medicine, list entity.ShoppingList) entity.ResultPage[entity.Medicine] {
	if len(list.Medicines) == 0 {
		return entity.ResultPage[entity.Medicine]{
			Items:      []entity.Medicine{},
			Page:       1,
			PerPage:    entity.DefaultMedicinePerPage,
			TotalPages: 1,
		}
	}

	names := list.Names()
	items := lo.Filter(medicines, func(m entity.Medicine, _ int) bool {
		name := strings.ToLower(m.Name)
		return lo.ContainsBy(names, func(target string) bool { return strings.Contains(name, target) })
	})

	return entity.ResultPage[entity.Medicine]{
		Items:      items,
		Total:      len(items),
		Page:       1,
		PerPage:    max(len(items), 1),
		TotalPages: 1,
	}
}
