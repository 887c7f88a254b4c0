package catalog

import (
	"cmp"
	"math"
	"slices"

	"github.com/samber/lo"

	"vitalsync/internal/domain/entity"
)

const earthRadiusKm = 6371.0

// DistanceKm is the great-circle distance between two points.
func DistanceKm(a, b entity.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// FilterCenters applies the text search and, when an origin is given, the
// distance radius. Matches with an origin are sorted nearest first.
func FilterCenters(centers []entity.EmergencyCenter, filter entity.CenterFilter) entity.ResultPage[entity.CenterMatch] {
	f := filter.Normalize()

	matches := lo.FilterMap(centers, func(c entity.EmergencyCenter, _ int) (entity.CenterMatch, bool) {
		if !matchesText(f.Search, c.Name, c.District, c.Address) {
			return entity.CenterMatch{}, false
		}
		match := entity.CenterMatch{EmergencyCenter: c}
		if f.Origin != nil {
			d := DistanceKm(*f.Origin, entity.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude})
			if d > f.MaxDistanceKm {
				return entity.CenterMatch{}, false
			}
			match.DistanceKm = &d
		}
		return match, true
	})

	if f.Origin != nil {
		slices.SortStableFunc(matches, func(a, b entity.CenterMatch) int {
			return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
		})
	}

	return Paginate(matches, f.Page, f.PerPage, entity.DefaultCenterPerPage)
}
