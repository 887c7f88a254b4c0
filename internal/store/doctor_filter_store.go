package store

import "vitalsync/internal/domain/entity"

// DoctorFilterPatch carries the fields to change. Nil fields are untouched.
type DoctorFilterPatch struct {
	Search    *string
	Specialty *string
	Insurance *string
	Location  *string
	MinRating *float64
	PerPage   *int
}

type DoctorFilterStore struct {
	state *filterState[entity.DoctorFilter]
}

func NewDoctorFilterStore() *DoctorFilterStore {
	return &DoctorFilterStore{state: newFilterState(entity.DefaultDoctorFilter)}
}

// SetFilters merges the patch and resets the page to 1.
func (s *DoctorFilterStore) SetFilters(patch DoctorFilterPatch) {
	s.state.update(func(c *entity.DoctorFilter) {
		if patch.Search != nil {
			c.Search = *patch.Search
		}
		if patch.Specialty != nil {
			c.Specialty = *patch.Specialty
		}
		if patch.Insurance != nil {
			c.Insurance = *patch.Insurance
		}
		if patch.Location != nil {
			c.Location = *patch.Location
		}
		if patch.MinRating != nil {
			c.MinRating = *patch.MinRating
		}
		if patch.PerPage != nil && *patch.PerPage > 0 {
			c.PerPage = *patch.PerPage
		}
		c.Page = 1
	})
}

// SetSearch is SetFilters for the search text alone.
func (s *DoctorFilterStore) SetSearch(search string) {
	s.SetFilters(DoctorFilterPatch{Search: &search})
}

// SetPage changes only the page number.
func (s *DoctorFilterStore) SetPage(page int) {
	s.state.update(func(c *entity.DoctorFilter) {
		c.Page = max(page, 1)
	})
}

func (s *DoctorFilterStore) ResetFilters() {
	s.state.reset()
}

func (s *DoctorFilterStore) Criteria() entity.DoctorFilter {
	return s.state.get()
}

func (s *DoctorFilterStore) Page() int {
	return s.state.get().Page
}

// Subscribe registers fn for every change and returns its unsubscribe func.
func (s *DoctorFilterStore) Subscribe(fn func(entity.DoctorFilter)) func() {
	return s.state.subscribe(fn)
}
