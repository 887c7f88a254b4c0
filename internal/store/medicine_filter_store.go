package store

import "vitalsync/internal/domain/entity"

type MedicineFilterPatch struct {
	Search       *string
	Sort         *entity.MedicineSort
	Availability *entity.MedicineAvailability
	PerPage      *int
}

type MedicineFilterStore struct {
	state *filterState[entity.MedicineFilter]
}

func NewMedicineFilterStore() *MedicineFilterStore {
	return &MedicineFilterStore{state: newFilterState(entity.DefaultMedicineFilter)}
}

// SetFilters merges the patch and resets the page to 1.
func (s *MedicineFilterStore) SetFilters(patch MedicineFilterPatch) {
	s.state.update(func(c *entity.MedicineFilter) {
		if patch.Search != nil {
			c.Search = *patch.Search
		}
		if patch.Sort != nil {
			c.Sort = *patch.Sort
		}
		if patch.Availability != nil {
			c.Availability = *patch.Availability
		}
		if patch.PerPage != nil && *patch.PerPage > 0 {
			c.PerPage = *patch.PerPage
		}
		c.Page = 1
	})
}

func (s *MedicineFilterStore) SetSearch(search string) {
	s.SetFilters(MedicineFilterPatch{Search: &search})
}

func (s *MedicineFilterStore) SetSort(sort entity.MedicineSort) {
	s.SetFilters(MedicineFilterPatch{Sort: &sort})
}

func (s *MedicineFilterStore) SetAvailability(availability entity.MedicineAvailability) {
	s.SetFilters(MedicineFilterPatch{Availability: &availability})
}

func (s *MedicineFilterStore) SetPage(page int) {
	s.state.update(func(c *entity.MedicineFilter) {
		c.Page = max(page, 1)
	})
}

func (s *MedicineFilterStore) ResetFilters() {
	s.state.reset()
}

func (s *MedicineFilterStore) Criteria() entity.MedicineFilter {
	return s.state.get()
}

func (s *MedicineFilterStore) Page() int {
	return s.state.get().Page
}

func (s *MedicineFilterStore) Subscribe(fn func(entity.MedicineFilter)) func() {
	return s.state.subscribe(fn)
}
