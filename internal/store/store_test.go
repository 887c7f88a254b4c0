package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalsync/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func TestDoctorFilterStoreSetFiltersResetsPage(t *testing.T) {
	s := NewDoctorFilterStore()
	s.SetPage(3)
	require.Equal(t, 3, s.Page())

	s.SetFilters(DoctorFilterPatch{MinRating: ptr(4.5), Insurance: ptr("Privado")})

	c := s.Criteria()
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 4.5, c.MinRating)
	assert.Equal(t, "Privado", c.Insurance)
	assert.Equal(t, entity.FilterAll, c.Specialty)
}

func TestDoctorFilterStoreSetPageKeepsCriteria(t *testing.T) {
	s := NewDoctorFilterStore()
	s.SetSearch("vargas")
	before := s.Criteria()

	s.SetPage(2)

	after := s.Criteria()
	assert.Equal(t, 2, after.Page)
	after.Page = before.Page
	assert.Equal(t, before, after)
}

func TestDoctorFilterStoreReset(t *testing.T) {
	s := NewDoctorFilterStore()
	s.SetFilters(DoctorFilterPatch{Search: ptr("x"), Location: ptr("Cusco"), PerPage: ptr(3)})
	s.SetPage(4)

	s.ResetFilters()

	assert.Equal(t, entity.DefaultDoctorFilter(), s.Criteria())
}

func TestDoctorFilterStoreSetPageFloorsAtOne(t *testing.T) {
	s := NewDoctorFilterStore()
	s.SetPage(-2)
	assert.Equal(t, 1, s.Page())
}

func TestStoreNotifiesSubscribersInOrder(t *testing.T) {
	s := NewMedicineFilterStore()
	var seen []string

	unsubscribeA := s.Subscribe(func(c entity.MedicineFilter) { seen = append(seen, "a:"+c.Search) })
	s.Subscribe(func(c entity.MedicineFilter) { seen = append(seen, "b:"+c.Search) })

	s.SetSearch("para")
	unsubscribeA()
	s.SetSearch("ibu")

	assert.Equal(t, []string{"a:para", "b:para", "b:ibu"}, seen)
}

func TestMedicineFilterStore(t *testing.T) {
	s := NewMedicineFilterStore()
	assert.Equal(t, entity.DefaultMedicineFilter(), s.Criteria())

	s.SetPage(2)
	s.SetSort(entity.MedicineSortDistance)
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, entity.MedicineSortDistance, s.Criteria().Sort)

	s.SetPage(5)
	s.SetAvailability(entity.AvailabilityInStock)
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, entity.AvailabilityInStock, s.Criteria().Availability)

	s.SetPage(2)
	assert.Equal(t, entity.MedicineSortDistance, s.Criteria().Sort)
	assert.Equal(t, 2, s.Page())

	s.ResetFilters()
	assert.Equal(t, entity.DefaultMedicineFilter(), s.Criteria())
}

func TestConcurrentUpdatesReachSubscribersInOrder(t *testing.T) {
	for round := 0; round < 500; round++ {
		s := NewDoctorFilterStore()
		var (
			mu   sync.Mutex
			last int
		)
		s.Subscribe(func(c entity.DoctorFilter) {
			mu.Lock()
			last = c.Page
			mu.Unlock()
		})

		var wg sync.WaitGroup
		for page := 2; page <= 9; page++ {
			wg.Add(1)
			go func(page int) {
				defer wg.Done()
				s.SetPage(page)
			}(page)
		}
		wg.Wait()

		mu.Lock()
		notified := last
		mu.Unlock()
		require.Equal(t, s.Page(), notified, "round %d", round)
	}
}
