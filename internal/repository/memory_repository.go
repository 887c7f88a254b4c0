package repository

import (
	"context"
	"slices"
	"sync"

	"vitalsync/internal/domain/entity"
	domainRepo "vitalsync/internal/domain/repository"
	"vitalsync/internal/infrastructure/seed"
)

// memoryDoctorRepository serves the seed catalog when no database is
// configured. Reviews are kept newest first.
type memoryDoctorRepository struct {
	mu       sync.RWMutex
	doctors  []entity.Doctor
	profiles map[string]entity.DoctorProfile
	reviews  []entity.DoctorReview
}

func NewMemoryDoctorRepository() domainRepo.DoctorRepository {
	profiles := make(map[string]entity.DoctorProfile)
	for _, p := range seed.DoctorProfiles() {
		profiles[p.DoctorID] = p
	}
	return &memoryDoctorRepository{
		doctors:  seed.Doctors(),
		profiles: profiles,
		reviews:  seed.DoctorReviews(),
	}
}

func (r *memoryDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.doctors), nil
}

func (r *memoryDoctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.doctors {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, nil
}

func (r *memoryDoctorRepository) FindProfile(ctx context.Context, doctorID string) (*entity.DoctorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[doctorID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (r *memoryDoctorRepository) FindReviews(ctx context.Context, doctorID string) ([]entity.DoctorReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var reviews []entity.DoctorReview
	for _, review := range r.reviews {
		if review.DoctorID == doctorID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *memoryDoctorRepository) CreateReview(ctx context.Context, review *entity.DoctorReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = slices.Insert(r.reviews, 0, *review)
	return nil
}

func (r *memoryDoctorRepository) DeleteReview(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = slices.DeleteFunc(r.reviews, func(review entity.DoctorReview) bool {
		return review.ID == id
	})
	return nil
}

type memoryMedicineRepository struct {
	medicines []entity.Medicine
}

func NewMemoryMedicineRepository() domainRepo.MedicineRepository {
	return &memoryMedicineRepository{medicines: seed.Medicines()}
}

func (r *memoryMedicineRepository) FindAll(ctx context.Context) ([]entity.Medicine, error) {
	return slices.Clone(r.medicines), nil
}

type memoryCenterRepository struct {
	centers []entity.EmergencyCenter
}

func NewMemoryCenterRepository() domainRepo.CenterRepository {
	return &memoryCenterRepository{centers: seed.EmergencyCenters()}
}

func (r *memoryCenterRepository) FindAll(ctx context.Context) ([]entity.EmergencyCenter, error) {
	return slices.Clone(r.centers), nil
}

type memoryLocationRepository struct {
	mu        sync.RWMutex
	locations []entity.UserLocation
}

func NewMemoryLocationRepository() domainRepo.LocationRepository {
	return &memoryLocationRepository{locations: seed.Locations()}
}

func (r *memoryLocationRepository) FindAll(ctx context.Context) ([]entity.UserLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.locations), nil
}

func (r *memoryLocationRepository) FindByID(ctx context.Context, id string) (*entity.UserLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.locations {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, nil
}

func (r *memoryLocationRepository) Create(ctx context.Context, location *entity.UserLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations = append(r.locations, *location)
	return nil
}

func (r *memoryLocationRepository) MarkPrimary(ctx context.Context, id string) (*entity.UserLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := slices.IndexFunc(r.locations, func(l entity.UserLocation) bool { return l.ID == id })
	if idx < 0 {
		return nil, nil
	}
	for i := range r.locations {
		r.locations[i].IsPrimary = i == idx
	}
	updated := r.locations[idx]
	return &updated, nil
}

func (r *memoryLocationRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	before := len(r.locations)
	r.locations = slices.DeleteFunc(r.locations, func(l entity.UserLocation) bool { return l.ID == id })
	return len(r.locations) < before, nil
}
