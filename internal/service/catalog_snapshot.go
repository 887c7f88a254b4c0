package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"

	"vitalsync/internal/domain/entity"
	domainRepo "vitalsync/internal/domain/repository"
)

// CatalogSnapshot is the in-process copy of the local catalog that backs
// every list fallback. Fallbacks read it without touching the database.
type CatalogSnapshot struct {
	doctorRepo   domainRepo.DoctorRepository
	medicineRepo domainRepo.MedicineRepository
	centerRepo   domainRepo.CenterRepository
	log          *logrus.Logger

	mu        sync.RWMutex
	doctors   []entity.Doctor
	medicines []entity.Medicine
	centers   []entity.EmergencyCenter
}

func NewCatalogSnapshot(
	doctorRepo domainRepo.DoctorRepository,
	medicineRepo domainRepo.MedicineRepository,
	centerRepo domainRepo.CenterRepository,
	log *logrus.Logger,
) *CatalogSnapshot {
	return &CatalogSnapshot{
		doctorRepo:   doctorRepo,
		medicineRepo: medicineRepo,
		centerRepo:   centerRepo,
		log:          log,
	}
}

// Load reads the three catalogs in parallel. On any failure the previous
// snapshot is kept.
func (s *CatalogSnapshot) Load(ctx context.Context) error {
	var (
		doctors   []entity.Doctor
		medicines []entity.Medicine
		centers   []entity.EmergencyCenter
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		doctors, err = s.doctorRepo.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("load doctors: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) (err error) {
		medicines, err = s.medicineRepo.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("load medicines: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) (err error) {
		centers, err = s.centerRepo.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("load emergency centers: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		s.log.Warnf("Failed to load local catalog: %+v", err)
		return err
	}

	s.mu.Lock()
	s.doctors = doctors
	s.medicines = medicines
	s.centers = centers
	s.mu.Unlock()

	s.log.Infof("Local catalog loaded: %d doctors, %d medicines, %d emergency centers",
		len(doctors), len(medicines), len(centers))
	return nil
}

// The returned slices are shared; callers must not modify them.

func (s *CatalogSnapshot) Doctors() []entity.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doctors
}

func (s *CatalogSnapshot) Medicines() []entity.Medicine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.medicines
}

func (s *CatalogSnapshot) Centers() []entity.EmergencyCenter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.centers
}
