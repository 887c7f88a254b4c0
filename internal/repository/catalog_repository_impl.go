package repository

import (
	"context"

	"gorm.io/gorm"

	"vitalsync/internal/domain/entity"
	domainRepo "vitalsync/internal/domain/repository"
)

type medicineRepository struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) domainRepo.MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) FindAll(ctx context.Context) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := r.db.WithContext(ctx).Order("name ASC").Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

type centerRepository struct {
	db *gorm.DB
}

func NewCenterRepository(db *gorm.DB) domainRepo.CenterRepository {
	return &centerRepository{db: db}
}

func (r *centerRepository) FindAll(ctx context.Context) ([]entity.EmergencyCenter, error) {
	var centers []entity.EmergencyCenter
	err := r.db.WithContext(ctx).Order("name ASC").Find(&centers).Error
	if err != nil {
		return nil, err
	}
	return centers, nil
}
