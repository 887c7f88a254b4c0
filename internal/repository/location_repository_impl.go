package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vitalsync/internal/domain/entity"
	domainRepo "vitalsync/internal/domain/repository"
)

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) domainRepo.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) FindAll(ctx context.Context) ([]entity.UserLocation, error) {
	var locations []entity.UserLocation
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) FindByID(ctx context.Context, id string) (*entity.UserLocation, error) {
	var location entity.UserLocation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) Create(ctx context.Context, location *entity.UserLocation) error {
	return r.db.WithContext(ctx).Create(location).Error
}

// MarkPrimary clears the flag on every location and sets it on id in one
// transaction.
func (r *locationRepository) MarkPrimary(ctx context.Context, id string) (*entity.UserLocation, error) {
	var updated *entity.UserLocation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var location entity.UserLocation
		if err := tx.Where("id = ?", id).First(&location).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.UserLocation{}).Where("is_primary = ?", true).Update("is_primary", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&location).Update("is_primary", true).Error; err != nil {
			return err
		}
		location.IsPrimary = true
		updated = &location
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return updated, nil
}

func (r *locationRepository) Delete(ctx context.Context, id string) (bool, error) {
	affected := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.UserLocation{})
	return affected.RowsAffected > 0, affected.Error
}
