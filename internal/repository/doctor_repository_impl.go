package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vitalsync/internal/domain/entity"
	domainRepo "vitalsync/internal/domain/repository"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).Order("name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindProfile(ctx context.Context, doctorID string) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := r.db.WithContext(ctx).Preload("Doctor").Where("doctor_id = ?", doctorID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorRepository) FindReviews(ctx context.Context, doctorID string) ([]entity.DoctorReview, error) {
	var reviews []entity.DoctorReview
	err := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *doctorRepository) CreateReview(ctx context.Context, review *entity.DoctorReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *doctorRepository) DeleteReview(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DoctorReview{}).Error
}
