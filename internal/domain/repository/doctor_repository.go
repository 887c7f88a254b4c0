package repository

import (
	"context"

	"vitalsync/internal/domain/entity"
)

// DoctorRepository is the local doctor catalog. Finders return nil, nil when
// the record does not exist.
type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	FindProfile(ctx context.Context, doctorID string) (*entity.DoctorProfile, error)
	FindReviews(ctx context.Context, doctorID string) ([]entity.DoctorReview, error)
	CreateReview(ctx context.Context, review *entity.DoctorReview) error
	DeleteReview(ctx context.Context, id string) error
}
