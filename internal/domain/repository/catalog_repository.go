package repository

import (
	"context"

	"vitalsync/internal/domain/entity"
)

type MedicineRepository interface {
	FindAll(ctx context.Context) ([]entity.Medicine, error)
}

type CenterRepository interface {
	FindAll(ctx context.Context) ([]entity.EmergencyCenter, error)
}
