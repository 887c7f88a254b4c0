package repository

import (
	"context"

	"vitalsync/internal/domain/entity"
)

// LocationRepository stores saved addresses. MarkPrimary and FindByID return
// nil, nil for an unknown id; Delete reports whether a row was removed.
type LocationRepository interface {
	FindAll(ctx context.Context) ([]entity.UserLocation, error)
	FindByID(ctx context.Context, id string) (*entity.UserLocation, error)
	Create(ctx context.Context, location *entity.UserLocation) error
	MarkPrimary(ctx context.Context, id string) (*entity.UserLocation, error)
	Delete(ctx context.Context, id string) (bool, error)
}
