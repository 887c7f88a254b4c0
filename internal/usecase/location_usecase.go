package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vitalsync/internal/converter"
	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/domain/repository"
	"vitalsync/internal/infrastructure/backend"
)

var ErrLocationNotFound = errors.New("location not found")

type LocationBackend interface {
	ListLocations(ctx context.Context) ([]entity.UserLocation, error)
	CreateLocation(ctx context.Context, location backend.NewLocation) (entity.UserLocation, error)
	MarkPrimaryLocation(ctx context.Context, id string) (entity.UserLocation, error)
	DeleteLocation(ctx context.Context, id string) error
}

type LocationUsecase interface {
	ListLocations(ctx context.Context) (*dto.LocationListResponse, error)
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	MarkPrimary(ctx context.Context, id string) (*dto.LocationResponse, error)
	DeleteLocation(ctx context.Context, id string) error
}

// locationUsecase calls the backend first and falls back to the local
// repository on any backend error.
type locationUsecase struct {
	log          *logrus.Logger
	locationRepo repository.LocationRepository
	backend      LocationBackend
}

func NewLocationUsecase(log *logrus.Logger, locationRepo repository.LocationRepository, backend LocationBackend) LocationUsecase {
	return &locationUsecase{
		log:          log,
		locationRepo: locationRepo,
		backend:      backend,
	}
}

func (u *locationUsecase) ListLocations(ctx context.Context) (*dto.LocationListResponse, error) {
	locations, err := u.backend.ListLocations(ctx)
	if err != nil {
		u.logFallback("list locations", err)
		locations, err = u.locationRepo.FindAll(ctx)
		if err != nil {
			u.log.Warnf("Failed to find locations: %+v", err)
			return nil, err
		}
	}

	return &dto.LocationListResponse{Items: converter.LocationsToResponses(locations)}, nil
}

func (u *locationUsecase) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	input := converter.LocationRequestToNew(req)

	created, err := u.backend.CreateLocation(ctx, input)
	if err == nil {
		return converter.LocationToResponse(&created), nil
	}
	u.logFallback("create location", err)

	location := &entity.UserLocation{
		ID:          uuid.NewString(),
		Label:       input.Label,
		AddressLine: input.AddressLine,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Tag:         input.Tag,
	}
	if err := u.locationRepo.Create(ctx, location); err != nil {
		u.log.Warnf("Failed to create location: %+v", err)
		return nil, err
	}

	return converter.LocationToResponse(location), nil
}

// MarkPrimary leaves exactly one primary location.
func (u *locationUsecase) MarkPrimary(ctx context.Context, id string) (*dto.LocationResponse, error) {
	updated, err := u.backend.MarkPrimaryLocation(ctx, id)
	if err == nil {
		return converter.LocationToResponse(&updated), nil
	}
	u.logFallback("mark primary location", err)

	location, err := u.locationRepo.MarkPrimary(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to mark primary location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	return converter.LocationToResponse(location), nil
}

func (u *locationUsecase) DeleteLocation(ctx context.Context, id string) error {
	err := u.backend.DeleteLocation(ctx, id)
	if err == nil {
		return nil
	}
	u.logFallback("delete location", err)

	deleted, err := u.locationRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete location: %+v", err)
		return err
	}
	if !deleted {
		return ErrLocationNotFound
	}
	return nil
}

func (u *locationUsecase) logFallback(op string, err error) {
	if backend.Kind(err) == "disabled" {
		return
	}
	u.log.Warnf("Failed to %s on backend, using local store: %+v", op, err)
}
