package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/infrastructure/backend"
	"vitalsync/internal/repository"
)

func float(v float64) *float64 { return &v }

func TestLocationsFallBackToLocalStore(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryLocationRepository()
	be := &mockLocationBackend{}
	be.On("ListLocations", mock.Anything).Return(nil, backend.ErrBackendDisabled)
	be.On("CreateLocation", mock.Anything, mock.Anything).Return(entity.UserLocation{}, backend.ErrBackendDisabled)
	be.On("MarkPrimaryLocation", mock.Anything, mock.Anything).Return(entity.UserLocation{}, backend.ErrBackendDisabled)
	be.On("DeleteLocation", mock.Anything, mock.Anything).Return(backend.ErrBackendDisabled)
	uc := NewLocationUsecase(quietLogger(), repo, be)

	created, err := uc.CreateLocation(ctx, &dto.CreateLocationRequest{Latitude: float(-12.1), Longitude: float(-77.03)})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultLocationLabel, created.Label)
	assert.Equal(t, string(entity.LocationOther), created.Tag)
	assert.False(t, created.IsPrimary)

	primary, err := uc.MarkPrimary(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, primary.IsPrimary)

	list, err := uc.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	for _, item := range list.Items {
		assert.Equal(t, item.ID == created.ID, item.IsPrimary)
	}

	require.NoError(t, uc.DeleteLocation(ctx, created.ID))
	assert.ErrorIs(t, uc.DeleteLocation(ctx, created.ID), ErrLocationNotFound)

	_, err = uc.MarkPrimary(ctx, "beach")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestLocationsPreferBackend(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryLocationRepository()
	be := &mockLocationBackend{}
	be.On("ListLocations", mock.Anything).Return([]entity.UserLocation{{ID: "remote", Label: "Remota", IsPrimary: true}}, nil)
	be.On("DeleteLocation", mock.Anything, "remote").Return(nil)
	uc := NewLocationUsecase(quietLogger(), repo, be)

	list, err := uc.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "remote", list.Items[0].ID)

	require.NoError(t, uc.DeleteLocation(ctx, "remote"))
	local, _ := repo.FindAll(ctx)
	assert.Len(t, local, 2)
	be.AssertExpectations(t)
}
