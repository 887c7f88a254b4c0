package converter

import (
	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/infrastructure/backend"
)

// LocationRequestToNew applies the defaults for omitted fields
func LocationRequestToNew(req *dto.CreateLocationRequest) backend.NewLocation {
	location := backend.NewLocation{
		Label:       req.Label,
		AddressLine: req.AddressLine,
		Tag:         entity.LocationTag(req.Tag),
	}
	if req.Latitude != nil {
		location.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		location.Longitude = *req.Longitude
	}
	if location.Label == "" {
		location.Label = entity.DefaultLocationLabel
	}
	if location.AddressLine == "" {
		location.AddressLine = entity.DefaultLocationAddress
	}
	if location.Tag == "" {
		location.Tag = entity.LocationOther
	}
	return location
}

func LocationToResponse(location *entity.UserLocation) *dto.LocationResponse {
	if location == nil {
		return nil
	}

	return &dto.LocationResponse{
		ID:          location.ID,
		Label:       location.Label,
		AddressLine: location.AddressLine,
		Latitude:    location.Latitude,
		Longitude:   location.Longitude,
		Tag:         string(location.Tag),
		IsPrimary:   location.IsPrimary,
	}
}

func LocationsToResponses(locations []entity.UserLocation) []dto.LocationResponse {
	responses := make([]dto.LocationResponse, len(locations))
	for i := range locations {
		responses[i] = *LocationToResponse(&locations[i])
	}
	return responses
}
