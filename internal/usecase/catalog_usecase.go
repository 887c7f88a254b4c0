package usecase

import (
	"context"

	"vitalsync/internal/domain/entity"
	"vitalsync/internal/service"
)

type CatalogUsecase interface {
	ListMedicines(ctx context.Context, filter entity.MedicineFilter) service.FetchResult[entity.Medicine]
	SearchMedicines(ctx context.Context, list entity.ShoppingList) service.FetchResult[entity.Medicine]
	ListEmergencyCenters(ctx context.Context, filter entity.CenterFilter) service.FetchResult[entity.CenterMatch]
}

type catalogUsecase struct {
	medicines    service.Fetcher[entity.MedicineFilter, entity.Medicine]
	shoppingList service.Fetcher[entity.ShoppingList, entity.Medicine]
	centers      service.Fetcher[entity.CenterFilter, entity.CenterMatch]
}

func NewCatalogUsecase(
	medicines service.Fetcher[entity.MedicineFilter, entity.Medicine],
	shoppingList service.Fetcher[entity.ShoppingList, entity.Medicine],
	centers service.Fetcher[entity.CenterFilter, entity.CenterMatch],
) CatalogUsecase {
	return &catalogUsecase{
		medicines:    medicines,
		shoppingList: shoppingList,
		centers:      centers,
	}
}

func (u *catalogUsecase) ListMedicines(ctx context.Context, filter entity.MedicineFilter) service.FetchResult[entity.Medicine] {
	return u.medicines.Fetch(ctx, filter)
}

// SearchMedicines matches a whole shopping list against the catalog.
func (u *catalogUsecase) SearchMedicines(ctx context.Context, list entity.ShoppingList) service.FetchResult[entity.Medicine] {
	return u.shoppingList.Fetch(ctx, list)
}

func (u *catalogUsecase) ListEmergencyCenters(ctx context.Context, filter entity.CenterFilter) service.FetchResult[entity.CenterMatch] {
	return u.centers.Fetch(ctx, filter)
}
