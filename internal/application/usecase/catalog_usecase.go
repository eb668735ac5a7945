package usecase

import (
	"context"

	"github.com/jhoicas/FoodOrder-api/internal/application/dto"
	"github.com/jhoicas/FoodOrder-api/internal/domain/repository"
)

// CatalogStore lo que el catálogo necesita del almacenamiento.
type CatalogStore interface {
	repository.RestaurantRepository
	repository.MenuRepository
}

// CatalogUseCase lectura de restaurantes y carta (público).
type CatalogUseCase struct {
	store CatalogStore
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(store CatalogStore) *CatalogUseCase {
	return &CatalogUseCase{store: store}
}

// ListRestaurants lista todos los restaurantes.
func (uc *CatalogUseCase) ListRestaurants(ctx context.Context) ([]dto.RestaurantResponse, error) {
	list, err := uc.store.GetRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *dto.NewRestaurantResponse(r))
	}
	return out, nil
}

// GetRestaurant obtiene un restaurante; (nil, nil) si no existe.
func (uc *CatalogUseCase) GetRestaurant(ctx context.Context, id int64) (*dto.RestaurantResponse, error) {
	r, err := uc.store.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRestaurantResponse(r), nil
}

// ListMenu carta del restaurante. Un restaurante inexistente devuelve lista vacía.
func (uc *CatalogUseCase) ListMenu(ctx context.Context, restaurantID int64) ([]dto.MenuItemResponse, error) {
	items, err := uc.store.GetMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuItemResponse, 0, len(items))
	for _, m := range items {
		out = append(out, dto.NewMenuItemResponse(*m))
	}
	return out, nil
}
