package repository

import (
	"context"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
)

// RestaurantRepository define el puerto de lectura del catálogo de restaurantes.
type RestaurantRepository interface {
	GetRestaurants(ctx context.Context) ([]*entity.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*entity.Restaurant, error)
}

// MenuRepository define el puerto de lectura de la carta.
type MenuRepository interface {
	// GetMenuItems devuelve un slice vacío (no error) si el restaurante no tiene platos o no existe.
	GetMenuItems(ctx context.Context, restaurantID int64) ([]*entity.MenuItem, error)
}
