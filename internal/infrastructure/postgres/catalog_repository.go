package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
	"github.com/jhoicas/FoodOrder-api/internal/domain/repository"
)

var (
	_ repository.RestaurantRepository = (*CatalogRepo)(nil)
	_ repository.MenuRepository       = (*CatalogRepo)(nil)
)

// CatalogRepo lectura de restaurantes y carta sobre PostgreSQL.
// El catálogo se carga con el script generado por cmd/seed_catalog.
type CatalogRepo struct {
	db querier
}

// NewCatalogRepository construye el adaptador de lectura del catálogo.
func NewCatalogRepository(db querier) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// GetRestaurants lista todos los restaurantes ordenados por ID.
func (r *CatalogRepo) GetRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, image, cuisine, rating
		FROM restaurants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Restaurant, 0)
	for rows.Next() {
		var x entity.Restaurant
		if err := rows.Scan(&x.ID, &x.Name, &x.Description, &x.Image, &x.Cuisine, &x.Rating); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		list = append(list, &x)
	}
	return list, rows.Err()
}

// GetRestaurant obtiene un restaurante por ID.
func (r *CatalogRepo) GetRestaurant(ctx context.Context, id int64) (*entity.Restaurant, error) {
	var x entity.Restaurant
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, image, cuisine, rating
		FROM restaurants WHERE id = $1`, id).
		Scan(&x.ID, &x.Name, &x.Description, &x.Image, &x.Cuisine, &x.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &x, nil
}

// GetMenuItems platos de un restaurante ordenados por ID; vacío si no hay.
func (r *CatalogRepo) GetMenuItems(ctx context.Context, restaurantID int64) ([]*entity.MenuItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, name, description, price, image, category
		FROM menu_items WHERE restaurant_id = $1 ORDER BY id`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.MenuItem, 0)
	for rows.Next() {
		var m entity.MenuItem
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.Price, &m.Image, &m.Category); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
