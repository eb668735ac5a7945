package dto

import "github.com/jhoicas/FoodOrder-api/internal/domain/entity"

// RestaurantResponse salida de un restaurante.
type RestaurantResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Cuisine     string `json:"cuisine"`
	Rating      int    `json:"rating"`
}

// MenuItemResponse salida de un plato. Price en centavos.
type MenuItemResponse struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	Image        string `json:"image"`
	Category     string `json:"category"`
}

func NewRestaurantResponse(r *entity.Restaurant) *RestaurantResponse {
	if r == nil {
		return nil
	}
	return &RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Cuisine:     r.Cuisine,
		Rating:      r.Rating,
	}
}

func NewMenuItemResponse(m entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Image:        m.Image,
		Category:     m.Category,
	}
}

// ToEntity reconstruye la entidad desde su forma de transporte.
func (m MenuItemResponse) ToEntity() entity.MenuItem {
	return entity.MenuItem{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Image:        m.Image,
		Category:     m.Category,
	}
}
