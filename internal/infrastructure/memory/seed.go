package memory

import "github.com/jhoicas/FoodOrder-api/internal/domain/entity"

// DefaultRestaurants catálogo inicial cargado al construir el store.
func DefaultRestaurants() []entity.Restaurant {
	return []entity.Restaurant{
		{
			ID:          1,
			Name:        "Urban Kitchen",
			Description: "Modern fusion cuisine in a contemporary setting",
			Image:       "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4",
			Cuisine:     "Fusion",
			Rating:      4,
		},
		{
			ID:          2,
			Name:        "Pasta Paradise",
			Description: "Authentic Italian pasta and pizzas",
			Image:       "https://images.unsplash.com/photo-1497644083578-611b798c60f3",
			Cuisine:     "Italian",
			Rating:      5,
		},
		{
			ID:          3,
			Name:        "Sakura Sushi",
			Description: "Fresh sushi and Japanese street food",
			Image:       "https://images.unsplash.com/photo-1579871494447-9811cf80d66c",
			Cuisine:     "Japanese",
			Rating:      4,
		},
	}
}

// DefaultMenuItems carta inicial. Los IDs continúan la numeración de DefaultRestaurants,
// como si los hubiera asignado el contador compartido.
func DefaultMenuItems() []entity.MenuItem {
	return []entity.MenuItem{
		{
			ID:           4,
			RestaurantID: 1,
			Name:         "Classic Burger",
			Description:  "Juicy beef patty with fresh vegetables",
			Price:        1499,
			Image:        "https://images.unsplash.com/photo-1633457027853-106d9bed16ce",
			Category:     "Main Course",
		},
		{
			ID:           5,
			RestaurantID: 1,
			Name:         "Truffle Fries",
			Description:  "Crispy fries with truffle oil and parmesan",
			Price:        699,
			Image:        "https://images.unsplash.com/photo-1573080496219-bb080dd4f877",
			Category:     "Sides",
		},
		{
			ID:           6,
			RestaurantID: 2,
			Name:         "Spaghetti Carbonara",
			Description:  "Guanciale, pecorino and egg yolk",
			Price:        1699,
			Image:        "https://images.unsplash.com/photo-1612874742237-6526221588e3",
			Category:     "Main Course",
		},
		{
			ID:           7,
			RestaurantID: 2,
			Name:         "Margherita Pizza",
			Description:  "San Marzano tomato, mozzarella and basil",
			Price:        1399,
			Image:        "https://images.unsplash.com/photo-1574071318508-1cdbab80d002",
			Category:     "Main Course",
		},
		{
			ID:           8,
			RestaurantID: 2,
			Name:         "Tiramisu",
			Description:  "Mascarpone, espresso and cocoa",
			Price:        799,
			Image:        "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9",
			Category:     "Dessert",
		},
	}
}
