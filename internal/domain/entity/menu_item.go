package entity

// MenuItem es un plato de la carta de un restaurante.
// Price en unidades menores de moneda (centavos).
type MenuItem struct {
	ID           int64
	RestaurantID int64
	Name         string
	Description  string
	Price        int64
	Image        string
	Category     string
}
