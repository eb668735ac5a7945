package entity

import "time"

// Estados de un pedido.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// CartItem línea de un pedido: copia del plato al momento de pedir + cantidad.
type CartItem struct {
	MenuItem MenuItem
	Quantity int
}

// Order representa un pedido de un usuario a un restaurante.
// CreatedAt lo asigna el almacenamiento; un pedido no se modifica después de creado.
type Order struct {
	ID           int64
	UserID       int64
	RestaurantID int64
	Status       string
	Items        []CartItem
	Total        int64 // centavos
	CreatedAt    time.Time
}

// NewOrder datos de entrada para crear un pedido (Order sin ID ni CreatedAt).
type NewOrder struct {
	UserID       int64
	RestaurantID int64
	Status       string
	Items        []CartItem
	Total        int64
}

// ValidOrderStatus indica si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
