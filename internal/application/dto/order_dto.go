package dto

import (
	"time"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
)

// MenuItemRef referencia a un plato dentro de un pedido. Solo se usa el ID;
// el resto del snapshot lo toma el servidor de la carta vigente.
type MenuItemRef struct {
	ID int64 `json:"id" validate:"required"`
}

// OrderLineRequest línea del carrito enviada por el cliente.
type OrderLineRequest struct {
	MenuItem MenuItemRef `json:"menuItem"`
	Quantity int         `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear un pedido. El userId lo pone el servidor desde la sesión.
// Total es opcional: 0 se ignora, negativo se rechaza y cualquier otro debe coincidir con el calculado.
type CreateOrderRequest struct {
	RestaurantID int64              `json:"restaurantId" validate:"required"`
	Status       string             `json:"status"`
	Items        []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	Total        int64              `json:"total"`
}

// CartItemResponse línea de pedido: snapshot del plato + cantidad.
type CartItemResponse struct {
	MenuItem MenuItemResponse `json:"menuItem"`
	Quantity int              `json:"quantity"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID           int64              `json:"id"`
	UserID       int64              `json:"userId"`
	RestaurantID int64              `json:"restaurantId"`
	Status       string             `json:"status"`
	Items        []CartItemResponse `json:"items"`
	Total        int64              `json:"total"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func NewOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]CartItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, CartItemResponse{
			MenuItem: NewMenuItemResponse(it.MenuItem),
			Quantity: it.Quantity,
		})
	}
	return &OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		RestaurantID: o.RestaurantID,
		Status:       o.Status,
		Items:        items,
		Total:        o.Total,
		CreatedAt:    o.CreatedAt,
	}
}

// ToEntity reconstruye la entidad desde su forma de transporte.
func (r OrderResponse) ToEntity() *entity.Order {
	var items []entity.CartItem
	if len(r.Items) > 0 {
		items = make([]entity.CartItem, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, entity.CartItem{MenuItem: it.MenuItem.ToEntity(), Quantity: it.Quantity})
		}
	}
	return &entity.Order{
		ID:           r.ID,
		UserID:       r.UserID,
		RestaurantID: r.RestaurantID,
		Status:       r.Status,
		Items:        items,
		Total:        r.Total,
		CreatedAt:    r.CreatedAt,
	}
}
