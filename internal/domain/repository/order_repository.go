package repository

import (
	"context"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	// CreateOrder asigna ID y CreatedAt. No valida claves foráneas.
	CreateOrder(ctx context.Context, order entity.NewOrder) (*entity.Order, error)
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)
	GetUserOrders(ctx context.Context, userID int64) ([]*entity.Order, error)
}
