package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
	"github.com/jhoicas/FoodOrder-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// orderItemRow forma JSONB de una línea de pedido (igual a la del API).
type orderItemRow struct {
	MenuItem struct {
		ID           int64  `json:"id"`
		RestaurantID int64  `json:"restaurantId"`
		Name         string `json:"name"`
		Description  string `json:"description"`
		Price        int64  `json:"price"`
		Image        string `json:"image"`
		Category     string `json:"category"`
	} `json:"menuItem"`
	Quantity int `json:"quantity"`
}

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	db  querier
	now func() time.Time
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(db querier) *OrderRepo {
	return &OrderRepo{db: db, now: time.Now}
}

// CreateOrder inserta el pedido con ID de la secuencia compartida y created_at del servidor.
func (r *OrderRepo) CreateOrder(ctx context.Context, in entity.NewOrder) (*entity.Order, error) {
	items, err := encodeItems(in.Items)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO orders (id, user_id, restaurant_id, status, items, total, created_at)
		VALUES (nextval('entity_id_seq'), $1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, restaurant_id, status, items, total, created_at`
	row := r.db.QueryRow(ctx, query,
		in.UserID, in.RestaurantID, in.Status, string(items), in.Total, r.now().UTC(),
	)
	o, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

// GetOrder obtiene un pedido por ID.
func (r *OrderRepo) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, restaurant_id, status, items, total, created_at
		FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// GetUserOrders pedidos del usuario en orden de creación.
func (r *OrderRepo) GetUserOrders(ctx context.Context, userID int64) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, restaurant_id, status, items, total, created_at
		FROM orders WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o   entity.Order
		raw []byte
	)
	if err := row.Scan(&o.ID, &o.UserID, &o.RestaurantID, &o.Status, &raw, &o.Total, &o.CreatedAt); err != nil {
		return nil, err
	}
	items, err := decodeItems(raw)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func encodeItems(items []entity.CartItem) ([]byte, error) {
	rows := make([]orderItemRow, 0, len(items))
	for _, it := range items {
		var row orderItemRow
		row.MenuItem.ID = it.MenuItem.ID
		row.MenuItem.RestaurantID = it.MenuItem.RestaurantID
		row.MenuItem.Name = it.MenuItem.Name
		row.MenuItem.Description = it.MenuItem.Description
		row.MenuItem.Price = it.MenuItem.Price
		row.MenuItem.Image = it.MenuItem.Image
		row.MenuItem.Category = it.MenuItem.Category
		row.Quantity = it.Quantity
		rows = append(rows, row)
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}
	return b, nil
}

func decodeItems(raw []byte) ([]entity.CartItem, error) {
	var rows []orderItemRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	items := make([]entity.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.CartItem{
			MenuItem: entity.MenuItem{
				ID:           row.MenuItem.ID,
				RestaurantID: row.MenuItem.RestaurantID,
				Name:         row.MenuItem.Name,
				Description:  row.MenuItem.Description,
				Price:        row.MenuItem.Price,
				Image:        row.MenuItem.Image,
				Category:     row.MenuItem.Category,
			},
			Quantity: row.Quantity,
		})
	}
	return items, nil
}
