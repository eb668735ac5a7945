package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FoodOrder-api/internal/domain"
	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/memory"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/postgres"
	"github.com/jhoicas/FoodOrder-api/pkg/config"
)

// newTestStorage conecta a TEST_DATABASE_URL, aplica db/schema.sql y vacía las tablas.
// Sin la variable el test se omite.
func newTestStorage(t *testing.T) *postgres.Storage {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)

	schema, err := os.ReadFile("../../../db/schema.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `TRUNCATE users, restaurants, menu_items, orders`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
		INSERT INTO restaurants (id, name, description, image, cuisine, rating)
		VALUES (1, 'Urban Kitchen', 'Modern fusion', 'img', 'Fusion', 4)`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
		INSERT INTO menu_items (id, restaurant_id, name, description, price, image, category)
		VALUES (2, 1, 'Classic Burger', 'Juicy', 1499, 'img', 'Main Course')`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `SELECT setval('entity_id_seq', 2)`)
	require.NoError(t, err)

	s := postgres.NewStorage(pool, memory.NewSessionStore(memory.SessionStoreConfig{}))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPostgresStorage_FlujoCompleto(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	alice, err := s.CreateUser(ctx, entity.NewUser{Username: "alice", Password: "h1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), alice.ID, "el contador arranca por encima del catálogo")
	assert.False(t, alice.IsAdmin)

	_, err = s.CreateUser(ctx, entity.NewUser{Username: "alice", Password: "h2"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	items, err := s.GetMenuItems(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)

	none, err := s.GetMenuItems(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)

	before := time.Now().Add(-time.Second)
	o, err := s.CreateOrder(ctx, entity.NewOrder{
		UserID: alice.ID, RestaurantID: 1, Status: entity.OrderStatusPending,
		Items: []entity.CartItem{{MenuItem: *items[0], Quantity: 2}}, Total: 2998,
	})
	require.NoError(t, err)
	assert.Greater(t, o.ID, alice.ID)
	assert.True(t, o.CreatedAt.After(before))

	orders, err := s.GetUserOrders(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o.Items, orders[0].Items)
	assert.Equal(t, int64(2998), orders[0].Total)
}
