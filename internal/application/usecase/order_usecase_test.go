package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FoodOrder-api/internal/application/dto"
	"github.com/jhoicas/FoodOrder-api/internal/application/usecase"
	"github.com/jhoicas/FoodOrder-api/internal/domain"
	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/memory"
)

type fakeReceipts struct {
	calls int
	err   error
	last  *entity.Order
}

func (f *fakeReceipts) GenerateReceiptPDF(_ context.Context, o *entity.Order, _ *entity.Restaurant, _ *entity.User) ([]byte, error) {
	f.calls++
	f.last = o
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func setupOrders(t *testing.T) (*usecase.OrderUseCase, *memory.Store, *fakeReceipts, *entity.User) {
	t.Helper()
	store := newSeededStore(t)
	gen := &fakeReceipts{}
	u, err := store.CreateUser(context.Background(), entity.NewUser{Username: "alice", Password: "h"})
	require.NoError(t, err)
	return usecase.NewOrderUseCase(store, gen), store, gen, u
}

func line(id int64, qty int) dto.OrderLineRequest {
	return dto.OrderLineRequest{MenuItem: dto.MenuItemRef{ID: id}, Quantity: qty}
}

func TestPlace_CalculaTotalYUsaCartaVigente(t *testing.T) {
	uc, _, _, u := setupOrders(t)

	out, err := uc.Place(context.Background(), u.ID, dto.CreateOrderRequest{
		RestaurantID: 1,
		Items:        []dto.OrderLineRequest{line(4, 2), line(5, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, out.UserID)
	assert.Equal(t, entity.OrderStatusPending, out.Status, "estado por defecto")
	assert.Equal(t, int64(2*1499+699), out.Total)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Classic Burger", out.Items[0].MenuItem.Name)
	assert.Greater(t, out.ID, u.ID)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestPlace_TotalCoincidenteAceptado(t *testing.T) {
	uc, _, _, u := setupOrders(t)

	out, err := uc.Place(context.Background(), u.ID, dto.CreateOrderRequest{
		RestaurantID: 2,
		Status:       entity.OrderStatusPreparing,
		Items:        []dto.OrderLineRequest{line(8, 3)},
		Total:        3 * 799,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, out.Status)
}

func TestPlace_Errores(t *testing.T) {
	uc, store, _, u := setupOrders(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateOrderRequest
		want error
	}{
		{"restaurante inexistente", dto.CreateOrderRequest{RestaurantID: 99, Items: []dto.OrderLineRequest{line(4, 1)}}, domain.ErrNotFound},
		{"sin líneas", dto.CreateOrderRequest{RestaurantID: 1}, domain.ErrInvalidInput},
		{"cantidad cero", dto.CreateOrderRequest{RestaurantID: 1, Items: []dto.OrderLineRequest{line(4, 0)}}, domain.ErrInvalidInput},
		{"plato de otro restaurante", dto.CreateOrderRequest{RestaurantID: 1, Items: []dto.OrderLineRequest{line(6, 1)}}, domain.ErrInvalidInput},
		{"estado desconocido", dto.CreateOrderRequest{RestaurantID: 1, Status: "shipped", Items: []dto.OrderLineRequest{line(4, 1)}}, domain.ErrInvalidInput},
		{"total distinto", dto.CreateOrderRequest{RestaurantID: 1, Items: []dto.OrderLineRequest{line(4, 1)}, Total: 1}, domain.ErrInvalidInput},
		{"total negativo", dto.CreateOrderRequest{RestaurantID: 1, Items: []dto.OrderLineRequest{line(4, 1)}, Total: -1499}, domain.ErrInvalidInput},
		{"cantidad desborda el total", dto.CreateOrderRequest{RestaurantID: 1, Items: []dto.OrderLineRequest{line(4, 6153846153846154)}}, domain.ErrInvalidInput},
		{"suma de líneas desborda", dto.CreateOrderRequest{RestaurantID: 1, Items: []dto.OrderLineRequest{
			line(4, math.MaxInt64/1499), line(5, 1_000_000),
		}}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Place(ctx, u.ID, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	orders, err := store.GetUserOrders(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, orders, "ningún pedido inválido se guarda")
}

func TestListForUser_SoloPropios(t *testing.T) {
	uc, store, _, alice := setupOrders(t)
	ctx := context.Background()
	bob, err := store.CreateUser(ctx, entity.NewUser{Username: "bob", Password: "h"})
	require.NoError(t, err)

	_, err = uc.Place(ctx, alice.ID, dto.CreateOrderRequest{RestaurantID: 1, Items: []dto.OrderLineRequest{line(4, 1)}})
	require.NoError(t, err)
	_, err = uc.Place(ctx, bob.ID, dto.CreateOrderRequest{RestaurantID: 2, Items: []dto.OrderLineRequest{line(7, 1)}})
	require.NoError(t, err)
	_, err = uc.Place(ctx, alice.ID, dto.CreateOrderRequest{RestaurantID: 2, Items: []dto.OrderLineRequest{line(6, 1)}})
	require.NoError(t, err)

	list, err := uc.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID)

	none, err := uc.ListForUser(ctx, 12345)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestReceipt(t *testing.T) {
	uc, store, gen, alice := setupOrders(t)
	ctx := context.Background()
	bob, err := store.CreateUser(ctx, entity.NewUser{Username: "bob", Password: "h"})
	require.NoError(t, err)

	o, err := uc.Place(ctx, alice.ID, dto.CreateOrderRequest{RestaurantID: 1, Items: []dto.OrderLineRequest{line(4, 1)}})
	require.NoError(t, err)

	pdf, name, err := uc.Receipt(ctx, alice.ID, o.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Contains(t, name, ".pdf")
	assert.Equal(t, o.ID, gen.last.ID)

	_, _, err = uc.Receipt(ctx, bob.ID, o.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, _, err = uc.Receipt(ctx, alice.ID, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	gen.err = errors.New("fallo maroto")
	_, _, err = uc.Receipt(ctx, alice.ID, o.ID)
	assert.Error(t, err)
	assert.Equal(t, 2, gen.calls)
}
