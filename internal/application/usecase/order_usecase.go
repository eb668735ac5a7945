package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/jhoicas/FoodOrder-api/internal/application/dto"
	"github.com/jhoicas/FoodOrder-api/internal/domain"
	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
	"github.com/jhoicas/FoodOrder-api/internal/domain/repository"
)

// OrderStore lo que los pedidos necesitan del almacenamiento.
type OrderStore interface {
	repository.UserRepository
	repository.RestaurantRepository
	repository.MenuRepository
	repository.OrderRepository
}

// OrderUseCase creación y consulta de pedidos del usuario autenticado.
//
// El almacenamiento no valida claves foráneas; esa validación vive aquí: el restaurante
// debe existir y cada plato debe pertenecer a su carta. El precio y el snapshot del plato
// se toman siempre de la carta vigente, nunca del cliente.
type OrderUseCase struct {
	store    OrderStore
	receipts ReceiptPDFGenerator
}

// NewOrderUseCase construye el caso de uso. receipts puede ser nil si no se sirven comprobantes.
func NewOrderUseCase(store OrderStore, receipts ReceiptPDFGenerator) *OrderUseCase {
	return &OrderUseCase{store: store, receipts: receipts}
}

// Place crea un pedido para userID.
//
// Retorna:
//   - domain.ErrNotFound     si el restaurante no existe.
//   - domain.ErrInvalidInput si no hay líneas, una cantidad es < 1, un plato no es de la carta,
//     el estado es desconocido, el total enviado es negativo o no coincide con el calculado,
//     o el total desborda int64.
func (uc *OrderUseCase) Place(ctx context.Context, userID int64, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	restaurant, err := uc.store.GetRestaurant(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: el pedido no tiene líneas", domain.ErrInvalidInput)
	}

	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, status)
	}

	menu, err := uc.store.GetMenuItems(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	items := make([]entity.CartItem, 0, len(in.Items))
	var total int64
	for _, line := range in.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: cantidad %d inválida", domain.ErrInvalidInput, line.Quantity)
		}
		m, ok := byID[line.MenuItem.ID]
		if !ok {
			return nil, fmt.Errorf("%w: el plato %d no pertenece al restaurante %d",
				domain.ErrInvalidInput, line.MenuItem.ID, restaurant.ID)
		}
		if m.Price > 0 && int64(line.Quantity) > (math.MaxInt64-total)/m.Price {
			return nil, fmt.Errorf("%w: el total del pedido desborda", domain.ErrInvalidInput)
		}
		items = append(items, entity.CartItem{MenuItem: *m, Quantity: line.Quantity})
		total += m.Price * int64(line.Quantity)
	}
	if in.Total < 0 {
		return nil, fmt.Errorf("%w: total %d negativo", domain.ErrInvalidInput, in.Total)
	}
	if in.Total > 0 && in.Total != total {
		return nil, fmt.Errorf("%w: total %d no coincide con %d", domain.ErrInvalidInput, in.Total, total)
	}

	order, err := uc.store.CreateOrder(ctx, entity.NewOrder{
		UserID:       userID,
		RestaurantID: restaurant.ID,
		Status:       status,
		Items:        items,
		Total:        total,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

// ListForUser pedidos del usuario en orden de creación.
func (uc *OrderUseCase) ListForUser(ctx context.Context, userID int64) ([]dto.OrderResponse, error) {
	orders, err := uc.store.GetUserOrders(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *dto.NewOrderResponse(o))
	}
	return out, nil
}

// Receipt genera el comprobante PDF de un pedido del usuario.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el pedido no existe.
//   - domain.ErrForbidden       si el pedido es de otro usuario.
func (uc *OrderUseCase) Receipt(ctx context.Context, userID, orderID int64) ([]byte, string, error) {
	if uc.receipts == nil {
		return nil, "", fmt.Errorf("receipt: generador no configurado")
	}
	order, err := uc.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, "", domain.ErrForbidden
	}
	restaurant, err := uc.store.GetRestaurant(ctx, order.RestaurantID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener restaurante: %w", err)
	}
	if restaurant == nil {
		// El restaurante pudo desaparecer de un catálogo durable; el comprobante sale igual.
		restaurant = &entity.Restaurant{ID: order.RestaurantID, Name: fmt.Sprintf("Restaurante #%d", order.RestaurantID)}
	}
	user, err := uc.store.GetUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener usuario: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}

	pdf, err := uc.receipts.GenerateReceiptPDF(ctx, order, restaurant, user)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("pedido-%d.pdf", order.ID), nil
}
