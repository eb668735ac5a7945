package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FoodOrder-api/internal/application/dto"
	"github.com/jhoicas/FoodOrder-api/internal/application/usecase"
)

// RestaurantHandler catálogo público de restaurantes y carta.
type RestaurantHandler struct {
	uc *usecase.CatalogUseCase
}

// NewRestaurantHandler construye el handler.
func NewRestaurantHandler(uc *usecase.CatalogUseCase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc}
}

// List godoc
// @Summary      Listar restaurantes
// @Tags         restaurants
// @Produce      json
// @Success      200  {array}   dto.RestaurantResponse
// @Router       /api/restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListRestaurants(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener restaurante
// @Tags         restaurants
// @Produce      json
// @Param        id   path      int  true  "ID del restaurante"
// @Success      200  {object}  dto.RestaurantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id} [get]
func (h *RestaurantHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return restaurantNotFound(c)
	}
	r, err := h.uc.GetRestaurant(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if r == nil {
		return restaurantNotFound(c)
	}
	return c.JSON(r)
}

// Menu godoc
// @Summary      Carta de un restaurante
// @Tags         restaurants
// @Produce      json
// @Param        id   path      int  true  "ID del restaurante"
// @Success      200  {array}   dto.MenuItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id}/menu [get]
func (h *RestaurantHandler) Menu(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	items, err := h.uc.ListMenu(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

func restaurantNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Restaurant not found"})
}
