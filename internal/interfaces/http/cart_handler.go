package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-pro/internal/application/dto"
	"github.com/tu-usuario/catalogo-pro/internal/application/store"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

// CartHandler maneja el slice de carrito de la sesión. Las mutaciones del
// slice son totales: el único error posible aquí es de entrada.
type CartHandler struct{}

// NewCartHandler construye el handler.
func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

// Get godoc
// @Summary      Estado del carrito de la sesión
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(cartResponse(GetSessionStore(c)))
}

// Add godoc
// @Summary      Agregar un producto al carrito (repetir incrementa cantidad)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto a agregar"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ID <= 0 || in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id y title son requeridos"})
	}

	st := GetSessionStore(c)
	st.AddToCart(c.Context(), entity.CartItem{
		ID:        in.ID,
		Title:     in.Title,
		Price:     in.Price,
		Thumbnail: in.Thumbnail,
	})
	return c.JSON(cartResponse(st))
}

// UpdateQuantity godoc
// @Summary      Fijar la cantidad de una línea (<= 0 la elimina)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateQuantityRequest  true  "Cantidad nueva"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	st := GetSessionStore(c)
	st.UpdateQuantity(c.Context(), id, in.Quantity)
	return c.JSON(cartResponse(st))
}

// Remove godoc
// @Summary      Eliminar una línea del carrito (ausente = no-op)
// @Tags         cart
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}

	st := GetSessionStore(c)
	st.RemoveFromCart(c.Context(), id)
	return c.JSON(cartResponse(st))
}

// Clear godoc
// @Summary      Vaciar el carrito por completo
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	st := GetSessionStore(c)
	st.ClearCart(c.Context())
	return c.JSON(cartResponse(st))
}

func cartResponse(st *store.Store) dto.CartResponse {
	return dto.CartResponse{
		Items:      st.CartItems(),
		TotalItems: st.TotalItems(),
		TotalPrice: st.TotalPrice(),
	}
}
