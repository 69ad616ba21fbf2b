package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-pro/internal/application/dto"
	"github.com/tu-usuario/catalogo-pro/internal/application/usecase"
)

// FavoritesHandler maneja el slice de favoritos de la sesión y la resolución
// de favoritos contra el API externo.
type FavoritesHandler struct {
	uc *usecase.FavoritesUseCase
}

// NewFavoritesHandler construye el handler.
func NewFavoritesHandler(uc *usecase.FavoritesUseCase) *FavoritesHandler {
	return &FavoritesHandler{uc: uc}
}

// Get godoc
// @Summary      Ids favoritos de la sesión
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  dto.FavoritesResponse
// @Router       /api/favorites [get]
func (h *FavoritesHandler) Get(c *fiber.Ctx) error {
	st := GetSessionStore(c)
	return c.JSON(dto.FavoritesResponse{Favorites: st.Favorites()})
}

// Toggle godoc
// @Summary      Alternar un favorito (presente lo quita, ausente lo agrega)
// @Tags         favorites
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ToggleFavoriteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/favorites/{id}/toggle [post]
func (h *FavoritesHandler) Toggle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}

	st := GetSessionStore(c)
	favorite := st.ToggleFavorite(c.Context(), id)
	return c.JSON(dto.ToggleFavoriteResponse{ID: id, Favorite: favorite})
}

// Products godoc
// @Summary      Productos favoritos resueltos contra el API externo
// @Description  Éxito parcial: los ids que fallan upstream se descartan y se
// @Description  reportan en failed, sin tumbar la vista completa.
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  dto.FavoriteProductsResponse
// @Router       /api/favorites/products [get]
func (h *FavoritesHandler) Products(c *fiber.Ctx) error {
	st := GetSessionStore(c)
	out, err := h.uc.ListProducts(c.Context(), st.Favorites())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "no se pudieron cargar los favoritos"})
	}
	return c.JSON(out)
}
