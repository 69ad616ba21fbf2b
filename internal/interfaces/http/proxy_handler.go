package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-pro/internal/application/dto"
	"github.com/tu-usuario/catalogo-pro/internal/application/ports"
	"github.com/tu-usuario/catalogo-pro/internal/application/usecase"
)

// ProxyHandler endpoints de paso directo al API externo de productos. Nunca
// filtran detalles internos: ante cualquier problema upstream responden 500
// con la forma estable {error, details?}.
type ProxyHandler struct {
	catalogUC *usecase.CatalogUseCase
	api       ports.CatalogAPI
}

// NewProxyHandler construye el handler.
func NewProxyHandler(catalogUC *usecase.CatalogUseCase, api ports.CatalogAPI) *ProxyHandler {
	return &ProxyHandler{catalogUC: catalogUC, api: api}
}

// Categories godoc
// @Summary      Listar categorías del API externo
// @Tags         proxy
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  dto.ProxyErrorResponse
// @Router       /api/categories [get]
func (h *ProxyHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalogUC.Categories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ProxyErrorResponse{
			Error:   "Failed to fetch categories",
			Details: err.Error(),
		})
	}
	return c.JSON(categories)
}

// ProductByID godoc
// @Summary      Obtener un producto del API externo (respuesta verbatim)
// @Tags         proxy
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  entity.Product
// @Failure      500  {object}  dto.ProxyErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProxyHandler) ProductByID(c *fiber.Ctx) error {
	raw, err := h.api.FetchProductRaw(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ProxyErrorResponse{
			Error: "Failed to fetch product",
		})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}
