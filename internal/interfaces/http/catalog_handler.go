package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-pro/internal/application/dto"
	"github.com/tu-usuario/catalogo-pro/internal/application/usecase"
	"github.com/tu-usuario/catalogo-pro/internal/domain"
)

// CatalogHandler maneja el listado derivado del catálogo y la gráfica.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos filtrados y paginados
// @Tags         catalog
// @Produce      json
// @Param        q         query  string  false  "Texto a buscar en título o descripción"
// @Param        category  query  string  false  "Slug de categoría (all = todas)"
// @Param        from      query  string  false  "Inicio del rango de fechas (YYYY-MM-DD)"
// @Param        to        query  string  false  "Fin del rango de fechas (YYYY-MM-DD)"
// @Param        page      query  int     false  "Página (1-indexada)"  default(1)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var in dto.ListProductsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}

	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// Chart godoc
// @Summary      Serie temporal de altas al catálogo
// @Tags         catalog
// @Produce      json
// @Param        q         query  string  false  "Texto a buscar"
// @Param        category  query  string  false  "Slug de categoría"
// @Param        from      query  string  false  "Inicio del rango (YYYY-MM-DD)"
// @Param        to        query  string  false  "Fin del rango (YYYY-MM-DD)"
// @Success      200  {object}  dto.ChartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/chart [get]
func (h *CatalogHandler) Chart(c *fiber.Ctx) error {
	var in dto.ListProductsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}

	out, err := h.uc.Chart(c.Context(), in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// catalogError mapea errores del caso de uso a HTTP. El fallo upstream se
// reporta como mensaje para el usuario, nunca como traza interna.
func catalogError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "no se pudo cargar el catálogo"})
}
