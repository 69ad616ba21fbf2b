package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-pro/internal/application/dto"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

// ThemeHandler maneja el slice de tema de la sesión.
type ThemeHandler struct{}

// NewThemeHandler construye el handler.
func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

// Get godoc
// @Summary      Tema vigente de la sesión
// @Tags         theme
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Router       /api/theme [get]
func (h *ThemeHandler) Get(c *fiber.Ctx) error {
	st := GetSessionStore(c)
	return c.JSON(dto.ThemeResponse{Theme: string(st.Theme())})
}

// Set godoc
// @Summary      Fijar el tema (light o dark)
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetThemeRequest  true  "Tema a fijar"
// @Success      200   {object}  dto.ThemeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/theme [put]
func (h *ThemeHandler) Set(c *fiber.Ctx) error {
	var in dto.SetThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	theme, ok := entity.ParseTheme(in.Theme)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "theme debe ser light o dark"})
	}

	st := GetSessionStore(c)
	st.SetTheme(c.Context(), theme)
	return c.JSON(dto.ThemeResponse{Theme: string(theme)})
}

// Toggle godoc
// @Summary      Alternar el tema light <-> dark
// @Tags         theme
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Router       /api/theme/toggle [post]
func (h *ThemeHandler) Toggle(c *fiber.Ctx) error {
	st := GetSessionStore(c)
	theme := st.ToggleTheme(c.Context())
	return c.JSON(dto.ThemeResponse{Theme: string(theme)})
}
