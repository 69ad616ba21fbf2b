package dto

// SetThemeRequest entrada para fijar el tema. Valores válidos: light, dark.
type SetThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// ThemeResponse tema vigente de la sesión.
type ThemeResponse struct {
	Theme string `json:"theme"`
}
