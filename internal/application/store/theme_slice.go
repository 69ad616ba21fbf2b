package store

import (
	"context"

	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

// initializeTheme adopta el tema persistido; si no hay, la preferencia del
// entorno del cliente; si tampoco, light. Requiere s.mu tomado.
func (s *Store) initializeTheme(ctx context.Context, preferred entity.Theme) {
	if raw, found := s.readSlot(ctx, s.themeKey()); found {
		if theme, ok := entity.ParseTheme(raw); ok {
			s.theme = theme
			s.doReflect()
			return
		}
		s.log.Warn().Str("value", raw).Msg("tema persistido inválido, se usa el valor por defecto")
	}

	if preferred != "" {
		s.theme = preferred
	} else {
		s.theme = entity.ThemeLight
	}
	s.doReflect()
}

// Theme devuelve el tema vigente.
func (s *Store) Theme() entity.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme asigna el tema, lo persiste y lo refleja.
func (s *Store) SetTheme(ctx context.Context, theme entity.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = theme
	s.writeSlot(ctx, s.themeKey(), string(theme))
	s.doReflect()
}

// ToggleTheme alterna light<->dark, persiste y refleja. Devuelve el tema resultante.
func (s *Store) ToggleTheme(ctx context.Context) entity.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = s.theme.Opposite()
	s.writeSlot(ctx, s.themeKey(), string(s.theme))
	s.doReflect()
	return s.theme
}

func (s *Store) doReflect() {
	if s.reflect != nil {
		s.reflect(s.sid, s.theme)
	}
}
