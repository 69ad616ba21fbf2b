package store

import (
	"context"
	"encoding/json"
	"slices"
)

// initializeFavorites carga la secuencia persistida o deja la lista vacía.
// Requiere s.mu tomado.
func (s *Store) initializeFavorites(ctx context.Context) {
	raw, found := s.readSlot(ctx, s.favoritesKey())
	if !found {
		return
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.log.Warn().Err(err).Msg("favoritos persistidos corruptos, se usa lista vacía")
		return
	}

	// Deduplicar por si el valor persistido viene de una versión sin la invariante.
	s.favorites = s.favorites[:0]
	for _, id := range ids {
		if !slices.Contains(s.favorites, id) {
			s.favorites = append(s.favorites, id)
		}
	}
}

// Favorites devuelve una copia de los ids favoritos en orden de inserción.
func (s *Store) Favorites() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.favorites)
}

// IsFavorite consulta pertenencia (no es una mutación).
func (s *Store) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.favorites, id)
}

// ToggleFavorite quita el id si está presente o lo agrega al final si no.
// Persiste siempre la secuencia resultante. Devuelve true si el id quedó como
// favorito tras la operación.
func (s *Store) ToggleFavorite(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowFavorite := true
	if idx := slices.Index(s.favorites, id); idx >= 0 {
		s.favorites = slices.Delete(s.favorites, idx, idx+1)
		nowFavorite = false
	} else {
		s.favorites = append(s.favorites, id)
	}

	s.persistFavorites(ctx)
	return nowFavorite
}

// persistFavorites serializa y escribe la secuencia. Requiere s.mu tomado.
func (s *Store) persistFavorites(ctx context.Context) {
	data, err := json.Marshal(s.favorites)
	if err != nil {
		s.log.Error().Err(err).Msg("serializar favoritos")
		return
	}
	s.writeSlot(ctx, s.favoritesKey(), string(data))
}
