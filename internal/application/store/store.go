// Package store contiene el contenedor de estado por sesión: los slices de
// tema, favoritos y carrito. Cada mutación actualiza el estado en memoria y lo
// refleja de forma síncrona en el puente de persistencia; el estado en memoria
// es siempre la fuente de verdad (un fallo de escritura se registra y no
// interrumpe la mutación).
package store

import (
	"context"
	"sync"

	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
	"github.com/tu-usuario/catalogo-pro/internal/domain/repository"
	"github.com/tu-usuario/catalogo-pro/pkg/logger"
)

// Reflector recibe el tema vigente tras cada cambio (el equivalente de marcar
// la clase "dark" en el documento). Puede ser nil.
type Reflector func(sessionID string, theme entity.Theme)

// Store estado de una sesión. Todas las mutaciones se serializan con un mutex:
// escritor único por sesión.
type Store struct {
	mu      sync.Mutex
	once    sync.Once
	sid     string
	bridge  repository.StorageBridge
	log     *logger.Logger
	reflect Reflector

	theme     entity.Theme
	favorites []int
	items     []entity.CartItem
}

// New construye el contenedor de una sesión sin hidratar. log no puede ser nil;
// reflect es opcional.
func New(sessionID string, bridge repository.StorageBridge, log *logger.Logger, reflect Reflector) *Store {
	return &Store{
		sid:     sessionID,
		bridge:  bridge,
		log:     log,
		reflect: reflect,
		theme:   entity.ThemeLight,
	}
}

// Initialize hidrata los tres slices desde el puente. Solo la primera llamada
// hidrata; las concurrentes bloquean hasta que esa termine, de modo que nadie
// muta un contenedor a medio cargar. preferred es la preferencia del entorno
// del cliente para el tema (puede ser vacía). Un valor persistido corrupto no
// interrumpe el arranque: el slice cae a su estado por defecto.
func (s *Store) Initialize(ctx context.Context, preferred entity.Theme) {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.initializeTheme(ctx, preferred)
		s.initializeFavorites(ctx)
		s.initializeCart(ctx)
	})
}

// claves persistidas de la sesión
func (s *Store) themeKey() string     { return "theme:" + s.sid }
func (s *Store) favoritesKey() string { return "favorites:" + s.sid }
func (s *Store) cartKey() string      { return "cart:" + s.sid }

// readSlot lee una clave del puente. Devuelve found=false tanto para clave
// ausente como para error de lectura (el error se registra).
func (s *Store) readSlot(ctx context.Context, key string) (string, bool) {
	value, found, err := s.bridge.Read(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("lectura del puente de persistencia")
		return "", false
	}
	return value, found
}

// writeSlot escribe una clave en el puente; un fallo se registra sin propagar.
func (s *Store) writeSlot(ctx context.Context, key, value string) {
	if err := s.bridge.Write(ctx, key, value); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("escritura del puente de persistencia")
	}
}

// removeSlot elimina una clave del puente; un fallo se registra sin propagar.
func (s *Store) removeSlot(ctx context.Context, key string) {
	if err := s.bridge.Remove(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("borrado en el puente de persistencia")
	}
}
