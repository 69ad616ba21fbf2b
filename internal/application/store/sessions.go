package store

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
	"github.com/tu-usuario/catalogo-pro/internal/domain/repository"
	"github.com/tu-usuario/catalogo-pro/pkg/logger"
)

// DefaultIdleTTL tiempo de inactividad tras el cual el contenedor de una
// sesión se desaloja de memoria. El estado durable sigue en el puente y se
// rehidrata en el siguiente acceso.
const DefaultIdleTTL = 30 * time.Minute

type sessionEntry struct {
	store    *Store
	lastSeen time.Time
}

// Sessions registro de contenedores de estado por sesión. El contenedor de una
// sesión se crea e hidrata perezosamente en el primer acceso y se reutiliza
// mientras la sesión siga activa; la fuente durable es siempre el puente, y un
// contenedor inactivo más allá del TTL se desaloja para acotar la memoria.
type Sessions struct {
	mu      sync.Mutex
	bridge  repository.StorageBridge
	log     *logger.Logger
	reflect Reflector
	idleTTL time.Duration
	entries map[string]*sessionEntry
}

// NewSessions construye el registro. idleTTL <= 0 usa DefaultIdleTTL.
func NewSessions(bridge repository.StorageBridge, log *logger.Logger, reflect Reflector, idleTTL time.Duration) *Sessions {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Sessions{
		bridge:  bridge,
		log:     log,
		reflect: reflect,
		idleTTL: idleTTL,
		entries: make(map[string]*sessionEntry),
	}
}

// Get devuelve el contenedor de la sesión, hidratado. La hidratación ocurre una
// sola vez por contenedor; los accesos concurrentes al mismo id esperan a que
// termine antes de recibirlo, de modo que ninguna mutación puede adelantarse a
// la carga del estado persistido. preferred es la preferencia de tema del
// cliente y solo aplica en esa hidratación inicial.
func (s *Sessions) Get(ctx context.Context, sessionID string, preferred entity.Theme) *Store {
	now := time.Now()

	s.mu.Lock()
	s.evictIdle(now)
	e, ok := s.entries[sessionID]
	if !ok {
		e = &sessionEntry{store: New(sessionID, s.bridge, s.log, s.reflect)}
		s.entries[sessionID] = e
	}
	e.lastSeen = now
	st := e.store
	s.mu.Unlock()

	st.Initialize(ctx, preferred)
	return st
}

// Len devuelve el número de contenedores vivos en memoria.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// evictIdle desaloja los contenedores sin actividad dentro del TTL.
// Requiere s.mu tomado.
func (s *Sessions) evictIdle(now time.Time) {
	for sid, e := range s.entries {
		if now.Sub(e.lastSeen) > s.idleTTL {
			delete(s.entries, sid)
		}
	}
}
