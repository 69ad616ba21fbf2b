// Package memory implementa el puente de persistencia en memoria de proceso.
// Sirve para tests y para ejecutar la aplicación sin base de datos configurada.
package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/catalogo-pro/internal/domain/repository"
)

// Verificar en tiempo de compilación que Bridge implementa StorageBridge.
var _ repository.StorageBridge = (*Bridge)(nil)

// Bridge puente clave-valor respaldado por un mapa en memoria.
type Bridge struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewBridge construye el puente vacío.
func NewBridge() *Bridge {
	return &Bridge{slots: make(map[string]string)}
}

// Read devuelve el valor de la clave; found=false si no existe.
func (b *Bridge) Read(_ context.Context, key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	value, found := b.slots[key]
	return value, found, nil
}

// Write guarda el valor bajo la clave (sobrescribe).
func (b *Bridge) Write(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slots[key] = value
	return nil
}

// Remove elimina la clave; eliminar una clave ausente no es un error.
func (b *Bridge) Remove(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.slots, key)
	return nil
}
