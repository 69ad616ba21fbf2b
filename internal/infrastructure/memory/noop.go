package memory

import (
	"context"

	"github.com/tu-usuario/catalogo-pro/internal/domain/repository"
)

var _ repository.StorageBridge = NoopBridge{}

// NoopBridge puente para cuando no hay almacén durable disponible: Read siempre
// devuelve ausente y Write/Remove no hacen nada. Ninguna operación falla.
type NoopBridge struct{}

func (NoopBridge) Read(context.Context, string) (string, bool, error) { return "", false, nil }
func (NoopBridge) Write(context.Context, string, string) error        { return nil }
func (NoopBridge) Remove(context.Context, string) error               { return nil }
