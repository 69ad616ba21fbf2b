package repository

import "context"

// StorageBridge define el puerto de persistencia clave-valor para el estado de
// sesión (tema, favoritos, carrito). Los valores son strings serializados; el
// puente no conoce su esquema.
//
// Contrato: una clave ausente no es un error (Read devuelve found=false).
// Las implementaciones deben ser seguras para uso concurrente.
type StorageBridge interface {
	Read(ctx context.Context, key string) (value string, found bool, err error)
	Write(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
