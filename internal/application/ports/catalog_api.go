package ports

import (
	"context"
	"encoding/json"

	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

// CatalogAPI define el puerto de salida hacia el API externo de productos.
// El dominio/aplicación solo conoce este contrato, no la implementación
// concreta (cliente HTTP real, mock de tests).
//
// Todas las llamadas son de red: el contexto debe llevar un timeout. Los
// productos devueltos ya traen DateAdded asignada (derivada del ID).
type CatalogAPI interface {
	// FetchAllProducts trae el catálogo completo.
	FetchAllProducts(ctx context.Context) ([]entity.Product, error)

	// FetchProductByID trae un producto tipado por su id.
	FetchProductByID(ctx context.Context, id int) (*entity.Product, error)

	// FetchProductRaw trae la respuesta JSON del producto tal cual la entrega
	// el API externo (para el endpoint de paso directo).
	FetchProductRaw(ctx context.Context, id string) (json.RawMessage, error)

	// SearchProducts busca productos por texto usando la búsqueda del API externo.
	SearchProducts(ctx context.Context, query string) ([]entity.Product, error)

	// FetchProductsByCategory trae los productos de una categoría por su slug.
	FetchProductsByCategory(ctx context.Context, slug string) ([]entity.Product, error)

	// FetchCategories trae el listado de categorías normalizado a slugs.
	FetchCategories(ctx context.Context) ([]string, error)
}
