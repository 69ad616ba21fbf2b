package usecase

import (
	"context"
	"sort"

	"github.com/tu-usuario/catalogo-pro/internal/application/dto"
	"github.com/tu-usuario/catalogo-pro/internal/application/ports"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
	"github.com/tu-usuario/catalogo-pro/pkg/logger"
)

// FavoritesUseCase resuelve los productos favoritos de una sesión contra el
// API externo: una petición por id, lanzadas en paralelo.
//
// Política ante fallo parcial: éxito parcial. Los ids que fallan se descartan
// (y se reportan en Failed) en lugar de tumbar la vista completa; un favorito
// despublicado upstream no debe impedir ver los demás.
type FavoritesUseCase struct {
	api ports.CatalogAPI
	log *logger.Logger
}

// NewFavoritesUseCase construye el caso de uso.
func NewFavoritesUseCase(api ports.CatalogAPI, log *logger.Logger) *FavoritesUseCase {
	return &FavoritesUseCase{api: api, log: log}
}

// ListProducts trae los productos de los ids dados preservando su orden.
func (uc *FavoritesUseCase) ListProducts(ctx context.Context, ids []int) (*dto.FavoriteProductsResponse, error) {
	if len(ids) == 0 {
		return &dto.FavoriteProductsResponse{Items: []entity.Product{}}, nil
	}

	type fetchResult struct {
		pos     int
		id      int
		product *entity.Product
		err     error
	}

	results := make(chan fetchResult, len(ids))
	for pos, id := range ids {
		go func(pos, id int) {
			p, err := uc.api.FetchProductByID(ctx, id)
			results <- fetchResult{pos: pos, id: id, product: p, err: err}
		}(pos, id)
	}

	fetched := make([]fetchResult, 0, len(ids))
	failed := make([]int, 0)
	for range ids {
		r := <-results
		if r.err != nil {
			uc.log.Warn().Err(r.err).Int("product_id", r.id).Msg("favorito no disponible, se descarta")
			failed = append(failed, r.id)
			continue
		}
		fetched = append(fetched, r)
	}

	// Restaurar el orden de inserción de los favoritos.
	sort.Slice(fetched, func(i, j int) bool { return fetched[i].pos < fetched[j].pos })

	items := make([]entity.Product, 0, len(fetched))
	for _, r := range fetched {
		items = append(items, *r.product)
	}
	sort.Ints(failed)

	return &dto.FavoriteProductsResponse{Items: items, Failed: failed}, nil
}
