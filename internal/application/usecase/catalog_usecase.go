package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tu-usuario/catalogo-pro/internal/application/catalog"
	"github.com/tu-usuario/catalogo-pro/internal/application/dto"
	"github.com/tu-usuario/catalogo-pro/internal/application/ports"
	"github.com/tu-usuario/catalogo-pro/internal/domain"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

const dayLayout = "2006-01-02"

// CatalogUseCase vista derivada del catálogo: listado filtrado/paginado, serie
// para la gráfica y categorías. El catálogo completo se trae del API externo y
// se cachea en memoria bajo un TTL; el pipeline de derivación es puro y se
// recalcula en cada petición.
type CatalogUseCase struct {
	api ports.CatalogAPI
	ttl time.Duration

	mu         sync.RWMutex
	products   []entity.Product
	categories []string
	fetchedAt  time.Time
}

// NewCatalogUseCase construye el caso de uso. ttl cero desactiva la caché.
func NewCatalogUseCase(api ports.CatalogAPI, ttl time.Duration) *CatalogUseCase {
	return &CatalogUseCase{api: api, ttl: ttl}
}

// snapshot devuelve el catálogo y las categorías, refrescando del API externo
// si la caché expiró. Las dos llamadas salientes van en paralelo y se esperan
// ambas; cualquier fallo invalida el refresco completo.
func (uc *CatalogUseCase) snapshot(ctx context.Context) ([]entity.Product, []string, error) {
	uc.mu.RLock()
	if uc.products != nil && time.Since(uc.fetchedAt) < uc.ttl {
		products, categories := uc.products, uc.categories
		uc.mu.RUnlock()
		return products, categories, nil
	}
	uc.mu.RUnlock()

	type productsResult struct {
		products []entity.Product
		err      error
	}
	type categoriesResult struct {
		categories []string
		err        error
	}

	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)

	go func() {
		ps, err := uc.api.FetchAllProducts(ctx)
		productsCh <- productsResult{ps, err}
	}()
	go func() {
		cs, err := uc.api.FetchCategories(ctx)
		categoriesCh <- categoriesResult{cs, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh

	if products.err != nil {
		return nil, nil, fmt.Errorf("catálogo: productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, nil, fmt.Errorf("catálogo: categorías: %w", categories.err)
	}

	uc.mu.Lock()
	uc.products = products.products
	uc.categories = categories.categories
	uc.fetchedAt = time.Now()
	uc.mu.Unlock()

	return products.products, categories.categories, nil
}

// source devuelve el conjunto base de productos para los criterios: un listado
// con texto delega en la búsqueda del API externo y uno de solo categoría en su
// endpoint por categoría; sin criterios remotos se sirve del catálogo cacheado.
// El pipeline local vuelve a aplicar todos los filtros sobre el resultado, así
// que la delegación solo acota el conjunto, nunca relaja los criterios.
func (uc *CatalogUseCase) source(ctx context.Context, c catalog.Criteria) ([]entity.Product, error) {
	switch {
	case strings.TrimSpace(c.Query) != "":
		return uc.api.SearchProducts(ctx, strings.TrimSpace(c.Query))
	case c.Category != "" && c.Category != catalog.CategoryAll:
		return uc.api.FetchProductsByCategory(ctx, c.Category)
	default:
		products, _, err := uc.snapshot(ctx)
		return products, err
	}
}

// List devuelve el listado filtrado y paginado según los criterios pedidos.
func (uc *CatalogUseCase) List(ctx context.Context, in dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	criteria, err := toCriteria(in)
	if err != nil {
		return nil, err
	}

	products, err := uc.source(ctx, criteria)
	if err != nil {
		return nil, err
	}

	page := in.Page
	if page < 1 {
		page = 1
	}

	filtered := catalog.Filter(products, criteria)
	items := catalog.Paginate(filtered, page)

	return &dto.ProductListResponse{
		Items: items,
		Page: dto.PageResponse{
			Page:       page,
			PageSize:   catalog.PageSize,
			TotalPages: catalog.PageCount(len(filtered)),
			TotalItems: len(filtered),
		},
	}, nil
}

// Chart devuelve la serie temporal de altas para el catálogo (opcionalmente
// filtrado con los mismos criterios del listado, sin paginar).
func (uc *CatalogUseCase) Chart(ctx context.Context, in dto.ListProductsRequest) (*dto.ChartResponse, error) {
	criteria, err := toCriteria(in)
	if err != nil {
		return nil, err
	}

	products, err := uc.source(ctx, criteria)
	if err != nil {
		return nil, err
	}

	return &dto.ChartResponse{
		Points: catalog.Series(catalog.Filter(products, criteria)),
	}, nil
}

// Categories devuelve las categorías normalizadas.
func (uc *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	_, categories, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// toCriteria convierte la entrada HTTP en criterios del pipeline.
func toCriteria(in dto.ListProductsRequest) (catalog.Criteria, error) {
	c := catalog.Criteria{Query: in.Query, Category: in.Category}

	if in.From != "" {
		from, err := time.ParseInLocation(dayLayout, in.From, time.Local)
		if err != nil {
			return catalog.Criteria{}, fmt.Errorf("%w: from debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		c.From = from
	}
	if in.To != "" {
		to, err := time.ParseInLocation(dayLayout, in.To, time.Local)
		if err != nil {
			return catalog.Criteria{}, fmt.Errorf("%w: to debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		c.To = to
	}

	return c, nil
}
