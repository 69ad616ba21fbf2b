package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/catalogo-pro/internal/application/catalog"
	"github.com/tu-usuario/catalogo-pro/internal/application/dto"
	"github.com/tu-usuario/catalogo-pro/internal/application/ports"
	"github.com/tu-usuario/catalogo-pro/internal/application/usecase"
	"github.com/tu-usuario/catalogo-pro/internal/domain"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del puerto CatalogAPI
// ──────────────────────────────────────────────────────────────────────────────

var _ ports.CatalogAPI = (*fakeCatalogAPI)(nil)

type fakeCatalogAPI struct {
	products   []entity.Product
	categories []string
	err        error

	productCalls    int
	categoryCalls   int
	searchCalls     int
	byCategoryCalls int
	// failIDs ids cuyo fetch individual falla (para la política de éxito parcial)
	failIDs map[int]bool
}

func (f *fakeCatalogAPI) FetchAllProducts(context.Context) ([]entity.Product, error) {
	f.productCalls++
	return f.products, f.err
}

func (f *fakeCatalogAPI) FetchProductByID(_ context.Context, id int) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.failIDs[id] {
		return nil, fmt.Errorf("%w: status 404", domain.ErrUpstream)
	}
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: status 404", domain.ErrUpstream)
}

func (f *fakeCatalogAPI) FetchProductRaw(context.Context, string) (json.RawMessage, error) {
	return nil, errors.New("no usado en estos tests")
}

func (f *fakeCatalogAPI) SearchProducts(_ context.Context, query string) ([]entity.Product, error) {
	f.searchCalls++
	if f.err != nil {
		return nil, f.err
	}
	q := strings.ToLower(query)
	matched := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Title), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeCatalogAPI) FetchProductsByCategory(_ context.Context, slug string) ([]entity.Product, error) {
	f.byCategoryCalls++
	if f.err != nil {
		return nil, f.err
	}
	matched := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		if p.Category == slug {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeCatalogAPI) FetchCategories(context.Context) ([]string, error) {
	f.categoryCalls++
	return f.categories, f.err
}

func catalogo(n int) []entity.Product {
	now := time.Now()
	products := make([]entity.Product, n)
	for i := range products {
		products[i] = entity.Product{
			ID:        i + 1,
			Title:     fmt.Sprintf("Producto %d", i+1),
			Category:  "general",
			DateAdded: now,
		}
	}
	return products
}

// ──────────────────────────────────────────────────────────────────────────────
// CatalogUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogList_PaginaYReportaMetadatos(t *testing.T) {
	api := &fakeCatalogAPI{products: catalogo(25), categories: []string{"general"}}
	uc := usecase.NewCatalogUseCase(api, time.Minute)

	out, err := uc.List(context.Background(), dto.ListProductsRequest{Page: 3})
	require.NoError(t, err)

	assert.Len(t, out.Items, 5, "la tercera página de 25 tiene 5 productos")
	assert.Equal(t, 3, out.Page.Page)
	assert.Equal(t, catalog.PageSize, out.Page.PageSize)
	assert.Equal(t, 3, out.Page.TotalPages)
	assert.Equal(t, 25, out.Page.TotalItems)

	out, err = uc.List(context.Background(), dto.ListProductsRequest{Page: 4})
	require.NoError(t, err)
	assert.Empty(t, out.Items, "una página fuera de rango da vacío")
}

func TestCatalogList_FechasInvalidasSon400(t *testing.T) {
	api := &fakeCatalogAPI{products: catalogo(3), categories: []string{"general"}}
	uc := usecase.NewCatalogUseCase(api, time.Minute)

	_, err := uc.List(context.Background(), dto.ListProductsRequest{From: "15/08/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogList_UsaLaCacheDentroDelTTL(t *testing.T) {
	api := &fakeCatalogAPI{products: catalogo(3), categories: []string{"general"}}
	uc := usecase.NewCatalogUseCase(api, time.Minute)
	ctx := context.Background()

	_, err := uc.List(ctx, dto.ListProductsRequest{})
	require.NoError(t, err)
	_, err = uc.List(ctx, dto.ListProductsRequest{})
	require.NoError(t, err)
	_, err = uc.Categories(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, api.productCalls, "dentro del TTL no se vuelve al API externo")
	assert.Equal(t, 1, api.categoryCalls)
}

func TestCatalogList_FalloUpstreamSePropaga(t *testing.T) {
	api := &fakeCatalogAPI{err: domain.ErrUpstream}
	uc := usecase.NewCatalogUseCase(api, time.Minute)

	_, err := uc.List(context.Background(), dto.ListProductsRequest{})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestCatalogList_DelegaBusquedaYCategoriaAlAPIExterno(t *testing.T) {
	api := &fakeCatalogAPI{products: catalogo(25), categories: []string{"general"}}
	uc := usecase.NewCatalogUseCase(api, time.Minute)
	ctx := context.Background()

	// Con texto se usa la búsqueda del API externo, no el catálogo completo.
	out, err := uc.List(ctx, dto.ListProductsRequest{Query: "Producto 7"})
	require.NoError(t, err)
	assert.Equal(t, 1, api.searchCalls)
	assert.Zero(t, api.productCalls)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 7, out.Items[0].ID)

	// Solo categoría: se usa el endpoint por categoría.
	out, err = uc.List(ctx, dto.ListProductsRequest{Category: "general"})
	require.NoError(t, err)
	assert.Equal(t, 1, api.byCategoryCalls)
	assert.Equal(t, 25, out.Page.TotalItems)

	// "all" no acota nada: se sirve del catálogo cacheado.
	_, err = uc.List(ctx, dto.ListProductsRequest{Category: "all"})
	require.NoError(t, err)
	assert.Equal(t, 1, api.byCategoryCalls, "all no delega al endpoint por categoría")
	assert.Equal(t, 1, api.productCalls)
}

func TestCatalogChart_SerieFiltrada(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	products := []entity.Product{
		{ID: 1, Title: "A", Category: "clothing", DateAdded: now.AddDate(0, 0, -2)},
		{ID: 2, Title: "B", Category: "clothing", DateAdded: now.AddDate(0, 0, -2)},
		{ID: 3, Title: "C", Category: "accessories", DateAdded: now.AddDate(0, 0, -1)},
		{ID: 4, Title: "D", Category: "clothing", DateAdded: now},
	}
	api := &fakeCatalogAPI{products: products, categories: []string{"clothing", "accessories"}}
	uc := usecase.NewCatalogUseCase(api, time.Minute)

	out, err := uc.Chart(context.Background(), dto.ListProductsRequest{Category: "clothing"})
	require.NoError(t, err)

	require.Len(t, out.Points, 2, "la categoría accessories queda fuera de la serie")
	assert.Equal(t, 2, out.Points[0].Added)
	assert.Equal(t, 2, out.Points[0].Products)
	assert.Equal(t, 1, out.Points[1].Added)
	assert.Equal(t, 3, out.Points[1].Products, "el acumulado corre sobre los puntos filtrados")
}
