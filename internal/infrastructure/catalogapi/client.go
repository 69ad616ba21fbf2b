// Package catalogapi implementa el puerto CatalogAPI contra el API REST
// externo de productos (por defecto dummyjson.com).
package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tu-usuario/catalogo-pro/internal/application/catalog"
	"github.com/tu-usuario/catalogo-pro/internal/application/ports"
	"github.com/tu-usuario/catalogo-pro/internal/domain"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
	"github.com/tu-usuario/catalogo-pro/pkg/config"
	"github.com/tu-usuario/catalogo-pro/pkg/retry"
)

// Verificar en tiempo de compilación que Client implementa CatalogAPI.
var _ ports.CatalogAPI = (*Client)(nil)

const retryDelay = 250 * time.Millisecond

// errStatus error no-2xx del API externo. No se reintenta en 4xx.
type errStatus struct {
	code int
}

func (e errStatus) Error() string {
	return fmt.Sprintf("%v: status %d", domain.ErrUpstream, e.code)
}

func (e errStatus) Unwrap() error { return domain.ErrUpstream }

// Client adaptador HTTP del API externo de productos. El API es una dependencia
// de red no confiable: cada llamada lleva timeout y reintentos acotados con
// backoff lineal.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
	now        func() time.Time
}

// NewClient construye el adaptador con la configuración del catálogo.
func NewClient(cfg config.CatalogConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		retryCfg: retry.Config{
			MaxAttempts: cfg.MaxRetries,
			Backoff:     retry.LinearBackoff(retryDelay),
			ShouldRetry: shouldRetry,
		},
		now: time.Now,
	}
}

// shouldRetry reintenta fallos de red y 5xx; un 4xx del API externo no va a
// mejorar reintentando.
func shouldRetry(err error) bool {
	var se errStatus
	if errors.As(err, &se) {
		return se.code >= 500
	}
	return true
}

// get ejecuta un GET con reintentos y devuelve el cuerpo de la respuesta.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return retry.DoWithResult(ctx, c.retryCfg, func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, fmt.Errorf("crear request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, errStatus{code: resp.StatusCode}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: leer respuesta: %w", domain.ErrUpstream, err)
		}
		return body, nil
	})
}

// productsResponse envoltura de listados del API externo.
type productsResponse struct {
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// FetchAllProducts trae el catálogo completo (limit=0 desactiva la paginación
// del API externo) y asigna la fecha de alta derivada a cada producto.
func (c *Client) FetchAllProducts(ctx context.Context) ([]entity.Product, error) {
	body, err := c.get(ctx, "/products?limit=0")
	if err != nil {
		return nil, err
	}

	var out productsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decodificar listado: %w", domain.ErrUpstream, err)
	}

	return catalog.StampDates(out.Products, c.now()), nil
}

// FetchProductByID trae un producto tipado y le asigna la fecha de alta.
func (c *Client) FetchProductByID(ctx context.Context, id int) (*entity.Product, error) {
	body, err := c.get(ctx, fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, err
	}

	var p entity.Product
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: decodificar producto: %w", domain.ErrUpstream, err)
	}

	p.DateAdded = catalog.DateForProduct(p.ID, c.now())
	return &p, nil
}

// SearchProducts busca productos por texto con el endpoint de búsqueda del API
// externo y asigna la fecha de alta derivada a cada resultado.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	body, err := c.get(ctx, "/products/search?limit=0&q="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}

	var out productsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decodificar búsqueda: %w", domain.ErrUpstream, err)
	}

	return catalog.StampDates(out.Products, c.now()), nil
}

// FetchProductsByCategory trae los productos de una categoría y les asigna la
// fecha de alta derivada.
func (c *Client) FetchProductsByCategory(ctx context.Context, slug string) ([]entity.Product, error) {
	body, err := c.get(ctx, "/products/category/"+url.PathEscape(slug)+"?limit=0")
	if err != nil {
		return nil, err
	}

	var out productsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decodificar categoría: %w", domain.ErrUpstream, err)
	}

	return catalog.StampDates(out.Products, c.now()), nil
}

// FetchProductRaw trae el JSON del producto tal cual (paso directo).
func (c *Client) FetchProductRaw(ctx context.Context, id string) (json.RawMessage, error) {
	body, err := c.get(ctx, "/products/"+id)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// FetchCategories trae las categorías normalizadas a strings: si la entrada es
// un objeto se prefiere su slug, con name como respaldo.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, "/products/categories")
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decodificar categorías: %w", domain.ErrUpstream, err)
	}

	categories := make([]string, 0, len(raw))
	for _, entry := range raw {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			categories = append(categories, s)
			continue
		}
		var obj struct {
			Slug string `json:"slug"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(entry, &obj); err != nil {
			return nil, fmt.Errorf("%w: categoría con forma inesperada: %w", domain.ErrUpstream, err)
		}
		if obj.Slug != "" {
			categories = append(categories, obj.Slug)
		} else {
			categories = append(categories, obj.Name)
		}
	}
	return categories, nil
}
