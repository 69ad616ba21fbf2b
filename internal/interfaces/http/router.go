package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-pro/internal/application/ports"
	"github.com/tu-usuario/catalogo-pro/internal/application/store"
	"github.com/tu-usuario/catalogo-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	FavoritesUC *usecase.FavoritesUseCase
	CatalogAPI  ports.CatalogAPI
	Sessions    *store.Sessions
}

// Router registra las rutas de la API. Todas las rutas de /api pasan por el
// middleware de sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.Sessions))

	// Catálogo y paso directo al API externo
	proxyHandler := NewProxyHandler(deps.CatalogUC, deps.CatalogAPI)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/categories", proxyHandler.Categories)
	products := api.Group("/products")
	products.Get("/", catalogHandler.List)
	products.Get("/chart", catalogHandler.Chart) // antes de :id para no capturarla
	products.Get("/:id", proxyHandler.ProductByID)

	// Carrito (estado de sesión)
	cart := api.Group("/cart")
	cartHandler := NewCartHandler()
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.Add)
	cart.Put("/items/:id", cartHandler.UpdateQuantity)
	cart.Delete("/items/:id", cartHandler.Remove)

	// Favoritos (estado de sesión)
	favorites := api.Group("/favorites")
	favoritesHandler := NewFavoritesHandler(deps.FavoritesUC)
	favorites.Get("/", favoritesHandler.Get)
	favorites.Get("/products", favoritesHandler.Products)
	favorites.Post("/:id/toggle", favoritesHandler.Toggle)

	// Tema (estado de sesión)
	theme := api.Group("/theme")
	themeHandler := NewThemeHandler()
	theme.Get("/", themeHandler.Get)
	theme.Put("/", themeHandler.Set)
	theme.Post("/toggle", themeHandler.Toggle)
}
