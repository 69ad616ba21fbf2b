package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/catalogo-pro/internal/application/store"
	"github.com/tu-usuario/catalogo-pro/internal/application/usecase"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
	"github.com/tu-usuario/catalogo-pro/internal/domain/repository"
	"github.com/tu-usuario/catalogo-pro/internal/infrastructure/catalogapi"
	"github.com/tu-usuario/catalogo-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/catalogo-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/catalogo-pro/internal/interfaces/http"
	"github.com/tu-usuario/catalogo-pro/pkg/config"
	"github.com/tu-usuario/catalogo-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Puente de persistencia: PostgreSQL si hay configuración, si no el estado
	// vive solo en memoria de proceso (el puente sigue siendo seguro de usar).
	var bridge repository.StorageBridge = memory.NewBridge()
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		bridgeRepo := postgres.NewBridgeRepository(pool)
		if err := bridgeRepo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema del puente de persistencia")
		}
		bridge = bridgeRepo
	} else {
		log.Warn().Msg("sin base de datos configurada: el estado de sesión no sobrevive al proceso")
	}

	reflect := func(sid string, theme entity.Theme) {
		log.Debug().Str("session", sid).Str("theme", string(theme)).Msg("tema reflejado")
	}
	sessions := store.NewSessions(bridge, log, reflect,
		time.Duration(cfg.App.SessionIdleTTLMinutes)*time.Minute)

	catalogAPI := catalogapi.NewClient(cfg.Catalog)
	catalogUC := usecase.NewCatalogUseCase(catalogAPI, time.Duration(cfg.Catalog.CacheTTL)*time.Second)
	favoritesUC := usecase.NewFavoritesUseCase(catalogAPI, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 45, // las rutas de catálogo esperan al API externo
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El JSON lo genera
	// `swag init` a partir de las anotaciones; sin él el servidor arranca igual.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Catalogo API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		FavoritesUC: favoritesUC,
		CatalogAPI:  catalogAPI,
		Sessions:    sessions,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
