// @title           FoodOrder API
// @version         1.0
// @description     Restaurantes, cartas y pedidos con autenticación por sesión.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	_ "github.com/jhoicas/FoodOrder-api/docs"
	"github.com/jhoicas/FoodOrder-api/internal/application/auth"
	"github.com/jhoicas/FoodOrder-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/FoodOrder-api/internal/infrastructure/pdf"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/metrics"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/FoodOrder-api/internal/interfaces/http"
	"github.com/jhoicas/FoodOrder-api/pkg/config"
	"github.com/jhoicas/FoodOrder-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	collector := metrics.NewCollector()

	// Única instancia de almacenamiento del proceso.
	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, log.Component("storage"), collector)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}

	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.BcryptCost)
	catalogUC := usecase.NewCatalogUseCase(store)
	orderUC := usecase.NewOrderUseCase(store, infrapdf.NewMarotoReceiptGenerator())

	sessions := session.New(session.Config{
		Storage:        store.SessionStore(),
		Expiration:     cfg.Session.Expiration,
		KeyLookup:      "cookie:" + cfg.Session.CookieName,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Session.CookieSecure,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		KeyGenerator:   uuid.NewString,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.DocsPath,
			Path:     "docs",
			Title:    "FoodOrder API",
		}))
	} else if cfg.App.DocsPath != "" {
		log.Warn().Str("path", cfg.App.DocsPath).Msg("swagger.json no encontrado, /docs desactivado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		OrderUC:   orderUC,
		Sessions:  sessions,
		JWTSecret: cfg.JWT.Secret,
		Logger:    log.Component("http"),
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
	if err := store.Close(); err != nil {
		log.Error().Err(err).Msg("cerrar almacenamiento")
	}

	log.Info().Msg("aplicación detenida")
}
