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
	"github.com/gofiber/template/html/v2"

	"github.com/omsayari/sayari-api/internal/application/auth"
	"github.com/omsayari/sayari-api/internal/application/usecase"
	"github.com/omsayari/sayari-api/internal/domain/repository"
	"github.com/omsayari/sayari-api/internal/infrastructure/memory"
	infrapdf "github.com/omsayari/sayari-api/internal/infrastructure/pdf"
	"github.com/omsayari/sayari-api/internal/infrastructure/postgres"
	"github.com/omsayari/sayari-api/internal/infrastructure/sqlite"
	httpRouter "github.com/omsayari/sayari-api/internal/interfaces/http"
	"github.com/omsayari/sayari-api/pkg/config"
	"github.com/omsayari/sayari-api/pkg/logger"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var itemRepo repository.ItemRepository
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema de PostgreSQL")
		}
		itemRepo = postgres.NewItemRepository(pool)
	case "sqlite":
		repo, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir SQLite")
		}
		defer repo.Close()
		itemRepo = repo
	case "memory":
		log.Warn().Msg("store en memoria: los datos se pierden al apagar")
		itemRepo = memory.NewItemRepository()
	}

	itemUC := usecase.NewItemUseCase(itemRepo)
	exportUC := usecase.NewExportUseCase(itemRepo, cfg.App.Title)
	verifier := auth.NewStaticSecretVerifier(cfg.Admin.Password, cfg.Admin.PasswordHash)
	pdfGenerator := infrapdf.NewMarotoExportGenerator()

	engine := html.New("./web/views", ".html")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sayari API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:   itemUC,
		ExportUC: exportUC,
		PDF:      pdfGenerator,
		Verifier: verifier,
		AppTitle: cfg.App.Title,
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
