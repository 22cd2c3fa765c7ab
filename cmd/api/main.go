package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/catalogo-admin/internal/application/auth"
	"github.com/tu-usuario/catalogo-admin/internal/application/stats"
	"github.com/tu-usuario/catalogo-admin/internal/application/stock"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/catalogo-admin/internal/interfaces/http"
	"github.com/tu-usuario/catalogo-admin/pkg/config"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, subcategoryRepo, productRepo, txRunner)
	subcategoryUC := usecase.NewSubcategoryUseCase(subcategoryRepo, categoryRepo, productRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, subcategoryRepo, txRunner)
	stockUC := stock.NewStockUseCase(productRepo)
	statsUC := stats.NewStatsUseCase(statsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CategoryUC:    categoryUC,
		SubcategoryUC: subcategoryUC,
		ProductUC:     productUC,
		StockUC:       stockUC,
		StatsUC:       statsUC,
		Users:         userRepo,
		JWTSecret:     cfg.JWT.Secret,
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
