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

	"github.com/jhoicas/Cerveceria-api/internal/application/fases"
	"github.com/jhoicas/Cerveceria-api/internal/application/ordenes"
	"github.com/jhoicas/Cerveceria-api/internal/infrastructure/notify"
	"github.com/jhoicas/Cerveceria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Cerveceria-api/internal/interfaces/http"
	"github.com/jhoicas/Cerveceria-api/pkg/config"
	"github.com/jhoicas/Cerveceria-api/pkg/logger"
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

	ordenRepo := postgres.NewOrdenRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	envaseRepo := postgres.NewEnvaseRepository(pool)
	faseRepo := postgres.NewFaseProduccionRepository(pool)
	parametroRepo := postgres.NewParametroCalidadRepository(pool)
	calidadRepo := postgres.NewCalidadFaseRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	movimientoRepo := postgres.NewMovimientoMaterialRepository(pool)
	calendarioRepo := postgres.NewCalendarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := notify.NewLogNotifier(log)

	ordenUC := ordenes.NewOrdenUseCase(
		txRunner, ordenRepo, productoRepo, envaseRepo, calendarioRepo, notifier,
	)
	faseUC := fases.NewFaseUseCase(
		txRunner, faseRepo, parametroRepo, calidadRepo, notifier,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
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
		Title:    "Cerveceria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrdenUC:        ordenUC,
		FaseUC:         faseUC,
		MaterialRepo:   materialRepo,
		MovimientoRepo: movimientoRepo,
		CalendarioRepo: calendarioRepo,
		JWTSecret:      cfg.JWT.Secret,
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
