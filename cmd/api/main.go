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

	_ "github.com/jhoicas/bbq-dashboard-api/docs"
	appanalytics "github.com/jhoicas/bbq-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/bbq-dashboard-api/internal/application/reports"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/bbq-dashboard-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/bbq-dashboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bbq-dashboard-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/bbq-dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/bbq-dashboard-api/pkg/config"
	"github.com/jhoicas/bbq-dashboard-api/pkg/logger"
)

// demoSeed semilla fija del dataset sintético para demos reproducibles.
const demoSeed = 20240101

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("demo_mode", cfg.Dashboard.DemoMode).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// En demo mode el servicio arranca sin base de datos y sirve el dataset
	// sintético; es el modo que usa el frontend en desarrollo local.
	var salesRepo repository.SalesRepository
	if cfg.Dashboard.DemoMode {
		salesRepo = memory.NewMockSalesRepository(demoSeed)
		log.Info().Msg("demo mode: usando dataset sintético en memoria")
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		salesRepo = postgres.NewSalesRepository(pool)
	}

	dashboardUC := appanalytics.NewDashboardUseCase(salesRepo, log)

	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewPDFUseCase(salesRepo, reportGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el PDF puede tardar más que un JSON
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BBQ Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		Dashboard:   cfg.Dashboard,
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
