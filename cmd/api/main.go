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
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/Cotizador-api/docs"
	"github.com/jhoicas/Cotizador-api/internal/application/document"
	"github.com/jhoicas/Cotizador-api/internal/application/history"
	"github.com/jhoicas/Cotizador-api/internal/application/quoting"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/Cotizador-api/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/Cotizador-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Cotizador-api/internal/interfaces/http"
	"github.com/jhoicas/Cotizador-api/pkg/config"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Montos como números JSON (el formato que guarda y espera la interfaz).
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	repo, closeRepo, err := openHistoryRepository(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("persistencia del historial")
	}
	defer closeRepo()

	store := history.NewStore(repo, log.Component("history"))
	if err := store.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar historial")
	}

	// PDF: documento imprimible (견적서)
	pdfGenerator, err := infrapdf.NewMarotoPDFGenerator(cfg.PDF.FontPath)
	if err != nil {
		log.Fatal().Err(err).Msg("generador PDF")
	}
	documentUC := document.NewUseCase(store, pdfGenerator, infraxlsx.NewSheetGenerator())

	company := entity.CompanyInfo{
		Name:           cfg.Company.Name,
		Address:        cfg.Company.Address,
		Phone:          cfg.Company.Phone,
		Email:          cfg.Company.Email,
		BusinessNumber: cfg.Company.BusinessNumber,
		Notes:          cfg.Company.Notes,
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cotizador API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		Drafts:    quoting.NewDraftUseCase(company, time.Now),
		Generate:  quoting.NewGenerateQuoteUseCase(store, log.Component("quoting")),
		History:   quoting.NewHistoryUseCase(store),
		Documents: documentUC,
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
