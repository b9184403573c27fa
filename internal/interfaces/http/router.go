package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/document"
	"github.com/jhoicas/Cotizador-api/internal/application/quoting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	Drafts    *quoting.DraftUseCase
	Generate  *quoting.GenerateQuoteUseCase
	History   *quoting.HistoryUseCase
	Documents *document.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Plantillas
	templates := api.Group("/templates")
	templateHandler := NewTemplateHandler(deps.History)
	templates.Get("/", templateHandler.List)
	templates.Get("/recent", templateHandler.Recent)
	templates.Delete("/recent/:name", templateHandler.RemoveRecent)

	// Líneas y borradores (sin estado)
	lineHandler := NewLineHandler(deps.Drafts)
	api.Post("/lines/price", lineHandler.Price)
	api.Post("/lines/move", lineHandler.Move)
	api.Get("/drafts/new", lineHandler.NewDraft)
	api.Post("/drafts/lines", lineHandler.AddLine)

	// Cotizaciones
	quoteHandler := NewQuoteHandler(deps.Generate, deps.Documents)
	api.Post("/quotes", quoteHandler.Generate)
	api.Post("/quotes/pdf", quoteHandler.PDF)

	// Historial
	history := api.Group("/history")
	historyHandler := NewHistoryHandler(deps.History, deps.Documents)
	history.Get("/", historyHandler.List)
	history.Get("/:id", historyHandler.Get)
	history.Delete("/:id", historyHandler.Delete)
	history.Get("/:id/pdf", historyHandler.PDF)
	history.Get("/:id/xlsx", historyHandler.XLSX)
}
