package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/document"
	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/quoting"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// QuoteHandler generación de cotizaciones.
type QuoteHandler struct {
	gen  *quoting.GenerateQuoteUseCase
	docs *document.UseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(gen *quoting.GenerateQuoteUseCase, docs *document.UseCase) *QuoteHandler {
	return &QuoteHandler{gen: gen, docs: docs}
}

// Generate godoc
// @Summary      Generar cotización
// @Description  Arma el snapshot (subtotal, IVA 10%, total), lo registra en el historial y actualiza los servicios recientes.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateQuoteRequest  true  "Borrador"
// @Success      201   {object}  dto.GenerateQuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.gen.Generate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PDF godoc
// @Summary      Documento PDF de una cotización enviada
// @Tags         quotes
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  entity.Quote  true  "Snapshot de la cotización"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes/pdf [post]
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	var q entity.Quote
	if err := c.BodyParser(&q); err != nil {
		return invalidBody(c)
	}
	f, err := h.docs.PDFFromQuote(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return sendDocument(c, f)
}
