package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/quoting"
)

// LineHandler edición de líneas y borradores (sin estado en el servidor).
type LineHandler struct {
	uc *quoting.DraftUseCase
}

// NewLineHandler construye el handler.
func NewLineHandler(uc *quoting.DraftUseCase) *LineHandler {
	return &LineHandler{uc: uc}
}

// Price godoc
// @Summary      Aplicar una edición a una línea y recalcular su precio
// @Tags         lines
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LineEditRequest  true  "Línea, campo y valor"
// @Success      200   {object}  entity.ServiceLine
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lines/price [post]
func (h *LineHandler) Price(c *fiber.Ctx) error {
	var in dto.LineEditRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	line, err := h.uc.PriceLine(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(line)
}

// Move godoc
// @Summary      Reordenar líneas
// @Tags         lines
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveLinesRequest  true  "Líneas y posiciones"
// @Success      200   {object}  dto.MoveLinesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lines/move [post]
func (h *LineHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveLinesRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.MoveLines(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// NewDraft borrador vacío con el emisor por defecto y la fecha de hoy.
// GET /api/drafts/new
func (h *LineHandler) NewDraft(c *fiber.Ctx) error {
	return c.JSON(h.uc.NewDraft())
}

// AddLine agrega una línea en blanco o desde una plantilla.
// POST /api/drafts/lines
func (h *LineHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.AddLine(in))
}
